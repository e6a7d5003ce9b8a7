package mysql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

// GetAllProcesses returns processes with their eligible workers. A process
// without rows in process_workers keeps a nil EligibleWorkerIDs.
func (s *Storage) GetAllProcesses(ctx context.Context) ([]storage.Process, error) {
	const op = "storage.mysql.GetAllProcesses"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM processes ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query processes: %w", op, err)
	}
	defer rows.Close()

	processes := []storage.Process{}
	index := map[int64]int{}
	for rows.Next() {
		var p storage.Process
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("%s: failed to scan process: %w", op, err)
		}
		index[p.ID] = len(processes)
		processes = append(processes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	relRows, err := s.db.QueryContext(ctx, `SELECT process_id, worker_id FROM process_workers ORDER BY process_id ASC, worker_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query process workers: %w", op, err)
	}
	defer relRows.Close()

	for relRows.Next() {
		var processID, workerID int64
		if err := relRows.Scan(&processID, &workerID); err != nil {
			return nil, fmt.Errorf("%s: failed to scan process worker: %w", op, err)
		}

		i, ok := index[processID]
		if !ok {
			continue
		}
		processes[i].EligibleWorkerIDs = append(processes[i].EligibleWorkerIDs, workerID)
	}
	if err := relRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return processes, nil
}

func (s *Storage) GetAllSpecModels(ctx context.Context) ([]storage.SpecModel, error) {
	const op = "storage.mysql.GetAllSpecModels"

	return s.querySpecModels(ctx, op, `SELECT id, name, category, process_id, price FROM spec_models ORDER BY id ASC`)
}

func (s *Storage) GetSpecModelsByProcess(ctx context.Context, processID int64) ([]storage.SpecModel, error) {
	const op = "storage.mysql.GetSpecModelsByProcess"

	return s.querySpecModels(ctx, op,
		`SELECT id, name, category, process_id, price FROM spec_models WHERE process_id = ? ORDER BY id ASC`,
		processID,
	)
}

func (s *Storage) querySpecModels(ctx context.Context, op, query string, args ...any) ([]storage.SpecModel, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query spec models: %w", op, err)
	}
	defer rows.Close()

	specModels := []storage.SpecModel{}
	for rows.Next() {
		var sm storage.SpecModel
		var price decimal.NullDecimal

		if err := rows.Scan(&sm.ID, &sm.Name, &sm.Category, &sm.ProcessID, &price); err != nil {
			return nil, fmt.Errorf("%s: failed to scan spec model: %w", op, err)
		}
		sm.Price = price.Decimal

		specModels = append(specModels, sm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return specModels, nil
}
