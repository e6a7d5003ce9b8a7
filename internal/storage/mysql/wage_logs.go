package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

const wageLogSelect = `
	SELECT
		wl.id,
		wl.worker_id,
		wl.process_id,
		wl.spec_model_id,
		wl.date,
		wl.actual_price,
		wl.actual_group_size,
		wl.quantity,
		wl.total_wage,
		wl.remark,
		w.id,
		w.name,
		p.id,
		p.name,
		sm.id,
		sm.name,
		sm.category
	FROM wage_logs wl
	LEFT JOIN workers w ON wl.worker_id = w.id
	LEFT JOIN processes p ON wl.process_id = p.id
	LEFT JOIN spec_models sm ON wl.spec_model_id = sm.id`

// buildWageLogQuery ANDs together the filter fields that are set.
func buildWageLogQuery(filter storage.WageLogFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if filter.StartDate != "" {
		where = append(where, "wl.date >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		where = append(where, "wl.date <= ?")
		args = append(args, filter.EndDate)
	}
	if filter.WorkerID != nil {
		where = append(where, "wl.worker_id = ?")
		args = append(args, *filter.WorkerID)
	}
	if filter.ProcessID != nil {
		where = append(where, "wl.process_id = ?")
		args = append(args, *filter.ProcessID)
	}

	query := wageLogSelect
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\tORDER BY wl.date ASC, wl.id ASC"

	return query, args
}

func (s *Storage) QueryWageLogs(ctx context.Context, filter storage.WageLogFilter) ([]storage.WageLog, error) {
	const op = "storage.mysql.QueryWageLogs"

	query, args := buildWageLogQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query wage logs: %w", op, err)
	}
	defer rows.Close()

	logs := []storage.WageLog{}
	for rows.Next() {
		var rec storage.WageLog
		var workerID, processID, specID, groupSize, quantity sql.NullInt64
		var date, price, total, remark sql.NullString
		var wID, pID, smID sql.NullInt64
		var wName, pName, smName, category sql.NullString

		err := rows.Scan(
			&rec.ID,
			&workerID,
			&processID,
			&specID,
			&date,
			&price,
			&groupSize,
			&quantity,
			&total,
			&remark,
			&wID,
			&wName,
			&pID,
			&pName,
			&smID,
			&smName,
			&category,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan wage log: %w", op, err)
		}

		rec.WorkerID = nullInt(workerID)
		rec.ProcessID = nullInt(processID)
		rec.SpecModelID = nullInt(specID)
		rec.Date = date.String
		if d, ok := storage.NormalizeDate(date.String); ok {
			rec.Date = d
		}
		rec.ActualPrice = parseDecimal(price)
		rec.GroupSize = int(groupSize.Int64)
		rec.Quantity = int(quantity.Int64)
		rec.TotalWage = parseDecimal(total)
		rec.Remark = nullString(remark)

		if wID.Valid {
			rec.Worker = &storage.Worker{ID: wID.Int64, Name: wName.String}
		}
		if pID.Valid {
			rec.Process = &storage.Process{ID: pID.Int64, Name: pName.String}
		}
		if smID.Valid {
			rec.SpecModel = &storage.SpecModel{ID: smID.Int64, Name: smName.String, Category: category.String}
		}

		logs = append(logs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return logs, nil
}

// GetWageLogsByDate returns the entries of one day, as the entry screen lists them.
func (s *Storage) GetWageLogsByDate(ctx context.Context, date string) ([]storage.WageLog, error) {
	return s.QueryWageLogs(ctx, storage.WageLogFilter{StartDate: date, EndDate: date})
}

func nullInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// parseDecimal leaves Valid false for NULL and for values that are not numbers.
func parseDecimal(ns sql.NullString) decimal.NullDecimal {
	if !ns.Valid {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(strings.TrimSpace(ns.String))
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}
