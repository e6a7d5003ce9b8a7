package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"piece-wage/internal/storage"
)

func (s *Storage) GetAllWorkers(ctx context.Context) ([]storage.Worker, error) {
	const op = "storage.mysql.GetAllWorkers"

	query := `SELECT id, name, status, group_name, id_card, entry_date, leave_date, remark
		FROM workers
		ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query workers: %w", op, err)
	}
	defer rows.Close()

	workers := []storage.Worker{}
	for rows.Next() {
		var w storage.Worker
		var group, idCard, entry, leave, remark sql.NullString

		err := rows.Scan(&w.ID, &w.Name, &w.Status, &group, &idCard, &entry, &leave, &remark)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan worker: %w", op, err)
		}

		w.Group = nullString(group)
		w.IDCard = nullString(idCard)
		w.EntryDate = nullDate(entry)
		w.LeaveDate = nullDate(leave)
		w.Remark = nullString(remark)

		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return workers, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

// nullDate keeps the calendar day of a DATE column. With parseTime the
// driver hands back a time.Time which database/sql renders as RFC3339.
func nullDate(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	if d, ok := storage.NormalizeDate(ns.String); ok {
		return &d
	}
	v := ns.String
	return &v
}
