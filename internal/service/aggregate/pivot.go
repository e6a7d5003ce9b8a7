package aggregate

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

type PivotRow struct {
	Key      int64                      `json:"key"`
	Label    string                     `json:"label"`
	Cells    map[string]decimal.Decimal `json:"cells"`
	RowTotal decimal.Decimal            `json:"row_total"`
}

type PivotResult struct {
	Columns      []string                   `json:"columns"`
	Rows         []PivotRow                 `json:"rows"`
	ColumnTotals map[string]decimal.Decimal `json:"column_totals"`
	GrandTotal   decimal.Decimal            `json:"grand_total"`
	// ExcludedTotal is the wage carried by records that could not be placed,
	// so GrandTotal + ExcludedTotal always equals SumTotal.
	ExcludedTotal decimal.Decimal `json:"excluded_total"`
	Issues        []Issue         `json:"issues"`
}

// Excluded lists the records left out of the matrix.
func (p *PivotResult) Excluded() []Issue {
	res := []Issue{}
	for _, is := range p.Issues {
		if is.Kind == MalformedRecord {
			res = append(res, is)
		}
	}
	return res
}

// dimension returns the worker identity of a record. Workers are told apart
// by id, never by name.
func dimension(rec storage.WageLog) (int64, string, bool) {
	var label string
	if rec.Worker != nil {
		label = rec.Worker.Name
	}

	switch {
	case rec.WorkerID != nil:
		return *rec.WorkerID, label, true
	case rec.Worker != nil && rec.Worker.ID != 0:
		return rec.Worker.ID, label, true
	}

	return 0, "", false
}

// BuildPivotMatrix lays records out as worker x normalized date. Columns are
// ascending dates, rows follow the first appearance of each worker in
// records. Every row carries a cell for every column.
func BuildPivotMatrix(records []storage.WageLog) *PivotResult {
	res := &PivotResult{
		Columns:       []string{},
		Rows:          []PivotRow{},
		ColumnTotals:  map[string]decimal.Decimal{},
		GrandTotal:    decimal.Zero,
		ExcludedTotal: decimal.Zero,
		Issues:        []Issue{},
	}

	dates := map[string]struct{}{}
	rowIdx := map[int64]int{}

	for _, rec := range records {
		w, issue := wageOf(rec)
		if issue != nil {
			res.Issues = append(res.Issues, *issue)
		}

		key, label, okKey := dimension(rec)
		date, okDate := storage.NormalizeDate(rec.Date)
		if !okKey || !okDate {
			reason := "missing worker"
			if okKey {
				reason = fmt.Sprintf("unusable date %q", rec.Date)
			} else if !okDate {
				reason = fmt.Sprintf("missing worker and unusable date %q", rec.Date)
			}

			res.Issues = append(res.Issues, Issue{
				RecordID: rec.ID,
				Kind:     MalformedRecord,
				Field:    "pivot",
				Reason:   reason,
			})
			res.ExcludedTotal = res.ExcludedTotal.Add(w)
			continue
		}

		i, seen := rowIdx[key]
		if !seen {
			i = len(res.Rows)
			rowIdx[key] = i
			res.Rows = append(res.Rows, PivotRow{
				Key:   key,
				Label: label,
				Cells: map[string]decimal.Decimal{},
			})
		} else if res.Rows[i].Label == "" {
			res.Rows[i].Label = label
		}

		res.Rows[i].Cells[date] = res.Rows[i].Cells[date].Add(w)
		dates[date] = struct{}{}
	}

	for d := range dates {
		res.Columns = append(res.Columns, d)
	}
	slices.Sort(res.Columns)

	for i := range res.Rows {
		row := &res.Rows[i]
		row.RowTotal = decimal.Zero

		for _, col := range res.Columns {
			cell := row.Cells[col]
			row.Cells[col] = cell
			row.RowTotal = row.RowTotal.Add(cell)
			res.ColumnTotals[col] = res.ColumnTotals[col].Add(cell)
		}

		res.GrandTotal = res.GrandTotal.Add(row.RowTotal)
	}

	return res
}
