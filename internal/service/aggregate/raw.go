package aggregate

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

type SortKey string

const (
	SortNone      SortKey = "none"
	SortDate      SortKey = "date"
	SortWorker    SortKey = "worker"
	SortProcess   SortKey = "process"
	SortSpecModel SortKey = "spec_model"
	SortTotalWage SortKey = "total_wage"
)

type SortPolicy struct {
	Key  SortKey `json:"key"`
	Desc bool    `json:"desc"`
}

// DefaultRawSort is the order of the raw export.
var DefaultRawSort = SortPolicy{Key: SortDate}

func (p SortPolicy) Validate() error {
	switch p.Key {
	case SortNone, SortDate, SortWorker, SortProcess, SortSpecModel, SortTotalWage:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownSortKey, p.Key)
}

// ParseSortPolicy reads a key and an "asc"/"desc" order. An empty key gives def.
func ParseSortPolicy(key, order string, def SortPolicy) (SortPolicy, error) {
	const op = "aggregate.ParseSortPolicy"

	p := def
	if key != "" {
		p = SortPolicy{Key: SortKey(strings.ToLower(strings.TrimSpace(key)))}
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "":
	case "asc":
		p.Desc = false
	case "desc":
		p.Desc = true
	default:
		return SortPolicy{}, fmt.Errorf("%s: invalid order %q", op, order)
	}

	if err := p.Validate(); err != nil {
		return SortPolicy{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

type RawRow struct {
	RecordID  int64               `json:"id"`
	Date      string              `json:"date"`
	Worker    string              `json:"worker"`
	Process   string              `json:"process"`
	SpecModel string              `json:"spec_model"`
	GroupSize int                 `json:"actual_group_size"`
	UnitPrice decimal.NullDecimal `json:"actual_price"`
	Quantity  int                 `json:"quantity"`
	TotalWage decimal.NullDecimal `json:"total_wage"`
	Remark    string              `json:"remark"`
}

// BuildRawTable gives one row per record. The sort is stable; SortNone keeps
// the caller's order. An unknown key is treated as SortNone, callers validate
// the policy first.
func BuildRawTable(records []storage.WageLog, policy SortPolicy) ([]RawRow, []Issue) {
	rows := make([]RawRow, 0, len(records))
	issues := []Issue{}

	for _, rec := range records {
		row := RawRow{
			RecordID:  rec.ID,
			GroupSize: rec.GroupSize,
			UnitPrice: rec.ActualPrice,
			Quantity:  rec.Quantity,
			TotalWage: rec.TotalWage,
		}

		if date, ok := storage.NormalizeDate(rec.Date); ok {
			row.Date = date
		} else {
			row.Date = strings.TrimSpace(rec.Date)
			issues = append(issues, Issue{
				RecordID: rec.ID,
				Kind:     MalformedRecord,
				Field:    "date",
				Reason:   fmt.Sprintf("unusable date %q", rec.Date),
			})
		}

		if rec.Worker != nil {
			row.Worker = rec.Worker.Name
		}
		if rec.Process != nil {
			row.Process = rec.Process.Name
		}
		if rec.SpecModel != nil {
			row.SpecModel = rec.SpecModel.Name
		}
		if rec.Remark != nil {
			row.Remark = *rec.Remark
		}

		if !rec.ActualPrice.Valid {
			issues = append(issues, Issue{
				RecordID: rec.ID,
				Kind:     InvalidNumeric,
				Field:    "actual_price",
				Reason:   "missing or non-numeric unit price",
			})
		}
		if _, issue := wageOf(rec); issue != nil {
			issues = append(issues, *issue)
		}

		rows = append(rows, row)
	}

	sortRawRows(rows, policy)

	return rows, issues
}

func sortRawRows(rows []RawRow, policy SortPolicy) {
	var less func(a, b RawRow) int

	switch policy.Key {
	case SortDate:
		less = func(a, b RawRow) int { return strings.Compare(a.Date, b.Date) }
	case SortWorker:
		less = func(a, b RawRow) int { return strings.Compare(a.Worker, b.Worker) }
	case SortProcess:
		less = func(a, b RawRow) int { return strings.Compare(a.Process, b.Process) }
	case SortSpecModel:
		less = func(a, b RawRow) int { return strings.Compare(a.SpecModel, b.SpecModel) }
	case SortTotalWage:
		less = func(a, b RawRow) int { return amount(a.TotalWage).Cmp(amount(b.TotalWage)) }
	default:
		return
	}

	slices.SortStableFunc(rows, func(a, b RawRow) int {
		c := less(a, b)
		if policy.Desc {
			c = cmp.Compare(0, c)
		}
		return c
	})
}

func amount(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}
