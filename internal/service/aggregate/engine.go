package aggregate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

var ErrUnknownMode = errors.New("unknown aggregation mode")

type Mode string

const (
	ModeSum   Mode = "sum"
	ModeRaw   Mode = "raw"
	ModePivot Mode = "pivot"
)

// Result holds what the requested mode produced. Total is always filled; Rows
// only for ModeRaw and Pivot only for ModePivot.
type Result struct {
	Mode   Mode            `json:"mode"`
	Total  decimal.Decimal `json:"total_wage"`
	Rows   []RawRow        `json:"rows,omitempty"`
	Pivot  *PivotResult    `json:"pivot,omitempty"`
	Issues []Issue         `json:"issues"`
}

type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	return &Engine{log: log}
}

// Aggregate runs one mode over a consistent snapshot of records. Record
// problems never fail the call; they come back in Result.Issues and are logged.
func (e *Engine) Aggregate(records []storage.WageLog, mode Mode, policy SortPolicy) (*Result, error) {
	const op = "aggregate.Engine.Aggregate"

	total, sumIssues := SumTotal(records)
	res := &Result{Mode: mode, Total: total}

	switch mode {
	case ModeSum:
		res.Issues = mergeIssues(sumIssues)
	case ModeRaw:
		if err := policy.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rows, rawIssues := BuildRawTable(records, policy)
		res.Rows = rows
		res.Issues = mergeIssues(sumIssues, rawIssues)
	case ModePivot:
		res.Pivot = BuildPivotMatrix(records)
		res.Issues = mergeIssues(sumIssues, res.Pivot.Issues)
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownMode, mode)
	}

	for _, is := range res.Issues {
		e.log.Warn("wage log record flagged",
			slog.String("op", op),
			slog.String("mode", string(mode)),
			slog.Int64("record_id", is.RecordID),
			slog.String("kind", string(is.Kind)),
			slog.String("field", is.Field),
			slog.String("reason", is.Reason),
		)
	}

	return res, nil
}
