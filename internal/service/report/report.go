package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"piece-wage/internal/service/aggregate"
)

var (
	ErrUnknownKind  = errors.New("unknown report kind")
	ErrMissingInput = errors.New("aggregation result does not carry the data for this report")
)

type Kind string

const (
	KindMatrix Kind = "matrix"
	KindRaw    Kind = "raw"
)

// Table is a serializer-neutral sheet. Cells are string, int or decimal.Decimal;
// nil marks an empty cell.
type Table struct {
	Sheet   string   `json:"sheet"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

type Naming struct {
	MatrixSheet   string
	RawSheet      string
	Dimension     string
	Total         string
	TotalsRow     string
	UnknownWorker string

	Worker    string
	Process   string
	SpecModel string
	GroupSize string
	Date      string
	Quantity  string
	UnitPrice string
	TotalWage string
	Remark    string
}

var EnglishNaming = Naming{
	MatrixSheet:   "daily wages",
	RawSheet:      "wage records",
	Dimension:     "worker",
	Total:         "total",
	TotalsRow:     "total",
	UnknownWorker: "unknown worker",

	Worker:    "worker",
	Process:   "process",
	SpecModel: "spec model",
	GroupSize: "group size",
	Date:      "date",
	Quantity:  "quantity",
	UnitPrice: "unit price",
	TotalWage: "total wage",
	Remark:    "remark",
}

var ChineseNaming = Naming{
	MatrixSheet:   "工资日薪表",
	RawSheet:      "工资记录",
	Dimension:     "工人",
	Total:         "工资合计",
	TotalsRow:     "合计",
	UnknownWorker: "未知工人",

	Worker:    "工人",
	Process:   "工序",
	SpecModel: "规格型号",
	GroupSize: "组人数",
	Date:      "日期",
	Quantity:  "数量",
	UnitPrice: "单价",
	TotalWage: "工资",
	Remark:    "备注",
}

// NamingFor maps a config value to a preset; anything but "zh" is English.
func NamingFor(lang string) Naming {
	if lang == "zh" {
		return ChineseNaming
	}
	return EnglishNaming
}

type Assembler struct {
	naming    Naming
	totalsRow bool
}

type Option func(*Assembler)

// WithTotalsRow appends a footer row of column totals to the matrix report.
func WithTotalsRow() Option {
	return func(a *Assembler) { a.totalsRow = true }
}

func NewAssembler(naming Naming, opts ...Option) *Assembler {
	a := &Assembler{naming: naming}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DailyMatrix renders [worker, dates..., total], one row per worker. Dates
// are written exactly as the pivot produced them.
func (a *Assembler) DailyMatrix(p *aggregate.PivotResult) Table {
	t := Table{
		Sheet:   a.naming.MatrixSheet,
		Headers: make([]string, 0, len(p.Columns)+2),
		Rows:    make([][]any, 0, len(p.Rows)+1),
	}

	t.Headers = append(t.Headers, a.naming.Dimension)
	t.Headers = append(t.Headers, p.Columns...)
	t.Headers = append(t.Headers, a.naming.Total)

	for _, r := range p.Rows {
		label := r.Label
		if label == "" {
			label = a.naming.UnknownWorker
		}

		row := make([]any, 0, len(t.Headers))
		row = append(row, label)
		for _, col := range p.Columns {
			row = append(row, r.Cells[col])
		}
		row = append(row, r.RowTotal)

		t.Rows = append(t.Rows, row)
	}

	if a.totalsRow && len(p.Rows) > 0 {
		row := make([]any, 0, len(t.Headers))
		row = append(row, a.naming.TotalsRow)
		for _, col := range p.Columns {
			row = append(row, p.ColumnTotals[col])
		}
		row = append(row, p.GrandTotal)

		t.Rows = append(t.Rows, row)
	}

	return t
}

// Raw renders one row per record in the fixed export column order.
func (a *Assembler) Raw(rows []aggregate.RawRow) Table {
	n := a.naming
	t := Table{
		Sheet: n.RawSheet,
		Headers: []string{
			n.Worker, n.Process, n.SpecModel, n.GroupSize, n.Date,
			n.Quantity, n.UnitPrice, n.TotalWage, n.Remark,
		},
		Rows: make([][]any, 0, len(rows)),
	}

	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Worker,
			r.Process,
			r.SpecModel,
			r.GroupSize,
			r.Date,
			r.Quantity,
			nullable(r.UnitPrice),
			nullable(r.TotalWage),
			r.Remark,
		})
	}

	return t
}

// Assemble picks the report for kind out of an aggregation result.
func (a *Assembler) Assemble(kind Kind, res *aggregate.Result) (Table, error) {
	const op = "report.Assemble"

	switch kind {
	case KindMatrix:
		if res == nil || res.Pivot == nil {
			return Table{}, fmt.Errorf("%s: %s: %w", op, kind, ErrMissingInput)
		}
		return a.DailyMatrix(res.Pivot), nil
	case KindRaw:
		if res == nil || res.Mode != aggregate.ModeRaw {
			return Table{}, fmt.Errorf("%s: %s: %w", op, kind, ErrMissingInput)
		}
		return a.Raw(res.Rows), nil
	}

	return Table{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownKind, kind)
}

// Mode is the aggregation the report of kind is built from.
func (k Kind) Mode() (aggregate.Mode, error) {
	switch k {
	case KindMatrix:
		return aggregate.ModePivot, nil
	case KindRaw:
		return aggregate.ModeRaw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
}

func nullable(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal
}
