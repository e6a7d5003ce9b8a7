package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"piece-wage/internal/service/aggregate"
	"piece-wage/internal/service/report"
	"piece-wage/internal/storage"
)

type WageAggregator interface {
	Aggregate(ctx context.Context, filter storage.WageLogFilter, mode aggregate.Mode, policy aggregate.SortPolicy) (*aggregate.Result, error)
}

type GenerateExcelService struct {
	log         *slog.Logger
	wages       WageAggregator
	assembler   *report.Assembler
	defaultSort aggregate.SortPolicy
	now         func() time.Time
}

func NewGenerateService(log *slog.Logger, wages WageAggregator, assembler *report.Assembler, defaultSort aggregate.SortPolicy) *GenerateExcelService {
	return &GenerateExcelService{
		log:         log,
		wages:       wages,
		assembler:   assembler,
		defaultSort: defaultSort,
		now:         time.Now,
	}
}

// GenerateExcel builds the workbook for kind over the filtered records and
// returns it together with the download file name.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, filter storage.WageLogFilter, kind report.Kind) ([]byte, string, error) {
	const op = "service.generate_excel.GenerateExcel"

	mode, err := kind.Mode()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := g.wages.Aggregate(ctx, filter, mode, g.defaultSort)
	if err != nil {
		return nil, "", fmt.Errorf("%s: fetch data: %w", op, err)
	}

	table, err := g.assembler.Assemble(kind, res)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	buf, err := WriteTable(table)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	name := g.fileName(kind, filter)

	g.log.Info("excel report generated",
		slog.String("op", op),
		slog.String("kind", string(kind)),
		slog.String("file", name),
		slog.Int("rows", len(table.Rows)),
		slog.Int("issues", len(res.Issues)),
	)

	return buf, name, nil
}

func (g *GenerateExcelService) fileName(kind report.Kind, filter storage.WageLogFilter) string {
	prefix := "wage_report"
	if kind == report.KindRaw {
		prefix = "query_records"
	}

	if filter.StartDate == "" && filter.EndDate == "" {
		return fmt.Sprintf("%s_%s.xlsx", prefix, g.now().Format(storage.DateLayout))
	}

	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, filter.StartDate, filter.EndDate)
}

// WriteTable serializes one table into a single-sheet workbook.
func WriteTable(table report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	// --- styles ---
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	moneyFmt := "0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}

	// header
	for i, name := range table.Headers {
		if err := f.SetCellValue(sheet, cellName(i+1, 1), name); err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
	}

	cols := len(table.Headers)
	if cols > 0 {
		if err := f.SetCellStyle(sheet, "A1", cellName(cols, 1), headerStyle); err != nil {
			return nil, fmt.Errorf("header style: %w", err)
		}
	}

	// data
	for r, row := range table.Rows {
		rowNum := r + 2

		for c, v := range row {
			cell := cellName(c+1, rowNum)

			switch val := v.(type) {
			case nil:
				continue
			case decimal.Decimal:
				if err := f.SetCellValue(sheet, cell, val.InexactFloat64()); err != nil {
					return nil, fmt.Errorf("cell %s: %w", cell, err)
				}
				if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
					return nil, fmt.Errorf("cell %s style: %w", cell, err)
				}
			default:
				if err := f.SetCellValue(sheet, cell, val); err != nil {
					return nil, fmt.Errorf("cell %s: %w", cell, err)
				}
			}
		}
	}

	// --- final touches ---
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 15); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if cols > 1 {
		last, _ := excelize.ColumnNumberToName(cols)
		if err := f.SetColWidth(sheet, "B", last, 12); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
