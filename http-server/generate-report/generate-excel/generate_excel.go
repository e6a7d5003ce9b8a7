package generate_excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"piece-wage/http-server/query"
	"piece-wage/internal/service/report"
	"piece-wage/internal/storage"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, filter storage.WageLogFilter, kind report.Kind) ([]byte, string, error)
}

// GenerateReportExcel streams the matrix (default) or raw workbook over the
// filtered records.
func GenerateReportExcel(log *slog.Logger, timeout time.Duration, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		filter, err := query.WageLogFilter(r)
		if err != nil {
			log.Warn("invalid filter", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		kind := report.Kind(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind"))))
		if kind == "" {
			kind = report.KindMatrix
		}
		if _, err := kind.Mode(); err != nil {
			http.Error(w, "invalid report kind", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		excelBytes, fileName, err := gen.GenerateExcel(ctx, filter, kind)
		if errors.Is(err, report.ErrMissingInput) {
			log.Warn("nothing to export", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Nothing to export", http.StatusUnprocessableEntity)
			return
		}
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		if _, err := w.Write(excelBytes); err != nil {
			log.Error("failed to write excel", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
