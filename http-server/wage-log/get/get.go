package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"piece-wage/http-server/query"
	"piece-wage/internal/service/aggregate"
	"piece-wage/internal/storage"
)

type WageLogs interface {
	Query(ctx context.Context, filter storage.WageLogFilter, policy aggregate.SortPolicy) (*aggregate.Result, error)
	Pivot(ctx context.Context, filter storage.WageLogFilter) (*aggregate.Result, error)
}

// GetQuery lists the filtered records as raw rows with their total.
// ?sort= and ?order= override defaultSort.
func GetQuery(log *slog.Logger, timeout time.Duration, defaultSort aggregate.SortPolicy, svc WageLogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wage-log.get.GetQuery"

		filter, err := query.WageLogFilter(r)
		if err != nil {
			log.Warn("invalid filter", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		policy, err := aggregate.ParseSortPolicy(r.URL.Query().Get("sort"), r.URL.Query().Get("order"), defaultSort)
		if err != nil {
			log.Warn("invalid sort", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res, err := svc.Query(ctx, filter, policy)
		if err != nil {
			log.Error("failed to query wage logs", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Debug("wage logs queried",
			slog.String("op", op),
			slog.Int("rows", len(res.Rows)),
			slog.Int("issues", len(res.Issues)),
		)

		render.JSON(w, r, res)
	}
}

// GetPivot returns the worker by date matrix of the filtered records.
func GetPivot(log *slog.Logger, timeout time.Duration, svc WageLogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wage-log.get.GetPivot"

		filter, err := query.WageLogFilter(r)
		if err != nil {
			log.Warn("invalid filter", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res, err := svc.Pivot(ctx, filter)
		if err != nil {
			log.Error("failed to build pivot", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res.Pivot)
	}
}

type DayReader interface {
	GetWageLogsByDate(ctx context.Context, date string) ([]storage.WageLog, error)
}

// GetDay lists the records entered for one day, as the entry screen shows
// them under the form.
func GetDay(log *slog.Logger, timeout time.Duration, reader DayReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wage-log.get.GetDay"

		date, ok := storage.NormalizeDate(r.URL.Query().Get("date"))
		if !ok {
			http.Error(w, "Missing or invalid query parameter 'date'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		logs, err := reader.GetWageLogsByDate(ctx, date)
		if err != nil {
			log.Error("failed to get wage logs", slog.String("op", op), slog.String("date", date), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, logs)
	}
}
