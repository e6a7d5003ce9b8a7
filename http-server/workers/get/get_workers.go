package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"piece-wage/internal/storage"
)

type Workers interface {
	Workers(ctx context.Context, date string) ([]storage.Worker, error)
}

// GetWorkers lists workers, only those on duty when ?date= is set.
func GetWorkers(log *slog.Logger, timeout time.Duration, worker Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.get.GetWorkers"

		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date != "" {
			day, ok := storage.NormalizeDate(date)
			if !ok {
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
			date = day
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		workers, err := worker.Workers(ctx, date)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to get workers")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Debug("workers found", slog.String("op", op), slog.Int("count", len(workers)))

		render.JSON(w, r, workers)
	}
}
