package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"piece-wage/http-server/query"
	"piece-wage/internal/storage"
)

type SpecModels interface {
	GetSpecModelsByProcess(ctx context.Context, processID int64) ([]storage.SpecModel, error)
}

// GetByProcess lists the spec models with their current price for one process.
func GetByProcess(log *slog.Logger, timeout time.Duration, specModels SpecModels) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spec-models.get.GetByProcess"

		processID, err := query.ID(chi.URLParam(r, "processID"), "processID")
		if err != nil || processID == nil {
			http.Error(w, "invalid process id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		res, err := specModels.GetSpecModelsByProcess(ctx, *processID)
		if err != nil {
			log.Error("failed to get spec models",
				slog.String("op", op),
				slog.Int64("process_id", *processID),
				slog.String("error", err.Error()),
			)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, res)
	}
}
