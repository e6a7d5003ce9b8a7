package draft

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"piece-wage/internal/service/eligibility"
	"piece-wage/internal/storage"
)

type Drafter interface {
	Draft(ctx context.Context, sel eligibility.Selection) (storage.WageLog, error)
}

// NewDraft answers the entry screen with a prefilled, unsaved wage log for
// the posted worker, process and spec model.
func NewDraft(log *slog.Logger, timeout time.Duration, drafter Drafter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wage-log.draft.NewDraft"

		var sel eligibility.Selection
		if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		switch {
		case sel.WorkerID <= 0:
			http.Error(w, "worker_id is required", http.StatusBadRequest)
			return
		case sel.ProcessID <= 0:
			http.Error(w, "process_id is required", http.StatusBadRequest)
			return
		case sel.SpecModelID <= 0:
			http.Error(w, "spec_model_id is required", http.StatusBadRequest)
			return
		}

		day, ok := storage.NormalizeDate(sel.Date)
		if !ok {
			http.Error(w, "date is required as YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		sel.Date = day

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		draft, err := drafter.Draft(ctx, sel)
		switch {
		case errors.Is(err, eligibility.ErrNotFound):
			log.Warn("spec model not found", slog.String("op", op), slog.Int64("spec_model_id", sel.SpecModelID))
			http.Error(w, "Spec model not found", http.StatusNotFound)
			return
		case errors.Is(err, eligibility.ErrNotEligible):
			log.Warn("selection not eligible", slog.String("op", op), slog.Any("selection", sel))
			http.Error(w, "Selection is not eligible", http.StatusUnprocessableEntity)
			return
		case err != nil:
			log.Error("failed to build draft", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, draft)
	}
}
