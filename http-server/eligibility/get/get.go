package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"piece-wage/http-server/query"
	"piece-wage/internal/service/eligibility"
	"piece-wage/internal/storage"
)

type Eligibility interface {
	Tree(ctx context.Context, date string) ([]eligibility.WorkerNode, error)
	Price(ctx context.Context, specModelID int64) (decimal.Decimal, error)
}

type PriceResponse struct {
	SpecModelID int64           `json:"spec_model_id"`
	Price       decimal.Decimal `json:"price"`
}

// GetTree returns the worker → process → spec model tree. With ?date= only
// workers on duty that day are listed.
func GetTree(log *slog.Logger, timeout time.Duration, svc Eligibility) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.eligibility.get.GetTree"

		date := strings.TrimSpace(r.URL.Query().Get("date"))
		if date != "" {
			day, ok := storage.NormalizeDate(date)
			if !ok {
				log.Warn("invalid date", slog.String("op", op), slog.String("date", date))
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
			date = day
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		tree, err := svc.Tree(ctx, date)
		if err != nil {
			log.Error("failed to build eligibility tree", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, tree)
	}
}

func GetPrice(log *slog.Logger, timeout time.Duration, svc Eligibility) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.eligibility.get.GetPrice"

		raw := chi.URLParam(r, "specModelID")
		id, err := query.ID(raw, "specModelID")
		if err != nil || id == nil {
			http.Error(w, "invalid spec model id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		price, err := svc.Price(ctx, *id)
		if errors.Is(err, eligibility.ErrNotFound) {
			log.Warn("spec model not found", slog.String("op", op), slog.Int64("spec_model_id", *id))
			http.Error(w, "Spec model not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to resolve price", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, PriceResponse{SpecModelID: *id, Price: price})
	}
}
