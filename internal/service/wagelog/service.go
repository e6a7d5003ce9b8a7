package wagelog

import (
	"context"
	"fmt"
	"log/slog"

	"piece-wage/internal/service/aggregate"
	"piece-wage/internal/storage"
)

type WageLogStorage interface {
	QueryWageLogs(ctx context.Context, filter storage.WageLogFilter) ([]storage.WageLog, error)
}

type Service struct {
	log     *slog.Logger
	storage WageLogStorage
	engine  *aggregate.Engine
}

func NewService(log *slog.Logger, storage WageLogStorage) *Service {
	return &Service{
		log:     log,
		storage: storage,
		engine:  aggregate.NewEngine(log),
	}
}

// Aggregate fetches the filtered records once and runs mode over them.
func (s *Service) Aggregate(ctx context.Context, filter storage.WageLogFilter, mode aggregate.Mode, policy aggregate.SortPolicy) (*aggregate.Result, error) {
	const op = "service.wagelog.Aggregate"

	records, err := s.storage.QueryWageLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.engine.Aggregate(records, mode, policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func (s *Service) Query(ctx context.Context, filter storage.WageLogFilter, policy aggregate.SortPolicy) (*aggregate.Result, error) {
	return s.Aggregate(ctx, filter, aggregate.ModeRaw, policy)
}

func (s *Service) Pivot(ctx context.Context, filter storage.WageLogFilter) (*aggregate.Result, error) {
	return s.Aggregate(ctx, filter, aggregate.ModePivot, aggregate.SortPolicy{Key: aggregate.SortNone})
}
