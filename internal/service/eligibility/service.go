package eligibility

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"piece-wage/internal/storage"
)

type CatalogStorage interface {
	GetAllWorkers(ctx context.Context) ([]storage.Worker, error)
	GetAllProcesses(ctx context.Context) ([]storage.Process, error)
	GetAllSpecModels(ctx context.Context) ([]storage.SpecModel, error)
}

type Service struct {
	log     *slog.Logger
	storage CatalogStorage
}

func NewService(log *slog.Logger, storage CatalogStorage) *Service {
	return &Service{log: log, storage: storage}
}

type catalog struct {
	workers    []storage.Worker
	processes  []storage.Process
	specModels []storage.SpecModel
}

// load reads the three collections concurrently and returns them only when
// every read succeeded.
func (s *Service) load(ctx context.Context) (catalog, error) {
	var c catalog

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c.workers, err = s.storage.GetAllWorkers(gCtx)
		if err != nil {
			return fmt.Errorf("workers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		c.processes, err = s.storage.GetAllProcesses(gCtx)
		if err != nil {
			return fmt.Errorf("processes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		c.specModels, err = s.storage.GetAllSpecModels(gCtx)
		if err != nil {
			return fmt.Errorf("spec models: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return catalog{}, err
	}

	return c, nil
}

// Tree returns the selection tree for workers on duty at date.
func (s *Service) Tree(ctx context.Context, date string) ([]WorkerNode, error) {
	const op = "service.eligibility.Tree"

	c, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tree := Build(OnDuty(c.workers, date), c.processes, c.specModels)

	s.log.Debug("eligibility tree built",
		slog.String("op", op),
		slog.String("date", date),
		slog.Int("workers", len(tree)),
	)

	return tree, nil
}

func (s *Service) Price(ctx context.Context, specModelID int64) (decimal.Decimal, error) {
	const op = "service.eligibility.Price"

	specModels, err := s.storage.GetAllSpecModels(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	price, err := ResolveUnitPrice(specModelID, specModels)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: spec model id=%d: %w", op, specModelID, err)
	}

	return price, nil
}

func (s *Service) Draft(ctx context.Context, sel Selection) (storage.WageLog, error) {
	const op = "service.eligibility.Draft"

	c, err := s.load(ctx)
	if err != nil {
		return storage.WageLog{}, fmt.Errorf("%s: %w", op, err)
	}

	tree := Build(OnDuty(c.workers, sel.Date), c.processes, c.specModels)

	draft, err := NewDraft(tree, c.specModels, sel)
	if err != nil {
		return storage.WageLog{}, fmt.Errorf("%s: %w", op, err)
	}

	return draft, nil
}

// Workers lists the workers on duty at date, every worker when date is empty.
func (s *Service) Workers(ctx context.Context, date string) ([]storage.Worker, error) {
	const op = "service.eligibility.Workers"

	workers, err := s.storage.GetAllWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return OnDuty(workers, date), nil
}
