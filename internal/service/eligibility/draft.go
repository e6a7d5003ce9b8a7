package eligibility

import (
	"fmt"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

type Selection struct {
	WorkerID    int64  `json:"worker_id"`
	ProcessID   int64  `json:"process_id"`
	SpecModelID int64  `json:"spec_model_id"`
	Date        string `json:"date"`
}

// OnDuty keeps the workers employed on date. Missing entry or leave dates are
// open bounds; a worker marked as left without a leave date is dropped.
// An empty or unparseable date keeps everyone.
func OnDuty(workers []storage.Worker, date string) []storage.Worker {
	day, ok := storage.NormalizeDate(date)
	if !ok {
		return workers
	}

	res := make([]storage.Worker, 0, len(workers))
	for _, w := range workers {
		if w.EntryDate != nil {
			if entry, ok := storage.NormalizeDate(*w.EntryDate); ok && entry > day {
				continue
			}
		}

		if w.LeaveDate != nil {
			if leave, ok := storage.NormalizeDate(*w.LeaveDate); ok && leave < day {
				continue
			}
		} else if w.Status == storage.WorkerStatusLeft {
			continue
		}

		res = append(res, w)
	}

	return res
}

// NewDraft builds the unsaved wage log the entry screen starts from: the spec
// model's current price, one piece, a group of one and total wage equal to
// the price.
func NewDraft(tree []WorkerNode, specModels []storage.SpecModel, sel Selection) (storage.WageLog, error) {
	const op = "eligibility.NewDraft"

	price, err := ResolveUnitPrice(sel.SpecModelID, specModels)
	if err != nil {
		return storage.WageLog{}, fmt.Errorf("%s: spec model id=%d: %w", op, sel.SpecModelID, err)
	}

	w, p, s, ok := Find(tree, sel.WorkerID, sel.ProcessID, sel.SpecModelID)
	if !ok {
		return storage.WageLog{}, fmt.Errorf("%s: worker=%d process=%d spec model=%d: %w",
			op, sel.WorkerID, sel.ProcessID, sel.SpecModelID, ErrNotEligible)
	}

	date, ok := storage.NormalizeDate(sel.Date)
	if !ok {
		return storage.WageLog{}, fmt.Errorf("%s: invalid date %q", op, sel.Date)
	}

	workerID, processID, specModelID := w.WorkerID, p.ProcessID, s.SpecModelID

	return storage.WageLog{
		WorkerID:    &workerID,
		ProcessID:   &processID,
		SpecModelID: &specModelID,
		Date:        date,
		ActualPrice: decimal.NewNullDecimal(price),
		Quantity:    1,
		GroupSize:   1,
		TotalWage:   decimal.NewNullDecimal(price),
		Worker:      &storage.Worker{ID: workerID, Name: w.WorkerLabel},
		Process:     &storage.Process{ID: processID, Name: p.ProcessLabel},
		SpecModel:   &storage.SpecModel{ID: specModelID, Name: s.SpecModelLabel, ProcessID: processID, Price: price},
	}, nil
}
