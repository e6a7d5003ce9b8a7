package eligibility

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrNotEligible = errors.New("selection is not eligible")
)

type WorkerNode struct {
	WorkerID    int64         `json:"worker_id"`
	WorkerLabel string        `json:"worker_label"`
	Children    []ProcessNode `json:"children"`
}

type ProcessNode struct {
	ProcessID    int64           `json:"process_id"`
	ProcessLabel string          `json:"process_label"`
	Children     []SpecModelNode `json:"children"`
}

type SpecModelNode struct {
	SpecModelID    int64  `json:"spec_model_id"`
	SpecModelLabel string `json:"spec_model_label"`
}

// Build joins the flat collections into worker -> process -> spec model.
// Input order is kept at every level. Every node owns its children slice, so
// callers may mutate one branch without touching another.
func Build(workers []storage.Worker, processes []storage.Process, specModels []storage.SpecModel) []WorkerNode {
	byProcess := make(map[int64][]SpecModelNode, len(processes))
	for _, s := range specModels {
		byProcess[s.ProcessID] = append(byProcess[s.ProcessID], SpecModelNode{
			SpecModelID:    s.ID,
			SpecModelLabel: s.Name,
		})
	}

	tree := make([]WorkerNode, 0, len(workers))
	for _, w := range workers {
		node := WorkerNode{
			WorkerID:    w.ID,
			WorkerLabel: w.Name,
			Children:    []ProcessNode{},
		}

		for _, p := range processes {
			// nil and empty lists both mean nobody is eligible
			if !slices.Contains(p.EligibleWorkerIDs, w.ID) {
				continue
			}

			leaves := make([]SpecModelNode, len(byProcess[p.ID]))
			copy(leaves, byProcess[p.ID])

			node.Children = append(node.Children, ProcessNode{
				ProcessID:    p.ID,
				ProcessLabel: p.Name,
				Children:     leaves,
			})
		}

		tree = append(tree, node)
	}

	return tree
}

// ResolveUnitPrice returns the current price of the spec model. It is only
// used to pre-fill new entries; stored records keep their own price.
func ResolveUnitPrice(specModelID int64, specModels []storage.SpecModel) (decimal.Decimal, error) {
	for _, s := range specModels {
		if s.ID == specModelID {
			return s.Price, nil
		}
	}

	return decimal.Zero, ErrNotFound
}

// Find returns the process and spec model nodes for a complete selection.
func Find(tree []WorkerNode, workerID, processID, specModelID int64) (*WorkerNode, *ProcessNode, *SpecModelNode, bool) {
	for i := range tree {
		w := &tree[i]
		if w.WorkerID != workerID {
			continue
		}
		for j := range w.Children {
			p := &w.Children[j]
			if p.ProcessID != processID {
				continue
			}
			for k := range p.Children {
				if p.Children[k].SpecModelID == specModelID {
					return w, p, &p.Children[k], true
				}
			}
		}
	}

	return nil, nil, nil, false
}
