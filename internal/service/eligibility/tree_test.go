package eligibility

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"piece-wage/internal/storage"
)

func fixtureCatalog() ([]storage.Worker, []storage.Process, []storage.SpecModel) {
	workers := []storage.Worker{
		{ID: 1, Name: "Li"},
		{ID: 2, Name: "Wang"},
		{ID: 3, Name: "Zhao"},
	}
	processes := []storage.Process{
		{ID: 10, Name: "Sew", EligibleWorkerIDs: []int64{1, 2}},
		{ID: 20, Name: "Cut", EligibleWorkerIDs: []int64{2}},
		{ID: 30, Name: "Pack"},                              // no relation rows
		{ID: 40, Name: "Iron", EligibleWorkerIDs: []int64{}}, // empty relation
		{ID: 50, Name: "Glue", EligibleWorkerIDs: []int64{1}},
	}
	specModels := []storage.SpecModel{
		{ID: 100, Name: "S1", ProcessID: 10, Price: decimal.NewFromInt(5)},
		{ID: 200, Name: "C1", ProcessID: 20, Price: decimal.RequireFromString("1.25")},
		{ID: 101, Name: "S2", ProcessID: 10, Price: decimal.NewFromInt(7)},
		{ID: 300, Name: "P1", ProcessID: 30, Price: decimal.NewFromInt(2)},
	}
	return workers, processes, specModels
}

func TestBuild_SingleChain(t *testing.T) {
	workers := []storage.Worker{{ID: 1, Name: "A"}}
	processes := []storage.Process{{ID: 10, Name: "Sew", EligibleWorkerIDs: []int64{1}}}
	specModels := []storage.SpecModel{{ID: 100, Name: "S1", ProcessID: 10, Price: decimal.NewFromInt(5)}}

	tree := Build(workers, processes, specModels)

	expected := []WorkerNode{
		{
			WorkerID:    1,
			WorkerLabel: "A",
			Children: []ProcessNode{
				{
					ProcessID:    10,
					ProcessLabel: "Sew",
					Children:     []SpecModelNode{{SpecModelID: 100, SpecModelLabel: "S1"}},
				},
			},
		},
	}
	assert.Equal(t, expected, tree)
}

func TestBuild_KeepsInputOrderAndEligibility(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()

	tree := Build(workers, processes, specModels)
	require.Len(t, tree, 3)

	// Li: Sew + Glue, Sew keeps spec model input order (S1 before S2)
	assert.Equal(t, int64(1), tree[0].WorkerID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, int64(10), tree[0].Children[0].ProcessID)
	assert.Equal(t, int64(50), tree[0].Children[1].ProcessID)
	assert.Equal(t, []SpecModelNode{{100, "S1"}, {101, "S2"}}, tree[0].Children[0].Children)

	// Glue has no spec models: still a node, with no leaves
	assert.NotNil(t, tree[0].Children[1].Children)
	assert.Empty(t, tree[0].Children[1].Children)

	// Wang: Sew + Cut
	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, int64(10), tree[1].Children[0].ProcessID)
	assert.Equal(t, int64(20), tree[1].Children[1].ProcessID)

	// Zhao is eligible for nothing but is not omitted
	assert.Equal(t, int64(3), tree[2].WorkerID)
	assert.NotNil(t, tree[2].Children)
	assert.Empty(t, tree[2].Children)
}

func TestBuild_NilAndEmptyEligibleListsExclude(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()

	for _, w := range Build(workers, processes, specModels) {
		for _, p := range w.Children {
			assert.NotEqual(t, int64(30), p.ProcessID, "process without relation rows leaked under worker %d", w.WorkerID)
			assert.NotEqual(t, int64(40), p.ProcessID, "process with empty relation leaked under worker %d", w.WorkerID)
		}
	}
}

func TestBuild_InvariantsHold(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()

	processByID := map[int64]storage.Process{}
	for _, p := range processes {
		processByID[p.ID] = p
	}
	specByID := map[int64]storage.SpecModel{}
	for _, s := range specModels {
		specByID[s.ID] = s
	}

	for _, w := range Build(workers, processes, specModels) {
		for _, p := range w.Children {
			assert.True(t, slices.Contains(processByID[p.ProcessID].EligibleWorkerIDs, w.WorkerID))
			for _, s := range p.Children {
				assert.Equal(t, p.ProcessID, specByID[s.SpecModelID].ProcessID)
			}
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()

	first := Build(workers, processes, specModels)
	second := Build(workers, processes, specModels)

	assert.Equal(t, first, second)
}

func TestBuild_NodesDoNotShareLeaves(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()

	tree := Build(workers, processes, specModels)
	tree[0].Children[0].Children[0].SpecModelLabel = "changed"

	assert.Equal(t, "S1", tree[1].Children[0].Children[0].SpecModelLabel)
}

func TestBuild_Empty(t *testing.T) {
	assert.Equal(t, []WorkerNode{}, Build(nil, nil, nil))
}

func TestResolveUnitPrice(t *testing.T) {
	_, _, specModels := fixtureCatalog()

	price, err := ResolveUnitPrice(200, specModels)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("1.25")))

	price, err = ResolveUnitPrice(999, specModels)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, price.IsZero())
}

func TestFind(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()
	tree := Build(workers, processes, specModels)

	w, p, s, ok := Find(tree, 2, 20, 200)
	require.True(t, ok)
	assert.Equal(t, "Wang", w.WorkerLabel)
	assert.Equal(t, "Cut", p.ProcessLabel)
	assert.Equal(t, "C1", s.SpecModelLabel)

	_, _, _, ok = Find(tree, 1, 20, 200)
	assert.False(t, ok, "Li is not eligible for Cut")

	_, _, _, ok = Find(tree, 2, 10, 200)
	assert.False(t, ok, "C1 belongs to Cut, not Sew")
}
