package eligibility

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"piece-wage/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestOnDuty(t *testing.T) {
	workers := []storage.Worker{
		{ID: 1, Name: "always", Status: storage.WorkerStatusActive},
		{ID: 2, Name: "joins later", Status: storage.WorkerStatusActive, EntryDate: strPtr("2024-02-01")},
		{ID: 3, Name: "left before", Status: storage.WorkerStatusLeft, LeaveDate: strPtr("2024-01-10")},
		{ID: 4, Name: "leaves that day", Status: storage.WorkerStatusLeft, LeaveDate: strPtr("2024-01-15T00:00:00Z")},
		{ID: 5, Name: "left, no date", Status: storage.WorkerStatusLeft},
		{ID: 6, Name: "joined", Status: storage.WorkerStatusActive, EntryDate: strPtr("2023-12-01")},
	}

	got := OnDuty(workers, "2024-01-15")

	var ids []int64
	for _, w := range got {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []int64{1, 4, 6}, ids)
}

func TestOnDuty_NoDateKeepsEveryone(t *testing.T) {
	workers := []storage.Worker{{ID: 1}, {ID: 2, Status: storage.WorkerStatusLeft}}

	assert.Equal(t, workers, OnDuty(workers, ""))
	assert.Equal(t, workers, OnDuty(workers, "not a date"))
}

func TestNewDraft_PrefillsFromSpecModel(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()
	tree := Build(workers, processes, specModels)

	draft, err := NewDraft(tree, specModels, Selection{WorkerID: 2, ProcessID: 20, SpecModelID: 200, Date: "2024-05-06 10:00:00"})
	require.NoError(t, err)

	require.NotNil(t, draft.WorkerID)
	assert.Equal(t, int64(2), *draft.WorkerID)
	assert.Equal(t, int64(20), *draft.ProcessID)
	assert.Equal(t, int64(200), *draft.SpecModelID)
	assert.Equal(t, "2024-05-06", draft.Date)
	assert.Equal(t, 1, draft.Quantity)
	assert.Equal(t, 1, draft.GroupSize)
	assert.True(t, draft.ActualPrice.Valid)
	assert.Equal(t, "1.25", draft.ActualPrice.Decimal.String())
	assert.Equal(t, "1.25", draft.TotalWage.Decimal.String())
	assert.Equal(t, "Wang", draft.Worker.Name)
	assert.Equal(t, "Cut", draft.Process.Name)
	assert.Equal(t, "C1", draft.SpecModel.Name)
}

func TestNewDraft_Errors(t *testing.T) {
	workers, processes, specModels := fixtureCatalog()
	tree := Build(workers, processes, specModels)

	_, err := NewDraft(tree, specModels, Selection{WorkerID: 2, ProcessID: 20, SpecModelID: 999, Date: "2024-05-06"})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = NewDraft(tree, specModels, Selection{WorkerID: 1, ProcessID: 20, SpecModelID: 200, Date: "2024-05-06"})
	assert.True(t, errors.Is(err, ErrNotEligible))

	_, err = NewDraft(tree, specModels, Selection{WorkerID: 2, ProcessID: 20, SpecModelID: 200, Date: ""})
	assert.Error(t, err)
}
