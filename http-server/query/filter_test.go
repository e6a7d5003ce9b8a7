package query

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"piece-wage/internal/storage"
)

func TestWageLogFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/wage-log/query?start_date=2024/01/05&end_date=2024-01-31T00:00:00Z&worker_id=3", nil)

	filter, err := WageLogFilter(req)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", filter.StartDate)
	assert.Equal(t, "2024-01-31", filter.EndDate)
	require.NotNil(t, filter.WorkerID)
	assert.Equal(t, int64(3), *filter.WorkerID)
	assert.Nil(t, filter.ProcessID)
}

func TestWageLogFilter_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/wage-log/query", nil)

	filter, err := WageLogFilter(req)
	require.NoError(t, err)
	assert.Equal(t, storage.WageLogFilter{}, filter)
}

func TestWageLogFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad start", "start_date=yesterday"},
		{"bad end", "end_date=2024-13-45"},
		{"reversed range", "start_date=2024-02-01&end_date=2024-01-01"},
		{"bad worker", "worker_id=abc"},
		{"negative process", "process_id=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/wage-log/query?"+tt.query, nil)

			_, err := WageLogFilter(req)
			assert.True(t, errors.Is(err, ErrInvalidParam))
		})
	}
}
