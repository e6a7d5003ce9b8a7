package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"piece-wage/internal/service/report"
	"piece-wage/internal/storage"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateExcel(ctx context.Context, filter storage.WageLogFilter, kind report.Kind) ([]byte, string, error) {
	args := m.Called(ctx, filter, kind)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func TestGenerateReportExcel_Success(t *testing.T) {
	filter := storage.WageLogFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"}

	m := new(MockGenerator)
	m.On("GenerateExcel", mock.Anything, filter, report.KindRaw).
		Return([]byte("xlsx"), "query_records_2024-01-01_2024-01-31.xlsx", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/excel?kind=raw&start_date=2024-01-01&end_date=2024-01-31", nil)
	rr := httptest.NewRecorder()

	GenerateReportExcel(slog.Default(), time.Second, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=query_records_2024-01-01_2024-01-31.xlsx", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", rr.Body.String())

	m.AssertExpectations(t)
}

func TestGenerateReportExcel_DefaultKind(t *testing.T) {
	m := new(MockGenerator)
	m.On("GenerateExcel", mock.Anything, storage.WageLogFilter{}, report.KindMatrix).
		Return([]byte("xlsx"), "wage_report_2024-06-01.xlsx", nil)

	rr := httptest.NewRecorder()
	GenerateReportExcel(slog.Default(), time.Second, m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	m.AssertExpectations(t)
}

func TestGenerateReportExcel_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		err      error
		call     bool
		wantCode int
	}{
		{name: "unknown kind", query: "kind=pdf", wantCode: http.StatusBadRequest},
		{name: "bad date", query: "start_date=2024-99-01", wantCode: http.StatusBadRequest},
		{name: "missing input", query: "kind=matrix", err: fmt.Errorf("wrap: %w", report.ErrMissingInput), call: true, wantCode: http.StatusUnprocessableEntity},
		{name: "generator error", query: "kind=matrix", err: assert.AnError, call: true, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockGenerator)
			if tt.call {
				m.On("GenerateExcel", mock.Anything, mock.Anything, mock.Anything).Return(nil, "", tt.err)
			}

			rr := httptest.NewRecorder()
			GenerateReportExcel(slog.Default(), time.Second, m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel?"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rr.Code)
			if !tt.call {
				m.AssertNotCalled(t, "GenerateExcel")
			}
		})
	}
}
