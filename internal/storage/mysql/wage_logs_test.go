package mysql

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"piece-wage/internal/config"
	"piece-wage/internal/storage"
)

func TestBuildWageLogQuery_NoFilter(t *testing.T) {
	query, args := buildWageLogQuery(storage.WageLogFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY wl.date ASC, wl.id ASC"))
	assert.Empty(t, args)
}

func TestBuildWageLogQuery_AllFilters(t *testing.T) {
	workerID, processID := int64(3), int64(10)

	query, args := buildWageLogQuery(storage.WageLogFilter{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		WorkerID:  &workerID,
		ProcessID: &processID,
	})

	assert.Contains(t, query, "WHERE wl.date >= ? AND wl.date <= ? AND wl.worker_id = ? AND wl.process_id = ?")
	assert.Equal(t, []any{"2024-01-01", "2024-01-31", int64(3), int64(10)}, args)
}

func TestBuildWageLogQuery_PartialFilter(t *testing.T) {
	processID := int64(7)

	query, args := buildWageLogQuery(storage.WageLogFilter{EndDate: "2024-02-01", ProcessID: &processID})

	assert.Contains(t, query, "WHERE wl.date <= ? AND wl.process_id = ?")
	assert.Equal(t, []any{"2024-02-01", int64(7)}, args)
}

func TestParseDecimal(t *testing.T) {
	d := parseDecimal(sql.NullString{String: " 12.50 ", Valid: true})
	assert.True(t, d.Valid)
	assert.Equal(t, "12.5", d.Decimal.String())

	assert.False(t, parseDecimal(sql.NullString{}).Valid)
	assert.False(t, parseDecimal(sql.NullString{String: "n/a", Valid: true}).Valid)
}

func TestNullDate(t *testing.T) {
	assert.Nil(t, nullDate(sql.NullString{}))
	assert.Equal(t, "2024-03-01", *nullDate(sql.NullString{String: "2024-03-01T00:00:00Z", Valid: true}))
	assert.Equal(t, "garbage", *nullDate(sql.NullString{String: "garbage", Valid: true}))
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DBUser:     "wage",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     3307,
		DBName:     "wage_ledger",
		ParseTime:  true,
	})

	assert.True(t, strings.HasPrefix(dsn, "wage:secret@tcp(db:3307)/wage_ledger"))
	assert.Contains(t, dsn, "parseTime=true")
}
