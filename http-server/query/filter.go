package query

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"piece-wage/internal/storage"
)

var ErrInvalidParam = errors.New("invalid query parameter")

// WageLogFilter reads start_date, end_date, worker_id and process_id.
// Dates are normalized to YYYY-MM-DD, absent parameters leave the bound open.
func WageLogFilter(r *http.Request) (storage.WageLogFilter, error) {
	q := r.URL.Query()

	var filter storage.WageLogFilter
	var err error

	if filter.StartDate, err = date(q.Get("start_date"), "start_date"); err != nil {
		return storage.WageLogFilter{}, err
	}
	if filter.EndDate, err = date(q.Get("end_date"), "end_date"); err != nil {
		return storage.WageLogFilter{}, err
	}
	if filter.StartDate != "" && filter.EndDate != "" && filter.StartDate > filter.EndDate {
		return storage.WageLogFilter{}, fmt.Errorf("%w: start_date is after end_date", ErrInvalidParam)
	}

	if filter.WorkerID, err = ID(q.Get("worker_id"), "worker_id"); err != nil {
		return storage.WageLogFilter{}, err
	}
	if filter.ProcessID, err = ID(q.Get("process_id"), "process_id"); err != nil {
		return storage.WageLogFilter{}, err
	}

	return filter, nil
}

// ID parses an optional positive id. An empty value gives nil.
func ID(raw, name string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}

	return &v, nil
}

func date(raw, name string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	day, ok := storage.NormalizeDate(raw)
	if !ok {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}

	return day, nil
}
