package storage

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"2006/1/2",
	"2006-1-2",
	"2006.01.02",
}

// NormalizeDate returns raw as YYYY-MM-DD. The time of day is dropped, the
// calendar day is taken as written (no zone conversion).
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}

	return "", false
}
