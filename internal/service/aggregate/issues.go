package aggregate

import (
	"github.com/shopspring/decimal"
	"piece-wage/internal/storage"
)

type IssueKind string

const (
	// MalformedRecord: the record lacks a usable date or worker and could not
	// be placed in the pivot.
	MalformedRecord IssueKind = "malformed_record"
	// InvalidNumeric: a money field was missing or not a number and counted as zero.
	InvalidNumeric IssueKind = "invalid_numeric"
)

type Issue struct {
	RecordID int64     `json:"record_id"`
	Kind     IssueKind `json:"kind"`
	Field    string    `json:"field"`
	Reason   string    `json:"reason"`
}

func wageOf(rec storage.WageLog) (decimal.Decimal, *Issue) {
	if rec.TotalWage.Valid {
		return rec.TotalWage.Decimal, nil
	}

	return decimal.Zero, &Issue{
		RecordID: rec.ID,
		Kind:     InvalidNumeric,
		Field:    "total_wage",
		Reason:   "missing or non-numeric total wage counted as 0",
	}
}

func mergeIssues(lists ...[]Issue) []Issue {
	type key struct {
		id    int64
		kind  IssueKind
		field string
	}

	seen := map[key]bool{}
	res := []Issue{}
	for _, list := range lists {
		for _, is := range list {
			k := key{is.RecordID, is.Kind, is.Field}
			if seen[k] {
				continue
			}
			seen[k] = true
			res = append(res, is)
		}
	}

	return res
}
