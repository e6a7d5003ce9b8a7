package storage

import "github.com/shopspring/decimal"

type Process struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// EligibleWorkerIDs is nil when the process has no eligibility rows at all.
	EligibleWorkerIDs []int64 `json:"worker_ids,omitempty"`
}

type SpecModel struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	ProcessID int64           `json:"process_id"`
	Price     decimal.Decimal `json:"price"`
}
