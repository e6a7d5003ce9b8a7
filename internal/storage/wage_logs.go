package storage

import "github.com/shopspring/decimal"

// WageLog is one stored wage entry. TotalWage is authoritative and is never
// recomputed from Quantity and ActualPrice.
type WageLog struct {
	ID          int64               `json:"id"`
	WorkerID    *int64              `json:"worker_id"`
	ProcessID   *int64              `json:"process_id"`
	SpecModelID *int64              `json:"spec_model_id"`
	Date        string              `json:"date"`
	ActualPrice decimal.NullDecimal `json:"actual_price"`
	Quantity    int                 `json:"quantity"`
	GroupSize   int                 `json:"actual_group_size"`
	TotalWage   decimal.NullDecimal `json:"total_wage"`
	Remark      *string             `json:"remark,omitempty"`

	Worker    *Worker    `json:"worker,omitempty"`
	Process   *Process   `json:"process,omitempty"`
	SpecModel *SpecModel `json:"spec_model,omitempty"`
}

// WageLogFilter fields are optional and combined with AND.
type WageLogFilter struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	WorkerID  *int64 `json:"worker_id,omitempty"`
	ProcessID *int64 `json:"process_id,omitempty"`
}
