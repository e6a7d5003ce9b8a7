package storage

const (
	WorkerStatusActive = "active"
	WorkerStatusLeft   = "left"
)

type Worker struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Group     *string `json:"group,omitempty"`
	IDCard    *string `json:"id_card,omitempty"`
	EntryDate *string `json:"entry_date,omitempty"`
	LeaveDate *string `json:"leave_date,omitempty"`
	Remark    *string `json:"remark,omitempty"`
}
