package rollback

import "time"

// Failure records one undo that failed during compensation. Failures are
// kept by the compensation journal so they can be listed and replayed after
// the remote store recovers.
type Failure struct {
	ID        int64     `json:"id"`
	UnitID    string    `json:"unit_id"`
	UnitName  string    `json:"unit_name"`
	Step      int       `json:"step"`
	Operation Operation `json:"operation"`
	Cause     string    `json:"cause"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
