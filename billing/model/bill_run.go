package model

import "time"

// BillRun is the destination bill run that reissued bills are generated
// into. ExternalID is the charging service's id for the same bill run.
type BillRun struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
