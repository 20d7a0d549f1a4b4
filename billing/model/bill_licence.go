package model

import "time"

// BillLicence is the portion of a bill attributable to one abstraction
// licence. It is owned by exactly one bill.
type BillLicence struct {
	ID           string        `json:"id"`
	BillID       string        `json:"bill_id"`
	LicenceID    string        `json:"licence_id"`
	LicenceRef   string        `json:"licence_ref"`
	Transactions []Transaction `json:"transactions,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
