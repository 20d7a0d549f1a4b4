package model

import (
	"encoding/json"
	"time"
)

// Transaction is one charge line on a bill licence. ExternalID is the id the
// charging service knows the transaction by; NetAmount is signed locally
// (negative for credits) even though the charging service only ever reports
// positive magnitudes.
type Transaction struct {
	ID                 string          `json:"id"`
	BillLicenceID      string          `json:"bill_licence_id"`
	ExternalID         string          `json:"external_id"`
	Credit             bool            `json:"credit"`
	NetAmount          int64           `json:"net_amount"`
	Description        string          `json:"description"`
	ChargeCategoryCode string          `json:"charge_category_code"`
	AuthorisedDays     int32           `json:"authorised_days"`
	BillableDays       int32           `json:"billable_days"`
	ChargeDetails      json.RawMessage `json:"charge_details,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
