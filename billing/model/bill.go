package model

import (
	"encoding/json"
	"time"
)

type Bill struct {
	ID                  string          `json:"id"`
	ExternalID          string          `json:"external_id"`
	BillRunID           string          `json:"bill_run_id"`
	BillingAccountID    string          `json:"billing_account_id"`
	AccountNumber       string          `json:"account_number"`
	Address             json.RawMessage `json:"address,omitempty"`
	Status              BillStatus      `json:"status"`
	Credit              bool            `json:"credit"`
	FinancialYearEnding int32           `json:"financial_year_ending"`
	NetAmount           int64           `json:"net_amount"`
	InvoiceValue        int64           `json:"invoice_value"`
	CreditNoteValue     int64           `json:"credit_note_value"`
	DeminimisInvoice    bool            `json:"deminimis_invoice"`
	RebillingState      *RebillingState `json:"rebilling_state,omitempty"`
	OriginalBillID      *string         `json:"original_bill_id,omitempty"`
	BillLicences        []BillLicence   `json:"bill_licences,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// BillStatus tracks where a bill sits in the reissue lifecycle. Only issued
// bills can be reissued; the reissuing status is the row-level guard against
// two concurrent reissues of the same bill.
type BillStatus string

const (
	BillStatusIssued    BillStatus = "issued"
	BillStatusReissuing BillStatus = "reissuing"
	BillStatusReissued  BillStatus = "reissued"
)

// RebillingState records a bill's role in a reissue: the cancelling bill is a
// reversal, its replacement is a rebill, and the source bill it corrects is
// marked rebilled. An untouched bill has no rebilling state (nil).
type RebillingState string

const (
	RebillingStateReversal RebillingState = "reversal"
	RebillingStateRebill   RebillingState = "rebill"
	RebillingStateRebilled RebillingState = "rebilled"
)
