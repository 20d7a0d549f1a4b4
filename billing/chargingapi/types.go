package chargingapi

// RebilledType tags which side of a reissue an invoice is: C cancels the
// original, R is its replacement, O is an ordinary invoice.
type RebilledType string

const (
	RebilledTypeCancelling RebilledType = "C"
	RebilledTypeReissuing  RebilledType = "R"
	RebilledTypeOther      RebilledType = "O"
)

// StatusPending is the only transient bill run status; every other value
// means the charging service has finished processing.
const StatusPending = "pending"

// InvoiceHeader is the abbreviated invoice reference returned by a reissue
// request, before the full invoice detail has been generated.
type InvoiceHeader struct {
	ID           string       `json:"id"`
	RebilledType RebilledType `json:"rebilledType"`
}

// Invoice is the charging service's view of one generated invoice.
type Invoice struct {
	ID                string       `json:"id"`
	BillRunID         string       `json:"billRunId"`
	RebilledInvoiceID string       `json:"rebilledInvoiceId"`
	RebilledType      RebilledType `json:"rebilledType"`
	NetTotal          int64        `json:"netTotal"`
	DeminimisInvoice  bool         `json:"deminimisInvoice"`
	DebitLineValue    int64        `json:"debitLineValue"`
	CreditLineValue   int64        `json:"creditLineValue"`
	Licences          []Licence    `json:"licences"`
}

type Licence struct {
	ID            string        `json:"id"`
	LicenceNumber string        `json:"licenceNumber"`
	Transactions  []Transaction `json:"transactions"`
}

// Transaction carries the charging service's transaction line. ChargeValue
// is always a positive magnitude; Credit says which way it goes.
// RebilledTransactionID points back at the external id of the source
// transaction this line was generated from, and is only unique within one
// licence.
type Transaction struct {
	ID                    string `json:"id"`
	ChargeValue           int64  `json:"chargeValue"`
	Credit                bool   `json:"credit"`
	RebilledTransactionID string `json:"rebilledTransactionId"`
}

type reissueResponse struct {
	Invoices []InvoiceHeader `json:"invoices"`
}

type viewInvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type statusResponse struct {
	Status string `json:"status"`
}
