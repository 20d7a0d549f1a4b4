package chargingapi

import "fmt"

// Error is returned whenever one of the three charging service calls does
// not come back with a 2xx response. It keeps the external ids involved and
// the raw response body so a failed reissue can be diagnosed from the error
// alone.
type Error struct {
	Op                string // "request reissue", "view invoice", "view bill run status"
	BillRunExternalID string
	BillExternalID    string
	InvoiceExternalID string
	StatusCode        int
	ResponseBody      []byte
	Err               error // transport-level cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("charging api: %s for bill run %s: %v", e.Op, e.BillRunExternalID, e.Err)
	}
	return fmt.Sprintf("charging api: %s for bill run %s: unexpected status %d", e.Op, e.BillRunExternalID, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}
