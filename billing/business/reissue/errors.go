package reissue

import "fmt"

// PollTimeoutError is returned when the external bill run is still pending
// after the poll policy's maximum attempts have been spent.
type PollTimeoutError struct {
	BillRunExternalID string
	Attempts          int
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("bill run %s still pending after %d status checks", e.BillRunExternalID, e.Attempts)
}

// LicenceMatchError is returned when a source bill licence has no
// counterpart licence on the external invoice. A partial reissue would be
// financially incorrect, so this fails the whole run.
type LicenceMatchError struct {
	BillLicenceID     string
	LicenceRef        string
	InvoiceExternalID string
}

func (e *LicenceMatchError) Error() string {
	return fmt.Sprintf("no licence %q on external invoice %s for bill licence %s", e.LicenceRef, e.InvoiceExternalID, e.BillLicenceID)
}

// TransactionMatchError is returned when a source transaction has no
// external transaction pointing back at it.
type TransactionMatchError struct {
	TransactionID         string
	TransactionExternalID string
	LicenceRef            string
	InvoiceExternalID     string
}

func (e *TransactionMatchError) Error() string {
	return fmt.Sprintf("no external transaction rebilled from %s (licence %q, invoice %s) for transaction %s",
		e.TransactionExternalID, e.LicenceRef, e.InvoiceExternalID, e.TransactionID)
}
