package reissue

import (
	"encoding/json"

	"github.com/google/uuid"

	"encore.app/billing/chargingapi"
	"encore.app/billing/model"
)

// emptyAddress is the placeholder a freshly generated bill carries until
// the billing account's contact details are resolved downstream.
var emptyAddress = json.RawMessage(`{}`)

// newReissueBill produces the local bill mirroring one external invoice.
// The charging service reports credit line values as positive magnitudes;
// locally a credit note value is stored negative, hence the inversion.
func newReissueBill(source *model.Bill, invoice *chargingapi.Invoice, billRunID string) model.Bill {
	originalBillID := source.ID

	return model.Bill{
		ID:                  uuid.NewString(),
		ExternalID:          invoice.ID,
		BillRunID:           billRunID,
		BillingAccountID:    source.BillingAccountID,
		AccountNumber:       source.AccountNumber,
		Address:             emptyAddress,
		Status:              model.BillStatusIssued,
		Credit:              false,
		FinancialYearEnding: source.FinancialYearEnding,
		NetAmount:           invoice.NetTotal,
		InvoiceValue:        invoice.DebitLineValue,
		CreditNoteValue:     -invoice.CreditLineValue,
		DeminimisInvoice:    invoice.DeminimisInvoice,
		RebillingState:      rebillingStateFor(invoice.RebilledType),
		OriginalBillID:      &originalBillID,
	}
}

// rebillingStateFor maps the external rebilled type onto the local enum.
// An ordinary invoice (type O) has no rebilling state.
func rebillingStateFor(rebilledType chargingapi.RebilledType) *model.RebillingState {
	switch rebilledType {
	case chargingapi.RebilledTypeCancelling:
		state := model.RebillingStateReversal
		return &state
	case chargingapi.RebilledTypeReissuing:
		state := model.RebillingStateRebill
		return &state
	default:
		return nil
	}
}

func newReissueBillLicence(billID string, source *model.BillLicence) model.BillLicence {
	return model.BillLicence{
		ID:         uuid.NewString(),
		BillID:     billID,
		LicenceID:  source.LicenceID,
		LicenceRef: source.LicenceRef,
	}
}

// newReissueTransaction clones the source transaction's charge fields and
// overwrites identity, sign and ownership. The external charge value is
// always a positive magnitude; the local sign encodes credit vs debit.
func newReissueTransaction(source *model.Transaction, external *chargingapi.Transaction, billLicenceID string) model.Transaction {
	trx := *source

	trx.ID = uuid.NewString()
	trx.BillLicenceID = billLicenceID
	trx.ExternalID = external.ID
	trx.Credit = external.Credit
	if external.Credit {
		trx.NetAmount = -external.ChargeValue
	} else {
		trx.NetAmount = external.ChargeValue
	}

	return trx
}
