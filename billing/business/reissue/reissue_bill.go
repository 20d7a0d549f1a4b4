package reissue

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/chargingapi"
	"encore.app/billing/model"
)

// ReissueBill asks the charging service to reissue one bill, waits for the
// resulting bill run to finish processing, and rebuilds the local graph of
// bills, bill licences and transactions from the two invoices it produced.
//
// The returned result is not persisted here: either the whole graph comes
// back with the source bill's provenance fields patched in memory, or an
// error comes back and the source bill is untouched, so a failed run is
// always safe to retry.
func (b *business) ReissueBill(ctx context.Context, sourceBill *model.Bill, reissueBillRun *model.BillRun) (*model.ReissueResult, error) {
	invoices, err := b.api.RequestReissue(ctx, reissueBillRun.ExternalID, sourceBill.ExternalID)
	if err != nil {
		rlog.Error("reissue request rejected", "bill_id", sourceBill.ID, "bill_external_id", sourceBill.ExternalID, "error", err)
		return nil, err
	}

	if _, err := b.poller.WaitForBillRun(ctx, reissueBillRun.ExternalID); err != nil {
		rlog.Error("reissue bill run did not settle", "bill_id", sourceBill.ID, "bill_run_external_id", reissueBillRun.ExternalID, "error", err)
		return nil, err
	}

	col := newCollector(b.billLicenceKey)

	// The cancelling and reissuing invoices are independent destination
	// bills; processing order between them does not matter.
	for _, header := range invoices {
		invoice, err := b.api.ViewInvoice(ctx, reissueBillRun.ExternalID, header.ID)
		if err != nil {
			rlog.Error("failed to fetch reissue invoice", "bill_id", sourceBill.ID, "invoice_external_id", header.ID, "error", err)
			return nil, err
		}

		if err := b.reconcileInvoice(col, sourceBill, reissueBillRun, invoice); err != nil {
			return nil, err
		}
	}

	finalizeProvenance(sourceBill)

	result := col.result()
	rlog.Debug("reissue graph built",
		"bill_id", sourceBill.ID,
		"bills", len(result.Bills),
		"bill_licences", len(result.BillLicences),
		"transactions", len(result.Transactions),
	)
	return result, nil
}

// reconcileInvoice attaches every source bill licence and its transactions
// to the destination bill mirroring one external invoice.
func (b *business) reconcileInvoice(col *collector, sourceBill *model.Bill, reissueBillRun *model.BillRun, invoice *chargingapi.Invoice) error {
	bill := col.billFor(sourceBill.BillingAccountID, invoice.ID, func() model.Bill {
		return newReissueBill(sourceBill, invoice, reissueBillRun.ID)
	})

	for i := range sourceBill.BillLicences {
		sourceLicence := &sourceBill.BillLicences[i]

		externalLicence := findLicence(invoice, sourceLicence.LicenceRef)
		if externalLicence == nil {
			return &LicenceMatchError{
				BillLicenceID:     sourceLicence.ID,
				LicenceRef:        sourceLicence.LicenceRef,
				InvoiceExternalID: invoice.ID,
			}
		}

		billLicence := col.billLicenceFor(bill, sourceLicence, func() model.BillLicence {
			return newReissueBillLicence(bill.ID, sourceLicence)
		})

		for j := range sourceLicence.Transactions {
			sourceTrx := &sourceLicence.Transactions[j]

			externalTrx := findTransaction(externalLicence, sourceTrx.ExternalID)
			if externalTrx == nil {
				return &TransactionMatchError{
					TransactionID:         sourceTrx.ID,
					TransactionExternalID: sourceTrx.ExternalID,
					LicenceRef:            sourceLicence.LicenceRef,
					InvoiceExternalID:     invoice.ID,
				}
			}

			col.addTransaction(newReissueTransaction(sourceTrx, externalTrx, billLicence.ID))
		}
	}

	return nil
}

// findLicence scopes transaction matching to one licence: rebilled
// transaction ids are only unique within a single external licence.
func findLicence(invoice *chargingapi.Invoice, licenceRef string) *chargingapi.Licence {
	for i := range invoice.Licences {
		if invoice.Licences[i].LicenceNumber == licenceRef {
			return &invoice.Licences[i]
		}
	}
	return nil
}

func findTransaction(licence *chargingapi.Licence, sourceExternalID string) *chargingapi.Transaction {
	for i := range licence.Transactions {
		if licence.Transactions[i].RebilledTransactionID == sourceExternalID {
			return &licence.Transactions[i]
		}
	}
	return nil
}

// finalizeProvenance marks the source bill rebilled and anchors the
// provenance chain: the first reissue points the bill at itself, and any
// later reissue of a generated bill inherits that same ancestor, so chains
// of repeated reissues always resolve to the first bill ever issued.
func finalizeProvenance(sourceBill *model.Bill) {
	rebilled := model.RebillingStateRebilled
	sourceBill.RebillingState = &rebilled

	if sourceBill.OriginalBillID == nil {
		originalBillID := sourceBill.ID
		sourceBill.OriginalBillID = &originalBillID
	}
}
