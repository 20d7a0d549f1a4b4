package reissue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/chargingapi"
	"encore.app/billing/mocks/chargingapi/charging_api"
	"encore.app/billing/model"
)

func sourceBillFixture() *model.Bill {
	return &model.Bill{
		ID:                  "bill-s1",
		ExternalID:          "ext-bill-s1",
		BillRunID:           "bill-run-old",
		BillingAccountID:    "account-a1",
		AccountNumber:       "A00000001",
		Status:              model.BillStatusReissuing,
		FinancialYearEnding: 2026,
		NetAmount:           500,
		InvoiceValue:        500,
		BillLicences: []model.BillLicence{
			{
				ID:         "bill-licence-l1",
				BillID:     "bill-s1",
				LicenceID:  "licence-l1",
				LicenceRef: "01/123",
				Transactions: []model.Transaction{
					{
						ID:                 "trx-t1",
						BillLicenceID:      "bill-licence-l1",
						ExternalID:         "ext-trx-t1",
						Credit:             false,
						NetAmount:          500,
						Description:        "Water abstraction charge",
						ChargeCategoryCode: "4.2.1",
						AuthorisedDays:     214,
						BillableDays:       214,
					},
				},
			},
		},
	}
}

func reissueBillRunFixture() *model.BillRun {
	return &model.BillRun{
		ID:         "bill-run-new",
		ExternalID: "ext-bill-run-new",
		Status:     "ready",
	}
}

// cancellingInvoice and reissuingInvoice mirror the two invoices the
// charging service generates for one reissue: the C invoice credits the
// original charge back, the R invoice charges it again.
func cancellingInvoice() *chargingapi.Invoice {
	return &chargingapi.Invoice{
		ID:                "ext-invoice-i1",
		BillRunID:         "ext-bill-run-new",
		RebilledInvoiceID: "ext-bill-s1",
		RebilledType:      chargingapi.RebilledTypeCancelling,
		NetTotal:          -500,
		DebitLineValue:    0,
		CreditLineValue:   500,
		Licences: []chargingapi.Licence{
			{
				ID:            "ext-licence-i1-l1",
				LicenceNumber: "01/123",
				Transactions: []chargingapi.Transaction{
					{
						ID:                    "ext-trx-i1-t1",
						ChargeValue:           500,
						Credit:                true,
						RebilledTransactionID: "ext-trx-t1",
					},
				},
			},
		},
	}
}

func reissuingInvoice() *chargingapi.Invoice {
	return &chargingapi.Invoice{
		ID:                "ext-invoice-i2",
		BillRunID:         "ext-bill-run-new",
		RebilledInvoiceID: "ext-bill-s1",
		RebilledType:      chargingapi.RebilledTypeReissuing,
		NetTotal:          500,
		DebitLineValue:    500,
		CreditLineValue:   0,
		Licences: []chargingapi.Licence{
			{
				ID:            "ext-licence-i2-l1",
				LicenceNumber: "01/123",
				Transactions: []chargingapi.Transaction{
					{
						ID:                    "ext-trx-i2-t1",
						ChargeValue:           500,
						Credit:                false,
						RebilledTransactionID: "ext-trx-t1",
					},
				},
			},
		},
	}
}

func invoiceHeaders() []chargingapi.InvoiceHeader {
	return []chargingapi.InvoiceHeader{
		{ID: "ext-invoice-i1", RebilledType: chargingapi.RebilledTypeCancelling},
		{ID: "ext-invoice-i2", RebilledType: chargingapi.RebilledTypeReissuing},
	}
}

func TestReissueBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := charging_api.NewMockAPI(ctrl)
	business := NewReissueBusiness(mockAPI)

	sourceBill := sourceBillFixture()
	billRun := reissueBillRunFixture()

	mockAPI.EXPECT().
		RequestReissue(gomock.Any(), "ext-bill-run-new", "ext-bill-s1").
		Return(invoiceHeaders(), nil)
	mockAPI.EXPECT().
		ViewBillRunStatus(gomock.Any(), "ext-bill-run-new").
		Return("initialised", nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), "ext-bill-run-new", "ext-invoice-i1").
		Return(cancellingInvoice(), nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), "ext-bill-run-new", "ext-invoice-i2").
		Return(reissuingInvoice(), nil)

	result, err := business.ReissueBill(context.Background(), sourceBill, billRun)
	require.NoError(t, err)
	require.NotNil(t, result)

	// One destination bill per invoice, both in the new bill run.
	require.Len(t, result.Bills, 2)

	var cancelling, reissuing *model.Bill
	for i := range result.Bills {
		switch result.Bills[i].ExternalID {
		case "ext-invoice-i1":
			cancelling = &result.Bills[i]
		case "ext-invoice-i2":
			reissuing = &result.Bills[i]
		}
	}
	require.NotNil(t, cancelling)
	require.NotNil(t, reissuing)

	assert.Equal(t, "bill-run-new", cancelling.BillRunID)
	assert.Equal(t, "account-a1", cancelling.BillingAccountID)
	assert.Equal(t, "A00000001", cancelling.AccountNumber)
	assert.Equal(t, model.BillStatusIssued, cancelling.Status)
	assert.Equal(t, int32(2026), cancelling.FinancialYearEnding)
	assert.Equal(t, int64(-500), cancelling.NetAmount)
	assert.Equal(t, int64(0), cancelling.InvoiceValue)
	assert.Equal(t, int64(-500), cancelling.CreditNoteValue)
	require.NotNil(t, cancelling.RebillingState)
	assert.Equal(t, model.RebillingStateReversal, *cancelling.RebillingState)
	require.NotNil(t, cancelling.OriginalBillID)
	assert.Equal(t, "bill-s1", *cancelling.OriginalBillID)

	assert.Equal(t, int64(500), reissuing.NetAmount)
	assert.Equal(t, int64(500), reissuing.InvoiceValue)
	assert.Equal(t, int64(0), reissuing.CreditNoteValue)
	require.NotNil(t, reissuing.RebillingState)
	assert.Equal(t, model.RebillingStateRebill, *reissuing.RebillingState)
	require.NotNil(t, reissuing.OriginalBillID)
	assert.Equal(t, "bill-s1", *reissuing.OriginalBillID)

	// The legacy dedup key collapses both invoices' licences for one
	// billing account onto a single generated bill licence.
	require.Len(t, result.BillLicences, 1)
	assert.Equal(t, "licence-l1", result.BillLicences[0].LicenceID)
	assert.Equal(t, "01/123", result.BillLicences[0].LicenceRef)

	require.Len(t, result.Transactions, 2)
	var creditTrx, debitTrx *model.Transaction
	for i := range result.Transactions {
		if result.Transactions[i].Credit {
			creditTrx = &result.Transactions[i]
		} else {
			debitTrx = &result.Transactions[i]
		}
	}
	require.NotNil(t, creditTrx)
	require.NotNil(t, debitTrx)

	assert.Equal(t, "ext-trx-i1-t1", creditTrx.ExternalID)
	assert.Equal(t, int64(-500), creditTrx.NetAmount)
	assert.Equal(t, result.BillLicences[0].ID, creditTrx.BillLicenceID)
	assert.Equal(t, "Water abstraction charge", creditTrx.Description)
	assert.Equal(t, "4.2.1", creditTrx.ChargeCategoryCode)
	assert.Equal(t, int32(214), creditTrx.AuthorisedDays)

	assert.Equal(t, "ext-trx-i2-t1", debitTrx.ExternalID)
	assert.Equal(t, int64(500), debitTrx.NetAmount)
	assert.Equal(t, result.BillLicences[0].ID, debitTrx.BillLicenceID)

	// The source bill is patched in memory, ready to be persisted in the
	// same transaction as the generated records.
	require.NotNil(t, sourceBill.RebillingState)
	assert.Equal(t, model.RebillingStateRebilled, *sourceBill.RebillingState)
	require.NotNil(t, sourceBill.OriginalBillID)
	assert.Equal(t, "bill-s1", *sourceBill.OriginalBillID)
}

func TestReissueBill_BillScopedLicenceKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := charging_api.NewMockAPI(ctrl)
	business := NewReissueBusiness(mockAPI, WithBillLicenceKey(BillScopedLicenceKey))

	sourceBill := sourceBillFixture()
	billRun := reissueBillRunFixture()

	mockAPI.EXPECT().
		RequestReissue(gomock.Any(), "ext-bill-run-new", "ext-bill-s1").
		Return(invoiceHeaders(), nil)
	mockAPI.EXPECT().
		ViewBillRunStatus(gomock.Any(), "ext-bill-run-new").
		Return("initialised", nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), "ext-bill-run-new", "ext-invoice-i1").
		Return(cancellingInvoice(), nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), "ext-bill-run-new", "ext-invoice-i2").
		Return(reissuingInvoice(), nil)

	result, err := business.ReissueBill(context.Background(), sourceBill, billRun)
	require.NoError(t, err)

	// Scoping the key to the destination bill gives each invoice its own
	// bill licence, each carrying its own transaction.
	require.Len(t, result.Bills, 2)
	require.Len(t, result.BillLicences, 2)
	require.Len(t, result.Transactions, 2)

	licenceBills := map[string]bool{}
	for _, licence := range result.BillLicences {
		licenceBills[licence.BillID] = true
	}
	assert.Len(t, licenceBills, 2)
}

func TestReissueBill_ChainedReissueKeepsOriginalBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := charging_api.NewMockAPI(ctrl)
	business := NewReissueBusiness(mockAPI)

	// The source bill was itself generated by an earlier reissue of
	// bill-origin, so everything in this run must still point there.
	sourceBill := sourceBillFixture()
	originID := "bill-origin"
	sourceBill.OriginalBillID = &originID
	rebill := model.RebillingStateRebill
	sourceBill.RebillingState = &rebill

	mockAPI.EXPECT().
		RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(invoiceHeaders(), nil)
	mockAPI.EXPECT().
		ViewBillRunStatus(gomock.Any(), gomock.Any()).
		Return("initialised", nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i1").
		Return(cancellingInvoice(), nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i2").
		Return(reissuingInvoice(), nil)

	_, err := business.ReissueBill(context.Background(), sourceBill, reissueBillRunFixture())
	require.NoError(t, err)

	require.NotNil(t, sourceBill.OriginalBillID)
	assert.Equal(t, "bill-origin", *sourceBill.OriginalBillID)
	require.NotNil(t, sourceBill.RebillingState)
	assert.Equal(t, model.RebillingStateRebilled, *sourceBill.RebillingState)
}

func TestReissueBill_FanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := charging_api.NewMockAPI(ctrl)
	business := NewReissueBusiness(mockAPI)

	// Two licences with two transactions each on the source bill.
	sourceBill := sourceBillFixture()
	sourceBill.BillLicences = []model.BillLicence{
		{
			ID: "bl-1", BillID: "bill-s1", LicenceID: "lic-1", LicenceRef: "01/111",
			Transactions: []model.Transaction{
				{ID: "t-1", ExternalID: "ext-t-1", NetAmount: 100},
				{ID: "t-2", ExternalID: "ext-t-2", NetAmount: 200},
			},
		},
		{
			ID: "bl-2", BillID: "bill-s1", LicenceID: "lic-2", LicenceRef: "02/222",
			Transactions: []model.Transaction{
				{ID: "t-3", ExternalID: "ext-t-3", NetAmount: 300},
				{ID: "t-4", ExternalID: "ext-t-4", NetAmount: 400},
			},
		},
	}

	makeInvoice := func(id string, rebilledType chargingapi.RebilledType, credit bool) *chargingapi.Invoice {
		licence := func(ref, prefix string) chargingapi.Licence {
			var trxs []chargingapi.Transaction
			for _, src := range []string{"1", "2", "3", "4"} {
				trxs = append(trxs, chargingapi.Transaction{
					ID:                    prefix + "-" + ref + "-" + src,
					ChargeValue:           100,
					Credit:                credit,
					RebilledTransactionID: "ext-t-" + src,
				})
			}
			return chargingapi.Licence{ID: prefix + "-" + ref, LicenceNumber: ref, Transactions: trxs}
		}
		return &chargingapi.Invoice{
			ID:           id,
			RebilledType: rebilledType,
			Licences:     []chargingapi.Licence{licence("01/111", id), licence("02/222", id)},
		}
	}

	mockAPI.EXPECT().
		RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(invoiceHeaders(), nil)
	mockAPI.EXPECT().
		ViewBillRunStatus(gomock.Any(), gomock.Any()).
		Return("initialised", nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i1").
		Return(makeInvoice("ext-invoice-i1", chargingapi.RebilledTypeCancelling, true), nil)
	mockAPI.EXPECT().
		ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i2").
		Return(makeInvoice("ext-invoice-i2", chargingapi.RebilledTypeReissuing, false), nil)

	result, err := business.ReissueBill(context.Background(), sourceBill, reissueBillRunFixture())
	require.NoError(t, err)

	// 2 invoices x 2 licences x 2 transactions.
	assert.Len(t, result.Bills, 2)
	assert.Len(t, result.Transactions, 8)
}

func TestReissueBill_Errors(t *testing.T) {
	missingLicenceInvoice := cancellingInvoice()
	missingLicenceInvoice.Licences[0].LicenceNumber = "99/999"

	missingTrxInvoice := cancellingInvoice()
	missingTrxInvoice.Licences[0].Transactions[0].RebilledTransactionID = "ext-trx-unknown"

	gatewayErr := &chargingapi.Error{Op: "request reissue", StatusCode: 409}

	testCases := []struct {
		name      string
		setup     func(m *charging_api.MockAPI)
		errorType any
	}{
		{
			name: "reissue_request_rejected",
			setup: func(m *charging_api.MockAPI) {
				m.EXPECT().
					RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, gatewayErr)
			},
			errorType: &chargingapi.Error{},
		},
		{
			name: "status_poll_fails",
			setup: func(m *charging_api.MockAPI) {
				m.EXPECT().
					RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoiceHeaders(), nil)
				m.EXPECT().
					ViewBillRunStatus(gomock.Any(), gomock.Any()).
					Return("", &chargingapi.Error{Op: "view bill run status", StatusCode: 500})
			},
			errorType: &chargingapi.Error{},
		},
		{
			name: "invoice_fetch_fails",
			setup: func(m *charging_api.MockAPI) {
				m.EXPECT().
					RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoiceHeaders(), nil)
				m.EXPECT().
					ViewBillRunStatus(gomock.Any(), gomock.Any()).
					Return("initialised", nil)
				m.EXPECT().
					ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i1").
					Return(nil, &chargingapi.Error{Op: "view invoice", StatusCode: 404})
			},
			errorType: &chargingapi.Error{},
		},
		{
			name: "licence_missing_on_invoice",
			setup: func(m *charging_api.MockAPI) {
				m.EXPECT().
					RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoiceHeaders(), nil)
				m.EXPECT().
					ViewBillRunStatus(gomock.Any(), gomock.Any()).
					Return("initialised", nil)
				m.EXPECT().
					ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i1").
					Return(missingLicenceInvoice, nil)
			},
			errorType: &LicenceMatchError{},
		},
		{
			name: "transaction_missing_on_licence",
			setup: func(m *charging_api.MockAPI) {
				m.EXPECT().
					RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoiceHeaders(), nil)
				m.EXPECT().
					ViewBillRunStatus(gomock.Any(), gomock.Any()).
					Return("initialised", nil)
				m.EXPECT().
					ViewInvoice(gomock.Any(), gomock.Any(), "ext-invoice-i1").
					Return(missingTrxInvoice, nil)
			},
			errorType: &TransactionMatchError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAPI := charging_api.NewMockAPI(ctrl)
			tc.setup(mockAPI)

			business := NewReissueBusiness(mockAPI)
			sourceBill := sourceBillFixture()

			result, err := business.ReissueBill(context.Background(), sourceBill, reissueBillRunFixture())
			require.Error(t, err)
			assert.Nil(t, result)

			switch tc.errorType.(type) {
			case *chargingapi.Error:
				var apiErr *chargingapi.Error
				assert.True(t, errors.As(err, &apiErr))
			case *LicenceMatchError:
				var matchErr *LicenceMatchError
				assert.True(t, errors.As(err, &matchErr))
			case *TransactionMatchError:
				var matchErr *TransactionMatchError
				assert.True(t, errors.As(err, &matchErr))
			}

			// A failed run must leave the source bill untouched.
			assert.Nil(t, sourceBill.RebillingState)
			assert.Nil(t, sourceBill.OriginalBillID)
		})
	}
}

func TestReissueBill_PollTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := charging_api.NewMockAPI(ctrl)
	business := NewReissueBusiness(mockAPI, WithPollPolicy(PollPolicy{
		Interval:    time.Millisecond,
		MaxAttempts: 3,
	}))

	mockAPI.EXPECT().
		RequestReissue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(invoiceHeaders(), nil)
	mockAPI.EXPECT().
		ViewBillRunStatus(gomock.Any(), "ext-bill-run-new").
		Return(chargingapi.StatusPending, nil).
		Times(3)

	result, err := business.ReissueBill(context.Background(), sourceBillFixture(), reissueBillRunFixture())
	require.Error(t, err)
	assert.Nil(t, result)

	var timeoutErr *PollTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, 3, timeoutErr.Attempts)
}
