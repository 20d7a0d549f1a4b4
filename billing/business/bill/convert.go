package bill

import (
	"encore.app/billing/model"
	"encore.app/billing/repository/billlicences"
	"encore.app/billing/repository/billruns"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/transactions"
)

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	bill := &model.Bill{
		ID:                  dbBill.ID,
		ExternalID:          dbBill.ExternalID,
		BillRunID:           dbBill.BillRunID,
		BillingAccountID:    dbBill.BillingAccountID,
		AccountNumber:       dbBill.AccountNumber,
		Address:             dbBill.Address,
		Status:              model.BillStatus(dbBill.Status),
		Credit:              dbBill.Credit,
		FinancialYearEnding: dbBill.FinancialYearEnding,
		NetAmount:           dbBill.NetAmount,
		InvoiceValue:        dbBill.InvoiceValue,
		CreditNoteValue:     dbBill.CreditNoteValue,
		DeminimisInvoice:    dbBill.DeminimisInvoice,
		CreatedAt:           dbBill.CreatedAt.Time,
		UpdatedAt:           dbBill.UpdatedAt.Time,
	}

	if dbBill.RebillingState.Valid {
		state := model.RebillingState(dbBill.RebillingState.String)
		bill.RebillingState = &state
	}

	if dbBill.OriginalBillID.Valid {
		bill.OriginalBillID = &dbBill.OriginalBillID.String
	}

	return bill
}

func convertDBBillLicenceToModel(dbLicence billlicences.BillLicence) model.BillLicence {
	return model.BillLicence{
		ID:         dbLicence.ID,
		BillID:     dbLicence.BillID,
		LicenceID:  dbLicence.LicenceID,
		LicenceRef: dbLicence.LicenceRef,
		CreatedAt:  dbLicence.CreatedAt.Time,
		UpdatedAt:  dbLicence.UpdatedAt.Time,
	}
}

func convertDBTransactionToModel(dbTrx transactions.Transaction) model.Transaction {
	return model.Transaction{
		ID:                 dbTrx.ID,
		BillLicenceID:      dbTrx.BillLicenceID,
		ExternalID:         dbTrx.ExternalID,
		Credit:             dbTrx.Credit,
		NetAmount:          dbTrx.NetAmount,
		Description:        dbTrx.Description,
		ChargeCategoryCode: dbTrx.ChargeCategoryCode,
		AuthorisedDays:     dbTrx.AuthorisedDays,
		BillableDays:       dbTrx.BillableDays,
		ChargeDetails:      dbTrx.ChargeDetails,
		CreatedAt:          dbTrx.CreatedAt.Time,
		UpdatedAt:          dbTrx.UpdatedAt.Time,
	}
}

func convertDBBillRunToModel(dbBillRun billruns.BillRun) *model.BillRun {
	return &model.BillRun{
		ID:         dbBillRun.ID,
		ExternalID: dbBillRun.ExternalID,
		Status:     dbBillRun.Status,
		CreatedAt:  dbBillRun.CreatedAt.Time,
		UpdatedAt:  dbBillRun.UpdatedAt.Time,
	}
}
