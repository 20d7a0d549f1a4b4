package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetBill loads a bill together with its bill licences and their
// transactions, which is the full graph a reissue run reads.
func (b *business) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	}

	bill := convertDBBillToModel(dbBill)

	dbLicences, err := b.licenceRepo.GetBillLicencesByBill(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill licences"}
	}

	bill.BillLicences = make([]model.BillLicence, 0, len(dbLicences))
	for _, dbLicence := range dbLicences {
		licence := convertDBBillLicenceToModel(dbLicence)

		dbTrxs, err := b.trxRepo.GetTransactionsByBillLicence(ctx, licence.ID)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to get transactions"}
		}
		licence.Transactions = make([]model.Transaction, 0, len(dbTrxs))
		for _, dbTrx := range dbTrxs {
			licence.Transactions = append(licence.Transactions, convertDBTransactionToModel(dbTrx))
		}

		bill.BillLicences = append(bill.BillLicences, licence)
	}

	return bill, nil
}

// GetBillRun resolves the destination bill run for a reissue.
func (b *business) GetBillRun(ctx context.Context, id string) (*model.BillRun, error) {
	dbBillRun, err := b.billRunRepo.GetBillRun(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill run not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill run"}
	}

	return convertDBBillRunToModel(dbBillRun), nil
}
