package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/billlicences"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/transactions"
)

// ReissueStateMachine owns the reissue lifecycle of a source bill
// (issued -> reissuing -> reissued, with reissuing -> issued on failure).
// Every transition locks the bill row, so two reissues of the same bill
// cannot run at once: the second caller finds the bill already reissuing
// and is rejected.
type ReissueStateMachine struct {
	db             *pgxpool.Pool
	billQueries    *bills.Queries
	licenceQueries *billlicences.Queries
	trxQueries     *transactions.Queries
}

func NewReissueStateMachine(
	db *pgxpool.Pool,
	billQueries *bills.Queries,
	licenceQueries *billlicences.Queries,
	trxQueries *transactions.Queries,
) *ReissueStateMachine {
	return &ReissueStateMachine{
		db:             db,
		billQueries:    billQueries,
		licenceQueries: licenceQueries,
		trxQueries:     trxQueries,
	}
}

// transitionWithLock runs transitionFunc against the row-locked source bill
// inside one transaction. The queries handed to the callback are bound to
// that transaction.
func (sm *ReissueStateMachine) transitionWithLock(ctx context.Context, id string, transitionFunc func(txQueries txQueries, currentBill bills.Bill) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	queries := txQueries{
		bills:        sm.billQueries.WithTx(tx),
		billLicences: sm.licenceQueries.WithTx(tx),
		transactions: sm.trxQueries.WithTx(tx),
	}

	currentBill, err := queries.bills.GetBillForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock bill for state transition"}
	}

	if err := transitionFunc(queries, currentBill); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}

	return nil
}

type txQueries struct {
	bills        *bills.Queries
	billLicences *billlicences.Queries
	transactions *transactions.Queries
}

// BeginReissue marks an issued bill as reissuing. A bill that is already
// mid-reissue, or that has already been reissued, is rejected here.
func (sm *ReissueStateMachine) BeginReissue(ctx context.Context, id string) error {
	return sm.transitionWithLock(ctx, id, func(q txQueries, currentBill bills.Bill) error {
		switch currentBill.Status {
		case string(model.BillStatusReissuing):
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill is already being reissued"}
		case string(model.BillStatusReissued):
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill has already been reissued"}
		case string(model.BillStatusIssued):
			_, err := q.bills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
				ID:     id,
				Status: string(model.BillStatusReissuing),
			})
			return err
		default:
			return &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill status for reissue"}
		}
	})
}

// CompleteReissue writes the whole reissue output in one transaction: the
// new bills, their bill licences and transactions, and the source bill's
// provenance columns. Either everything lands or nothing does.
func (sm *ReissueStateMachine) CompleteReissue(ctx context.Context, source *model.Bill, result *model.ReissueResult) error {
	return sm.transitionWithLock(ctx, source.ID, func(q txQueries, currentBill bills.Bill) error {
		if currentBill.Status != string(model.BillStatusReissuing) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "bill must be reissuing to complete a reissue"}
		}

		for i := range result.Bills {
			bill := &result.Bills[i]
			_, err := q.bills.CreateBill(ctx, bills.CreateBillParams{
				ID:                  bill.ID,
				ExternalID:          bill.ExternalID,
				BillRunID:           bill.BillRunID,
				BillingAccountID:    bill.BillingAccountID,
				AccountNumber:       bill.AccountNumber,
				Address:             bill.Address,
				Status:              string(bill.Status),
				Credit:              bill.Credit,
				FinancialYearEnding: bill.FinancialYearEnding,
				NetAmount:           bill.NetAmount,
				InvoiceValue:        bill.InvoiceValue,
				CreditNoteValue:     bill.CreditNoteValue,
				DeminimisInvoice:    bill.DeminimisInvoice,
				RebillingState:      rebillingStateText(bill.RebillingState),
				OriginalBillID:      textOrNull(bill.OriginalBillID),
			})
			if err != nil {
				return err
			}
		}

		for i := range result.BillLicences {
			licence := &result.BillLicences[i]
			_, err := q.billLicences.CreateBillLicence(ctx, billlicences.CreateBillLicenceParams{
				ID:         licence.ID,
				BillID:     licence.BillID,
				LicenceID:  licence.LicenceID,
				LicenceRef: licence.LicenceRef,
			})
			if err != nil {
				return err
			}
		}

		for i := range result.Transactions {
			trx := &result.Transactions[i]
			_, err := q.transactions.CreateTransaction(ctx, transactions.CreateTransactionParams{
				ID:                 trx.ID,
				BillLicenceID:      trx.BillLicenceID,
				ExternalID:         trx.ExternalID,
				Credit:             trx.Credit,
				NetAmount:          trx.NetAmount,
				Description:        trx.Description,
				ChargeCategoryCode: trx.ChargeCategoryCode,
				AuthorisedDays:     trx.AuthorisedDays,
				BillableDays:       trx.BillableDays,
				ChargeDetails:      trx.ChargeDetails,
			})
			if err != nil {
				return err
			}
		}

		_, err := q.bills.FinalizeReissue(ctx, bills.FinalizeReissueParams{
			ID:             source.ID,
			Status:         string(model.BillStatusReissued),
			RebillingState: rebillingStateText(source.RebillingState),
			OriginalBillID: textOrNull(source.OriginalBillID),
		})
		return err
	})
}

// FailReissue reverts a bill from reissuing back to issued so the operation
// can be retried. Reverting a bill in any other status is a no-op.
func (sm *ReissueStateMachine) FailReissue(ctx context.Context, id string) error {
	return sm.transitionWithLock(ctx, id, func(q txQueries, currentBill bills.Bill) error {
		if currentBill.Status != string(model.BillStatusReissuing) {
			return nil
		}
		_, err := q.bills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
			ID:     id,
			Status: string(model.BillStatusIssued),
		})
		return err
	})
}

func rebillingStateText(state *model.RebillingState) pgtype.Text {
	if state == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: string(*state), Valid: true}
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}
