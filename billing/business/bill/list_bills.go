package bill

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/bills"
)

// ListBills returns a page of bills plus the total count.
func (b *business) ListBills(ctx context.Context, limit, offset int32) ([]*model.Bill, int64, error) {
	dbBills, err := b.billRepo.ListBills(ctx, bills.ListBillsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	total, err := b.billRepo.CountBills(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count bills"}
	}

	result := make([]*model.Bill, 0, len(dbBills))
	for _, dbBill := range dbBills {
		result = append(result, convertDBBillToModel(dbBill))
	}

	return result, total, nil
}
