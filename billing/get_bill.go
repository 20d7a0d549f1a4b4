package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

// GetBill returns a bill with its bill licences and transactions.
//
//encore:api public path=/v1/bills/:id method=GET
func (s *Service) GetBill(ctx context.Context, id string) (*BillResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	result, err := s.business.GetBill(ctx, id)
	if err != nil {
		rlog.Error("failed to get bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}
