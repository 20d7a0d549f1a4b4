package bill

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/billlicences"
	"encore.app/billing/repository/billruns"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/transactions"
)

type Business interface {
	GetBill(ctx context.Context, id string) (*model.Bill, error)
	ListBills(ctx context.Context, limit, offset int32) ([]*model.Bill, int64, error)
	GetBillRun(ctx context.Context, id string) (*model.BillRun, error)

	BeginReissue(ctx context.Context, billID string) error
	CompleteReissue(ctx context.Context, source *model.Bill, result *model.ReissueResult) error
	FailReissue(ctx context.Context, billID string) error
}

// StateMachine is the transactional reissue lifecycle this business layer
// delegates to, satisfied by domain.ReissueStateMachine.
type StateMachine interface {
	BeginReissue(ctx context.Context, billID string) error
	CompleteReissue(ctx context.Context, source *model.Bill, result *model.ReissueResult) error
	FailReissue(ctx context.Context, billID string) error
}

var _ StateMachine = (*domain.ReissueStateMachine)(nil)

// business handles loading of source bills and the transactional lifecycle
// around a reissue run
type business struct {
	billRepo     bills.Querier
	licenceRepo  billlicences.Querier
	trxRepo      transactions.Querier
	billRunRepo  billruns.Querier
	stateMachine StateMachine
}

func NewBillBusiness(
	billRepo bills.Querier,
	licenceRepo billlicences.Querier,
	trxRepo transactions.Querier,
	billRunRepo billruns.Querier,
	stateMachine StateMachine,
) Business {
	return &business{
		billRepo:     billRepo,
		licenceRepo:  licenceRepo,
		trxRepo:      trxRepo,
		billRunRepo:  billRunRepo,
		stateMachine: stateMachine,
	}
}
