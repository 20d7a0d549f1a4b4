package reissue

import (
	"context"

	"encore.app/billing/chargingapi"
	"encore.app/billing/model"
)

type Business interface {
	ReissueBill(ctx context.Context, sourceBill *model.Bill, reissueBillRun *model.BillRun) (*model.ReissueResult, error)
}

// business drives the two-invoice reissue protocol against the charging
// service and rebuilds the local bill graph from what it produced.
type business struct {
	api            chargingapi.API
	poller         *Poller
	billLicenceKey BillLicenceKeyFunc
}

type Option func(*business)

func WithPollPolicy(policy PollPolicy) Option {
	return func(b *business) {
		b.poller = NewPoller(b.api, policy)
	}
}

func WithBillLicenceKey(key BillLicenceKeyFunc) Option {
	return func(b *business) {
		b.billLicenceKey = key
	}
}

func NewReissueBusiness(api chargingapi.API, opts ...Option) Business {
	b := &business{
		api:            api,
		poller:         NewPoller(api, DefaultPollPolicy),
		billLicenceKey: LegacyBillLicenceKey,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
