package reissue

import (
	"context"
	"time"

	"encore.app/billing/chargingapi"
)

// PollPolicy bounds the wait for the charging service to finish processing.
// MaxAttempts <= 0 means poll forever, which matches the legacy behaviour
// but is not what production should run with.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollPolicy checks once a second for at most two minutes.
var DefaultPollPolicy = PollPolicy{
	Interval:    time.Second,
	MaxAttempts: 120,
}

// Poller blocks until an external bill run leaves the transient pending
// status. It owns the retry cadence; the gateway itself never retries.
type Poller struct {
	api    chargingapi.API
	policy PollPolicy
}

func NewPoller(api chargingapi.API, policy PollPolicy) *Poller {
	if policy.Interval <= 0 {
		policy.Interval = DefaultPollPolicy.Interval
	}
	return &Poller{api: api, policy: policy}
}

// WaitForBillRun polls the bill run status until it is no longer pending
// and returns the final status. The wait between checks is cooperative: it
// aborts as soon as ctx is cancelled.
func (p *Poller) WaitForBillRun(ctx context.Context, billRunExternalID string) (string, error) {
	for attempt := 1; ; attempt++ {
		status, err := p.api.ViewBillRunStatus(ctx, billRunExternalID)
		if err != nil {
			return "", err
		}
		if status != chargingapi.StatusPending {
			return status, nil
		}

		if p.policy.MaxAttempts > 0 && attempt >= p.policy.MaxAttempts {
			return "", &PollTimeoutError{BillRunExternalID: billRunExternalID, Attempts: attempt}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.policy.Interval):
		}
	}
}
