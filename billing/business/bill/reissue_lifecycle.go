package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// BeginReissue claims the source bill for a reissue run. It fails if the
// bill is already mid-reissue, which is what serializes concurrent reissue
// attempts on the same bill.
func (b *business) BeginReissue(ctx context.Context, billID string) error {
	return b.stateMachine.BeginReissue(ctx, billID)
}

// CompleteReissue persists the reissue output and the source bill's
// provenance patch in one transaction.
func (b *business) CompleteReissue(ctx context.Context, source *model.Bill, result *model.ReissueResult) error {
	err := b.stateMachine.CompleteReissue(ctx, source, result)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// The same external invoice has already been reconciled,
			// typically by an earlier attempt that crashed after commit.
			return &errs.Error{Code: errs.AlreadyExists, Message: "reissued bill already recorded"}
		}

		var apiErr *errs.Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to persist reissue result"}
	}

	return nil
}

// FailReissue releases the source bill after a failed run so the reissue
// can be retried.
func (b *business) FailReissue(ctx context.Context, billID string) error {
	return b.stateMachine.FailReissue(ctx, billID)
}
