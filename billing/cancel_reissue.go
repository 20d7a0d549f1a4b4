package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CancelReissueResponse struct {
	BillID string `json:"bill_id"`
	Status string `json:"status"`
}

// CancelReissue aborts an in-flight reissue: the source bill is released
// back to issued and the workflow is terminated. Any invoices the charging
// service already generated stay on its side; nothing has been persisted
// locally until a reissue completes.
//
//encore:api public path=/v1/bills/:id/reissue/cancel method=POST
func (s *Service) CancelReissue(ctx context.Context, id string) (*CancelReissueResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	if err := s.business.FailReissue(ctx, id); err != nil {
		rlog.Error("failed to release bill on cancel", "error", err, "bill_id", id)
		return nil, err
	}

	// Termination is best-effort and does not block the response; the
	// workflow may already have finished on its own.
	workflowID := reissueWorkflowID(id)
	runAsync("terminate reissue workflow", func(ctx context.Context) error {
		return s.temporal.TerminateWorkflow(ctx, workflowID, "", "reissue cancelled by operator")
	})

	return &CancelReissueResponse{
		BillID: id,
		Status: "issued",
	}, nil
}
