package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/workflow"
)

type ReissueBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	// BillRunID is the local id of the destination bill run the reissued
	// bills will be generated into.
	BillRunID string `json:"bill_run_id" validate:"required,uuid"`
}

type ReissueBillResponse struct {
	BillID     string `json:"bill_id"`
	BillRunID  string `json:"bill_run_id"`
	WorkflowID string `json:"workflow_id"`
	Status     string `json:"status"`
}

// ReissueBill claims the source bill and starts the reissue workflow. The
// reissue itself runs asynchronously; callers observe completion through
// the bill's status moving from reissuing to reissued.
//
//encore:api public path=/v1/bills/:id/reissue method=POST tag:idempotency
func (s *Service) ReissueBill(ctx context.Context, id string, req *ReissueBillRequest) (*ReissueBillResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	// Claiming the bill flips it to reissuing under a row lock, so a
	// concurrent reissue of the same bill is rejected here.
	if err := s.business.BeginReissue(ctx, id); err != nil {
		rlog.Error("failed to claim bill for reissue", "error", err, "bill_id", id)
		return nil, err
	}

	workflowID, err := s.startReissueWorkflow(ctx, id, req.BillRunID)
	if err != nil {
		rlog.Error("failed to start reissue workflow", "error", err, "bill_id", id)

		// The workflow never started; release the claim so the operation
		// can be retried.
		if failErr := s.business.FailReissue(ctx, id); failErr != nil {
			rlog.Error("failed to release bill after workflow start failure", "error", failErr, "bill_id", id)
		}
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start reissue"}
	}

	return &ReissueBillResponse{
		BillID:     id,
		BillRunID:  req.BillRunID,
		WorkflowID: workflowID,
		Status:     "reissuing",
	}, nil
}

// Validate implements validation for ReissueBillRequest using go-playground/validator
func (r *ReissueBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// startReissueWorkflow starts the Temporal workflow that drives the reissue
func (s *Service) startReissueWorkflow(ctx context.Context, billID, billRunID string) (string, error) {
	workflowID := reissueWorkflowID(billID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.ReissueBillWorkflowParams{
		BillID:    billID,
		BillRunID: billRunID,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ReissueBill, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("reissue workflow already started", "bill_id", billID, "workflow_id", workflowID)
			return workflowID, nil
		}
		return "", fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return workflowID, nil
}

func reissueWorkflowID(billID string) string {
	return fmt.Sprintf("reissue-%s", billID)
}
