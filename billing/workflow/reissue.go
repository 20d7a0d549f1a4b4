package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ReissueBillWorkflowParams contains parameters for starting the reissue workflow
type ReissueBillWorkflowParams struct {
	BillID    string `json:"bill_id"`
	BillRunID string `json:"bill_run_id"`
}

// ReissueBill drives one bill reissue end to end. The heavy lifting happens
// in a single activity because the charging service's reissue trigger is a
// one-shot call: re-running it after a partial failure could generate a
// second pair of invoices, so the activity is never retried automatically.
// On failure the source bill is released again so an operator can retry
// the whole operation deliberately.
func ReissueBill(ctx workflow.Context, params ReissueBillWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting reissue workflow", "billID", params.BillID, "billRunID", params.BillRunID)

	err := executeReissue(ctx, params)
	if err == nil {
		logger.Info("Reissue workflow completed", "billID", params.BillID)
		return nil
	}

	logger.Error("Reissue failed, releasing source bill", "billID", params.BillID, "error", err)

	if revertErr := revertReissue(ctx, params.BillID); revertErr != nil {
		logger.Error("Failed to release source bill after failed reissue", "billID", params.BillID, "error", revertErr)
		return revertErr
	}

	return err
}

// executeReissue runs the ReissueBill activity. Polling the charging
// service happens inside the activity, so the timeout covers the full wait
// for the external bill run to settle.
func executeReissue(ctx workflow.Context, params ReissueBillWorkflowParams) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			// The reissue trigger is not idempotent; one attempt only.
			MaximumAttempts: 1,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, ReissueBillActivity, params.BillID, params.BillRunID).Get(ctx, nil)
}

// revertReissue executes the RevertReissue activity, which is idempotent
// and safe to retry.
func revertReissue(ctx workflow.Context, billID string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RevertReissueActivity, billID).Get(ctx, nil)
}
