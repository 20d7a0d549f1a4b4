package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/reissue"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness    bill.Business
	ReissueBusiness reissue.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business, reissueBusiness reissue.Business) {
	activityDeps = &ActivityDependencies{
		BillBusiness:    billBusiness,
		ReissueBusiness: reissueBusiness,
	}
}

// ReissueBillActivity loads the source bill, drives the charging service
// through the reissue protocol, and persists the rebuilt bill graph. The
// persistence step is all-or-nothing, so a failure anywhere leaves no
// partial graph behind.
func ReissueBillActivity(ctx context.Context, billID, billRunID string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing reissue bill activity", "billID", billID, "billRunID", billRunID)

	if activityDeps == nil || activityDeps.BillBusiness == nil || activityDeps.ReissueBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	sourceBill, err := activityDeps.BillBusiness.GetBill(ctx, billID)
	if err != nil {
		logger.Error("Failed to load source bill", "billID", billID, "error", err)
		return err
	}

	billRun, err := activityDeps.BillBusiness.GetBillRun(ctx, billRunID)
	if err != nil {
		logger.Error("Failed to load destination bill run", "billRunID", billRunID, "error", err)
		return err
	}

	result, err := activityDeps.ReissueBusiness.ReissueBill(ctx, sourceBill, billRun)
	if err != nil {
		logger.Error("Reissue run failed", "billID", billID, "error", err)
		return err
	}

	if err := activityDeps.BillBusiness.CompleteReissue(ctx, sourceBill, result); err != nil {
		logger.Error("Failed to persist reissue result", "billID", billID, "error", err)
		return err
	}

	logger.Info("Successfully reissued bill", "billID", billID,
		"bills", len(result.Bills), "billLicences", len(result.BillLicences), "transactions", len(result.Transactions))
	return nil
}

// RevertReissueActivity releases a bill stuck in the reissuing status so
// the operation can be retried. Safe to run repeatedly.
func RevertReissueActivity(ctx context.Context, billID string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing revert reissue activity", "billID", billID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.BillBusiness.FailReissue(ctx, billID); err != nil {
		logger.Error("Failed to revert reissue", "billID", billID, "error", err)
		return err
	}

	logger.Info("Successfully reverted reissue", "billID", billID)
	return nil
}
