package billing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/reissue"
	"encore.app/billing/chargingapi"
	"encore.app/billing/domain"
	"encore.app/billing/repository"
	"encore.app/billing/repository/billlicences"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/transactions"
	"encore.app/billing/workflow"
)

var billReissueDB = sqldb.NewDatabase("bill_reissue", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "BILL_REISSUE_TASK_QUEUE"

var secrets struct {
	ChargingServiceURL   string
	ChargingServiceToken string
}

//encore:service
type Service struct {
	business        bill.Business
	reissueBusiness reissue.Business
	temporal        client.Client
	worker          worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billReissueDB)

	repo := repository.NewRepository(pgxdb)

	stateMachine := domain.NewReissueStateMachine(
		pgxdb,
		bills.New(pgxdb),
		billlicences.New(pgxdb),
		transactions.New(pgxdb),
	)

	billBusiness := bill.NewBillBusiness(repo.Bills, repo.BillLicences, repo.Transactions, repo.BillRuns, stateMachine)

	chargingClient := chargingapi.NewClient(secrets.ChargingServiceURL, secrets.ChargingServiceToken)
	reissueBusiness := reissue.NewReissueBusiness(chargingClient)

	workflow.SetActivityDependencies(billBusiness, reissueBusiness)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ReissueBill)
	w.RegisterActivity(workflow.ReissueBillActivity)
	w.RegisterActivity(workflow.RevertReissueActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("billing service initialized", "task_queue", taskQueue)

	return &Service{
		business:        billBusiness,
		reissueBusiness: reissueBusiness,
		temporal:        temporalClient,
		worker:          w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
