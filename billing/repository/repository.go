package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/billlicences"
	"encore.app/billing/repository/billruns"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/transactions"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Bills        bills.Querier
	BillLicences billlicences.Querier
	Transactions transactions.Querier
	BillRuns     billruns.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Bills:        bills.New(db),
		BillLicences: billlicences.New(db),
		Transactions: transactions.New(db),
		BillRuns:     billruns.New(db),
	}
}
