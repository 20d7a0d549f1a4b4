package billruns

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type Querier interface {
	GetBillRun(ctx context.Context, id string) (BillRun, error)
	CreateBillRun(ctx context.Context, arg CreateBillRunParams) (BillRun, error)
}

var _ Querier = (*Queries)(nil)

type BillRun struct {
	ID         string
	ExternalID string
	Status     string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

const billRunColumns = `id, external_id, status, created_at, updated_at`

func scanBillRun(row pgx.Row) (BillRun, error) {
	var br BillRun
	err := row.Scan(&br.ID, &br.ExternalID, &br.Status, &br.CreatedAt, &br.UpdatedAt)
	return br, err
}

const getBillRun = `SELECT ` + billRunColumns + ` FROM bill_runs WHERE id = $1`

func (q *Queries) GetBillRun(ctx context.Context, id string) (BillRun, error) {
	return scanBillRun(q.db.QueryRow(ctx, getBillRun, id))
}

type CreateBillRunParams struct {
	ID         string
	ExternalID string
	Status     string
}

const createBillRun = `INSERT INTO bill_runs (id, external_id, status)
VALUES ($1, $2, $3)
RETURNING ` + billRunColumns

func (q *Queries) CreateBillRun(ctx context.Context, arg CreateBillRunParams) (BillRun, error) {
	return scanBillRun(q.db.QueryRow(ctx, createBillRun, arg.ID, arg.ExternalID, arg.Status))
}
