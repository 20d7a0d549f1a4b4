package transactions

import (
	"context"
	"encoding/json"

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
	CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error)
	GetTransactionsByBillLicence(ctx context.Context, billLicenceID string) ([]Transaction, error)
}

var _ Querier = (*Queries)(nil)

type Transaction struct {
	ID                 string
	BillLicenceID      string
	ExternalID         string
	Credit             bool
	NetAmount          int64
	Description        string
	ChargeCategoryCode string
	AuthorisedDays     int32
	BillableDays       int32
	ChargeDetails      json.RawMessage
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

const transactionColumns = `id, bill_licence_id, external_id, credit, net_amount, description,
	charge_category_code, authorised_days, billable_days, charge_details, created_at, updated_at`

func scanTransaction(row pgx.Row) (Transaction, error) {
	var t Transaction
	err := row.Scan(
		&t.ID, &t.BillLicenceID, &t.ExternalID, &t.Credit, &t.NetAmount, &t.Description,
		&t.ChargeCategoryCode, &t.AuthorisedDays, &t.BillableDays, &t.ChargeDetails, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

type CreateTransactionParams struct {
	ID                 string
	BillLicenceID      string
	ExternalID         string
	Credit             bool
	NetAmount          int64
	Description        string
	ChargeCategoryCode string
	AuthorisedDays     int32
	BillableDays       int32
	ChargeDetails      json.RawMessage
}

const createTransaction = `INSERT INTO transactions (
	id, bill_licence_id, external_id, credit, net_amount, description,
	charge_category_code, authorised_days, billable_days, charge_details
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + transactionColumns

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	return scanTransaction(q.db.QueryRow(ctx, createTransaction,
		arg.ID, arg.BillLicenceID, arg.ExternalID, arg.Credit, arg.NetAmount, arg.Description,
		arg.ChargeCategoryCode, arg.AuthorisedDays, arg.BillableDays, arg.ChargeDetails,
	))
}

const getTransactionsByBillLicence = `SELECT ` + transactionColumns + ` FROM transactions WHERE bill_licence_id = $1 ORDER BY created_at`

func (q *Queries) GetTransactionsByBillLicence(ctx context.Context, billLicenceID string) ([]Transaction, error) {
	rows, err := q.db.Query(ctx, getTransactionsByBillLicence, billLicenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
