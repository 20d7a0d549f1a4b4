package bills

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
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

// WithTx returns Queries bound to an open transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type Querier interface {
	GetBill(ctx context.Context, id string) (Bill, error)
	GetBillForUpdate(ctx context.Context, id string) (Bill, error)
	ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error)
	CountBills(ctx context.Context) (int64, error)
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error)
	FinalizeReissue(ctx context.Context, arg FinalizeReissueParams) (Bill, error)
}

var _ Querier = (*Queries)(nil)

type Bill struct {
	ID                  string
	ExternalID          string
	BillRunID           string
	BillingAccountID    string
	AccountNumber       string
	Address             json.RawMessage
	Status              string
	Credit              bool
	FinancialYearEnding int32
	NetAmount           int64
	InvoiceValue        int64
	CreditNoteValue     int64
	DeminimisInvoice    bool
	RebillingState      pgtype.Text
	OriginalBillID      pgtype.Text
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const billColumns = `id, external_id, bill_run_id, billing_account_id, account_number, address,
	status, credit, financial_year_ending, net_amount, invoice_value, credit_note_value,
	deminimis_invoice, rebilling_state, original_bill_id, created_at, updated_at`

func scanBill(row pgx.Row) (Bill, error) {
	var b Bill
	err := row.Scan(
		&b.ID, &b.ExternalID, &b.BillRunID, &b.BillingAccountID, &b.AccountNumber, &b.Address,
		&b.Status, &b.Credit, &b.FinancialYearEnding, &b.NetAmount, &b.InvoiceValue, &b.CreditNoteValue,
		&b.DeminimisInvoice, &b.RebillingState, &b.OriginalBillID, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

const getBill = `SELECT ` + billColumns + ` FROM bills WHERE id = $1`

func (q *Queries) GetBill(ctx context.Context, id string) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBill, id))
}

const getBillForUpdate = `SELECT ` + billColumns + ` FROM bills WHERE id = $1 FOR UPDATE`

func (q *Queries) GetBillForUpdate(ctx context.Context, id string) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBillForUpdate, id))
}

type ListBillsParams struct {
	Limit  int32
	Offset int32
}

const listBills = `SELECT ` + billColumns + ` FROM bills ORDER BY created_at DESC LIMIT $1 OFFSET $2`

func (q *Queries) ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBills, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const countBills = `SELECT count(*) FROM bills`

func (q *Queries) CountBills(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countBills).Scan(&count)
	return count, err
}

type CreateBillParams struct {
	ID                  string
	ExternalID          string
	BillRunID           string
	BillingAccountID    string
	AccountNumber       string
	Address             json.RawMessage
	Status              string
	Credit              bool
	FinancialYearEnding int32
	NetAmount           int64
	InvoiceValue        int64
	CreditNoteValue     int64
	DeminimisInvoice    bool
	RebillingState      pgtype.Text
	OriginalBillID      pgtype.Text
}

const createBill = `INSERT INTO bills (
	id, external_id, bill_run_id, billing_account_id, account_number, address,
	status, credit, financial_year_ending, net_amount, invoice_value, credit_note_value,
	deminimis_invoice, rebilling_state, original_bill_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + billColumns

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, createBill,
		arg.ID, arg.ExternalID, arg.BillRunID, arg.BillingAccountID, arg.AccountNumber, arg.Address,
		arg.Status, arg.Credit, arg.FinancialYearEnding, arg.NetAmount, arg.InvoiceValue, arg.CreditNoteValue,
		arg.DeminimisInvoice, arg.RebillingState, arg.OriginalBillID,
	))
}

type UpdateBillStatusParams struct {
	ID     string
	Status string
}

const updateBillStatus = `UPDATE bills SET status = $2, updated_at = now() WHERE id = $1 RETURNING ` + billColumns

func (q *Queries) UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, updateBillStatus, arg.ID, arg.Status))
}

type FinalizeReissueParams struct {
	ID             string
	Status         string
	RebillingState pgtype.Text
	OriginalBillID pgtype.Text
}

const finalizeReissue = `UPDATE bills
SET status = $2, rebilling_state = $3, original_bill_id = $4, updated_at = now()
WHERE id = $1
RETURNING ` + billColumns

func (q *Queries) FinalizeReissue(ctx context.Context, arg FinalizeReissueParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, finalizeReissue, arg.ID, arg.Status, arg.RebillingState, arg.OriginalBillID))
}
