package billlicences

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
	CreateBillLicence(ctx context.Context, arg CreateBillLicenceParams) (BillLicence, error)
	GetBillLicencesByBill(ctx context.Context, billID string) ([]BillLicence, error)
}

var _ Querier = (*Queries)(nil)

type BillLicence struct {
	ID         string
	BillID     string
	LicenceID  string
	LicenceRef string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

const billLicenceColumns = `id, bill_id, licence_id, licence_ref, created_at, updated_at`

func scanBillLicence(row pgx.Row) (BillLicence, error) {
	var bl BillLicence
	err := row.Scan(&bl.ID, &bl.BillID, &bl.LicenceID, &bl.LicenceRef, &bl.CreatedAt, &bl.UpdatedAt)
	return bl, err
}

type CreateBillLicenceParams struct {
	ID         string
	BillID     string
	LicenceID  string
	LicenceRef string
}

const createBillLicence = `INSERT INTO bill_licences (id, bill_id, licence_id, licence_ref)
VALUES ($1, $2, $3, $4)
RETURNING ` + billLicenceColumns

func (q *Queries) CreateBillLicence(ctx context.Context, arg CreateBillLicenceParams) (BillLicence, error) {
	return scanBillLicence(q.db.QueryRow(ctx, createBillLicence, arg.ID, arg.BillID, arg.LicenceID, arg.LicenceRef))
}

const getBillLicencesByBill = `SELECT ` + billLicenceColumns + ` FROM bill_licences WHERE bill_id = $1 ORDER BY licence_ref`

func (q *Queries) GetBillLicencesByBill(ctx context.Context, billID string) ([]BillLicence, error) {
	rows, err := q.db.Query(ctx, getBillLicencesByBill, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BillLicence
	for rows.Next() {
		bl, err := scanBillLicence(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, bl)
	}
	return items, rows.Err()
}
