package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/ricepay/tracker/internal/receipt/store"
)

const activityLimitMax = 100

type PostgreSQL struct {
	db  *sql.DB
	now func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*PostgreSQL) {
	return func(p *PostgreSQL) {
		p.now = nowFunc
	}
}

// New wraps an existing database handle; the receipt store shares the
// connection pool with the transaction store.
func New(db *sql.DB, opts ...func(*PostgreSQL)) *PostgreSQL {
	p := &PostgreSQL{
		db:  db,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

const receiptColumns = `
	 id
	,transaction_id
	,chain_id
	,chain
	,tx_hash
	,token
	,amount
	,fiat_currency
	,quote_currency
	,fiat_rate
	,fiat_amount
	,gas_paid
	,gas_fiat_amount
	,app_fee
	,app_fee_fiat
	,policy_version
	,from_address
	,to_address
	,submitted_at
	,confirmed_at
	,share_token
	,snapshot
	,created_at`

func (p *PostgreSQL) Create(ctx context.Context, receipt *store.Receipt) (bool, error) {
	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}

	q := `INSERT INTO receipts.receipts (
		 id
		,transaction_id
		,chain_id
		,chain
		,tx_hash
		,token
		,amount
		,fiat_currency
		,quote_currency
		,fiat_rate
		,fiat_amount
		,gas_paid
		,gas_fiat_amount
		,app_fee
		,app_fee_fiat
		,policy_version
		,from_address
		,to_address
		,submitted_at
		,confirmed_at
		,share_token
		,snapshot
		,created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	ON CONFLICT (transaction_id) DO NOTHING;`

	res, err := p.db.ExecContext(ctx, q,
		receipt.ID,
		receipt.TransactionID,
		receipt.ChainID,
		receipt.Chain,
		receipt.TxHash,
		receipt.Token,
		receipt.Amount,
		receipt.FiatCurrency,
		receipt.QuoteCurrency,
		nullString(receipt.FiatRate),
		nullString(receipt.FiatAmount),
		nullString(receipt.GasPaid),
		nullString(receipt.GasFiatAmount),
		nullString(receipt.AppFee),
		nullString(receipt.AppFeeFiat),
		receipt.PolicyVersion,
		receipt.FromAddress,
		receipt.ToAddress,
		receipt.SubmittedAt.UTC(),
		receipt.ConfirmedAt.UTC(),
		nullString(receipt.ShareToken),
		nullBytes(receipt.Snapshot),
		p.now().UTC(),
	)
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) Get(ctx context.Context, id string) (*store.Receipt, error) {
	q := `SELECT` + receiptColumns + ` FROM receipts.receipts WHERE id = $1 LIMIT 1;`
	return p.getOne(ctx, q, id)
}

func (p *PostgreSQL) GetByTransactionID(ctx context.Context, transactionID string) (*store.Receipt, error) {
	q := `SELECT` + receiptColumns + ` FROM receipts.receipts WHERE transaction_id = $1 LIMIT 1;`
	return p.getOne(ctx, q, transactionID)
}

func (p *PostgreSQL) GetByShareToken(ctx context.Context, token string) (*store.Receipt, error) {
	q := `SELECT` + receiptColumns + ` FROM receipts.receipts WHERE share_token = $1 LIMIT 1;`
	return p.getOne(ctx, q, token)
}

func (p *PostgreSQL) getOne(ctx context.Context, q string, arg any) (*store.Receipt, error) {
	receipt, err := scanReceipt(p.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (p *PostgreSQL) SetShareTokenIfEmpty(ctx context.Context, id string, token string) (bool, error) {
	q := `UPDATE receipts.receipts SET share_token = $2 WHERE id = $1 AND share_token IS NULL;`

	res, err := p.db.ExecContext(ctx, q, id, token)
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) SetShareToken(ctx context.Context, id string, token string) error {
	q := `UPDATE receipts.receipts SET share_token = $2 WHERE id = $1;`

	res, err := p.db.ExecContext(ctx, q, id, token)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (p *PostgreSQL) ClearShareToken(ctx context.Context, id string, expected *string) (bool, error) {
	q := `UPDATE receipts.receipts SET share_token = NULL
		WHERE id = $1 AND share_token IS NOT NULL
		AND ($2::TEXT IS NULL OR share_token = $2);`

	res, err := p.db.ExecContext(ctx, q, id, nullString(expected))
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) ListActivity(ctx context.Context, filter *store.ActivityFilter) ([]*store.Receipt, error) {
	limit := filter.Limit
	if limit <= 0 || limit > activityLimitMax {
		limit = activityLimitMax
	}

	q := `SELECT` + receiptColumns + ` FROM receipts.receipts WHERE TRUE`
	args := make([]any, 0, 8)

	addArg := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	// Direction is relative to the filter address, so the filter maps
	// onto which side of the transfer that address sits on.
	if filter.Address != "" {
		placeholder := addArg(strings.ToLower(filter.Address))
		switch filter.Direction {
		case store.DirectionSent:
			q += " AND LOWER(from_address) = " + placeholder
		case store.DirectionReceived:
			q += " AND LOWER(to_address) = " + placeholder
		default:
			q += fmt.Sprintf(" AND (LOWER(from_address) = %s OR LOWER(to_address) = %s)", placeholder, placeholder)
		}
	}
	if filter.ChainID != 0 {
		q += " AND chain_id = " + addArg(filter.ChainID)
	}
	if filter.From != nil {
		q += " AND confirmed_at >= " + addArg(filter.From.UTC())
	}
	if filter.To != nil {
		q += " AND confirmed_at <= " + addArg(filter.To.UTC())
	}
	if filter.Cursor != "" {
		q += ` AND submitted_at < (SELECT submitted_at FROM receipts.receipts WHERE id = ` + addArg(filter.Cursor) + `)`
	}

	q += " ORDER BY submitted_at DESC LIMIT " + addArg(limit) + ";"

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*store.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		if filter.Address != "" {
			if strings.EqualFold(receipt.FromAddress, filter.Address) {
				receipt.Direction = store.DirectionSent
			} else {
				receipt.Direction = store.DirectionReceived
			}
		}
		result = append(result, receipt)
	}

	return result, rows.Err()
}

func (p *PostgreSQL) InsertAudit(ctx context.Context, audit *store.Audit) error {
	q := `INSERT INTO receipts.receipt_audits (
		 id
		,receipt_id
		,action
		,actor_address
		,ip
		,user_agent
		,meta
		,created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err := p.db.ExecContext(ctx, q,
		uuid.NewString(),
		audit.ReceiptID,
		audit.Action,
		audit.ActorAddress,
		audit.IP,
		audit.UserAgent,
		nullBytes(audit.Meta),
		p.now().UTC(),
	)

	return err
}
