package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/ricepay/tracker/internal/tracker/store"
)

const postgresDriverName = "postgres"

// PostgreSQL implements store.TransactionStore. All cross-request
// consistency comes from conditional writes inspected via
// RowsAffected; the store never takes in-process locks.
type PostgreSQL struct {
	db  *sql.DB
	now func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*PostgreSQL) {
	return func(p *PostgreSQL) {
		p.now = nowFunc
	}
}

func New(dbInfo string, idleConns int, maxOpenConns int, opts ...func(*PostgreSQL)) (*PostgreSQL, error) {
	db, err := sql.Open(postgresDriverName, dbInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres DB: %w", err)
	}

	db.SetMaxIdleConns(idleConns)
	db.SetMaxOpenConns(maxOpenConns)

	p := &PostgreSQL{
		db:  db,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// DB exposes the underlying handle so sibling stores can share one pool.
func (p *PostgreSQL) DB() *sql.DB {
	return p.db
}

const transactionColumns = `
	 id
	,chain_id
	,chain
	,tx_hash
	,from_address
	,to_address
	,token
	,amount
	,status
	,block_number
	,confirmations
	,last_event_id
	,created_at
	,updated_at`

func (p *PostgreSQL) Get(ctx context.Context, chainID int64, txHash string) (*store.Data, error) {
	q := `SELECT` + transactionColumns + `
		FROM tracker.transactions WHERE chain_id = $1 AND tx_hash = $2 LIMIT 1;`

	data, err := scanData(p.db.QueryRowContext(ctx, q, chainID, txHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return data, nil
}

func (p *PostgreSQL) GetByEventID(ctx context.Context, chainID int64, eventID string) (*store.Data, error) {
	q := `SELECT` + transactionColumns + `
		FROM tracker.transactions WHERE chain_id = $1 AND last_event_id = $2 LIMIT 1;`

	data, err := scanData(p.db.QueryRowContext(ctx, q, chainID, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return data, nil
}

func (p *PostgreSQL) UpsertIntent(ctx context.Context, intent *store.Intent) (*store.Data, error) {
	q := `INSERT INTO tracker.transactions (
		 id
		,chain_id
		,chain
		,tx_hash
		,from_address
		,to_address
		,token
		,amount
		,status
		,created_at
		,updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	ON CONFLICT (chain_id, tx_hash) DO UPDATE SET
		 from_address = EXCLUDED.from_address
		,to_address = EXCLUDED.to_address
		,token = COALESCE(EXCLUDED.token, tracker.transactions.token)
		,amount = COALESCE(EXCLUDED.amount, tracker.transactions.amount)
		,updated_at = EXCLUDED.updated_at
	RETURNING` + transactionColumns + `;`

	row := p.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		intent.ChainID,
		intent.Chain,
		intent.TxHash,
		intent.FromAddress,
		intent.ToAddress,
		nullString(intent.Token),
		nullString(intent.Amount),
		store.StatusPending,
		p.now().UTC(),
	)

	return scanData(row)
}

func (p *PostgreSQL) ApplyEvent(ctx context.Context, event *store.Event) (*store.Data, bool, error) {
	applied, err := p.GetByEventID(ctx, event.ChainID, event.EventID)
	if err == nil {
		return applied, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	// The event-id guard is part of the upsert itself so that two
	// concurrent deliveries of the same event cannot both win: the
	// second writer matches zero rows and falls through to a re-read.
	// Terminal rows keep their status; block metadata and the event id
	// are still recorded.
	q := `INSERT INTO tracker.transactions (
		 id
		,chain_id
		,chain
		,tx_hash
		,from_address
		,to_address
		,status
		,block_number
		,confirmations
		,last_event_id
		,raw_payload
		,created_at
		,updated_at
	) VALUES ($1, $2, $3, $4, $5, $5, $6, $7, $8, $9, $10, $11, $11)
	ON CONFLICT (chain_id, tx_hash) DO UPDATE SET
		 status = CASE WHEN tracker.transactions.status = 'PENDING' THEN EXCLUDED.status ELSE tracker.transactions.status END
		,block_number = COALESCE(EXCLUDED.block_number, tracker.transactions.block_number)
		,confirmations = COALESCE(EXCLUDED.confirmations, tracker.transactions.confirmations)
		,last_event_id = EXCLUDED.last_event_id
		,raw_payload = COALESCE(EXCLUDED.raw_payload, tracker.transactions.raw_payload)
		,updated_at = EXCLUDED.updated_at
	WHERE tracker.transactions.last_event_id IS DISTINCT FROM EXCLUDED.last_event_id
	RETURNING` + transactionColumns + `;`

	row := p.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		event.ChainID,
		event.Chain,
		event.TxHash,
		store.ZeroAddress,
		event.Status,
		nullUint64(event.BlockNumber),
		nullUint64(event.Confirmations),
		event.EventID,
		nullBytes(event.RawPayload),
		p.now().UTC(),
	)

	data, err := scanData(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race: the first writer recorded this event id.
			applied, lookupErr := p.GetByEventID(ctx, event.ChainID, event.EventID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return applied, false, nil
		}
		return nil, false, err
	}

	return data, true, nil
}

func (p *PostgreSQL) GetConfirmedBelowDepth(ctx context.Context, targetDepth uint64, limit int64) ([]*store.Data, error) {
	q := `SELECT` + transactionColumns + `
		FROM tracker.transactions
		WHERE status = $1 AND (confirmations IS NULL OR confirmations < $2)
		ORDER BY updated_at ASC
		LIMIT $3;`

	rows, err := p.db.QueryContext(ctx, q, store.StatusConfirmed, targetDepth, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDataRows(rows)
}

func (p *PostgreSQL) GetStalePending(ctx context.Context, olderThan time.Time, limit int64) ([]*store.Data, error) {
	q := `SELECT` + transactionColumns + `
		FROM tracker.transactions
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
		LIMIT $3;`

	rows, err := p.db.QueryContext(ctx, q, store.StatusPending, olderThan.UTC(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDataRows(rows)
}

func (p *PostgreSQL) UpdateBlockInfo(ctx context.Context, chainID int64, txHash string, blockNumber uint64, confirmations uint64) (bool, error) {
	// A reorg may re-mine the transaction at a different block; the
	// block number follows, confirmations only ever rise.
	q := `UPDATE tracker.transactions SET
		 block_number = $3
		,confirmations = GREATEST(COALESCE(confirmations, 0), $4)
		,updated_at = $5
	WHERE chain_id = $1 AND tx_hash = $2 AND status = $6
		AND (block_number IS DISTINCT FROM $3 OR COALESCE(confirmations, 0) < $4);`

	res, err := p.db.ExecContext(ctx, q, chainID, txHash, blockNumber, confirmations, p.now().UTC(), store.StatusConfirmed)
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) RectifyStatus(ctx context.Context, chainID int64, txHash string, status store.Status, blockNumber uint64, confirmations uint64) (*store.Data, error) {
	q := `UPDATE tracker.transactions SET
		 status = $3
		,block_number = $4
		,confirmations = GREATEST(COALESCE(confirmations, 0), $5)
		,updated_at = $6
	WHERE chain_id = $1 AND tx_hash = $2 AND status = $7
	RETURNING` + transactionColumns + `;`

	data, err := scanData(p.db.QueryRowContext(ctx, q, chainID, txHash, status, blockNumber, confirmations, p.now().UTC(), store.StatusPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotPending
		}
		return nil, err
	}

	return data, nil
}

func (p *PostgreSQL) MarkExpired(ctx context.Context, chainID int64, txHash string) (bool, error) {
	q := `UPDATE tracker.transactions SET
		 status = $3
		,updated_at = $4
	WHERE chain_id = $1 AND tx_hash = $2 AND status = $5;`

	res, err := p.db.ExecContext(ctx, q, chainID, txHash, store.StatusExpired, p.now().UTC(), store.StatusPending)
	if err != nil {
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (p *PostgreSQL) Ping(ctx context.Context) error {
	_, err := p.db.QueryContext(ctx, "SELECT 1;")
	return err
}

func (p *PostgreSQL) Close() error {
	return p.db.Close()
}
