package postgresql

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/ricepay/tracker/internal/notify/store"
)

type PostgreSQL struct {
	db  *sql.DB
	now func() time.Time
}

func WithNow(nowFunc func() time.Time) func(*PostgreSQL) {
	return func(p *PostgreSQL) {
		p.now = nowFunc
	}
}

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

func (p *PostgreSQL) InsertNotification(ctx context.Context, notification *store.Notification) (string, error) {
	id := uuid.NewString()

	q := `INSERT INTO notify.notifications (id, wallet, type, title, body, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7);`

	var data []byte
	if len(notification.Data) > 0 {
		data = notification.Data
	}

	_, err := p.db.ExecContext(ctx, q, id, notification.Wallet, notification.Type, notification.Title, notification.Body, data, p.now().UTC())
	if err != nil {
		return "", err
	}

	return id, nil
}

func (p *PostgreSQL) ListForWallet(ctx context.Context, wallet string, limit int64) ([]*store.Notification, error) {
	q := `SELECT id, wallet, type, title, body, data, is_read, read_at, created_at
		FROM notify.notifications WHERE wallet = $1 ORDER BY created_at DESC LIMIT $2;`

	rows, err := p.db.QueryContext(ctx, q, wallet, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*store.Notification
	for rows.Next() {
		n := &store.Notification{}
		var readAt sql.NullTime
		err = rows.Scan(&n.ID, &n.Wallet, &n.Type, &n.Title, &n.Body, &n.Data, &n.IsRead, &readAt, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		if readAt.Valid {
			n.ReadAt = &readAt.Time
		}
		result = append(result, n)
	}

	return result, rows.Err()
}

func (p *PostgreSQL) MarkRead(ctx context.Context, id string) error {
	q := `UPDATE notify.notifications SET is_read = TRUE, read_at = $2 WHERE id = $1;`

	_, err := p.db.ExecContext(ctx, q, id, p.now().UTC())
	return err
}

func (p *PostgreSQL) UpsertDevice(ctx context.Context, device *store.Device) error {
	q := `INSERT INTO notify.devices (id, wallet, push_token, platform, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (wallet, push_token) DO UPDATE SET platform = EXCLUDED.platform;`

	_, err := p.db.ExecContext(ctx, q, uuid.NewString(), device.Wallet, device.PushToken, device.Platform, p.now().UTC())
	return err
}

func (p *PostgreSQL) DevicesForWallet(ctx context.Context, wallet string) ([]*store.Device, error) {
	q := `SELECT id, wallet, push_token, platform, created_at FROM notify.devices WHERE wallet = $1;`

	rows, err := p.db.QueryContext(ctx, q, wallet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*store.Device
	for rows.Next() {
		d := &store.Device{}
		err = rows.Scan(&d.ID, &d.Wallet, &d.PushToken, &d.Platform, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}

	return result, rows.Err()
}
