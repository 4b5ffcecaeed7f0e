package store

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("receipt could not be found")

// Direction is relative to a viewing address: the same receipt is
// SENT for the sender and RECEIVED for the recipient. It is never
// stored; ListActivity derives it against the filter address, and
// point lookups leave it empty.
type Direction string

const (
	DirectionSent     Direction = "SENT"
	DirectionReceived Direction = "RECEIVED"
)

// Receipt is the immutable snapshot created on first confirmation.
// Everything except ShareToken is frozen at creation time.
type Receipt struct {
	ID            string
	TransactionID string
	ChainID       int64
	Chain         string
	TxHash        string
	Direction     Direction
	Token         string
	Amount        string
	FiatCurrency  string
	QuoteCurrency string
	FiatRate      *string
	FiatAmount    *string
	GasPaid       *string
	GasFiatAmount *string
	AppFee        *string
	AppFeeFiat    *string
	PolicyVersion string
	FromAddress   string
	ToAddress     string
	SubmittedAt   time.Time
	ConfirmedAt   time.Time
	ShareToken    *string
	Snapshot      []byte
	CreatedAt     time.Time
}

type Audit struct {
	ReceiptID    string
	Action       string
	ActorAddress string
	IP           string
	UserAgent    string
	Meta         []byte
}

type ActivityFilter struct {
	Address   string
	ChainID   int64
	Direction Direction
	From      *time.Time
	To        *time.Time
	Cursor    string
	Limit     int64
}

type ReceiptStore interface {
	// Create inserts the snapshot unless one already exists for the
	// transaction. It reports whether a row was created.
	Create(ctx context.Context, receipt *Receipt) (bool, error)

	Get(ctx context.Context, id string) (*Receipt, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Receipt, error)
	GetByShareToken(ctx context.Context, token string) (*Receipt, error)

	// SetShareTokenIfEmpty sets the token only when none is present,
	// reporting whether this writer won.
	SetShareTokenIfEmpty(ctx context.Context, id string, token string) (bool, error)

	// SetShareToken unconditionally replaces the token (rotation).
	SetShareToken(ctx context.Context, id string, token string) error

	// ClearShareToken nulls the token, conditioned on it being present
	// and, when expected is non-nil, on an exact match. It reports
	// whether a row was updated.
	ClearShareToken(ctx context.Context, id string, expected *string) (bool, error)

	ListActivity(ctx context.Context, filter *ActivityFilter) ([]*Receipt, error)
	InsertAudit(ctx context.Context, audit *Audit) error
}
