package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("transaction could not be found")

	// ErrNotPending reports that a conditional status rectification
	// matched no row because the transaction already left PENDING.
	ErrNotPending = errors.New("transaction no longer pending")

	ErrInvalidHash = errors.New("invalid transaction hash")
)

// ZeroAddress is the placeholder for an unknown counterparty, used
// when a webhook event arrives before the client submitted the intent.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

var hashRegex = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

// NormalizeHash lowercases a transaction hash and validates it as
// 32-byte hex.
func NormalizeHash(hash string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(hash))
	if !hashRegex.MatchString(h) {
		return "", ErrInvalidHash
	}
	return h, nil
}

type Status string

const (
	StatusPending         Status = "PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusFailed          Status = "FAILED"
	StatusDroppedReplaced Status = "DROPPED_REPLACED"
	StatusExpired         Status = "EXPIRED"
)

// Terminal reports whether the status admits no further transition.
// CONFIRMED is terminal for status purposes; only its confirmation
// count may still rise.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Data is one tracked transaction row, keyed by (ChainID, TxHash).
type Data struct {
	ID            string
	ChainID       int64
	Chain         string
	TxHash        string
	FromAddress   string
	ToAddress     string
	Token         *string
	Amount        *string
	Status        Status
	BlockNumber   *uint64
	Confirmations *uint64
	LastEventID   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasEssentials reports whether the row carries everything a receipt
// snapshot needs: amount, token and real counterparty addresses.
func (d *Data) HasEssentials() bool {
	return d.Amount != nil && *d.Amount != "" &&
		d.Token != nil && *d.Token != "" &&
		d.FromAddress != ZeroAddress && d.ToAddress != ZeroAddress
}

// Intent is a client-submitted transfer intent.
type Intent struct {
	ChainID     int64
	Chain       string
	TxHash      string
	FromAddress string
	ToAddress   string
	Token       *string
	Amount      *string
}

// Event is a webhook- or reconciliation-sourced status update. EventID
// is the idempotency token; a row that already recorded it absorbs the
// event as a no-op.
type Event struct {
	ChainID       int64
	Chain         string
	TxHash        string
	EventID       string
	Status        Status
	BlockNumber   *uint64
	Confirmations *uint64
	RawPayload    []byte
}

type TransactionStore interface {
	Get(ctx context.Context, chainID int64, txHash string) (*Data, error)
	GetByEventID(ctx context.Context, chainID int64, eventID string) (*Data, error)

	// UpsertIntent creates a PENDING row or completes missing metadata
	// on an existing one. It never regresses status.
	UpsertIntent(ctx context.Context, intent *Intent) (*Data, error)

	// ApplyEvent upserts the row keyed by (ChainID, TxHash) and records
	// the event id in the same conditional statement. The returned bool
	// is false when the event had already been applied, in which case
	// the current row is returned unchanged.
	ApplyEvent(ctx context.Context, event *Event) (*Data, bool, error)

	GetConfirmedBelowDepth(ctx context.Context, targetDepth uint64, limit int64) ([]*Data, error)
	GetStalePending(ctx context.Context, olderThan time.Time, limit int64) ([]*Data, error)

	// UpdateBlockInfo writes block number and confirmations on a
	// CONFIRMED row, accepting only forward changes. It reports whether
	// a row was updated.
	UpdateBlockInfo(ctx context.Context, chainID int64, txHash string, blockNumber uint64, confirmations uint64) (bool, error)

	// RectifyStatus moves a PENDING row to CONFIRMED or FAILED based on
	// on-chain state. ErrNotPending is returned when a concurrent
	// writer resolved the row first.
	RectifyStatus(ctx context.Context, chainID int64, txHash string, status Status, blockNumber uint64, confirmations uint64) (*Data, error)

	// MarkExpired moves a PENDING row to EXPIRED. It reports whether a
	// row was updated.
	MarkExpired(ctx context.Context, chainID int64, txHash string) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}
