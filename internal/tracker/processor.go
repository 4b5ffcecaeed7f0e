// Package tracker is the transaction state machine. It reconciles
// client-submitted intents, webhook events and scheduler rectifications
// into one authoritative record per (chainId, txHash), and owns the
// confirmed-transition side effects.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ricepay/tracker/internal/notify"
	"github.com/ricepay/tracker/internal/receipt"
	"github.com/ricepay/tracker/internal/stream"
	"github.com/ricepay/tracker/internal/tracker/store"
)

var (
	ErrStoreNil         = errors.New("store cannot be nil")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

const (
	notificationTypeCompleted = "TRANSFER_COMPLETED"
	notificationTypeReceived  = "TRANSFER_RECEIVED"
)

// ReceiptCreator creates the at-most-once receipt snapshot; the bool
// result gates the confirmed side effects.
type ReceiptCreator interface {
	CreateForTransaction(ctx context.Context, tx *store.Data, snap *receipt.Snapshot) (bool, error)
}

// Notifier dispatches user-facing notifications. Implementations wrap
// the push-delivery collaborator; failures must stay on their side of
// the boundary.
type Notifier interface {
	CreateAndSend(ctx context.Context, notification notify.Notification) error
	HasDevices(ctx context.Context, wallet string) (bool, error)
}

type Processor struct {
	store      store.TransactionStore
	receipts   ReceiptCreator
	notifier   Notifier
	updates    *stream.Stream
	chainNames map[int64]string
	logger     *slog.Logger
	now        func() time.Time
	stats      *Stats
}

type Option func(*Processor)

func WithNow(nowFunc func() time.Time) Option {
	return func(p *Processor) {
		p.now = nowFunc
	}
}

func WithReceiptCreator(rc ReceiptCreator) Option {
	return func(p *Processor) {
		p.receipts = rc
	}
}

func WithNotifier(n Notifier) Option {
	return func(p *Processor) {
		p.notifier = n
	}
}

func WithStats(stats *Stats) Option {
	return func(p *Processor) {
		p.stats = stats
	}
}

func NewProcessor(s store.TransactionStore, updates *stream.Stream, chainNames map[int64]string, logger *slog.Logger, opts ...Option) (*Processor, error) {
	if s == nil {
		return nil, ErrStoreNil
	}

	p := &Processor{
		store:      s,
		updates:    updates,
		chainNames: chainNames,
		logger:     logger.With(slog.String("module", "tracker")),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// UpsertIntent records a client-submitted transfer intent as a PENDING
// row, or completes metadata on an existing row. When the row was
// already confirmed by an earlier webhook and the intent supplies the
// missing amount/token, receipt creation fires here for the
// late-arriving metadata case.
func (p *Processor) UpsertIntent(ctx context.Context, intent *store.Intent) (*store.Data, error) {
	hash, err := store.NormalizeHash(intent.TxHash)
	if err != nil {
		return nil, err
	}
	intent.TxHash = hash

	chainName, ok := p.chainNames[intent.ChainID]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	intent.Chain = chainName

	data, err := p.store.UpsertIntent(ctx, intent)
	if err != nil {
		return nil, err
	}

	p.publish(data)

	if data.Status == store.StatusConfirmed {
		p.handleConfirmed(ctx, data, "upsertIntent")
	}

	return data, nil
}

// GetTransaction is the point lookup by hash.
func (p *Processor) GetTransaction(ctx context.Context, chainID int64, txHash string) (*store.Data, error) {
	hash, err := store.NormalizeHash(txHash)
	if err != nil {
		return nil, err
	}

	return p.store.Get(ctx, chainID, hash)
}

// ApplyEvent folds one webhook event into the record. An event id seen
// before returns the current row with no side effects; correctness
// under duplicate and out-of-order delivery rests on that idempotency
// plus monotonic confirmation counts, not on arrival ordering.
func (p *Processor) ApplyEvent(ctx context.Context, event *store.Event) (*store.Data, error) {
	hash, err := store.NormalizeHash(event.TxHash)
	if err != nil {
		return nil, err
	}
	event.TxHash = hash

	chainName, ok := p.chainNames[event.ChainID]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	event.Chain = chainName

	data, applied, err := p.store.ApplyEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	if !applied {
		p.logger.Debug("event already applied",
			slog.String("eventID", event.EventID),
			slog.String("hash", event.TxHash),
		)
		return data, nil
	}

	if p.stats != nil {
		p.stats.eventsApplied.WithLabelValues(string(data.Status)).Inc()
	}

	p.publish(data)

	if data.Status == store.StatusConfirmed {
		p.handleConfirmed(ctx, data, "applyEvent")
	}

	return data, nil
}

// Rectified is called by the reconciliation jobs after a conditional
// status write so the update reaches stream subscribers and, on
// confirmation, the receipt path.
func (p *Processor) Rectified(ctx context.Context, data *store.Data) {
	p.publish(data)

	if p.stats != nil {
		p.stats.eventsApplied.WithLabelValues(string(data.Status)).Inc()
	}

	if data.Status == store.StatusConfirmed {
		p.handleConfirmed(ctx, data, "reconciler")
	}
}

func (p *Processor) publish(data *store.Data) {
	if p.updates != nil {
		p.updates.Publish(data)
	}
}

// handleConfirmed runs the confirmed side effects. Receipt existence is
// the exactly-once guard: notifications fire only for the single call
// that created the snapshot, never again on later confirmation-count
// increases. Side-effect failures are logged, never propagated: the
// transaction write has already succeeded.
func (p *Processor) handleConfirmed(ctx context.Context, data *store.Data, source string) {
	if p.receipts == nil {
		return
	}

	created, err := p.receipts.CreateForTransaction(ctx, data, &receipt.Snapshot{Source: source})
	if err != nil {
		p.logger.Error("receipt creation failed",
			slog.String("hash", data.TxHash),
			slog.String("err", err.Error()),
		)
		return
	}

	if !created {
		return
	}

	if p.stats != nil {
		p.stats.receiptsCreated.Inc()
	}

	p.sendConfirmedNotifications(ctx, data)
}

func (p *Processor) sendConfirmedNotifications(ctx context.Context, data *store.Data) {
	if p.notifier == nil {
		return
	}

	amount := ""
	if data.Amount != nil {
		amount = *data.Amount
	}
	asset := ""
	if data.Token != nil {
		asset = *data.Token
	}

	payload := map[string]string{
		"txId":   data.ID,
		"txHash": data.TxHash,
		"amount": amount,
		"asset":  asset,
	}

	err := p.notifier.CreateAndSend(ctx, notify.Notification{
		Wallet: data.FromAddress,
		Type:   notificationTypeCompleted,
		Title:  "Sending complete",
		Body:   amount + " " + asset + " has been sent",
		Data:   payload,
	})
	if err != nil {
		p.logger.Error("failed to notify sender", slog.String("hash", data.TxHash), slog.String("err", err.Error()))
	}

	hasDevices, err := p.notifier.HasDevices(ctx, data.ToAddress)
	if err != nil {
		p.logger.Error("failed to check receiver devices", slog.String("hash", data.TxHash), slog.String("err", err.Error()))
		return
	}
	if !hasDevices {
		return
	}

	err = p.notifier.CreateAndSend(ctx, notify.Notification{
		Wallet: data.ToAddress,
		Type:   notificationTypeReceived,
		Title:  "Receiving complete",
		Body:   amount + " " + asset + " has been received",
		Data:   payload,
	})
	if err != nil {
		p.logger.Error("failed to notify receiver", slog.String("hash", data.TxHash), slog.String("err", err.Error()))
	}
}
