package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ricepay/tracker/internal/chain"
	"github.com/ricepay/tracker/internal/tracker/store"
)

// ErrSweepInProgress is returned when a manually triggered sweep finds
// the scheduled one already holding the job lock.
var ErrSweepInProgress = errors.New("sweep already in progress")

// SweepResult summarises one reconciliation pass.
type SweepResult struct {
	Scanned   int `json:"scanned"`
	Updated   int `json:"updated"`
	Rectified int `json:"rectified"`
	Expired   int `json:"expired"`
	Failed    int `json:"failed"`
}

// BackgroundWorkers runs the two scheduled reconciliation jobs: the
// confirmation backfill and the stale-pending cleanup. Each job also
// has an exported single-run entry point for the admin endpoints,
// serialised against the ticker run by a per-job lock.
type BackgroundWorkers struct {
	logger    *slog.Logger
	store     store.TransactionStore
	chains    *chain.Registry
	processor *Processor
	stats     *Stats
	now       func() time.Time

	backfillMu sync.Mutex
	cleanupMu  sync.Mutex

	workersWg sync.WaitGroup
	ctx       context.Context
	cancelAll func()
}

type WorkersOption func(*BackgroundWorkers)

func WithWorkersNow(nowFunc func() time.Time) WorkersOption {
	return func(w *BackgroundWorkers) {
		w.now = nowFunc
	}
}

func WithWorkersStats(stats *Stats) WorkersOption {
	return func(w *BackgroundWorkers) {
		w.stats = stats
	}
}

func NewBackgroundWorkers(s store.TransactionStore, chains *chain.Registry, processor *Processor, logger *slog.Logger, opts ...WorkersOption) *BackgroundWorkers {
	ctx, cancel := context.WithCancel(context.Background())

	w := &BackgroundWorkers{
		store:     s,
		chains:    chains,
		processor: processor,
		logger:    logger.With(slog.String("module", "background workers")),
		now:       time.Now,

		ctx:       ctx,
		cancelAll: cancel,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *BackgroundWorkers) GracefulStop() {
	w.logger.Info("Shutting down")

	w.cancelAll()
	w.workersWg.Wait()

	w.logger.Info("Shutdown complete")
}

func (w *BackgroundWorkers) StartBackfill(interval time.Duration, targetDepth uint64, batchSize int64) {
	w.workersWg.Add(1)

	go func() {
		defer w.workersWg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_, err := w.RunBackfill(w.ctx, targetDepth, batchSize)
				if err != nil && !errors.Is(err, ErrSweepInProgress) {
					w.logger.Error("backfill sweep failed", slog.String("err", err.Error()))
				}
				ticker.Reset(interval)

			case <-w.ctx.Done():
				return
			}
		}
	}()
}

func (w *BackgroundWorkers) StartStalePendingCleanup(interval time.Duration, maxAge time.Duration, batchSize int64) {
	w.workersWg.Add(1)

	go func() {
		defer w.workersWg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_, err := w.RunStalePendingCleanup(w.ctx, maxAge, batchSize)
				if err != nil && !errors.Is(err, ErrSweepInProgress) {
					w.logger.Error("stale-pending sweep failed", slog.String("err", err.Error()))
				}
				ticker.Reset(interval)

			case <-w.ctx.Done():
				return
			}
		}
	}()
}

// RunBackfill refreshes confirmation counts for every CONFIRMED row
// still below the target depth and rectifies any PENDING row the chain
// already settled. One head read per chain per sweep; a failing row is
// counted and skipped so one bad hash cannot stall the batch.
func (w *BackgroundWorkers) RunBackfill(ctx context.Context, targetDepth uint64, batchSize int64) (*SweepResult, error) {
	if !w.backfillMu.TryLock() {
		return nil, ErrSweepInProgress
	}
	defer w.backfillMu.Unlock()

	rows, err := w.store.GetConfirmedBelowDepth(ctx, targetDepth, batchSize)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{Scanned: len(rows)}
	heads := w.chainHeads(ctx, rows)

	for _, row := range rows {
		head, ok := heads[row.ChainID]
		if !ok {
			res.Failed++
			continue
		}

		err = w.reconcileRow(ctx, row, head, res)
		if err != nil {
			res.Failed++
			w.countFailure()
			w.logger.Warn("failed to reconcile transaction",
				slog.Int64("chainID", row.ChainID),
				slog.String("hash", row.TxHash),
				slog.String("err", err.Error()),
			)
		}
	}

	if w.stats != nil {
		w.stats.backfillRuns.Inc()
	}

	w.logger.Info("backfill sweep complete",
		slog.Int("scanned", res.Scanned),
		slog.Int("updated", res.Updated),
		slog.Int("rectified", res.Rectified),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

// RunStalePendingCleanup settles PENDING rows older than maxAge. A row
// the chain knows about is rectified to its real status; a row the
// chain has never seen is expired. Transient RPC failures leave the row
// pending for the next sweep.
func (w *BackgroundWorkers) RunStalePendingCleanup(ctx context.Context, maxAge time.Duration, batchSize int64) (*SweepResult, error) {
	if !w.cleanupMu.TryLock() {
		return nil, ErrSweepInProgress
	}
	defer w.cleanupMu.Unlock()

	rows, err := w.store.GetStalePending(ctx, w.now().Add(-maxAge), batchSize)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{Scanned: len(rows)}
	heads := w.chainHeads(ctx, rows)

	for _, row := range rows {
		head, ok := heads[row.ChainID]
		if !ok {
			res.Failed++
			continue
		}

		err = w.settlePending(ctx, row, head, res)
		if err != nil {
			res.Failed++
			w.countFailure()
			w.logger.Warn("failed to settle pending transaction",
				slog.Int64("chainID", row.ChainID),
				slog.String("hash", row.TxHash),
				slog.String("err", err.Error()),
			)
		}
	}

	if w.stats != nil {
		w.stats.stalePendingSwept.Inc()
	}

	w.logger.Info("stale-pending sweep complete",
		slog.Int("scanned", res.Scanned),
		slog.Int("rectified", res.Rectified),
		slog.Int("expired", res.Expired),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

// chainHeads reads the head block once per distinct chain in the batch.
// A chain whose head read fails is absent from the map and its rows are
// skipped this sweep.
func (w *BackgroundWorkers) chainHeads(ctx context.Context, rows []*store.Data) map[int64]uint64 {
	heads := map[int64]uint64{}

	for _, row := range rows {
		if _, done := heads[row.ChainID]; done {
			continue
		}

		reader, err := w.chains.Get(row.ChainID)
		if err != nil {
			w.logger.Warn("skipping rows for unknown chain", slog.Int64("chainID", row.ChainID))
			continue
		}

		head, err := reader.BlockNumber(ctx)
		if err != nil {
			w.logger.Warn("failed to read chain head",
				slog.Int64("chainID", row.ChainID),
				slog.String("err", err.Error()),
			)
			continue
		}

		heads[row.ChainID] = head
	}

	return heads
}

func (w *BackgroundWorkers) reconcileRow(ctx context.Context, row *store.Data, head uint64, res *SweepResult) error {
	reader, err := w.chains.Get(row.ChainID)
	if err != nil {
		return err
	}

	receipt, err := reader.TransactionReceipt(ctx, row.TxHash)
	if errors.Is(err, chain.ErrTxNotFound) {
		// A confirmed row can vanish in a reorg; a pending row may just
		// not be mined yet. Neither is settled here, the cleanup job
		// owns expiry.
		return nil
	}
	if err != nil {
		return err
	}

	confirmations := confirmationCount(head, receipt.BlockNumber)

	if row.Status == store.StatusPending {
		return w.rectify(ctx, row, receipt, confirmations, res)
	}

	updated, err := w.store.UpdateBlockInfo(ctx, row.ChainID, row.TxHash, receipt.BlockNumber, confirmations)
	if err != nil {
		return err
	}
	if updated {
		res.Updated++
		data, err := w.store.Get(ctx, row.ChainID, row.TxHash)
		if err != nil {
			return err
		}
		w.processor.publish(data)
	}

	return nil
}

func (w *BackgroundWorkers) settlePending(ctx context.Context, row *store.Data, head uint64, res *SweepResult) error {
	reader, err := w.chains.Get(row.ChainID)
	if err != nil {
		return err
	}

	receipt, err := reader.TransactionReceipt(ctx, row.TxHash)
	if errors.Is(err, chain.ErrTxNotFound) {
		expired, err := w.store.MarkExpired(ctx, row.ChainID, row.TxHash)
		if err != nil {
			return err
		}
		if expired {
			res.Expired++
			data, err := w.store.Get(ctx, row.ChainID, row.TxHash)
			if err != nil {
				return err
			}
			w.processor.publish(data)
		}
		return nil
	}
	if err != nil {
		return err
	}

	return w.rectify(ctx, row, receipt, confirmationCount(head, receipt.BlockNumber), res)
}

func (w *BackgroundWorkers) rectify(ctx context.Context, row *store.Data, receipt *chain.TxReceipt, confirmations uint64, res *SweepResult) error {
	status := store.StatusConfirmed
	if !receipt.Success {
		status = store.StatusFailed
	}

	data, err := w.store.RectifyStatus(ctx, row.ChainID, row.TxHash, status, receipt.BlockNumber, confirmations)
	if errors.Is(err, store.ErrNotPending) {
		// Lost the race to a webhook event. The winner already ran the
		// side effects.
		return nil
	}
	if err != nil {
		return err
	}

	res.Rectified++
	w.processor.Rectified(ctx, data)

	return nil
}

func (w *BackgroundWorkers) countFailure() {
	if w.stats != nil {
		w.stats.reconcileFailures.Inc()
	}
}

// confirmationCount is head - blockNumber + 1, floored at 1. The floor
// covers providers whose head lags the block that carried the receipt.
func confirmationCount(head, blockNumber uint64) uint64 {
	if head < blockNumber {
		return 1
	}
	return head - blockNumber + 1
}
