package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/chain"
	"github.com/ricepay/tracker/internal/tracker/store"
)

var (
	ErrUnknownProvider = errors.New("unknown webhook provider")
	ErrUnknownNetwork  = errors.New("unknown webhook network")
)

// TxApplier is the slice of the processor the ingestor drives.
type TxApplier interface {
	ApplyEvent(ctx context.Context, event *store.Event) (*store.Data, error)
}

// IngestResult reports what one delivery amounted to.
type IngestResult struct {
	Received int `json:"received"`
	Applied  int `json:"applied"`
}

// Ingestor turns verified webhook deliveries into tracker events.
type Ingestor struct {
	cfg       *config.AppConfig
	chains    *chain.Registry
	processor TxApplier
	logger    *slog.Logger
}

func NewIngestor(cfg *config.AppConfig, chains *chain.Registry, processor TxApplier, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		cfg:       cfg,
		chains:    chains,
		processor: processor,
		logger:    logger.With(slog.String("module", "webhook")),
	}
}

// Ingest verifies the delivery and applies one event per transaction
// hash found in it. A body without any usable hash is acknowledged as a
// no-op so the provider does not redeliver it forever.
func (i *Ingestor) Ingest(ctx context.Context, provider string, body []byte, signature string) (*IngestResult, error) {
	providerCfg, ok := i.cfg.Webhook.Providers[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}

	err := VerifySignature(providerCfg.Secret, body, signature)
	if err != nil {
		return nil, err
	}

	payload := Extract(body)
	res := &IngestResult{Received: len(payload.Hashes)}

	if len(payload.Hashes) == 0 {
		i.logger.Debug("delivery without transaction hashes", slog.String("provider", provider))
		return res, nil
	}

	chainCfg, err := i.resolveChain(payload.Network)
	if err != nil {
		return nil, err
	}

	confirmations := payload.Confirmations
	if confirmations == nil && payload.Status == store.StatusConfirmed && payload.BlockNumber != nil {
		// Best effort: a failed head read just leaves the count to the
		// backfill job.
		confirmations = i.confirmationsFromHead(ctx, chainCfg.ID, *payload.BlockNumber)
	}

	var errs []error
	for _, hash := range payload.Hashes {
		event := &store.Event{
			ChainID:       chainCfg.ID,
			TxHash:        hash,
			EventID:       composeEventID(payload.EventID, hash, len(payload.Hashes)),
			Status:        payload.Status,
			BlockNumber:   payload.BlockNumber,
			Confirmations: confirmations,
			RawPayload:    body,
		}

		_, err = i.processor.ApplyEvent(ctx, event)
		if err != nil {
			errs = append(errs, err)
			i.logger.Error("failed to apply webhook event",
				slog.String("provider", provider),
				slog.String("hash", hash),
				slog.String("err", err.Error()),
			)
			continue
		}
		res.Applied++
	}

	if res.Applied == 0 && len(errs) > 0 {
		return res, errors.Join(errs...)
	}

	return res, nil
}

func (i *Ingestor) resolveChain(network string) (*config.ChainConfig, error) {
	if network == "" {
		// Providers that omit the network label are single-chain setups.
		if len(i.cfg.Chains) == 1 {
			return i.cfg.Chains[0], nil
		}
		return nil, ErrUnknownNetwork
	}

	chainCfg, ok := i.cfg.ChainByWebhookNetwork(network)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}
	return chainCfg, nil
}

func (i *Ingestor) confirmationsFromHead(ctx context.Context, chainID int64, blockNumber uint64) *uint64 {
	reader, err := i.chains.Get(chainID)
	if err != nil {
		return nil
	}

	head, err := reader.BlockNumber(ctx)
	if err != nil {
		i.logger.Warn("failed to read chain head",
			slog.Int64("chainID", chainID),
			slog.String("err", err.Error()),
		)
		return nil
	}

	confirmations := uint64(1)
	if head >= blockNumber {
		confirmations = head - blockNumber + 1
	}
	return &confirmations
}

// composeEventID keeps the idempotency key unique per row when one
// delivery covers several hashes, while leaving the common single-hash
// case byte-identical to the provider id.
func composeEventID(eventID, hash string, hashCount int) string {
	if hashCount == 1 {
		return eventID
	}
	return eventID + ":" + hash
}
