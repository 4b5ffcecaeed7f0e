package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/auth"
	"github.com/ricepay/tracker/internal/cache"
	"github.com/ricepay/tracker/internal/chain"
	"github.com/ricepay/tracker/internal/notify"
	notifystore "github.com/ricepay/tracker/internal/notify/store/postgresql"
	"github.com/ricepay/tracker/internal/receipt"
	receiptstore "github.com/ricepay/tracker/internal/receipt/store/postgresql"
	"github.com/ricepay/tracker/internal/stream"
	"github.com/ricepay/tracker/internal/tracker"
	"github.com/ricepay/tracker/internal/tracker/store/postgresql"
	"github.com/ricepay/tracker/internal/webhook"
)

// Core bundles the components shared by the API server and the
// reconciler so a single-binary deployment constructs them once.
type Core struct {
	TxStore   *postgresql.PostgreSQL
	Chains    *chain.Registry
	Updates   *stream.Stream
	Receipts  *receipt.Manager
	Notifier  *notify.Service
	Processor *tracker.Processor
	Workers   *tracker.BackgroundWorkers
	Ingestor  *webhook.Ingestor
	Auth      *auth.Service

	stats *tracker.Stats
}

func NewCore(logger *slog.Logger, appConfig *config.AppConfig, cacheStore cache.Store) (*Core, error) {
	dbCfg := appConfig.Db.Postgres
	dbInfo := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		dbCfg.User, dbCfg.Password, dbCfg.Name, dbCfg.Host, dbCfg.Port, dbCfg.SslMode)

	txStore, err := postgresql.New(dbInfo, dbCfg.MaxIdleConns, dbCfg.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction store: %v", err)
	}

	readers := make([]chain.Reader, 0, len(appConfig.Chains))
	chainNames := make(map[int64]string, len(appConfig.Chains))
	for _, chainCfg := range appConfig.Chains {
		client, err := chain.Dial(chainCfg, logger,
			chain.WithRetryPolicy(appConfig.Reconciler.RetrySleep, appConfig.Reconciler.MaxRetries),
			chain.WithCallTimeout(appConfig.Reconciler.RPCTimeout))
		if err != nil {
			txStore.Close()
			return nil, fmt.Errorf("failed to dial chain %d: %v", chainCfg.ID, err)
		}
		readers = append(readers, client)
		chainNames[chainCfg.ID] = chainCfg.Name
	}
	registry := chain.NewRegistry(readers...)

	receipts := receipt.NewManager(receiptstore.New(txStore.DB()), logger,
		receipt.WithPolicy(appConfig.Receipt.PolicyVersion, appConfig.Receipt.FiatCurrency, appConfig.Receipt.QuoteCurrency))

	sender := notify.NewHTTPSender(appConfig.Push.GatewayURL, logger,
		notify.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}))
	notifier := notify.NewService(notifystore.New(txStore.DB()), sender, logger)

	updates := stream.New()

	var stats *tracker.Stats
	if appConfig.Prometheus.IsEnabled() {
		stats, err = tracker.NewStats()
		if err != nil {
			txStore.Close()
			return nil, err
		}
	}

	processorOpts := []tracker.Option{
		tracker.WithReceiptCreator(receipts),
		tracker.WithNotifier(notifier),
	}
	if stats != nil {
		processorOpts = append(processorOpts, tracker.WithStats(stats))
	}

	processor, err := tracker.NewProcessor(txStore, updates, chainNames, logger, processorOpts...)
	if err != nil {
		txStore.Close()
		return nil, fmt.Errorf("failed to create processor: %v", err)
	}

	var workerOpts []tracker.WorkersOption
	if stats != nil {
		workerOpts = append(workerOpts, tracker.WithWorkersStats(stats))
	}
	workers := tracker.NewBackgroundWorkers(txStore, registry, processor, logger, workerOpts...)

	return &Core{
		TxStore:   txStore,
		Chains:    registry,
		Updates:   updates,
		Receipts:  receipts,
		Notifier:  notifier,
		Processor: processor,
		Workers:   workers,
		Ingestor:  webhook.NewIngestor(appConfig, registry, processor, logger),
		Auth:      auth.NewService(cacheStore, appConfig.Auth.NonceTTL, logger),
		stats:     stats,
	}, nil
}

func (c *Core) Shutdown(logger *slog.Logger) {
	if c.stats != nil {
		c.stats.UnregisterStats()
	}

	err := c.TxStore.Close()
	if err != nil {
		logger.Error("failed to close transaction store", slog.String("err", err.Error()))
	}
}
