package cmd

import (
	"log/slog"

	"github.com/ricepay/tracker/config"
)

// StartReconciler starts the scheduled backfill and stale-pending
// cleanup on the shared core. The returned function stops the tickers
// and waits for in-flight sweeps.
func StartReconciler(logger *slog.Logger, appConfig *config.AppConfig, core *Core) func() {
	logger = logger.With(slog.String("service", "reconciler"))

	cfg := appConfig.Reconciler

	core.Workers.StartBackfill(cfg.Backfill.Interval, cfg.Backfill.TargetDepth, cfg.Backfill.BatchSize)
	logger.Info("Backfill started",
		slog.Duration("interval", cfg.Backfill.Interval),
		slog.Uint64("targetDepth", cfg.Backfill.TargetDepth),
	)

	core.Workers.StartStalePendingCleanup(cfg.StalePending.Interval, cfg.StalePending.MaxAge, cfg.StalePending.BatchSize)
	logger.Info("Stale-pending cleanup started",
		slog.Duration("interval", cfg.StalePending.Interval),
		slog.Duration("maxAge", cfg.StalePending.MaxAge),
	)

	return core.Workers.GracefulStop
}
