package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cmd "github.com/ricepay/tracker/cmd/tracker/services"
	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/cache"
	trackerLogger "github.com/ricepay/tracker/internal/logger"
	"github.com/ricepay/tracker/internal/version"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run tracker: %v", err)
	}

	os.Exit(0)
}

func run() error {
	startAPI := flag.Bool("api", false, "start the API server")
	startReconciler := flag.Bool("reconciler", false, "start the reconciliation jobs")
	configDir := flag.String("config", "", "path to configuration file")
	flag.Parse()

	appConfig, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	logger, err := trackerLogger.NewLogger(appConfig.LogLevel, appConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}
	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting tracker", slog.String("version", version.Version), slog.String("commit", version.Commit))

	go func() {
		if appConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", appConfig.ProfilerAddr))

			err := http.ListenAndServe(appConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if appConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", appConfig.Prometheus.Endpoint))
			http.Handle(appConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(appConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	if !isAnyFlagPassed("api", "reconciler") {
		logger.Info("No service selected, starting all")
		*startAPI = true
		*startReconciler = true
	}

	cacheStore, err := cache.NewStore(appConfig.Cache)
	if err != nil {
		return fmt.Errorf("failed to create cache store: %v", err)
	}

	core, err := cmd.NewCore(logger, appConfig, cacheStore)
	if err != nil {
		return fmt.Errorf("failed to create tracker core: %v", err)
	}

	shutdownFns := []func(){func() { core.Shutdown(logger) }}

	if *startReconciler {
		logger.Info("Starting reconciler")
		stopFn := cmd.StartReconciler(logger, appConfig, core)
		shutdownFns = append([]func(){stopFn}, shutdownFns...)
	}

	if *startAPI {
		logger.Info("Starting API")
		stopFn, err := cmd.StartAPIServer(logger, appConfig, core)
		if err != nil {
			return fmt.Errorf("failed to start api: %v", err)
		}
		shutdownFns = append([]func(){stopFn}, shutdownFns...)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-signalChan
	logger.Info("Received shutdown signal", slog.String("reason", sig.String()))

	for _, fn := range shutdownFns {
		fn()
	}

	return nil
}

func isAnyFlagPassed(flags ...string) bool {
	for _, name := range flags {
		found := false
		flag.Visit(func(f *flag.Flag) {
			if f.Name == name {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}
