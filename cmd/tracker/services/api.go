package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/api/handler"
)

// StartAPIServer wires the HTTP surface onto the shared core and
// serves it. The returned function shuts the server down.
func StartAPIServer(logger *slog.Logger, appConfig *config.AppConfig, core *Core) (func(), error) {
	logger = logger.With(slog.String("service", "api"))

	e := setAPIEcho(logger, appConfig.API)

	apiHandler := handler.New(core.Processor, core.Workers, core.Ingestor, core.Auth,
		core.Receipts, core.Notifier, core.Updates, core.TxStore, appConfig.Reconciler, logger)
	apiHandler.RegisterRoutes(e)

	go func() {
		logger.Info("Starting API server", slog.String("address", appConfig.API.Address))
		err := e.Start(appConfig.API.Address)
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("API http server closed")
				return
			}

			logger.Error("Failed to start API server", slog.String("err", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := e.Shutdown(ctx)
		if err != nil {
			logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
		}
	}, nil
}

func setAPIEcho(logger *slog.Logger, cfg *config.APIConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(handler.RequestTimeout(cfg.RequestTimeout, "/v1/tx/stream"))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodDelete},
	}))

	e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(logger)))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "api",
		HistogramOptsFunc: func(opts prometheus.HistogramOpts) prometheus.HistogramOpts {
			if opts.Name == "request_duration_seconds" {
				opts.Buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
			}
			return opts
		},
	}))

	return e
}

func requestLogConfig(logger *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Info("request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				logger.Error("request error",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}
