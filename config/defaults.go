package config

import "time"

func getDefaultAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:  "INFO",
		LogFormat: "text",
		Prometheus: &PrometheusConfig{
			Addr:     "",
			Endpoint: "",
		},
		Db: &DbConfig{
			Mode: "postgres",
			Postgres: &PostgresConfig{
				Host:         "localhost",
				Port:         5432,
				Name:         "tracker",
				User:         "tracker",
				Password:     "tracker",
				MaxIdleConns: 10,
				MaxOpenConns: 80,
				SslMode:      "disable",
			},
		},
		Cache: &CacheConfig{
			Engine: "in-memory",
			Redis: &RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Chains: []*ChainConfig{
			{
				ID:             84532,
				Name:           "Base Sepolia",
				RPCURL:         "https://sepolia.base.org",
				WebhookNetwork: "BASE_SEPOLIA",
			},
		},
		API: &APIConfig{
			Address:        "localhost:8011",
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: 10 * time.Second,
		},
		Webhook: &WebhookConfig{
			Providers: map[string]*WebhookProviderConfig{
				"alchemy": {},
			},
		},
		Reconciler: &ReconcilerConfig{
			RPCTimeout: 5 * time.Second,
			RetrySleep: 2 * time.Second,
			MaxRetries: 3,
			Backfill: &BackfillConfig{
				Interval:    10 * time.Minute,
				TargetDepth: 6,
				BatchSize:   200,
			},
			StalePending: &StalePendingConfig{
				Interval:  15 * time.Minute,
				MaxAge:    30 * time.Minute,
				BatchSize: 20,
			},
		},
		Auth: &AuthConfig{
			NonceTTL: 2 * time.Minute,
		},
		Push: &PushConfig{
			GatewayURL: "https://exp.host/--/api/v2/push/send",
		},
		Receipt: &ReceiptConfig{
			PolicyVersion: "v1",
			FiatCurrency:  "USD",
			QuoteCurrency: "MXN",
		},
	}
}
