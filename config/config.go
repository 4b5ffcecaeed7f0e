package config

import (
	"time"
)

type AppConfig struct {
	LogLevel     string             `json:"logLevel" mapstructure:"logLevel"`
	LogFormat    string             `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr string             `json:"profilerAddr" mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig  `json:"prometheus" mapstructure:"prometheus"`
	Db           *DbConfig          `json:"db" mapstructure:"db"`
	Cache        *CacheConfig       `json:"cache" mapstructure:"cache"`
	Chains       []*ChainConfig     `json:"chains" mapstructure:"chains"`
	API          *APIConfig         `json:"api" mapstructure:"api"`
	Webhook      *WebhookConfig     `json:"webhook" mapstructure:"webhook"`
	Reconciler   *ReconcilerConfig  `json:"reconciler" mapstructure:"reconciler"`
	Auth         *AuthConfig        `json:"auth" mapstructure:"auth"`
	Push         *PushConfig        `json:"push" mapstructure:"push"`
	Receipt      *ReceiptConfig     `json:"receipt" mapstructure:"receipt"`
}

type PrometheusConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Endpoint != "" && p.Addr != ""
}

type DbConfig struct {
	Mode     string          `json:"mode" mapstructure:"mode"`
	Postgres *PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host         string `json:"host" mapstructure:"host"`
	Port         int    `json:"port" mapstructure:"port"`
	Name         string `json:"name" mapstructure:"name"`
	User         string `json:"user" mapstructure:"user"`
	Password     string `json:"password" mapstructure:"password"`
	MaxIdleConns int    `json:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns int    `json:"maxOpenConns" mapstructure:"maxOpenConns"`
	SslMode      string `json:"sslMode" mapstructure:"sslMode"`
}

type CacheConfig struct {
	Engine string       `json:"engine" mapstructure:"engine"`
	Redis  *RedisConfig `json:"redis" mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

// ChainConfig describes one EVM chain the tracker observes.
// WebhookNetwork is the network label the webhook provider uses in its
// payloads (e.g. BASE_SEPOLIA) and maps payloads back to a chain id.
type ChainConfig struct {
	ID             int64  `json:"id" mapstructure:"id"`
	Name           string `json:"name" mapstructure:"name"`
	RPCURL         string `json:"rpcUrl" mapstructure:"rpcUrl"`
	WebhookNetwork string `json:"webhookNetwork" mapstructure:"webhookNetwork"`
}

type APIConfig struct {
	Address        string        `json:"address" mapstructure:"address"`
	AllowedOrigins []string      `json:"allowedOrigins" mapstructure:"allowedOrigins"`
	RequestTimeout time.Duration `json:"requestTimeout" mapstructure:"requestTimeout"`
}

type WebhookConfig struct {
	Providers map[string]*WebhookProviderConfig `json:"providers" mapstructure:"providers"`
}

type WebhookProviderConfig struct {
	Secret string `json:"secret" mapstructure:"secret"`
}

type ReconcilerConfig struct {
	RPCTimeout     time.Duration         `json:"rpcTimeout" mapstructure:"rpcTimeout"`
	RetrySleep     time.Duration         `json:"retrySleep" mapstructure:"retrySleep"`
	MaxRetries     uint64                `json:"maxRetries" mapstructure:"maxRetries"`
	Backfill       *BackfillConfig       `json:"backfill" mapstructure:"backfill"`
	StalePending   *StalePendingConfig   `json:"stalePending" mapstructure:"stalePending"`
}

type BackfillConfig struct {
	Interval    time.Duration `json:"interval" mapstructure:"interval"`
	TargetDepth uint64        `json:"targetDepth" mapstructure:"targetDepth"`
	BatchSize   int64         `json:"batchSize" mapstructure:"batchSize"`
}

type StalePendingConfig struct {
	Interval  time.Duration `json:"interval" mapstructure:"interval"`
	MaxAge    time.Duration `json:"maxAge" mapstructure:"maxAge"`
	BatchSize int64         `json:"batchSize" mapstructure:"batchSize"`
}

type AuthConfig struct {
	NonceTTL time.Duration `json:"nonceTTL" mapstructure:"nonceTTL"`
}

type PushConfig struct {
	GatewayURL string `json:"gatewayUrl" mapstructure:"gatewayUrl"`
}

type ReceiptConfig struct {
	PolicyVersion string `json:"policyVersion" mapstructure:"policyVersion"`
	FiatCurrency  string `json:"fiatCurrency" mapstructure:"fiatCurrency"`
	QuoteCurrency string `json:"quoteCurrency" mapstructure:"quoteCurrency"`
}

// ChainByID returns the configured chain with the given id.
func (c *AppConfig) ChainByID(id int64) (*ChainConfig, bool) {
	for _, chain := range c.Chains {
		if chain.ID == id {
			return chain, true
		}
	}
	return nil, false
}

// ChainByWebhookNetwork resolves a provider network label to a chain.
func (c *AppConfig) ChainByWebhookNetwork(network string) (*ChainConfig, bool) {
	for _, chain := range c.Chains {
		if chain.WebhookNetwork == network {
			return chain, true
		}
	}
	return nil, false
}
