package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		// given
		expectedConfig := getDefaultAppConfig()

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, expectedConfig, actualConfig)
	})

	t.Run("partial file override", func(t *testing.T) {
		// when
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err, "error loading config")

		// then
		// verify not overridden default example values
		assert.Equal(t, "localhost:8011", actualConfig.API.Address)
		assert.Equal(t, 15*time.Minute, actualConfig.Reconciler.StalePending.Interval)
		assert.Equal(t, 2*time.Minute, actualConfig.Auth.NonceTTL)

		// verify correct override
		assert.Equal(t, "DEBUG", actualConfig.LogLevel)
		assert.Equal(t, "json", actualConfig.LogFormat)
		require.Len(t, actualConfig.Chains, 2)
		assert.Equal(t, int64(8453), actualConfig.Chains[1].ID)
		assert.Equal(t, "BASE_MAINNET", actualConfig.Chains[1].WebhookNetwork)
		assert.Equal(t, "whsec_test", actualConfig.Webhook.Providers["alchemy"].Secret)
		assert.Equal(t, uint64(12), actualConfig.Reconciler.Backfill.TargetDepth)
		assert.Equal(t, 45*time.Minute, actualConfig.Reconciler.StalePending.MaxAge)
	})

	t.Run("missing config dir", func(t *testing.T) {
		// when
		_, err := Load("./does_not_exist/")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})
}

func TestChainLookups(t *testing.T) {
	// given
	cfg := getDefaultAppConfig()

	// when / then
	chain, ok := cfg.ChainByID(84532)
	require.True(t, ok)
	assert.Equal(t, "Base Sepolia", chain.Name)

	_, ok = cfg.ChainByID(1)
	assert.False(t, ok)

	chain, ok = cfg.ChainByWebhookNetwork("BASE_SEPOLIA")
	require.True(t, ok)
	assert.Equal(t, int64(84532), chain.ID)

	_, ok = cfg.ChainByWebhookNetwork("ETH_MAINNET")
	assert.False(t, ok)
}
