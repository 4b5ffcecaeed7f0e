package chain_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/chain"
)

func TestClientCallTimeout(t *testing.T) {
	// given an endpoint that accepts the request and never answers
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sut, err := chain.Dial(&config.ChainConfig{ID: 84532, Name: "Base Sepolia", RPCURL: srv.URL}, logger,
		chain.WithRetryPolicy(time.Millisecond, 0),
		chain.WithCallTimeout(50*time.Millisecond),
	)
	require.NoError(t, err)
	defer sut.Close()

	// when
	start := time.Now()
	_, err = sut.BlockNumber(context.Background())

	// then the per-attempt deadline fires instead of the call hanging
	require.Error(t, err)
	assert.ErrorContains(t, err, "context deadline exceeded")
	assert.Less(t, time.Since(start), 2*time.Second)
}
