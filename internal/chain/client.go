package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/ricepay/tracker/config"
)

const (
	retrySleepDefault  = 2 * time.Second
	maxRetriesDefault  = 3
	callTimeoutDefault = 5 * time.Second
)

// Client is a Reader over a single EVM JSON-RPC endpoint. Transient
// RPC failures are retried with a constant backoff; a missing receipt
// is returned as ErrTxNotFound without retrying. Every attempt runs
// under its own deadline so a stalled endpoint cannot block a caller
// past callTimeout per try.
type Client struct {
	eth         *ethclient.Client
	chainID     int64
	name        string
	logger      *slog.Logger
	retrySleep  time.Duration
	maxRetries  uint64
	callTimeout time.Duration
}

func WithRetryPolicy(sleep time.Duration, maxRetries uint64) func(*Client) {
	return func(c *Client) {
		c.retrySleep = sleep
		c.maxRetries = maxRetries
	}
}

func WithCallTimeout(timeout time.Duration) func(*Client) {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

func Dial(cfg *config.ChainConfig, logger *slog.Logger, opts ...func(*Client)) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint %s: %w", cfg.RPCURL, err)
	}

	c := &Client{
		eth:         eth,
		chainID:     cfg.ID,
		name:        cfg.Name,
		logger:      logger.With(slog.String("module", "chain"), slog.Int64("chainID", cfg.ID)),
		retrySleep:  retrySleepDefault,
		maxRetries:  maxRetriesDefault,
		callTimeout: callTimeoutDefault,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

func (c *Client) ChainID() int64 {
	return c.chainID
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	operation := func() (uint64, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		head, err := c.eth.BlockNumber(callCtx)
		if err != nil {
			return 0, fmt.Errorf("failed to get block number: %w", err)
		}
		return head, nil
	}

	notify := func(err error, nextTry time.Duration) {
		c.logger.Warn("block number read failed, retrying", slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	return backoff.RetryNotifyWithData(operation, c.retryPolicy(ctx), notify)
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash string) (*TxReceipt, error) {
	hash := common.HexToHash(txHash)

	operation := func() (*TxReceipt, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		receipt, err := c.eth.TransactionReceipt(callCtx, hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return nil, backoff.Permanent(ErrTxNotFound)
			}
			return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
		}

		return &TxReceipt{
			BlockNumber: receipt.BlockNumber.Uint64(),
			Success:     receipt.Status == types.ReceiptStatusSuccessful,
		}, nil
	}

	notify := func(err error, nextTry time.Duration) {
		c.logger.Warn("receipt read failed, retrying", slog.String("hash", txHash), slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	return backoff.RetryNotifyWithData(operation, c.retryPolicy(ctx), notify)
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOffContext {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retrySleep), c.maxRetries)
	return backoff.WithContext(policy, ctx)
}
