package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	pushChunkSize        = 100
	retriesDefault       = 5
	retrySleepDefault    = 5 * time.Second
	senderTimeoutDefault = 10 * time.Second
)

// PushSender delivers a push message to a set of device tokens.
type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

type pushMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// HTTPSender posts chunked push messages to an Expo-compatible push
// gateway. Transient HTTP failures are retried with a constant
// backoff; a 4xx response is treated as permanent.
type HTTPSender struct {
	gatewayURL string
	httpClient *http.Client
	logger     *slog.Logger
	retries    uint64
	retrySleep time.Duration
}

type SenderOption func(*HTTPSender)

func WithRetries(retries uint64) SenderOption {
	return func(s *HTTPSender) {
		s.retries = retries
	}
}

func WithRetrySleep(d time.Duration) SenderOption {
	return func(s *HTTPSender) {
		s.retrySleep = d
	}
}

func WithHTTPClient(c *http.Client) SenderOption {
	return func(s *HTTPSender) {
		s.httpClient = c
	}
}

func NewHTTPSender(gatewayURL string, logger *slog.Logger, opts ...SenderOption) *HTTPSender {
	s := &HTTPSender{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: senderTimeoutDefault},
		logger:     logger.With(slog.String("module", "push-sender")),
		retries:    retriesDefault,
		retrySleep: retrySleepDefault,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *HTTPSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	messages := make([]pushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, pushMessage{
			To:    token,
			Sound: "default",
			Title: title,
			Body:  body,
			Data:  data,
		})
	}

	for start := 0; start < len(messages); start += pushChunkSize {
		end := min(start+pushChunkSize, len(messages))

		if err := s.sendChunk(ctx, messages[start:end]); err != nil {
			return err
		}
	}

	return nil
}

func (s *HTTPSender) sendChunk(ctx context.Context, chunk []pushMessage) error {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return err
	}

	operation := func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return struct{}{}, backoff.Permanent(fmt.Errorf("push gateway rejected request: %d %s", resp.StatusCode, responseBody))
		}
		if resp.StatusCode >= 500 {
			return struct{}{}, fmt.Errorf("push gateway error: %d", resp.StatusCode)
		}

		return struct{}{}, nil
	}

	notify := func(err error, nextTry time.Duration) {
		s.logger.Warn("push delivery failed, retrying", slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retrySleep), s.retries), ctx)
	_, err = backoff.RetryNotifyWithData(operation, policy, notify)
	return err
}
