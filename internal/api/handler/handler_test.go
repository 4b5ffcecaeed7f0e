package handler_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/api/handler"
	"github.com/ricepay/tracker/internal/auth"
	"github.com/ricepay/tracker/internal/cache"
	"github.com/ricepay/tracker/internal/chain"
	chainMocks "github.com/ricepay/tracker/internal/chain/mocks"
	"github.com/ricepay/tracker/internal/notify"
	notifyMocks "github.com/ricepay/tracker/internal/notify/mocks"
	notifyStoreMocks "github.com/ricepay/tracker/internal/notify/store/mocks"
	"github.com/ricepay/tracker/internal/receipt"
	receiptstore "github.com/ricepay/tracker/internal/receipt/store"
	receiptMocks "github.com/ricepay/tracker/internal/receipt/store/mocks"
	"github.com/ricepay/tracker/internal/stream"
	"github.com/ricepay/tracker/internal/tracker"
	"github.com/ricepay/tracker/internal/tracker/store"
	storeMocks "github.com/ricepay/tracker/internal/tracker/store/mocks"
	"github.com/ricepay/tracker/internal/webhook"
)

const (
	testHash   = "0x4ca7b1ebd3a9a516a3b418c2dcc40a5c05bba0a1788255a4897681b0ca43e2cd"
	testSecret = "whsec_test"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type handlerDeps struct {
	txStore      *storeMocks.TransactionStoreMock
	receiptStore *receiptMocks.ReceiptStoreMock
	ping         pingerFunc
}

func newTestServer(t *testing.T, deps handlerDeps) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if deps.txStore == nil {
		deps.txStore = &storeMocks.TransactionStoreMock{}
	}
	if deps.receiptStore == nil {
		deps.receiptStore = &receiptMocks.ReceiptStoreMock{}
	}
	if deps.ping == nil {
		deps.ping = func(_ context.Context) error { return nil }
	}

	updates := stream.New()
	processor, err := tracker.NewProcessor(deps.txStore, updates, map[int64]string{84532: "Base Sepolia"}, logger)
	require.NoError(t, err)

	reader := &chainMocks.ReaderMock{
		ChainIDFunc: func() int64 { return 84532 },
		NameFunc:    func() string { return "Base Sepolia" },
		BlockNumberFunc: func(_ context.Context) (uint64, error) {
			return 104, nil
		},
	}
	registry := chain.NewRegistry(reader)

	workers := tracker.NewBackgroundWorkers(deps.txStore, registry, processor, logger)
	t.Cleanup(workers.GracefulStop)

	cfg := &config.AppConfig{
		Chains: []*config.ChainConfig{
			{ID: 84532, Name: "Base Sepolia", WebhookNetwork: "BASE_SEPOLIA"},
		},
		Webhook: &config.WebhookConfig{
			Providers: map[string]*config.WebhookProviderConfig{
				"alchemy": {Secret: testSecret},
			},
		},
		Reconciler: &config.ReconcilerConfig{
			Backfill:     &config.BackfillConfig{TargetDepth: 12, BatchSize: 100},
			StalePending: &config.StalePendingConfig{MaxAge: 30 * time.Minute, BatchSize: 20},
		},
	}

	ingestor := webhook.NewIngestor(cfg, registry, processor, logger)
	authSvc := auth.NewService(cache.NewMemoryStore(), 2*time.Minute, logger)
	receipts := receipt.NewManager(deps.receiptStore, logger)
	notifier := notify.NewService(&notifyStoreMocks.NotifyStoreMock{}, &notifyMocks.PushSenderMock{}, logger)

	e := echo.New()
	handler.New(processor, workers, ingestor, authSvc, receipts, notifier, updates, deps.ping, cfg.Reconciler, logger).RegisterRoutes(e)

	return e
}

func signWebhook(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHealth(t *testing.T) {
	tt := []struct {
		name    string
		pingErr error

		expectedStatus int
	}{
		{
			name: "healthy",

			expectedStatus: http.StatusOK,
		},
		{
			name:    "db down",
			pingErr: errors.New("connection refused"),

			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newTestServer(t, handlerDeps{
				ping: func(_ context.Context) error { return tc.pingErr },
			})

			// when
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			// then
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestSubmitIntent(t *testing.T) {
	tt := []struct {
		name string
		body string

		expectedStatus int
	}{
		{
			name: "created",
			body: `{"chainId":84532,"txHash":"` + strings.ToUpper(testHash[2:]) + `","from":"0xaa","to":"0xbb","token":"0xcc","amount":"25.00"}`,

			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid hash",
			body: `{"chainId":84532,"txHash":"0x1234","from":"0xaa","to":"0xbb"}`,

			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unsupported chain",
			body: `{"chainId":1,"txHash":"` + testHash + `","from":"0xaa","to":"0xbb"}`,

			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing addresses",
			body: `{"chainId":84532,"txHash":"` + testHash + `"}`,

			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed body",
			body: `{"chainId":`,

			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			txStore := &storeMocks.TransactionStoreMock{
				UpsertIntentFunc: func(_ context.Context, intent *store.Intent) (*store.Data, error) {
					return &store.Data{
						ID:          "tx-1",
						ChainID:     intent.ChainID,
						Chain:       intent.Chain,
						TxHash:      intent.TxHash,
						FromAddress: intent.FromAddress,
						ToAddress:   intent.ToAddress,
						Token:       intent.Token,
						Amount:      intent.Amount,
						Status:      store.StatusPending,
					}, nil
				},
			}
			e := newTestServer(t, handlerDeps{txStore: txStore})

			req := httptest.NewRequest(http.MethodPost, "/v1/tx", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			// when
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			// then
			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "PENDING", resp["status"])
				// the submitted hash is normalized before it reaches the store
				require.Len(t, txStore.UpsertIntentCalls(), 1)
				assert.Equal(t, testHash, txStore.UpsertIntentCalls()[0].Intent.TxHash)
			}
		})
	}
}

func TestGetTransaction(t *testing.T) {
	// given
	txStore := &storeMocks.TransactionStoreMock{
		GetFunc: func(_ context.Context, _ int64, _ string) (*store.Data, error) {
			return nil, store.ErrNotFound
		},
	}
	e := newTestServer(t, handlerDeps{txStore: txStore})

	t.Run("unknown transaction", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tx?chainId=84532&hash="+testHash, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("chain id not an integer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tx?chainId=base&hash="+testHash, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIngestWebhook(t *testing.T) {
	body := []byte(`{"id":"evt-1","transactionHash":"` + testHash + `"}`)

	tt := []struct {
		name      string
		provider  string
		signature string

		expectedStatus  int
		expectedApplied float64
	}{
		{
			name:      "applied",
			provider:  "alchemy",
			signature: signWebhook(body),

			expectedStatus:  http.StatusOK,
			expectedApplied: 1,
		},
		{
			name:      "unknown provider",
			provider:  "quicknode",
			signature: signWebhook(body),

			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "bad signature",
			provider:  "alchemy",
			signature: "deadbeef",

			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			txStore := &storeMocks.TransactionStoreMock{
				ApplyEventFunc: func(_ context.Context, event *store.Event) (*store.Data, bool, error) {
					return &store.Data{
						ID:      "tx-1",
						ChainID: event.ChainID,
						TxHash:  event.TxHash,
						Status:  event.Status,
					}, true, nil
				},
			}
			e := newTestServer(t, handlerDeps{txStore: txStore})

			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/"+tc.provider, strings.NewReader(string(body)))
			req.Header.Set("X-Webhook-Signature", tc.signature)

			// when
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			// then
			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, float64(1), resp["received"])
				assert.Equal(t, tc.expectedApplied, resp["applied"])
			}
		})
	}
}

func TestIngestWebhookAcksPayloadWithoutHashes(t *testing.T) {
	// given
	body := []byte(`{"id":"evt-1","type":"ADDRESS_ACTIVITY"}`)
	e := newTestServer(t, handlerDeps{})

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/alchemy", strings.NewReader(string(body)))
	req.Header.Set("X-Webhook-Signature", signWebhook(body))

	// when
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// then
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["received"])
	assert.Equal(t, float64(0), resp["applied"])
}

func TestIssueNonce(t *testing.T) {
	// given
	e := newTestServer(t, handlerDeps{})

	// when
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/nonce", nil))

	// then
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["nonce"])
	assert.NotZero(t, resp["expiresAt"])
}

func TestGetReceipt(t *testing.T) {
	token := "tok-1"

	tt := []struct {
		name    string
		receipt *receiptstore.Receipt
		err     error

		expectedStatus int
		expectedShared bool
	}{
		{
			name: "shared receipt",
			receipt: &receiptstore.Receipt{
				ID:         "rcpt-1",
				ChainID:    84532,
				TxHash:     testHash,
				Amount:     "25.00",
				ShareToken: &token,
			},

			expectedStatus: http.StatusOK,
			expectedShared: true,
		},
		{
			name: "private receipt",
			receipt: &receiptstore.Receipt{
				ID:      "rcpt-1",
				ChainID: 84532,
				TxHash:  testHash,
			},

			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown receipt",
			err:  receiptstore.ErrNotFound,

			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			receiptStore := &receiptMocks.ReceiptStoreMock{
				GetFunc: func(_ context.Context, _ string) (*receiptstore.Receipt, error) {
					return tc.receipt, tc.err
				},
			}
			e := newTestServer(t, handlerDeps{receiptStore: receiptStore})

			// when
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/receipts/rcpt-1", nil))

			// then
			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedShared, resp["shared"])
				// the token itself never leaves through the receipt body
				_, leaked := resp["shareToken"]
				assert.False(t, leaked)
			}
		})
	}
}

func TestShareReceiptRequiresSignedRequest(t *testing.T) {
	// given
	e := newTestServer(t, handlerDeps{})

	// when: no auth headers at all
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/receipts/rcpt-1/share", nil))

	// then
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListActivityRequiresAddress(t *testing.T) {
	// given
	e := newTestServer(t, handlerDeps{})

	// when
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/activity", nil))

	// then
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListActivityRejectsUnknownDirection(t *testing.T) {
	// given
	e := newTestServer(t, handlerDeps{})

	// when
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/activity?address=0x1111111111111111111111111111111111111111&direction=SIDEWAYS", nil))

	// then
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerBackfill(t *testing.T) {
	// given
	txStore := &storeMocks.TransactionStoreMock{
		GetConfirmedBelowDepthFunc: func(_ context.Context, _ uint64, _ int64) ([]*store.Data, error) {
			return nil, nil
		},
	}
	e := newTestServer(t, handlerDeps{txStore: txStore})

	// when
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/tx/backfill", nil))

	// then
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["scanned"])

	require.Len(t, txStore.GetConfirmedBelowDepthCalls(), 1)
	assert.Equal(t, uint64(12), txStore.GetConfirmedBelowDepthCalls()[0].TargetDepth)
}

func TestRegisterDevice(t *testing.T) {
	// given
	e := newTestServer(t, handlerDeps{})

	req := httptest.NewRequest(http.MethodPost, "/v1/devices", strings.NewReader(`{"wallet":"0xaa"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	// when: pushToken missing
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// then
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
