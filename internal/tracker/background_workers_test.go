package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/internal/chain"
	chainMocks "github.com/ricepay/tracker/internal/chain/mocks"
	"github.com/ricepay/tracker/internal/stream"
	"github.com/ricepay/tracker/internal/tracker"
	"github.com/ricepay/tracker/internal/tracker/store"
	storeMocks "github.com/ricepay/tracker/internal/tracker/store/mocks"
)

//go:generate moq -pkg mocks -out ../chain/mocks/reader_mock.go ../chain Reader

func testReader(head uint64, headErr error, receipts map[string]*chain.TxReceipt) *chainMocks.ReaderMock {
	return &chainMocks.ReaderMock{
		ChainIDFunc: func() int64 { return 84532 },
		NameFunc:    func() string { return "Base Sepolia" },
		BlockNumberFunc: func(_ context.Context) (uint64, error) {
			return head, headErr
		},
		TransactionReceiptFunc: func(_ context.Context, txHash string) (*chain.TxReceipt, error) {
			receipt, ok := receipts[txHash]
			if !ok {
				return nil, chain.ErrTxNotFound
			}
			return receipt, nil
		},
	}
}

func newWorkers(t *testing.T, txStore store.TransactionStore, reader chain.Reader) *tracker.BackgroundWorkers {
	t.Helper()

	processor, err := tracker.NewProcessor(txStore, stream.New(), testChainNames, discardLogger())
	require.NoError(t, err)

	return tracker.NewBackgroundWorkers(txStore, chain.NewRegistry(reader), processor, discardLogger())
}

func TestRunBackfill(t *testing.T) {
	confirmedRow := &store.Data{
		ChainID:       84532,
		TxHash:        testHash,
		Status:        store.StatusConfirmed,
		BlockNumber:   ptrTo(uint64(80)),
		Confirmations: ptrTo(uint64(3)),
	}
	pendingRow := &store.Data{
		ChainID: 84532,
		TxHash:  testHash2,
		Status:  store.StatusPending,
	}

	tt := []struct {
		name     string
		rows     []*store.Data
		head     uint64
		headErr  error
		receipts map[string]*chain.TxReceipt
		updated  bool

		expected              *tracker.SweepResult
		expectedUpdateCalls   int
		expectedConfirmations uint64
	}{
		{
			name:     "confirmed row advances to head minus block plus one",
			rows:     []*store.Data{confirmedRow},
			head:     100,
			receipts: map[string]*chain.TxReceipt{testHash: {BlockNumber: 80, Success: true}},
			updated:  true,

			expected:              &tracker.SweepResult{Scanned: 1, Updated: 1},
			expectedUpdateCalls:   1,
			expectedConfirmations: 21,
		},
		{
			name:     "head lagging the receipt floors at one confirmation",
			rows:     []*store.Data{confirmedRow},
			head:     70,
			receipts: map[string]*chain.TxReceipt{testHash: {BlockNumber: 80, Success: true}},
			updated:  true,

			expected:              &tracker.SweepResult{Scanned: 1, Updated: 1},
			expectedUpdateCalls:   1,
			expectedConfirmations: 1,
		},
		{
			name:     "monotonic guard rejecting the write is not an update",
			rows:     []*store.Data{confirmedRow},
			head:     82,
			receipts: map[string]*chain.TxReceipt{testHash: {BlockNumber: 80, Success: true}},
			updated:  false,

			expected:            &tracker.SweepResult{Scanned: 1},
			expectedUpdateCalls: 1,
		},
		{
			name:     "pending row with a mined receipt is rectified",
			rows:     []*store.Data{pendingRow},
			head:     100,
			receipts: map[string]*chain.TxReceipt{testHash2: {BlockNumber: 95, Success: true}},

			expected: &tracker.SweepResult{Scanned: 1, Rectified: 1},
		},
		{
			name:     "receipt missing leaves the row for the cleanup job",
			rows:     []*store.Data{confirmedRow},
			head:     100,
			receipts: map[string]*chain.TxReceipt{},

			expected: &tracker.SweepResult{Scanned: 1},
		},
		{
			name:    "head read failure skips the whole chain",
			rows:    []*store.Data{confirmedRow, pendingRow},
			headErr: errors.New("rpc unavailable"),

			expected: &tracker.SweepResult{Scanned: 2, Failed: 2},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			txStore := &storeMocks.TransactionStoreMock{
				GetConfirmedBelowDepthFunc: func(_ context.Context, _ uint64, _ int64) ([]*store.Data, error) {
					return tc.rows, nil
				},
				UpdateBlockInfoFunc: func(_ context.Context, _ int64, _ string, _ uint64, _ uint64) (bool, error) {
					return tc.updated, nil
				},
				RectifyStatusFunc: func(_ context.Context, chainID int64, txHash string, status store.Status, blockNumber uint64, confirmations uint64) (*store.Data, error) {
					return &store.Data{ChainID: chainID, TxHash: txHash, Status: status}, nil
				},
				GetFunc: func(_ context.Context, chainID int64, txHash string) (*store.Data, error) {
					return &store.Data{ChainID: chainID, TxHash: txHash, Status: store.StatusConfirmed}, nil
				},
			}

			sut := newWorkers(t, txStore, testReader(tc.head, tc.headErr, tc.receipts))

			// when
			res, err := sut.RunBackfill(context.Background(), 25, 200)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)

			require.Len(t, txStore.UpdateBlockInfoCalls(), tc.expectedUpdateCalls)
			if tc.expectedConfirmations > 0 {
				assert.Equal(t, tc.expectedConfirmations, txStore.UpdateBlockInfoCalls()[0].Confirmations)
			}
		})
	}
}

func TestRunBackfillLosesRaceToWebhook(t *testing.T) {
	// given
	pendingRow := &store.Data{ChainID: 84532, TxHash: testHash, Status: store.StatusPending}

	txStore := &storeMocks.TransactionStoreMock{
		GetConfirmedBelowDepthFunc: func(_ context.Context, _ uint64, _ int64) ([]*store.Data, error) {
			return []*store.Data{pendingRow}, nil
		},
		RectifyStatusFunc: func(_ context.Context, _ int64, _ string, _ store.Status, _ uint64, _ uint64) (*store.Data, error) {
			return nil, store.ErrNotPending
		},
	}

	sut := newWorkers(t, txStore, testReader(100, nil, map[string]*chain.TxReceipt{testHash: {BlockNumber: 95, Success: true}}))

	// when
	res, err := sut.RunBackfill(context.Background(), 25, 200)

	// then
	require.NoError(t, err)
	assert.Equal(t, &tracker.SweepResult{Scanned: 1}, res)
}

func TestRunStalePendingCleanup(t *testing.T) {
	pendingRow := &store.Data{ChainID: 84532, TxHash: testHash, Status: store.StatusPending}

	tt := []struct {
		name       string
		receipts   map[string]*chain.TxReceipt
		receiptErr error

		expected       *tracker.SweepResult
		expectedStatus store.Status
		expectExpire   bool
	}{
		{
			name:     "unknown to the chain is expired",
			receipts: map[string]*chain.TxReceipt{},

			expected:     &tracker.SweepResult{Scanned: 1, Expired: 1},
			expectExpire: true,
		},
		{
			name:     "mined and successful is rectified to confirmed",
			receipts: map[string]*chain.TxReceipt{testHash: {BlockNumber: 95, Success: true}},

			expected:       &tracker.SweepResult{Scanned: 1, Rectified: 1},
			expectedStatus: store.StatusConfirmed,
		},
		{
			name:     "mined and reverted is rectified to failed",
			receipts: map[string]*chain.TxReceipt{testHash: {BlockNumber: 95, Success: false}},

			expected:       &tracker.SweepResult{Scanned: 1, Rectified: 1},
			expectedStatus: store.StatusFailed,
		},
		{
			name:       "transient rpc failure leaves the row pending",
			receiptErr: errors.New("rpc timeout"),

			expected: &tracker.SweepResult{Scanned: 1, Failed: 1},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			txStore := &storeMocks.TransactionStoreMock{
				GetStalePendingFunc: func(_ context.Context, _ time.Time, _ int64) ([]*store.Data, error) {
					return []*store.Data{pendingRow}, nil
				},
				MarkExpiredFunc: func(_ context.Context, _ int64, _ string) (bool, error) {
					return true, nil
				},
				RectifyStatusFunc: func(_ context.Context, chainID int64, txHash string, status store.Status, _ uint64, _ uint64) (*store.Data, error) {
					return &store.Data{ChainID: chainID, TxHash: txHash, Status: status}, nil
				},
				GetFunc: func(_ context.Context, chainID int64, txHash string) (*store.Data, error) {
					return &store.Data{ChainID: chainID, TxHash: txHash, Status: store.StatusExpired}, nil
				},
			}

			reader := testReader(100, nil, tc.receipts)
			if tc.receiptErr != nil {
				reader.TransactionReceiptFunc = func(_ context.Context, _ string) (*chain.TxReceipt, error) {
					return nil, tc.receiptErr
				}
			}

			sut := newWorkers(t, txStore, reader)

			// when
			res, err := sut.RunStalePendingCleanup(context.Background(), 30*time.Minute, 20)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)

			if tc.expectExpire {
				require.Len(t, txStore.MarkExpiredCalls(), 1)
			}
			if tc.expectedStatus != "" {
				require.Len(t, txStore.RectifyStatusCalls(), 1)
				assert.Equal(t, tc.expectedStatus, txStore.RectifyStatusCalls()[0].Status)
			}
		})
	}
}

func TestStalePendingCleanupCutoff(t *testing.T) {
	// given
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	txStore := &storeMocks.TransactionStoreMock{
		GetStalePendingFunc: func(_ context.Context, _ time.Time, _ int64) ([]*store.Data, error) {
			return nil, nil
		},
	}

	processor, err := tracker.NewProcessor(txStore, nil, testChainNames, discardLogger())
	require.NoError(t, err)

	sut := tracker.NewBackgroundWorkers(txStore, chain.NewRegistry(), processor, discardLogger(),
		tracker.WithWorkersNow(func() time.Time { return now }))

	// when
	_, err = sut.RunStalePendingCleanup(context.Background(), 30*time.Minute, 20)

	// then
	require.NoError(t, err)
	require.Len(t, txStore.GetStalePendingCalls(), 1)
	assert.Equal(t, now.Add(-30*time.Minute), txStore.GetStalePendingCalls()[0].OlderThan)
}

func TestStartStalePendingCleanup(t *testing.T) {
	// given
	txStore := &storeMocks.TransactionStoreMock{
		GetStalePendingFunc: func(_ context.Context, _ time.Time, _ int64) ([]*store.Data, error) {
			return nil, nil
		},
	}

	processor, err := tracker.NewProcessor(txStore, nil, testChainNames, discardLogger())
	require.NoError(t, err)

	sut := tracker.NewBackgroundWorkers(txStore, chain.NewRegistry(), processor, discardLogger())

	// when
	sut.StartStalePendingCleanup(20*time.Millisecond, 30*time.Minute, 20)
	time.Sleep(70 * time.Millisecond)
	sut.GracefulStop()

	// then
	assert.GreaterOrEqual(t, len(txStore.GetStalePendingCalls()), 2)
}
