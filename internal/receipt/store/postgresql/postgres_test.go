package postgresql

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/internal/receipt/store"
	testutils "github.com/ricepay/tracker/internal/test_utils"
)

const (
	migrationsPath = "file://migrations"

	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
	carol = "0x3333333333333333333333333333333333333333"
)

var dbInfo string

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		return
	}

	testmain(m)
}

func testmain(m *testing.M) int {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("failed to create pool: %v", err)
		return 1
	}

	port := "5438"
	resource, connStr, err := testutils.RunAndMigratePostgresql(pool, port, "receipts", migrationsPath)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() {
		err = pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge pool: %v", err)
		}
	}()

	dbInfo = connStr
	return m.Run()
}

func testReceipt(submittedAt time.Time, from, to string) *store.Receipt {
	return &store.Receipt{
		TransactionID: uuid.NewString(),
		ChainID:       84532,
		Chain:         "Base Sepolia",
		TxHash:        "0x4ca7b1ebd3a9a516a3b418c2dcc40a5c05bba0a1788255a4897681b0ca43e2cd",
		Token:         "0x036cbd53842c5426634e7929541ec2318f3dcf7e",
		Amount:        "25.00",
		FiatCurrency:  "USD",
		QuoteCurrency: "MXN",
		PolicyVersion: "v1",
		FromAddress:   from,
		ToAddress:     to,
		SubmittedAt:   submittedAt,
		ConfirmedAt:   submittedAt.Add(30 * time.Second),
	}
}

func TestReceiptPostgresDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sqlDB, err := sql.Open("postgres", dbInfo)
	require.NoError(t, err)
	defer sqlDB.Close()

	sut := New(sqlDB, WithNow(func() time.Time { return now }))
	ctx := context.Background()

	t.Run("create once per transaction", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "receipts.receipts", "receipts.receipt_audits")

		receipt := testReceipt(now, alice, bob)

		created, err := sut.Create(ctx, receipt)
		require.NoError(t, err)
		require.True(t, created)

		// the second writer loses the conditional insert
		duplicate := testReceipt(now, alice, bob)
		duplicate.TransactionID = receipt.TransactionID
		created, err = sut.Create(ctx, duplicate)
		require.NoError(t, err)
		assert.False(t, created)

		stored, err := sut.GetByTransactionID(ctx, receipt.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, receipt.ID, stored.ID)
		assert.Nil(t, stored.ShareToken)
	})

	t.Run("share token issue and rotate", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "receipts.receipts", "receipts.receipt_audits")

		receipt := testReceipt(now, alice, bob)
		_, err := sut.Create(ctx, receipt)
		require.NoError(t, err)

		// first issuer wins
		won, err := sut.SetShareTokenIfEmpty(ctx, receipt.ID, "tok-1")
		require.NoError(t, err)
		require.True(t, won)

		won, err = sut.SetShareTokenIfEmpty(ctx, receipt.ID, "tok-2")
		require.NoError(t, err)
		assert.False(t, won)

		stored, err := sut.GetByShareToken(ctx, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, receipt.ID, stored.ID)

		// rotation replaces unconditionally
		err = sut.SetShareToken(ctx, receipt.ID, "tok-3")
		require.NoError(t, err)

		_, err = sut.GetByShareToken(ctx, "tok-1")
		require.ErrorIs(t, err, store.ErrNotFound)

		stored, err = sut.GetByShareToken(ctx, "tok-3")
		require.NoError(t, err)
		assert.Equal(t, receipt.ID, stored.ID)

		err = sut.SetShareToken(ctx, uuid.NewString(), "tok-4")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("clear share token", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "receipts.receipts", "receipts.receipt_audits")

		receipt := testReceipt(now, alice, bob)
		_, err := sut.Create(ctx, receipt)
		require.NoError(t, err)

		_, err = sut.SetShareTokenIfEmpty(ctx, receipt.ID, "tok-1")
		require.NoError(t, err)

		// a stale expected token leaves the current one in place
		stale := "tok-0"
		cleared, err := sut.ClearShareToken(ctx, receipt.ID, &stale)
		require.NoError(t, err)
		require.False(t, cleared)

		stored, err := sut.Get(ctx, receipt.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ShareToken)
		assert.Equal(t, "tok-1", *stored.ShareToken)

		// matching expected token clears
		current := "tok-1"
		cleared, err = sut.ClearShareToken(ctx, receipt.ID, &current)
		require.NoError(t, err)
		require.True(t, cleared)

		// already cleared
		cleared, err = sut.ClearShareToken(ctx, receipt.ID, nil)
		require.NoError(t, err)
		assert.False(t, cleared)
	})

	t.Run("list activity", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "receipts.receipts", "receipts.receipt_audits")

		oldest := testReceipt(now.Add(-2*time.Hour), alice, bob)
		middle := testReceipt(now.Add(-time.Hour), carol, alice)
		newest := testReceipt(now, alice, carol)
		other := testReceipt(now, bob, carol)

		for _, r := range []*store.Receipt{oldest, middle, newest, other} {
			_, err := sut.Create(ctx, r)
			require.NoError(t, err)
		}

		// both directions, newest first, direction derived against the
		// viewing address
		receipts, err := sut.ListActivity(ctx, &store.ActivityFilter{Address: alice})
		require.NoError(t, err)
		require.Len(t, receipts, 3)
		assert.Equal(t, newest.ID, receipts[0].ID)
		assert.Equal(t, store.DirectionSent, receipts[0].Direction)
		assert.Equal(t, middle.ID, receipts[1].ID)
		assert.Equal(t, store.DirectionReceived, receipts[1].Direction)
		assert.Equal(t, oldest.ID, receipts[2].ID)

		// the same row flips direction for the other party
		receipts, err = sut.ListActivity(ctx, &store.ActivityFilter{Address: carol})
		require.NoError(t, err)
		require.Len(t, receipts, 3)
		assert.Equal(t, store.DirectionReceived, receipts[0].Direction)

		// direction filter, case-insensitive on the address
		receipts, err = sut.ListActivity(ctx, &store.ActivityFilter{Address: strings.ToUpper(alice), Direction: store.DirectionReceived})
		require.NoError(t, err)
		require.Len(t, receipts, 1)
		assert.Equal(t, middle.ID, receipts[0].ID)
		assert.Equal(t, store.DirectionReceived, receipts[0].Direction)

		// cursor pages strictly older rows
		receipts, err = sut.ListActivity(ctx, &store.ActivityFilter{Address: alice, Cursor: newest.ID})
		require.NoError(t, err)
		require.Len(t, receipts, 2)
		assert.Equal(t, middle.ID, receipts[0].ID)

		// limit
		receipts, err = sut.ListActivity(ctx, &store.ActivityFilter{Address: alice, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, receipts, 1)
	})

	t.Run("insert audit", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "receipts.receipts", "receipts.receipt_audits")

		receipt := testReceipt(now, alice, bob)
		_, err := sut.Create(ctx, receipt)
		require.NoError(t, err)

		err = sut.InsertAudit(ctx, &store.Audit{
			ReceiptID:    receipt.ID,
			Action:       "ISSUE",
			ActorAddress: alice,
			IP:           "203.0.113.7",
			UserAgent:    "test-agent",
			Meta:         []byte(`{"rotated":false}`),
		})
		require.NoError(t, err)

		var count int
		err = sqlDB.QueryRow("SELECT COUNT(*) FROM receipts.receipt_audits WHERE receipt_id = $1;", receipt.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
