package postgresql

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricepay/tracker/internal/notify/store"
	testutils "github.com/ricepay/tracker/internal/test_utils"
)

const (
	migrationsPath = "file://migrations"

	testWallet = "0x1111111111111111111111111111111111111111"
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

	port := "5439"
	resource, connStr, err := testutils.RunAndMigratePostgresql(pool, port, "notify", migrationsPath)
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

func TestNotifyPostgresDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sqlDB, err := sql.Open("postgres", dbInfo)
	require.NoError(t, err)
	defer sqlDB.Close()

	sut := New(sqlDB, WithNow(func() time.Time { return now }))
	ctx := context.Background()

	t.Run("insert and list newest first", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "notify.notifications", "notify.devices")

		first := &store.Notification{
			Wallet: testWallet,
			Type:   "TRANSFER_COMPLETED",
			Title:  "Transfer complete",
			Body:   "25.00 USDC confirmed",
			Data:   []byte(`{"transactionId":"tx-1"}`),
		}
		firstID, err := sut.InsertNotification(ctx, first)
		require.NoError(t, err)
		require.NotEmpty(t, firstID)

		sut.now = func() time.Time { return now.Add(time.Minute) }
		secondID, err := sut.InsertNotification(ctx, &store.Notification{
			Wallet: testWallet,
			Type:   "TRANSFER_RECEIVED",
			Title:  "Transfer received",
			Body:   "25.00 USDC from 0x2222",
		})
		require.NoError(t, err)
		sut.now = func() time.Time { return now }

		// another wallet's rows stay out of the listing
		_, err = sut.InsertNotification(ctx, &store.Notification{
			Wallet: "0x2222222222222222222222222222222222222222",
			Type:   "TRANSFER_COMPLETED",
			Title:  "Transfer complete",
			Body:   "10.00 USDC confirmed",
		})
		require.NoError(t, err)

		listed, err := sut.ListForWallet(ctx, testWallet, 50)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, secondID, listed[0].ID)
		assert.Equal(t, firstID, listed[1].ID)
		assert.False(t, listed[1].IsRead)
		assert.Nil(t, listed[1].ReadAt)
		assert.JSONEq(t, `{"transactionId":"tx-1"}`, string(listed[1].Data))

		// limit
		listed, err = sut.ListForWallet(ctx, testWallet, 1)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("mark read", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "notify.notifications", "notify.devices")

		id, err := sut.InsertNotification(ctx, &store.Notification{
			Wallet: testWallet,
			Type:   "TRANSFER_COMPLETED",
			Title:  "Transfer complete",
			Body:   "25.00 USDC confirmed",
		})
		require.NoError(t, err)

		err = sut.MarkRead(ctx, id)
		require.NoError(t, err)

		listed, err := sut.ListForWallet(ctx, testWallet, 50)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.True(t, listed[0].IsRead)
		require.NotNil(t, listed[0].ReadAt)
		assert.Equal(t, now, listed[0].ReadAt.UTC())
	})

	t.Run("upsert device", func(t *testing.T) {
		defer testutils.PruneTables(t, sqlDB, "notify.notifications", "notify.devices")

		err := sut.UpsertDevice(ctx, &store.Device{
			Wallet:    testWallet,
			PushToken: "ExponentPushToken[001]",
			Platform:  "ios",
		})
		require.NoError(t, err)

		// re-registering the same token only updates the platform
		err = sut.UpsertDevice(ctx, &store.Device{
			Wallet:    testWallet,
			PushToken: "ExponentPushToken[001]",
			Platform:  "android",
		})
		require.NoError(t, err)

		err = sut.UpsertDevice(ctx, &store.Device{
			Wallet:    testWallet,
			PushToken: "ExponentPushToken[002]",
			Platform:  "ios",
		})
		require.NoError(t, err)

		devices, err := sut.DevicesForWallet(ctx, testWallet)
		require.NoError(t, err)
		require.Len(t, devices, 2)

		byToken := make(map[string]*store.Device, len(devices))
		for _, d := range devices {
			byToken[d.PushToken] = d
		}
		require.Contains(t, byToken, "ExponentPushToken[001]")
		assert.Equal(t, "android", byToken["ExponentPushToken[001]"].Platform)

		// an unknown wallet has none
		devices, err = sut.DevicesForWallet(ctx, "0x3333333333333333333333333333333333333333")
		require.NoError(t, err)
		assert.Empty(t, devices)
	})
}
