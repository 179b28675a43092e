package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
	"trade-journal/internal/sample"
)

// setupStore opens a private in-memory database per test.
func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := NewDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewDatabase_SeedsDemoTrades(t *testing.T) {
	s := setupStore(t)

	trades, err := s.ListTrades(context.Background(), sample.DemoWallet)
	require.NoError(t, err)
	assert.Equal(t, sample.Trades(), trades)
}

func TestListTrades_UnknownWalletFallsBackToDemo(t *testing.T) {
	s := setupStore(t)

	trades, err := s.ListTrades(context.Background(), "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	require.NoError(t, err)
	assert.Len(t, trades, len(sample.Trades()))
}

func TestListTrades_WalletHistoryOrderedByEntry(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	wallet := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	entry := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Seed(ctx, wallet, []models.Trade{
		{ID: "w-2", Symbol: "SOL-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeMarket, Size: 1, EntryPrice: 150, EntryTime: entry.Add(time.Hour)},
		{ID: "w-1", Symbol: "SOL-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeLimit, Size: 1, EntryPrice: 149, EntryTime: entry},
	}))

	trades, err := s.ListTrades(ctx, wallet)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "w-1", trades[0].ID)
	assert.Equal(t, "w-2", trades[1].ID)
	assert.False(t, trades[0].IsClosed())
}

func TestUpdateNotes(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	updated, err := s.UpdateNotes(ctx, "t-004", "sized too big")
	require.NoError(t, err)
	assert.Equal(t, "sized too big", updated.Notes)

	trades, err := s.ListTrades(ctx, sample.DemoWallet)
	require.NoError(t, err)
	for _, tr := range trades {
		if tr.ID == "t-004" {
			assert.Equal(t, "sized too big", tr.Notes)
		}
	}

	_, err = s.UpdateNotes(ctx, "missing", "x")
	assert.ErrorIs(t, err, ErrTradeNotFound)
}
