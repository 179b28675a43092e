package analytics

import (
	"testing"
	"time"

	"trade-journal/internal/models"
)

var base = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func at(d time.Duration) *time.Time {
	t := base.Add(d)
	return &t
}

// closed builds a closed trade that exits `after` the shared base time.
func closed(id, symbol string, dir models.Direction, size, entry, exit, fees float64, after time.Duration) models.Trade {
	return models.Trade{
		ID:         id,
		Symbol:     symbol,
		Direction:  dir,
		OrderType:  models.OrderTypeMarket,
		Size:       size,
		EntryPrice: entry,
		ExitPrice:  f64(exit),
		EntryTime:  base,
		ExitTime:   at(after),
		Fees:       fees,
	}
}

func open(id, symbol string, dir models.Direction, size, entry, fees float64) models.Trade {
	return models.Trade{
		ID:         id,
		Symbol:     symbol,
		Direction:  dir,
		OrderType:  models.OrderTypeLimit,
		Size:       size,
		EntryPrice: entry,
		EntryTime:  base,
		Fees:       fees,
	}
}

// withPnL returns a closed LONG trade of size 1 whose realized PnL is pnl.
func withPnL(id string, pnl float64, after time.Duration) models.Trade {
	return closed(id, "SOL-PERP", models.DirectionLong, 1, 100, 100+pnl, 0, after)
}

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}
