// Package sample holds the static demo trade list served when no real
// trade source is available.
package sample

import (
	"time"

	"trade-journal/internal/models"
)

// DemoWallet is the wallet identifier accepted without a real public key.
const DemoWallet = "demo-wallet"

func price(v float64) *float64 { return &v }

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

// Trades returns a fresh copy of the demo trade list.
func Trades() []models.Trade {
	return []models.Trade{
		{
			ID: "t-001", Symbol: "SOL-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeMarket,
			Size: 25, EntryPrice: 142.10, ExitPrice: price(148.35),
			EntryTime: ts("2024-05-01T08:12:00Z"), ExitTime: tsPtr("2024-05-01T11:47:00Z"),
			Fees: 3.55, StrategyTag: "breakout",
		},
		{
			ID: "t-002", Symbol: "BTC-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeLimit,
			Size: 0.15, EntryPrice: 63250, ExitPrice: price(62810),
			EntryTime: ts("2024-05-01T13:05:00Z"), ExitTime: tsPtr("2024-05-01T16:40:00Z"),
			Fees: 4.74, StrategyTag: "mean-reversion",
		},
		{
			ID: "t-003", Symbol: "ETH-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeStop,
			Size: 2, EntryPrice: 3050, ExitPrice: price(2998),
			EntryTime: ts("2024-05-02T09:30:00Z"), ExitTime: tsPtr("2024-05-02T10:15:00Z"),
			Fees: 3.02, Notes: "chased the breakout, stop too tight",
		},
		{
			ID: "t-004", Symbol: "SOL-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeMarket,
			Size: 40, EntryPrice: 150.20, ExitPrice: price(151.05),
			EntryTime: ts("2024-05-02T14:00:00Z"), ExitTime: tsPtr("2024-05-02T14:55:00Z"),
			Fees: 6.02,
		},
		{
			ID: "t-005", Symbol: "JUP-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeLimit,
			Size: 5000, EntryPrice: 1.12, ExitPrice: price(1.19),
			EntryTime: ts("2024-05-03T02:20:00Z"), ExitTime: tsPtr("2024-05-03T07:10:00Z"),
			Fees: 1.15, StrategyTag: "asia-session",
		},
		{
			ID: "t-006", Symbol: "BTC-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeStopLimit,
			Size: 0.1, EntryPrice: 62900, ExitPrice: price(63780),
			EntryTime: ts("2024-05-03T12:45:00Z"), ExitTime: tsPtr("2024-05-04T01:30:00Z"),
			Fees: 3.16, StrategyTag: "breakout",
		},
		{
			ID: "t-007", Symbol: "SOL-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeMarket,
			Size: 30, EntryPrice: 147.80, ExitPrice: price(147.80),
			EntryTime: ts("2024-05-04T10:00:00Z"), ExitTime: tsPtr("2024-05-04T10:30:00Z"),
			Fees: 0, Notes: "scratch trade",
		},
		{
			ID: "t-008", Symbol: "ETH-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeLimit,
			Size: 3, EntryPrice: 3120, ExitPrice: price(3068),
			EntryTime: ts("2024-05-05T15:10:00Z"), ExitTime: tsPtr("2024-05-05T19:25:00Z"),
			Fees: 4.66, StrategyTag: "mean-reversion",
		},
		{
			ID: "t-009", Symbol: "JUP-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeMarket,
			Size: 8000, EntryPrice: 1.21, ExitPrice: price(1.26),
			EntryTime: ts("2024-05-06T03:00:00Z"), ExitTime: tsPtr("2024-05-06T04:45:00Z"),
			Fees: 1.96, Notes: "faded a strong trend",
		},
		{
			ID: "t-010", Symbol: "SOL-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeStop,
			Size: 20, EntryPrice: 153.40, ExitPrice: price(149.90),
			EntryTime: ts("2024-05-06T09:05:00Z"), ExitTime: tsPtr("2024-05-06T09:50:00Z"),
			Fees: 3.03,
		},
		{
			ID: "t-011", Symbol: "BTC-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeLimit,
			Size: 0.2, EntryPrice: 64100, ExitPrice: price(64950),
			EntryTime: ts("2024-05-07T11:00:00Z"), ExitTime: tsPtr("2024-05-07T18:20:00Z"),
			Fees: 6.49, StrategyTag: "trend",
		},
		{
			ID: "t-012", Symbol: "SOL-PERP", Direction: models.DirectionLong, OrderType: models.OrderTypeLimit,
			Size: 35, EntryPrice: 156.75,
			EntryTime: ts("2024-05-08T08:40:00Z"),
			Fees: 2.74, StrategyTag: "trend",
		},
		{
			ID: "t-013", Symbol: "ETH-PERP", Direction: models.DirectionShort, OrderType: models.OrderTypeStopLimit,
			Size: 1.5, EntryPrice: 3185,
			EntryTime: ts("2024-05-08T13:15:00Z"),
			Fees: 2.39,
		},
	}
}

// MarkPrices returns indicative prices for valuing the open demo trades.
func MarkPrices() map[string]float64 {
	return map[string]float64{
		"SOL-PERP": 158.20,
		"ETH-PERP": 3162.50,
	}
}
