// Package analytics derives journal metrics from a list of trades.
//
// Every function here is pure: inputs are never mutated, outputs are freshly
// allocated, and no function holds state between calls. Calendar dates and
// hour-of-day buckets are computed in UTC.
package analytics

import (
	"math"
	"sort"
	"time"

	"trade-journal/internal/models"
)

// dateLayout is the calendar-day key used by the daily aggregates.
const dateLayout = "2006-01-02"

// now is replaced in tests.
var now = time.Now

func directionFactor(d models.Direction) float64 {
	if d == models.DirectionLong {
		return 1
	}
	return -1
}

// TradePnL returns the PnL of a trade after fees. Closed trades are valued at
// their exit price. Open trades are valued at markPrice when given, otherwise
// at their entry price, which makes their PnL equal to minus the fees.
func TradePnL(t models.Trade, markPrice *float64) float64 {
	exit := t.EntryPrice
	switch {
	case t.IsClosed():
		exit = *t.ExitPrice
	case markPrice != nil:
		exit = *markPrice
	}
	gross := directionFactor(t.Direction) * (exit - t.EntryPrice) * t.Size
	return gross - t.Fees
}

// RealizedPnL is the trade's PnL if it is closed, otherwise 0.
func RealizedPnL(t models.Trade) float64 {
	if !t.IsClosed() {
		return 0
	}
	return TradePnL(t, nil)
}

// UnrealizedPnL values an open trade against markPrice. Closed trades yield 0.
func UnrealizedPnL(t models.Trade, markPrice float64) float64 {
	if t.IsClosed() {
		return 0
	}
	return TradePnL(t, &markPrice)
}

// Volume is the absolute notional of the trade at entry.
func Volume(t models.Trade) float64 {
	return math.Abs(t.Size * t.EntryPrice)
}

// closedByExitTime returns the closed trades ordered by exit time.
// Trades sharing an exit time keep their input order.
func closedByExitTime(trades []models.Trade) []models.Trade {
	closed := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsClosed() {
			closed = append(closed, t)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].ExitTime.Before(*closed[j].ExitTime)
	})
	return closed
}

func exitDate(t models.Trade) string {
	return t.ExitTime.UTC().Format(dateLayout)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
