package analytics

import (
	"math"
	"time"

	"trade-journal/internal/models"
)

// EquityPoint is the cumulative realized equity after a closed trade.
type EquityPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Equity    float64   `json:"equity"`
}

// DrawdownPoint is the distance below the running equity peak.
type DrawdownPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Drawdown  float64   `json:"drawdown"`
	Peak      float64   `json:"peak"`
}

// BuildEquityCurve accumulates realized PnL over closed trades in exit-time
// order, starting from startingEquity. With no closed trades it returns a
// single point at the current time so charts never get an empty series.
func BuildEquityCurve(trades []models.Trade, startingEquity float64) []EquityPoint {
	closed := closedByExitTime(trades)
	if len(closed) == 0 {
		return []EquityPoint{{Timestamp: now().UTC(), Equity: startingEquity}}
	}

	points := make([]EquityPoint, 0, len(closed))
	equity := startingEquity
	for _, t := range closed {
		equity += RealizedPnL(t)
		points = append(points, EquityPoint{Timestamp: t.ExitTime.UTC(), Equity: equity})
	}
	return points
}

// BuildDrawdownSeries derives drawdown from an equity series. The peak is
// seeded with the first point and never decreases.
func BuildDrawdownSeries(equity []EquityPoint) []DrawdownPoint {
	out := make([]DrawdownPoint, 0, len(equity))
	if len(equity) == 0 {
		return out
	}

	peak := equity[0].Equity
	for _, p := range equity {
		peak = math.Max(peak, p.Equity)
		out = append(out, DrawdownPoint{
			Timestamp: p.Timestamp,
			Drawdown:  p.Equity - peak,
			Peak:      peak,
		})
	}
	return out
}

// MaxDrawdown returns the deepest drawdown in the series, or 0 when empty.
func MaxDrawdown(series []DrawdownPoint) float64 {
	deepest := 0.0
	for _, d := range series {
		deepest = math.Min(deepest, d.Drawdown)
	}
	return deepest
}
