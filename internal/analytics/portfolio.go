package analytics

import (
	"math"

	"trade-journal/internal/models"
)

// Allocation is a symbol's share of total traded notional.
type Allocation struct {
	Symbol string  `json:"symbol"`
	Volume float64 `json:"volume"`
	Pct    float64 `json:"pct"`
}

// FeePnLPoint pairs a day's realized PnL with fees paid to date.
type FeePnLPoint struct {
	Date           string  `json:"date"`
	RealizedPnl    float64 `json:"realizedPnl"`
	Fees           float64 `json:"fees"`
	CumulativeFees float64 `json:"cumulativeFees"`
}

// ComputeAllocation approximates capital distribution by entry notional per
// symbol over all trades, in first-seen order.
func ComputeAllocation(trades []models.Trade) []Allocation {
	var (
		order []string
		total float64
	)
	bySymbol := make(map[string]float64)
	for _, t := range trades {
		if _, ok := bySymbol[t.Symbol]; !ok {
			order = append(order, t.Symbol)
		}
		v := Volume(t)
		bySymbol[t.Symbol] += v
		total += v
	}

	out := make([]Allocation, 0, len(order))
	for _, s := range order {
		out = append(out, Allocation{
			Symbol: s,
			Volume: bySymbol[s],
			Pct:    ratio(bySymbol[s], total) * 100,
		})
	}
	return out
}

// DailyPnLVolatility is the population standard deviation of daily realized PnL.
func DailyPnLVolatility(daily []DailyPerformance) float64 {
	if len(daily) == 0 {
		return 0
	}
	var sum float64
	for _, d := range daily {
		sum += d.RealizedPnl
	}
	mean := sum / float64(len(daily))

	var variance float64
	for _, d := range daily {
		diff := d.RealizedPnl - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(daily)))
}

// BuildFeePnLSeries adds a running fee total to the daily aggregates.
func BuildFeePnLSeries(daily []DailyPerformance) []FeePnLPoint {
	out := make([]FeePnLPoint, 0, len(daily))
	var cumulative float64
	for _, d := range daily {
		cumulative += d.Fees
		out = append(out, FeePnLPoint{
			Date:           d.Date,
			RealizedPnl:    d.RealizedPnl,
			Fees:           d.Fees,
			CumulativeFees: cumulative,
		})
	}
	return out
}
