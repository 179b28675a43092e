package analytics

import (
	"math"

	"trade-journal/internal/models"
)

// CoreMetrics is the headline summary of a trade list.
type CoreMetrics struct {
	TotalRealizedPnl       float64 `json:"totalRealizedPnl"`
	TotalUnrealizedPnl     float64 `json:"totalUnrealizedPnl"`
	LargestGain            float64 `json:"largestGain"`
	LargestLoss            float64 `json:"largestLoss"`
	AverageWin             float64 `json:"averageWin"`
	AverageLoss            float64 `json:"averageLoss"`
	RiskRewardRatio        float64 `json:"riskRewardRatio"`
	TradeCount             int     `json:"tradeCount"`
	WinRate                float64 `json:"winRate"`
	LongCount              int     `json:"longCount"`
	ShortCount             int     `json:"shortCount"`
	AverageDurationMinutes float64 `json:"averageDurationMinutes"`
	TotalVolume            float64 `json:"totalVolume"`
	TotalFees              float64 `json:"totalFees"`
	FeeToProfitRatio       float64 `json:"feeToProfitRatio"`
}

// winLoss accumulates the win/loss split shared by the core and order-type metrics.
type winLoss struct {
	winSum, lossSum     float64
	winCount, lossCount int
}

func (w *winLoss) add(pnl float64) {
	switch {
	case pnl > 0:
		w.winSum += pnl
		w.winCount++
	case pnl < 0:
		w.lossSum += pnl
		w.lossCount++
	}
}

func (w winLoss) averageWin() float64 {
	return ratio(w.winSum, float64(w.winCount))
}

func (w winLoss) averageLoss() float64 {
	return ratio(w.lossSum, float64(w.lossCount))
}

// ComputeCoreMetrics summarizes all trades, open and closed, in a single pass.
// markPrices maps symbol to the price used to value open trades; it may be nil.
func ComputeCoreMetrics(trades []models.Trade, markPrices map[string]float64) CoreMetrics {
	var (
		m             CoreMetrics
		wl            winLoss
		durationSum   float64
		durationCount int
	)

	for _, t := range trades {
		var mark *float64
		if p, ok := markPrices[t.Symbol]; ok {
			mark = &p
		}
		pnl := TradePnL(t, mark)

		if t.IsClosed() {
			m.TotalRealizedPnl += pnl
			durationSum += math.Trunc(t.ExitTime.Sub(t.EntryTime).Minutes())
			durationCount++
		} else if mark != nil {
			m.TotalUnrealizedPnl += pnl
		}

		m.LargestGain = math.Max(m.LargestGain, pnl)
		m.LargestLoss = math.Min(m.LargestLoss, pnl)
		wl.add(pnl)

		if t.Direction == models.DirectionLong {
			m.LongCount++
		} else {
			m.ShortCount++
		}

		m.TotalVolume += Volume(t)
		m.TotalFees += t.Fees
	}

	m.TradeCount = len(trades)
	m.AverageWin = wl.averageWin()
	m.AverageLoss = wl.averageLoss()
	m.RiskRewardRatio = math.Abs(ratio(m.AverageWin, m.AverageLoss))
	m.WinRate = ratio(float64(wl.winCount), float64(m.TradeCount)) * 100
	m.AverageDurationMinutes = ratio(durationSum, float64(durationCount))
	m.FeeToProfitRatio = ratio(m.TotalFees, math.Abs(m.TotalRealizedPnl))

	return m
}
