package analytics

import (
	"fmt"
	"sort"

	"trade-journal/internal/models"
)

// DailyPerformance aggregates closed trades by UTC exit date.
type DailyPerformance struct {
	Date        string  `json:"date"`
	RealizedPnl float64 `json:"realizedPnl"`
	Fees        float64 `json:"fees"`
	Volume      float64 `json:"volume"`
	TradeCount  int     `json:"tradeCount"`
}

// TimeOfDayPerformance aggregates closed trades by UTC exit hour.
type TimeOfDayPerformance struct {
	Bucket      string  `json:"bucket"` // e.g. "09:00-10:00"
	RealizedPnl float64 `json:"realizedPnl"`
	TradeCount  int     `json:"tradeCount"`
}

// SymbolPerformance aggregates trades per symbol. Volume and TradeCount cover
// every trade; RealizedPnl and WinRate cover closed trades only.
type SymbolPerformance struct {
	Symbol      string  `json:"symbol"`
	RealizedPnl float64 `json:"realizedPnl"`
	Volume      float64 `json:"volume"`
	TradeCount  int     `json:"tradeCount"`
	WinRate     float64 `json:"winRate"`
}

// OrderTypePerformance aggregates closed trades per order type.
type OrderTypePerformance struct {
	OrderType   models.OrderType `json:"orderType"`
	RealizedPnl float64          `json:"realizedPnl"`
	TradeCount  int              `json:"tradeCount"`
	WinRate     float64          `json:"winRate"`
	AverageWin  float64          `json:"averageWin"`
	AverageLoss float64          `json:"averageLoss"`
}

// ComputeDailyPerformance returns one entry per UTC calendar day holding at
// least one closed trade, sorted by date.
func ComputeDailyPerformance(trades []models.Trade) []DailyPerformance {
	byDay := make(map[string]*DailyPerformance)
	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		day := exitDate(t)
		d, ok := byDay[day]
		if !ok {
			d = &DailyPerformance{Date: day}
			byDay[day] = d
		}
		d.RealizedPnl += RealizedPnL(t)
		d.Fees += t.Fees
		d.Volume += Volume(t)
		d.TradeCount++
	}

	out := make([]DailyPerformance, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func hourBucket(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24)
}

// ComputeTimeOfDayPerformance buckets closed trades by the UTC hour of their
// exit. Only active buckets are returned, sorted by label.
func ComputeTimeOfDayPerformance(trades []models.Trade) []TimeOfDayPerformance {
	byBucket := make(map[string]*TimeOfDayPerformance)
	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		key := hourBucket(t.ExitTime.UTC().Hour())
		b, ok := byBucket[key]
		if !ok {
			b = &TimeOfDayPerformance{Bucket: key}
			byBucket[key] = b
		}
		b.RealizedPnl += RealizedPnL(t)
		b.TradeCount++
	}

	out := make([]TimeOfDayPerformance, 0, len(byBucket))
	for _, b := range byBucket {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out
}

// ComputeSymbolPerformance returns one entry per symbol in first-seen order.
func ComputeSymbolPerformance(trades []models.Trade) []SymbolPerformance {
	type acc struct {
		perf         SymbolPerformance
		wins, closed int
	}
	var order []string
	bySymbol := make(map[string]*acc)

	for _, t := range trades {
		a, ok := bySymbol[t.Symbol]
		if !ok {
			a = &acc{perf: SymbolPerformance{Symbol: t.Symbol}}
			bySymbol[t.Symbol] = a
			order = append(order, t.Symbol)
		}
		a.perf.Volume += Volume(t)
		a.perf.TradeCount++

		if t.IsClosed() {
			pnl := RealizedPnL(t)
			a.perf.RealizedPnl += pnl
			a.closed++
			if pnl > 0 {
				a.wins++
			}
		}
	}

	out := make([]SymbolPerformance, 0, len(order))
	for _, s := range order {
		a := bySymbol[s]
		a.perf.WinRate = ratio(float64(a.wins), float64(a.closed)) * 100
		out = append(out, a.perf)
	}
	return out
}

// ComputeOrderTypePerformance returns one entry per order type seen in the
// input, in first-seen order. Open trades create the group but contribute
// nothing to it. WinRate divides wins by every closed trade in the group, so
// break-even trades count against it.
func ComputeOrderTypePerformance(trades []models.Trade) []OrderTypePerformance {
	type acc struct {
		perf OrderTypePerformance
		wl   winLoss
	}
	var order []models.OrderType
	byType := make(map[models.OrderType]*acc)

	for _, t := range trades {
		a, ok := byType[t.OrderType]
		if !ok {
			a = &acc{perf: OrderTypePerformance{OrderType: t.OrderType}}
			byType[t.OrderType] = a
			order = append(order, t.OrderType)
		}
		if !t.IsClosed() {
			continue
		}
		pnl := RealizedPnL(t)
		a.perf.RealizedPnl += pnl
		a.perf.TradeCount++
		a.wl.add(pnl)
	}

	out := make([]OrderTypePerformance, 0, len(order))
	for _, ot := range order {
		a := byType[ot]
		a.perf.WinRate = ratio(float64(a.wl.winCount), float64(a.perf.TradeCount)) * 100
		a.perf.AverageWin = a.wl.averageWin()
		a.perf.AverageLoss = a.wl.averageLoss()
		out = append(out, a.perf)
	}
	return out
}
