package analytics

import "trade-journal/internal/models"

// ReportOptions tunes BuildReport.
type ReportOptions struct {
	StartingEquity float64
	MarkPrices     map[string]float64
}

// Report bundles every derived view of a trade list for the dashboard.
type Report struct {
	Core            CoreMetrics            `json:"core"`
	EquityCurve     []EquityPoint          `json:"equityCurve"`
	Drawdown        []DrawdownPoint        `json:"drawdown"`
	MaxDrawdown     float64                `json:"maxDrawdown"`
	Daily           []DailyPerformance     `json:"daily"`
	TimeOfDay       []TimeOfDayPerformance `json:"timeOfDay"`
	Symbols         []SymbolPerformance    `json:"symbols"`
	OrderTypes      []OrderTypePerformance `json:"orderTypes"`
	Insights        BehavioralInsights     `json:"insights"`
	Allocation      []Allocation           `json:"allocation"`
	FeePnL          []FeePnLPoint          `json:"feePnl"`
	Volatility      float64                `json:"volatility"`
	EstimatedEquity float64                `json:"estimatedEquity"`
}

// BuildReport computes the full analytics report. The drawdown series is
// always derived from the equity curve in the same report.
func BuildReport(trades []models.Trade, opts ReportOptions) Report {
	equity := BuildEquityCurve(trades, opts.StartingEquity)
	drawdown := BuildDrawdownSeries(equity)
	daily := ComputeDailyPerformance(trades)

	return Report{
		Core:            ComputeCoreMetrics(trades, opts.MarkPrices),
		EquityCurve:     equity,
		Drawdown:        drawdown,
		MaxDrawdown:     MaxDrawdown(drawdown),
		Daily:           daily,
		TimeOfDay:       ComputeTimeOfDayPerformance(trades),
		Symbols:         ComputeSymbolPerformance(trades),
		OrderTypes:      ComputeOrderTypePerformance(trades),
		Insights:        ComputeBehavioralInsights(trades),
		Allocation:      ComputeAllocation(trades),
		FeePnL:          BuildFeePnLSeries(daily),
		Volatility:      DailyPnLVolatility(daily),
		EstimatedEquity: equity[len(equity)-1].Equity,
	}
}
