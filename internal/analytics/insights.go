package analytics

import (
	"encoding/json"
	"math"

	"trade-journal/internal/models"
)

// StreakType classifies a run of closed trades. The zero value means no run.
type StreakType string

const (
	StreakNone StreakType = ""
	StreakWin  StreakType = "WIN"
	StreakLoss StreakType = "LOSS"
)

// MarshalJSON encodes StreakNone as null.
func (s StreakType) MarshalJSON() ([]byte, error) {
	if s == StreakNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON accepts null as StreakNone.
func (s *StreakType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = StreakNone
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StreakType(v)
	return nil
}

// Streak is the run still open at the end of the trade list.
type Streak struct {
	Type   StreakType `json:"type"`
	Length int        `json:"length"`
}

// BehavioralInsights summarizes trading behavior across the list.
// Session and symbol fields are nil when there is nothing to pick from.
type BehavioralInsights struct {
	BestSession       *string `json:"bestSession"`
	WorstSession      *string `json:"worstSession"`
	BestSymbol        *string `json:"bestSymbol"`
	WorstSymbol       *string `json:"worstSymbol"`
	LongestWinStreak  int     `json:"longestWinStreak"`
	LongestLossStreak int     `json:"longestLossStreak"`
	CurrentStreak     Streak  `json:"currentStreak"`
	RiskScore         int     `json:"riskScore"` // 0-100, higher is better
}

// StreakStats is the result of walking closed trades in exit order.
type StreakStats struct {
	LongestWin  int
	LongestLoss int
	Current     Streak
}

// ComputeStreaks walks closed trades by exit time. Break-even trades are
// skipped and leave the running streak untouched.
func ComputeStreaks(trades []models.Trade) StreakStats {
	var s StreakStats
	for _, t := range closedByExitTime(trades) {
		pnl := RealizedPnL(t)
		var kind StreakType
		switch {
		case pnl > 0:
			kind = StreakWin
		case pnl < 0:
			kind = StreakLoss
		default:
			continue
		}

		if kind == s.Current.Type {
			s.Current.Length++
		} else {
			s.Current = Streak{Type: kind, Length: 1}
		}

		if kind == StreakWin {
			s.LongestWin = max(s.LongestWin, s.Current.Length)
		} else {
			s.LongestLoss = max(s.LongestLoss, s.Current.Length)
		}
	}
	return s
}

// RiskScore blends win rate (up to 50), drawdown depth (up to 30) and fee
// drag (up to 20) into a 0-100 score where higher is better.
func RiskScore(winRate, maxDrawdown, feeToProfitRatio float64) int {
	winScore := clamp(winRate/2, 0, 50)

	ddScore := 30.0
	if maxDrawdown < 0 {
		ddScore = clamp(30/(1+math.Abs(maxDrawdown)), 0, 30)
	}

	feeScore := 20.0
	if feeToProfitRatio > 0 {
		feeScore = clamp(20/(1+feeToProfitRatio), 0, 20)
	}

	return int(math.Round(math.Min(winScore+ddScore+feeScore, 100)))
}

// ComputeBehavioralInsights derives sessions, symbols, streaks and the risk
// score from the trade list.
func ComputeBehavioralInsights(trades []models.Trade) BehavioralInsights {
	var out BehavioralInsights

	daily := ComputeDailyPerformance(trades)
	if len(daily) > 0 {
		best, worst := daily[0], daily[0]
		for _, d := range daily[1:] {
			if d.RealizedPnl > best.RealizedPnl {
				best = d
			}
			if d.RealizedPnl < worst.RealizedPnl {
				worst = d
			}
		}
		out.BestSession = &best.Date
		out.WorstSession = &worst.Date
	}

	symbols := ComputeSymbolPerformance(trades)
	if len(symbols) > 0 {
		best, worst := symbols[0], symbols[0]
		for _, s := range symbols[1:] {
			if s.RealizedPnl > best.RealizedPnl {
				best = s
			}
			if s.RealizedPnl < worst.RealizedPnl {
				worst = s
			}
		}
		out.BestSymbol = &best.Symbol
		out.WorstSymbol = &worst.Symbol
	}

	streaks := ComputeStreaks(trades)
	out.LongestWinStreak = streaks.LongestWin
	out.LongestLossStreak = streaks.LongestLoss
	out.CurrentStreak = streaks.Current

	core := ComputeCoreMetrics(trades, nil)
	maxDD := MaxDrawdown(BuildDrawdownSeries(BuildEquityCurve(trades, 0)))
	out.RiskScore = RiskScore(core.WinRate, maxDD, core.FeeToProfitRatio)

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
