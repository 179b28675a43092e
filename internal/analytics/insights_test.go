package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
)

func TestComputeStreaks(t *testing.T) {
	testCases := []struct {
		name     string
		pnls     []float64
		expected StreakStats
	}{
		{
			name:     "No trades",
			expected: StreakStats{},
		},
		{
			name:     "Three wins then a loss",
			pnls:     []float64{1, 2, 3, -1},
			expected: StreakStats{LongestWin: 3, LongestLoss: 1, Current: Streak{Type: StreakLoss, Length: 1}},
		},
		{
			name:     "Break-even trades are skipped",
			pnls:     []float64{1, 0, 2, 0},
			expected: StreakStats{LongestWin: 2, Current: Streak{Type: StreakWin, Length: 2}},
		},
		{
			name:     "Only break-even trades",
			pnls:     []float64{0, 0},
			expected: StreakStats{},
		},
		{
			name:     "Longest loss run in the middle",
			pnls:     []float64{1, -1, -2, -3, 4, 5},
			expected: StreakStats{LongestWin: 2, LongestLoss: 3, Current: Streak{Type: StreakWin, Length: 2}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var trades []models.Trade
			// listed newest first to exercise the exit-time ordering
			for i := len(tc.pnls) - 1; i >= 0; i-- {
				trades = append(trades, withPnL("t", tc.pnls[i], time.Duration(i+1)*time.Hour))
			}
			assert.Equal(t, tc.expected, ComputeStreaks(trades))
		})
	}
}

func TestRiskScore(t *testing.T) {
	testCases := []struct {
		name        string
		winRate     float64
		maxDrawdown float64
		feeRatio    float64
		expected    int
	}{
		{name: "Perfect record", winRate: 100, expected: 100},
		{name: "No trades", expected: 50},
		{name: "Mixed", winRate: 50, maxDrawdown: -2, feeRatio: 1, expected: 45},
		{name: "Deep drawdown and heavy fees", winRate: 10, maxDrawdown: -299, feeRatio: 19, expected: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score := RiskScore(tc.winRate, tc.maxDrawdown, tc.feeRatio)
			assert.Equal(t, tc.expected, score)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestComputeBehavioralInsights_Empty(t *testing.T) {
	insights := ComputeBehavioralInsights(nil)

	assert.Nil(t, insights.BestSession)
	assert.Nil(t, insights.WorstSession)
	assert.Nil(t, insights.BestSymbol)
	assert.Nil(t, insights.WorstSymbol)
	assert.Equal(t, Streak{}, insights.CurrentStreak)
	assert.Equal(t, 50, insights.RiskScore)
}

func TestComputeBehavioralInsights(t *testing.T) {
	btcLoss := closed("4", "BTC", models.DirectionLong, 1, 100, 92, 0, 50*time.Hour)

	trades := []models.Trade{
		withPnL("1", 5, time.Hour),
		withPnL("2", 3, 2*time.Hour),
		withPnL("3", 12, 26*time.Hour),
		btcLoss,
		open("5", "ETH", models.DirectionShort, 1, 10, 0),
	}

	insights := ComputeBehavioralInsights(trades)

	require.NotNil(t, insights.BestSession)
	assert.Equal(t, "2024-01-16", *insights.BestSession)
	assert.Equal(t, "2024-01-17", *insights.WorstSession)
	assert.Equal(t, "SOL-PERP", *insights.BestSymbol)
	assert.Equal(t, "BTC", *insights.WorstSymbol)
	assert.Equal(t, 3, insights.LongestWinStreak)
	assert.Equal(t, 1, insights.LongestLossStreak)
	assert.Equal(t, Streak{Type: StreakLoss, Length: 1}, insights.CurrentStreak)
	// winRate 3/5 -> 30; equity 5, 8, 20, 12 -> maxDD -8 -> 30/9; no fees -> 20
	assert.Equal(t, 53, insights.RiskScore)
}

func TestComputeBehavioralInsights_OnlyOpenTrades(t *testing.T) {
	insights := ComputeBehavioralInsights([]models.Trade{open("1", "SOL", models.DirectionLong, 1, 100, 0)})

	assert.Nil(t, insights.BestSession)
	require.NotNil(t, insights.BestSymbol)
	assert.Equal(t, "SOL", *insights.BestSymbol)
	assert.Equal(t, "SOL", *insights.WorstSymbol)
	assert.Equal(t, StreakNone, insights.CurrentStreak.Type)
}

func TestBehavioralInsights_JSON(t *testing.T) {
	data, err := json.Marshal(ComputeBehavioralInsights(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"bestSession": null,
		"worstSession": null,
		"bestSymbol": null,
		"worstSymbol": null,
		"longestWinStreak": 0,
		"longestLossStreak": 0,
		"currentStreak": {"type": null, "length": 0},
		"riskScore": 50
	}`, string(data))

	var decoded Streak
	require.NoError(t, json.Unmarshal([]byte(`{"type":"WIN","length":2}`), &decoded))
	assert.Equal(t, Streak{Type: StreakWin, Length: 2}, decoded)
}
