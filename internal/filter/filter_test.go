package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
	"trade-journal/internal/sample"
)

func ids(trades []models.Trade) []string {
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		out = append(out, t.ID)
	}
	return out
}

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestFilters_Apply(t *testing.T) {
	trades := sample.Trades()

	testCases := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{
			name:    "No filters",
			filters: Filters{},
			expected: []string{
				"t-001", "t-002", "t-003", "t-004", "t-005", "t-006", "t-007",
				"t-008", "t-009", "t-010", "t-011", "t-012", "t-013",
			},
		},
		{
			name:     "Symbol",
			filters:  Filters{Symbol: "BTC-PERP"},
			expected: []string{"t-002", "t-006", "t-011"},
		},
		{
			name:     "Direction and order type",
			filters:  Filters{Direction: models.DirectionShort, OrderType: models.OrderTypeMarket},
			expected: []string{"t-004", "t-009"},
		},
		{
			name:     "Inclusive date range",
			filters:  Filters{StartDate: mustDate(t, "2024-05-06T09:05:00Z"), EndDate: mustDate(t, "2024-05-07T11:00:00Z")},
			expected: []string{"t-010", "t-011"},
		},
		{
			name:     "Start only",
			filters:  Filters{StartDate: mustDate(t, "2024-05-08")},
			expected: []string{"t-012", "t-013"},
		},
		{
			name:     "No match",
			filters:  Filters{Symbol: "DOGE-PERP"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(tc.filters.Apply(trades)))
		})
	}

	assert.Len(t, trades, 13, "input must not be modified")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-05-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("symbol", "SOL-PERP")
	q.Set("direction", "LONG")
	q.Set("orderType", "LIMIT")
	q.Set("start", "2024-05-01")

	f, err := FromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "SOL-PERP", f.Symbol)
	assert.Equal(t, models.DirectionLong, f.Direction)
	assert.Equal(t, models.OrderTypeLimit, f.OrderType)
	require.NotNil(t, f.StartDate)
	assert.Nil(t, f.EndDate)

	q.Set("end", "not-a-date")
	_, err = FromQuery(q)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFromQuery_NormalizesCase(t *testing.T) {
	q := url.Values{}
	q.Set("direction", "short")
	q.Set("orderType", "stop_limit")

	f, err := FromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, models.DirectionShort, f.Direction)
	assert.Equal(t, models.OrderTypeStopLimit, f.OrderType)

	matched := f.Apply(sample.Trades())
	require.Len(t, matched, 1)
	assert.Equal(t, "t-013", matched[0].ID)
}
