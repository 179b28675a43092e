package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/filter"
	"trade-journal/internal/models"
	"trade-journal/internal/wallet"
)

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "demo-wallet", opts.wallet)
	assert.Equal(t, "./configs", opts.configDir)
	assert.Equal(t, filter.Filters{}, opts.filters)
	assert.Empty(t, opts.marks)
	assert.Nil(t, opts.startingEquity)
}

func TestParseFlags_All(t *testing.T) {
	opts, err := parseFlags([]string{
		"-wallet", "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		"-start", "2024-05-02",
		"-end", "2024-05-06T12:00:00Z",
		"-symbol", "SOL-PERP",
		"-direction", "long",
		"-order-type", "stop_limit",
		"-mark", "SOL-PERP:158.2",
		"-mark", "ETH-PERP:3162.5",
		"-equity", "5000",
	})
	require.NoError(t, err)

	assert.Equal(t, "SOL-PERP", opts.filters.Symbol)
	assert.Equal(t, models.DirectionLong, opts.filters.Direction)
	assert.Equal(t, models.OrderTypeStopLimit, opts.filters.OrderType)
	require.NotNil(t, opts.filters.StartDate)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), *opts.filters.StartDate)
	require.NotNil(t, opts.filters.EndDate)
	assert.Equal(t, time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC), *opts.filters.EndDate)
	assert.Equal(t, markFlags{"SOL-PERP": 158.2, "ETH-PERP": 3162.5}, opts.marks)
	require.NotNil(t, opts.startingEquity)
	assert.Equal(t, 5000.0, *opts.startingEquity)
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "Bad wallet", args: []string{"-wallet", "0xdeadbeef"}},
		{name: "Bad mark", args: []string{"-mark", "SOL-PERP"}},
		{name: "Bad date", args: []string{"-start", "last week"}},
		{name: "Bad equity", args: []string{"-equity", "lots"}},
		{name: "Unknown flag", args: []string{"-verbose"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseFlags(tc.args)
			assert.Error(t, err)
		})
	}

	_, err := parseFlags([]string{"-wallet", ""})
	assert.ErrorIs(t, err, wallet.ErrRequired)
}
