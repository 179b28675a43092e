package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"trade-journal/internal/analytics"
	"trade-journal/internal/config"
	"trade-journal/internal/filter"
	"trade-journal/internal/logger"
	"trade-journal/internal/models"
	"trade-journal/internal/sample"
	"trade-journal/internal/tradesclient"
	"trade-journal/internal/wallet"
)

// markFlags collects repeated -mark SYMBOL:PRICE values.
type markFlags map[string]float64

func (m markFlags) String() string {
	parts := make([]string, 0, len(m))
	for s, p := range m {
		parts = append(parts, s+":"+strconv.FormatFloat(p, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (m markFlags) Set(v string) error {
	symbol, raw, found := strings.Cut(v, ":")
	if !found || symbol == "" {
		return fmt.Errorf("expected SYMBOL:PRICE, got %q", v)
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid price in %q: %w", v, err)
	}
	m[symbol] = p
	return nil
}

type options struct {
	configDir      string
	wallet         string
	filters        filter.Filters
	marks          markFlags
	startingEquity *float64
}

func parseFlags(args []string) (options, error) {
	opts := options{marks: markFlags{}}

	fs := flag.NewFlagSet("journal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configDir, "config", "./configs", "directory holding config.yml")
	fs.StringVar(&opts.wallet, "wallet", sample.DemoWallet, "wallet public key")
	start := fs.String("start", "", "earliest entry time (RFC3339 or YYYY-MM-DD)")
	end := fs.String("end", "", "latest entry time (RFC3339 or YYYY-MM-DD)")
	symbol := fs.String("symbol", "", "only this symbol")
	direction := fs.String("direction", "", "LONG or SHORT")
	orderType := fs.String("order-type", "", "MARKET, LIMIT, STOP or STOP_LIMIT")
	equity := fs.String("equity", "", "starting equity, overrides analytics.starting_equity")
	fs.Var(opts.marks, "mark", "mark price for open trades as SYMBOL:PRICE, repeatable")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if err := wallet.Validate(opts.wallet); err != nil {
		return options{}, err
	}

	opts.filters = filter.Filters{
		Symbol:    *symbol,
		Direction: models.Direction(strings.ToUpper(*direction)),
		OrderType: models.OrderType(strings.ToUpper(*orderType)),
	}
	bounds := []struct {
		raw string
		dst **time.Time
	}{
		{*start, &opts.filters.StartDate},
		{*end, &opts.filters.EndDate},
	}
	for _, b := range bounds {
		if b.raw == "" {
			continue
		}
		t, err := filter.ParseDate(b.raw)
		if err != nil {
			return options{}, err
		}
		*b.dst = &t
	}

	if *equity != "" {
		v, err := strconv.ParseFloat(*equity, 64)
		if err != nil {
			return options{}, fmt.Errorf("invalid starting equity %q: %w", *equity, err)
		}
		opts.startingEquity = &v
	}

	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid arguments: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := tradesclient.NewClient(&cfg.API, log)
	trades := client.FetchTrades(ctx, opts.wallet)
	selected := opts.filters.Apply(trades)
	log.Info("Trades loaded",
		zap.String("wallet", opts.wallet),
		zap.Int("fetched", len(trades)),
		zap.Int("selected", len(selected)),
	)

	startingEquity := cfg.Analytics.StartingEquity
	if opts.startingEquity != nil {
		startingEquity = *opts.startingEquity
	}

	report := analytics.BuildReport(selected, analytics.ReportOptions{
		StartingEquity: startingEquity,
		MarkPrices:     opts.marks,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal("Failed to write report", zap.Error(err))
	}
}
