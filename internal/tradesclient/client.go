package tradesclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-journal/internal/config"
	"trade-journal/internal/models"
	"trade-journal/internal/sample"
)

var (
	errNotArray = errors.New("invalid response: expected a JSON array of trades")
	errDecode   = errors.New("failed to decode response")
)

// ClientInterface defines the trade-fetching boundary used by the journal.
type ClientInterface interface {
	Health(ctx context.Context) (*HealthResponse, error)
	GetTrades(ctx context.Context, wallet string) ([]models.Trade, error)
	FetchTrades(ctx context.Context, wallet string) []models.Trade
}

// Client is a client for the journal trades API.
type Client struct {
	client     *resty.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
	maxRetries int
	backoff    func(attempt int) time.Duration
}

// ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a new trades API client.
func NewClient(cfg *config.API, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Client{
		client:     client,
		logger:     logger.Named("trades-client"),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		maxRetries: maxRetries,
		backoff:    exponentialBackoff,
	}
}

// exponentialBackoff waits 1s, 2s, 4s, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * time.Second
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health checks that the trades API is reachable.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req := c.client.R().SetContext(ctx).SetResult(&HealthResponse{})

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", req)
	if err != nil {
		return nil, fmt.Errorf("failed to get health: %w", err)
	}
	return resp.Result().(*HealthResponse), nil
}

// GetTrades fetches the trade list for a wallet.
func (c *Client) GetTrades(ctx context.Context, wallet string) ([]models.Trade, error) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("wallet", wallet).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetResult(&[]models.Trade{})

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/trades", req)
	if errors.Is(err, errDecode) {
		return nil, fmt.Errorf("%w: %w", errNotArray, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trades: %w", err)
	}

	trades := *resp.Result().(*[]models.Trade)
	if trades == nil {
		return nil, errNotArray
	}
	return trades, nil
}

// FetchTrades returns the wallet's trades, or the demo trades when the API
// cannot be reached or answers with something unusable.
func (c *Client) FetchTrades(ctx context.Context, wallet string) []models.Trade {
	trades, err := c.GetTrades(ctx, wallet)
	if err != nil {
		c.logger.Warn("Trades API unavailable, using sample data", zap.String("wallet", wallet), zap.Error(err))
		return sample.Trades()
	}
	return trades
}

// doRequest handles the actual request execution with rate limiting and retry logic.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for i := 0; i < c.maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", c.client.BaseURL+url))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		var retryAfter time.Duration

		if err == nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests || statusCode == http.StatusTeapot {
				shouldRetry = true
				if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
			if !shouldRetry {
				return nil, fmt.Errorf("request failed with status %s: %s", resp.Status(), resp.String())
			}
			err = fmt.Errorf("status %s", resp.Status())
		} else {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// The server answered but the body did not fit the result type.
			if resp != nil && resp.RawResponse != nil && resp.IsSuccess() {
				return nil, fmt.Errorf("%w: %w", errDecode, err)
			}
			shouldRetry = true
		}

		if i == c.maxRetries-1 {
			break
		}
		if retryAfter == 0 {
			retryAfter = c.backoff(i)
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxRetries, err)
}
