package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"trade-journal/internal/analytics"
	"trade-journal/internal/database"
	"trade-journal/internal/filter"
	"trade-journal/internal/metrics"
	"trade-journal/internal/models"
	"trade-journal/internal/wallet"
)

// TradeStore is the subset of the journal store the API needs.
type TradeStore interface {
	ListTrades(ctx context.Context, wallet string) ([]models.Trade, error)
	UpdateNotes(ctx context.Context, tradeID, notes string) (models.Trade, error)
}

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log            *zap.Logger
	store          TradeStore
	metrics        *metrics.Metrics
	startingEquity float64
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, store TradeStore, m *metrics.Metrics, startingEquity float64) *APIHandler {
	return &APIHandler{log: log, store: store, metrics: m, startingEquity: startingEquity}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to write response", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, endpoint string, status int, msg string) {
	errType := "bad_request"
	switch {
	case status == http.StatusNotFound:
		errType = "not_found"
	case status >= http.StatusInternalServerError:
		errType = "internal"
	}
	h.metrics.RecordError(endpoint, errType)
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// HealthHandler reports liveness.
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TradesHandler returns the trade list for the wallet in the query string.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	trades, ok := h.loadTrades(w, r, "trades")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, trades)
}

// AnalyticsHandler returns the analytics report for the wallet's trades
// after applying the filters in the query string.
func (h *APIHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters, err := filter.FromQuery(q)
	if err != nil {
		h.writeError(w, "analytics", http.StatusBadRequest, err.Error())
		return
	}
	marks, err := parseMarkPrices(q["mark"])
	if err != nil {
		h.writeError(w, "analytics", http.StatusBadRequest, err.Error())
		return
	}

	trades, ok := h.loadTrades(w, r, "analytics")
	if !ok {
		return
	}

	selected := filters.Apply(trades)
	report := analytics.BuildReport(selected, analytics.ReportOptions{
		StartingEquity: h.startingEquity,
		MarkPrices:     marks,
	})
	h.metrics.RecordReport(len(selected))

	h.writeJSON(w, http.StatusOK, report)
}

type notesRequest struct {
	Notes string `json:"notes"`
}

const maxNotesBodyBytes = 64 << 10

// NotesHandler replaces the notes on a single trade.
func (h *APIHandler) NotesHandler(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	body := http.MaxBytesReader(w, r.Body, maxNotesBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.writeError(w, "notes", http.StatusBadRequest, "invalid request body")
		return
	}

	trade, err := h.store.UpdateNotes(r.Context(), r.PathValue("id"), req.Notes)
	if errors.Is(err, database.ErrTradeNotFound) {
		h.writeError(w, "notes", http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.log.Error("Failed to update notes", zap.String("trade_id", r.PathValue("id")), zap.Error(err))
		h.writeError(w, "notes", http.StatusInternalServerError, "failed to update notes")
		return
	}

	h.writeJSON(w, http.StatusOK, trade)
}

func (h *APIHandler) loadTrades(w http.ResponseWriter, r *http.Request, endpoint string) ([]models.Trade, bool) {
	walletID := r.URL.Query().Get("wallet")
	if err := wallet.Validate(walletID); err != nil {
		h.writeError(w, endpoint, http.StatusBadRequest, err.Error())
		return nil, false
	}

	trades, err := h.store.ListTrades(r.Context(), walletID)
	if err != nil {
		h.log.Error("Failed to get trades from database", zap.String("wallet", walletID), zap.Error(err))
		h.writeError(w, endpoint, http.StatusInternalServerError, "failed to get trades")
		return nil, false
	}
	return trades, true
}

// parseMarkPrices reads repeated mark=SYMBOL:PRICE query values.
func parseMarkPrices(values []string) (map[string]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	marks := make(map[string]float64, len(values))
	for _, v := range values {
		symbol, raw, found := strings.Cut(v, ":")
		if !found || symbol == "" {
			return nil, fmt.Errorf("invalid mark price %q", v)
		}
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mark price %q: %w", v, err)
		}
		marks[symbol] = p
	}
	return marks, nil
}

// requestID tags each request with an X-Request-ID, reusing the caller's.
func requestID(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		log.Debug("Handling request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

// cors allows the dashboard origin to call the API.
func cors(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimit rejects requests beyond the limiter's budget with 429.
func rateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// routerOptions configures newRouter.
type routerOptions struct {
	CORSOrigin         string
	RateLimitPerMinute int
}

// newRouter wires the API endpoints and middleware.
func newRouter(log *zap.Logger, h *APIHandler, m *metrics.Metrics, opts routerOptions) http.Handler {
	api := http.NewServeMux()
	api.Handle("GET /api/health", m.Middleware("health", http.HandlerFunc(h.HealthHandler)))
	api.Handle("GET /api/trades", m.Middleware("trades", http.HandlerFunc(h.TradesHandler)))
	api.Handle("PATCH /api/trades/{id}/notes", m.Middleware("notes", http.HandlerFunc(h.NotesHandler)))
	api.Handle("GET /api/analytics", m.Middleware("analytics", http.HandlerFunc(h.AnalyticsHandler)))

	perMinute := opts.RateLimitPerMinute
	if perMinute < 1 {
		perMinute = 60
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	mux := http.NewServeMux()
	mux.Handle("/api/", rateLimit(limiter, api))
	mux.Handle("GET /metrics", m.Handler())

	return requestID(log, cors(opts.CORSOrigin, mux))
}
