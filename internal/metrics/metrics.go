package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the journal API.
type Metrics struct {
	registry            *prometheus.Registry
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	apiErrorsTotal      *prometheus.CounterVec
	reportsBuilt        prometheus.Counter
	tradesAnalyzed      prometheus.Histogram
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		apiErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors",
			},
			[]string{"endpoint", "error_type"},
		),
		reportsBuilt: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_reports_total",
				Help: "Total number of analytics reports built",
			},
		),
		tradesAnalyzed: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_report_trades",
				Help:    "Number of trades per analytics report",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.apiErrorsTotal,
		m.reportsBuilt,
		m.tradesAnalyzed,
	)

	return m
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latency under the given endpoint label.
func (m *Metrics) Middleware(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}

// RecordError counts an API error by endpoint and kind.
func (m *Metrics) RecordError(endpoint, errorType string) {
	m.apiErrorsTotal.WithLabelValues(endpoint, errorType).Inc()
}

// RecordReport counts a built analytics report and its input size.
func (m *Metrics) RecordReport(tradeCount int) {
	m.reportsBuilt.Inc()
	m.tradesAnalyzed.Observe(float64(tradeCount))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
