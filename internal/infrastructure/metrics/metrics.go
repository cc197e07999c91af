package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/usecase"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersTotal   *prometheus.CounterVec
	TransferDuration *prometheus.HistogramVec
	TransferAmount   prometheus.Histogram

	// API metrics
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all Prometheus metrics and registers them with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Transfer metrics
		TransfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buckpal_transfers_total",
				Help: "Total number of send money requests by outcome",
			},
			[]string{"outcome"},
		),
		TransferDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buckpal_transfer_duration_seconds",
				Help:    "Duration of send money operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		TransferAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "buckpal_transfer_amount",
			Help:    "Amounts of successful transfers",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buckpal_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buckpal_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "buckpal_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "buckpal_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// RecordTransfer implements usecase.TransferMetrics.
func (m *Metrics) RecordTransfer(outcome string, amount domain.Money, duration time.Duration) {
	m.TransfersTotal.WithLabelValues(outcome).Inc()
	m.TransferDuration.WithLabelValues(outcome).Observe(duration.Seconds())

	if outcome == usecase.OutcomeSucceeded {
		f, _ := amount.Decimal().Float64()
		m.TransferAmount.Observe(f)
	}
}
