// Package metrics collects replay counters on a private Prometheus
// registry. The endpoint is optional: a batch run usually only wants the
// end-of-run summary in the logs, but long replays can expose /metrics
// while they run.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks how a replay run is going.
type Collector struct {
	registry        *prometheus.Registry
	recordsRead     prometheus.Counter
	txApplied       *prometheus.CounterVec
	txFailed        *prometheus.CounterVec
	accountsTouched prometheus.Gauge
	logger          *slog.Logger
}

// NewCollector builds a collector with its own registry.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		recordsRead: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "replay_records_read_total",
			Help: "Total number of input records decoded",
		}),
		txApplied: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "replay_transactions_applied_total",
			Help: "Total number of transactions applied to the ledger",
		}, []string{"kind"}),
		txFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "replay_transactions_failed_total",
			Help: "Total number of records rejected as warnings",
		}, []string{"kind"}),
		accountsTouched: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "replay_accounts_touched",
			Help: "Number of accounts referenced by the replay",
		}),
		logger: logger,
	}
}

// RecordRead counts one decoded input record.
func (c *Collector) RecordRead() {
	c.recordsRead.Inc()
}

// TxApplied counts one successfully applied transaction.
func (c *Collector) TxApplied(kind string) {
	c.txApplied.WithLabelValues(kind).Inc()
}

// TxFailed counts one record rejected as a warning.
func (c *Collector) TxFailed(kind string) {
	c.txFailed.WithLabelValues(kind).Inc()
}

// SetAccountsTouched records how many accounts the run referenced.
func (c *Collector) SetAccountsTouched(n int) {
	c.accountsTouched.Set(float64(n))
}

// Handler serves the private registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StartServer exposes /metrics on addr for the duration of the replay.
// The caller shuts the server down when the run finishes.
func (c *Collector) StartServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		c.logger.Info("starting metrics server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Error("metrics server failed", "error", err)
		}
	}()

	return server
}
