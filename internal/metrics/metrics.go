package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the analysis service.
//
// Each instance owns its registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec   // labels: function, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: function
	Analyses         *prometheus.CounterVec   // labels: outcome
	AnalysisDuration prometheus.Histogram
	SeriesLength     prometheus.Histogram
	HistoryWrites    *prometheus.CounterVec // labels: outcome
}

// New registers and returns all metrics, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockpulse_upstream_requests_total",
			Help: "Alpha Vantage requests by function and outcome",
		}, []string{"function", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockpulse_upstream_request_duration_seconds",
			Help:    "Alpha Vantage request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"function"}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockpulse_analyses_total",
			Help: "Indicator pipeline runs by outcome",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockpulse_analysis_duration_seconds",
			Help:    "Indicator pipeline latency, excluding the upstream fetch",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		SeriesLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockpulse_series_length_bars",
			Help:    "Number of daily bars received per analysis",
			Buckets: []float64{25, 50, 100, 250, 1000, 5000},
		}),
		HistoryWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockpulse_history_writes_total",
			Help: "Analysis log inserts by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.Analyses,
		m.AnalysisDuration,
		m.SeriesLength,
		m.HistoryWrites,
	)
	return m
}

// ObserveUpstream records one Alpha Vantage request.
func (m *Metrics) ObserveUpstream(function, outcome string, elapsed time.Duration) {
	m.UpstreamRequests.WithLabelValues(function, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(function).Observe(elapsed.Seconds())
}

// ObserveAnalysis records one pipeline run.
func (m *Metrics) ObserveAnalysis(outcome string, bars int, elapsed time.Duration) {
	m.Analyses.WithLabelValues(outcome).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
	m.SeriesLength.Observe(float64(bars))
}

// ObserveHistoryWrite records one analysis log insert.
func (m *Metrics) ObserveHistoryWrite(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.HistoryWrites.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
