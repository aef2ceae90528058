package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records pipeline metrics with Prometheus.
type Recorder struct {
	sourceFetches *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	chartsBuilt   *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		sourceFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econwatch_source_fetches_total",
				Help: "Outbound requests to the statistical source by outcome",
			},
			[]string{"indicator", "outcome"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econwatch_cache_lookups_total",
				Help: "Memoization cache lookups by result",
			},
			[]string{"result"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "econwatch_source_fetch_duration_seconds",
				Help:    "Duration of source fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"indicator"},
		),
		chartsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "econwatch_charts_built_total",
				Help: "Charts assembled by trend setting",
			},
			[]string{"trend"},
		),
	}
}

// RecordFetch records a source fetch outcome (ok, nodata, error).
func (r *Recorder) RecordFetch(indicator, outcome string) {
	r.sourceFetches.WithLabelValues(indicator, outcome).Inc()
}

// RecordCacheLookup records a memo cache lookup result (hit, miss).
func (r *Recorder) RecordCacheLookup(result string) {
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordFetchLatency records source fetch latency in seconds.
func (r *Recorder) RecordFetchLatency(indicator string, seconds float64) {
	r.fetchLatency.WithLabelValues(indicator).Observe(seconds)
}

// RecordChartBuilt records one assembled chart.
func (r *Recorder) RecordChartBuilt(trend bool) {
	label := "off"
	if trend {
		label = "on"
	}
	r.chartsBuilt.WithLabelValues(label).Inc()
}
