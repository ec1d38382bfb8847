// Package promcollector exports wordgrid metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	s, _ := wordgrid.New(ctx, g, wordgrid.KindTrie,
//	    wordgrid.WithMetricsCollector(promcollector.New(reg)))
package promcollector

import (
	"time"

	"github.com/hupe1980/wordgrid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wordgrid"

// Compile-time check to ensure Collector satisfies wordgrid.MetricsCollector.
var _ wordgrid.MetricsCollector = (*Collector)(nil)

// Collector records solver builds and queries as Prometheus metrics,
// labelled by strategy.
type Collector struct {
	BuildsTotal      *prometheus.CounterVec
	BuildDuration    *prometheus.HistogramVec
	QueriesTotal     *prometheus.CounterVec
	QueryDuration    *prometheus.HistogramVec
	OccurrencesTotal *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		BuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Total solver builds by strategy and result",
		}, []string{"strategy", "result"}),

		BuildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Solver build duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),

		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total occurrence queries by strategy",
		}, []string{"strategy"}),

		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Occurrence query duration",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}, []string{"strategy"}),

		OccurrencesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "occurrences_total",
			Help:      "Total occurrences returned by strategy",
		}, []string{"strategy"}),
	}
}

// RecordBuild implements wordgrid.MetricsCollector.
func (c *Collector) RecordBuild(kind wordgrid.Kind, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	c.BuildsTotal.WithLabelValues(string(kind), result).Inc()
	c.BuildDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
}

// RecordQuery implements wordgrid.MetricsCollector.
func (c *Collector) RecordQuery(kind wordgrid.Kind, _ int, occurrences int, duration time.Duration) {
	c.QueriesTotal.WithLabelValues(string(kind)).Inc()
	c.QueryDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	c.OccurrencesTotal.WithLabelValues(string(kind)).Add(float64(occurrences))
}
