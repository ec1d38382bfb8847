package wordgrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// promcollector provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called after each solver construction.
	// err is nil if successful.
	RecordBuild(kind Kind, duration time.Duration, err error)

	// RecordQuery is called after each occurrence query.
	RecordQuery(kind Kind, wordLen, occurrences int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(Kind, time.Duration, error)    {}
func (NoopMetricsCollector) RecordQuery(Kind, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildTotalNanos  atomic.Int64
	QueryCount       atomic.Int64
	QueryHits        atomic.Int64
	QueryOccurrences atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_ Kind, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ Kind, _ int, occurrences int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	b.QueryOccurrences.Add(int64(occurrences))
	if occurrences > 0 {
		b.QueryHits.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		BuildAvgNanos:    avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		QueryCount:       b.QueryCount.Load(),
		QueryHits:        b.QueryHits.Load(),
		QueryOccurrences: b.QueryOccurrences.Load(),
		QueryAvgNanos:    avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildErrors      int64
	BuildAvgNanos    int64
	QueryCount       int64
	QueryHits        int64 // Queries with at least one occurrence
	QueryOccurrences int64
	QueryAvgNanos    int64
}
