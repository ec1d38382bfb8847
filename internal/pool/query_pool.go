// Package pool provides scratch buffers for allocation-free queries.
// Uses sync.Pool so concurrent readers each get their own buffers.
package pool

import (
	"sync"
)

const (
	// DefaultWordCapacity is the initial capacity of every scratch buffer.
	DefaultWordCapacity = 64

	// MaxRetainedCapacity bounds the buffers kept in the pool. Larger
	// buffers are dropped on Put so a single huge query does not pin memory.
	MaxRetainedCapacity = 64 * 1024
)

// QueryContext contains pre-allocated buffers for a single query.
type QueryContext struct {
	Reverse []byte // reversed query word
	Key     []byte // canonical key of the query word
}

var queryContextPool = sync.Pool{
	New: func() any {
		return &QueryContext{
			Reverse: make([]byte, 0, DefaultWordCapacity),
			Key:     make([]byte, 0, DefaultWordCapacity),
		}
	},
}

// Get retrieves a QueryContext from the pool.
func Get() *QueryContext {
	qc := queryContextPool.Get().(*QueryContext)
	qc.Reset()
	return qc
}

// Put returns a QueryContext to the pool for reuse.
// The caller must not retain any of its buffers.
func Put(qc *QueryContext) {
	if cap(qc.Reverse) > MaxRetainedCapacity {
		qc.Reverse = make([]byte, 0, DefaultWordCapacity)
	}
	if cap(qc.Key) > MaxRetainedCapacity {
		qc.Key = make([]byte, 0, DefaultWordCapacity)
	}
	queryContextPool.Put(qc)
}

// Reset truncates all buffers while keeping their capacity.
func (qc *QueryContext) Reset() {
	qc.Reverse = qc.Reverse[:0]
	qc.Key = qc.Key[:0]
}

// QueryContextStats returns statistics about a QueryContext.
type QueryContextStats struct {
	ReverseCap int
	KeyCap     int
}

// Stats returns the current buffer capacities.
func (qc *QueryContext) Stats() QueryContextStats {
	return QueryContextStats{
		ReverseCap: cap(qc.Reverse),
		KeyCap:     cap(qc.Key),
	}
}
