// Package index provides interfaces and shared helpers for word occurrence indexes.
package index

import (
	"fmt"
)

// ErrInvalidWordLen is a named error type for an unusable indexed word length.
type ErrInvalidWordLen struct {
	WordLen int // Rejected length
}

// Error returns the error message for an invalid word length.
func (e *ErrInvalidWordLen) Error() string {
	return fmt.Sprintf("invalid word length: %d", e.WordLen)
}

// ErrGridTooLarge is returned when a grid has more cells than an index can address.
type ErrGridTooLarge struct {
	Cells int // Number of grid cells
	Limit int // Maximum supported number of cells
}

// Error returns the error message for an oversized grid.
func (e *ErrGridTooLarge) Error() string {
	return fmt.Sprintf("grid too large: %d cells, limit %d", e.Cells, e.Limit)
}

// Index answers occurrence queries over a grid.
//
// An occurrence is a run of len(word) cells along one of the four directions
// whose bytes equal word or its reverse. Every implementation returns exactly
// the count of the naive scanner. An Index is read-only after construction and
// safe for concurrent queries.
type Index interface {
	// CountOccurrences returns how many runs spell word forward or reversed.
	// The empty word occurs zero times.
	CountOccurrences(word []byte) int
}

// SizeEstimator is implemented by indexes that can report their approximate
// memory footprint in bytes.
type SizeEstimator interface {
	EstimateSize() int
}
