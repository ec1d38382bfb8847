// Package naive provides the brute-force occurrence scanner used as the
// correctness oracle for every other index.
package naive

import (
	"unsafe"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
)

// Compile-time checks to ensure Naive satisfies required interfaces.
var _ index.Index = (*Naive)(nil)
var _ index.SizeEstimator = (*Naive)(nil)

// Naive compares the query against the run at every cell and direction.
// It holds no state besides the grid, which must outlive it.
type Naive struct {
	grid *grid.Grid
}

// New creates a naive scanner over g.
func New(g *grid.Grid) *Naive {
	return &Naive{grid: g}
}

func (*Naive) Name() string { return "Naive" }

// CountOccurrences implements index.Index.
func (n *Naive) CountOccurrences(word []byte) int {
	if len(word) == 0 {
		return 0
	}

	// A single cell reads the same in every direction; count it once.
	dirs := grid.All[:]
	if len(word) == 1 {
		dirs = dirs[:1]
	}

	var reverse []byte
	if !index.IsPalindrome(word) {
		reverse = index.Reverse(word)
	}

	g := n.grid
	count := 0
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, dir := range dirs {
				if g.Matches(row, col, dir, word) || (reverse != nil && g.Matches(row, col, dir, reverse)) {
					count++
				}
			}
		}
	}
	return count
}

// EstimateSize implements index.SizeEstimator. The grid itself is borrowed
// and not included.
func (n *Naive) EstimateSize() int {
	return int(unsafe.Sizeof(*n))
}
