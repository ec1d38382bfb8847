// Package linear provides a linearized substring index.
//
// The grid is flattened into four byte buffers, one per direction family:
// rows, columns, diagonals and anti-diagonals. Every line is followed by a
// delimiter byte that never occurs in the grid, so a match can never span
// two lines. A query counts every occurrence of the word and its reverse in
// each buffer.
package linear

import (
	"bytes"
	"errors"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
	"github.com/hupe1980/wordgrid/internal/pool"
)

// Compile-time checks to ensure Linear satisfies required interfaces.
var _ index.Index = (*Linear)(nil)
var _ index.SizeEstimator = (*Linear)(nil)

// ErrNoDelimiter is returned when every byte value occurs in the grid.
var ErrNoDelimiter = errors.New("linear: no byte value is free to use as delimiter")

// Options contains configuration options for the linearized index.
type Options struct {
	// Delimiter separates lines in the buffers. If the grid contains it, the
	// smallest byte value absent from the grid is used instead.
	Delimiter byte
}

// DefaultOptions contains the default configuration options for the linearized index.
var DefaultOptions = Options{
	Delimiter: '.',
}

// Linear is a linearized substring index. It owns copies of the grid bytes
// and does not reference the grid after construction.
type Linear struct {
	delim   byte
	buffers [len(grid.All)][]byte
}

// New builds a linearized index over g.
func New(g *grid.Grid, optFns ...func(o *Options)) (*Linear, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	delim, err := chooseDelimiter(g.Data(), opts.Delimiter)
	if err != nil {
		return nil, err
	}

	l := &Linear{delim: delim}
	l.buffers[grid.Right] = l.direct(g)
	l.buffers[grid.Down] = l.transposed(g)
	l.buffers[grid.Diagonal] = l.diagonal(g)
	l.buffers[grid.AntiDiagonal] = l.antiDiagonal(g)

	return l, nil
}

func (*Linear) Name() string { return "Linear" }

// Delimiter returns the byte separating lines in the buffers.
func (l *Linear) Delimiter() byte { return l.delim }

// Buffer returns the flattened buffer of the direction family dir.
// The returned slice must not be modified.
func (l *Linear) Buffer(dir grid.Direction) []byte { return l.buffers[dir] }

func chooseDelimiter(data []byte, preferred byte) (byte, error) {
	present := bitset.New(256)
	for _, b := range data {
		present.Set(uint(b))
	}

	if !present.Test(uint(preferred)) {
		return preferred, nil
	}

	free, ok := present.NextClear(0)
	if !ok || free > 255 {
		return 0, ErrNoDelimiter
	}
	return byte(free), nil
}

func (l *Linear) direct(g *grid.Grid) []byte {
	buf := make([]byte, 0, g.Len()+g.Rows())
	for _, row := range g.AllRows() {
		buf = append(buf, row...)
		buf = append(buf, l.delim)
	}
	return buf
}

func (l *Linear) transposed(g *grid.Grid) []byte {
	buf := make([]byte, 0, g.Len()+g.Cols())
	for _, col := range g.AllCols() {
		for b := range col {
			buf = append(buf, b)
		}
		buf = append(buf, l.delim)
	}
	return buf
}

// diagonal sweeps the start cells up the left edge from the bottom-left
// corner, then right along the top edge.
func (l *Linear) diagonal(g *grid.Grid) []byte {
	rows, cols := g.Rows(), g.Cols()
	buf := make([]byte, 0, g.Len()+rows+cols-1)

	for row := rows - 1; row >= 0; row-- {
		buf = l.appendLine(buf, g, row, 0, grid.Diagonal)
	}
	for col := 1; col < cols; col++ {
		buf = l.appendLine(buf, g, 0, col, grid.Diagonal)
	}
	return buf
}

// antiDiagonal sweeps the start cells right along the top edge from the
// top-left corner, then down the right edge.
func (l *Linear) antiDiagonal(g *grid.Grid) []byte {
	rows, cols := g.Rows(), g.Cols()
	buf := make([]byte, 0, g.Len()+rows+cols-1)

	for col := 0; col < cols; col++ {
		buf = l.appendLine(buf, g, 0, col, grid.AntiDiagonal)
	}
	for row := 1; row < rows; row++ {
		buf = l.appendLine(buf, g, row, cols-1, grid.AntiDiagonal)
	}
	return buf
}

func (l *Linear) appendLine(buf []byte, g *grid.Grid, row, col int, dir grid.Direction) []byte {
	buf, _ = g.AppendWord(buf, row, col, dir, g.RunLength(row, col, dir))
	return append(buf, l.delim)
}

// CountOccurrences implements index.Index.
func (l *Linear) CountOccurrences(word []byte) int {
	if len(word) == 0 || index.ContainsByte(word, l.delim) {
		return 0
	}

	// Every cell appears once in each buffer; single bytes are counted in
	// the row buffer only.
	if len(word) == 1 {
		return countOverlapping(l.buffers[grid.Right], word)
	}

	var reverse []byte
	if !index.IsPalindrome(word) {
		qc := pool.Get()
		defer pool.Put(qc)
		qc.Reverse = index.AppendReverse(qc.Reverse, word)
		reverse = qc.Reverse
	}

	count := 0
	for _, buf := range l.buffers {
		count += countOverlapping(buf, word)
		if reverse != nil {
			count += countOverlapping(buf, reverse)
		}
	}
	return count
}

// countOverlapping counts every offset at which pattern starts in buf.
func countOverlapping(buf, pattern []byte) int {
	count := 0
	for {
		i := bytes.Index(buf, pattern)
		if i < 0 {
			return count
		}
		count++
		buf = buf[i+1:]
	}
}

// EstimateSize implements index.SizeEstimator.
func (l *Linear) EstimateSize() int {
	size := int(unsafe.Sizeof(*l))
	for _, buf := range l.buffers {
		size += cap(buf)
	}
	return size
}
