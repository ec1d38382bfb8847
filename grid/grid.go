package grid

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"unsafe"
)

// Grid is a row-major byte matrix.
type Grid struct {
	rows int
	cols int
	data []byte
}

// New creates a grid with the given number of rows over data.
// The grid takes ownership of data.
func New(rows int, data []byte) (*Grid, error) {
	if rows <= 0 || len(data) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(data)%rows != 0 {
		return nil, fmt.Errorf("%w: %d bytes, %d rows", ErrInvalidShape, len(data), rows)
	}
	return &Grid{
		rows: rows,
		cols: len(data) / rows,
		data: data,
	}, nil
}

// Parse reads a grid in text format from r.
func Parse(r io.Reader) (*Grid, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return ParseBytes(text)
}

// ParseBytes parses a grid from newline-separated rows.
// Blank lines are skipped and a trailing carriage return is ignored.
func ParseBytes(text []byte) (*Grid, error) {
	var (
		data []byte
		rows int
		cols int
	)

	for line := range bytes.Lines(text) {
		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(line)
			data = make([]byte, 0, cols*max(1, bytes.Count(text, []byte{'\n'})))
		}
		if len(line) != cols {
			return nil, &RowLengthError{Row: rows, Expected: cols, Actual: len(line)}
		}
		data = append(data, line...)
		rows++
	}

	return New(rows, data)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Data returns the underlying row-major buffer. Callers must not modify it.
func (g *Grid) Data() []byte { return g.data }

// Get returns the byte at (row, col).
func (g *Grid) Get(row, col int) byte {
	return g.data[row*g.cols+col]
}

// Row returns row r as a sub-slice of the grid data.
func (g *Grid) Row(r int) []byte {
	return g.data[r*g.cols : (r+1)*g.cols : (r+1)*g.cols]
}

// Col returns a sequence over the bytes of column c, top to bottom.
func (g *Grid) Col(c int) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for r := 0; r < g.rows; r++ {
			if !yield(g.data[r*g.cols+c]) {
				return
			}
		}
	}
}

// AllRows returns a sequence over every row.
func (g *Grid) AllRows() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for r := 0; r < g.rows; r++ {
			if !yield(r, g.Row(r)) {
				return
			}
		}
	}
}

// AllCols returns a sequence over every column.
func (g *Grid) AllCols() iter.Seq2[int, iter.Seq[byte]] {
	return func(yield func(int, iter.Seq[byte]) bool) {
		for c := 0; c < g.cols; c++ {
			if !yield(c, g.Col(c)) {
				return
			}
		}
	}
}

// RunLength returns the length of the longest run starting at (row, col)
// along dir, or 0 if the origin lies outside the grid.
func (g *Grid) RunLength(row, col int, dir Direction) int {
	return dir.MaxRun(row, col, g.rows, g.cols)
}

// Word returns the n bytes of the run starting at (row, col) along dir.
// It reports false when n < 1 or the run would leave the grid.
func (g *Grid) Word(row, col int, dir Direction, n int) ([]byte, bool) {
	return g.AppendWord(nil, row, col, dir, n)
}

// AppendWord is like Word but appends the run to dst.
// On failure dst is returned unchanged.
func (g *Grid) AppendWord(dst []byte, row, col int, dir Direction, n int) ([]byte, bool) {
	if n < 1 {
		return dst, false
	}
	if _, _, ok := dir.ShiftBounded(row, col, n-1, g.rows, g.cols); !ok {
		return dst, false
	}

	if dir == Right {
		start := row*g.cols + col
		return append(dst, g.data[start:start+n]...), true
	}

	step := g.stride(dir)
	pos := row*g.cols + col
	for i := 0; i < n; i++ {
		dst = append(dst, g.data[pos])
		pos += step
	}
	return dst, true
}

// Matches reports whether the run of len(word) cells starting at (row, col)
// along dir equals word. It does not allocate.
func (g *Grid) Matches(row, col int, dir Direction, word []byte) bool {
	n := len(word)
	if n < 1 {
		return false
	}
	if _, _, ok := dir.ShiftBounded(row, col, n-1, g.rows, g.cols); !ok {
		return false
	}

	step := g.stride(dir)
	pos := row*g.cols + col
	for i := 0; i < n; i++ {
		if g.data[pos] != word[i] {
			return false
		}
		pos += step
	}
	return true
}

// SetWord writes word along dir starting at (row, col).
// It reports false and leaves the grid unchanged if the word does not fit.
func (g *Grid) SetWord(row, col int, dir Direction, word []byte) bool {
	if len(word) == 0 {
		return false
	}
	if _, _, ok := dir.ShiftBounded(row, col, len(word)-1, g.rows, g.cols); !ok {
		return false
	}

	step := g.stride(dir)
	pos := row*g.cols + col
	for _, b := range word {
		g.data[pos] = b
		pos += step
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows: g.rows,
		cols: g.cols,
		data: bytes.Clone(g.data),
	}
}

// WriteTo writes the grid in text format, rows separated by newlines.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for r, row := range g.AllRows() {
		if r > 0 {
			n, err := w.Write([]byte{'\n'})
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := w.Write(row)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the grid in text format.
func (g *Grid) String() string {
	var buf bytes.Buffer
	_, _ = g.WriteTo(&buf)
	return buf.String()
}

// EstimateSize returns the approximate memory footprint in bytes.
func (g *Grid) EstimateSize() int {
	return int(unsafe.Sizeof(*g)) + cap(g.data)
}

// stride is the flat-buffer offset between consecutive cells of a run.
func (g *Grid) stride(dir Direction) int {
	switch dir {
	case Right:
		return 1
	case Down:
		return g.cols
	case Diagonal:
		return g.cols + 1
	default:
		return g.cols - 1
	}
}
