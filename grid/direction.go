package grid

import "fmt"

// Direction is one of the four scan axes.
type Direction uint8

const (
	Right Direction = iota
	Down
	Diagonal
	AntiDiagonal
)

// All lists every direction in canonical order.
var All = [4]Direction{Right, Down, Diagonal, AntiDiagonal}

// Shift returns the point reached after offset steps from (row, col).
// It performs no bounds checking; AntiDiagonal may yield a negative column.
func (d Direction) Shift(row, col, offset int) (int, int) {
	switch d {
	case Right:
		return row, col + offset
	case Down:
		return row + offset, col
	case Diagonal:
		return row + offset, col + offset
	case AntiDiagonal:
		return row + offset, col - offset
	default:
		panic(fmt.Sprintf("grid: invalid direction %d", d))
	}
}

// ShiftBounded is Shift restricted to a rows x cols rectangle. It reports
// false when the origin or the shifted point lies outside of it.
//
// Rows never decrease and columns change monotonically along every direction,
// so a valid endpoint implies every intermediate cell is valid as well.
func (d Direction) ShiftBounded(row, col, offset, rows, cols int) (int, int, bool) {
	if row < 0 || col < 0 || row >= rows || col >= cols || offset < 0 {
		return 0, 0, false
	}
	if d == AntiDiagonal && col < offset {
		return 0, 0, false
	}

	r, c := d.Shift(row, col, offset)
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}

// MaxRun returns the length of the longest run starting at (row, col) inside
// a rows x cols rectangle, or 0 when the origin is out of bounds.
func (d Direction) MaxRun(row, col, rows, cols int) int {
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return 0
	}
	switch d {
	case Right:
		return cols - col
	case Down:
		return rows - row
	case Diagonal:
		return min(rows-row, cols-col)
	case AntiDiagonal:
		return min(rows-row, col+1)
	default:
		return 0
	}
}

// String returns a string representation of the Direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Diagonal:
		return "Diagonal"
	case AntiDiagonal:
		return "AntiDiagonal"
	default:
		return "Unknown"
	}
}
