// Package grid provides the row-major byte matrix that every word index is
// built over, together with the four scan directions and their stepping math.
//
// # Geometry
//
// A Grid has Rows() rows and Cols() columns. A run is a contiguous sequence of
// cells starting at an anchor (row, col) and stepping along one Direction:
//
//	Right         (r, c) -> (r, c+1)
//	Down          (r, c) -> (r+1, c)
//	Diagonal      (r, c) -> (r+1, c+1)
//	AntiDiagonal  (r, c) -> (r+1, c-1)
//
// Run requests that would leave the grid are not errors: Word and Matches
// simply report that no run is available.
//
// # Text Format
//
// Parse reads newline-separated rows. Blank lines are skipped, and all
// remaining rows must have the same length:
//
//	g, err := grid.Parse(strings.NewReader("abc\ndef\nghi\n"))
//
// A Grid is read-only once indices have been built over it. SetWord exists
// for generators that plant words before any index is constructed.
package grid
