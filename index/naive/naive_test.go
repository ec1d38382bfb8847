package naive

import (
	"strings"
	"testing"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaive(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abc\ndef\nghi"))
	require.NoError(t, err)

	n := New(g)

	tests := []struct {
		word string
		want int
	}{
		{"ghi", 1},  // row
		{"ihg", 1},  // reversed row
		{"cfi", 1},  // column
		{"aei", 1},  // diagonal
		{"gec", 1},  // anti-diagonal, reversed
		{"ae", 1},   // partial diagonal
		{"ea", 1},   // partial diagonal, reversed
		{"e", 1},    // single cell counted once
		{"abcd", 0}, // longer than any run
		{"aeh", 0},  // no straight run
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, n.CountOccurrences([]byte(tt.word)))
		})
	}
}

func TestNaivePalindromes(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("aaa\naaa"))
	require.NoError(t, err)

	n := New(g)

	// 2 rows x 2 starts + 3 columns + 2 diagonals + 2 anti-diagonals
	assert.Equal(t, 4+3+2+2, n.CountOccurrences([]byte("aa")))
	assert.Equal(t, 2, n.CountOccurrences([]byte("aaa")))
	assert.Equal(t, 6, n.CountOccurrences([]byte("a")))
}

func TestNaiveBoundaryExactness(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abcd\nefgh\nijkl"))
	require.NoError(t, err)

	n := New(g)

	assert.Equal(t, 1, n.CountOccurrences([]byte("efgh")))
	assert.Equal(t, 1, n.CountOccurrences([]byte("dhl")))
	assert.Equal(t, 0, n.CountOccurrences([]byte("fghi")))
	assert.Equal(t, 0, n.CountOccurrences([]byte("dhlp")))
}
