package linear

import (
	"strings"
	"testing"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index/naive"
	"github.com/hupe1980/wordgrid/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffers(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abc\ndef\nghi"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	assert.Equal(t, byte('.'), l.Delimiter())
	assert.Equal(t, "abc.def.ghi.", string(l.Buffer(grid.Right)))
	assert.Equal(t, "adg.beh.cfi.", string(l.Buffer(grid.Down)))
	assert.Equal(t, "g.dh.aei.bf.c.", string(l.Buffer(grid.Diagonal)))
	assert.Equal(t, "a.bd.ceg.fh.i.", string(l.Buffer(grid.AntiDiagonal)))
}

func TestBuffersRectangular(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abcd\nefgh"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	assert.Equal(t, "e.af.bg.ch.d.", string(l.Buffer(grid.Diagonal)))
	assert.Equal(t, "a.be.cf.dg.h.", string(l.Buffer(grid.AntiDiagonal)))
}

func TestCountOccurrences(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abc\ndef\nghi"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	tests := []struct {
		word string
		want int
	}{
		{"ghi", 1},
		{"cfi", 1},
		{"ifc", 1},
		{"aei", 1},
		{"gec", 1},
		{"e", 1},
		{"cd", 0}, // would span the row delimiter
		{"abcd", 0},
		{"c.d", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, l.CountOccurrences([]byte(tt.word)))
		})
	}
}

func TestOverlappingMatches(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("aaaa"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	assert.Equal(t, 3, l.CountOccurrences([]byte("aa")))
	assert.Equal(t, 2, l.CountOccurrences([]byte("aaa")))
	assert.Equal(t, 4, l.CountOccurrences([]byte("a")))
}

func TestDelimiterInGrid(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("a.b\nc.d"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	assert.Equal(t, byte(0), l.Delimiter())

	oracle := naive.New(g)
	for _, w := range []string{".", "a.", ".b", "a.b", "..", "bd"} {
		assert.Equal(t, oracle.CountOccurrences([]byte(w)), l.CountOccurrences([]byte(w)), "word %q", w)
	}
	assert.Equal(t, 0, l.CountOccurrences([]byte{'a', 0}))
}

func TestCustomDelimiter(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("ab\ncd"))
	require.NoError(t, err)

	l, err := New(g, func(o *Options) { o.Delimiter = '#' })
	require.NoError(t, err)

	assert.Equal(t, "ab#cd#", string(l.Buffer(grid.Right)))
}

func TestNoDelimiter(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	g, err := grid.New(1, data)
	require.NoError(t, err)

	_, err = New(g)
	require.ErrorIs(t, err, ErrNoDelimiter)
}

func TestMatchesNaive(t *testing.T) {
	shapes := []struct{ rows, cols int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 5}, {5, 2}, {6, 6}, {9, 4},
	}

	rng := testutil.NewRNG(4711)
	for _, shape := range shapes {
		g := rng.RandomGrid(shape.rows, shape.cols, "abc")
		oracle := naive.New(g)

		l, err := New(g)
		require.NoError(t, err)

		for _, w := range rng.Vocabulary(g, max(shape.rows, shape.cols), 20) {
			require.Equal(t, oracle.CountOccurrences(w), l.CountOccurrences(w),
				"grid %dx%d word %q", shape.rows, shape.cols, w)
		}
	}
}

func TestEstimateSize(t *testing.T) {
	g, err := grid.Parse(strings.NewReader("abc\ndef\nghi"))
	require.NoError(t, err)

	l, err := New(g)
	require.NoError(t, err)

	// Four buffers of 12, 12, 14 and 14 bytes.
	assert.GreaterOrEqual(t, l.EstimateSize(), 12+12+14+14)
}
