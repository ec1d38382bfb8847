package wordgrid

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
	"github.com/hupe1980/wordgrid/index/naive"
	"github.com/hupe1980/wordgrid/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGrid(t *testing.T, text string) *grid.Grid {
	t.Helper()

	g, err := grid.ParseBytes([]byte(text))
	require.NoError(t, err)
	return g
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Trie ")
	require.NoError(t, err)
	assert.Equal(t, KindTrie, got)

	_, err = ParseKind("suffix-array")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestConcreteScenario(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "abc\ndef\nghi")

	solvers, err := BuildAll(ctx, g, Kinds)
	require.NoError(t, err)
	require.Len(t, solvers, len(Kinds))

	for i, s := range solvers {
		t.Run(string(s.Kind()), func(t *testing.T) {
			assert.Equal(t, Kinds[i], s.Kind())
			assert.Equal(t, 1, s.Count(ctx, []byte("ghi")))
			assert.Equal(t, 1, s.Count(ctx, []byte("cfi")))
			assert.Equal(t, 1, s.Count(ctx, []byte("aei")))
			assert.Equal(t, 0, s.Count(ctx, []byte("")))
		})
	}
}

func TestCrossStrategyEquivalence(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(2024)

	shapes := []struct{ rows, cols int }{
		{1, 1}, {3, 3}, {1, 12}, {12, 1}, {4, 9}, {9, 4}, {10, 10},
	}

	for _, shape := range shapes {
		g := rng.RandomGrid(shape.rows, shape.cols, "abcd")
		rng.PlantWords(g, testutil.Words(), 10)

		oracle := naive.New(g)
		maxLen := max(shape.rows, shape.cols)
		vocab := rng.Vocabulary(g, maxLen, 25)

		for wordLen := 1; wordLen <= maxLen; wordLen++ {
			solvers, err := BuildAll(ctx, g, Kinds, WithWordLen(wordLen), WithChunkSize(8))
			require.NoError(t, err)

			for _, s := range solvers {
				counts, err := s.CountAll(ctx, vocab)
				require.NoError(t, err)

				for i, w := range vocab {
					require.Equal(t, oracle.CountOccurrences(w), counts[i],
						"%s grid %dx%d wordLen %d word %q", s.Kind(), shape.rows, shape.cols, wordLen, w)
				}
			}
		}
	}
}

func TestPalindromeIdempotence(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "racecar\nabccbaz\nlevelxx")

	solvers, err := BuildAll(ctx, g, Kinds, WithWordLen(3))
	require.NoError(t, err)

	for _, w := range []string{"racecar", "level", "abccba", "cc", "aca"} {
		want := naive.New(g).CountOccurrences([]byte(w))
		assert.True(t, index.IsPalindrome([]byte(w)))
		for _, s := range solvers {
			assert.Equal(t, want, s.Count(ctx, []byte(w)), "%s word %q", s.Kind(), w)
		}
	}
}

func TestBoundaryExactness(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "abcd\nefgh\nijkl")

	solvers, err := BuildAll(ctx, g, Kinds, WithWordLen(2))
	require.NoError(t, err)

	for _, s := range solvers {
		assert.Equal(t, 1, s.Count(ctx, []byte("efgh")), s.Kind())
		assert.Equal(t, 1, s.Count(ctx, []byte("lkji")), s.Kind())
		assert.Equal(t, 1, s.Count(ctx, []byte("dhl")), s.Kind())
		assert.Equal(t, 0, s.Count(ctx, []byte("ghij")), s.Kind())
		assert.Equal(t, 0, s.Count(ctx, []byte("dhlp")), s.Kind())
	}
}

func TestConstructionDeterminism(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(5)
	g := rng.RandomGrid(8, 8, "ab")
	vocab := rng.Vocabulary(g, 8, 10)

	for _, kind := range Kinds {
		s1, err := New(ctx, g, kind)
		require.NoError(t, err)
		s2, err := New(ctx, g, kind)
		require.NoError(t, err)

		c1, err := s1.CountAll(ctx, vocab)
		require.NoError(t, err)
		c2, err := s2.CountAll(ctx, vocab)
		require.NoError(t, err)
		assert.Equal(t, c1, c2, kind)
	}
}

func TestNewErrors(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "abc\ndef")

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := New(ctx, g, Kind("bogus"))
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("ZeroWordLen", func(t *testing.T) {
		_, err := New(ctx, g, KindHash, WithWordLen(0))

		var iwl *ErrInvalidWordLen
		require.ErrorAs(t, err, &iwl)
		assert.Equal(t, KindHash, iwl.Kind)
		assert.Equal(t, 0, iwl.WordLen)

		var cause *index.ErrInvalidWordLen
		assert.ErrorAs(t, err, &cause)
	})

	t.Run("NegativeMaxWordLen", func(t *testing.T) {
		_, err := BuildAll(ctx, g, Kinds, WithMaxWordLen(-2))

		var iwl *ErrInvalidWordLen
		require.ErrorAs(t, err, &iwl)
		assert.Equal(t, KindTrie, iwl.Kind)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(cctx, g, KindNaive)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestCountAllCancelled(t *testing.T) {
	g := parseGrid(t, "abc\ndef")

	s, err := New(context.Background(), g, KindLinear)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.CountAll(ctx, [][]byte{[]byte("ab"), []byte("de")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCountAllEmpty(t *testing.T) {
	g := parseGrid(t, "abc\ndef")

	s, err := New(context.Background(), g, KindHash)
	require.NoError(t, err)

	counts, err := s.CountAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestSolverIntrospection(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "abc\ndef\nghi")

	names := map[Kind]string{
		KindNaive:  "Naive",
		KindHash:   "HashMap",
		KindTrie:   "Trie",
		KindLinear: "Linear",
	}

	for kind, name := range names {
		s, err := New(ctx, g, kind)
		require.NoError(t, err)

		assert.Equal(t, name, s.Name())
		assert.NotNil(t, s.Index())
		assert.Positive(t, s.EstimateSize())
		assert.GreaterOrEqual(t, s.BuildTime(), time.Duration(0))
	}
}

func TestMetricsAndLogging(t *testing.T) {
	ctx := context.Background()
	g := parseGrid(t, "abc\ndef\nghi")

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	s, err := New(ctx, g, KindTrie, WithLogger(logger), WithMetricsCollector(metrics))
	require.NoError(t, err)

	s.Count(ctx, []byte("aei"))
	s.Count(ctx, []byte("xyz"))

	_, err = New(ctx, g, KindHash, WithLogger(logger), WithMetricsCollector(metrics), WithWordLen(0))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BuildCount)
	assert.Equal(t, int64(1), stats.BuildErrors)
	assert.Equal(t, int64(2), stats.QueryCount)
	assert.Equal(t, int64(1), stats.QueryHits)
	assert.Equal(t, int64(1), stats.QueryOccurrences)

	out := buf.String()
	assert.Contains(t, out, `"msg":"build completed"`)
	assert.Contains(t, out, `"msg":"build failed"`)
	assert.Contains(t, out, `"msg":"query completed"`)
	assert.Contains(t, out, `"strategy":"trie"`)
}

func TestNilObservers(t *testing.T) {
	g := parseGrid(t, "ab\ncd")

	s, err := New(context.Background(), g, KindNaive, WithLogger(nil), WithMetricsCollector(nil), WithConcurrency(0))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count(context.Background(), []byte("ad")))
}
