package promcollector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/wordgrid"
	"github.com/hupe1980/wordgrid/grid"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBuild(t *testing.T) {
	c := New(prometheus.NewRegistry())

	c.RecordBuild(wordgrid.KindHash, time.Millisecond, nil)
	c.RecordBuild(wordgrid.KindHash, time.Millisecond, errors.New("boom"))
	c.RecordBuild(wordgrid.KindTrie, time.Millisecond, nil)

	assert.InDelta(t, 1, promtestutil.ToFloat64(c.BuildsTotal.WithLabelValues("hash", "success")), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(c.BuildsTotal.WithLabelValues("hash", "error")), 0)
	assert.InDelta(t, 1, promtestutil.ToFloat64(c.BuildsTotal.WithLabelValues("trie", "success")), 0)
	assert.Equal(t, 2, promtestutil.CollectAndCount(c.BuildDuration))
}

func TestWithSolver(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	c := New(reg)

	g, err := grid.ParseBytes([]byte("abc\ndef\nghi"))
	require.NoError(t, err)

	s, err := wordgrid.New(ctx, g, wordgrid.KindLinear, wordgrid.WithMetricsCollector(c))
	require.NoError(t, err)

	_, err = s.CountAll(ctx, [][]byte{[]byte("aei"), []byte("ghi"), []byte("zz")})
	require.NoError(t, err)

	assert.InDelta(t, 3, promtestutil.ToFloat64(c.QueriesTotal.WithLabelValues("linear")), 0)
	assert.InDelta(t, 2, promtestutil.ToFloat64(c.OccurrencesTotal.WithLabelValues("linear")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
