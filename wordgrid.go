package wordgrid

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/wordgrid/grid"
	"github.com/hupe1980/wordgrid/index"
	"github.com/hupe1980/wordgrid/index/hashmap"
	"github.com/hupe1980/wordgrid/index/linear"
	"github.com/hupe1980/wordgrid/index/naive"
	"github.com/hupe1980/wordgrid/index/trie"
	"golang.org/x/sync/errgroup"
)

// Kind names a counting strategy.
type Kind string

const (
	// KindNaive scans every cell and direction per query.
	KindNaive Kind = "naive"
	// KindHash uses the bounded-length hash substring index.
	KindHash Kind = "hash"
	// KindTrie uses the prefix trie over all directional runs.
	KindTrie Kind = "trie"
	// KindLinear uses substring search over flattened buffers.
	KindLinear Kind = "linear"
)

// Kinds lists every supported strategy.
var Kinds = []Kind{KindNaive, KindHash, KindTrie, KindLinear}

// ParseKind returns the Kind named by s, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", unknownKind(s)
}

// Solver answers occurrence queries with one strategy over a grid.
// The grid must not be modified while the Solver is in use.
type Solver struct {
	kind    Kind
	index   index.Index
	opts    options
	logger  *Logger
	elapsed time.Duration
}

// New builds a solver of the given kind over g.
func New(ctx context.Context, g *grid.Grid, kind Kind, optFns ...Option) (*Solver, error) {
	return newSolver(ctx, g, kind, applyOptions(optFns))
}

func newSolver(ctx context.Context, g *grid.Grid, kind Kind, opts options) (*Solver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := opts.logger.WithGrid(g.Rows(), g.Cols())

	start := time.Now()
	idx, err := buildIndex(g, kind, opts)
	elapsed := time.Since(start)
	err = translateError(kind, err)

	size := 0
	if se, ok := idx.(index.SizeEstimator); ok && err == nil {
		size = se.EstimateSize()
	}
	opts.metricsCollector.RecordBuild(kind, elapsed, err)
	logger.LogBuild(ctx, kind, elapsed, size, err)

	if err != nil {
		return nil, err
	}

	return &Solver{
		kind:    kind,
		index:   idx,
		opts:    opts,
		logger:  logger.WithKind(kind),
		elapsed: elapsed,
	}, nil
}

func buildIndex(g *grid.Grid, kind Kind, opts options) (index.Index, error) {
	switch kind {
	case KindNaive:
		return naive.New(g), nil
	case KindHash:
		return hashmap.New(g, func(o *hashmap.Options) {
			o.WordLen = opts.wordLen
		})
	case KindTrie:
		return trie.New(g, func(o *trie.Options) {
			o.MaxWordLen = opts.maxWordLen
			o.ChunkSize = opts.chunkSize
		})
	case KindLinear:
		return linear.New(g, func(o *linear.Options) {
			o.Delimiter = opts.delimiter
		})
	default:
		return nil, unknownKind(string(kind))
	}
}

// BuildAll builds one solver per kind in parallel. The solvers are returned
// in the order of kinds. The first build error cancels the remaining builds.
func BuildAll(ctx context.Context, g *grid.Grid, kinds []Kind, optFns ...Option) ([]*Solver, error) {
	opts := applyOptions(optFns)
	solvers := make([]*Solver, len(kinds))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.concurrency)

	for i, kind := range kinds {
		eg.Go(func() error {
			s, err := newSolver(ctx, g, kind, opts)
			if err != nil {
				return err
			}
			solvers[i] = s
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return solvers, nil
}

// Kind returns the strategy of the solver.
func (s *Solver) Kind() Kind { return s.kind }

// Name returns the name of the underlying index.
func (s *Solver) Name() string {
	if n, ok := s.index.(interface{ Name() string }); ok {
		return n.Name()
	}
	return string(s.kind)
}

// BuildTime returns how long construction took.
func (s *Solver) BuildTime() time.Duration { return s.elapsed }

// Index returns the underlying index.
func (s *Solver) Index() index.Index { return s.index }

// Count returns how many times word occurs in the grid, forward or
// reversed. The empty word occurs zero times.
func (s *Solver) Count(ctx context.Context, word []byte) int {
	start := time.Now()
	n := s.index.CountOccurrences(word)
	elapsed := time.Since(start)

	s.opts.metricsCollector.RecordQuery(s.kind, len(word), n, elapsed)
	s.logger.LogQuery(ctx, s.kind, len(word), n, elapsed)
	return n
}

// CountAll counts every word, spreading the work over up to the configured
// concurrency. counts[i] belongs to words[i]. It stops early and returns
// the context error if ctx is cancelled.
func (s *Solver) CountAll(ctx context.Context, words [][]byte) ([]int, error) {
	counts := make([]int, len(words))
	if len(words) == 0 {
		return counts, nil
	}

	workers := min(s.opts.concurrency, len(words))
	chunk := (len(words) + workers - 1) / workers

	eg, egCtx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(words); lo += chunk {
		hi := min(lo+chunk, len(words))
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				counts[i] = s.Count(egCtx, words[i])
			}
			return nil
		})
	}

	err := eg.Wait()
	s.logger.LogBatch(ctx, s.kind, len(words), err)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", s.kind, err)
	}
	return counts, nil
}

// EstimateSize returns the approximate memory footprint of the index in
// bytes. The grid is not included.
func (s *Solver) EstimateSize() int {
	if se, ok := s.index.(index.SizeEstimator); ok {
		return se.EstimateSize()
	}
	return 0
}
