// Package wordgrid counts occurrences of words in a 2-D byte grid.
//
// A word occurs wherever a run of cells along one of four directions (right,
// down, diagonal, anti-diagonal) spells it forward or reversed. Several
// interchangeable strategies answer the same question with different build
// and query costs, and all of them return exactly the brute-force count.
//
// # Quick Start
//
//	g, _ := grid.ParseBytes([]byte("abc\ndef\nghi"))
//
//	s, _ := wordgrid.New(ctx, g, wordgrid.KindTrie)
//	n := s.Count(ctx, []byte("aei")) // 1
//
// # Strategies
//
//   - KindNaive: scans every cell and direction per query. No build cost.
//   - KindHash: hashes every run up to WordLen bytes; longer words are
//     resolved from anchor sets and verified against the grid.
//   - KindTrie: a prefix trie over the longest run from every cell.
//   - KindLinear: four flattened buffers searched with substring search.
//
// # Concurrency
//
// Grids must not be modified while solvers built over them are in use. A
// Solver is read-only after New returns, so Count and CountAll are safe for
// concurrent use. BuildAll builds several strategies in parallel.
//
// # Observability
//
// Build and query events are reported to a Logger (log/slog) and a
// MetricsCollector. Both default to no-ops:
//
//	metrics := &wordgrid.BasicMetricsCollector{}
//	s, _ := wordgrid.New(ctx, g, wordgrid.KindHash,
//	    wordgrid.WithLogger(wordgrid.NewJSONLogger(slog.LevelDebug)),
//	    wordgrid.WithMetricsCollector(metrics),
//	)
//
// See package promcollector for a Prometheus-backed collector.
package wordgrid
