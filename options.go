package wordgrid

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/wordgrid/index/hashmap"
	"github.com/hupe1980/wordgrid/index/linear"
	"github.com/hupe1980/wordgrid/index/trie"
)

type options struct {
	wordLen          int
	maxWordLen       int
	delimiter        byte
	chunkSize        int
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures solver construction and queries.
type Option func(*options)

// WithWordLen sets the longest run length the hash strategy indexes
// directly. Longer words are resolved through anchor verification.
// It must be at least 1.
func WithWordLen(n int) Option {
	return func(o *options) {
		o.wordLen = n
	}
}

// WithMaxWordLen caps the run length inserted into the trie strategy.
// Zero selects the longest run the grid can hold; words longer than a
// positive cap are reported as absent.
func WithMaxWordLen(n int) Option {
	return func(o *options) {
		o.maxWordLen = n
	}
}

// WithDelimiter sets the preferred line separator of the linear strategy.
// A delimiter that occurs in the grid is replaced by a free byte value.
func WithDelimiter(b byte) Option {
	return func(o *options) {
		o.delimiter = b
	}
}

// WithChunkSize sets the number of trie nodes allocated per arena chunk.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithConcurrency bounds the goroutines used by BuildAll and CountAll.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wordgrid.BasicMetricsCollector{}
//	s, _ := wordgrid.New(ctx, g, wordgrid.KindHash, wordgrid.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		wordLen:          hashmap.DefaultOptions.WordLen,
		maxWordLen:       trie.DefaultOptions.MaxWordLen,
		delimiter:        linear.DefaultOptions.Delimiter,
		chunkSize:        trie.DefaultOptions.ChunkSize,
		concurrency:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
