package palettesearch

import (
	"log/slog"

	"github.com/hupe1980/palettesearch/index/annoy"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	indexOptions     []func(*annoy.Options)
}

// Option configures PaletteSearch constructor behavior.
type Option func(*options)

// WithIndexOptions forwards configuration to the underlying forest index.
// The embedding dimension is always derived from the provider and cannot
// be overridden here.
//
// Example:
//
//	ps := palettesearch.New(provider, palettesearch.WithIndexOptions(func(o *annoy.Options) {
//	    o.NumTrees = 25
//	    o.Seed = 42
//	}))
func WithIndexOptions(optFns ...func(*annoy.Options)) Option {
	return func(o *options) {
		o.indexOptions = append(o.indexOptions, optFns...)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &palettesearch.BasicMetricsCollector{}
//	ps := palettesearch.New(provider, palettesearch.WithMetricsCollector(metrics))
//	// ... use ps ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := palettesearch.NewJSONLogger(slog.LevelInfo)
//	ps := palettesearch.New(provider, palettesearch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
