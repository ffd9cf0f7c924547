package primecache

import (
	"log/slog"

	"github.com/dskrypa/primecache/codec"
)

type options struct {
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
}

// Option configures engine construction behavior.
type Option func(*options)

// WithCodec configures the compression codec used for cache payloads.
//
// If nil is passed, codec.Default (gzip) is used. The codec must match the
// one the cache blob was written with; each width's dedicated blob carries no
// format header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primecache.BasicMetricsCollector{}
//	engine := primecache.New[uint64](primecache.WithMetricsCollector(metrics))
//	// ... use engine ...
//	stats := metrics.GetStats()
//	fmt.Printf("Primality checks: %d, Avg latency: %dns\n", stats.PrimalityCount, stats.PrimalityAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:   codec.Default,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
