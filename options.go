package tasklog

import (
	"time"

	"github.com/ygrebnov/tasklog/metrics"
)

// Option configures a Perform run. The functional-options shape mirrors the
// teacher's Option/configOptions pair exactly (options.go), generalized from
// worker-pool sizing knobs to this domain's knobs.
type Option func(*config)

// WithQueueCapacity overrides the bounded FIFO capacity for every sink's
// queue (default 4096). n must be greater than zero.
func WithQueueCapacity(n uint) Option {
	return func(c *config) { c.queueCapacity = n }
}

// WithFixedEnvelopePool backs every sink's message-envelope pool with a
// fixed-capacity pool.Pool (pool.NewFixed) instead of the default
// sync.Pool-backed one, giving a deterministic memory ceiling. Once capacity
// envelopes of a sink are in use, a log call waits until that sink's worker
// returns one.
func WithFixedEnvelopePool(capacity uint) Option {
	return func(c *config) {
		c.fixedEnvelopePool = true
		c.fixedEnvelopePoolSize = capacity
	}
}

// WithMetrics overrides the metrics.Provider instruments are recorded
// against. The default is a fresh metrics.BasicProvider.
func WithMetrics(p metrics.Provider) Option {
	return func(c *config) { c.metrics = p }
}

// WithHost overrides the host attached to the initial Key, instead of the
// value os.Hostname reports. Primarily useful in tests.
func WithHost(host string) Option {
	return func(c *config) { c.host = host }
}

// WithClock overrides the clock used to timestamp log entries, instead of
// time.Now. Primarily useful in tests that need deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.clock = now }
}

// applyOptions builds a config from defaultConfig plus opts, rejecting a nil
// option with ErrNilOption rather than panicking — unlike the teacher's
// NewOptions, which panics on a nil Option, Perform returns every failure
// through its own (A, X, error) result instead of panicking.
func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			return cfg, ErrNilOption
		}
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
