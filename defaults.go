package tasklog

import (
	"time"

	"github.com/ygrebnov/tasklog/metrics"
)

// config holds Perform's configuration, assembled from an Option slice. The
// shape mirrors the teacher's Config/defaultConfig/validateConfig trio
// exactly, generalized from worker-pool sizing knobs to this domain's knobs.
type config struct {
	// queueCapacity is the bounded FIFO capacity for every sink's queue.
	// Default: 4096.
	queueCapacity uint

	// fixedEnvelopePool, when true, backs every sink's message-envelope pool
	// with pool.NewFixed(fixedEnvelopePoolSize, ...) instead of the default
	// pool.NewDynamic. Default: false (dynamic, sync.Pool-backed).
	fixedEnvelopePool     bool
	fixedEnvelopePoolSize uint

	// metrics is the Provider instruments are recorded against. Default: a
	// fresh metrics.BasicProvider, so DroppedCount works without any extra
	// configuration.
	metrics metrics.Provider

	// host overrides the host captured via os.Hostname. Default: "" (use
	// os.Hostname).
	host string

	// clock overrides time.Now for log-entry timestamps. Default: time.Now.
	clock func() time.Time
}

// defaultConfig centralizes default values for config. Applied as the
// options builder's base, exactly like the teacher's defaultConfig.
func defaultConfig() config {
	return config{
		queueCapacity:     defaultQueueCapacity,
		fixedEnvelopePool: false,
		metrics:           metrics.NewBasicProvider(),
		host:              "",
		clock:             time.Now,
	}
}

// validateConfig performs lightweight invariant checks, mirroring the
// teacher's validateConfig.
func validateConfig(cfg *config) error {
	if cfg.queueCapacity == 0 {
		return ErrInvalidQueueCapacity
	}
	if cfg.fixedEnvelopePool && cfg.fixedEnvelopePoolSize == 0 {
		return ErrInvalidQueueCapacity
	}
	return nil
}
