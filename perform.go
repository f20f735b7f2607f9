package tasklog

import (
	"context"
	"os"

	"github.com/ygrebnov/tasklog/pool"
)

// Perform is the only way to actually run a Task. It opens every sink in
// order, builds the initial Key, runs task under it, and guarantees every
// sink's shutdown sequence runs exactly once before returning — on success,
// on a propagated domain error, or on a recovered host panic. Close order is
// declaration order of sinks, exactly as spec §4.7 requires.
//
// The bracket discipline (acquire every sink → run → release every sink) is
// grounded directly on the teacher's lifecycleCoordinator (lifecycle.go);
// run_all.go's "spin up a throwaway engine, run the work, collect outputs"
// pattern is what Exit generalizes.
func Perform[X any, A any](ctx context.Context, sinks []Sink, task Task[X, A], opts ...Option) (A, X, error) {
	var zeroA A
	var zeroX X

	cfg, err := applyOptions(opts)
	if err != nil {
		return zeroA, zeroX, err
	}

	for i, s := range sinks {
		if s == nil {
			return zeroA, zeroX, newSinkTaggedError(ErrNilSink, i, "")
		}
	}

	host := cfg.host
	if host == "" {
		if h, err := os.Hostname(); err == nil {
			host = h
		}
	}
	pid := os.Getpid()

	bracket := newShutdownBracket()
	queues := make([]*sinkQueue, 0, len(sinks))

	for i, s := range sinks {
		resource, err := s.open(ctx)
		if err != nil {
			// Unwind every sink opened so far, in the same declaration order
			// step 6 closes them in, before surfacing the failure — no partial
			// sink state leaks.
			bracket.close()
			return zeroA, zeroX, newSinkTaggedError(err, i, s.name())
		}

		var envelopePool pool.Pool
		if cfg.fixedEnvelopePool {
			envelopePool = pool.NewFixed(cfg.fixedEnvelopePoolSize, func() interface{} { return &message{} })
		}

		q := startSinkWorker(s, resource, cfg.queueCapacity, envelopePool, cfg.metrics)
		queues = append(queues, q)
		bracket.add(q.quit)
	}
	defer bracket.close()

	key := Key{host: host, pid: pid, queues: queues, clock: cfg.clock}

	a, x, runErr := runGuarded(ctx, key, task)
	return a, x, runErr
}

// Exit runs t under a driver with a single None sink: the building block
// Custom uses to execute sink tasks without standing up a full runtime, also
// exported for callers who want to run a one-off Task outside of a full
// Perform invocation.
func Exit[X any, A any](ctx context.Context, t Task[X, A]) (A, X, error) {
	return Perform[X, A](ctx, []Sink{None()}, t)
}
