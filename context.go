package tasklog

import "context"

// WithContext returns a Task that, when invoked with Key K, invokes inner
// with a derived Key K' whose namespace is K's namespace concatenated with
// ns (no separator is injected; callers control that) and whose context is
// K's context followed by pairs. host, pid and queues are carried over
// unchanged. The extension is dynamically scoped to inner's execution: every
// sub-task inner spawns (directly or via AndThen/Map*/OnError) observes K',
// and returning from inner never mutates K, so sibling WithContext blocks
// never see each other's extensions.
func WithContext[X any, A any](ns string, pairs []Pair, inner Task[X, A]) Task[X, A] {
	return taskFunc[X, A](func(ctx context.Context, k Key) outcome[X, A] {
		return runOutcome(ctx, k.extend(ns, pairs), inner)
	})
}
