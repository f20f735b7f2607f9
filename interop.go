package tasklog

import "context"

// Enter lifts a plain (ctx) -> (A, X, error) function into a Task that
// ignores the ambient Key and passes fn only the context.Context. It is the
// escape hatch for wrapping code that isn't itself built from Task
// combinators — an existing client call, a database query — into the Task
// world, the same role the teacher's run_all.go played for a one-off
// function run through a throwaway engine.
//
// fn's own return shape is the undiscriminated (A, X, error) triple; Enter
// cannot ask fn "did you mean to report a domain error" any other way than
// comparing the returned x against X's zero value. This is the one place in
// the package where that comparison is unavoidable — every combinator built
// on Task itself carries an explicit hasErr discriminant instead (see
// outcome in task.go) and never does this. A caller whose X's zero value is
// itself a meaningful error cannot express that error through Enter; it must
// build the equivalent Task directly with Fail instead.
func Enter[X any, A any](fn func(context.Context) (A, X, error)) Task[X, A] {
	return taskFunc[X, A](func(ctx context.Context, _ Key) outcome[X, A] {
		a, x, err := fn(ctx)
		if err != nil {
			return outcome[X, A]{err: err}
		}
		var zeroX X
		if !anyEqual(x, zeroX) {
			return failed[X, A](x)
		}
		return ok[X, A](a)
	})
}

// OnOk runs t; on success, it additionally runs logFn(a) under the same Key
// purely for its logging side effect, then returns t's own result unchanged.
// logFn's own (always-nil) error is discarded: logging never perturbs the
// outcome of the task it's attached to (spec §4.6).
func OnOk[X any, A any](logFn func(A) Task[NoError, struct{}], t Task[X, A]) Task[X, A] {
	return taskFunc[X, A](func(ctx context.Context, k Key) outcome[X, A] {
		out := runOutcome(ctx, k, t)
		if out.err != nil || out.hasErr {
			return out
		}
		_ = runOutcome(ctx, k, logFn(out.a))
		return out
	})
}

// OnErr runs t; on domain error, it additionally runs logFn(x) under the same
// Key purely for its logging side effect, then returns t's own result
// unchanged. A host-level error (panic) bypasses logFn entirely, the same way
// it bypasses OnError's handler.
func OnErr[X any, A any](logFn func(X) Task[NoError, struct{}], t Task[X, A]) Task[X, A] {
	return taskFunc[X, A](func(ctx context.Context, k Key) outcome[X, A] {
		out := runOutcome(ctx, k, t)
		if out.err != nil || !out.hasErr {
			return out
		}
		_ = runOutcome(ctx, k, logFn(out.x))
		return out
	})
}
