package tasklog

import (
	"context"
	"fmt"
)

// Task is a deferred, fallible computation parameterized over a domain error
// type X and a success type A. Given an ambient context.Context and Key, it
// yields either a success value of type A, a domain error of type X, or (on
// host-level failure — a panic recovered along the way) a plain error. At
// most one of the three return values is "populated"; which one depends on
// how the task completed.
//
// Task never owns resources itself; resources live in the sinks a Perform
// run opens. The Key is threaded through unchanged from combinator to
// combinator unless WithContext explicitly replaces it for a sub-task.
type Task[X any, A any] interface {
	run(ctx context.Context, k Key) outcome[X, A]
}

// outcome is Task's internal, explicitly discriminated result. Every
// combinator threads an outcome rather than a bare (A, X, error) triple so
// "did this task fail?" is answered by hasErr/err, never by comparing x
// against X's zero value — a domain error type whose zero value is itself a
// meaningful error (e.g. Fail[string, int]("")) must still short-circuit.
type outcome[X any, A any] struct {
	a      A
	x      X
	hasErr bool
	err    error
}

// ok builds a successful outcome.
func ok[X any, A any](a A) outcome[X, A] { return outcome[X, A]{a: a} }

// failed builds a domain-error outcome.
func failed[X any, A any](x X) outcome[X, A] { return outcome[X, A]{x: x, hasErr: true} }

// taskFunc adapts a plain function into a Task, mirroring the teacher's
// task-adapter trio (taskResultError / taskResult / taskError) generalized
// to an (X, A) pair instead of a single result type.
type taskFunc[X any, A any] func(ctx context.Context, k Key) outcome[X, A]

func (f taskFunc[X, A]) run(ctx context.Context, k Key) outcome[X, A] { return f(ctx, k) }

// Succeed builds a Task that always yields a, ignoring the Key.
func Succeed[X any, A any](a A) Task[X, A] {
	return taskFunc[X, A](func(context.Context, Key) outcome[X, A] {
		return ok[X, A](a)
	})
}

// Fail builds a Task that always yields domain error x.
func Fail[X any, A any](x X) Task[X, A] {
	return taskFunc[X, A](func(context.Context, Key) outcome[X, A] {
		return failed[X, A](x)
	})
}

// runOutcome invokes t, translating a host-level panic into a host-error
// outcome, the way the teacher's worker.execute translates a panicking task
// into a worker error via recover(). This is the primitive every combinator
// in this file composes on.
func runOutcome[X any, A any](ctx context.Context, k Key, t Task[X, A]) (out outcome[X, A]) {
	defer func() {
		if p := recover(); p != nil {
			out = outcome[X, A]{err: fmt.Errorf("tasklog: task execution panicked: %v", p)}
		}
	}()
	return t.run(ctx, k)
}

// runGuarded is the boundary between a Task's internal discriminated
// outcome and the (A, X, error) triple Perform, Exit and tests observe. It
// is purely a presentation conversion: the hasErr/err discrimination has
// already happened inside t by the time this runs.
func runGuarded[X any, A any](ctx context.Context, k Key, t Task[X, A]) (A, X, error) {
	out := runOutcome(ctx, k, t)
	var zeroA A
	var zeroX X
	if out.err != nil {
		return zeroA, zeroX, out.err
	}
	if out.hasErr {
		return zeroA, out.x, nil
	}
	return out.a, zeroX, nil
}

// MapTask transforms a successful result of t with f, leaving errors (domain
// or host) untouched.
func MapTask[X any, A any, B any](f func(A) B, t Task[X, A]) Task[X, B] {
	return taskFunc[X, B](func(ctx context.Context, k Key) outcome[X, B] {
		out := runOutcome(ctx, k, t)
		if out.err != nil {
			return outcome[X, B]{err: out.err}
		}
		if out.hasErr {
			return failed[X, B](out.x)
		}
		return ok[X, B](f(out.a))
	})
}

// AndThen runs t; on success it runs f(a) under the same Key; on domain or
// host error it propagates without invoking f.
func AndThen[X any, A any, B any](f func(A) Task[X, B], t Task[X, A]) Task[X, B] {
	return taskFunc[X, B](func(ctx context.Context, k Key) outcome[X, B] {
		out := runOutcome(ctx, k, t)
		if out.err != nil {
			return outcome[X, B]{err: out.err}
		}
		if out.hasErr {
			return failed[X, B](out.x)
		}
		return runOutcome(ctx, k, f(out.a))
	})
}

// OnError runs t; on domain error it runs f(x) under the same Key, changing
// the error type from X to Y; success is left untouched apart from the type
// change.
func OnError[X any, Y any, A any](f func(X) Task[Y, A], t Task[X, A]) Task[Y, A] {
	return taskFunc[Y, A](func(ctx context.Context, k Key) outcome[Y, A] {
		out := runOutcome(ctx, k, t)
		if out.err != nil {
			return outcome[Y, A]{err: out.err}
		}
		if !out.hasErr {
			return ok[Y, A](out.a)
		}
		return runOutcome(ctx, k, f(out.x))
	})
}

// MapError transforms a domain error of t with f, leaving success untouched.
func MapError[X any, Y any, A any](f func(X) Y, t Task[X, A]) Task[Y, A] {
	return OnError(func(x X) Task[Y, A] {
		return Fail[Y, A](f(x))
	}, t)
}

// Sequence runs ts in order, collecting their results, and short-circuits on
// the first domain or host error: a right-fold with cons that preserves
// input order.
func Sequence[X any, A any](ts []Task[X, A]) Task[X, []A] {
	return taskFunc[X, []A](func(ctx context.Context, k Key) outcome[X, []A] {
		out := make([]A, 0, len(ts))
		for _, t := range ts {
			o := runOutcome(ctx, k, t)
			if o.err != nil {
				return outcome[X, []A]{err: o.err}
			}
			if o.hasErr {
				return failed[X, []A](o.x)
			}
			out = append(out, o.a)
		}
		return ok[X, []A](out)
	})
}
