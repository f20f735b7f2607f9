package tasklog

import "context"

// Map2 combines two independent tasks left-to-right, short-circuiting on the
// first domain or host error. Per the spec, the reference semantics are
// sequential; see Map2Par for the opt-in parallel variant.
func Map2[X any, A, B, R any](f func(A, B) R, ta Task[X, A], tb Task[X, B]) Task[X, R] {
	return taskFunc[X, R](func(ctx context.Context, k Key) outcome[X, R] {
		oa := runOutcome(ctx, k, ta)
		if oa.err != nil {
			return outcome[X, R]{err: oa.err}
		}
		if oa.hasErr {
			return failed[X, R](oa.x)
		}
		ob := runOutcome(ctx, k, tb)
		if ob.err != nil {
			return outcome[X, R]{err: ob.err}
		}
		if ob.hasErr {
			return failed[X, R](ob.x)
		}
		return ok[X, R](f(oa.a, ob.a))
	})
}

// Map3 combines three independent tasks left-to-right, short-circuiting on
// the first error.
func Map3[X any, A, B, C, R any](f func(A, B, C) R, ta Task[X, A], tb Task[X, B], tc Task[X, C]) Task[X, R] {
	return Map2(func(ab pair2[A, B], c C) R {
		return f(ab.a, ab.b, c)
	}, Map2(newPair2[A, B], ta, tb), tc)
}

// Map4 combines four independent tasks left-to-right, short-circuiting on
// the first error.
func Map4[X any, A, B, C, D, R any](
	f func(A, B, C, D) R, ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D],
) Task[X, R] {
	return Map2(func(ab pair2[A, B], cd pair2[C, D]) R {
		return f(ab.a, ab.b, cd.a, cd.b)
	}, Map2(newPair2[A, B], ta, tb), Map2(newPair2[C, D], tc, td))
}

// Map5 combines five independent tasks left-to-right, short-circuiting on
// the first error.
func Map5[X any, A, B, C, D, E, R any](
	f func(A, B, C, D, E) R, ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D], te Task[X, E],
) Task[X, R] {
	return Map2(func(abcd pair4[A, B, C, D], e E) R {
		return f(abcd.a, abcd.b, abcd.c, abcd.d, e)
	}, Map4(newPair4[A, B, C, D], ta, tb, tc, td), te)
}

// Map6 combines six independent tasks left-to-right, short-circuiting on the
// first error.
func Map6[X any, A, B, C, D, E, F, R any](
	f func(A, B, C, D, E, F) R,
	ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D], te Task[X, E], tf Task[X, F],
) Task[X, R] {
	return Map2(func(abcd pair4[A, B, C, D], ef pair2[E, F]) R {
		return f(abcd.a, abcd.b, abcd.c, abcd.d, ef.a, ef.b)
	}, Map4(newPair4[A, B, C, D], ta, tb, tc, td), Map2(newPair2[E, F], te, tf))
}

type pair2[A, B any] struct {
	a A
	b B
}

func newPair2[A, B any](a A, b B) pair2[A, B] { return pair2[A, B]{a: a, b: b} }

type pair4[A, B, C, D any] struct {
	a A
	b B
	c C
	d D
}

func newPair4[A, B, C, D any](a A, b B, c C, d D) pair4[A, B, C, D] {
	return pair4[A, B, C, D]{a: a, b: b, c: c, d: d}
}

// runPar runs t on its own goroutine and sends its discriminated outcome on
// the returned channel — the building block every Map*Par variant shares.
func runPar[X any, A any](ctx context.Context, k Key, t Task[X, A]) <-chan outcome[X, A] {
	out := make(chan outcome[X, A], 1)
	go func() {
		out <- runOutcome(ctx, k, t)
	}()
	return out
}

// Map2Par is Map2's parallel sibling: both tasks start concurrently, but the
// observable short-circuit behavior is preserved — if the leftmost (ta)
// fails, its error is what Map2Par returns, exactly as the sequential
// reference semantics require.
func Map2Par[X any, A, B, R any](f func(A, B) R, ta Task[X, A], tb Task[X, B]) Task[X, R] {
	return taskFunc[X, R](func(ctx context.Context, k Key) outcome[X, R] {
		ca := runPar(ctx, k, ta)
		cb := runPar(ctx, k, tb)
		oa := <-ca
		ob := <-cb
		if oa.err != nil {
			return outcome[X, R]{err: oa.err}
		}
		if oa.hasErr {
			return failed[X, R](oa.x)
		}
		if ob.err != nil {
			return outcome[X, R]{err: ob.err}
		}
		if ob.hasErr {
			return failed[X, R](ob.x)
		}
		return ok[X, R](f(oa.a, ob.a))
	})
}

// Map3Par is Map3's parallel sibling; see Map2Par.
func Map3Par[X any, A, B, C, R any](f func(A, B, C) R, ta Task[X, A], tb Task[X, B], tc Task[X, C]) Task[X, R] {
	return Map2Par(func(ab pair2[A, B], c C) R {
		return f(ab.a, ab.b, c)
	}, Map2Par(newPair2[A, B], ta, tb), tc)
}

// Map4Par is Map4's parallel sibling; see Map2Par.
func Map4Par[X any, A, B, C, D, R any](
	f func(A, B, C, D) R, ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D],
) Task[X, R] {
	return Map2Par(func(ab pair2[A, B], cd pair2[C, D]) R {
		return f(ab.a, ab.b, cd.a, cd.b)
	}, Map2Par(newPair2[A, B], ta, tb), Map2Par(newPair2[C, D], tc, td))
}

// Map5Par is Map5's parallel sibling; see Map2Par.
func Map5Par[X any, A, B, C, D, E, R any](
	f func(A, B, C, D, E) R, ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D], te Task[X, E],
) Task[X, R] {
	return Map2Par(func(abcd pair4[A, B, C, D], e E) R {
		return f(abcd.a, abcd.b, abcd.c, abcd.d, e)
	}, Map4Par(newPair4[A, B, C, D], ta, tb, tc, td), te)
}

// Map6Par is Map6's parallel sibling; see Map2Par.
func Map6Par[X any, A, B, C, D, E, F, R any](
	f func(A, B, C, D, E, F) R,
	ta Task[X, A], tb Task[X, B], tc Task[X, C], td Task[X, D], te Task[X, E], tf Task[X, F],
) Task[X, R] {
	return Map2Par(func(abcd pair4[A, B, C, D], ef pair2[E, F]) R {
		return f(abcd.a, abcd.b, abcd.c, abcd.d, ef.a, ef.b)
	}, Map4Par(newPair4[A, B, C, D], ta, tb, tc, td), Map2Par(newPair2[E, F], te, tf))
}
