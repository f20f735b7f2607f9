package tasklog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSucceed(t *testing.T) {
	a, x, err := runGuarded(context.Background(), Key{}, Succeed[string, int](42))
	require.NoError(t, err)
	require.Equal(t, "", x)
	require.Equal(t, 42, a)
}

func TestFail(t *testing.T) {
	a, x, err := runGuarded(context.Background(), Key{}, Fail[string, int]("boom"))
	require.NoError(t, err)
	require.Equal(t, 0, a)
	require.Equal(t, "boom", x)
}

func TestRunGuarded_RecoversPanic(t *testing.T) {
	t1 := taskFunc[string, int](func(context.Context, Key) outcome[string, int] {
		panic("kaboom")
	})
	_, _, err := runGuarded(context.Background(), Key{}, t1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kaboom")
}

func TestMapTask_TransformsSuccessOnly(t *testing.T) {
	doubled := MapTask(func(n int) int { return n * 2 }, Succeed[string, int](21))
	a, x, err := runGuarded(context.Background(), Key{}, doubled)
	require.NoError(t, err)
	require.Equal(t, "", x)
	require.Equal(t, 42, a)

	untouched := MapTask(func(n int) int { return n * 2 }, Fail[string, int]("nope"))
	_, x, err = runGuarded(context.Background(), Key{}, untouched)
	require.NoError(t, err)
	require.Equal(t, "nope", x)
}

func TestAndThen_ChainsOnSuccess(t *testing.T) {
	chained := AndThen(func(n int) Task[string, int] {
		return Succeed[string, int](n + 1)
	}, Succeed[string, int](1))
	a, _, err := runGuarded(context.Background(), Key{}, chained)
	require.NoError(t, err)
	require.Equal(t, 2, a)
}

func TestAndThen_ShortCircuitsOnError(t *testing.T) {
	called := false
	chained := AndThen(func(int) Task[string, int] {
		called = true
		return Succeed[string, int](0)
	}, Fail[string, int]("x"))
	_, x, err := runGuarded(context.Background(), Key{}, chained)
	require.NoError(t, err)
	require.Equal(t, "x", x)
	require.False(t, called)
}

func TestOnError_HandlesDomainError(t *testing.T) {
	handled := OnError(func(x string) Task[int, int] {
		return Succeed[int, int](len(x))
	}, Fail[string, int]("oops"))
	a, x, err := runGuarded(context.Background(), Key{}, handled)
	require.NoError(t, err)
	require.Equal(t, 0, x)
	require.Equal(t, 4, a)
}

func TestMapError_TransformsErrorOnly(t *testing.T) {
	wrapped := MapError(func(x string) error { return errors.New("wrapped: " + x) }, Fail[string, int]("base"))
	_, x, err := runGuarded(context.Background(), Key{}, wrapped)
	require.NoError(t, err)
	require.EqualError(t, x, "wrapped: base")
}

func TestSequence_CollectsInOrder(t *testing.T) {
	ts := []Task[string, int]{Succeed[string, int](1), Succeed[string, int](2), Succeed[string, int](3)}
	a, _, err := runGuarded(context.Background(), Key{}, Sequence(ts))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, a)
}

func TestSequence_ShortCircuitsOnFirstError(t *testing.T) {
	ts := []Task[string, int]{Succeed[string, int](1), Fail[string, int]("stop"), Succeed[string, int](3)}
	_, x, err := runGuarded(context.Background(), Key{}, Sequence(ts))
	require.NoError(t, err)
	require.Equal(t, "stop", x)
}

// TestSequence_ShortCircuitsOnZeroValuedDomainError guards against detecting
// "no domain error" by comparing x against X's zero value: here X is string
// and the failing value is "", string's own zero value, so a zero-value
// comparison would wrongly treat Fail("") as a success and let Sequence run
// past it.
func TestSequence_ShortCircuitsOnZeroValuedDomainError(t *testing.T) {
	observed := false
	ts := []Task[string, int]{
		Succeed[string, int](1),
		Fail[string, int](""),
		MapTask(func(n int) int { observed = true; return n }, Succeed[string, int](2)),
	}
	a, x, err := runGuarded(context.Background(), Key{}, Sequence(ts))
	require.NoError(t, err)
	require.Equal(t, "", x)
	require.Nil(t, a)
	require.False(t, observed)
}

// TestAndThen_ShortCircuitsOnZeroValuedDomainError is AndThen's analogue of
// the Sequence regression above.
func TestAndThen_ShortCircuitsOnZeroValuedDomainError(t *testing.T) {
	called := false
	chained := AndThen(func(int) Task[string, int] {
		called = true
		return Succeed[string, int](0)
	}, Fail[string, int](""))
	_, x, err := runGuarded(context.Background(), Key{}, chained)
	require.NoError(t, err)
	require.Equal(t, "", x)
	require.False(t, called)
}
