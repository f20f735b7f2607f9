package tasklog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ygrebnov/tasklog/metrics"
)

func TestEnter_LiftsPlainFunction(t *testing.T) {
	called := false
	lifted := Enter[string, int](func(ctx context.Context) (int, string, error) {
		called = true
		require.NotNil(t, ctx)
		return 7, "", nil
	})

	a, _, err := runGuarded(context.Background(), Key{}, lifted)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, 7, a)
}

func TestEnter_PropagatesHostError(t *testing.T) {
	lifted := Enter[string, int](func(context.Context) (int, string, error) {
		return 0, "", errors.New("host failure")
	})

	_, _, err := runGuarded(context.Background(), Key{}, lifted)
	require.Error(t, err)
}

func TestOnOk_LogsOnlyOnSuccessAndReturnsOriginalResult(t *testing.T) {
	sink := &recordingSink{}
	mp := metrics.NewBasicProvider()
	q := startSinkWorker(sink, nil, 8, nil, mp)
	k := Key{queues: []*sinkQueue{q}}

	logged := 0
	wrapped := OnOk(func(n int) Task[NoError, struct{}] {
		logged++
		return Info("ns", "ok")
	}, Succeed[string, int](9))

	a, x, err := runGuarded(context.Background(), k, wrapped)
	require.NoError(t, err)
	require.Equal(t, 9, a)
	require.Equal(t, "", x)
	require.Equal(t, 1, logged)

	q.quit()
	require.Len(t, sink.snapshot(), 1)
}

func TestOnOk_SkipsLogOnDomainError(t *testing.T) {
	logged := 0
	wrapped := OnOk(func(int) Task[NoError, struct{}] {
		logged++
		return Info("ns", "ok")
	}, Fail[string, int]("bad"))

	_, x, err := runGuarded(context.Background(), Key{}, wrapped)
	require.NoError(t, err)
	require.Equal(t, "bad", x)
	require.Equal(t, 0, logged)
}

func TestOnErr_LogsOnlyOnDomainErrorAndPreservesIt(t *testing.T) {
	sink := &recordingSink{}
	mp := metrics.NewBasicProvider()
	q := startSinkWorker(sink, nil, 8, nil, mp)
	k := Key{queues: []*sinkQueue{q}}

	logged := 0
	wrapped := OnErr(func(x string) Task[NoError, struct{}] {
		logged++
		return Error("ns", "failed: "+x)
	}, Fail[string, int]("bad"))

	_, x, err := runGuarded(context.Background(), k, wrapped)
	require.NoError(t, err)
	require.Equal(t, "bad", x)
	require.Equal(t, 1, logged)

	q.quit()
	entries := sink.snapshot()
	require.Len(t, entries, 1)
	require.Equal(t, "failed: bad", entries[0].Message)
}

func TestOnErr_SkipsLogOnSuccess(t *testing.T) {
	logged := 0
	wrapped := OnErr(func(string) Task[NoError, struct{}] {
		logged++
		return Info("ns", "unused")
	}, Succeed[string, int](1))

	a, _, err := runGuarded(context.Background(), Key{}, wrapped)
	require.NoError(t, err)
	require.Equal(t, 1, a)
	require.Equal(t, 0, logged)
}
