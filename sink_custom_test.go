package tasklog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingResource struct {
	written []Entry
	closed  bool
}

func TestCustomSink_OpenWriteClose(t *testing.T) {
	res := &recordingResource{}

	s := Custom[*recordingResource](
		Succeed[error, *recordingResource](res),
		func(r *recordingResource, e Entry) Task[error, struct{}] {
			r.written = append(r.written, e)
			return Succeed[error, struct{}](struct{}{})
		},
		func(r *recordingResource) Task[error, struct{}] {
			r.closed = true
			return Succeed[error, struct{}](struct{}{})
		},
	)
	require.Equal(t, "custom", s.name())

	opened, err := s.open(context.Background())
	require.NoError(t, err)

	e := Entry{Message: "hello"}
	require.NoError(t, s.write(opened, e))
	require.Equal(t, []Entry{e}, res.written)

	s.close(opened)
	require.True(t, res.closed)
}

func TestCustomSink_OpenFailurePropagates(t *testing.T) {
	s := Custom[*recordingResource](
		Fail[error, *recordingResource](errors.New("cannot open")),
		func(*recordingResource, Entry) Task[error, struct{}] { return Succeed[error, struct{}](struct{}{}) },
		func(*recordingResource) Task[error, struct{}] { return Succeed[error, struct{}](struct{}{}) },
	)

	_, err := s.open(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot open")
}

func TestCustomSink_WriteFailurePropagates(t *testing.T) {
	res := &recordingResource{}
	s := Custom[*recordingResource](
		Succeed[error, *recordingResource](res),
		func(*recordingResource, Entry) Task[error, struct{}] {
			return Fail[error, struct{}](errors.New("disk full"))
		},
		func(*recordingResource) Task[error, struct{}] { return Succeed[error, struct{}](struct{}{}) },
	)

	opened, err := s.open(context.Background())
	require.NoError(t, err)

	err = s.write(opened, Entry{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
