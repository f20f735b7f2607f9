package tasklog

import "context"

// customSink adapts a user-supplied open/write/close Task triple into a
// Sink. open is run once via Exit with an empty Key; write and close are run
// per invocation the same way. write's error is returned to the sink worker,
// which counts and drops it; close's result is discarded. R is the caller's
// resource type, erased to sinkResource (any) once opened.
type customSink[R any] struct {
	openTask  Task[error, R]
	writeFn   func(R, Entry) Task[error, struct{}]
	closeFn   func(R) Task[error, struct{}]
	sinkLabel string
}

// Custom builds a Sink from user-supplied open/write/close tasks. open's
// failure is fatal: Perform aborts without starting the task and without
// leaving any sibling sink's resource dangling. Per-entry write failures are
// swallowed by the sink worker, matching every other sink.
func Custom[R any](open Task[error, R], write func(R, Entry) Task[error, struct{}], close func(R) Task[error, struct{}]) Sink {
	return &customSink[R]{openTask: open, writeFn: write, closeFn: close, sinkLabel: "custom"}
}

func (c *customSink[R]) open(ctx context.Context) (sinkResource, error) {
	r, domainErr, hostErr := Exit(ctx, c.openTask)
	if hostErr != nil {
		return nil, hostErr
	}
	if domainErr != nil {
		return nil, domainErr
	}
	return r, nil
}

func (c *customSink[R]) write(r sinkResource, e Entry) error {
	typed, _ := r.(R)
	_, domainErr, hostErr := Exit(context.Background(), c.writeFn(typed, e))
	if hostErr != nil {
		return hostErr
	}
	return domainErr
}

func (c *customSink[R]) close(r sinkResource) {
	typed, _ := r.(R)
	_, _, _ = Exit(context.Background(), c.closeFn(typed))
}

func (c *customSink[R]) name() string { return c.sinkLabel }
