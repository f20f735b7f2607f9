package tasklog

import "context"

// sinkResource is the opaque handle a Sink's open returns and write/close
// operate on. Go has no existential types, so the source's "sink over an
// opaque resource type R" is modeled here as a closed set of constructors
// (None, Terminal, File, Custom) returning a common Sink interface, each
// free to stash whatever concrete resource it needs behind this any.
type sinkResource any

// Sink is an open/write/close triple over an opaque resource. open may block
// and runs once at Perform start; write is invoked by the sink's dedicated
// worker goroutine and may block on I/O; close runs after the worker has
// drained its queue and must be safe to call even if open never completed
// successfully for a sibling sink (Perform never calls close for a sink
// whose own open failed).
type Sink interface {
	open(ctx context.Context) (sinkResource, error)
	write(r sinkResource, e Entry) error
	close(r sinkResource)
	name() string
}
