package tasklog

import "errors"

// Namespace prefixes every sentinel error this package defines, matching the
// teacher's own errors.go convention.
const Namespace = "tasklog"

var (
	// ErrInvalidQueueCapacity is returned by Perform when an Option sets the
	// sinks' queue capacity, or the fixed envelope pool's size, to zero.
	ErrInvalidQueueCapacity = errors.New(Namespace + ": queue capacity must be greater than zero")

	// ErrNilSink is returned by Perform when the sinks slice contains a nil
	// entry.
	ErrNilSink = errors.New(Namespace + ": sinks slice contains a nil Sink")

	// ErrNilOption is returned by Perform when opts contains a nil Option.
	ErrNilOption = errors.New(Namespace + ": nil option")
)
