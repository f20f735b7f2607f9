package tasklog

import "context"

// noneSink discards every entry; useful as a placeholder sink and as the
// sole sink Exit runs one-off tasks under.
type noneSink struct{}

// None returns a Sink that discards every entry. open and close are no-ops.
func None() Sink { return noneSink{} }

func (noneSink) open(context.Context) (sinkResource, error) { return nil, nil }
func (noneSink) write(sinkResource, Entry) error             { return nil }
func (noneSink) close(sinkResource)                          {}
func (noneSink) name() string                                { return "none" }
