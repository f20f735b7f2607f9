package tasklog

import (
	"errors"
	"fmt"
)

// SinkMetaError exposes correlation metadata for a sink-open failure:
// which sink, by index and name, failed to open. Grounded on the teacher's
// TaskMetaError (error_tagging.go), renamed from task correlation to sink
// correlation.
type SinkMetaError interface {
	error
	Unwrap() error
	SinkIndex() int
	SinkName() string
}

type sinkTaggedError struct {
	err   error
	index int
	name  string
}

func newSinkTaggedError(err error, index int, name string) error {
	if err == nil {
		return nil
	}
	return &sinkTaggedError{err: err, index: index, name: name}
}

func (e *sinkTaggedError) Error() string { return e.err.Error() }
func (e *sinkTaggedError) Unwrap() error { return e.err }

func (e *sinkTaggedError) SinkIndex() int   { return e.index }
func (e *sinkTaggedError) SinkName() string { return e.name }

func (e *sinkTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "sink(index=%d,name=%s): %+v", e.index, e.name, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractSinkIndex returns the failing sink's index from err, if present.
func ExtractSinkIndex(err error) (int, bool) {
	var sme SinkMetaError
	if errors.As(err, &sme) {
		return sme.SinkIndex(), true
	}
	return 0, false
}

// ExtractSinkName returns the failing sink's name from err, if present.
func ExtractSinkName(err error) (string, bool) {
	var sme SinkMetaError
	if errors.As(err, &sme) {
		return sme.SinkName(), true
	}
	return "", false
}
