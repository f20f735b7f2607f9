package tasklog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// fileResource is the opaque resource a File sink's open returns: an
// append-opened file wrapped in a line-buffered writer, guarded by a mutex.
// The mutex is a belt-and-braces measure (spec §5): the worker goroutine is
// this resource's only consumer, but write defends against a hypothetical
// future caller that shares the resource across goroutines, the way the
// teacher's lifecycle code liberally guards against concurrent reuse even in
// single-consumer paths.
type fileResource struct {
	f  *os.File
	bw *bufio.Writer
	mu sync.Mutex

	closeOnce sync.Once
}

// fileSink appends one rendered line per entry to path.
type fileSink struct {
	path string
	perm os.FileMode
}

// FileOption configures a File sink.
type FileOption func(*fileSink)

// WithFilePermissions overrides the file mode used when the log file does
// not already exist. Default: 0o644.
func WithFilePermissions(perm os.FileMode) FileOption {
	return func(f *fileSink) { f.perm = perm }
}

// File returns a Sink that appends one serialised line per entry to path.
// The file is opened once at Perform start and flushed/closed once at
// shutdown; entries within one Perform run are totally ordered in the file.
func File(path string, opts ...FileOption) Sink {
	s := &fileSink{path: path, perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *fileSink) open(context.Context) (sinkResource, error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, s.perm)
	if err != nil {
		return nil, fmt.Errorf("tasklog: opening file sink %q: %w", s.path, err)
	}
	return &fileResource{f: f, bw: bufio.NewWriter(f)}, nil
}

func (s *fileSink) write(r sinkResource, e Entry) error {
	fr := r.(*fileResource)
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if _, err := fr.bw.WriteString(renderFileLine(e)); err != nil {
		return err
	}
	return fr.bw.Flush()
}

func (s *fileSink) close(r sinkResource) {
	fr := r.(*fileResource)
	fr.closeOnce.Do(func() {
		fr.mu.Lock()
		defer fr.mu.Unlock()
		_ = fr.bw.Flush()
		_ = fr.f.Close()
	})
}

func (s *fileSink) name() string { return "file:" + s.path }

// renderFileLine serialises e as a single text line, terminated by '\n'.
// This is a real rendering, not the source's placeholder literal (spec §9).
func renderFileLine(e Entry) string {
	var b strings.Builder
	b.WriteString(e.Time.Format(time.RFC3339Nano))
	b.WriteString(" | ")
	b.WriteString(e.Severity.String())
	b.WriteString(" | ")
	b.WriteString(e.Namespace)
	b.WriteString(" | ")
	b.WriteString(e.Message)
	for _, p := range e.Context {
		b.WriteString(" | ")
		b.WriteString(p.Name)
		b.WriteString("=")
		b.WriteString(p.Value)
	}
	b.WriteString("\n")
	return b.String()
}
