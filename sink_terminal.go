package tasklog

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// terminalSink renders entries to a writer (stdout by default) with a
// severity-coloured header, using github.com/fatih/color rather than
// hand-rolled ANSI escapes.
type terminalSink struct {
	w io.Writer
}

// TerminalOption configures a Terminal sink.
type TerminalOption func(*terminalSink)

// WithTerminalWriter overrides the writer entries are rendered to; the
// default is os.Stdout. Tests use this to capture output deterministically.
func WithTerminalWriter(w io.Writer) TerminalOption {
	return func(t *terminalSink) { t.w = w }
}

// Terminal returns a Sink that renders entries to the terminal: a
// coloured "<Severity> <namespace>" header, the message, a "For context:"
// separator, then one "    name: value" line per context pair plus a
// synthetic time pair. open and close are no-ops.
func Terminal(opts ...TerminalOption) Sink {
	t := &terminalSink{w: os.Stdout}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SeverityDebug:
		return color.New(color.FgCyan)
	case SeverityInfo:
		return color.New(color.FgCyan)
	case SeverityWarning:
		return color.New(color.FgYellow)
	case SeverityError:
		return color.New(color.FgMagenta)
	case SeverityAlert:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

func (t *terminalSink) open(context.Context) (sinkResource, error) { return nil, nil }

func (t *terminalSink) write(_ sinkResource, e Entry) error {
	header := severityColor(e.Severity).Sprintf("%s %s", e.Severity, e.Namespace)
	if _, err := fmt.Fprintln(t.w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.w, e.Message); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.w, "For context:"); err != nil {
		return err
	}
	for _, p := range e.Context {
		if _, err := fmt.Fprintf(t.w, "    %s: %s\n", p.Name, p.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.w, "    time: %s\n", e.Time.Format(time.RFC3339Nano))
	return err
}

func (t *terminalSink) close(sinkResource) {}

func (t *terminalSink) name() string { return "terminal" }
