package tasklog

import "context"

// NoError is the domain error type every log call uses: logging is a
// side-channel (spec §7) and must never fail the caller's task, so there is
// no populated value of this type a log Task can ever return. Using a
// distinct type rather than plain error makes that guarantee visible at the
// call site's type signature instead of a convention to remember.
type NoError struct{}

// logTask builds the Task every severity-tagged entry point returns: it
// merges an Entry against the ambient Key and fans it out to every
// configured sink's queue using the non-blocking, drop-on-full policy
// (sinkQueue.enqueue). Fan-out to N sinks is N independent enqueues; partial
// delivery is acceptable and unreported to the caller, per spec §4.6.
func logTask(sev Severity, ns, msg string, pairs []Pair) Task[NoError, struct{}] {
	return taskFunc[NoError, struct{}](func(_ context.Context, k Key) outcome[NoError, struct{}] {
		e := mergeEntry(k, sev, ns, msg, pairs, k.now())
		for _, q := range k.queues {
			q.enqueue(e)
		}
		return ok[NoError, struct{}](struct{}{})
	})
}

// Debug logs a debug-severity entry.
func Debug(namespace, message string, pairs ...Pair) Task[NoError, struct{}] {
	return logTask(SeverityDebug, namespace, message, pairs)
}

// Info logs an info-severity entry.
func Info(namespace, message string, pairs ...Pair) Task[NoError, struct{}] {
	return logTask(SeverityInfo, namespace, message, pairs)
}

// Warning logs a warning-severity entry.
func Warning(namespace, message string, pairs ...Pair) Task[NoError, struct{}] {
	return logTask(SeverityWarning, namespace, message, pairs)
}

// Error logs an error-severity entry.
func Error(namespace, message string, pairs ...Pair) Task[NoError, struct{}] {
	return logTask(SeverityError, namespace, message, pairs)
}

// Alert logs an alert-severity entry.
func Alert(namespace, message string, pairs ...Pair) Task[NoError, struct{}] {
	return logTask(SeverityAlert, namespace, message, pairs)
}
