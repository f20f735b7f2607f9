package tasklog

import "time"

// Pair is a single structured logging key/value, carried as plain text on
// both Key.context and Entry.Context.
type Pair struct {
	Name  string
	Value string
}

// P is a small constructor for Pair, for call sites that prefer it over the
// struct literal.
func P(name, value string) Pair {
	return Pair{Name: name, Value: value}
}

// Key is the immutable, ambient carrier threaded through every Task
// invocation: a namespace prefix, structured context pairs, the process's
// host and pid, and the fixed set of sink queues for the current Perform
// run. A Key is never mutated after construction; WithContext produces a new
// Key that extends one, it never changes the original in place.
type Key struct {
	namespace string
	context   []Pair
	host      string
	pid       int
	queues    []*sinkQueue
	clock     func() time.Time
}

// Namespace returns the accumulated namespace of this Key.
func (k Key) Namespace() string { return k.namespace }

// Context returns a copy of the accumulated context pairs of this Key.
func (k Key) Context() []Pair {
	out := make([]Pair, len(k.context))
	copy(out, k.context)
	return out
}

// Host returns the host captured at the owning Perform invocation.
func (k Key) Host() string { return k.host }

// Pid returns the process id captured at the owning Perform invocation.
func (k Key) Pid() int { return k.pid }

// extend returns a new Key whose namespace and context are extended by ns
// and pairs, appended after the receiver's own. host, pid and queues are
// carried over unchanged. The receiver is never modified: appendPairs always
// allocates a fresh backing slice so two sibling extensions of the same
// parent Key never alias each other's storage.
func (k Key) extend(ns string, pairs []Pair) Key {
	return Key{
		namespace: k.namespace + ns,
		context:   appendPairs(k.context, pairs),
		host:      k.host,
		pid:       k.pid,
		queues:    k.queues,
		clock:     k.clock,
	}
}

// now returns the current time via the Key's configured clock, defaulting to
// time.Now if none was set (e.g. a Key built directly in a test).
func (k Key) now() time.Time {
	if k.clock == nil {
		return time.Now()
	}
	return k.clock()
}

// appendPairs returns a new slice containing base followed by extra. It
// never mutates base's backing array, so a Key's context slice stays safe to
// share across sibling extensions.
func appendPairs(base, extra []Pair) []Pair {
	if len(extra) == 0 {
		if len(base) == 0 {
			return nil
		}
		out := make([]Pair, len(base))
		copy(out, base)
		return out
	}
	out := make([]Pair, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
