package tasklog

import "sync"

// quitThunk is one sink's full shutdown sequence: send the done sentinel,
// wait for the worker to drain, then close the resource. See sinkQueue.quit.
type quitThunk func()

// shutdownBracket runs a list of quitThunks in declaration order exactly
// once, regardless of how many times close is called. It is the generalized
// descendant of the teacher's lifecycleCoordinator (lifecycle.go): that type
// orchestrated one fixed shutdown sequence for a single Workers instance;
// this one orchestrates an arbitrary number of per-sink sequences, closing
// them in the order their sinks were declared, which is the ordering
// Perform's bracket discipline (spec §4.7) requires.
type shutdownBracket struct {
	thunks []quitThunk
	once   sync.Once
}

func newShutdownBracket() *shutdownBracket {
	return &shutdownBracket{}
}

// add appends one more sink's quit thunk, to run in order on close.
func (b *shutdownBracket) add(t quitThunk) {
	b.thunks = append(b.thunks, t)
}

// close runs every registered thunk, in order, exactly once.
func (b *shutdownBracket) close() {
	b.once.Do(func() {
		for _, t := range b.thunks {
			t()
		}
	})
}
