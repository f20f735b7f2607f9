package pool

import "sync"

// NewDynamic is a dynamic-size pool of values constructed by newFn. It is a
// thin wrapper around sync.Pool, suitable for pooling log-entry message
// envelopes when there is no need to cap how many can exist at once.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
