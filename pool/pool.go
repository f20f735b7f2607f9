// Package pool is a minimal object-pool abstraction used by tasklog's sink
// workers to recycle the small message envelopes (newEntry/done) sent on
// each sink's queue, bounding allocation under sustained high-throughput
// logging. NewDynamic wraps sync.Pool for unbounded, GC-friendly reuse;
// NewFixed caps the pool at a fixed capacity for callers that want a
// deterministic memory ceiling instead.
package pool

// Pool is an interface over a pool of reusable values.
type Pool interface {
	// Get returns a value from the pool, allocating a new one via the
	// pool's constructor if none is available. A fixed pool that has
	// already created its capacity of values waits for a Put instead.
	Get() interface{}

	// Put returns a value to the pool for reuse.
	Put(interface{})
}
