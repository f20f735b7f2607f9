package metrics

import (
	"math"
	"sync"
	"sync/atomic"
)

// BasicProvider is the default in-memory Provider a Perform run uses when no
// WithMetrics option is supplied. It is concurrency-safe: every sink worker
// goroutine shares one instance. Instruments are created on demand by name
// (e.g. "tasklog_sink_dropped_total{sink=terminal}") and reused for the same
// name thereafter.
type BasicProvider struct {
	mu         sync.RWMutex
	counters   map[string]*BasicCounter
	updowns    map[string]*BasicUpDownCounter
	histograms map[string]*BasicHistogram
	meta       map[string]InstrumentConfig
}

// NewBasicProvider constructs a new BasicProvider.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{
		counters:   make(map[string]*BasicCounter),
		updowns:    make(map[string]*BasicUpDownCounter),
		histograms: make(map[string]*BasicHistogram),
		meta:       make(map[string]InstrumentConfig),
	}
}

// applyOptions builds InstrumentConfig from options.
func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Counter returns the monotonic counter instrument for name, creating it
// (and storing its InstrumentConfig for Describe) on first use.
func (p *BasicProvider) Counter(name string, opts ...InstrumentOption) Counter {
	p.mu.RLock()
	c, ok := p.counters[name]
	if ok {
		p.mu.RUnlock()
		return c
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok = p.counters[name]; ok {
		return c
	}
	cfg := applyOptions(opts)
	p.meta[name] = cfg
	c = &BasicCounter{}
	p.counters[name] = c
	return c
}

// UpDownCounter returns the up/down counter instrument for name (e.g. a
// sink's in-flight queue depth), creating it on first use.
func (p *BasicProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	p.mu.RLock()
	u, ok := p.updowns[name]
	if ok {
		p.mu.RUnlock()
		return u
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok = p.updowns[name]; ok {
		return u
	}
	cfg := applyOptions(opts)
	p.meta[name] = cfg
	u = &BasicUpDownCounter{}
	p.updowns[name] = u
	return u
}

// Histogram returns the histogram instrument for name (e.g. a sink's write
// latency), creating it on first use.
func (p *BasicProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.RLock()
	h, ok := p.histograms[name]
	if ok {
		p.mu.RUnlock()
		return h
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok = p.histograms[name]; ok {
		return h
	}
	cfg := applyOptions(opts)
	p.meta[name] = cfg
	h = &BasicHistogram{min: math.Inf(1), max: math.Inf(-1)}
	p.histograms[name] = h
	return h
}

// Describe returns the InstrumentConfig recorded for name the first time any
// of Counter/UpDownCounter/Histogram created it — the description, unit and
// attributes passed as InstrumentOptions at creation time. Useful for a
// debug endpoint that wants to label a BasicProvider's instruments without
// the caller having kept its own registry. ok is false for a name that was
// never created.
func (p *BasicProvider) Describe(name string) (cfg InstrumentConfig, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cfg, ok = p.meta[name]
	return cfg, ok
}

// BasicCounter is a thread-safe monotonic counter, the concrete type behind
// every Counter a BasicProvider hands out (e.g. a sink's dropped-entry
// total).
type BasicCounter struct {
	val atomic.Int64
}

// Add increments the counter by n.
func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Snapshot returns the counter's current value.
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicUpDownCounter is a thread-safe up/down counter, the concrete type
// behind every UpDownCounter a BasicProvider hands out (e.g. a sink queue's
// in-flight depth).
type BasicUpDownCounter struct {
	val atomic.Int64
}

// Add adds n (positive or negative) to the current value.
func (u *BasicUpDownCounter) Add(n int64) { u.val.Add(n) }

// Snapshot returns the up/down counter's current value.
func (u *BasicUpDownCounter) Snapshot() int64 { return u.val.Load() }

// BasicHistogram is a thread-safe histogram tracking count, sum, min and max
// of recorded measurements (e.g. a sink's per-entry write duration). It does
// not bucket samples; it's a lightweight aggregator, not a full distribution.
type BasicHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Record adds a measurement to the histogram.
func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	if h.count == 0 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.count++
	h.sum += v
	h.mu.Unlock()
}

// HistSnapshot is an immutable snapshot of a BasicHistogram's state.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Snapshot returns a copy of the histogram's state at the time of the call.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	count := h.count
	sum := h.sum
	min := h.min
	max := h.max
	h.mu.Unlock()
	mean := 0.0
	if count > 0 {
		mean = sum / float64(count)
	}
	return HistSnapshot{Count: count, Sum: sum, Min: min, Max: max, Mean: mean}
}
