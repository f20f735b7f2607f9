// Package metrics is the observability seam tasklog's sink runtime records
// into: per-sink dropped-entry counters, in-flight queue depth, and write
// latency. It is deliberately decoupled from any particular metrics backend;
// BasicProvider is the lightweight in-memory default used when no provider is
// configured, and NoopProvider discards everything when passed explicitly.
package metrics

// Provider constructs the instruments a sink worker records its counters,
// queue-depth gauge, and write-latency histogram against. Implementations
// must be safe for concurrent use, since every sink worker goroutine shares
// the one Provider passed to Perform.
//
// Keep this interface minimal and stable. If a future sink-level metric needs
// a capability beyond Counter/UpDownCounter/Histogram, add a separate
// optional interface rather than expanding this one.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records a monotonically increasing count, such as a sink's
// dropped-entry total. Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records a value that moves up and down, such as a sink
// queue's current in-flight entry count. Methods must be safe for concurrent
// use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, such as a sink's
// per-entry write latency in seconds. Methods must be safe for concurrent
// use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata. It's advisory only:
// a Provider is free to ignore it, and BasicProvider keys instruments by name
// alone regardless of what Attributes carries.
type InstrumentConfig struct {
	Description string
	Unit        string
	// Attributes are static key-value pairs associated with the instrument
	// itself, e.g. {"sink": "terminal"}. Keep cardinality bounded.
	Attributes map[string]string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

// WithAttributes attaches static attributes to the instrument, e.g. the
// owning sink's name. Bounded cardinality only — this is metadata, not a
// per-call label set.
func WithAttributes(attrs map[string]string) InstrumentOption {
	return func(c *InstrumentConfig) {
		if len(attrs) == 0 {
			return
		}
		if c.Attributes == nil {
			c.Attributes = make(map[string]string, len(attrs))
		}
		for k, v := range attrs {
			c.Attributes[k] = v
		}
	}
}
