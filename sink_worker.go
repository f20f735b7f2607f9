package tasklog

import (
	"fmt"
	"sync"
	"time"

	"github.com/ygrebnov/tasklog/metrics"
	"github.com/ygrebnov/tasklog/pool"
)

// defaultQueueCapacity is the bounded FIFO capacity every sink queue gets
// unless overridden via WithQueueCapacity.
const defaultQueueCapacity = 4096

// message is the tagged-union queue element a sink's worker consumes: either
// a log entry to write, or the done sentinel that tells the worker to
// terminate. Envelopes are recycled through a pool.Pool (sinkQueue.envelope)
// rather than allocated fresh per log call.
type message struct {
	entry Entry
	done  bool
}

// sinkMetrics are the instruments recorded for one sink, resolving the
// spec's open design choice in favor of exposing a drop counter (and a
// little more) instead of leaving backpressure outcomes unobservable.
type sinkMetrics struct {
	dropped       metrics.Counter
	writeErrors   metrics.Counter
	writePanics   metrics.Counter
	queueDepth    metrics.UpDownCounter
	writeDuration metrics.Histogram
}

// droppedMetricName builds the per-sink counter name DroppedCount looks up
// by. BasicProvider keys its instruments by name alone (attributes are
// advisory metadata, not part of the lookup key), so per-sink
// differentiation has to live in the name itself rather than in an
// attribute.
func droppedMetricName(sinkName string) string {
	return fmt.Sprintf("tasklog_sink_dropped_total{sink=%s}", sinkName)
}

func newSinkMetrics(p metrics.Provider, sinkName string) *sinkMetrics {
	attrs := metrics.WithAttributes(map[string]string{"sink": sinkName})
	return &sinkMetrics{
		dropped:       p.Counter(droppedMetricName(sinkName), attrs),
		writeErrors:   p.Counter(fmt.Sprintf("tasklog_sink_write_errors_total{sink=%s}", sinkName), attrs),
		writePanics:   p.Counter(fmt.Sprintf("tasklog_sink_write_panics_total{sink=%s}", sinkName), attrs),
		queueDepth:    p.UpDownCounter(fmt.Sprintf("tasklog_sink_queue_depth{sink=%s}", sinkName), attrs),
		writeDuration: p.Histogram(fmt.Sprintf("tasklog_sink_write_duration_seconds{sink=%s}", sinkName), attrs, metrics.WithUnit("seconds")),
	}
}

// sinkQueue owns one sink's bounded channel and its dedicated worker
// goroutine. It is grounded directly on the teacher's dispatcher.go (the
// non-blocking select-based dispatch loop) and worker.go (panic-safe
// execution of a single unit of work), generalized from "dispatch a Task to
// a pooled worker" to "dispatch an Entry to a sink's write callback".
type sinkQueue struct {
	sink     Sink
	resource sinkResource
	ch       chan *message
	envelope pool.Pool
	metrics  *sinkMetrics
	wg       sync.WaitGroup
}

// startSinkWorker allocates the bounded queue and envelope pool for a sink
// whose resource the caller has already opened, and spawns the worker
// goroutine. A zero capacity falls back to defaultQueueCapacity and a nil
// envelope pool to a pool.NewDynamic one.
func startSinkWorker(sink Sink, resource sinkResource, capacity uint, envelope pool.Pool, mp metrics.Provider) *sinkQueue {
	if capacity == 0 {
		capacity = defaultQueueCapacity
	}
	if envelope == nil {
		envelope = pool.NewDynamic(func() interface{} { return &message{} })
	}

	q := &sinkQueue{
		sink:     sink,
		resource: resource,
		ch:       make(chan *message, capacity),
		envelope: envelope,
		metrics:  newSinkMetrics(mp, sink.name()),
	}

	q.wg.Add(1)
	go q.run()
	return q
}

// run is the worker loop: drain newEntry messages in order until done is
// received, then terminate. A write panic is recovered here so a misbehaving
// sink can never take the rest of the program down with it.
func (q *sinkQueue) run() {
	defer q.wg.Done()
	for msg := range q.ch {
		q.metrics.queueDepth.Add(-1)
		if msg.done {
			q.envelope.Put(msg)
			return
		}
		q.writeOne(msg.entry)
		q.envelope.Put(msg)
	}
}

func (q *sinkQueue) writeOne(e Entry) {
	defer func() {
		if r := recover(); r != nil {
			q.metrics.writePanics.Add(1)
		}
	}()

	start := time.Now()
	err := q.sink.write(q.resource, e)
	q.metrics.writeDuration.Record(time.Since(start).Seconds())
	if err != nil {
		q.metrics.writeErrors.Add(1)
	}
}

// enqueue offers e to the queue without blocking on the queue: if the queue
// is full the entry is silently dropped and the drop counter is incremented.
// Taking the envelope never waits with the default dynamic pool; with a
// fixed envelope pool (WithFixedEnvelopePool) it waits while all of that
// pool's envelopes are in use.
func (q *sinkQueue) enqueue(e Entry) {
	msg := q.envelope.Get().(*message)
	msg.entry = e
	msg.done = false

	select {
	case q.ch <- msg:
		q.metrics.queueDepth.Add(1)
	default:
		q.envelope.Put(msg)
		q.metrics.dropped.Add(1)
	}
}

// quit sends the done sentinel (blocking if necessary — the spec requires it
// eventually reach the worker), waits for the worker to terminate, then
// closes the sink's resource. It is safe to call at most once per sinkQueue;
// Perform guarantees that via its quit-thunk list.
func (q *sinkQueue) quit() {
	msg := q.envelope.Get().(*message)
	msg.done = true
	q.ch <- msg
	q.wg.Wait()
	q.sink.close(q.resource)
}
