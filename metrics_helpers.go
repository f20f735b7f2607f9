package tasklog

import "github.com/ygrebnov/tasklog/metrics"

// DroppedCount returns the number of entries dropped so far for the sink
// named sinkName, as recorded against provider p. It only resolves a value
// when p is itself a *metrics.BasicProvider, the default provider used
// when no WithMetrics option is supplied: a custom Provider has no general
// way to be read back from, so a caller using one is expected to query their
// own backend instead. Returns 0 for any other provider or an unknown sink
// name, never an error — this is a best-effort observability helper, not
// part of the domain error model.
func DroppedCount(p metrics.Provider, sinkName string) int64 {
	bp, ok := p.(*metrics.BasicProvider)
	if !ok {
		return 0
	}
	c, ok := bp.Counter(droppedMetricName(sinkName)).(*metrics.BasicCounter)
	if !ok {
		return 0
	}
	return c.Snapshot()
}
