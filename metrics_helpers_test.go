package tasklog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ygrebnov/tasklog/metrics"
)

func TestDroppedCount_ZeroForUnknownProvider(t *testing.T) {
	require.Equal(t, int64(0), DroppedCount(metrics.NewNoopProvider(), "anything"))
}

func TestDroppedCount_ReadsBasicProviderCounter(t *testing.T) {
	mp := metrics.NewBasicProvider()
	mp.Counter(droppedMetricName("terminal")).Add(3)

	require.Equal(t, int64(3), DroppedCount(mp, "terminal"))
	require.Equal(t, int64(0), DroppedCount(mp, "file:/tmp/x"))
}
