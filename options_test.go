package tasklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ygrebnov/tasklog/metrics"
)

func TestApplyOptions_Defaults(t *testing.T) {
	cfg, err := applyOptions(nil)
	require.NoError(t, err)
	require.Equal(t, defaultConfig().queueCapacity, cfg.queueCapacity)
}

func TestApplyOptions_OverridesApply(t *testing.T) {
	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	mp := metrics.NewNoopProvider()

	cfg, err := applyOptions([]Option{
		WithQueueCapacity(10),
		WithFixedEnvelopePool(5),
		WithMetrics(mp),
		WithHost("myhost"),
		WithClock(func() time.Time { return fixed }),
	})
	require.NoError(t, err)

	require.Equal(t, uint(10), cfg.queueCapacity)
	require.True(t, cfg.fixedEnvelopePool)
	require.Equal(t, uint(5), cfg.fixedEnvelopePoolSize)
	require.Equal(t, mp, cfg.metrics)
	require.Equal(t, "myhost", cfg.host)
	require.Equal(t, fixed, cfg.clock())
}

func TestApplyOptions_NilOptionErrors(t *testing.T) {
	_, err := applyOptions([]Option{nil})
	require.ErrorIs(t, err, ErrNilOption)
}

func TestApplyOptions_InvalidOverrideErrors(t *testing.T) {
	_, err := applyOptions([]Option{WithQueueCapacity(0)})
	require.ErrorIs(t, err, ErrInvalidQueueCapacity)
}
