package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IsolatedRegistries(t *testing.T) {
	req := require.New(t)

	first := NewMetrics(prometheus.NewRegistry())
	second := NewMetrics(prometheus.NewRegistry())

	first.FeedDiscarded.WithLabelValues(ReasonSeen).Inc()
	first.FeedDiscarded.WithLabelValues(ReasonSeen).Inc()
	second.FeedDiscarded.WithLabelValues(ReasonCity).Inc()

	req.Equal(2.0, testutil.ToFloat64(first.FeedDiscarded.WithLabelValues(ReasonSeen)))
	req.Equal(0.0, testutil.ToFloat64(second.FeedDiscarded.WithLabelValues(ReasonSeen)))
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
