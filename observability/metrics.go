// Package observability exposes the engine counters to Prometheus.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swipelab"

// Discard reasons of the feed.
const (
	ReasonMalformed  = "malformed"
	ReasonSeen       = "seen"
	ReasonCity       = "city"
	ReasonSuperseded = "superseded"
	ReasonRender     = "render"
)

type Metrics struct {
	FeedServed        *prometheus.CounterVec
	FeedDiscarded     *prometheus.CounterVec
	FeedEmpty         prometheus.Counter
	FeedLatency       prometheus.Histogram
	Swipes            *prometheus.CounterVec
	Matches           *prometheus.CounterVec
	Published         prometheus.Counter
	Retracted         prometheus.Counter
	InboxRouted       prometheus.Counter
	Notifications     *prometheus.CounterVec
	InflightRecovered prometheus.Counter
	ChannelDepth      *prometheus.GaugeVec
	ProcessRSS        prometheus.Gauge
	Goroutines        prometheus.Gauge
}

// NewMetrics registers every collector on reg. Tests give each case its own registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FeedServed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_served_total",
			Help:      "Profiles handed to a viewer, by source channel kind",
		}, []string{"source"}),
		FeedDiscarded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_discarded_total",
			Help:      "Distribution messages dropped by the feed, by reason",
		}, []string{"reason"}),
		FeedEmpty: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_empty_total",
			Help:      "Next calls that found nothing to show",
		}),
		FeedLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_next_duration_seconds",
			Help:      "Duration of a Next call",
			Buckets:   prometheus.DefBuckets,
		}),
		Swipes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swipes_total",
			Help:      "Swipe decisions recorded, by decision",
		}, []string{"decision"}),
		Matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swipe_outcomes_total",
			Help:      "Swipe outcomes",
		}, []string{"outcome"}),
		Published: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_published_total",
			Help:      "Profiles published to the shared channels",
		}),
		Retracted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_retracted_total",
			Help:      "Stale distribution messages removed on republish",
		}),
		InboxRouted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbox_routed_total",
			Help:      "Profiles pushed into a private inbox",
		}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications handled, by kind and status",
		}, []string{"kind", "status"}),
		InflightRecovered: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inflight_recovered_total",
			Help:      "Deliveries put back on their channel after a consumer vanished",
		}),
		ChannelDepth: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_depth",
			Help:      "Ready messages per shared channel",
		}, []string{"channel"}),
		ProcessRSS: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the engine",
		}),
		Goroutines: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goroutines",
			Help:      "Live goroutines",
		}),
	}
}
