package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	cyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serverset",
			Name:      "reconcile_cycles_total",
			Help:      "Completed reconciliation cycles by result.",
		},
		[]string{"result"},
	)

	cycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "serverset",
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation cycles.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 13),
		},
	)

	memberFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serverset",
			Name:      "member_failures_total",
			Help:      "Member znodes skipped during reconciliation, by reason.",
		},
		[]string{"reason"},
	)

	members = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "serverset",
			Name:      "members",
			Help:      "Members in the published view.",
		},
	)
)

func init() {
	Registry.MustRegister(cyclesTotal, cycleDuration, memberFailures, members)
}

// MetricsHandler exposes the registry for mounting on an HTTP server.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveCycle records one completed reconciliation cycle.
func ObserveCycle(d time.Duration, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}

	cyclesTotal.WithLabelValues(result).Inc()
	cycleDuration.Observe(d.Seconds())
}

// MemberFailure counts a member znode skipped for the given reason.
func MemberFailure(reason string) {
	memberFailures.WithLabelValues(reason).Inc()
}

// SetMembers records the size of the published view.
func SetMembers(n int) {
	members.Set(float64(n))
}
