// v1
// internal/observability/metrics.go
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine's Prometheus collectors. Registration is
// left to the caller so tests and embedders can use private registries.
type Metrics struct {
	evaluationsTotal *prometheus.CounterVec
	evaluationErrors *prometheus.CounterVec
	evalDuration     *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	roomsAssessed    prometheus.Counter
}

// NewMetrics builds the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ieq_evaluations_total",
			Help: "Total count of compliance evaluations by standard.",
		}, []string{"standard"}),
		evaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ieq_evaluation_degraded_total",
			Help: "Total count of evaluations returning a degraded status by standard.",
		}, []string{"standard"}),
		evalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ieq_evaluation_duration_seconds",
			Help:    "Histogram of evaluation durations by level (room, building, portfolio).",
			Buckets: prometheus.DefBuckets,
		}, []string{"level"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ieq_cache_hits_total",
			Help: "Total result-cache hits observed.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ieq_cache_misses_total",
			Help: "Total result-cache misses observed.",
		}),
		roomsAssessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ieq_rooms_assessed_total",
			Help: "Total rooms assessed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.evaluationsTotal,
			m.evaluationErrors,
			m.evalDuration,
			m.cacheHits,
			m.cacheMisses,
			m.roomsAssessed,
		)
	}
	return m
}

// Evaluation records one standard evaluation and whether it degraded.
func (m *Metrics) Evaluation(standard string, degraded bool) {
	if m == nil {
		return
	}
	m.evaluationsTotal.WithLabelValues(standard).Inc()
	if degraded {
		m.evaluationErrors.WithLabelValues(standard).Inc()
	}
}

// ObserveDuration records the wall time of one aggregation level.
func (m *Metrics) ObserveDuration(level string, d time.Duration) {
	if m == nil {
		return
	}
	m.evalDuration.WithLabelValues(level).Observe(d.Seconds())
}

// RoomAssessed counts one finished room.
func (m *Metrics) RoomAssessed() {
	if m == nil {
		return
	}
	m.roomsAssessed.Inc()
}

// CacheHit implements cache.Observer.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

// CacheMiss implements cache.Observer.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
