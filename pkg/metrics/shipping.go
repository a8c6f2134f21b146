package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ShippingMetrics records resolver outcomes for observability.
type ShippingMetrics struct {
	duration  *prometheus.HistogramVec
	quotes    *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
}

// NewShippingMetrics registers the shipping metrics on the provided registerer.
func NewShippingMetrics(reg prometheus.Registerer) *ShippingMetrics {
	if reg == nil {
		return &ShippingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipping_resolution_duration_seconds",
		Help:    "Duration of shipping quote resolutions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quotes_total",
		Help: "Completed shipping quote resolutions.",
	}, []string{"mode"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_fallbacks_total",
		Help: "Per-partition fallbacks during zone-aware resolution.",
	}, []string{"reason"})
	reg.MustRegister(duration, quotes, fallbacks)
	return &ShippingMetrics{
		duration:  duration,
		quotes:    quotes,
		fallbacks: fallbacks,
	}
}

// ObserveDuration records the resolution duration for the given mode.
func (m *ShippingMetrics) ObserveDuration(mode string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(mode)).Observe(duration.Seconds())
}

// IncQuote counts a completed resolution for the given mode.
func (m *ShippingMetrics) IncQuote(mode string) {
	if m == nil || m.quotes == nil {
		return
	}
	m.quotes.WithLabelValues(normalizeLabel(mode)).Inc()
}

// IncFallback counts a per-partition fallback by reason.
func (m *ShippingMetrics) IncFallback(reason string) {
	if m == nil || m.fallbacks == nil {
		return
	}
	m.fallbacks.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
