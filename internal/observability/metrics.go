package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for map renders and animation loads.
type Metrics struct {
	RendersTotal        prometheus.Counter
	PrimitivesPerRender prometheus.Histogram
	LayerToggles        *prometheus.CounterVec // labels: layer={land_use,climate,vegetation,roads,density}
	AnimationFetches    *prometheus.CounterVec // labels: outcome={success,http_error,transport_error,decode_error}
	RenderLogErrors     prometheus.Counter
}

func newCollectors() *Metrics {
	return &Metrics{
		RendersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "erbil_dashboard",
			Name:      "renders_total",
			Help:      "Total map renders composed.",
		}),
		PrimitivesPerRender: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "erbil_dashboard",
			Name:      "primitives_per_render",
			Help:      "Number of drawable primitives emitted per render.",
			Buckets:   []float64{1, 2, 4, 6, 8, 10, 12, 16},
		}),
		LayerToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "erbil_dashboard",
			Name:      "layer_enabled_total",
			Help:      "Renders with a given overlay enabled.",
		}, []string{"layer"}),
		AnimationFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "erbil_dashboard",
			Name:      "animation_fetches_total",
			Help:      "Loading animation fetches by outcome.",
		}, []string{"outcome"}),
		RenderLogErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "erbil_dashboard",
			Name:      "render_log_errors_total",
			Help:      "Failed render log writes.",
		}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(
		m.RendersTotal,
		m.PrimitivesPerRender,
		m.LayerToggles,
		m.AnimationFetches,
		m.RenderLogErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build
// as many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}
