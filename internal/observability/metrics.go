package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// calculator service.
type Metrics struct {
	// Calculations by direction and outcome.
	// direction: headwind, tailwind, or "" for rejected requests.
	// outcome: ok, invalid_direction, invalid_input.
	Calculations *prometheus.CounterVec

	CalculationDuration prometheus.Histogram
	DiagramRenders      prometheus.Counter
	ServerUp            prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wgt_calc",
			Name:      "calculations_total",
			Help:      "Distance calculations by wind direction and outcome.",
		}, []string{"direction", "outcome"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wgt_calc",
			Name:      "calculation_duration_seconds",
			Help:      "Duration of a complete calculate request.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		DiagramRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wgt_calc",
			Name:      "diagram_renders_total",
			Help:      "Total SVG angle diagrams rendered.",
		}),
		ServerUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wgt_calc",
			Name:      "server_up",
			Help:      "1 while the HTTP server is serving, 0 after shutdown.",
		}),
	}

	prometheus.MustRegister(
		m.Calculations,
		m.CalculationDuration,
		m.DiagramRenders,
		m.ServerUp,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Calculations:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "wgt_calc", Name: "calculations_total"}, []string{"direction", "outcome"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "wgt_calc", Name: "calculation_duration_seconds"}),
		DiagramRenders:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "wgt_calc", Name: "diagram_renders_total"}),
		ServerUp:            prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "wgt_calc", Name: "server_up"}),
	}
}
