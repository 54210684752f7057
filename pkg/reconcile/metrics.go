package reconcile

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "gomorph").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithMetricsNamespace sets the metrics namespace.
func WithMetricsNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithMetricsConstLabels sets constant labels for all metrics.
func WithMetricsConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithMetricsRegistry sets the Prometheus registry.
func WithMetricsRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "gomorph",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metricsObserver counts primitive mutations by op kind.
type metricsObserver struct {
	opsTotal *prometheus.CounterVec
}

// ObserveOp implements Observer.
func (m *metricsObserver) ObserveOp(op Op) {
	m.opsTotal.WithLabelValues(op.Kind.String()).Inc()
}

// Metrics are registered once per process; later calls reuse the first
// observer regardless of options.
var (
	globalMetrics     *metricsObserver
	globalMetricsOnce sync.Once
)

// PrometheusObserver returns an Observer that exports mutation counts as
// Prometheus metrics (gomorph_reconcile_ops_total{op=...}).
//
//	r := reconcile.New(doc, reconcile.WithObserver(reconcile.PrometheusObserver()))
func PrometheusObserver(opts ...MetricsOption) Observer {
	globalMetricsOnce.Do(func() {
		config := defaultMetricsConfig()
		for _, opt := range opts {
			opt(&config)
		}
		globalMetrics = &metricsObserver{
			opsTotal: promauto.With(config.Registry).NewCounterVec(
				prometheus.CounterOpts{
					Namespace:   config.Namespace,
					Subsystem:   "reconcile",
					Name:        "ops_total",
					Help:        "Primitive DOM mutations performed by the reconciler.",
					ConstLabels: config.ConstLabels,
				},
				[]string{"op"},
			),
		}
	})
	return globalMetrics
}
