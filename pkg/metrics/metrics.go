// Package metrics exports binding-engine activity as Prometheus
// metrics. Install the observer once at startup:
//
//	bind.SetObserver(metrics.New())
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bindwire-dev/bindwire/pkg/bind"
)

// Config configures the metrics observer.
type Config struct {
	// Namespace is the metrics namespace (default: "bindwire").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for recomputation duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the metrics observer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the recomputation duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "bindwire",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Observer implements bind.Observer backed by Prometheus collectors.
type Observer struct {
	writes            *prometheus.CounterVec
	recomputations    *prometheus.CounterVec
	notifications     prometheus.Counter
	fanout            prometheus.Histogram
	recomputeDuration prometheus.Histogram
}

// New creates a metrics observer and registers its collectors.
func New(opts ...Option) *Observer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Observer{
		writes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "writes_total",
			Help:        "Node store attempts, by comparison-gate result.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"result"}),
		recomputations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "recomputations_total",
			Help:        "Expression recomputations, by trigger mode.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"mode"}),
		notifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_total",
			Help:        "Fan-out passes triggered by accepted writes.",
			ConstLabels: cfg.ConstLabels,
		}),
		fanout: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "fanout_dependents",
			Help:        "Dependents notified per fan-out pass.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		recomputeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "recompute_duration_seconds",
			Help:        "Time spent in user recomputation functions.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// NodeWritten implements bind.Observer.
func (o *Observer) NodeWritten(id uint64, changed bool) {
	if changed {
		o.writes.WithLabelValues("accepted").Inc()
	} else {
		o.writes.WithLabelValues("rejected").Inc()
	}
}

// NodeRecomputed implements bind.Observer.
func (o *Observer) NodeRecomputed(id uint64, deferred bool, d time.Duration) {
	if deferred {
		o.recomputations.WithLabelValues("deferred").Inc()
	} else {
		o.recomputations.WithLabelValues("eager").Inc()
	}
	o.recomputeDuration.Observe(d.Seconds())
}

// NodeNotified implements bind.Observer.
func (o *Observer) NodeNotified(id uint64, dependents int) {
	o.notifications.Inc()
	o.fanout.Observe(float64(dependents))
}

var _ bind.Observer = (*Observer)(nil)
