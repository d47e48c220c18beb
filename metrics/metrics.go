// Package metrics exports engine activity as Prometheus metrics.
//
// Collector implements mcs.Observer, so installing it with mcs.WithObserver
// is all a caller needs:
//
//	c, err := metrics.New(prometheus.DefaultRegisterer)
//	cs, err := mcs.ConstructMCS(a, b, mcs.WithObserver(c))
//
// Exported series:
//   - mcs_walks_total: seed walks started
//   - mcs_comparisons_total{kind="node|edge", result="accepted|rejected"}
//   - mcs_walk_size: node+edge count produced per seed walk
//
// All methods are safe for concurrent use.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mcsgraph/mcs"
)

// ErrNilRegisterer is returned by New when reg is nil.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

const namespace = "mcs"

// Collector holds the engine metrics.
type Collector struct {
	walks       prometheus.Counter
	comparisons *prometheus.CounterVec
	walkSize    prometheus.Histogram
}

var _ mcs.Observer = (*Collector)(nil)

// Options configures New.
type Options struct {
	// SizeBuckets are the mcs_walk_size histogram buckets.
	SizeBuckets []float64
	// ConstLabels are attached to every series, e.g. {"pair": "serotonin-dopamine"}.
	ConstLabels prometheus.Labels
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns exponential size buckets 1, 2, 4, ... 512 and no constant labels.
func DefaultOptions() Options {
	return Options{SizeBuckets: prometheus.ExponentialBuckets(1, 2, 10)}
}

// WithSizeBuckets overrides the walk size buckets. Empty buckets are ignored.
func WithSizeBuckets(buckets ...float64) Option {
	return func(o *Options) {
		if len(buckets) > 0 {
			o.SizeBuckets = buckets
		}
	}
}

// WithConstLabels attaches labels to every series.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *Options) { o.ConstLabels = labels }
}

// New creates the collectors and registers them with reg. Registering twice
// on the same registry fails with a prometheus.AlreadyRegisteredError.
func New(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := &Collector{
		walks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "walks_total",
			Help:        "Seed walks started.",
			ConstLabels: o.ConstLabels,
		}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "comparisons_total",
			Help:        "Node and edge comparisons by outcome against the tolerance.",
			ConstLabels: o.ConstLabels,
		}, []string{"kind", "result"}),
		walkSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "walk_size",
			Help:        "Node plus edge count produced by one seed walk.",
			Buckets:     o.SizeBuckets,
			ConstLabels: o.ConstLabels,
		}),
	}
	cols := []prometheus.Collector{c.walks, c.comparisons, c.walkSize}
	for i, col := range cols {
		if err := reg.Register(col); err != nil {
			for _, done := range cols[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// WalkStarted implements mcs.Observer.
func (c *Collector) WalkStarted() { c.walks.Inc() }

// Compared implements mcs.Observer.
func (c *Collector) Compared(kind mcs.ElementKind, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	c.comparisons.WithLabelValues(kind.String(), result).Inc()
}

// WalkFinished implements mcs.Observer.
func (c *Collector) WalkFinished(size int) { c.walkSize.Observe(float64(size)) }
