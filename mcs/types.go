// Package mcs defines the result model, options, observer hooks and sentinel
// errors of the Maximum Common Subgraph engine.
package mcs

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

var (
	// ErrNilGraph is returned when either input graph is nil.
	ErrNilGraph = errors.New("mcs: graph is nil")

	// ErrDuplicateGraphID is returned when both graphs share an id. Node and edge
	// ids are namespaced by graph id, so equal ids would break visited tracking.
	ErrDuplicateGraphID = errors.New("mcs: graphs must have different ids")

	// ErrInvalidTolerance is returned when the least element similarity is outside (0,1].
	ErrInvalidTolerance = errors.New("mcs: tolerance must satisfy 0 < t <= 1")

	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("mcs: workers must be >= 1")

	// ErrUnreachableEdge reports an internal inconsistency: a directed edge was
	// reached without either endpoint having been visited. It indicates a defect
	// in the engine, never bad input.
	ErrUnreachableEdge = errors.New("mcs: edge reached without a visited endpoint")
)

// ElementKind distinguishes node comparisons from edge comparisons.
type ElementKind uint8

const (
	// NodeKind marks a node-vs-node comparison.
	NodeKind ElementKind = iota
	// EdgeKind marks an edge-vs-edge comparison.
	EdgeKind
)

// String implements fmt.Stringer.
func (k ElementKind) String() string {
	if k == EdgeKind {
		return "edge"
	}

	return "node"
}

// CommonNode pairs a node of graph A with a node of graph B.
// Points is the comparison Node1 vs Node2 recorded when the pair was matched.
type CommonNode[N any] struct {
	Node1  *core.Node[N]
	Node2  *core.Node[N]
	Points points.Points
}

// CommonEdge pairs an edge of graph A with an edge of graph B.
// Points is the comparison Edge1 vs Edge2 recorded when the pair was matched.
type CommonEdge[N, E any] struct {
	Edge1  *core.Edge[N, E]
	Edge2  *core.Edge[N, E]
	Points points.Points
}

// Observer receives engine events. With Workers > 1 the methods are called
// from several goroutines and must be safe for concurrent use.
type Observer interface {
	// WalkStarted is called once per seed pair before its walk begins.
	WalkStarted()
	// Compared is called after every node or edge comparison against the tolerance.
	Compared(kind ElementKind, accepted bool)
	// WalkFinished is called with the node+edge count a seed walk produced.
	WalkFinished(size int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) WalkStarted()               {}
func (NopObserver) Compared(ElementKind, bool) {}
func (NopObserver) WalkFinished(int)           {}

// Option configures ConstructMCS.
type Option func(*Options)

// Options holds the parameters of one ConstructMCS call.
type Options struct {
	// Ctx cancels the search; checked at every node step. Defaults to context.Background().
	Ctx context.Context

	// Tolerance is the least element similarity: a node or edge pair is only
	// matched when its score is >= Tolerance. Must satisfy 0 < Tolerance <= 1. Default 1.
	Tolerance float64

	// Workers is the number of seed walks evaluated concurrently. Default 1 (sequential).
	// The result does not depend on Workers.
	Workers int

	// Logger receives Debug entries for every comparison. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Observer receives walk and comparison events. Defaults to NopObserver.
	Observer Observer
}

// DefaultOptions returns Options with:
//   - Background context
//   - Tolerance 1 (exact element matches only)
//   - Workers 1
//   - no-op logger and observer
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Tolerance: 1,
		Workers:   1,
		Logger:    zap.NewNop(),
		Observer:  NopObserver{},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance sets the least element similarity, validated by ConstructMCS.
func WithTolerance(t float64) Option {
	return func(o *Options) { o.Tolerance = t }
}

// WithWorkers sets how many seed walks may run at once, validated by ConstructMCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger installs a zap logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs an event observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}
