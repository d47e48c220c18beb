// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: The only mutable phase of a graph: Builder collects nodes and edges,
//       validates endpoints, and freezes them into an immutable Graph.
// Concurrency:
//   - Builder methods are guarded by a mutex and may be called from several goroutines.
//   - The built Graph is read-only and safe for concurrent readers without locks.

package core

import (
	"fmt"
	"strconv"
	"sync"
)

// Builder assembles a Graph. A Builder builds exactly once.
type Builder[N Comparer[N], E Comparer[E]] struct {
	mu    sync.Mutex
	id    int
	opts  graphOptions
	nodes []*Node[N]
	edges []*Edge[N, E]
	built bool
}

// NewBuilder returns an empty Builder for a graph with the given id.
// Ids only need to differ between the two graphs handed to one comparison.
//
// Errors:
//   - ErrNegativeGraphID if id < 0.
//
// Complexity: O(len(opts)).
func NewBuilder[N Comparer[N], E Comparer[E]](id int, opts ...GraphOption) (*Builder[N, E], error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeGraphID, id)
	}
	b := &Builder[N, E]{id: id}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b, nil
}

// NewTopologyBuilder is NewBuilder for graphs without labels.
func NewTopologyBuilder(id int, opts ...GraphOption) (*Builder[Unlabeled, Unlabeled], error) {
	return NewBuilder[Unlabeled, Unlabeled](id, opts...)
}

// AddNode appends a node carrying label. Its index is the number of nodes added before it.
// Complexity: O(1) amortized.
func (b *Builder[N, E]) AddNode(label N) (*Node[N], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, ErrAlreadyBuilt
	}
	idx := len(b.nodes)
	n := &Node[N]{
		graphID: b.id,
		index:   idx,
		id:      strconv.Itoa(b.id) + "." + strconv.Itoa(idx),
		label:   label,
	}
	b.nodes = append(b.nodes, n)

	return n, nil
}

// AddEdge appends an edge from→to with the given arrow kind and label.
//
// Errors:
//   - ErrMalformedEdge if an endpoint is nil, was not created by this Builder,
//     or arrow is not a known kind.
//   - ErrAlreadyBuilt after Build.
//
// Complexity: O(1) amortized.
func (b *Builder[N, E]) AddEdge(from, to *Node[N], arrow Arrow, label E) (*Edge[N, E], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if from == nil || to == nil {
		return nil, fmt.Errorf("%w: missing endpoint", ErrMalformedEdge)
	}
	if !b.owns(from) {
		return nil, fmt.Errorf("%w: node %s does not belong to graph %d", ErrMalformedEdge, from.id, b.id)
	}
	if !b.owns(to) {
		return nil, fmt.Errorf("%w: node %s does not belong to graph %d", ErrMalformedEdge, to.id, b.id)
	}
	if !arrow.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEdge, arrow)
	}
	e := &Edge[N, E]{
		from:  from,
		to:    to,
		arrow: arrow,
		id:    from.id + arrow.Symbol() + to.id,
		label: label,
	}
	b.edges = append(b.edges, e)

	return e, nil
}

// owns reports whether n was created by this builder. Caller holds b.mu.
func (b *Builder[N, E]) owns(n *Node[N]) bool {
	return n.graphID == b.id && n.index < len(b.nodes) && b.nodes[n.index] == n
}

// Build freezes the collected nodes and edges into a Graph and precomputes
// per-node incident edge lists.
//
// Complexity: O(V + E).
func (b *Builder[N, E]) Build() (*Graph[N, E], error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, ErrAlreadyBuilt
	}
	b.built = true

	g := &Graph[N, E]{
		id:       b.id,
		name:     b.opts.name,
		nodes:    b.nodes,
		edges:    b.edges,
		incident: make([][]*Edge[N, E], len(b.nodes)),
	}
	for _, e := range g.edges {
		g.incident[e.from.index] = append(g.incident[e.from.index], e)
		if !e.IsLoop() {
			g.incident[e.to.index] = append(g.incident[e.to.index], e)
		}
	}

	return g, nil
}
