package mcs

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcsgraph/core"
	"github.com/katalvlaran/mcsgraph/points"
)

var tracer = otel.Tracer("github.com/katalvlaran/mcsgraph/mcs")

// seed is one starting pair of a walk; idx is its position in enumeration order.
type seed[N any] struct {
	idx    int
	n1, n2 *core.Node[N]
}

// walker holds the read-only state shared by every step of a search.
type walker[N core.Comparer[N], E core.Comparer[E]] struct {
	ctx       context.Context
	graphA    *core.Graph[N, E]
	graphB    *core.Graph[N, E]
	tolerance float64
	log       *zap.Logger
	obs       Observer
}

// ConstructMCS computes an approximate maximum common subgraph of a and b.
//
// Every (node of a, node of b) pair seeds an independent walk that grows a
// common subgraph outward through matching edges and endpoints; the seed
// result with the highest PointsSum().Max() wins, earliest seed on ties.
// When nothing matches, the returned CommonSubgraph is Empty() and err is nil.
//
// Errors (all returned before any traversal):
//   - ErrNilGraph, ErrDuplicateGraphID, ErrInvalidTolerance, ErrInvalidWorkers.
//   - points.ErrInvalidScore (wrapped) when a self-comparison is invalid.
//
// During traversal:
//   - errors from Compare implementations, wrapped with the element ids;
//   - ctx.Err() on cancellation;
//   - ErrUnreachableEdge on an internal inconsistency.
//
// Complexity: exponential in node degree in the worst case (every expansion
// tries all incident edge pairs); the disjoint-branch filter keeps typical
// inputs small. Memory O(depth · degree²) per walk.
func ConstructMCS[N core.Comparer[N], E core.Comparer[E]](a, b *core.Graph[N, E], opts ...Option) (*CommonSubgraph[N, E], error) {
	// 1. Options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Preconditions
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	if a.ID() == b.ID() {
		return nil, fmt.Errorf("%w: both are %d", ErrDuplicateGraphID, a.ID())
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance <= 0 || o.Tolerance > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, o.Tolerance)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	maxA, err := a.MaxPoints()
	if err != nil {
		return nil, fmt.Errorf("mcs: graph %d: %w", a.ID(), err)
	}
	maxB, err := b.MaxPoints()
	if err != nil {
		return nil, fmt.Errorf("mcs: graph %d: %w", b.ID(), err)
	}

	// 3. Search
	ctx, span := tracer.Start(o.Ctx, "mcs.ConstructMCS", trace.WithAttributes(
		attribute.Int("graph_a.id", a.ID()),
		attribute.Int("graph_b.id", b.ID()),
		attribute.Int("graph_a.size", a.Size()),
		attribute.Int("graph_b.size", b.Size()),
		attribute.Float64("tolerance", o.Tolerance),
		attribute.Int("workers", o.Workers),
	))
	defer span.End()

	w := &walker[N, E]{
		ctx:       ctx,
		graphA:    a,
		graphB:    b,
		tolerance: o.Tolerance,
		log:       o.Logger,
		obs:       o.Observer,
	}
	results, err := w.walkAll(o.Workers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// 4. Final selection
	best := pickBest(results)
	span.SetAttributes(
		attribute.Int("result.nodes", len(best.nodes)),
		attribute.Int("result.edges", len(best.edges)),
	)

	return &CommonSubgraph[N, E]{found: best, graphA: a, graphB: b, maxA: maxA, maxB: maxB}, nil
}

// seeds enumerates the full cross product, A index major, B index minor.
func (w *walker[N, E]) seeds() []seed[N] {
	nodesA, nodesB := w.graphA.Nodes(), w.graphB.Nodes()
	out := make([]seed[N], 0, len(nodesA)*len(nodesB))
	for _, n1 := range nodesA {
		for _, n2 := range nodesB {
			out = append(out, seed[N]{idx: len(out), n1: n1, n2: n2})
		}
	}

	return out
}

// walkAll runs one walk per seed and returns the results indexed by seed.
// With workers > 1 walks run on an errgroup; the first error cancels the rest.
func (w *walker[N, E]) walkAll(workers int) ([]subgraph[N, E], error) {
	seeds := w.seeds()
	results := make([]subgraph[N, E], len(seeds))

	if workers == 1 {
		for _, s := range seeds {
			r, err := w.walk(s)
			if err != nil {
				return nil, err
			}
			results[s.idx] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(w.ctx)
	g.SetLimit(workers)
	pw := *w
	pw.ctx = gctx
	for _, s := range seeds {
		s := s
		g.Go(func() error {
			r, err := pw.walk(s)
			if err != nil {
				return err
			}
			results[s.idx] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// walk starts a fresh search from s with an empty visited set.
func (w *walker[N, E]) walk(s seed[N]) (subgraph[N, E], error) {
	w.obs.WalkStarted()
	if ce := w.log.Check(zap.DebugLevel, "walk"); ce != nil {
		ce.Write(zap.Int("seed", s.idx), zap.String("node1", s.n1.ID()), zap.String("node2", s.n2.ID()))
	}
	r, err := w.matchNodes(s.n1, s.n2, nil, subgraph[N, E]{})
	if err != nil {
		return subgraph[N, E]{}, err
	}
	w.obs.WalkFinished(r.size())

	return r, nil
}

// matchNodes adds (n1, n2) to acc when neither is visited and they score at
// least the tolerance, then grows the result through their incident edges.
func (w *walker[N, E]) matchNodes(n1, n2 *core.Node[N], seen *visited, acc subgraph[N, E]) (subgraph[N, E], error) {
	if err := w.ctx.Err(); err != nil {
		return acc, err
	}
	if seen.has(n1.ID()) || seen.has(n2.ID()) {
		w.debugRevisit(n1.ID(), n2.ID())
		return acc, nil
	}

	p, err := n1.Label().Compare(n2.Label())
	if err != nil {
		return acc, fmt.Errorf("mcs: compare nodes %s, %s: %w", n1.ID(), n2.ID(), err)
	}
	accepted := p.Score() >= w.tolerance
	w.obs.Compared(NodeKind, accepted)
	w.debugComparison(NodeKind, n1.ID(), n2.ID(), p, accepted, true)
	if !accepted {
		return acc, nil
	}

	return w.expandBranches(n1, n2, seen.with(n1.ID(), n2.ID()), acc.withNode(CommonNode[N]{Node1: n1, Node2: n2, Points: p}))
}

// expandBranches tries every pair of edges incident to n1 and n2, each from
// an empty accumulator, then merges a disjoint selection of the branches into acc.
func (w *walker[N, E]) expandBranches(n1, n2 *core.Node[N], seen *visited, acc subgraph[N, E]) (subgraph[N, E], error) {
	edges1 := w.graphA.IncidentEdges(n1)
	edges2 := w.graphB.IncidentEdges(n2)

	branches := make([]subgraph[N, E], 0, len(edges1)*len(edges2))
	for _, e1 := range edges1 {
		for _, e2 := range edges2 {
			br, err := w.matchEdges(e1, e2, seen, subgraph[N, E]{})
			if err != nil {
				return acc, err
			}
			if !br.empty() {
				branches = append(branches, br)
			}
		}
	}
	if len(branches) == 0 {
		return acc, nil
	}
	sortBranches(branches)

	return mergeBranches(acc, selectBestBranches(branches), seen), nil
}

// matchEdges adds (e1, e2) to acc when neither is visited and pointsFromEdges
// reaches the tolerance, then continues with the far endpoints.
func (w *walker[N, E]) matchEdges(e1, e2 *core.Edge[N, E], seen *visited, acc subgraph[N, E]) (subgraph[N, E], error) {
	if seen.has(e1.ID()) || seen.has(e2.ID()) {
		w.debugRevisit(e1.ID(), e2.ID())
		return acc, nil
	}

	p, directed, err := w.pointsFromEdges(e1, e2, seen)
	if err != nil {
		return acc, err
	}
	accepted := p.Score() >= w.tolerance
	w.obs.Compared(EdgeKind, accepted)
	w.debugComparison(EdgeKind, e1.ID(), e2.ID(), p, accepted, directed)
	if !accepted {
		return acc, nil
	}

	next1, next2 := nextNode(e1, seen), nextNode(e2, seen)

	return w.matchNodes(next1, next2, seen.with(e1.ID(), e2.ID()), acc.withEdge(CommonEdge[N, E]{Edge1: e1, Edge2: e2, Points: p}))
}

// pointsFromEdges returns e1 vs e2 only when their directions agree and the
// far endpoints already reach the tolerance; otherwise zero points. The second
// result reports whether the directions matched.
func (w *walker[N, E]) pointsFromEdges(e1, e2 *core.Edge[N, E], seen *visited) (points.Points, bool, error) {
	ok, err := directionsMatch(e1, e2, seen)
	if err != nil {
		return points.Zero(), false, err
	}
	if !ok {
		return points.Zero(), false, nil
	}

	next1, next2 := nextNode(e1, seen), nextNode(e2, seen)
	ahead, err := next1.Label().Compare(next2.Label())
	if err != nil {
		return points.Zero(), true, fmt.Errorf("mcs: compare nodes %s, %s: %w", next1.ID(), next2.ID(), err)
	}
	if ahead.Score() < w.tolerance {
		return points.Zero(), true, nil
	}

	p, err := e1.Label().Compare(e2.Label())
	if err != nil {
		return points.Zero(), true, fmt.Errorf("mcs: compare edges %s, %s: %w", e1.ID(), e2.ID(), err)
	}

	return p, true, nil
}

func (w *walker[N, E]) debugComparison(kind ElementKind, id1, id2 string, p points.Points, accepted, directed bool) {
	if ce := w.log.Check(zap.DebugLevel, "comparison"); ce != nil {
		ce.Write(
			zap.Stringer("kind", kind),
			zap.String("id1", id1),
			zap.String("id2", id2),
			zap.Stringer("points", p),
			zap.Bool("accepted", accepted),
			zap.Bool("directions_match", directed),
		)
	}
}

func (w *walker[N, E]) debugRevisit(id1, id2 string) {
	if ce := w.log.Check(zap.DebugLevel, "already visited"); ce != nil {
		ce.Write(zap.String("id1", id1), zap.String("id2", id2))
	}
}

// pickBest returns the non-empty result with the largest PointsSum().Max();
// the earliest seed wins ties. All results empty yields an empty subgraph.
func pickBest[N, E any](results []subgraph[N, E]) subgraph[N, E] {
	var (
		best  subgraph[N, E]
		bestM float64
		found bool
	)
	for _, r := range results {
		if r.empty() {
			continue
		}
		m := r.pointsSum().Max()
		if !found || m > bestM {
			best, bestM, found = r, m, true
		}
	}

	return best
}
