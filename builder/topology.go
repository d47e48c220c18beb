// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Pair is an edge between two node indexes, From first.
type Pair struct{ From, To int }

// Topology is an unlabeled graph shape: Order nodes numbered 0..Order-1 and
// the edges between them in emission order.
type Topology struct {
	order int
	edges []Pair
}

// Order returns the node count.
func (t Topology) Order() int { return t.order }

// Edges returns a copy of the edge list.
func (t Topology) Edges() []Pair {
	out := make([]Pair, len(t.edges))
	copy(out, t.edges)

	return out
}

const (
	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minWheelNodes  = 4
	minGridDim     = 1
	minSparseNodes = 1
)

// Path returns P_n: edges i → i+1 for i = 0..n-2 (n ≥ 2).
// Complexity: O(n).
func Path(n int) (Topology, error) {
	if n < minPathNodes {
		return Topology{}, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	t := Topology{order: n, edges: make([]Pair, 0, n-1)}
	for i := 0; i+1 < n; i++ {
		t.edges = append(t.edges, Pair{i, i + 1})
	}

	return t, nil
}

// Cycle returns C_n: edges i → (i+1) mod n for i = 0..n-1 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) (Topology, error) {
	if n < minCycleNodes {
		return Topology{}, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	t := Topology{order: n, edges: make([]Pair, 0, n)}
	for i := 0; i < n; i++ {
		t.edges = append(t.edges, Pair{i, (i + 1) % n})
	}

	return t, nil
}

// Star returns a center 0 with spokes 0 → i for i = 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Star(n int) (Topology, error) {
	if n < minStarNodes {
		return Topology{}, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	t := Topology{order: n, edges: make([]Pair, 0, n-1)}
	for i := 1; i < n; i++ {
		t.edges = append(t.edges, Pair{0, i})
	}

	return t, nil
}

// Wheel returns a rim cycle over 1..n-1 followed by spokes 0 → i (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) (Topology, error) {
	if n < minWheelNodes {
		return Topology{}, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}
	rim := n - 1
	t := Topology{order: n, edges: make([]Pair, 0, 2*rim)}
	for i := 0; i < rim; i++ {
		t.edges = append(t.edges, Pair{1 + i, 1 + (i+1)%rim})
	}
	for i := 1; i < n; i++ {
		t.edges = append(t.edges, Pair{0, i})
	}

	return t, nil
}

// Complete returns K_n: edges i → j for every i < j, i ascending (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) (Topology, error) {
	if n < 1 {
		return Topology{}, fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	t := Topology{order: n, edges: make([]Pair, 0, n*(n-1)/2)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t.edges = append(t.edges, Pair{i, j})
		}
	}

	return t, nil
}

// Grid returns a rows×cols 4-neighborhood grid. Node r*cols+c sits at (r,c);
// for each cell in row-major order the right edge comes before the down edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) (Topology, error) {
	if rows < minGridDim || cols < minGridDim {
		return Topology{}, fmt.Errorf("Grid: %dx%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	t := Topology{order: rows * cols}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				t.edges = append(t.edges, Pair{u, u + 1})
			}
			if r+1 < rows {
				t.edges = append(t.edges, Pair{u, u + cols})
			}
		}
	}

	return t, nil
}

// RandomSparse returns an Erdős–Rényi G(n, p) graph: each pair i < j is
// tried once in ascending order and kept with probability p. The same seed
// gives the same topology.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, seed int64) (Topology, error) {
	if n < minSparseNodes {
		return Topology{}, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Topology{}, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	rng := rand.New(rand.NewSource(seed))
	t := Topology{order: n}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				t.edges = append(t.edges, Pair{i, j})
			}
		}
	}

	return t, nil
}

// Disjoint places ts side by side: the nodes of ts[k] are shifted by the
// total order of ts[:k]. Edge order follows argument order.
func Disjoint(ts ...Topology) Topology {
	var out Topology
	for _, t := range ts {
		for _, e := range t.edges {
			out.edges = append(out.edges, Pair{e.From + out.order, e.To + out.order})
		}
		out.order += t.order
	}

	return out
}
