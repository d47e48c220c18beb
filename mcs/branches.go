package mcs

import "sort"

// sortBranches orders branches by PointsSum().Max() descending. The sort is
// stable, so equal branches keep enumeration order (A edges outer, B edges inner).
func sortBranches[N, E any](branches []subgraph[N, E]) {
	sort.SliceStable(branches, func(i, j int) bool {
		return branches[i].pointsSum().Max() > branches[j].pointsSum().Max()
	})
}

// selectBestBranches greedily keeps the first remaining branch and drops every
// other branch whose root edge pair shares Edge1 or Edge2 with it, until none
// remain. branches must be sorted and non-empty; each starts with its root edge
// pair. The selection is locally good, not a maximum disjoint set.
func selectBestBranches[N, E any](branches []subgraph[N, E]) []subgraph[N, E] {
	var chosen []subgraph[N, E]
	remaining := branches
	for len(remaining) > 0 {
		head := remaining[0]
		chosen = append(chosen, head)

		root := head.edges[0]
		kept := make([]subgraph[N, E], 0, len(remaining)-1)
		for _, b := range remaining {
			r := b.edges[0]
			if r.Edge1.ID() == root.Edge1.ID() || r.Edge2.ID() == root.Edge2.ID() {
				continue
			}
			kept = append(kept, b)
		}
		remaining = kept
	}

	return chosen
}

// mergeBranches folds branches into acc in order. Earlier branches win:
//   - a node pair is added only if neither node is used by acc;
//   - an edge pair is added only if neither edge is used by acc and both
//     endpoints of both edges are matched once the branch's nodes are in.
//
// Nodes in seen were matched higher up the walk and count as matched, so a
// branch may keep an edge closing a cycle back to an ancestor. At the seed
// level seen holds only the seed pair, which acc already contains, so the
// returned result satisfies the endpoint rule on its own.
func mergeBranches[N, E any](acc subgraph[N, E], branches []subgraph[N, E], seen *visited) subgraph[N, E] {
	for _, br := range branches {
		merged := subgraph[N, E]{
			nodes: make([]CommonNode[N], len(acc.nodes), len(acc.nodes)+len(br.nodes)),
			edges: make([]CommonEdge[N, E], len(acc.edges), len(acc.edges)+len(br.edges)),
		}
		copy(merged.nodes, acc.nodes)
		copy(merged.edges, acc.edges)

		for _, cn := range br.nodes {
			if !acc.sharesNode(cn) {
				merged.nodes = append(merged.nodes, cn)
			}
		}
		for _, ce := range br.edges {
			if !acc.sharesEdge(ce) && merged.covers(ce.Edge1, seen) && merged.covers(ce.Edge2, seen) {
				merged.edges = append(merged.edges, ce)
			}
		}
		acc = merged
	}

	return acc
}
