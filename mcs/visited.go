package mcs

// visited is an immutable, persistent set of element ids (nodes and edges of
// both graphs). with() shares the existing list and prepends, so sibling
// branches can extend the same parent set without seeing each other's ids.
// The nil *visited is the empty set.
type visited struct {
	id   string
	next *visited
}

// has reports membership. Complexity: O(len).
func (v *visited) has(id string) bool {
	for p := v; p != nil; p = p.next {
		if p.id == id {
			return true
		}
	}

	return false
}

// with returns a set containing v plus ids; v is unchanged.
func (v *visited) with(ids ...string) *visited {
	out := v
	for _, id := range ids {
		out = &visited{id: id, next: out}
	}

	return out
}
