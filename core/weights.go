// SPDX-License-Identifier: MIT
// Global weight predicates used to pick a shortest-path algorithm.

package core

// eachWeight calls fn for every stored directed weight until fn returns false.
func (g *Graph) eachWeight(fn func(w float64) bool) {
	it := g.adj.Iterator()
	for it.Next() {
		nbrs, _ := g.neighborsOf(it.Key().(int))
		nit := nbrs.Iterator()
		for nit.Next() {
			if !fn(nit.Value().(float64)) {
				return
			}
		}
	}
}

// HasNegativeWeight reports whether any stored weight is strictly negative.
// Complexity: O(V + E), stops at the first negative weight.
func (g *Graph) HasNegativeWeight() bool {
	found := false
	g.eachWeight(func(w float64) bool {
		found = w < 0
		return !found
	})

	return found
}

// IsUnitWeight reports whether every stored weight equals exactly 1.
// A graph without edges is vacuously unit-weight.
// This is a property of the whole graph, not of any single query.
// Complexity: O(V + E), stops at the first non-unit weight.
func (g *Graph) IsUnitWeight() bool {
	unit := true
	g.eachWeight(func(w float64) bool {
		unit = w == DefaultWeight
		return unit
	})

	return unit
}
