package components

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/graphq/core"
)

// Component is one maximal connected vertex set, in discovery order.
type Component struct {
	Vertices []int
}

// Size returns the number of vertices in the component.
func (c Component) Size() int { return len(c.Vertices) }

// String renders the vertex list as "[1 2 3]".
func (c Component) String() string {
	parts := make([]string, len(c.Vertices))
	for i, v := range c.Vertices {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// cursor is one frame of the explicit stack: a vertex and its next neighbor index.
type cursor struct {
	neighbors []int
	next      int
}

// Find returns every connected component of g. A nil graph has none.
func Find(g *core.Graph) []Component {
	if g == nil {
		return nil
	}
	seen := make([]bool, g.VertexCount()+1)
	var comps []Component

	for _, seed := range g.Vertices() {
		if seen[seed] {
			continue
		}
		comps = append(comps, Component{Vertices: collect(g, seed, seen)})
	}

	return comps
}

// collect gathers the component of seed in pre-order, marking seen as it goes.
func collect(g *core.Graph, seed int, seen []bool) []int {
	stack := arraystack.New()
	var out []int

	discover := func(v int) {
		seen[v] = true
		out = append(out, v)
		nbrs, _ := g.Neighbors(v) // v is an adjacency key
		stack.Push(&cursor{neighbors: nbrs})
	}

	discover(seed)
	for !stack.Empty() {
		top, _ := stack.Peek()
		c := top.(*cursor)
		for c.next < len(c.neighbors) && seen[c.neighbors[c.next]] {
			c.next++
		}
		if c.next == len(c.neighbors) {
			stack.Pop()
			continue
		}
		v := c.neighbors[c.next]
		c.next++
		discover(v)
	}

	return out
}

// Count returns the number of connected components of g.
func Count(g *core.Graph) int { return len(Find(g)) }

// IsConnected reports whether g has exactly one component.
// Vertices without edges are ignored.
func IsConnected(g *core.Graph) bool { return Count(g) == 1 }
