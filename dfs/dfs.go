package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/graphq/core"
)

// frame is one pending vertex on the explicit DFS stack.
// next indexes the first neighbor not yet examined.
type frame struct {
	v         int
	level     int
	neighbors []int
	next      int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	stack   *arraystack.Stack
	visited []bool // indexed by vertex, sized N+1
	res     *Result
}

// DFS performs depth-first search on g from start and returns the pre-order
// visits. A vertex is marked visited before any of its neighbors is examined,
// so every reachable vertex appears exactly once.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Validate start
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		stack:   arraystack.New(),
		visited: make([]bool, n+1),
		res: &Result{
			Start:  start,
			Visits: make([]Visit, 0, n),
			Order:  make([]int, 0, n),
			Level:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// 4. Walk
	if err := w.discover(start, 0, core.None); err != nil {
		return w.res, err
	}

	return w.res, w.run()
}

// discover marks v, records it and pushes its frame.
func (w *dfsWalker) discover(v, level, parent int) error {
	w.visited[v] = true
	w.res.Level[v] = level
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)
	w.res.Visits = append(w.res.Visits, Visit{Vertex: v, Level: level, Parent: parent})

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, level); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
		}
	}

	nbrs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
	}
	w.stack.Push(&frame{v: v, level: level, neighbors: nbrs})

	return nil
}

// run advances the top frame to its next unvisited neighbor until the stack drains.
func (w *dfsWalker) run() error {
	for !w.stack.Empty() {
		top, _ := w.stack.Peek()
		f := top.(*frame)

		if w.opts.MaxDepth > 0 && f.level >= w.opts.MaxDepth {
			w.stack.Pop()
			continue
		}

		// skip neighbors discovered elsewhere
		for f.next < len(f.neighbors) && w.visited[f.neighbors[f.next]] {
			f.next++
		}
		if f.next == len(f.neighbors) {
			w.stack.Pop()
			continue
		}

		nbr := f.neighbors[f.next]
		f.next++
		if err := w.discover(nbr, f.level+1, f.v); err != nil {
			return err
		}
	}

	return nil
}
