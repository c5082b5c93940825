package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/graphq/core"
)

// queueItem pairs a vertex with the level it was enqueued at.
type queueItem struct {
	v     int
	level int
}

// walker encapsulates mutable BFS state. A fresh walker is built per call.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   *arrayqueue.Queue
	visited []bool // indexed by vertex, sized N+1
	res     *Result
}

// BFS runs breadth-first search on g from start, applying any number of
// functional Options.
//
// The visited check happens at DEQUEUE time: an unvisited neighbor is
// enqueued every time one of its neighbors is expanded, so a vertex may sit
// in the queue more than once before its first dequeue. Level and parent are
// fixed by the first enqueue and never rewritten, so
// Level[v] == Level[Parent[v]] + 1 holds for every non-start vertex.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or any
// error from the OnVisit hook.
// Complexity: O(V + E) time; the queue may hold O(E) entries.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   arrayqueue.New(),
		visited: make([]bool, n+1),
		res: &Result{
			Start:  start,
			Visits: make([]Visit, 0, n),
			Order:  make([]int, 0, n),
			Level:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Level[start] = 0
	w.res.Parent[start] = core.None
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue appends v and reports the queue peak.
func (w *walker) enqueue(v, level int) {
	w.queue.Enqueue(queueItem{v: v, level: level})
	if size := w.queue.Size(); size > w.res.MaxQueueLen {
		w.res.MaxQueueLen = size
	}
	w.opts.OnEnqueue(v, level)
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		raw, _ := w.queue.Dequeue()
		item := raw.(queueItem)
		if w.visited[item.v] {
			continue // duplicate entry of an already expanded vertex
		}
		w.visited[item.v] = true
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	v := item.v
	w.res.Order = append(w.res.Order, v)
	w.res.Visits = append(w.res.Visits, Visit{Vertex: v, Level: w.res.Level[v], Parent: w.res.Parent[v]})
	if err := w.opts.OnVisit(v, w.res.Level[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors enqueues every neighbor not yet visited, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	next := w.res.Level[item.v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		if _, seen := w.res.Level[nbr]; !seen {
			w.res.Level[nbr] = next
			w.res.Parent[nbr] = item.v
		}
		w.enqueue(nbr, w.res.Level[nbr])
	}

	return nil
}
