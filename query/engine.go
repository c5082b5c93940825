package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphq/bfs"
	"github.com/katalvlaran/graphq/components"
	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/dfs"
	"github.com/katalvlaran/graphq/dijkstra"
	"github.com/katalvlaran/graphq/paths"
)

// ErrUnknownKind is returned by Run for a Request with an unsupported Kind.
var ErrUnknownKind = errors.New("query: unknown query kind")

// DefaultParallelism bounds concurrent queries when no option overrides it.
const DefaultParallelism = 4

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics sets the collectors; nil is ignored.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithParallelism bounds the goroutines used by ShortestPathsFrom and Run.
// Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.parallelism = n
		}
	}
}

// Engine answers queries over one immutable Graph.
type Engine struct {
	g           *core.Graph
	log         logrus.FieldLogger
	metrics     *Metrics
	parallelism int
}

// New returns an Engine for g. Returns core.ErrNilGraph if g is nil.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("query: %w", core.ErrNilGraph)
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{g: g, log: discard, parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = NewMetrics(nil)
	}

	return e, nil
}

// Graph returns the graph the Engine queries.
func (e *Engine) Graph() *core.Graph { return e.g }

// Algorithm reports which shortest-path algorithm the graph selects, or
// dijkstra.ErrNegativeWeight (matching core.ErrNegativeWeight).
func (e *Engine) Algorithm() (paths.Algorithm, error) {
	if e.g.HasNegativeWeight() {
		return "", dijkstra.ErrNegativeWeight
	}
	if e.g.IsUnitWeight() {
		return paths.BFS, nil
	}

	return paths.Dijkstra, nil
}

// outcomeOf maps a query error to its metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, core.ErrUnknownVertex):
		return OutcomeUnknownVertex
	case errors.Is(err, core.ErrNegativeWeight):
		return OutcomeNegativeWeight
	}

	return OutcomeError
}

// finish logs and counts one query.
func (e *Engine) finish(kind Kind, algorithm, outcome string, start time.Time, fields logrus.Fields, err error) {
	e.metrics.record(kind, algorithm, outcome, time.Since(start).Seconds())
	entry := e.log.WithFields(fields).WithField("kind", kind).WithField("algorithm", algorithm)
	switch outcome {
	case OutcomeOK:
		entry.Debug("query done")
	case OutcomeUnreachable:
		entry.Info("target not reachable")
	default:
		entry.WithError(err).Warn("query failed")
	}
}

// DepthFirst runs DFS from start.
func (e *Engine) DepthFirst(start int) (*dfs.Result, error) {
	began := time.Now()
	res, err := dfs.DFS(e.g, start)
	e.finish(KindDFS, algorithmNone, outcomeOf(err), began, logrus.Fields{"source": start}, err)

	return res, err
}

// BreadthFirst runs BFS from start.
func (e *Engine) BreadthFirst(start int) (*bfs.Result, error) {
	began := time.Now()
	res, err := bfs.BFS(e.g, start)
	e.finish(KindBFS, algorithmNone, outcomeOf(err), began, logrus.Fields{"source": start}, err)

	return res, err
}

// Components returns the connected components of the graph.
func (e *Engine) Components() []components.Component {
	began := time.Now()
	comps := components.Find(e.g)
	e.finish(KindComponents, algorithmNone, OutcomeOK, began, logrus.Fields{"count": len(comps)}, nil)

	return comps
}

// tree runs the selected algorithm from source. target is forwarded to BFS
// for early exit; core.None requests a full pass.
func (e *Engine) tree(source, target int) (*paths.Tree, paths.Algorithm, error) {
	alg, err := e.Algorithm()
	if err != nil {
		return nil, "", err
	}
	e.log.WithFields(logrus.Fields{"source": source, "target": target, "algorithm": alg}).Debug("algorithm selected")

	var t *paths.Tree
	switch alg {
	case paths.BFS:
		t, err = bfs.ShortestPaths(e.g, source, target)
	default:
		t, err = dijkstra.Dijkstra(e.g, source)
	}

	return t, alg, err
}

// routeTo converts the tree entry of v into a Route.
func routeTo(t *paths.Tree, v int) Route {
	r := Route{
		Source:    t.Source,
		Target:    v,
		Algorithm: t.Algorithm,
		Distance:  t.Distance(v),
		Path:      t.PathTo(v),
	}
	r.Reachable = r.Path != nil

	return r
}

// ShortestPath answers a single-pair query.
//
// Errors, all recoverable:
//   - core.ErrNegativeWeight if any stored weight is negative (checked first).
//   - core.ErrUnknownVertex if source is not an adjacency-map key or target
//     is outside [1, N].
//
// A target inside [1, N] with no path, an isolated vertex included, yields a
// Route with Reachable == false.
func (e *Engine) ShortestPath(source, target int) (*Route, error) {
	began := time.Now()
	fields := logrus.Fields{"source": source, "target": target}

	route, alg, err := e.shortestPath(source, target)
	outcome := outcomeOf(err)
	if err == nil && !route.Reachable {
		outcome = OutcomeUnreachable
	}
	e.finish(KindPath, algorithmLabel(alg), outcome, began, fields, err)

	return route, err
}

func (e *Engine) shortestPath(source, target int) (*Route, paths.Algorithm, error) {
	if e.g.HasNegativeWeight() {
		return nil, "", dijkstra.ErrNegativeWeight
	}
	if !e.g.InRange(target) {
		return nil, "", fmt.Errorf("query: destination %d outside [1, %d]: %w", target, e.g.VertexCount(), core.ErrUnknownVertex)
	}
	t, alg, err := e.tree(source, target)
	if err != nil {
		return nil, alg, err
	}
	r := routeTo(t, target)

	return &r, alg, nil
}

// ShortestPaths answers an all-targets query from source.
// Errors are those of ShortestPath, minus the destination check.
func (e *Engine) ShortestPaths(source int) (*Routes, error) {
	began := time.Now()
	t, alg, err := e.tree(source, core.None)
	e.finish(KindPaths, algorithmLabel(alg), outcomeOf(err), began, logrus.Fields{"source": source}, err)
	if err != nil {
		return nil, err
	}

	out := &Routes{Source: source, Algorithm: alg, Routes: make([]Route, 0, len(t.Order))}
	for _, v := range t.Order {
		out.Routes = append(out.Routes, routeTo(t, v))
	}

	return out, nil
}

// ShortestPathsFrom runs one all-targets query per source concurrently, at
// most the configured parallelism at a time. Results are in source order.
// The first error cancels the remaining queries and is returned.
func (e *Engine) ShortestPathsFrom(ctx context.Context, sources ...int) ([]*Routes, error) {
	out := make([]*Routes, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			routes, err := e.ShortestPaths(src)
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			out[i] = routes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Run executes a batch concurrently. Query errors are recoverable and land
// in the matching Result; only context cancellation aborts the batch.
func (e *Engine) Run(ctx context.Context, reqs []Request) ([]Result, error) {
	out := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = e.do(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// do dispatches one Request.
func (e *Engine) do(req Request) Result {
	res := Result{Request: req}
	switch req.Kind {
	case KindDFS:
		res.Value, res.Err = e.DepthFirst(req.Source)
	case KindBFS:
		res.Value, res.Err = e.BreadthFirst(req.Source)
	case KindComponents:
		res.Value = e.Components()
	case KindPath:
		if req.Target == core.None {
			res.Value, res.Err = e.ShortestPaths(req.Source)
		} else {
			res.Value, res.Err = e.ShortestPath(req.Source, req.Target)
		}
	case KindPaths:
		res.Value, res.Err = e.ShortestPaths(req.Source)
	default:
		res.Err = fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	return res
}

func algorithmLabel(a paths.Algorithm) string {
	if a == "" {
		return algorithmNone
	}

	return string(a)
}
