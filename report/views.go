package report

import (
	"fmt"

	"github.com/katalvlaran/graphq/bfs"
	"github.com/katalvlaran/graphq/components"
	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/dfs"
	"github.com/katalvlaran/graphq/query"
	"github.com/katalvlaran/graphq/stats"
)

// VisitView is one traversal line. Parent is absent for the start vertex.
type VisitView struct {
	Vertex int  `json:"vertex" yaml:"vertex"`
	Level  int  `json:"level" yaml:"level"`
	Parent *int `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// TraversalView is a DFS or BFS result.
type TraversalView struct {
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	Start     int         `json:"start" yaml:"start"`
	Visits    []VisitView `json:"visits" yaml:"visits"`
	Path      string      `json:"path" yaml:"path"`
}

// ComponentView is one connected component, numbered from 1.
type ComponentView struct {
	Index    int   `json:"index" yaml:"index"`
	Size     int   `json:"size" yaml:"size"`
	Vertices []int `json:"vertices" yaml:"vertices"`
}

// ComponentsView is the full component decomposition.
type ComponentsView struct {
	Count      int             `json:"count" yaml:"count"`
	Components []ComponentView `json:"components" yaml:"components"`
}

// RouteView is one shortest-path answer. Distance is absent when unreachable.
type RouteView struct {
	Source    int      `json:"source" yaml:"source"`
	Target    int      `json:"target" yaml:"target"`
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Reachable bool     `json:"reachable" yaml:"reachable"`
	Distance  *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Path      []int    `json:"path,omitempty" yaml:"path,omitempty"`
}

// RoutesView is an all-targets answer.
type RoutesView struct {
	Source    int         `json:"source" yaml:"source"`
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	Routes    []RouteView `json:"routes" yaml:"routes"`
}

// ArcView is one neighbor entry.
type ArcView struct {
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// AdjacencyView is the neighbor list of one vertex.
type AdjacencyView struct {
	Vertex    int       `json:"vertex" yaml:"vertex"`
	Neighbors []ArcView `json:"neighbors" yaml:"neighbors"`
}

// RepresentationView holds either or both graph representations.
type RepresentationView struct {
	Matrix [][]float64     `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	List   []AdjacencyView `json:"list,omitempty" yaml:"list,omitempty"`
}

// ResultView is one batch entry: the request, and either a value or an error.
type ResultView struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Source int         `json:"source,omitempty" yaml:"source,omitempty"`
	Target int         `json:"target,omitempty" yaml:"target,omitempty"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
	Value  interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

func parentPtr(p int) *int {
	if p == core.None {
		return nil
	}

	return &p
}

// DFSView converts a DFS result.
func DFSView(r *dfs.Result) TraversalView {
	v := TraversalView{Algorithm: "dfs", Start: r.Start, Path: r.Path(), Visits: make([]VisitView, 0, len(r.Visits))}
	for _, x := range r.Visits {
		v.Visits = append(v.Visits, VisitView{Vertex: x.Vertex, Level: x.Level, Parent: parentPtr(x.Parent)})
	}

	return v
}

// BFSView converts a BFS result.
func BFSView(r *bfs.Result) TraversalView {
	v := TraversalView{Algorithm: "bfs", Start: r.Start, Path: r.Path(), Visits: make([]VisitView, 0, len(r.Visits))}
	for _, x := range r.Visits {
		v.Visits = append(v.Visits, VisitView{Vertex: x.Vertex, Level: x.Level, Parent: parentPtr(x.Parent)})
	}

	return v
}

// ComponentsViewOf converts a component list.
func ComponentsViewOf(comps []components.Component) ComponentsView {
	v := ComponentsView{Count: len(comps), Components: make([]ComponentView, 0, len(comps))}
	for i, c := range comps {
		v.Components = append(v.Components, ComponentView{Index: i + 1, Size: c.Size(), Vertices: c.Vertices})
	}

	return v
}

// RouteViewOf converts a single-pair answer.
func RouteViewOf(r *query.Route) RouteView {
	v := RouteView{
		Source:    r.Source,
		Target:    r.Target,
		Algorithm: string(r.Algorithm),
		Reachable: r.Reachable,
		Path:      r.Path,
	}
	if r.Reachable {
		d := r.Distance
		v.Distance = &d
	}

	return v
}

// RoutesViewOf converts an all-targets answer.
func RoutesViewOf(rs *query.Routes) RoutesView {
	v := RoutesView{Source: rs.Source, Algorithm: string(rs.Algorithm), Routes: make([]RouteView, 0, len(rs.Routes))}
	for i := range rs.Routes {
		v.Routes = append(v.Routes, RouteViewOf(&rs.Routes[i]))
	}

	return v
}

// Representation builds the matrix and/or list view of g.
func Representation(g *core.Graph, withMatrix, withList bool) RepresentationView {
	var v RepresentationView
	if withMatrix {
		m := g.Matrix()
		v.Matrix = make([][]float64, m.Rows())
		for i := range v.Matrix {
			v.Matrix[i], _ = m.Row(i)
		}
	}
	if withList {
		for _, adj := range g.AdjacencyList() {
			av := AdjacencyView{Vertex: adj.Vertex, Neighbors: make([]ArcView, 0, len(adj.Neighbors))}
			for _, a := range adj.Neighbors {
				av.Neighbors = append(av.Neighbors, ArcView{To: a.To, Weight: a.Weight})
			}
			v.List = append(v.List, av)
		}
	}

	return v
}

// ResultViewOf converts one batch result.
func ResultViewOf(r query.Result) ResultView {
	v := ResultView{Kind: string(r.Request.Kind), Source: r.Request.Source, Target: r.Request.Target}
	if r.Err != nil {
		v.Error = r.Err.Error()
		return v
	}
	view, err := viewOf(r.Value)
	if err != nil {
		v.Error = err.Error()
		return v
	}
	v.Value = view

	return v
}

// viewOf maps any supported result to its encodable view.
func viewOf(value interface{}) (interface{}, error) {
	switch x := value.(type) {
	case *dfs.Result:
		return DFSView(x), nil
	case *bfs.Result:
		return BFSView(x), nil
	case []components.Component:
		return ComponentsViewOf(x), nil
	case *query.Route:
		return RouteViewOf(x), nil
	case *query.Routes:
		return RoutesViewOf(x), nil
	case *stats.Summary:
		return x, nil
	case query.Result:
		return ResultViewOf(x), nil
	case []query.Result:
		out := make([]ResultView, 0, len(x))
		for _, r := range x {
			out = append(out, ResultViewOf(r))
		}
		return out, nil
	case RepresentationView, TraversalView, ComponentsView, RouteView, RoutesView, []ResultView:
		return x, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}
