package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphq/bfs"
	"github.com/katalvlaran/graphq/components"
	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/dfs"
	"github.com/katalvlaran/graphq/query"
	"github.com/katalvlaran/graphq/stats"
)

// Section titles.
const (
	TitleInfo       = "GRAPH INFORMATION"
	TitleDFS        = "DEPTH-FIRST SEARCH"
	TitleBFS        = "BREADTH-FIRST SEARCH"
	TitleComponents = "CONNECTED COMPONENTS"
	TitlePaths      = "SHORTEST PATHS"
	TitleRepr       = "REPRESENTATION"
)

// textWriter accumulates the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) section(title string) {
	t.printf("--------------%s--------------\n\n", title)
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func parentLabel(p int) string {
	if p == core.None {
		return "None"
	}

	return strconv.Itoa(p)
}

// WriteInfo renders the graph-information section.
func WriteInfo(w io.Writer, s *stats.Summary) error {
	t := &textWriter{w: w}
	t.section(TitleInfo)
	t.printf("Vertices: %d\n", s.VertexCount)
	t.printf("Edges: %d\n", s.EdgeCount)
	t.printf("Average degree: %s\n", formatNumber(s.AverageDegree))
	for _, sh := range s.Distribution {
		t.printf("%d %s\n", sh.Degree, formatNumber(sh.Fraction))
	}
	t.printf("\n")

	return t.err
}

func writeTraversal(t *textWriter, title string, visits []VisitView, path string) {
	t.section(title)
	for _, v := range visits {
		p := core.None
		if v.Parent != nil {
			p = *v.Parent
		}
		t.printf("Vertex: %d -> Level: %d | Parent: %s\n", v.Vertex, v.Level, parentLabel(p))
	}
	t.printf("\n%s\n\n", path)
}

// WriteDFS renders a depth-first traversal.
func WriteDFS(w io.Writer, r *dfs.Result) error {
	t := &textWriter{w: w}
	v := DFSView(r)
	writeTraversal(t, TitleDFS, v.Visits, v.Path)

	return t.err
}

// WriteBFS renders a breadth-first traversal.
func WriteBFS(w io.Writer, r *bfs.Result) error {
	t := &textWriter{w: w}
	v := BFSView(r)
	writeTraversal(t, TitleBFS, v.Visits, v.Path)

	return t.err
}

// WriteComponents renders the component decomposition.
func WriteComponents(w io.Writer, comps []components.Component) error {
	t := &textWriter{w: w}
	t.section(TitleComponents)
	t.printf("Number of connected components: %d\n", len(comps))
	for i, c := range comps {
		t.printf("Component %d -> Vertices: %s | Size: %d\n", i+1, c, c.Size())
	}
	t.printf("\n")

	return t.err
}

func writeRoute(t *textWriter, r *query.Route) {
	if !r.Reachable {
		t.printf("%d is not reachable from %d\n", r.Target, r.Source)
		return
	}
	t.printf("Shortest path from %d to %d using %s: %v\n", r.Source, r.Target, r.Algorithm, r.Path)
	t.printf("Distance: %s\n", formatNumber(r.Distance))
}

// WriteRoute renders a single-pair answer.
func WriteRoute(w io.Writer, r *query.Route) error {
	t := &textWriter{w: w}
	t.section(TitlePaths)
	writeRoute(t, r)
	t.printf("\n")

	return t.err
}

// WriteRoutes renders an all-targets answer.
func WriteRoutes(w io.Writer, rs *query.Routes) error {
	t := &textWriter{w: w}
	t.section(TitlePaths)
	for i := range rs.Routes {
		writeRoute(t, &rs.Routes[i])
	}
	t.printf("\n")

	return t.err
}

// Matrix renders the adjacency matrix of g, one bracketed row per line.
func Matrix(g *core.Graph) string { return g.Matrix().String() }

// AdjacencyList renders one line per vertex: "1 -> 2 -> 4". On a graph that
// is not unit-weight every neighbor carries its weight: "1 -> 2 (1) -> 4 (5)".
func AdjacencyList(g *core.Graph) string {
	weighted := !g.IsUnitWeight()
	var sb strings.Builder
	for _, adj := range g.AdjacencyList() {
		sb.WriteString(strconv.Itoa(adj.Vertex))
		for _, a := range adj.Neighbors {
			sb.WriteString(" -> ")
			sb.WriteString(strconv.Itoa(a.To))
			if weighted {
				sb.WriteString(" (" + formatNumber(a.Weight) + ")")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteRepresentation renders the representation section.
func WriteRepresentation(w io.Writer, g *core.Graph, withMatrix, withList bool) error {
	t := &textWriter{w: w}
	t.section(TitleRepr)
	if withMatrix {
		t.printf("Adjacency matrix:\n\n%s\n", Matrix(g))
	}
	if withList {
		t.printf("Adjacency list:\n\n%s\n", AdjacencyList(g))
	}

	return t.err
}

// writeResult renders one batch entry; a failed query prints its error line.
func writeResult(w io.Writer, r query.Result) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s query (source %d, target %d) failed: %v\n\n", r.Request.Kind, r.Request.Source, r.Request.Target, r.Err)
		return err
	}

	return writeText(w, r.Value)
}

// writeText dispatches value to its text renderer.
func writeText(w io.Writer, value interface{}) error {
	switch x := value.(type) {
	case *stats.Summary:
		return WriteInfo(w, x)
	case *dfs.Result:
		return WriteDFS(w, x)
	case *bfs.Result:
		return WriteBFS(w, x)
	case []components.Component:
		return WriteComponents(w, x)
	case *query.Route:
		return WriteRoute(w, x)
	case *query.Routes:
		return WriteRoutes(w, x)
	case query.Result:
		return writeResult(w, x)
	case []query.Result:
		for _, r := range x {
			if err := writeResult(w, r); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}
