package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphq/core"
)

// ErrMalformedInput is the base of every parse error.
var ErrMalformedInput = fmt.Errorf("edgelist: %w", core.ErrMalformedInput)

// maxLineBytes bounds one input line.
const maxLineBytes = 1 << 20

// Document is a parsed edge list.
type Document struct {
	// VertexCount is N from the first non-blank line.
	VertexCount int

	// Edges holds one entry per edge line, in input order.
	Edges []core.Edge

	// Lines holds the 1-based source line of each entry of Edges.
	Lines []int

	// Weighted is true when at least one edge line carried a weight.
	Weighted bool
}

// malformed builds a line-annotated parse error.
func malformed(line int, format string, args ...interface{}) error {
	return errors.WithMessagef(ErrMalformedInput, "line %d: %s", line, fmt.Sprintf(format, args...))
}

// Parse reads an edge list from r.
func Parse(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	doc := &Document{}
	line := 0
	header := false
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !header {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 1 {
				return nil, malformed(line, "vertex count %q is not a positive integer", fields[0])
			}
			doc.VertexCount = n
			header = true
			continue
		}
		e, weighted, err := parseEdge(fields, doc.VertexCount, line)
		if err != nil {
			return nil, err
		}
		doc.Edges = append(doc.Edges, e)
		doc.Lines = append(doc.Lines, line)
		doc.Weighted = doc.Weighted || weighted
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "edge list: read line %d", line+1)
	}
	if !header {
		return nil, malformed(line, "missing vertex count")
	}

	return doc, nil
}

// parseEdge converts "u v [w]" into an Edge, checking 1 ≤ u, v ≤ n.
func parseEdge(fields []string, n, line int) (core.Edge, bool, error) {
	if len(fields) < 2 {
		return core.Edge{}, false, malformed(line, "edge needs two vertices, got %d token", len(fields))
	}
	var ends [2]int
	for i := range ends {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return core.Edge{}, false, malformed(line, "vertex %q is not an integer", fields[i])
		}
		if v < 1 || v > n {
			return core.Edge{}, false, malformed(line, "vertex %d outside [1, %d]", v, n)
		}
		ends[i] = v
	}
	if len(fields) == 2 {
		return core.Unweighted(ends[0], ends[1]), false, nil
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return core.Edge{}, false, malformed(line, "weight %q is not a finite number", fields[2])
	}

	return core.Edge{U: ends[0], V: ends[1], Weight: w}, true, nil
}

// ReadFile opens path and parses it.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open edge list %s", path)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse %s", path)
	}

	return doc, nil
}

// Graph builds the immutable core.Graph described by the document.
func (d *Document) Graph() (*core.Graph, error) {
	return core.Build(d.VertexCount, d.Edges)
}

// Write renders doc in the edge-list format. Weights are written on every
// line when doc.Weighted is set, and never otherwise.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, doc.VertexCount)
	for _, e := range doc.Edges {
		if doc.Weighted {
			fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, strconv.FormatFloat(e.Weight, 'g', -1, 64))
		} else {
			fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
		}
	}

	return errors.Wrap(bw.Flush(), "write edge list")
}

// FromEdges wraps a vertex count and edge list into a Document, marking it
// weighted when any edge weight differs from core.DefaultWeight.
func FromEdges(n int, edges []core.Edge) *Document {
	doc := &Document{VertexCount: n, Edges: edges, Lines: make([]int, len(edges))}
	for i, e := range edges {
		doc.Lines[i] = i + 2
		if e.Weight != core.DefaultWeight {
			doc.Weighted = true
		}
	}

	return doc
}
