// SPDX-License-Identifier: MIT
// Package stats aggregates the degree sequence and the empirical degree
// distribution of an edge list.
//
// Statistics are taken from the raw edge lines, not from the built graph:
// every line counts as one edge, every endpoint occurrence adds one to the
// degree of its vertex (so a self-loop adds two), and weights are ignored.
package stats

import (
	"sort"

	"github.com/katalvlaran/graphq/edgelist"
)

// Share is the fraction of the N declared vertices having exactly Degree.
type Share struct {
	Degree   int     `json:"degree" yaml:"degree"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

// Summary is the graph-information block.
type Summary struct {
	VertexCount   int         `json:"vertex_count" yaml:"vertex_count"`
	EdgeCount     int         `json:"edge_count" yaml:"edge_count"`
	AverageDegree float64     `json:"average_degree" yaml:"average_degree"`
	MaxDegree     int         `json:"max_degree" yaml:"max_degree"`
	Degrees       map[int]int `json:"degrees" yaml:"degrees"`
	Distribution  []Share     `json:"distribution" yaml:"distribution"`
}

// Compute builds the Summary of doc. Distribution covers degrees 1..MaxDegree
// with explicit zero fractions for degrees no vertex has. An empty edge list
// yields an empty distribution and an average of 0.
// Complexity: O(E + maxDegree).
func Compute(doc *edgelist.Document) *Summary {
	s := &Summary{
		VertexCount: doc.VertexCount,
		EdgeCount:   len(doc.Edges),
		Degrees:     make(map[int]int),
	}
	sum := 0
	for _, e := range doc.Edges {
		s.Degrees[e.U]++
		s.Degrees[e.V]++
		sum += 2
	}
	if s.VertexCount > 0 {
		s.AverageDegree = float64(sum) / float64(s.VertexCount)
	}

	perDegree := make(map[int]int)
	for _, d := range s.Degrees {
		perDegree[d]++
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.Distribution = make([]Share, 0, s.MaxDegree)
	for d := 1; d <= s.MaxDegree; d++ {
		s.Distribution = append(s.Distribution, Share{
			Degree:   d,
			Fraction: float64(perDegree[d]) / float64(s.VertexCount),
		})
	}

	return s
}

// SortedVertices returns the vertices of Degrees in ascending order.
func (s *Summary) SortedVertices() []int {
	out := make([]int, 0, len(s.Degrees))
	for v := range s.Degrees {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
