// SPDX-License-Identifier: MIT
// Package core_test verifies the read-only query surface of core.Graph.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphq/core"
	"github.com/stretchr/testify/require"
)

func TestGraph_NeighborsAndIncident(t *testing.T) {
	g := squareWithChord(t)

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, nbrs)

	arcs, err := g.Incident(4)
	require.NoError(t, err)
	require.Equal(t, []core.Arc{{To: 3, Weight: 1}, {To: 1, Weight: 5}}, arcs)

	_, err = g.Incident(9)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestGraph_MatrixAtOutOfRange(t *testing.T) {
	g := squareWithChord(t)
	_, err := g.MatrixAt(0, 1)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.MatrixAt(1, 5)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestGraph_MatrixIsACopy(t *testing.T) {
	g := squareWithChord(t)
	m := g.Matrix()
	require.NoError(t, m.Set(0, 1, 100))

	cell, err := g.MatrixAt(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, cell)
}

func TestGraph_AdjacencyList(t *testing.T) {
	g, err := core.Build(3, []core.Edge{core.Unweighted(2, 3), {U: 2, V: 1, Weight: 2}})
	require.NoError(t, err)

	require.Equal(t, []core.Adjacency{
		{Vertex: 2, Neighbors: []core.Arc{{To: 3, Weight: 1}, {To: 1, Weight: 2}}},
		{Vertex: 3, Neighbors: []core.Arc{{To: 2, Weight: 1}}},
		{Vertex: 1, Neighbors: []core.Arc{{To: 2, Weight: 2}}},
	}, g.AdjacencyList())
}

func TestGraph_WeightPredicates(t *testing.T) {
	cases := []struct {
		name         string
		edges        []core.Edge
		wantNegative bool
		wantUnit     bool
	}{
		{"no edges", nil, false, true},
		{"all unit", []core.Edge{core.Unweighted(1, 2), core.Unweighted(2, 3)}, false, true},
		{"positive weights", []core.Edge{core.Unweighted(1, 2), {U: 2, V: 3, Weight: 2}}, false, false},
		{"zero weight", []core.Edge{{U: 1, V: 2, Weight: 0}}, false, false},
		{"negative weight", []core.Edge{core.Unweighted(1, 2), {U: 2, V: 3, Weight: -1}}, true, false},
		{"negative overwritten", []core.Edge{{U: 1, V: 2, Weight: -1}, core.Unweighted(2, 1)}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.Build(3, tc.edges)
			require.NoError(t, err)
			require.Equal(t, tc.wantNegative, g.HasNegativeWeight())
			require.Equal(t, tc.wantUnit, g.IsUnitWeight())
		})
	}
}
