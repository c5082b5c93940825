package edgelist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/edgelist"
)

func TestParse_Valid(t *testing.T) {
	input := "4\n1 2\n\n2 3 2.5\n3 4 1 trailing tokens\n"

	doc, err := edgelist.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, doc.VertexCount)
	assert.True(t, doc.Weighted)
	assert.Equal(t, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2.5},
		{U: 3, V: 4, Weight: 1},
	}, doc.Edges)
	assert.Equal(t, []int{2, 4, 5}, doc.Lines)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestParse_HeaderOnly(t *testing.T) {
	doc, err := edgelist.Parse(strings.NewReader("\n\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.VertexCount)
	assert.Empty(t, doc.Edges)
	assert.False(t, doc.Weighted)
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"empty", "", "line 0"},
		{"non-numeric count", "abc\n1 2\n", "line 1"},
		{"zero count", "0\n", "line 1"},
		{"negative count", "-3\n", "line 1"},
		{"single token", "3\n1 2\n3\n", "line 3"},
		{"non-integer vertex", "3\n1 x\n", "line 2"},
		{"vertex above range", "3\n1 4\n", "line 2"},
		{"vertex zero", "3\n\n0 1\n", "line 3"},
		{"bad weight", "3\n1 2 heavy\n", "line 2"},
		{"infinite weight", "3\n1 2 +Inf\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := edgelist.Parse(strings.NewReader(tc.input))
			assert.Nil(t, doc)
			require.ErrorIs(t, err, edgelist.ErrMalformedInput)
			require.ErrorIs(t, err, core.ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1 2\n2 3\n"), 0o600))

	doc, err := edgelist.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Edges, 2)

	_, err = edgelist.ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errorsCause(err)))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("3\n1 9\n"), 0o600))
	_, err = edgelist.ReadFile(bad)
	require.ErrorIs(t, err, core.ErrMalformedInput)
	assert.Contains(t, err.Error(), bad)
}

func TestWrite_RoundTrip(t *testing.T) {
	for _, weighted := range []bool{false, true} {
		edges := []core.Edge{core.Unweighted(1, 2), core.Unweighted(2, 3)}
		if weighted {
			edges = append(edges, core.Edge{U: 3, V: 1, Weight: 0.25})
		}
		doc := edgelist.FromEdges(3, edges)
		assert.Equal(t, weighted, doc.Weighted)

		var buf bytes.Buffer
		require.NoError(t, edgelist.Write(&buf, doc))

		back, err := edgelist.Parse(&buf)
		require.NoError(t, err)
		assert.Equal(t, doc.VertexCount, back.VertexCount)
		assert.Equal(t, doc.Edges, back.Edges)
	}
}
