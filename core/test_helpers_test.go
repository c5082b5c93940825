// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphq/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight5 = 5
)

// squareWithChord builds 1-2-3-4 plus the heavy chord 1-4:
//
//	1 ─1─ 2
//	│     │
//	5     1
//	│     │
//	4 ─1─ 3
func squareWithChord(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(4, []core.Edge{
		{U: 1, V: 2, Weight: Weight1},
		{U: 2, V: 3, Weight: Weight1},
		{U: 3, V: 4, Weight: Weight1},
		{U: 1, V: 4, Weight: Weight5},
	})
	require.NoError(t, err)

	return g
}
