// Package core_test verifies that an immutable Graph serves concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/graphq/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs many read-only queries in parallel; under -race
// this proves queries never write shared state.
func TestConcurrentReaders(t *testing.T) {
	const n = 200
	edges := make([]core.Edge, 0, n-1)
	for i := 2; i <= n; i++ {
		edges = append(edges, core.Unweighted(1, i))
	}
	g, err := core.Build(n, edges)
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	errs := make(chan error, readers)
	sizes := make(chan int, readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbrs, err := g.Neighbors(1)
			if err != nil {
				errs <- err
				return
			}
			_ = g.IsUnitWeight()
			// the first of these calls fills the matrix; the rest must wait for it
			cell, err := g.MatrixAt(1, n)
			if err != nil {
				errs <- err
				return
			}
			if cell != core.DefaultWeight || g.Matrix() == nil {
				errs <- fmt.Errorf("matrix cell (1,%d) = %v", n, cell)
				return
			}
			sizes <- len(nbrs)
		}()
	}
	wg.Wait()
	close(errs)
	close(sizes)

	for err := range errs {
		require.NoError(t, err)
	}
	for size := range sizes {
		require.Equal(t, n-1, size)
	}
}
