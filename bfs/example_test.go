package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphq/bfs"
	"github.com/katalvlaran/graphq/core"
)

// ExampleBFS prints the classic level/parent report of a small tree.
//
//	    1
//	   / \
//	  2   3
//	  |
//	  4
func ExampleBFS() {
	g, _ := core.Build(4, []core.Edge{
		core.Unweighted(1, 2),
		core.Unweighted(1, 3),
		core.Unweighted(2, 4),
	})
	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Visits {
		fmt.Printf("Vertex: %d -> Level: %d | Parent: %d\n", v.Vertex, v.Level, v.Parent)
	}
	fmt.Println(res.Path())

	// Output:
	// Vertex: 1 -> Level: 0 | Parent: 0
	// Vertex: 2 -> Level: 1 | Parent: 1
	// Vertex: 3 -> Level: 1 | Parent: 1
	// Vertex: 4 -> Level: 2 | Parent: 2
	// 1 -> 2 -> 3 -> 4
}
