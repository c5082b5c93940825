package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphq/builder"
)

func ExampleBuildEdges() {
	s, err := builder.BuildEdges(nil, builder.Star(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.N)
	for _, e := range s.Edges {
		fmt.Println(e.U, e.V, e.Weight)
	}
	// Output:
	// 4
	// 1 2 1
	// 1 3 1
	// 1 4 1
}
