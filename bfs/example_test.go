// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/builder"
)

// ExampleBFS walks a 3×3 grid from the top-left corner; the visit order
// follows non-decreasing Manhattan distance.
func ExampleBFS() {
	g, err := builder.Build(9, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(8)
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}
