package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/bfs"
)

// ExampleBFS counts the states reachable from 1 when you may double or
// decrement, staying within 1..8.
func ExampleBFS() {
	next := func(n int) []int {
		var out []int
		if 2*n <= 8 {
			out = append(out, 2*n)
		}
		if n > 1 {
			out = append(out, n-1)
		}
		return out
	}
	res, err := bfs.BFS(1, next, bfs.WithParents())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(7)
	fmt.Println("reachable:", len(res.Order))
	fmt.Println("path to 7:", path)
	// Output:
	// reachable: 8
	// path to 7: [1 2 4 8 7]
}
