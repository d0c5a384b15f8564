// Command burrow computes the minimum cost of sorting burrow diagrams.
//
//	burrow solve input.txt            # folded puzzle
//	burrow solve --unfold input.txt   # with the two extra room rows
//	burrow census input.txt           # size of the reachable state space
//	burrow render input.txt           # parsed diagram, as the solver sees it
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
