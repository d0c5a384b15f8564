// Package burrow is the root of a minimum-cost solver for amphipod burrows:
// typed tokens spread over a corridor and a row of rooms, to be walked home
// one move at a time for the least total energy.
//
//	#############
//	#...........#   corridor: tokens may stop here, never above a room
//	###B#C#B#D###   rooms: room r accepts only type r
//	  #A#D#C#A#
//	  #########
//
// Everything is organized under these subpackages:
//
//	burrow/   – Geometry, Token and Layout types, diagram parsing and rendering
//	moves/    – legal single-token moves (exits and entries) and their costs
//	dijkstra/ – uniform-cost search over implicit graphs of comparable states
//	bfs/      – breadth-first enumeration of implicit graphs
//	solver/   – Solve and Census, wiring the above together with logging and metrics
//	config/   – YAML configuration and logger construction for the command
//	cmd/burrow – the command line: solve, census, render
//
// Quick start:
//
//	l, err := burrow.ParseString(diagram)
//	if err != nil { … }
//	res, err := solver.Solve(l)
//	if err != nil { … }
//	fmt.Println(res.Cost) // or "no solution" when !res.Solved
package burrow
