// Package gridshift is a small best-first search toolkit and the storage
// cluster puzzle it was built for: move the data of one node to the
// top-left corner of a grid of capacity-limited nodes in as few transfers
// as possible.
//
// What is in the box?
//
//	grid/          Coord, Direction, Move value types and a dense Grid[T]
//	astar/         the State contract and a deterministic A* engine
//	bfs/           exhaustive breadth-first explorer over the same contract
//	nodegrid/      the storage-node puzzle: listing parser, viable pairs,
//	               renderer, full-fidelity and compressed states
//	config/        YAML/env run configuration for the command
//	cmd/gridshift  the solve, viable and render commands
//
// A 3×3 cluster as the renderer draws it:
//
//	(.) .  G     G  payload, needs to reach (0,0)
//	 .  _  .     _  the only empty node
//	 #  .  .     #  too large to ever move
//
// Any problem can be searched by astar.Search once its state implements
// astar.State: cached legal moves, a pure transition, an admissible
// estimate and a comparable key. Two states with equal keys are treated as
// the same state, which is how nodegrid.Compressed collapses every
// configuration of interchangeable nodes into (empty, payload).
//
//	go install github.com/katalvlaran/gridshift/cmd/gridshift@latest
package gridshift
