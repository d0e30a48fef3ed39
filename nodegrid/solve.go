package nodegrid

import (
	"github.com/katalvlaran/gridshift/astar"
	"github.com/katalvlaran/gridshift/grid"
)

// Solution is the outcome of Solve.
type Solution struct {
	// Result is the engine's answer. Result.Found == false means the
	// payload cannot reach Target.
	Result *astar.Result[grid.Move]

	// Compressed reports whether the compressed state was searched.
	Compressed bool

	// Declined holds the classification error when compression was
	// attempted and rejected; nil otherwise.
	Declined error
}

// Solve searches s through its Compressed form when classification
// succeeds and falls back to the full-fidelity state otherwise. Both paths
// return the same solution length.
func Solve(s *State, opts ...astar.Option) (*Solution, error) {
	c, declined := Compress(s)
	if declined != nil {
		res, err := SolveFull(s, opts...)
		return &Solution{Result: res, Declined: declined}, err
	}
	res, err := SolveCompressed(c, opts...)
	return &Solution{Result: res, Compressed: true}, err
}

// SolveFull runs the engine on the full-fidelity state.
func SolveFull(s *State, opts ...astar.Option) (*astar.Result[grid.Move], error) {
	return astar.Search[*State, grid.Move, FullKey](s, opts...)
}

// SolveCompressed runs the engine on a compressed state.
func SolveCompressed(c *Compressed, opts ...astar.Option) (*astar.Result[grid.Move], error) {
	return astar.Search[*Compressed, grid.Move, CompressedKey](c, opts...)
}
