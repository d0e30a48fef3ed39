// Package grid provides small immutable 2D value types and a dense,
// fixed-size container addressed by coordinate.
//
// What:
//
//   - Coord is an (X, Y) position; comparable and usable as a map key.
//   - Direction enumerates Up, Down, Left, Right with an involutive Inverse.
//   - Move pairs a source Coord with a Direction; its destination is derived.
//   - Grid[T] stores Width×Height cells in one row-major slice.
//
// Why:
//
//   - Puzzle states keep their bookkeeping in a Grid and describe
//     transitions as Moves, so search code never deals with raw indices.
//   - Value semantics make Coord and Move safe to copy into keys, logs and
//     solution paths.
//
// Construction:
//
//   - New(w, h):       zero-valued grid.
//   - FromRows(rows):  rows[y][x], rectangular input required.
//   - FromCells(m):    sparse map; bounds are one past the largest X and Y,
//     and every cell of that rectangle must be present.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Clone, FromRows, FromCells: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows, no columns, or no cells.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingCell:    sparse input leaves a hole in the inferred rectangle.
//
// Out-of-range At/Set is a programming error and panics, like slice indexing.
package grid
