package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense Width×Height array of cells stored row-major in a single
// slice. len(cells) == width*height holds for the lifetime of the value.
// Grid is not safe for concurrent mutation; Clone before handing a copy off.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New returns a zero-valued w×h grid. It panics if either dimension is not
// positive.
func New[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", w, h))
	}
	return &Grid[T]{width: w, height: h, cells: make([]T, w*h)}
}

// FromRows builds a grid from rows indexed [y][x]. The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := New[T](w, h)
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// FromCells builds a grid from a sparse set of (coordinate, value) pairs.
// The bounds are inferred as one past the largest X and the largest Y seen;
// every cell of that rectangle must be present.
// Returns ErrEmptyGrid for an empty map, ErrMissingCell (wrapped with the
// first hole in row-major order) for an incomplete rectangle.
// Negative coordinates are reported as ErrMissingCell as well, since they
// can never lie inside the inferred rectangle.
// Complexity: O(W×H).
func FromCells[T any](cells map[Coord]T) (*Grid[T], error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := 0, 0
	for c := range cells {
		if c.X < 0 || c.Y < 0 {
			return nil, fmt.Errorf("%w: negative coordinate %s", ErrMissingCell, c)
		}
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	g := New[T](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, ok := cells[Coord{X: x, Y: y}]
			if !ok {
				return nil, fmt.Errorf("%w: %s in %dx%d", ErrMissingCell, Coord{X: x, Y: y}, w, h)
			}
			g.cells[g.index(x, y)] = v
		}
	}
	return g, nil
}

// MustFromCells is like FromCells but panics on error.
func MustFromCells[T any](cells map[Coord]T) *Grid[T] {
	g, err := FromCells(cells)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the value stored at c. It panics if c is out of range.
func (g *Grid[T]) At(c Coord) T {
	return g.cells[g.mustIndex(c)]
}

// Set stores v at c. It panics if c is out of range.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.mustIndex(c)] = v
}

// Clone returns a copy of g with its own backing slice. Values are copied
// shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// All iterates over every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Neighbors returns the in-bounds directions of c on this grid.
func (g *Grid[T]) Neighbors(c Coord) []Direction {
	return Neighbors(c, g.width, g.height)
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid[T]) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid[T]) mustIndex(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: %s out of range %dx%d", c, g.width, g.height))
	}
	return g.index(c.X, c.Y)
}

// Neighbors returns the directions from c that stay inside a w×h grid,
// in the order Up, Down, Left, Right. Corners yield two directions, edges
// three, interior cells four.
func Neighbors(c Coord, w, h int) []Direction {
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
