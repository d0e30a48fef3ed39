package grid

import "fmt"

// Coord is a position on a grid. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted one step in direction d.
func (c Coord) Add(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal directions.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Directions lists every Direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Inverse returns the opposite direction. d.Inverse().Inverse() == d.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("grid: invalid direction %d", uint8(d)))
}

// Delta returns the (dx, dy) step for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("grid: invalid direction %d", uint8(d)))
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Move is a step from From in direction Dir. The destination is derived
// by To and never stored.
type Move struct {
	From Coord
	Dir  Direction
}

// To returns the destination coordinate of m.
func (m Move) To() Coord {
	return m.From.Add(m.Dir)
}

// Inverse returns the move that undoes m: from m.To() back to m.From.
func (m Move) Inverse() Move {
	return Move{From: m.To(), Dir: m.Dir.Inverse()}
}

// String formats the move as "(x,y)->dir".
func (m Move) String() string {
	return m.From.String() + "->" + m.Dir.String()
}

// Touches reports whether c is the source or the destination of m.
func (m Move) Touches(c Coord) bool {
	return m.From == c || m.To() == c
}
