package astar_test

import (
	"github.com/katalvlaran/gridshift/grid"
)

// toyGraph is an explicit directed graph with a per-vertex estimate, used to
// drive the engine through hand-picked orderings.
type toyGraph struct {
	edges    map[string][]string
	estimate map[string]int
	goals    map[string]bool
}

// vertex is a State over a toyGraph; moves are target vertex IDs.
type vertex struct {
	g  *toyGraph
	id string
}

func (v vertex) Done() bool             { return v.g.goals[v.id] }
func (v vertex) Estimate() int          { return v.g.estimate[v.id] }
func (v vertex) Moves() []string        { return v.g.edges[v.id] }
func (v vertex) Apply(to string) vertex { return vertex{g: v.g, id: to} }
func (v vertex) Key() string            { return v.id }

// maze is a 4-connected walker on a character map: '#' is a wall, 'S' the
// start and 'G' the goal. The estimate is the taxicab distance.
type maze struct {
	walls *grid.Grid[bool]
	goal  grid.Coord
}

type walker struct {
	m     *maze
	at    grid.Coord
	moves []grid.Move
}

func parseMaze(rows ...string) walker {
	cells := make([][]bool, len(rows))
	m := &maze{}
	var start grid.Coord
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				cells[y][x] = true
			case 'S':
				start = grid.Coord{X: x, Y: y}
			case 'G':
				m.goal = grid.Coord{X: x, Y: y}
			}
		}
	}
	walls, err := grid.FromRows(cells)
	if err != nil {
		panic(err)
	}
	m.walls = walls
	return m.at(start)
}

func (m *maze) at(c grid.Coord) walker {
	w := walker{m: m, at: c}
	for _, d := range m.walls.Neighbors(c) {
		if !m.walls.At(c.Add(d)) {
			w.moves = append(w.moves, grid.Move{From: c, Dir: d})
		}
	}
	return w
}

func (w walker) Done() bool                { return w.at == w.m.goal }
func (w walker) Estimate() int             { return w.at.Manhattan(w.m.goal) }
func (w walker) Moves() []grid.Move        { return w.moves }
func (w walker) Apply(mv grid.Move) walker { return w.m.at(mv.To()) }
func (w walker) Key() grid.Coord           { return w.at }
