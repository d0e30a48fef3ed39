package nodegrid

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/gridshift/grid"
)

// Render draws s one row per line:
//
//	G  payload
//	_  empty node
//	#  blocker: holds more than the largest empty node can take
//	.  any other node
//
// Target is wrapped in parentheses. If the grid has no empty node nothing
// is drawn as a blocker.
func Render(w io.Writer, s *State) error {
	limit := -1
	for _, n := range s.grid.All() {
		if n.Empty() {
			limit = max(limit, n.Size())
		}
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < s.Height(); y++ {
		var row strings.Builder
		for x := 0; x < s.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			n := s.grid.At(c)
			mark := byte('.')
			switch {
			case c == s.payload:
				mark = 'G'
			case n.Empty():
				mark = '_'
			case limit >= 0 && n.Used > limit:
				mark = '#'
			}
			if c == Target {
				row.WriteByte('(')
				row.WriteByte(mark)
				row.WriteByte(')')
			} else {
				row.WriteByte(' ')
				row.WriteByte(mark)
				row.WriteByte(' ')
			}
		}
		bw.WriteString(strings.TrimRight(row.String(), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
