package nodegrid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridshift/grid"
)

// nodePrefix marks the lines of a listing that describe a node. Anything
// else (the shell prompt, the column header, blank lines) is skipped.
const nodePrefix = "/dev/grid/node-"

var nodeLine = regexp.MustCompile(`^/dev/grid/node-x(\d+)-y(\d+)\s+(\d+)T\s+(\d+)T\s+(\d+)T\s+(\d+)%$`)

// Parse reads a df-style listing of the cluster:
//
//	root@ebhq-gridcenter# df -h
//	Filesystem              Size  Used  Avail  Use%
//	/dev/grid/node-x0-y0     10T    8T     2T   80%
//
// and returns the node grid. Node lines may appear in any order.
// Returns ErrBadLine (with the line number) for a malformed node line, a
// size that is not Used+Avail, or a repeated coordinate, and
// grid.ErrMissingCell if the nodes do not cover a full rectangle.
func Parse(r io.Reader) (*grid.Grid[Node], error) {
	cells := make(map[grid.Coord]Node)
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, nodePrefix) {
			continue
		}
		c, n, err := parseNode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, lineNo, err)
		}
		if _, dup := cells[c]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate node %s", ErrBadLine, lineNo, c)
		}
		cells[c] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("nodegrid: read listing: %w", err)
	}
	g, err := grid.FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("nodegrid: build grid: %w", err)
	}
	return g, nil
}

// parseNode decodes one node line into its coordinate and capacity pair.
func parseNode(line string) (grid.Coord, Node, error) {
	m := nodeLine.FindStringSubmatch(line)
	if m == nil {
		return grid.Coord{}, Node{}, fmt.Errorf("unrecognised %q", line)
	}
	v := make([]int, len(m)-1)
	for i, s := range m[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return grid.Coord{}, Node{}, fmt.Errorf("field %d of %q: %w", i+1, line, err)
		}
		v[i] = n
	}
	size, used, avail := v[2], v[3], v[4]
	if used+avail != size {
		return grid.Coord{}, Node{}, fmt.Errorf("size %dT != used %dT + avail %dT", size, used, avail)
	}
	return grid.Coord{X: v[0], Y: v[1]}, Node{Used: used, Avail: avail}, nil
}

// WriteListing writes g in the format Parse reads, column by column as the
// cluster itself lists its nodes.
func WriteListing(w io.Writer, g *grid.Grid[Node]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "root@ebhq-gridcenter# df -h")
	fmt.Fprintf(bw, "%-22s %5s %5s %6s %5s\n", "Filesystem", "Size", "Used", "Avail", "Use%")
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			n := g.At(grid.Coord{X: x, Y: y})
			pct := 0
			if n.Size() > 0 {
				pct = n.Used * 100 / n.Size()
			}
			name := fmt.Sprintf("%sx%d-y%d", nodePrefix, x, y)
			fmt.Fprintf(bw, "%-22s %4dT %4dT %5dT %4d%%\n", name, n.Size(), n.Used, n.Avail, pct)
		}
	}
	return bw.Flush()
}
