package nodegrid

import "fmt"

// Node is the capacity pair of one storage node.
type Node struct {
	Used  int
	Avail int
}

// Size returns the node's total capacity, which moves never change.
func (n Node) Size() int { return n.Used + n.Avail }

// Empty reports whether the node holds no data.
func (n Node) Empty() bool { return n.Used == 0 }

// Fits reports whether n's data can move into dst: n is non-empty and dst
// has room for all of it.
func (n Node) Fits(dst Node) bool {
	return n.Used > 0 && dst.Avail >= n.Used
}

// String formats the node as "used/size".
func (n Node) String() string {
	return fmt.Sprintf("%d/%d", n.Used, n.Size())
}

// transfer moves all of src's data into dst and returns both updated nodes.
func transfer(src, dst Node) (Node, Node) {
	dst.Used += src.Used
	dst.Avail -= src.Used
	src.Avail += src.Used
	src.Used = 0
	return src, dst
}
