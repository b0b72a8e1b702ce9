package laminate

import (
	"fmt"

	"github.com/pochishchalov/LaminateSketch/geom"
	"github.com/pochishchalov/LaminateSketch/rawsketch"
)

// NodePos is a logical (layer, ply, node) coordinate into a Laminate. It is
// an index, never a pointer, so it stays valid across the reindexing that
// node insertion performs within a ply; it is invalidated only by removing
// nodes, which this package never does.
type NodePos struct {
	Layer, Ply, Node int
}

func (p NodePos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Layer, p.Ply, p.Node)
}

// Less reports whether p sorts before q in lexicographic (layer, ply, node)
// order.
func (p NodePos) Less(q NodePos) bool {
	if p.Layer != q.Layer {
		return p.Layer < q.Layer
	}
	if p.Ply != q.Ply {
		return p.Ply < q.Ply
	}
	return p.Node < q.Node
}

// Node is a single vertex of a Ply, carrying its own stable position and
// optional links to the adjacent-layer nodes directly above and below it.
// Upper and Lower are never both set to positions in the same layer; a
// link always crosses exactly one layer boundary.
type Node struct {
	Point    geom.Point
	Position NodePos
	Upper    *NodePos
	Lower    *NodePos
}

// Ply is an ordered chain of Nodes sharing one Orientation.
type Ply struct {
	Nodes       []Node
	Orientation rawsketch.Orientation
}

// FirstNode returns the ply's first node.
func (p *Ply) FirstNode() *Node { return &p.Nodes[0] }

// LastNode returns the ply's last node.
func (p *Ply) LastNode() *Node { return &p.Nodes[len(p.Nodes)-1] }

// Layer is an ordered sequence of Plies, conventionally sorted left to
// right by leftmost x.
type Layer struct {
	Plies []Ply
}

// AddPly appends a new, empty ply with the given orientation and returns
// its index within the layer.
func (l *Layer) AddPly(o rawsketch.Orientation) int {
	l.Plies = append(l.Plies, Ply{Orientation: o})
	return len(l.Plies) - 1
}

// Laminate is an ordered stack of Layers: the structured product of
// assembly. The zero value is an empty laminate.
type Laminate struct {
	Layers []Layer
}

// IsEmpty reports whether the laminate has no layers.
func (l *Laminate) IsEmpty() bool { return len(l.Layers) == 0 }

// LayersCount returns the number of layers.
func (l *Laminate) LayersCount() int { return len(l.Layers) }

// AddLayer appends a new, empty layer and returns its index.
func (l *Laminate) AddLayer() int {
	l.Layers = append(l.Layers, Layer{})
	return len(l.Layers) - 1
}

// Node returns a pointer to the node at pos. The pointer is invalidated by
// any subsequent InsertNode call on the same ply.
func (l *Laminate) Node(pos NodePos) *Node {
	return &l.Layers[pos.Layer].Plies[pos.Ply].Nodes[pos.Node]
}

// LastNodePos returns the position of the last node of the last ply of the
// last layer.
func (l *Laminate) LastNodePos() NodePos {
	layerPos := len(l.Layers) - 1
	plyPos := len(l.Layers[layerPos].Plies) - 1
	nodePos := len(l.Layers[layerPos].Plies[plyPos].Nodes) - 1
	return NodePos{Layer: layerPos, Ply: plyPos, Node: nodePos}
}

// IsFirstPlyNode reports whether pos names the first node of its ply.
func (l *Laminate) IsFirstPlyNode(pos NodePos) bool { return pos.Node == 0 }

// IsLastPlyNode reports whether pos names the last node of its ply.
func (l *Laminate) IsLastPlyNode(pos NodePos) bool {
	return pos.Node == len(l.Layers[pos.Layer].Plies[pos.Ply].Nodes)-1
}

// InsertNode inserts n into the ply named by pos, at pos.Node, shifting
// every node at or after that index one place to the right and fixing up
// every cross-layer link that referenced a shifted node's old position.
// n's Position field is overwritten with pos.
func (l *Laminate) InsertNode(pos NodePos, n Node) {
	n.Position = pos
	ply := &l.Layers[pos.Layer].Plies[pos.Ply]

	ply.Nodes = append(ply.Nodes, Node{})
	copy(ply.Nodes[pos.Node+1:], ply.Nodes[pos.Node:])
	ply.Nodes[pos.Node] = n

	l.reindexAfterInsert(pos)
}

// reindexAfterInsert bumps the Position.Node of every node after pos in its
// ply by one, and corrects the nodePos field of the link on the far side of
// any cross-layer link those nodes hold: if node i has a Lower link, the
// target's Upper.Node must track i's new position, and symmetrically for
// Upper/Lower.
func (l *Laminate) reindexAfterInsert(pos NodePos) {
	ply := &l.Layers[pos.Layer].Plies[pos.Ply]
	for i := pos.Node + 1; i < len(ply.Nodes); i++ {
		current := &ply.Nodes[i]
		current.Position.Node++
		if current.Lower != nil {
			l.Node(*current.Lower).Upper.Node++
		}
		if current.Upper != nil {
			l.Node(*current.Upper).Lower.Node++
		}
	}
}

// FindRootNode returns the position of the laminate's root node: the
// bottom-left node reached by following Upper links from (0,0,0) and, each
// time the link lands on a node that is not first in its ply, jumping back
// to that ply's first node.
func (l *Laminate) FindRootNode() NodePos {
	result := NodePos{}
	node := *l.Node(result)
	for node.Upper != nil {
		node = *l.Node(*node.Upper)
		if node.Position.Node != 0 {
			node = *l.Layers[node.Position.Layer].Plies[node.Position.Ply].FirstNode()
			result = node.Position
		}
	}
	return result
}

// TraceToBottom follows Lower links from start until a node with no Lower
// link is reached, and returns its position.
func (l *Laminate) TraceToBottom(start NodePos) NodePos {
	current := start
	for {
		n := l.Node(current)
		if n.Lower == nil {
			return current
		}
		current = *n.Lower
	}
}

// TraceToTop follows Upper links from start until a node with no Upper
// link is reached, and returns its position.
func (l *Laminate) TraceToTop(start NodePos) NodePos {
	current := start
	for {
		n := l.Node(current)
		if n.Upper == nil {
			return current
		}
		current = *n.Upper
	}
}

// Clone returns a deep copy of l: every layer, ply, node and link pointer
// is independently allocated, so mutating the copy never affects l.
func (l *Laminate) Clone() *Laminate {
	out := &Laminate{Layers: make([]Layer, len(l.Layers))}
	for i, layer := range l.Layers {
		plies := make([]Ply, len(layer.Plies))
		for j, ply := range layer.Plies {
			nodes := make([]Node, len(ply.Nodes))
			for k, n := range ply.Nodes {
				nc := n
				if n.Upper != nil {
					u := *n.Upper
					nc.Upper = &u
				}
				if n.Lower != nil {
					d := *n.Lower
					nc.Lower = &d
				}
				nodes[k] = nc
			}
			plies[j] = Ply{Nodes: nodes, Orientation: ply.Orientation}
		}
		out.Layers[i] = Layer{Plies: plies}
	}
	return out
}
