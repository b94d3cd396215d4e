package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

var (
	// ErrNodeNotFound is returned when an edge endpoint does not exist.
	ErrNodeNotFound = errors.New("graph: node not found")
	// ErrSelfEdge is returned when both edge endpoints name the same node.
	ErrSelfEdge = errors.New("graph: self edges are not allowed")
)

// Arc is one half of an undirected edge, stored on its source node.
type Arc struct {
	To       string
	Distance float64
}

func (a Arc) Destination() string { return a.To }
func (a Arc) Cost() float64       { return a.Distance }

// Node is a named point with a geographic coordinate. Identity is the name
// alone; adding a node under an existing name overwrites its coordinate.
type Node struct {
	Name  string
	Coord geometry.Point
	arcs  []Arc
}

// Arcs returns the node's incident edges in insertion order. The order is not
// a correctness contract, it only keeps tie-breaking reproducible.
func (n *Node) Arcs() []Arc { return n.arcs }

// Graph is a mutable collection of named nodes with undirected weighted
// edges. Edges are stored redundantly on both endpoints; AddEdge keeps the
// two halves consistent. Once fully built a Graph is treated as read-only, so
// concurrent searches over it need no locking.
type Graph struct {
	names     []string // insertion order of the nodes
	nodes     map[string]*Node
	edgeCount int
}

func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node under a unique name, or overwrites the coordinate of
// an existing one. No edges are created.
func (g *Graph) AddNode(name string, coord geometry.Point) {
	if node, ok := g.nodes[name]; ok {
		node.Coord = coord
		return
	}
	g.nodes[name] = &Node{Name: name, Coord: coord}
	g.names = append(g.names, name)
}

// FindNode returns the node registered under name. Callers must check the
// second return value; a missing node is an expected outcome, not a panic.
func (g *Graph) FindNode(name string) (*Node, bool) {
	node, ok := g.nodes[name]
	return node, ok
}

// AddEdge installs an undirected edge between two existing nodes with the
// given weight. The edge is written symmetrically on both endpoints;
// connecting an already-connected pair overwrites the previous weight instead
// of adding a parallel edge. On error the graph is left unchanged.
func (g *Graph) AddEdge(a, b string, distance float64) error {
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfEdge, a)
	}
	nodeA, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	nodeB, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	updated := setArc(nodeA, b, distance)
	setArc(nodeB, a, distance)
	if !updated {
		g.edgeCount++
	}
	return nil
}

// setArc overwrites the arc towards `to` if present, otherwise appends it.
// Reports whether an existing arc was overwritten.
func setArc(n *Node, to string, distance float64) bool {
	for i := range n.arcs {
		if n.arcs[i].To == to {
			n.arcs[i].Distance = distance
			return true
		}
	}
	n.arcs = append(n.arcs, Arc{To: to, Distance: distance})
	return false
}

// Neighbors returns the (neighbor, weight) pairs of the named node in
// insertion order, or nil if the node does not exist.
func (g *Graph) Neighbors(name string) []Arc {
	node, ok := g.nodes[name]
	if !ok {
		return nil
	}
	return node.Arcs()
}

// Names returns the node names in insertion order.
func (g *Graph) Names() []string {
	return g.names
}

func (g *Graph) NodeCount() int { return len(g.names) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// AsString returns a human readable dump of the graph: node and edge counts,
// then every node as "name lat lon", then every half-edge as "from to km".
func (g *Graph) AsString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.EdgeCount()))

	sb.WriteString("#Nodes\n")
	for _, name := range g.names {
		node := g.nodes[name]
		sb.WriteString(fmt.Sprintf("%v %v %v\n", name, node.Coord.Lat(), node.Coord.Lon()))
	}

	sb.WriteString("#Edges\n")
	for _, name := range g.names {
		for _, arc := range g.nodes[name].arcs {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", name, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}
