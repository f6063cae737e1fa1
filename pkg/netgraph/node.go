package netgraph

import (
	"slices"

	"github.com/matzehuels/netgraph/pkg/component"
	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/objects"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// DefaultRadius is the node radius used when the configuration leaves it
// unset.
const DefaultRadius = 50

// doubleCircleSpace is the gap between the rings of an anti-aliased node.
const doubleCircleSpace = 10

// Node is a labeled vertex. Nodes refer to their incident edges but do not
// own them.
type Node interface {
	component.Member

	// Label returns the node's text.
	Label() string
	// Center returns the center of the node's drawn primitives, or the zero
	// point before the node is rendered.
	Center() geom.Point
	// BBox returns the bounding box of the node's drawn primitives.
	BBox() (geom.BBox, bool)
	// Edges returns the incident edges in the order they were added.
	Edges() []Edge
	// AddEdge records e as incident. Adding an edge twice has no effect.
	AddEdge(e Edge)
	// Draw creates the node's primitives centered at pos without grouping
	// them.
	Draw(pos geom.Point) []surface.Handle
	// Render draws the node at pos and adds the primitives to its group.
	Render(pos geom.Point)
}

// NodeFactory creates the nodes of a [Manager].
type NodeFactory func(m *Manager, label string, cfg config.Node) Node

// DefaultNodeFactory creates a [CanvasNode].
func DefaultNodeFactory(m *Manager, label string, cfg config.Node) Node {
	return NewCanvasNode(m, label, cfg)
}

// CanvasNode is the default [Node]: a circle with a centered label.
type CanvasNode struct {
	s           surface.Surface
	label       string
	cfg         config.Node
	group       objects.Container
	componentID string
	edges       []Edge
}

// NewCanvasNode creates an undrawn node. Its group handles drags unless
// dragging is disabled in cfg.
func NewCanvasNode(m *Manager, label string, cfg config.Node) *CanvasNode {
	return &CanvasNode{
		s:     m.Surface(),
		label: label,
		cfg:   cfg,
		group: m.NewGroup(!cfg.EnableDragging),
	}
}

func (n *CanvasNode) Label() string            { return n.label }
func (n *CanvasNode) Config() config.Node      { return n.cfg }
func (n *CanvasNode) ComponentID() string      { return n.componentID }
func (n *CanvasNode) SetComponentID(id string) { n.componentID = id }
func (n *CanvasNode) Group() objects.Container { return n.group }
func (n *CanvasNode) Edges() []Edge            { return slices.Clone(n.edges) }
func (n *CanvasNode) BBox() (geom.BBox, bool)  { return n.s.BBox(n.group.ID()) }
func (n *CanvasNode) String() string           { return n.label }

func (n *CanvasNode) AddEdge(e Edge) {
	if !slices.Contains(n.edges, e) {
		n.edges = append(n.edges, e)
	}
}

func (n *CanvasNode) Center() geom.Point {
	box, ok := n.BBox()
	if !ok {
		return geom.Point{}
	}
	return box.Center()
}

func (n *CanvasNode) Draw(pos geom.Point) []surface.Handle {
	radius := n.cfg.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	var handles []surface.Handle
	if n.cfg.Antialiased {
		handles = createDoubleCircle(n.s, pos, doubleCircleSpace, radius)
	} else {
		handles = append(handles, n.s.CreateOval(circleBox(pos, radius), surface.Style{Fill: n.s.Background()}))
	}
	return append(handles, n.s.CreateText(pos, surface.Style{Fill: n.cfg.LabelColor, Text: n.label}))
}

func (n *CanvasNode) Render(pos geom.Point) {
	n.group.Add(objects.Wrap(n.s, n.Draw(pos)...)...)
}
