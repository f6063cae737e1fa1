package netgraph

import (
	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/objects"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// Canvas tracks the dynamic line: the half-drawn edge that follows the
// pointer from the node where a connection gesture started.
//
// Canvas implements [objects.Gesture], so dragging any enabled group aborts
// the line.
type Canvas struct {
	s      surface.Surface
	groups objects.Factory
	edge   *config.Edge
	active *activeLine
}

type activeLine struct {
	node   Node
	group  objects.Container
	motion surface.BindingID
}

// NewCanvas creates a canvas on s that builds its line groups with groups.
// The line is styled like an edge drawn with edge, read at each start; nil
// means the default edge configuration.
func NewCanvas(s surface.Surface, groups objects.Factory, edge *config.Edge) *Canvas {
	if groups == nil {
		groups = objects.DefaultFactory
	}
	if edge == nil {
		edge = &config.Default().Edge
	}
	return &Canvas{s: s, groups: groups, edge: edge}
}

// Surface returns the underlying surface.
func (c *Canvas) Surface() surface.Surface { return c.s }

// ActiveNode returns the node the dynamic line starts from, or nil.
func (c *Canvas) ActiveNode() Node {
	if c.active == nil {
		return nil
	}
	return c.active.node
}

// Active implements [objects.Gesture].
func (c *Canvas) Active() bool { return c.active != nil }

// Abort implements [objects.Gesture]. It stops the dynamic line if one is in
// progress.
func (c *Canvas) Abort() {
	if c.active != nil {
		_ = c.StopDynamicLine()
	}
}

// StartDynamicLine draws a line from n's center and makes it follow pointer
// motion until [Canvas.StopDynamicLine]. A line already in progress is
// stopped first.
func (c *Canvas) StartDynamicLine(n Node) {
	c.Abort()

	center := n.Center()
	group := c.groups(c.s, nil, true)
	handles := createLine(c.s, c.edge.Antialiased, geom.Flat(center, center), surface.Style{
		Fill:  c.edge.LineColor,
		Width: c.edge.LineWidth,
	})
	group.Add(objects.Wrap(c.s, handles...)...)
	group.Lower()

	c.active = &activeLine{node: n, group: group}
	c.active.motion = c.s.Bind(surface.EventMotion, c.follow)
}

// StopDynamicLine removes the dynamic line and clears the active node. It
// returns [ErrNoActiveNode] if no line is in progress.
func (c *Canvas) StopDynamicLine() error {
	if c.active == nil {
		return ErrNoActiveNode
	}
	c.active.group.RemoveAll()
	c.s.Unbind(surface.EventMotion, c.active.motion)
	c.active = nil
	return nil
}

func (c *Canvas) follow(ev surface.Event) {
	if c.active == nil {
		return
	}
	p := c.s.CanvasPoint(ev.X, ev.Y)
	c.active.group.Coords(geom.Flat(c.active.node.Center(), p)...)
}
