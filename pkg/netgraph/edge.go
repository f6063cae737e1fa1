package netgraph

import (
	"math"
	"strconv"

	"github.com/matzehuels/netgraph/pkg/component"
	"github.com/matzehuels/netgraph/pkg/config"
	nerrors "github.com/matzehuels/netgraph/pkg/errors"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/objects"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// Edge connects two nodes, or a node to itself.
type Edge interface {
	component.Member

	// Endpoints returns the ordered endpoints.
	Endpoints() (Node, Node)
	// Label returns the edge's text.
	Label() string
	// Weight returns the weight and whether one is set.
	Weight() (int, bool)
	// Position returns how many edges with the same ordered endpoints
	// existed when this edge was created.
	Position() int
	// IsSelfLoop reports whether both endpoints are the same node.
	IsSelfLoop() bool
	// Draw creates the edge's line and texts without grouping them.
	Draw() ([]objects.Object, error)
	// Render draws the edge, groups the primitives and lowers them beneath
	// the nodes.
	Render() error
	// Update moves the drawn primitives to follow the endpoints.
	Update() error
}

// EdgeParams carries everything an [EdgeFactory] needs.
type EdgeParams struct {
	A, B     Node
	Label    string
	Weight   *int
	Position int
	Config   config.Edge
}

// EdgeFactory creates the edges of a [Manager]. A factory must join the edge
// and its endpoints into a component, normally with [Manager.Merge].
type EdgeFactory func(m *Manager, p EdgeParams) (Edge, error)

// DefaultEdgeFactory creates a [CanvasEdge].
func DefaultEdgeFactory(m *Manager, p EdgeParams) (Edge, error) {
	e, err := NewCanvasEdge(m, p)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// CanvasEdge is the default [Edge]: a smoothed curve with a label and a
// weight text, both kept parallel to the line.
type CanvasEdge struct {
	m           *Manager
	s           surface.Surface
	a, b        Node
	label       string
	weight      *int
	position    int
	cfg         config.Edge
	group       objects.Container
	componentID string
	rendered    bool

	dragX, dragY float64
}

// NewCanvasEdge creates an undrawn edge and merges it into the components of
// its endpoints. The edge's group never drags itself; presses and drags are
// handled according to the configured drag mode.
func NewCanvasEdge(m *Manager, p EdgeParams) (*CanvasEdge, error) {
	if p.A == nil || p.B == nil {
		return nil, ErrNilEndpoint
	}
	e := &CanvasEdge{
		m:        m,
		s:        m.Surface(),
		a:        p.A,
		b:        p.B,
		label:    p.Label,
		weight:   p.Weight,
		position: p.Position,
		cfg:      p.Config,
		group:    m.NewGroup(true),
	}
	if _, err := m.Merge(e, p.A, p.B); err != nil {
		return nil, err
	}
	e.group.Bind(surface.EventPress, e.onPress)
	e.group.Bind(surface.EventDrag, e.onDrag)
	return e, nil
}

func (e *CanvasEdge) Endpoints() (Node, Node)  { return e.a, e.b }
func (e *CanvasEdge) Label() string            { return e.label }
func (e *CanvasEdge) Position() int            { return e.position }
func (e *CanvasEdge) IsSelfLoop() bool         { return e.a == e.b }
func (e *CanvasEdge) Config() config.Edge      { return e.cfg }
func (e *CanvasEdge) ComponentID() string      { return e.componentID }
func (e *CanvasEdge) SetComponentID(id string) { e.componentID = id }
func (e *CanvasEdge) Group() objects.Container { return e.group }
func (e *CanvasEdge) String() string           { return e.a.Label() + "->" + e.b.Label() }

func (e *CanvasEdge) Weight() (int, bool) {
	if e.weight == nil {
		return 0, false
	}
	return *e.weight, true
}

// Offset returns the curvature distance: the configured offset scaled by the
// edge's rank among its parallel edges. Self-loops use half the magnitude.
func (e *CanvasEdge) Offset() float64 {
	rank := float64(e.position + 1)
	if e.IsSelfLoop() {
		return math.Abs(float64(e.cfg.Offset)) / 2 * rank
	}
	return float64(e.cfg.Offset) * rank
}

// points returns the flat line coordinates for the current endpoint
// positions: five loop points for a self-loop, else start, control, end.
func (e *CanvasEdge) points() ([]float64, error) {
	if e.IsSelfLoop() {
		box, _ := e.a.BBox()
		return geom.Flat(geom.SelfLoopPoints(box, e.Offset())...), nil
	}
	p1, p2 := e.a.Center(), e.b.Center()
	if p1 == p2 {
		return nil, nerrors.Wrap(nerrors.ErrCodeDegenerate, geom.ErrCoincidentPoints,
			"edge %s: endpoints share a center", e)
	}
	return geom.Flat(p1, geom.CurvedMidpoint(p1, p2, e.Offset()), p2), nil
}

func (e *CanvasEdge) Draw() ([]objects.Object, error) {
	coords, err := e.points()
	if err != nil {
		return nil, err
	}

	handles := createLine(e.s, e.cfg.Antialiased, coords, surface.Style{
		Fill:        e.cfg.LineColor,
		Width:       e.cfg.LineWidth,
		Smooth:      true,
		SplineSteps: e.cfg.LineSegments,
	})
	objs := objects.Wrap(e.s, handles...)

	weight := ""
	if w, ok := e.Weight(); ok {
		weight = strconv.Itoa(w)
	}
	for _, t := range []struct {
		text string
		cfg  config.EdgeText
	}{
		{e.label, e.cfg.Label},
		{weight, e.cfg.Weight},
	} {
		txt := newEdgeText(e, t.text, t.cfg)
		if err := txt.place(coords); err != nil {
			return nil, err
		}
		objs = append(objs, txt)
	}
	return objs, nil
}

// Render implements [Edge]. Rendering an edge again replaces its primitives.
func (e *CanvasEdge) Render() error {
	objs, err := e.Draw()
	if err != nil {
		return err
	}
	if e.rendered {
		e.group.RemoveAll()
	}
	e.group.Add(objs...)
	e.group.Lower()
	e.rendered = true
	return nil
}

func (e *CanvasEdge) Update() error {
	coords, err := e.points()
	if err != nil {
		return err
	}
	e.group.Coords(coords...)
	return nil
}

func (e *CanvasEdge) onPress(ev surface.Event) {
	e.dragX, e.dragY = ev.X, ev.Y
}

func (e *CanvasEdge) onDrag(ev surface.Event) {
	dx, dy := ev.X-e.dragX, ev.Y-e.dragY
	switch e.cfg.DragMode {
	case config.DragComponentOnly:
		e.s.Move(e.componentID, dx, dy)
	case config.DragAll:
		e.s.Move(surface.All, dx, dy)
	}
	e.dragX, e.dragY = ev.X, ev.Y
}
