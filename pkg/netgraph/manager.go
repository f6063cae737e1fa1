package netgraph

import (
	"errors"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgraph/pkg/component"
	"github.com/matzehuels/netgraph/pkg/config"
	nerrors "github.com/matzehuels/netgraph/pkg/errors"
	"github.com/matzehuels/netgraph/pkg/objects"
	"github.com/matzehuels/netgraph/pkg/observability"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// ZoomFactor is the scale applied by one zoom-in step. Zooming out scales by
// its inverse.
const ZoomFactor = 1.1

// Option configures a [Manager].
type Option func(*Manager)

func WithLogger(l *log.Logger) Option           { return func(m *Manager) { m.logger = l } }
func WithNodeFactory(f NodeFactory) Option      { return func(m *Manager) { m.nodeFactory = f } }
func WithEdgeFactory(f EdgeFactory) Option      { return func(m *Manager) { m.edgeFactory = f } }
func WithGroupFactory(f objects.Factory) Option { return func(m *Manager) { m.groupFactory = f } }

// Manager creates the nodes and edges of one graph on one surface.
//
// A Manager is driven by the surface's event loop and is not safe for
// concurrent use.
type Manager struct {
	s        surface.Surface
	cfg      *config.Config
	logger   *log.Logger
	registry *component.Registry
	canvas   *Canvas

	nodeFactory  NodeFactory
	edgeFactory  EdgeFactory
	groupFactory objects.Factory

	nodes []Node
	edges []Edge

	zoomIn, zoomOut int
	zoomBinding     surface.BindingID
	zoomBound       bool
}

// New creates a manager on s. A nil cfg means [config.Default]. The wheel
// zoom is bound while cfg.EnableZoom is set and follows later changes to it.
func New(s surface.Surface, cfg *config.Config, opts ...Option) *Manager {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.EnableZoom == nil {
		cfg.EnableZoom = config.NewObservable(true)
	}
	m := &Manager{
		s:            s,
		cfg:          cfg,
		registry:     component.NewRegistry(),
		nodeFactory:  DefaultNodeFactory,
		edgeFactory:  DefaultEdgeFactory,
		groupFactory: objects.DefaultFactory,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	m.canvas = NewCanvas(s, m.groupFactory, &cfg.Edge)

	m.configureZoom(cfg.EnableZoom.Get())
	cfg.EnableZoom.Subscribe(m.configureZoom)
	return m
}

func (m *Manager) Surface() surface.Surface      { return m.s }
func (m *Manager) Config() *config.Config        { return m.cfg }
func (m *Manager) Logger() *log.Logger           { return m.logger }
func (m *Manager) Registry() *component.Registry { return m.registry }
func (m *Manager) Canvas() *Canvas               { return m.canvas }
func (m *Manager) Nodes() []Node                 { return slices.Clone(m.nodes) }
func (m *Manager) Edges() []Edge                 { return slices.Clone(m.edges) }
func (m *Manager) ZoomCounts() (in, out int)     { return m.zoomIn, m.zoomOut }

// NewGroup creates a container with the manager's group factory. Enabled
// groups abort the dynamic line when dragged.
func (m *Manager) NewGroup(disabled bool) objects.Container {
	return m.groupFactory(m.s, m.canvas, disabled)
}

// =============================================================================
// Nodes
// =============================================================================

// CreateNode creates a node labeled label. A nil cfg means the manager's
// node configuration. The node is not drawn until its Render is called.
//
// Pressing the node starts a dynamic line, or completes the one in progress
// with an edge to this node. If dragging is enabled, dragging the node
// updates every incident edge.
func (m *Manager) CreateNode(label string, cfg *config.Node) Node {
	c := m.cfg.Node
	if cfg != nil {
		c = *cfg
	}
	n := m.nodeFactory(m, label, c)

	if c.EnableDragging {
		n.Group().Bind(surface.EventDrag, func(surface.Event) { m.updateEdges(n) })
	}
	n.Group().Bind(surface.EventPress, func(surface.Event) { m.pressNode(n) })

	m.nodes = append(m.nodes, n)
	m.logger.Debug("node created", "label", label)
	observability.Graph().OnNodeCreated(label)
	return n
}

func (m *Manager) updateEdges(n Node) {
	for _, e := range n.Edges() {
		if err := e.Update(); err != nil {
			m.logger.Warn("edge not updated", "edge", e, "err", err)
		}
	}
}

func (m *Manager) pressNode(n Node) {
	from := m.canvas.ActiveNode()
	if from == nil {
		m.canvas.StartDynamicLine(n)
		return
	}
	if err := m.completeEdge(from, n); err != nil {
		m.logger.Warn("edge not completed", "from", from.Label(), "to", n.Label(), "err", err)
	}
}

func (m *Manager) completeEdge(from, to Node) error {
	e, err := m.CreateEdge(from, to, "", nil, nil)
	err = errors.Join(err, m.canvas.StopDynamicLine())
	if err != nil {
		return err
	}
	return e.Render()
}

// =============================================================================
// Edges
// =============================================================================

// CreateEdge creates an edge from a to b with an optional weight. A nil cfg
// means the manager's edge configuration. The edge joins the component of
// its endpoints and is registered as incident on both. It is not drawn until
// its Render is called.
func (m *Manager) CreateEdge(a, b Node, label string, weight *int, cfg *config.Edge) (Edge, error) {
	if a == nil || b == nil {
		return nil, ErrNilEndpoint
	}
	c := m.cfg.Edge
	if cfg != nil {
		c = *cfg
	}

	pos := position(a, b)
	e, err := m.edgeFactory(m, EdgeParams{
		A:        a,
		B:        b,
		Label:    label,
		Weight:   weight,
		Position: pos,
		Config:   c,
	})
	if err != nil {
		return nil, err
	}
	a.AddEdge(e)
	b.AddEdge(e)
	m.edges = append(m.edges, e)

	m.logger.Debug("edge created", "from", a.Label(), "to", b.Label(), "position", pos, "component", e.ComponentID())
	observability.Graph().OnEdgeCreated(label, pos, a == b)
	return e, nil
}

// position counts the existing edges incident to both a and b whose ordered
// endpoints are exactly (a, b).
func position(a, b Node) int {
	others := b.Edges()
	n := 0
	for _, e := range a.Edges() {
		x, y := e.Endpoints()
		if x == a && y == b && slices.Contains(others, e) {
			n++
		}
	}
	return n
}

// Merge joins edge and its endpoints into one component. Edge factories call
// it while constructing an edge.
func (m *Manager) Merge(edge, a, b component.Member) (component.MergeResult, error) {
	res, err := m.registry.Merge(edge, a, b)
	if err != nil {
		return res, nerrors.Wrap(nerrors.ErrCodeContract, err, "merge components")
	}
	switch {
	case res.Created:
		m.logger.Debug("component created", "id", res.ID)
		observability.Graph().OnComponentCreated(res.ID)
	case res.Absorbed != "":
		m.logger.Debug("components merged", "id", res.ID, "absorbed", res.Absorbed, "joined", res.Joined)
		observability.Graph().OnComponentMerged(res.ID, res.Absorbed, res.Joined)
	}
	return res, nil
}

// =============================================================================
// Zoom
// =============================================================================

func (m *Manager) configureZoom(enabled bool) {
	switch {
	case enabled && !m.zoomBound:
		m.zoomBinding = m.s.Bind(surface.EventWheel, m.onWheel)
		m.zoomBound = true
	case !enabled && m.zoomBound:
		m.s.Unbind(surface.EventWheel, m.zoomBinding)
		m.zoomBound = false
	}
}

func (m *Manager) onWheel(ev surface.Event) {
	p := m.s.CanvasPoint(ev.X, ev.Y)
	m.Zoom(p.X, p.Y, ev.Delta)
}

// Zoom scales every primitive around (x, y): in for delta > 0, out for
// delta < 0. It reports whether a step was taken. Each direction stops at its
// configured limit, and every step in one direction gives back one step to
// the other.
func (m *Manager) Zoom(x, y float64, delta int) bool {
	var in bool
	switch {
	case delta > 0 && m.zoomIn < m.cfg.ZoomInLimit:
		m.s.Scale(surface.All, x, y, ZoomFactor, ZoomFactor)
		m.zoomIn++
		m.zoomOut--
		in = true
	case delta < 0 && m.zoomOut < m.cfg.ZoomOutLimit:
		m.s.Scale(surface.All, x, y, 1/ZoomFactor, 1/ZoomFactor)
		m.zoomOut++
		m.zoomIn--
	default:
		return false
	}
	m.logger.Debug("zoom", "in", in, "zoom_in", m.zoomIn, "zoom_out", m.zoomOut)
	observability.Graph().OnZoom(in, m.zoomIn, m.zoomOut)
	return true
}
