package netgraph

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgraph/pkg/config"
	nerrors "github.com/matzehuels/netgraph/pkg/errors"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

func newTestManager(t *testing.T, cfg *config.Config) (*surface.Memory, *Manager) {
	t.Helper()
	s := surface.NewMemory("white")
	return s, New(s, cfg, WithLogger(log.New(io.Discard)))
}

func renderNode(m *Manager, label string, x, y float64) Node {
	n := m.CreateNode(label, nil)
	n.Render(geom.Point{X: x, Y: y})
	return n
}

func TestDynamicLine(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	c := m.Canvas()

	c.StartDynamicLine(a)
	if c.ActiveNode() != a || !c.Active() {
		t.Fatalf("ActiveNode = %v, want A", c.ActiveNode())
	}
	line := c.active.group.Objects()
	if len(line) != 1 {
		t.Fatalf("dynamic line primitives = %d, want 1", len(line))
	}
	if items := s.Items(); items[0].Handle != line[0].Handle() {
		t.Error("dynamic line not lowered beneath the node")
	}
	if got := s.Bound(surface.EventMotion); got != 1 {
		t.Errorf("motion bindings = %d, want 1", got)
	}

	s.Motion(150, 160)
	if got, want := s.Coords(line[0].Handle()), []float64{100, 100, 150, 160}; !slices.Equal(got, want) {
		t.Errorf("line coords = %v, want %v", got, want)
	}

	if err := c.StopDynamicLine(); err != nil {
		t.Fatalf("StopDynamicLine: %v", err)
	}
	if _, ok := s.Item(line[0].Handle()); ok {
		t.Errorf("primitive %d survived StopDynamicLine", line[0].Handle())
	}
	if c.ActiveNode() != nil || c.Active() {
		t.Error("canvas still active after stop")
	}
	if got := s.Bound(surface.EventMotion); got != 0 {
		t.Errorf("motion bindings = %d, want 0", got)
	}
}

func TestDynamicLineFollowsEdgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		antialiased bool
		want        []surface.Style
	}{
		{"Plain", false, []surface.Style{{Fill: "navy", Width: 4}}},
		{"Antialiased", true, []surface.Style{{Fill: "navy", Width: 4}, {Fill: "#AAA", Width: 4.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Edge.Antialiased = tt.antialiased
			cfg.Edge.LineColor = "navy"
			cfg.Edge.LineWidth = 4
			s, m := newTestManager(t, cfg)
			a := renderNode(m, "A", 100, 100)

			m.Canvas().StartDynamicLine(a)

			line := m.Canvas().active.group.Objects()
			if len(line) != len(tt.want) {
				t.Fatalf("lines = %d, want %d", len(line), len(tt.want))
			}
			for i, o := range line {
				it, _ := s.Item(o.Handle())
				if it.Kind != surface.KindLine || it.Style != tt.want[i] {
					t.Errorf("line %d = %v %+v, want line %+v", i, it.Kind, it.Style, tt.want[i])
				}
			}
		})
	}
}

func TestStopDynamicLineWithoutStart(t *testing.T) {
	_, m := newTestManager(t, nil)

	err := m.Canvas().StopDynamicLine()
	if !errors.Is(err, ErrNoActiveNode) {
		t.Errorf("err = %v, want ErrNoActiveNode", err)
	}
	if !nerrors.Is(err, nerrors.ErrCodeContract) {
		t.Errorf("code = %s, want CONTRACT_VIOLATION", nerrors.GetCode(err))
	}
}

func TestRestartDynamicLine(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	before := s.Len()

	m.Canvas().StartDynamicLine(a)
	m.Canvas().StartDynamicLine(b)

	if m.Canvas().ActiveNode() != b {
		t.Errorf("ActiveNode = %v, want B", m.Canvas().ActiveNode())
	}
	if got := s.Bound(surface.EventMotion); got != 1 {
		t.Errorf("motion bindings = %d, want 1", got)
	}
	if got := s.Len(); got != before+1 {
		t.Errorf("primitives = %d, want %d", got, before+1)
	}
}

func TestDraggingNodeAbortsDynamicLine(t *testing.T) {
	s, m := newTestManager(t, nil)
	renderNode(m, "A", 100, 100)
	before := s.Len()

	// The press starts a line from A, the drag that follows cancels it.
	s.DragFrom(geom.Point{X: 100, Y: 100}, geom.Point{X: 120, Y: 100})

	if m.Canvas().Active() {
		t.Error("dynamic line still active after a node drag")
	}
	if s.Len() != before {
		t.Errorf("primitives = %d, want %d", s.Len(), before)
	}
	if len(m.Edges()) != 0 {
		t.Errorf("edges = %d, want 0", len(m.Edges()))
	}
}
