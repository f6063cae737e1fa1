package netgraph

import (
	"slices"
	"testing"

	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

func textItems(t *testing.T, s *surface.Memory, e Edge) (label, weight surface.Item) {
	t.Helper()
	objs := e.Group().Objects()
	if len(objs) < 3 {
		t.Fatalf("edge primitives = %d, want at least 3", len(objs))
	}
	label, _ = s.Item(objs[len(objs)-2].Handle())
	weight, _ = s.Item(objs[len(objs)-1].Handle())
	return label, weight
}

func TestSelfLoopGeometry(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	w := 7
	e, err := m.CreateEdge(a, a, "loop", &w, nil)
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}
	if err := e.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !e.IsSelfLoop() {
		t.Fatal("IsSelfLoop = false")
	}

	line := s.Coords(e.Group().Objects()[0].Handle())
	want := geom.Flat(geom.SelfLoopPoints(geom.BBox{X0: 50, Y0: 50, X1: 150, Y1: 150}, 75)...)
	if !slices.Equal(line, want) {
		t.Errorf("loop coords = %v, want %v", line, want)
	}

	apex := 100 - 75 - 25*geom.SelfLoopApexFactor
	label, weight := textItems(t, s, e)
	if got := label.Coords; !slices.Equal(got, []float64{100, apex - 20}) {
		t.Errorf("label at %v, want [100 %v]", got, apex-20)
	}
	if got := weight.Coords; !slices.Equal(got, []float64{100, apex + 20}) {
		t.Errorf("weight at %v, want [100 %v]", got, apex+20)
	}
	if label.Style.Text != "loop" || weight.Style.Text != "7" {
		t.Errorf("texts = %q / %q", label.Style.Text, weight.Style.Text)
	}
	if label.Style.Angle != 0 {
		t.Errorf("label angle = %v, want 0", label.Style.Angle)
	}
}

func TestSelfLoopsStack(t *testing.T) {
	_, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	first := mustEdge(t, m, a, a, "").(*CanvasEdge)
	second := mustEdge(t, m, a, a, "").(*CanvasEdge)

	if first.Offset() != 75 || second.Offset() != 150 {
		t.Errorf("offsets = %v, %v, want 75, 150", first.Offset(), second.Offset())
	}
}

func TestEdgeText(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	w := 0
	e, err := m.CreateEdge(a, b, "ab", &w, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Render(); err != nil {
		t.Fatal(err)
	}

	// Control point (200, -50); the curve's midpoint is halfway there.
	label, weight := textItems(t, s, e)
	if got := label.Coords; !slices.Equal(got, []float64{200, 5}) {
		t.Errorf("label at %v, want [200 5]", got)
	}
	if got := weight.Coords; !slices.Equal(got, []float64{200, 45}) {
		t.Errorf("weight at %v, want [200 45]", got)
	}
	if weight.Style.Text != "0" {
		t.Errorf("weight text = %q, want 0", weight.Style.Text)
	}
}

func TestEdgeWithoutWeight(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	e := mustEdge(t, m, a, b, "")

	if _, ok := e.Weight(); ok {
		t.Error("Weight reports a value")
	}
	_, weight := textItems(t, s, e)
	if weight.Style.Text != "" {
		t.Errorf("weight text = %q, want empty", weight.Style.Text)
	}
}

func TestAntialiasedEdge(t *testing.T) {
	cfg := config.Default()
	cfg.Edge.Antialiased = true
	cfg.Edge.LineColor = "navy"
	s, m := newTestManager(t, cfg)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	e := mustEdge(t, m, a, b, "")

	objs := e.Group().Objects()
	if len(objs) != 4 {
		t.Fatalf("primitives = %d, want 2 lines and 2 texts", len(objs))
	}
	solid, _ := s.Item(objs[0].Handle())
	soft, _ := s.Item(objs[1].Handle())
	if solid.Style.Fill != "navy" || solid.Style.Width != 1.5 {
		t.Errorf("solid pass = %+v", solid.Style)
	}
	if soft.Style.Fill != "#AAA" || soft.Style.Width != 2 {
		t.Errorf("soft pass = %+v", soft.Style)
	}
	if !solid.Style.Smooth || solid.Style.SplineSteps != 30 {
		t.Errorf("smoothing = %v/%d, want true/30", solid.Style.Smooth, solid.Style.SplineSteps)
	}
}

func TestEdgeRenderedBeneathNodes(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	e := mustEdge(t, m, a, b, "")

	items := s.Items()
	for i, o := range e.Group().Objects() {
		if items[i].Handle != o.Handle() {
			t.Fatalf("edge primitive %d at depth %d, want bottom", o.Handle(), i)
		}
	}
}

func TestRenderTwiceReplacesPrimitives(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	e := mustEdge(t, m, a, b, "")
	before := s.Len()

	if err := e.Render(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != before {
		t.Errorf("primitives = %d, want %d", s.Len(), before)
	}
	if got := len(e.Group().Objects()); got != 3 {
		t.Errorf("group members = %d, want 3", got)
	}
}

func TestUpdateFollowsEndpoints(t *testing.T) {
	s, m := newTestManager(t, nil)
	a := renderNode(m, "A", 100, 100)
	b := renderNode(m, "B", 300, 100)
	e := mustEdge(t, m, a, b, "")
	line := e.Group().Objects()[0].Handle()

	s.Move(a.Group().ID(), -100, 0)
	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := s.Coords(line); got[0] != 0 || got[1] != 100 {
		t.Errorf("line start = %v, want (0, 100)", got[:2])
	}

	s.Move(a.Group().ID(), 300, 0)
	if err := e.Update(); err == nil {
		t.Error("Update with coincident endpoints succeeded")
	}
	if got := s.Coords(line); got[0] != 0 {
		t.Errorf("rejected update moved the line: %v", got)
	}
}
