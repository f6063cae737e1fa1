package objects

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

type fakeGesture struct {
	active  bool
	aborted int
}

func (f *fakeGesture) Active() bool { return f.active }
func (f *fakeGesture) Abort() {
	f.active = false
	f.aborted++
}

func newLines(s *surface.Memory, n int) []Object {
	var hs []surface.Handle
	for i := 0; i < n; i++ {
		hs = append(hs, s.CreateLine([]float64{0, 0, 10, 10}, surface.Style{Width: 1}))
	}
	return Wrap(s, hs...)
}

func TestGroupIdentity(t *testing.T) {
	s := surface.NewMemory("")
	a := New(s, nil, true)
	b := New(s, nil, true)

	if a.ID() == b.ID() {
		t.Fatalf("identity tags collide: %s", a.ID())
	}
	if !strings.HasPrefix(a.ID(), "group-") {
		t.Errorf("ID = %q, want group- prefix", a.ID())
	}
	if got := a.Tags(); !slices.Equal(got, []string{a.ID()}) {
		t.Errorf("Tags = %v, want [%s]", got, a.ID())
	}
}

func TestGroupTagPropagation(t *testing.T) {
	s := surface.NewMemory("")
	g := New(s, nil, true)
	g.AddTag("early")

	objs := newLines(s, 2)
	g.Add(objs...)

	for _, o := range objs {
		tags := s.Tags(o.Handle())
		if !slices.Contains(tags, g.ID()) || !slices.Contains(tags, "early") {
			t.Errorf("tags of %d = %v, want identity and early", o.Handle(), tags)
		}
	}

	g.AddTag("T")
	for _, o := range objs {
		if !slices.Contains(s.Tags(o.Handle()), "T") {
			t.Errorf("primitive %d missing T after AddTag", o.Handle())
		}
	}

	g.RemoveTag("T")
	for _, o := range objs {
		if slices.Contains(s.Tags(o.Handle()), "T") {
			t.Errorf("primitive %d still carries T after RemoveTag", o.Handle())
		}
	}
	if slices.Contains(g.Tags(), "T") {
		t.Errorf("group tags = %v, want T removed", g.Tags())
	}

	g.RemoveTag(g.ID())
	if got := s.FindWithTag(g.ID()); len(got) != 2 {
		t.Errorf("identity tag removable: FindWithTag = %v", got)
	}
}

func TestGroupAddTagReachesOutOfBandPrimitives(t *testing.T) {
	s := surface.NewMemory("")
	g := New(s, nil, true)
	stray := s.CreateText(geom.Point{}, surface.Style{Text: "x"})
	s.AddTag(stray, g.ID())

	g.AddTag("component0")
	if !slices.Contains(s.Tags(stray), "component0") {
		t.Errorf("stray tags = %v, want component0", s.Tags(stray))
	}
	g.Lower()
	if items := s.Items(); items[0].Handle != stray {
		t.Errorf("bottom item = %d, want %d", items[0].Handle, stray)
	}
}

func TestGroupRemove(t *testing.T) {
	s := surface.NewMemory("")
	g := New(s, nil, true)
	objs := newLines(s, 3)
	g.Add(objs...)

	g.Remove(objs[1])
	if got := len(g.Objects()); got != 2 {
		t.Errorf("members = %d, want 2", got)
	}
	if slices.Contains(s.Tags(objs[1].Handle()), g.ID()) {
		t.Error("removed primitive still carries identity tag")
	}

	// Non-members are ignored.
	g.Remove(newLines(s, 1)...)
	if got := len(g.Objects()); got != 2 {
		t.Errorf("members after foreign remove = %d, want 2", got)
	}

	g.RemoveAll()
	if len(g.Objects()) != 0 {
		t.Errorf("members after RemoveAll = %d, want 0", len(g.Objects()))
	}
	if got := s.FindWithTag(g.ID()); len(got) != 0 {
		t.Errorf("primitives with identity tag = %v, want none", got)
	}
	// The removed member survives on the surface.
	if s.Coords(objs[1].Handle()) == nil {
		t.Error("removed member was deleted by RemoveAll")
	}
}

func TestGroupCoords(t *testing.T) {
	s := surface.NewMemory("")
	g := New(s, nil, true)
	g.Coords(1, 2, 3, 4) // empty group: no-op

	objs := newLines(s, 2)
	g.Add(objs...)
	g.Coords(5, 6, 7, 8)
	for _, o := range objs {
		if got := s.Coords(o.Handle()); !slices.Equal(got, []float64{5, 6, 7, 8}) {
			t.Errorf("coords = %v, want [5 6 7 8]", got)
		}
	}
}

func TestGroupDrag(t *testing.T) {
	s := surface.NewMemory("")
	gesture := &fakeGesture{active: true}
	g := New(s, gesture, false)
	h := s.CreateOval(geom.BBox{X0: 0, Y0: 0, X1: 20, Y1: 20}, surface.Style{})
	g.Add(NewItem(s, h))

	var extra int
	g.Bind(surface.EventDrag, func(surface.Event) { extra++ })

	s.DragFrom(geom.Point{X: 10, Y: 10}, geom.Point{X: 15, Y: 10}, geom.Point{X: 20, Y: 30})

	if got, want := s.Coords(h), []float64{10, 20, 30, 40}; !slices.Equal(got, want) {
		t.Errorf("coords = %v, want %v", got, want)
	}
	if x, y := g.DragData(); x != 20 || y != 30 {
		t.Errorf("DragData = (%v, %v), want (20, 30)", x, y)
	}
	if gesture.aborted != 1 {
		t.Errorf("gesture aborted %d times, want 1", gesture.aborted)
	}
	if extra != 2 {
		t.Errorf("composed drag handler ran %d times, want 2", extra)
	}
}

func TestDisabledGroupDoesNotDrag(t *testing.T) {
	s := surface.NewMemory("")
	g := New(s, nil, true)
	h := s.CreateOval(geom.BBox{X0: 0, Y0: 0, X1: 20, Y1: 20}, surface.Style{})
	g.Add(NewItem(s, h))

	s.DragFrom(geom.Point{X: 10, Y: 10}, geom.Point{X: 50, Y: 50})
	if got := s.Coords(h); !slices.Equal(got, []float64{0, 0, 20, 20}) {
		t.Errorf("coords = %v, want unchanged", got)
	}
}
