package objects

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/netgraph/pkg/surface"
)

// Group is the default [Container].
type Group struct {
	s       surface.Surface
	gesture Gesture
	id      string
	tags    []string
	objects []Object

	dragX, dragY float64
}

// New creates a group on s with a fresh identity tag. If disabled is false
// the group binds its own press and drag handlers. g may be nil.
func New(s surface.Surface, g Gesture, disabled bool) *Group {
	id := "group-" + uuid.NewString()
	grp := &Group{
		s:       s,
		gesture: g,
		id:      id,
		tags:    []string{id},
	}
	if !disabled {
		s.TagBind(id, surface.EventPress, grp.OnPress)
		s.TagBind(id, surface.EventDrag, grp.OnDrag)
	}
	return grp
}

// ID implements [Container].
func (g *Group) ID() string { return g.id }

// Tags implements [Container].
func (g *Group) Tags() []string { return slices.Clone(g.tags) }

// Objects implements [Container].
func (g *Group) Objects() []Object { return slices.Clone(g.objects) }

// Add implements [Container]. Every object receives every held tag.
func (g *Group) Add(objs ...Object) {
	for _, obj := range objs {
		for _, tag := range g.tags {
			g.s.AddTag(obj.Handle(), tag)
		}
	}
	g.objects = append(g.objects, objs...)
}

// AddTag implements [Container]. The tag reaches every primitive currently
// carrying the identity tag, including ones tagged outside the group.
func (g *Group) AddTag(tag string) {
	if slices.Contains(g.tags, tag) {
		return
	}
	g.tags = append(g.tags, tag)
	for _, h := range g.s.FindWithTag(g.id) {
		g.s.AddTag(h, tag)
	}
}

// RemoveTag implements [Container]. The identity tag cannot be removed.
func (g *Group) RemoveTag(tag string) {
	if tag == g.id || !slices.Contains(g.tags, tag) {
		return
	}
	g.tags = slices.DeleteFunc(g.tags, func(t string) bool { return t == tag })
	for _, h := range g.s.FindWithTag(g.id) {
		g.s.RemoveTag(h, tag)
	}
}

// Remove implements [Container]. The identity tag is detached from each
// object. Objects that are not members are ignored.
func (g *Group) Remove(objs ...Object) {
	for _, obj := range objs {
		i := slices.IndexFunc(g.objects, func(o Object) bool { return o.Handle() == obj.Handle() })
		if i < 0 {
			continue
		}
		g.s.RemoveTag(obj.Handle(), g.id)
		g.objects = slices.Delete(g.objects, i, i+1)
	}
}

// RemoveAll implements [Container]. Every primitive carrying the identity tag
// is deleted from the surface.
func (g *Group) RemoveAll() {
	g.s.Delete(g.id)
	g.objects = nil
}

// Coords implements [Container]. Each member interprets the positions on its
// own; an empty group ignores the call.
func (g *Group) Coords(positions ...float64) {
	for _, obj := range g.objects {
		obj.Coords(positions...)
	}
}

// Lower implements [Container].
func (g *Group) Lower() {
	g.s.Lower(g.id)
}

// Bind implements [Container]. Handlers compose with existing ones.
func (g *Group) Bind(typ surface.EventType, fn surface.Handler) {
	g.s.TagBind(g.id, typ, fn)
}

// DragData returns the last recorded pointer position.
func (g *Group) DragData() (float64, float64) {
	return g.dragX, g.dragY
}

// OnPress records the pointer position.
func (g *Group) OnPress(ev surface.Event) {
	g.dragX, g.dragY = ev.X, ev.Y
}

// OnDrag moves the group by the pointer delta and aborts any active gesture.
func (g *Group) OnDrag(ev surface.Event) {
	g.s.Move(g.id, ev.X-g.dragX, ev.Y-g.dragY)
	g.dragX, g.dragY = ev.X, ev.Y

	if g.gesture != nil && g.gesture.Active() {
		g.gesture.Abort()
	}
}
