package surface

import (
	"math"
	"slices"

	"github.com/matzehuels/netgraph/pkg/geom"
)

// Text metrics used to approximate text bounding boxes.
const (
	CharWidth  = 7.0
	LineHeight = 14.0
)

// hitTolerance is the minimum distance at which a thin line still counts as
// hit by the pointer.
const hitTolerance = 3.0

// Item is a snapshot of a primitive held by a [Memory] surface.
type Item struct {
	Handle Handle
	Kind   Kind
	Coords []float64
	Style  Style
	Tags   []string
}

// BBox returns the item's bounding box.
func (it Item) BBox() geom.BBox {
	switch it.Kind {
	case KindText:
		w := float64(len([]rune(it.Style.Text))) * CharWidth
		x, y := it.Coords[0], it.Coords[1]
		return geom.BBox{X0: x - w/2, Y0: y - LineHeight/2, X1: x + w/2, Y1: y + LineHeight/2}
	default:
		pts := geom.Points(it.Coords)
		if len(pts) == 0 {
			return geom.BBox{}
		}
		b := geom.BBox{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
		for _, p := range pts[1:] {
			b = b.Union(geom.BBox{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
		}
		if it.Kind == KindLine {
			half := it.Style.Width / 2
			b = geom.BBox{X0: b.X0 - half, Y0: b.Y0 - half, X1: b.X1 + half, Y1: b.Y1 + half}
		}
		return b
	}
}

// HasTag reports whether the item carries tag.
func (it Item) HasTag(tag string) bool {
	return tag == All || slices.Contains(it.Tags, tag)
}

func (it Item) hit(p geom.Point) bool {
	switch it.Kind {
	case KindLine:
		tol := math.Max(it.Style.Width/2, hitTolerance)
		pts := geom.Points(it.Coords)
		for i := 0; i+1 < len(pts); i++ {
			if segmentDistance(p, pts[i], pts[i+1]) <= tol {
				return true
			}
		}
		return false
	case KindOval:
		b := it.BBox()
		rx, ry := b.Width()/2, b.Height()/2
		if rx == 0 || ry == 0 {
			return false
		}
		c := b.Center()
		dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	default:
		return it.BBox().Contains(p)
	}
}

func segmentDistance(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		return math.Hypot(ap.X, ap.Y)
	}
	t := math.Max(0, math.Min(1, (ap.X*ab.X+ap.Y*ab.Y)/den))
	q := geom.Point{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type binding struct {
	id BindingID
	fn Handler
}

// Memory is an in-memory [Surface]. It keeps primitives in draw order, routes
// pointer events through tag and surface bindings, and exposes its content
// for inspection.
//
// Memory is not safe for concurrent use. Like a GUI canvas it expects a
// single event loop to drive it.
type Memory struct {
	items      map[Handle]*Item
	order      []Handle // bottom to top
	next       Handle
	tagBinds   map[string]map[EventType][]Handler
	binds      map[EventType][]binding
	nextBind   BindingID
	background string
	grabbed    Handle
}

// NewMemory creates an empty surface with the given background color.
func NewMemory(background string) *Memory {
	if background == "" {
		background = "white"
	}
	return &Memory{
		items:      make(map[Handle]*Item),
		tagBinds:   make(map[string]map[EventType][]Handler),
		binds:      make(map[EventType][]binding),
		background: background,
	}
}

// =============================================================================
// Drawing
// =============================================================================

func (m *Memory) create(kind Kind, coords []float64, style Style) Handle {
	m.next++
	h := m.next
	m.items[h] = &Item{Handle: h, Kind: kind, Coords: slices.Clone(coords), Style: style}
	m.order = append(m.order, h)
	return h
}

// CreateOval implements [Surface].
func (m *Memory) CreateOval(box geom.BBox, style Style) Handle {
	return m.create(KindOval, []float64{box.X0, box.Y0, box.X1, box.Y1}, style)
}

// CreateLine implements [Surface].
func (m *Memory) CreateLine(coords []float64, style Style) Handle {
	return m.create(KindLine, coords, style)
}

// CreateText implements [Surface].
func (m *Memory) CreateText(p geom.Point, style Style) Handle {
	return m.create(KindText, []float64{p.X, p.Y}, style)
}

// Coords implements [Surface].
func (m *Memory) Coords(h Handle) []float64 {
	if it, ok := m.items[h]; ok {
		return slices.Clone(it.Coords)
	}
	return nil
}

// SetCoords implements [Surface]. Text primitives keep only the first point.
func (m *Memory) SetCoords(h Handle, coords ...float64) {
	it, ok := m.items[h]
	if !ok || len(coords) < 2 {
		return
	}
	if it.Kind == KindText {
		coords = coords[:2]
	}
	it.Coords = slices.Clone(coords)
}

// SetAngle implements [Surface].
func (m *Memory) SetAngle(h Handle, angle float64) {
	if it, ok := m.items[h]; ok {
		it.Style.Angle = angle
	}
}

// BBox implements [Surface].
func (m *Memory) BBox(tag string) (geom.BBox, bool) {
	var (
		box   geom.BBox
		found bool
	)
	for _, h := range m.order {
		it := m.items[h]
		if !it.HasTag(tag) {
			continue
		}
		if !found {
			box, found = it.BBox(), true
			continue
		}
		box = box.Union(it.BBox())
	}
	return box, found
}

// =============================================================================
// Tags
// =============================================================================

// AddTag implements [Surface].
func (m *Memory) AddTag(h Handle, tag string) {
	it, ok := m.items[h]
	if !ok || tag == All || slices.Contains(it.Tags, tag) {
		return
	}
	it.Tags = append(it.Tags, tag)
}

// RemoveTag implements [Surface].
func (m *Memory) RemoveTag(h Handle, tag string) {
	if it, ok := m.items[h]; ok {
		it.Tags = slices.DeleteFunc(it.Tags, func(t string) bool { return t == tag })
	}
}

// Tags implements [Surface].
func (m *Memory) Tags(h Handle) []string {
	if it, ok := m.items[h]; ok {
		return slices.Clone(it.Tags)
	}
	return nil
}

// FindWithTag implements [Surface].
func (m *Memory) FindWithTag(tag string) []Handle {
	var out []Handle
	for _, h := range m.order {
		if m.items[h].HasTag(tag) {
			out = append(out, h)
		}
	}
	return out
}

// Lower implements [Surface].
func (m *Memory) Lower(tag string) {
	var lowered, rest []Handle
	for _, h := range m.order {
		if m.items[h].HasTag(tag) {
			lowered = append(lowered, h)
		} else {
			rest = append(rest, h)
		}
	}
	m.order = append(lowered, rest...)
}

// Delete implements [Surface].
func (m *Memory) Delete(tag string) {
	m.order = slices.DeleteFunc(m.order, func(h Handle) bool {
		if m.items[h].HasTag(tag) {
			delete(m.items, h)
			return true
		}
		return false
	})
	if _, ok := m.items[m.grabbed]; !ok {
		m.grabbed = 0
	}
}

// Move implements [Surface].
func (m *Memory) Move(tag string, dx, dy float64) {
	for _, h := range m.FindWithTag(tag) {
		c := m.items[h].Coords
		for i := 0; i+1 < len(c); i += 2 {
			c[i] += dx
			c[i+1] += dy
		}
	}
}

// Scale implements [Surface].
func (m *Memory) Scale(tag string, x, y, sx, sy float64) {
	for _, h := range m.FindWithTag(tag) {
		c := m.items[h].Coords
		for i := 0; i+1 < len(c); i += 2 {
			c[i] = x + (c[i]-x)*sx
			c[i+1] = y + (c[i+1]-y)*sy
		}
	}
}

// =============================================================================
// Bindings
// =============================================================================

// TagBind implements [Surface].
func (m *Memory) TagBind(tag string, typ EventType, fn Handler) {
	byType, ok := m.tagBinds[tag]
	if !ok {
		byType = make(map[EventType][]Handler)
		m.tagBinds[tag] = byType
	}
	byType[typ] = append(byType[typ], fn)
}

// Bind implements [Surface].
func (m *Memory) Bind(typ EventType, fn Handler) BindingID {
	m.nextBind++
	m.binds[typ] = append(m.binds[typ], binding{id: m.nextBind, fn: fn})
	return m.nextBind
}

// Unbind implements [Surface].
func (m *Memory) Unbind(typ EventType, id BindingID) {
	m.binds[typ] = slices.DeleteFunc(m.binds[typ], func(b binding) bool { return b.id == id })
}

// Bound reports how many surface-level handlers are bound for typ.
func (m *Memory) Bound(typ EventType) int {
	return len(m.binds[typ])
}

// CanvasPoint implements [Surface]. Memory surfaces do not scroll, so window
// and surface coordinates coincide.
func (m *Memory) CanvasPoint(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

// Background implements [Surface].
func (m *Memory) Background() string {
	return m.background
}

// =============================================================================
// Inspection
// =============================================================================

// Item returns a snapshot of the primitive h.
func (m *Memory) Item(h Handle) (Item, bool) {
	it, ok := m.items[h]
	if !ok {
		return Item{}, false
	}
	return cloneItem(it), true
}

// Items returns snapshots of all primitives, bottom to top.
func (m *Memory) Items() []Item {
	out := make([]Item, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, cloneItem(m.items[h]))
	}
	return out
}

// Len returns the number of primitives on the surface.
func (m *Memory) Len() int {
	return len(m.order)
}

// HitTest returns the topmost primitive under (x, y), or zero.
func (m *Memory) HitTest(x, y float64) Handle {
	p := geom.Point{X: x, Y: y}
	for i := len(m.order) - 1; i >= 0; i-- {
		h := m.order[i]
		if m.items[h].hit(p) {
			return h
		}
	}
	return 0
}

func cloneItem(it *Item) Item {
	c := *it
	c.Coords = slices.Clone(it.Coords)
	c.Tags = slices.Clone(it.Tags)
	return c
}

// =============================================================================
// Event Dispatch
// =============================================================================

// Press delivers a button press. The primitive under the pointer becomes the
// target of the following drag and release events.
func (m *Memory) Press(x, y float64) {
	m.grabbed = m.HitTest(x, y)
	ev := Event{Type: EventPress, X: x, Y: y}
	m.dispatchItem(m.grabbed, ev)
	m.dispatch(ev)
}

// Drag delivers pointer motion with the button held.
func (m *Memory) Drag(x, y float64) {
	ev := Event{Type: EventDrag, X: x, Y: y}
	m.dispatchItem(m.grabbed, ev)
	m.dispatch(ev)
}

// Release delivers a button release and drops the grabbed primitive.
func (m *Memory) Release(x, y float64) {
	ev := Event{Type: EventRelease, X: x, Y: y}
	m.dispatchItem(m.grabbed, ev)
	m.dispatch(ev)
	m.grabbed = 0
}

// Motion delivers pointer motion with no button held.
func (m *Memory) Motion(x, y float64) {
	m.dispatch(Event{Type: EventMotion, X: x, Y: y})
}

// Wheel delivers a scroll step; delta > 0 scrolls up.
func (m *Memory) Wheel(x, y float64, delta int) {
	m.dispatch(Event{Type: EventWheel, X: x, Y: y, Delta: delta})
}

// Click is a press immediately followed by a release at the same point.
func (m *Memory) Click(x, y float64) {
	m.Press(x, y)
	m.Release(x, y)
}

// DragFrom presses at from, drags through every point in path and releases
// at the last one.
func (m *Memory) DragFrom(from geom.Point, path ...geom.Point) {
	m.Press(from.X, from.Y)
	last := from
	for _, p := range path {
		m.Drag(p.X, p.Y)
		last = p
	}
	m.Release(last.X, last.Y)
}

// dispatchItem runs tag handlers for every tag h carried when the event
// arrived. Handlers bound while dispatching do not see this event.
func (m *Memory) dispatchItem(h Handle, ev Event) {
	it, ok := m.items[h]
	if !ok {
		return
	}
	tags := append(slices.Clone(it.Tags), All)
	for _, tag := range tags {
		for _, fn := range slices.Clone(m.tagBinds[tag][ev.Type]) {
			fn(ev)
		}
	}
}

func (m *Memory) dispatch(ev Event) {
	for _, b := range slices.Clone(m.binds[ev.Type]) {
		b.fn(ev)
	}
}
