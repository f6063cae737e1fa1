// Package surface defines the drawing surface that netgraph renders onto and
// receives pointer events from.
//
// A [Surface] is a retained-mode canvas: every drawing call returns an opaque
// [Handle] to a primitive that stays on the surface until deleted. Primitives
// carry string tags. Tags are the single source of truth for grouping: moving,
// scaling, lowering, deleting and event binding all address primitives by tag.
// The implicit tag [All] matches every primitive.
//
// # Events
//
// Pointer events are delivered to handlers bound either to a tag
// ([Surface.TagBind]) or to the whole surface ([Surface.Bind]). Press, drag
// and release are routed to the primitive that was under the pointer when the
// button went down; motion and wheel events go to surface-level handlers.
// Binding never replaces an existing handler: handlers for the same tag and
// event run in the order they were bound.
//
// # Implementations
//
// [Memory] is a complete in-memory surface with hit testing and event
// dispatch. It backs the terminal demo host and all package tests.
package surface

import (
	"github.com/matzehuels/netgraph/pkg/geom"
)

// All is the implicit tag carried by every primitive.
const All = "all"

// Handle identifies a primitive on a surface. The zero Handle is never issued.
type Handle int

// Kind is the shape of a primitive.
type Kind int

const (
	// KindOval is an ellipse inscribed in its coordinate box.
	KindOval Kind = iota
	// KindLine is a polyline, optionally smoothed into a spline.
	KindLine
	// KindText is a single text run anchored at its center.
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindOval:
		return "oval"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Style holds the visual attributes of a primitive. Fields that do not apply
// to a kind are ignored by it.
type Style struct {
	Fill        string  // Fill color (ovals, text) or stroke color (lines)
	Width       float64 // Stroke width (lines)
	Smooth      bool    // Render line points as a spline
	SplineSteps int     // Subdivisions per spline segment
	Text        string  // Text content (text)
	Angle       float64 // Rotation in degrees, counter-clockwise (text)
}

// EventType identifies a pointer interaction.
type EventType int

const (
	// EventPress is a primary button press.
	EventPress EventType = iota
	// EventDrag is pointer motion with the primary button held.
	EventDrag
	// EventRelease is a primary button release.
	EventRelease
	// EventMotion is pointer motion with no button held.
	EventMotion
	// EventWheel is a scroll wheel step. Event.Delta is positive for up.
	EventWheel
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPress:
		return "press"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	case EventMotion:
		return "motion"
	case EventWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Event is a pointer event in window coordinates.
type Event struct {
	Type  EventType
	X, Y  float64
	Delta int // Wheel direction, zero for other events
}

// Handler receives pointer events.
type Handler func(Event)

// BindingID identifies a surface-level binding for [Surface.Unbind].
type BindingID int

// Surface is the drawing and event capability netgraph consumes.
type Surface interface {
	// CreateOval draws an ellipse inscribed in box.
	CreateOval(box geom.BBox, style Style) Handle
	// CreateLine draws a polyline through the flat coordinate list.
	CreateLine(coords []float64, style Style) Handle
	// CreateText draws style.Text centered at p.
	CreateText(p geom.Point, style Style) Handle

	// Coords returns a copy of the primitive's coordinates.
	Coords(h Handle) []float64
	// SetCoords replaces the primitive's coordinates.
	SetCoords(h Handle, coords ...float64)
	// SetAngle sets the rotation of a text primitive.
	SetAngle(h Handle, angle float64)
	// BBox returns the union of the boxes of every primitive carrying tag.
	BBox(tag string) (geom.BBox, bool)

	// AddTag attaches tag to h. Attaching a held tag is a no-op.
	AddTag(h Handle, tag string)
	// RemoveTag detaches tag from h.
	RemoveTag(h Handle, tag string)
	// Tags returns the tags of h in attachment order.
	Tags(h Handle) []string
	// FindWithTag returns every primitive carrying tag, bottom to top.
	FindWithTag(tag string) []Handle

	// Lower moves every primitive carrying tag to the bottom of the draw
	// order, keeping their relative order.
	Lower(tag string)
	// Delete removes every primitive carrying tag.
	Delete(tag string)
	// Move translates every primitive carrying tag.
	Move(tag string, dx, dy float64)
	// Scale scales every primitive carrying tag about (x, y).
	Scale(tag string, x, y, sx, sy float64)

	// TagBind adds a handler for events on primitives carrying tag.
	TagBind(tag string, typ EventType, fn Handler)
	// Bind adds a surface-level handler and returns its id.
	Bind(typ EventType, fn Handler) BindingID
	// Unbind removes a surface-level handler.
	Unbind(typ EventType, id BindingID)

	// CanvasPoint converts window coordinates to surface coordinates.
	CanvasPoint(x, y float64) geom.Point
	// Background returns the surface background color.
	Background() string
}
