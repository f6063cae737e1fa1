// Package objects groups surface primitives into addressable, taggable,
// movable units.
//
// A [Group] owns a unique identity tag. Every primitive added to the group
// receives the identity tag plus every other tag the group holds, so the
// surface can select, move or lower the whole group with a single tag. The
// group's member list only caches the primitives for iteration; membership
// as seen by the surface is always the identity tag.
//
// # Drag Gesture
//
// Unless created disabled, a group binds press and drag handlers to its
// identity tag: press records the pointer, drag moves every primitive carrying
// the identity tag by the pointer delta. A drag also aborts any in-flight
// [Gesture], so dragging a node cancels a half-drawn connection.
package objects

import (
	"github.com/matzehuels/netgraph/pkg/surface"
)

// Object is a primitive that can be placed in a group.
type Object interface {
	// Handle returns the primitive's surface handle.
	Handle() surface.Handle
	// Coords receives the coordinates broadcast by the owning group.
	Coords(positions ...float64)
}

// Item is an [Object] that writes broadcast coordinates straight to its
// primitive.
type Item struct {
	handle surface.Handle
	s      surface.Surface
}

// NewItem wraps the primitive h on s.
func NewItem(s surface.Surface, h surface.Handle) *Item {
	return &Item{handle: h, s: s}
}

// Handle implements [Object].
func (i *Item) Handle() surface.Handle { return i.handle }

// Coords implements [Object].
func (i *Item) Coords(positions ...float64) {
	i.s.SetCoords(i.handle, positions...)
}

// Wrap converts plain handles to [Item] objects.
func Wrap(s surface.Surface, handles ...surface.Handle) []Object {
	out := make([]Object, 0, len(handles))
	for _, h := range handles {
		out = append(out, NewItem(s, h))
	}
	return out
}

// Gesture is an in-flight pointer gesture that a group drag aborts.
type Gesture interface {
	// Active reports whether the gesture is in progress.
	Active() bool
	// Abort cancels the gesture.
	Abort()
}

// Container is a taggable group of objects. [Group] is the default
// implementation.
type Container interface {
	// ID returns the identity tag.
	ID() string
	// Tags returns every held tag, the identity tag first.
	Tags() []string
	// Objects returns the cached members.
	Objects() []Object

	Add(objs ...Object)
	AddTag(tag string)
	RemoveTag(tag string)
	Remove(objs ...Object)
	RemoveAll()
	Coords(positions ...float64)
	Lower()
	Bind(typ surface.EventType, fn surface.Handler)
}

// Factory creates containers. Managers hold one so embedders can replace the
// default [Group].
type Factory func(s surface.Surface, g Gesture, disabled bool) Container

// DefaultFactory creates a [Group].
func DefaultFactory(s surface.Surface, g Gesture, disabled bool) Container {
	return New(s, g, disabled)
}
