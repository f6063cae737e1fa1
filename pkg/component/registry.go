// Package component tracks connected components of an interactive graph.
//
// A component is identified by a tag of the form "component<N>", where N comes
// from a counter that never repeats, even after a component is absorbed by a
// merge. The tag doubles as a surface tag: every member's object group carries
// it, so a whole component can be selected or dragged with one tag.
//
// Membership is maintained incrementally. Each new edge calls [Registry.Merge]
// with its two endpoints, which is a union step: after any sequence of edge
// creations, two nodes share a component exactly when a path of edges
// connects them.
package component

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/netgraph/pkg/objects"
)

// ErrUnknownComponent is returned by [Registry.Merge] when an endpoint
// reports a component id the registry does not hold. This happens only if
// members were tagged outside the registry.
var ErrUnknownComponent = errors.New("unknown component")

// Member is a node or edge that can belong to a component.
type Member interface {
	// ComponentID returns the current component tag, or "" if none.
	ComponentID() string
	// SetComponentID records the component tag.
	SetComponentID(id string)
	// Group returns the member's object group.
	Group() objects.Container
}

// Registry maps component tags to their members.
//
// The zero value is not usable - use NewRegistry.
// Registry is not safe for concurrent use.
type Registry struct {
	components map[string][]Member
	order      []string
	next       int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string][]Member)}
}

// AddComponent allocates a new empty component and returns its tag.
func (r *Registry) AddComponent() string {
	tag := fmt.Sprintf("component%d", r.next)
	r.next++
	r.components[tag] = nil
	r.order = append(r.order, tag)
	return tag
}

// Members returns the members of the component in join order.
func (r *Registry) Members(id string) ([]Member, bool) {
	m, ok := r.components[id]
	return slices.Clone(m), ok
}

// IDs returns the live component tags in creation order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// Len returns the number of live components.
func (r *Registry) Len() int {
	return len(r.components)
}

// Delete drops a component entry. Members keep their fields and tags.
func (r *Registry) Delete(id string) {
	delete(r.components, id)
	r.order = slices.DeleteFunc(r.order, func(t string) bool { return t == id })
}

// MergeResult describes the outcome of [Registry.Merge].
type MergeResult struct {
	ID       string // Surviving component tag
	Created  bool   // ID was allocated by this merge
	Absorbed string // Tag of the component folded into ID, if any
	Joined   int    // Members that gained ID, including the edge
}

// Merge assigns edge to the component joining endpoints a and b:
//
//   - a and b in different components X and Y: Y's members move to X and Y
//     is deleted.
//   - only one endpoint in a component: the other endpoint joins it.
//   - both in the same component: only the edge joins.
//   - neither in a component: a new component holds both endpoints.
//
// Each joining member gets its component id set, the id added as a tag on
// its group, and is appended to the component's member list. A self-loop
// (a == b) joins its node once.
func (r *Registry) Merge(edge, a, b Member) (MergeResult, error) {
	idA, idB := a.ComponentID(), b.ComponentID()
	for _, id := range []string{idA, idB} {
		if _, ok := r.components[id]; id != "" && !ok {
			return MergeResult{}, fmt.Errorf("%w: %s", ErrUnknownComponent, id)
		}
	}

	var (
		res    MergeResult
		joined = []Member{edge}
	)
	switch {
	case idA != "" && idB != "" && idA != idB:
		res.ID, res.Absorbed = idA, idB
		for _, m := range r.components[idB] {
			m.Group().RemoveTag(idB)
			joined = append(joined, m)
		}
		r.Delete(idB)
	case idA != "" && idB == "":
		res.ID = idA
		joined = append(joined, b)
	case idA == "" && idB != "":
		res.ID = idB
		joined = append(joined, a)
	case idA != "":
		res.ID = idA
	default:
		res.ID, res.Created = r.AddComponent(), true
		joined = append(joined, a)
		if b != a {
			joined = append(joined, b)
		}
	}

	for _, m := range joined {
		m.SetComponentID(res.ID)
		m.Group().AddTag(res.ID)
	}
	r.components[res.ID] = append(r.components[res.ID], joined...)
	res.Joined = len(joined)
	return res, nil
}
