// Package netgraph builds interactive node/edge graphs on a [surface.Surface].
//
// A [Manager] creates nodes and edges, keeps the connected components of the
// graph in a [component.Registry], and owns the zoom gesture. Nodes and edges
// draw themselves as primitives grouped in an [objects.Container], so every
// entity can be moved, lowered and tagged as one unit.
//
// # Interaction
//
// Pressing a node starts a dynamic line that follows the pointer. Pressing a
// node again completes it: an edge is created from the first node to the
// second (a self-loop if both are the same) and rendered. Dragging a node
// moves it, re-routes every incident edge, and cancels a dynamic line in
// progress. Dragging an edge moves its component, the whole surface, or
// nothing, depending on [config.Edge.DragMode]. The mouse wheel zooms around
// the pointer while [config.Config.EnableZoom] is set.
//
// # Parallel Edges
//
// Each edge records its position: how many edges with the same ordered
// endpoints existed before it. The position scales the curvature, so
// parallel edges fan out and self-loops stack concentrically.
//
// # Example
//
//	s := surface.NewMemory("white")
//	m := netgraph.New(s, config.Default())
//
//	a := m.CreateNode("A", nil)
//	a.Render(geom.Point{X: 100, Y: 100})
//	b := m.CreateNode("B", nil)
//	b.Render(geom.Point{X: 300, Y: 100})
//
//	e, err := m.CreateEdge(a, b, "A-B", nil, nil)
//	if err != nil {
//	    return err
//	}
//	return e.Render()
package netgraph
