// Package pkg provides the core libraries for netgraph interactive graph editing.
//
// # Overview
//
// Netgraph keeps a graph drawn on a 2D surface consistent while the user
// edits it: nodes are placed, edges are drawn between them, and connected
// components are tracked so they can be dragged as a unit. The pkg directory
// is organized bottom-up:
//
//  1. [geom] - Pure geometry (curve control points, text anchors, self-loops)
//  2. [surface] - The drawing surface contract and an in-memory implementation
//  3. [objects] - Object groups that tag, move and restack primitives together
//  4. [component] - Connected-component registry and the merge algorithm
//  5. [netgraph] - Nodes, edges, the edge-drawing gesture and the Manager
//
// # Architecture
//
// The typical flow of a user edit:
//
//	Pointer event on the surface
//	         ↓
//	    [netgraph] Manager (create node / start or complete an edge)
//	         ↓
//	    [component] Registry (merge endpoint components)
//	         ↓
//	    [geom] (curve and label placement)
//	         ↓
//	    [objects] Group → [surface] primitives
//
// # Quick Start
//
// Build a small graph on an in-memory surface:
//
//	import (
//	    "github.com/matzehuels/netgraph/pkg/geom"
//	    "github.com/matzehuels/netgraph/pkg/netgraph"
//	    "github.com/matzehuels/netgraph/pkg/surface"
//	)
//
//	s := surface.NewMemory("white")
//	m := netgraph.New(s, nil)
//
//	a := m.CreateNode("A", nil)
//	a.Render(geom.Point{X: 100, Y: 100})
//	b := m.CreateNode("B", nil)
//	b.Render(geom.Point{X: 300, Y: 100})
//
//	e, _ := m.CreateEdge(a, b, "ab", nil, nil)
//	_ = e.Render()
//
// # Supporting Packages
//
// [config] - Configuration bundle with TOML loading, validation and an
// observable zoom switch.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks receiving node, edge, component and zoom events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/netgraph/...           # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/geom
// [surface]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/surface
// [objects]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/objects
// [component]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/component
// [netgraph]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/netgraph
// [config]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/netgraph/pkg/buildinfo
package pkg
