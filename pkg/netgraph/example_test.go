package netgraph_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/netgraph"
	"github.com/matzehuels/netgraph/pkg/surface"
)

func ExampleManager() {
	s := surface.NewMemory("white")
	m := netgraph.New(s, config.Default(), netgraph.WithLogger(log.New(io.Discard)))

	a := m.CreateNode("A", nil)
	a.Render(geom.Point{X: 100, Y: 100})
	b := m.CreateNode("B", nil)
	b.Render(geom.Point{X: 300, Y: 100})
	c := m.CreateNode("C", nil)
	c.Render(geom.Point{X: 200, Y: 300})

	for _, pair := range [][2]netgraph.Node{{a, b}, {b, c}, {a, b}, {b, a}} {
		e, err := m.CreateEdge(pair[0], pair[1], "", nil, nil)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := e.Render(); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%v position=%d %s\n", e, e.Position(), e.ComponentID())
	}
	fmt.Println(m.Registry().IDs())
	// Output:
	// A->B position=0 component0
	// B->C position=0 component0
	// A->B position=1 component0
	// B->A position=0 component0
	// [component0]
}

func ExampleManager_interactive() {
	s := surface.NewMemory("white")
	m := netgraph.New(s, nil, netgraph.WithLogger(log.New(io.Discard)))

	a := m.CreateNode("A", nil)
	a.Render(geom.Point{X: 100, Y: 100})
	b := m.CreateNode("B", nil)
	b.Render(geom.Point{X: 300, Y: 100})

	s.Click(100, 100)
	fmt.Println("connecting from", m.Canvas().ActiveNode().Label())

	s.Motion(200, 150)
	s.Click(300, 100)
	fmt.Println("edges:", len(m.Edges()), "connecting:", m.Canvas().Active())

	s.Wheel(200, 100, 1)
	in, out := m.ZoomCounts()
	fmt.Println("zoom:", in, out)
	// Output:
	// connecting from A
	// edges: 1 connecting: false
	// zoom: 1 -1
}
