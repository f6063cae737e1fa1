package netgraph

import (
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// aaLineColor is the color of the softening pass of an anti-aliased line.
const aaLineColor = "#AAA"

// createLine draws a line, or an anti-aliased line if aa is set.
func createLine(s surface.Surface, aa bool, coords []float64, style surface.Style) []surface.Handle {
	if !aa {
		return []surface.Handle{s.CreateLine(coords, style)}
	}
	return createAALine(s, coords, style)
}

// createAALine draws the line twice: once in its own color, then in a light
// gray half a unit wider.
func createAALine(s surface.Surface, coords []float64, style surface.Style) []surface.Handle {
	solid := s.CreateLine(coords, style)
	style.Fill = aaLineColor
	style.Width += 0.5
	return []surface.Handle{solid, s.CreateLine(coords, style)}
}

// createBorderCircle draws a black circle of the given radius with its
// interior painted in the background color, leaving a ring of width.
func createBorderCircle(s surface.Surface, c geom.Point, radius, width float64) []surface.Handle {
	return []surface.Handle{
		s.CreateOval(circleBox(c, radius), surface.Style{Fill: "black"}),
		s.CreateOval(circleBox(c, radius-width), surface.Style{Fill: s.Background()}),
	}
}

// createDoubleCircle draws two concentric rings space units apart.
func createDoubleCircle(s surface.Surface, c geom.Point, space, radius float64) []surface.Handle {
	const ring = 2
	return append(
		createBorderCircle(s, c, radius, ring),
		createBorderCircle(s, c, radius-space, ring)...,
	)
}

func circleBox(c geom.Point, r float64) geom.BBox {
	return geom.BBox{X0: c.X - r, Y0: c.Y - r, X1: c.X + r, Y1: c.Y + r}
}
