// Package geom computes the draw points used to place edges, self-loops and
// their labels on a 2D surface.
//
// All functions are pure: they take endpoint coordinates plus a scalar offset
// and return new points. The coordinate system is screen-oriented (y grows
// downward), matching the surfaces that consume these points.
//
// # Curved Edges
//
// [CurvedMidpoint] returns the control point of a curve through p1 and p2.
// A smoothed polyline p1 → control → p2 bends away from the straight segment
// by roughly half the offset, which is why labels are anchored with
// [OffsetPoint] at offset/2 from the control point.
//
// # Self-Loops
//
// [SelfLoopPoints] returns a five-point polyline that leaves and re-enters the
// top of a node's bounding box. [SelfLoopTextAnchor] approximates the visual
// apex of the rendered spline.
package geom

import (
	"errors"
	"math"
)

// ErrCoincidentPoints is returned by [OffsetPoint] and [TextAnchor] when the
// two reference points are identical. The direction between them is
// undefined, so no perpendicular displacement exists.
var ErrCoincidentPoints = errors.New("reference points are coincident")

const (
	// SelfLoopHalfWidth is the fixed horizontal distance from the box center to
	// the points where a self-loop leaves and re-enters the node.
	SelfLoopHalfWidth = 30.0

	// SelfLoopApexFactor scales the apex rise of a self-loop for label
	// placement. The rendered spline does not reach the literal apex.
	SelfLoopApexFactor = 0.9375
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Flat appends the coordinates of pts to a flat x0, y0, x1, y1, ... list.
func Flat(pts ...Point) []float64 {
	out := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}

// Points groups a flat coordinate list into points. A trailing odd
// coordinate is dropped.
func Points(coords []float64) []Point {
	out := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, Point{coords[i], coords[i+1]})
	}
	return out
}

// BBox is an axis-aligned bounding box given by its top-left (X0, Y0) and
// bottom-right (X1, Y1) corners.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Center returns the midpoint of the box.
func (b BBox) Center() Point {
	return Point{(b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Contains reports whether p lies inside or on the border of the box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 && p.Y >= b.Y0 && p.Y <= b.Y1
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// CurvedMidpoint returns the control point for a curve from p1 to p2: the
// segment midpoint displaced by offset along the p1→p2 direction rotated by
// 90°. A zero offset yields the plain midpoint. Coincident endpoints are
// tolerated and return the shared point shifted down by offset.
func CurvedMidpoint(p1, p2 Point, offset float64) Point {
	mid := Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}
	beta := math.Pi/2 - math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	return Point{
		X: mid.X - offset*math.Cos(beta),
		Y: mid.Y + offset*math.Sin(beta),
	}
}

// OffsetPoint displaces pos perpendicular to the p1→p2 direction by offset
// (unit normal scaled). It returns [ErrCoincidentPoints] when p1 == p2.
func OffsetPoint(pos, p1, p2 Point, offset float64) (Point, error) {
	d := p2.Sub(p1)
	norm := math.Hypot(d.X, d.Y)
	if norm == 0 {
		return Point{}, ErrCoincidentPoints
	}
	ux, uy := d.X/norm, d.Y/norm
	return Point{pos.X + uy*offset, pos.Y - ux*offset}, nil
}

// TextAnchor returns pos displaced by gap perpendicular to p1→p2, plus the
// rotation angle (degrees) of the p1→p2 direction normalized to (-90, 90] so
// that text never renders upside-down.
func TextAnchor(pos, p1, p2 Point, gap float64) (Point, float64, error) {
	pt, err := OffsetPoint(pos, p1, p2, gap)
	if err != nil {
		return Point{}, 0, err
	}
	return pt, textAngle(p1, p2), nil
}

func textAngle(p1, p2 Point) float64 {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	angle := degrees(math.Atan2(dy, -dx))
	if math.Abs(angle) > 90 {
		angle = degrees(math.Atan2(-dy, dx))
	}
	if angle <= -90 {
		angle += 180
	}
	return angle
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// SelfLoopPoints returns the five points of a loop over the top of box:
// left anchor, left control, apex, right control, right anchor.
func SelfLoopPoints(box BBox, offset float64) []Point {
	c := box.Center()
	return []Point{
		{c.X - SelfLoopHalfWidth, c.Y},
		{c.X - offset, c.Y - offset},
		{c.X, c.Y - offset - box.Height()*0.25},
		{c.X + offset, c.Y - offset},
		{c.X + SelfLoopHalfWidth, c.Y},
	}
}

// SelfLoopTextAnchor returns the approximate visual apex of the loop drawn by
// [SelfLoopPoints] for the same box and offset.
func SelfLoopTextAnchor(box BBox, offset float64) Point {
	c := box.Center()
	return Point{c.X, c.Y - offset - box.Height()*0.25*SelfLoopApexFactor}
}

// Spline expands the control points of a smoothed polyline into the points of
// the drawn curve. The curve is a chain of quadratic Bézier segments joined at
// the midpoints of the inner control points, so it starts at the first point,
// ends at the last and passes near the others. Each segment contributes steps
// points. Inputs with fewer than three points are returned as a copy.
func Spline(pts []Point, steps int) []Point {
	if len(pts) < 3 || steps < 1 {
		return append([]Point(nil), pts...)
	}
	out := make([]Point, 0, 1+(len(pts)-2)*steps)
	out = append(out, pts[0])
	for i := 0; i+2 < len(pts); i++ {
		start, ctrl, end := pts[i], pts[i+1], pts[i+2]
		if i > 0 {
			start = midpoint(pts[i], pts[i+1])
		}
		if i+3 < len(pts) {
			end = midpoint(pts[i+1], pts[i+2])
		}
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			u := 1 - t
			out = append(out, Point{
				u*u*start.X + 2*u*t*ctrl.X + t*t*end.X,
				u*u*start.Y + 2*u*t*ctrl.Y + t*t*end.Y,
			})
		}
	}
	return out
}

func midpoint(a, b Point) Point { return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }
