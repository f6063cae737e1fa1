package netgraph

import (
	"github.com/matzehuels/netgraph/pkg/config"
	nerrors "github.com/matzehuels/netgraph/pkg/errors"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// EdgeText is a label or weight attached to an edge. It recomputes its own
// anchor and angle whenever the edge's group broadcasts new line coordinates,
// so it follows the live geometry through drags.
type EdgeText struct {
	edge   *CanvasEdge
	handle surface.Handle
	cfg    config.EdgeText
}

func newEdgeText(e *CanvasEdge, text string, cfg config.EdgeText) *EdgeText {
	h := e.s.CreateText(geom.Point{}, surface.Style{Fill: cfg.Color, Text: text})
	return &EdgeText{edge: e, handle: h, cfg: cfg}
}

// Handle implements [objects.Object].
func (t *EdgeText) Handle() surface.Handle { return t.handle }

// Coords implements [objects.Object]. For a self-loop the positions are
// ignored and the anchor comes from the node's bounding box. Otherwise the
// positions are read as start, control and end point of the line.
func (t *EdgeText) Coords(positions ...float64) {
	if err := t.place(positions); err != nil {
		t.edge.m.Logger().Warn("edge text not moved", "edge", t.edge, "err", err)
	}
}

func (t *EdgeText) place(coords []float64) error {
	s := t.edge.s
	if t.edge.IsSelfLoop() {
		box, _ := t.edge.a.BBox()
		p := geom.SelfLoopTextAnchor(box, t.edge.Offset())
		s.SetCoords(t.handle, p.X, p.Y-t.cfg.Gap)
		s.SetAngle(t.handle, 0)
		return nil
	}

	pts := geom.Points(coords)
	if len(pts) < 3 {
		return nerrors.New(nerrors.ErrCodeInvalidInput, "edge text needs 3 points, got %d", len(pts))
	}
	p1, ctrl, p2 := pts[0], pts[1], pts[len(pts)-1]

	// The smoothed curve passes halfway between the chord and the control
	// point.
	mid, err := geom.OffsetPoint(ctrl, p1, p2, t.edge.Offset()/2)
	if err != nil {
		return nerrors.Wrap(nerrors.ErrCodeDegenerate, err, "edge %s", t.edge)
	}
	anchor, angle, err := geom.TextAnchor(mid, p1, p2, t.cfg.Gap)
	if err != nil {
		return nerrors.Wrap(nerrors.ErrCodeDegenerate, err, "edge %s", t.edge)
	}
	s.SetCoords(t.handle, anchor.X, anchor.Y)
	s.SetAngle(t.handle, angle)
	return nil
}
