package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// Surface units covered by one terminal cell. Cells are roughly twice as
// tall as they are wide, so a circle stays round on screen.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellLine
	cellRing
	cellFill
	cellText
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellLine: lipgloss.NewStyle().Foreground(colorGray),
	cellRing: lipgloss.NewStyle().Foreground(colorCyan),
	cellFill: lipgloss.NewStyle().Foreground(colorCyan),
	cellText: lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
}

// raster paints surface primitives onto a grid of terminal cells.
type raster struct {
	cols, rows int
	background string
	runes      [][]rune
	kinds      [][]cellKind
}

func newRaster(cols, rows int, background string) *raster {
	cols, rows = max(cols, 0), max(rows, 0)
	r := &raster{cols: cols, rows: rows, background: background}
	r.runes = make([][]rune, rows)
	r.kinds = make([][]cellKind, rows)
	for y := range rows {
		r.runes[y] = []rune(strings.Repeat(" ", cols))
		r.kinds[y] = make([]cellKind, cols)
	}
	return r
}

// cellAt returns the cell containing surface point p.
func cellAt(p geom.Point) (col, row int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// cellCenter returns the surface point at the center of a cell.
func cellCenter(col, row int) geom.Point {
	return geom.Point{X: (float64(col) + 0.5) * cellWidth, Y: (float64(row) + 0.5) * cellHeight}
}

func (r *raster) set(col, row int, ch rune, kind cellKind) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.runes[row][col] = ch
	r.kinds[row][col] = kind
}

// draw paints items in order, so later items cover earlier ones.
func (r *raster) draw(items []surface.Item) {
	for _, it := range items {
		switch it.Kind {
		case surface.KindLine:
			r.line(it)
		case surface.KindOval:
			r.oval(it)
		case surface.KindText:
			r.text(it)
		}
	}
}

func (r *raster) line(it surface.Item) {
	pts := geom.Points(it.Coords)
	if it.Style.Smooth {
		pts = geom.Spline(pts, it.Style.SplineSteps)
	}
	for i := 1; i < len(pts); i++ {
		r.segment(pts[i-1], pts[i])
	}
}

// segment samples a-b at half-cell steps and marks every cell it crosses
// with a glyph matching its on-screen slope.
func (r *raster) segment(a, b geom.Point) {
	d := b.Sub(a)
	ch := slopeGlyph(d.X/cellWidth, d.Y/cellHeight)
	steps := int(math.Ceil(math.Max(math.Abs(d.X)/cellWidth, math.Abs(d.Y)/cellHeight) * 2))
	for s := 0; s <= steps; s++ {
		t := 0.0
		if steps > 0 {
			t = float64(s) / float64(steps)
		}
		col, row := cellAt(geom.Point{X: a.X + d.X*t, Y: a.Y + d.Y*t})
		r.set(col, row, ch, cellLine)
	}
}

// slopeGlyph picks a line glyph for a direction given in cell units, with y
// growing downward.
func slopeGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax/2:
		return '-'
	case ax <= ay/2:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// oval paints an ellipse. Ovals filled with the surface background erase
// what lies beneath and show only their outline; other ovals are solid.
func (r *raster) oval(it surface.Item) {
	if len(it.Coords) < 4 {
		return
	}
	box := it.BBox()
	c := box.Center()
	rx, ry := box.Width()/2, box.Height()/2
	if rx <= 0 || ry <= 0 {
		return
	}
	hollow := it.Style.Fill == r.background
	// One cell thick outline, measured in the ellipse's normalized space.
	inner := 1 - math.Max(cellWidth/rx, cellHeight/ry)
	inner = math.Max(inner, 0)

	c0, r0 := cellAt(geom.Point{X: box.X0, Y: box.Y0})
	c1, r1 := cellAt(geom.Point{X: box.X1, Y: box.Y1})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := cellCenter(col, row)
			nx, ny := (p.X-c.X)/rx, (p.Y-c.Y)/ry
			d := nx*nx + ny*ny
			switch {
			case d > 1:
			case !hollow:
				r.set(col, row, '#', cellFill)
			case d >= inner*inner:
				r.set(col, row, 'o', cellRing)
			default:
				r.set(col, row, ' ', cellBlank)
			}
		}
	}
}

// text writes a text run centered on its anchor. Rotation is ignored.
func (r *raster) text(it surface.Item) {
	if it.Style.Text == "" || len(it.Coords) < 2 {
		return
	}
	runes := []rune(it.Style.Text)
	col, row := cellAt(geom.Point{X: it.Coords[0], Y: it.Coords[1]})
	start := col - len(runes)/2
	for i, ch := range runes {
		r.set(start+i, row, ch, cellText)
	}
}

// Plain returns the grid without styling, one line per row.
func (r *raster) Plain() string {
	lines := make([]string, r.rows)
	for y := range r.rows {
		lines[y] = string(r.runes[y])
	}
	return strings.Join(lines, "\n")
}

// String renders the grid with a style per cell kind. Runs of the same kind
// are styled together.
func (r *raster) String() string {
	var b strings.Builder
	for y := range r.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= r.cols; x++ {
			if x < r.cols && r.kinds[y][x] == r.kinds[y][start] {
				continue
			}
			run := string(r.runes[y][start:x])
			if style, ok := cellStyles[r.kinds[y][start]]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return b.String()
}
