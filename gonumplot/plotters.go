package gonumplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"

	"github.com/gogpu/figure"
)

// XYs converts data points to gonum plotter values.
func XYs[X, Y figure.Number](pts []figure.Point2[X, Y]) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = float64(p.X)
		xys[i].Y = float64(p.Y)
	}
	return xys
}

// NewLine creates a gonum line plotter with the points, color and width
// of l. Lines with fewer than two points are rejected.
func NewLine[X, Y figure.Number](l *figure.Line[X, Y]) (*plotter.Line, error) {
	if l.Len() < 2 {
		return nil, fmt.Errorf("gonumplot: line needs at least two points, got %d", l.Len())
	}
	gl, err := plotter.NewLine(XYs(l.Points()))
	if err != nil {
		return nil, fmt.Errorf("gonumplot: %w", err)
	}
	gl.LineStyle.Color = l.Color
	gl.LineStyle.Width = Length(l.Width)
	return gl, nil
}

// AddLines adds a line plotter for every line to p.
func AddLines[X, Y figure.Number](p *plot.Plot, lines ...*figure.Line[X, Y]) error {
	for i, l := range lines {
		gl, err := NewLine(l)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		p.Add(gl)
	}
	return nil
}

// NewScatter creates a gonum scatter plotter drawing every marker with its
// own shape, size and color.
func NewScatter[X, Y figure.Number](m *figure.Markers[X, Y]) (*plotter.Scatter, error) {
	ms := m.Markers()
	pts := make([]figure.Point2[X, Y], len(ms))
	for i, mk := range ms {
		pts[i] = mk.Position
	}
	s, err := plotter.NewScatter(XYs(pts))
	if err != nil {
		return nil, fmt.Errorf("gonumplot: %w", err)
	}
	s.GlyphStyleFunc = func(i int) vgdraw.GlyphStyle {
		return glyphStyle(ms[i].Shape, ms[i].Size, ms[i].Color)
	}
	return s, nil
}

// AddMarkers adds one scatter plotter holding all markers to p.
func AddMarkers[X, Y figure.Number](p *plot.Plot, m *figure.Markers[X, Y]) error {
	if m.Len() == 0 {
		return nil
	}
	s, err := NewScatter(m)
	if err != nil {
		return err
	}
	p.Add(s)
	return nil
}

// glyphStyle matches the native marker geometry: size is the circle and
// triangle radius, and the side of a square.
func glyphStyle(shape figure.MarkerShape, size float64, c figure.RGBA) vgdraw.GlyphStyle {
	sty := vgdraw.GlyphStyle{Color: c, Radius: Length(size)}
	switch shape {
	case figure.MarkerSquare:
		sty.Radius = Length(size / 2)
		sty.Shape = vgdraw.BoxGlyph{}
	case figure.MarkerTriangleUp:
		sty.Shape = triangleGlyph{up: true}
	case figure.MarkerTriangleDown:
		sty.Shape = triangleGlyph{}
	default:
		sty.Shape = vgdraw.CircleGlyph{}
	}
	return sty
}

// triangleGlyph is a filled isosceles triangle with its apex one radius
// above or below the point and its base one radius on the other side.
type triangleGlyph struct {
	up bool
}

// DrawGlyph implements vgdraw.GlyphDrawer.
func (g triangleGlyph) DrawGlyph(c *vgdraw.Canvas, sty vgdraw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	apex, base := r, -r
	if !g.up {
		apex, base = -r, r
	}
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X, Y: pt.Y + apex},
		{X: pt.X - r, Y: pt.Y + base},
		{X: pt.X + r, Y: pt.Y + base},
	})
}
