package figure

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

const (
	// circleSegments is the number of edges of a circle marker.
	circleSegments = 16

	// joinSegments is the number of edges of a round stroke join.
	joinSegments = 8

	// minStrokeWidth keeps hairlines visible.
	minStrokeWidth = 1.0
)

// rasterizer fills polygons into the clip rectangle of a destination image.
// Input coordinates are viewport pixels; origin is where the viewport
// (0, 0) lies in the destination.
type rasterizer struct {
	z    *vector.Rasterizer
	dst  *image.RGBA
	clip image.Rectangle
	off  Point
	w, h float64
}

// newRasterizer returns nil when nothing of clip is visible in dst.
func newRasterizer(dst *image.RGBA, clip image.Rectangle, origin image.Point) *rasterizer {
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return nil
	}
	d := origin.Sub(clip.Min)
	return &rasterizer{
		z:    vector.NewRasterizer(clip.Dx(), clip.Dy()),
		dst:  dst,
		clip: clip,
		off:  Pt(float64(d.X), float64(d.Y)),
		w:    float64(clip.Dx()),
		h:    float64(clip.Dy()),
	}
}

// flush composites the accumulated coverage with color c and resets.
func (r *rasterizer) flush(c RGBA) {
	r.z.Draw(r.dst, r.clip, image.NewUniform(c.Color()), image.Point{})
	r.z.Reset(r.clip.Dx(), r.clip.Dy())
}

// polygon adds a closed polygon in raster coordinates.
func (r *rasterizer) polygon(pts ...Point) {
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

// stroke draws a polyline. Non-finite points break the line.
// Every quad and join is emitted with the same orientation, so overlaps
// accumulate instead of cancelling.
func (r *rasterizer) stroke(s stroke) {
	hw := math.Max(s.width, minStrokeWidth) / 2
	pad := hw + 2
	drawn := false
	for i := 1; i < len(s.pts); i++ {
		a, b := s.pts[i-1].Add(r.off), s.pts[i].Add(r.off)
		if !finitePoint(a) || !finitePoint(b) {
			continue
		}
		ca, cb, ok := clipSegment(a, b, -pad, -pad, r.w+pad, r.h+pad)
		if !ok {
			continue
		}
		d := cb.Sub(ca)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := Pt(-d.Y, d.X).Mul(hw / l)
		r.polygon(ca.Add(n), cb.Add(n), cb.Sub(n), ca.Sub(n))
		drawn = true
		if i < len(s.pts)-1 && s.width > 2*minStrokeWidth && b == cb {
			r.polygon(disc(b, hw, joinSegments)...)
		}
	}
	if drawn {
		r.flush(s.color)
	}
}

// marker fills one glyph.
func (r *rasterizer) marker(g glyph) {
	c := g.at.Add(r.off)
	s := g.size
	if !finitePoint(c) || c.X < -2*s || c.Y < -2*s || c.X > r.w+2*s || c.Y > r.h+2*s {
		return
	}
	switch g.shape {
	case MarkerSquare:
		h := s / 2
		r.polygon(Pt(c.X-h, c.Y-h), Pt(c.X-h, c.Y+h), Pt(c.X+h, c.Y+h), Pt(c.X+h, c.Y-h))
	case MarkerTriangleUp:
		r.polygon(Pt(c.X, c.Y-s), Pt(c.X-s, c.Y+s), Pt(c.X+s, c.Y+s))
	case MarkerTriangleDown:
		r.polygon(Pt(c.X, c.Y+s), Pt(c.X+s, c.Y-s), Pt(c.X-s, c.Y-s))
	default:
		r.polygon(disc(c, s, circleSegments)...)
	}
	r.flush(g.color)
}

// disc returns a regular polygon approximating a circle, wound the same
// way as stroke quads.
func disc(c Point, radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(c.X+radius*math.Cos(t), c.Y-radius*math.Sin(t))
	}
	return pts
}

// nanFloat as a stroke point breaks a polyline into separate pieces.
var nanFloat = math.NaN()

func finitePoint(p Point) bool {
	return finite(p.X) && finite(p.Y)
}

// clipSegment clips the segment ab to the box [x0, x1] x [y0, y1] with the
// Liang-Barsky algorithm. ok is false when nothing remains.
func clipSegment(a, b Point, x0, y0, x1, y1 float64) (ca, cb Point, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - x0},
		{dx, x1 - a.X},
		{-dy, a.Y - y0},
		{dy, y1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	ca, cb = a, b
	if t0 > 0 {
		ca = a.Lerp(b, t0)
	}
	if t1 < 1 {
		cb = a.Lerp(b, t1)
	}
	return ca, cb, true
}
