package figure

// Snapshot is an immutable copy of one axes state: the visible data bounds
// and the viewport size in pixels. It derives the data-to-screen transform
// and is the read-only coordinate context handed to renderers.
//
// Screen coordinates are relative to the viewport origin, with y growing
// downward: data "up" maps to screen "up".
type Snapshot[X, Y Number] struct {
	bounds   AxesBounds[X, Y]
	viewport Size2[float64, float64]
}

// Bounds returns the visible data rectangle.
func (s Snapshot[X, Y]) Bounds() AxesBounds[X, Y] { return s.bounds }

// Viewport returns the viewport size in pixels.
func (s Snapshot[X, Y]) Viewport() Size2[float64, float64] { return s.viewport }

// TransformPoint maps a data point to viewport pixels.
func (s Snapshot[X, Y]) TransformPoint(p Point2[X, Y]) Point {
	return s.transform(float64(p.X), float64(p.Y))
}

func (s Snapshot[X, Y]) transform(x, y float64) Point {
	fx := s.bounds.X.fraction(x)
	fy := s.bounds.Y.fraction(y)
	return Point{
		X: fx * s.viewport.Width,
		Y: (1 - fy) * s.viewport.Height,
	}
}

// InverseTransformPoint maps viewport pixels back to data space.
func (s Snapshot[X, Y]) InverseTransformPoint(p Point) Point2[X, Y] {
	return Point2[X, Y]{
		X: s.bounds.X.FromFraction(p.X / s.viewport.Width),
		Y: s.bounds.Y.FromFraction(1 - p.Y/s.viewport.Height),
	}
}

// inverse maps viewport pixels to real data values without rounding.
func (s Snapshot[X, Y]) inverse(p Point) (x, y float64) {
	return s.bounds.X.value(p.X / s.viewport.Width),
		s.bounds.Y.value(1 - p.Y/s.viewport.Height)
}

// Transform returns the data-to-screen map as an affine matrix.
func (s Snapshot[X, Y]) Transform() Matrix {
	sx := s.viewport.Width / s.bounds.X.Span()
	sy := s.viewport.Height / s.bounds.Y.Span()
	return Matrix{
		A: sx, C: -float64(s.bounds.X.Low()) * sx,
		E: -sy, F: s.viewport.Height + float64(s.bounds.Y.Low())*sy,
	}
}

// InverseTransform returns the screen-to-data map as an affine matrix.
// It is built from the ranges directly rather than by numeric inversion.
func (s Snapshot[X, Y]) InverseTransform() Matrix {
	return Matrix{
		A: s.bounds.X.Span() / s.viewport.Width, C: float64(s.bounds.X.Low()),
		E: -s.bounds.Y.Span() / s.viewport.Height, F: float64(s.bounds.Y.High()),
	}
}

// DataDelta converts a screen-space displacement to data units.
// Moving right increases x; moving down decreases y.
func (s Snapshot[X, Y]) DataDelta(d Point) (dx, dy float64) {
	return d.X * s.bounds.X.Span() / s.viewport.Width,
		-d.Y * s.bounds.Y.Span() / s.viewport.Height
}

// Contains reports whether a data point is inside the visible bounds.
func (s Snapshot[X, Y]) Contains(p Point2[X, Y]) bool {
	return s.bounds.Contains(p)
}
