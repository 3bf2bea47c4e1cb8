package figure

// RenderContext is handed to a native Source once per render pass.
// It carries the coordinate snapshot of the axes and collects the geometry
// the source emits, already mapped to viewport pixels.
//
// A RenderContext is only valid during the Render call that received it.
type RenderContext[X, Y Number] struct {
	Snapshot[X, Y]

	strokes []stroke
	glyphs  []glyph
}

// stroke is a polyline in viewport pixels.
type stroke struct {
	pts   []Point
	color RGBA
	width float64
}

// glyph is a filled marker centered on a viewport pixel.
type glyph struct {
	at    Point
	shape MarkerShape
	size  float64
	color RGBA
}

func newRenderContext[X, Y Number](s Snapshot[X, Y]) *RenderContext[X, Y] {
	return &RenderContext[X, Y]{Snapshot: s}
}

// Plot renders a nested source into the same context.
func (cx *RenderContext[X, Y]) Plot(src Source[X, Y]) {
	src.Render(cx)
}

// Polyline draws connected segments through data points.
// Fewer than two points draw nothing.
func (cx *RenderContext[X, Y]) Polyline(pts []Point2[X, Y], c RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	px := make([]Point, len(pts))
	for i, p := range pts {
		px[i] = cx.TransformPoint(p)
	}
	cx.PixelPolyline(px, c, width)
}

// PixelPolyline draws connected segments through viewport pixels.
func (cx *RenderContext[X, Y]) PixelPolyline(pts []Point, c RGBA, width float64) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	cx.strokes = append(cx.strokes, stroke{pts: pts, color: c, width: width})
}

// DrawLine draws the current points of l.
func (cx *RenderContext[X, Y]) DrawLine(l *Line[X, Y]) {
	cx.Polyline(l.Points(), l.Color, l.Width)
}

// DrawMarker draws one marker. Markers outside the visible bounds are culled.
func (cx *RenderContext[X, Y]) DrawMarker(m Marker[X, Y]) {
	if !cx.Contains(m.Position) || m.Size <= 0 {
		return
	}
	cx.glyphs = append(cx.glyphs, glyph{
		at:    cx.TransformPoint(m.Position),
		shape: m.Shape,
		size:  m.Size,
		color: m.Color,
	})
}

// Len returns the number of strokes and markers collected so far.
func (cx *RenderContext[X, Y]) Len() int {
	return len(cx.strokes) + len(cx.glyphs)
}
