package figure

// Default stroke style of a new Line.
const defaultLineWidth = 1.0

// Line is an append-only sequence of data points drawn as connected
// segments. Points are not required to be sorted.
//
// A Line is not safe for concurrent use; append between render passes or
// guard it with the lock of the axes it is plotted on.
type Line[X, Y Number] struct {
	points []Point2[X, Y]

	// Color is the stroke color. Defaults to Black.
	Color RGBA

	// Width is the stroke width in pixels. Defaults to 1.
	Width float64
}

// NewLine creates an empty line.
func NewLine[X, Y Number]() *Line[X, Y] {
	return &Line[X, Y]{Color: Black, Width: defaultLineWidth}
}

// LineBetween creates a two-point line from start to end.
func LineBetween[X, Y Number](start, end Point2[X, Y]) *Line[X, Y] {
	l := NewLine[X, Y]()
	l.Add(start, end)
	return l
}

// Add appends points. Existing points are never modified.
func (l *Line[X, Y]) Add(pts ...Point2[X, Y]) *Line[X, Y] {
	l.points = append(l.points, pts...)
	return l
}

// WithColor sets the stroke color.
func (l *Line[X, Y]) WithColor(c RGBA) *Line[X, Y] {
	l.Color = c
	return l
}

// WithWidth sets the stroke width in pixels.
func (l *Line[X, Y]) WithWidth(w float64) *Line[X, Y] {
	l.Width = w
	return l
}

// Points returns a copy of the points in insertion order.
func (l *Line[X, Y]) Points() []Point2[X, Y] {
	out := make([]Point2[X, Y], len(l.points))
	copy(out, l.points)
	return out
}

// Len returns the number of points.
func (l *Line[X, Y]) Len() int {
	return len(l.points)
}

// Render implements Source.
func (l *Line[X, Y]) Render(cx *RenderContext[X, Y]) {
	cx.DrawLine(l)
}

// Extent implements Extenter.
func (l *Line[X, Y]) Extent() (AxesBounds[X, Y], bool) {
	return extentOf(l.points)
}

// extentOf returns the bounding box of pts. Degenerate axes are widened by
// one unit on each side so the result is always a valid range.
func extentOf[X, Y Number](pts []Point2[X, Y]) (AxesBounds[X, Y], bool) {
	if len(pts) == 0 {
		return AxesBounds[X, Y]{}, false
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	x, ok := widen(minX, maxX)
	if !ok {
		return AxesBounds[X, Y]{}, false
	}
	y, ok := widen(minY, maxY)
	if !ok {
		return AxesBounds[X, Y]{}, false
	}
	return AxesBounds[X, Y]{X: x, Y: y}, true
}

func widen[T Number](lo, hi T) (AxisRange[T], bool) {
	if lo == hi {
		lo, hi = fromFloat[T](float64(lo)-1), fromFloat[T](float64(hi)+1)
	}
	r, err := NewAxisRange(lo, hi)
	return r, err == nil
}

var (
	_ Source[float64, float64]   = (*Line[float64, float64])(nil)
	_ Extenter[float64, float64] = (*Line[float64, float64])(nil)
)
