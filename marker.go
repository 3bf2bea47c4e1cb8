package figure

import "fmt"

// MarkerShape selects the glyph drawn for a marker.
type MarkerShape uint8

const (
	// MarkerCircle is a filled circle of radius Size.
	MarkerCircle MarkerShape = iota

	// MarkerSquare is a filled square of side Size.
	MarkerSquare

	// MarkerTriangleUp is a filled triangle pointing up.
	MarkerTriangleUp

	// MarkerTriangleDown is a filled triangle pointing down.
	MarkerTriangleDown
)

func (s MarkerShape) String() string {
	switch s {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerTriangleUp:
		return "triangle-up"
	case MarkerTriangleDown:
		return "triangle-down"
	default:
		return fmt.Sprintf("MarkerShape(%d)", uint8(s))
	}
}

// Marker is a glyph at one data point. Size is in pixels.
type Marker[X, Y Number] struct {
	Position Point2[X, Y]
	Size     float64
	Color    RGBA
	Shape    MarkerShape
}

// NewMarker creates a black circle marker.
func NewMarker[X, Y Number](pos Point2[X, Y], size float64) Marker[X, Y] {
	return Marker[X, Y]{Position: pos, Size: size, Color: Black}
}

// WithShape returns the marker with a different shape.
func (m Marker[X, Y]) WithShape(s MarkerShape) Marker[X, Y] {
	m.Shape = s
	return m
}

// WithColor returns the marker with a different color.
func (m Marker[X, Y]) WithColor(c RGBA) Marker[X, Y] {
	m.Color = c
	return m
}

// Render implements Source.
func (m Marker[X, Y]) Render(cx *RenderContext[X, Y]) {
	cx.DrawMarker(m)
}

// Markers is an ordered set of markers rendered together.
type Markers[X, Y Number] struct {
	markers []Marker[X, Y]
}

// NewMarkers creates a marker set.
func NewMarkers[X, Y Number](ms ...Marker[X, Y]) *Markers[X, Y] {
	return &Markers[X, Y]{markers: append([]Marker[X, Y](nil), ms...)}
}

// Add appends markers.
func (s *Markers[X, Y]) Add(ms ...Marker[X, Y]) {
	s.markers = append(s.markers, ms...)
}

// Len returns the number of markers.
func (s *Markers[X, Y]) Len() int {
	return len(s.markers)
}

// Markers returns a copy of the markers in insertion order.
func (s *Markers[X, Y]) Markers() []Marker[X, Y] {
	return append([]Marker[X, Y](nil), s.markers...)
}

// Render implements Source.
func (s *Markers[X, Y]) Render(cx *RenderContext[X, Y]) {
	for _, m := range s.markers {
		cx.DrawMarker(m)
	}
}

// Extent implements Extenter.
func (s *Markers[X, Y]) Extent() (AxesBounds[X, Y], bool) {
	pts := make([]Point2[X, Y], len(s.markers))
	for i, m := range s.markers {
		pts[i] = m.Position
	}
	return extentOf(pts)
}
