package figure

import (
	"fmt"
	"math"
)

// ViewMode controls whether interactive gestures may change the bounds.
type ViewMode uint8

const (
	// ViewFree lets pan and zoom gestures move the view.
	ViewFree ViewMode = iota

	// ViewFixed ignores pan and zoom gestures.
	ViewFixed

	// ViewAuto lets gestures move the view and lets Plot.Fit rewrite the
	// bounds from the plotted data.
	ViewAuto
)

func (m ViewMode) String() string {
	switch m {
	case ViewFree:
		return "free"
	case ViewFixed:
		return "fixed"
	case ViewAuto:
		return "auto"
	default:
		return fmt.Sprintf("ViewMode(%d)", uint8(m))
	}
}

// GestureState is the interaction state of one axes.
type GestureState uint8

const (
	// GestureIdle means no gesture is in progress.
	GestureIdle GestureState = iota

	// GesturePanning means a pointer drag is moving the view.
	GesturePanning
)

func (g GestureState) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GesturePanning:
		return "panning"
	default:
		return fmt.Sprintf("GestureState(%d)", uint8(g))
	}
}

// panAnchor records the view at the start of a drag.
type panAnchor[X, Y Number] struct {
	bounds AxesBounds[X, Y]
	pos    Point
}

// AxesModel owns one coordinate frame: the visible data bounds and the
// viewport size in pixels. The transform between them is always invertible.
//
// AxesModel is NOT safe for concurrent use. Share it through Axes.
type AxesModel[X, Y Number] struct {
	bounds   AxesBounds[X, Y]
	viewport Size2[float64, float64]
	mode     ViewMode
	pan      *panAnchor[X, Y]
}

// NewAxesModel creates a model with initial bounds and viewport size.
// Returns ErrInvalidRange for malformed bounds and ErrInvalidViewport for a
// non-positive viewport.
func NewAxesModel[X, Y Number](bounds AxesBounds[X, Y], viewport Size2[float64, float64]) (*AxesModel[X, Y], error) {
	if !bounds.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, bounds)
	}
	if err := validViewport(viewport); err != nil {
		return nil, err
	}
	return &AxesModel[X, Y]{bounds: bounds, viewport: viewport}, nil
}

// Bounds returns the visible data rectangle.
func (m *AxesModel[X, Y]) Bounds() AxesBounds[X, Y] { return m.bounds }

// Viewport returns the viewport size in pixels.
func (m *AxesModel[X, Y]) Viewport() Size2[float64, float64] { return m.viewport }

// Mode returns the view mode.
func (m *AxesModel[X, Y]) Mode() ViewMode { return m.mode }

// SetMode changes the view mode. Switching to ViewFixed cancels a drag.
func (m *AxesModel[X, Y]) SetMode(mode ViewMode) {
	m.mode = mode
	if mode == ViewFixed {
		m.pan = nil
	}
}

// Gesture returns the current interaction state.
func (m *AxesModel[X, Y]) Gesture() GestureState {
	if m.pan != nil {
		return GesturePanning
	}
	return GestureIdle
}

// Snapshot returns an immutable copy of the coordinate state.
func (m *AxesModel[X, Y]) Snapshot() Snapshot[X, Y] {
	return Snapshot[X, Y]{bounds: m.bounds, viewport: m.viewport}
}

// SetBounds replaces the visible data rectangle regardless of view mode.
func (m *AxesModel[X, Y]) SetBounds(b AxesBounds[X, Y]) error {
	if !b.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidRange, b)
	}
	m.bounds = b
	return nil
}

// Fit replaces the bounds with b and switches the view to ViewAuto.
// Ignored when the view is fixed.
func (m *AxesModel[X, Y]) Fit(b AxesBounds[X, Y]) error {
	if m.mode == ViewFixed {
		return nil
	}
	if err := m.SetBounds(b); err != nil {
		return err
	}
	m.mode = ViewAuto
	return nil
}

// TransformPoint maps a data point to viewport pixels.
func (m *AxesModel[X, Y]) TransformPoint(p Point2[X, Y]) Point {
	return m.Snapshot().TransformPoint(p)
}

// InverseTransformPoint maps viewport pixels to a data point.
func (m *AxesModel[X, Y]) InverseTransformPoint(p Point) Point2[X, Y] {
	return m.Snapshot().InverseTransformPoint(p)
}

// ResizeViewport updates the viewport size. The bounds are preserved: the
// same data stays visible and only the device resolution changes.
func (m *AxesModel[X, Y]) ResizeViewport(size Size2[float64, float64]) error {
	if err := validViewport(size); err != nil {
		return err
	}
	m.viewport = size
	return nil
}

// Zoom scales both axes by factor around the screen point center.
// The data point under center stays fixed. factor < 1 zooms in.
func (m *AxesModel[X, Y]) Zoom(center Point, factor float64) error {
	return m.ZoomXY(center, factor, factor)
}

// ZoomXY scales each axis by its own factor around the screen point center.
// A factor of 1 leaves that axis unchanged.
//
// Returns ErrInvalidZoomFactor for non-finite or non-positive factors, or
// when the result would collapse or overflow a range. Integer axes move by
// at least one unit per zoom. The bounds are unchanged on error.
// Ignored when the view is fixed.
func (m *AxesModel[X, Y]) ZoomXY(center Point, fx, fy float64) error {
	if !validFactor(fx) || !validFactor(fy) {
		return fmt.Errorf("%w: %v, %v", ErrInvalidZoomFactor, fx, fy)
	}
	if m.mode == ViewFixed {
		return nil
	}
	cx, cy := m.Snapshot().inverse(center)
	x, err := m.bounds.X.ScaleAbout(cx, fx)
	if err != nil {
		return fmt.Errorf("%w: x by %v: %v", ErrInvalidZoomFactor, fx, err)
	}
	y, err := m.bounds.Y.ScaleAbout(cy, fy)
	if err != nil {
		return fmt.Errorf("%w: y by %v: %v", ErrInvalidZoomFactor, fy, err)
	}
	m.bounds = AxesBounds[X, Y]{X: x, Y: y}
	return nil
}

func validFactor(f float64) bool {
	return finite(f) && f > 0
}

// Pan moves the view by a screen-space delta so the content follows the
// pointer. Both axes shift together. Ignored when the view is fixed.
func (m *AxesModel[X, Y]) Pan(delta Point) error {
	if m.mode == ViewFixed {
		return nil
	}
	b, err := m.panned(m.bounds, delta)
	if err != nil {
		return err
	}
	m.bounds = b
	return nil
}

func (m *AxesModel[X, Y]) panned(from AxesBounds[X, Y], delta Point) (AxesBounds[X, Y], error) {
	if !finite(delta.X) || !finite(delta.Y) {
		return from, fmt.Errorf("%w: pan by %v", ErrInvalidRange, delta)
	}
	s := Snapshot[X, Y]{bounds: from, viewport: m.viewport}
	dx, dy := s.DataDelta(delta)
	return from.Shift(-dx, -dy)
}

// BeginPan starts a drag at the screen position pos.
// Ignored when the view is fixed.
func (m *AxesModel[X, Y]) BeginPan(pos Point) {
	if m.mode == ViewFixed {
		return
	}
	m.pan = &panAnchor[X, Y]{bounds: m.bounds, pos: pos}
}

// DragTo moves the view so the content under the drag start follows pos.
// The bounds are recomputed from the drag anchor, so any number of motion
// events accumulate to the total displacement without drift.
// Does nothing unless a drag is in progress.
func (m *AxesModel[X, Y]) DragTo(pos Point) error {
	if m.pan == nil {
		return nil
	}
	b, err := m.panned(m.pan.bounds, pos.Sub(m.pan.pos))
	if err != nil {
		return err
	}
	m.bounds = b
	return nil
}

// EndPan finishes a drag and returns to the idle state.
func (m *AxesModel[X, Y]) EndPan() {
	m.pan = nil
}

// ZoomFactorForScroll converts a scroll distance to a zoom factor.
// Positive distances zoom in. The result is always positive, and opposite
// distances produce reciprocal factors.
func ZoomFactorForScroll(distance, rate float64) float64 {
	return math.Exp(-distance * rate)
}
