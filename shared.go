package figure

import (
	"sync"
	"sync/atomic"
)

// Axes is the shared handle to one AxesModel. Any number of renderer
// registrations may hold the same Axes; the model lives as long as its
// longest holder.
//
// Reads (render passes) take a shared lock, writes (gestures, resizes,
// data fits) take an exclusive lock. A reader always observes a bounds and
// viewport pair produced by exactly one completed write.
//
// Callbacks passed to Read, and renderers invoked during a render pass,
// run under the read lock: they must not block and must not call back into
// the same Axes. A renderer reads the snapshot it is given instead.
type Axes[X, Y Number] struct {
	mu    sync.RWMutex
	model AxesModel[X, Y]
	id    uint64
}

// axesSeq orders axes for lock acquisition across plots.
var axesSeq atomic.Uint64

// NewAxes creates a shared axes with initial bounds and viewport size.
func NewAxes[X, Y Number](bounds AxesBounds[X, Y], viewport Size2[float64, float64]) (*Axes[X, Y], error) {
	m, err := NewAxesModel(bounds, viewport)
	if err != nil {
		return nil, err
	}
	return &Axes[X, Y]{model: *m, id: axesSeq.Add(1)}, nil
}

// Read calls fn with the model under the shared lock.
// The lock is released on every exit path, including a panic in fn.
func (a *Axes[X, Y]) Read(fn func(m *AxesModel[X, Y])) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	fn(&a.model)
}

// Update calls fn with the model under the exclusive lock and returns its error.
func (a *Axes[X, Y]) Update(fn func(m *AxesModel[X, Y]) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(&a.model)
}

// Snapshot returns a consistent copy of the coordinate state.
func (a *Axes[X, Y]) Snapshot() Snapshot[X, Y] {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model.Snapshot()
}

// Bounds returns the current visible data rectangle.
func (a *Axes[X, Y]) Bounds() AxesBounds[X, Y] {
	return a.Snapshot().Bounds()
}

// SetBounds replaces the visible data rectangle.
func (a *Axes[X, Y]) SetBounds(b AxesBounds[X, Y]) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.SetBounds(b) })
}

// Fit replaces the bounds unless the view is fixed. See AxesModel.Fit.
func (a *Axes[X, Y]) Fit(b AxesBounds[X, Y]) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.Fit(b) })
}

// SetMode changes the view mode.
func (a *Axes[X, Y]) SetMode(mode ViewMode) {
	_ = a.Update(func(m *AxesModel[X, Y]) error {
		m.SetMode(mode)
		return nil
	})
}

// Mode returns the view mode.
func (a *Axes[X, Y]) Mode() ViewMode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model.Mode()
}

// Gesture returns the current interaction state.
func (a *Axes[X, Y]) Gesture() GestureState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model.Gesture()
}

// ResizeViewport updates the viewport size under the exclusive lock.
func (a *Axes[X, Y]) ResizeViewport(size Size2[float64, float64]) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.ResizeViewport(size) })
}

// Zoom applies a uniform zoom under the exclusive lock.
func (a *Axes[X, Y]) Zoom(center Point, factor float64) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.Zoom(center, factor) })
}

// ZoomXY applies an independent-axis zoom under the exclusive lock.
func (a *Axes[X, Y]) ZoomXY(center Point, fx, fy float64) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.ZoomXY(center, fx, fy) })
}

// Pan moves the view by a screen delta under the exclusive lock.
func (a *Axes[X, Y]) Pan(delta Point) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.Pan(delta) })
}

// BeginPan starts a drag gesture.
func (a *Axes[X, Y]) BeginPan(pos Point) {
	_ = a.Update(func(m *AxesModel[X, Y]) error {
		m.BeginPan(pos)
		return nil
	})
}

// DragTo continues a drag gesture.
func (a *Axes[X, Y]) DragTo(pos Point) error {
	return a.Update(func(m *AxesModel[X, Y]) error { return m.DragTo(pos) })
}

// EndPan finishes a drag gesture.
func (a *Axes[X, Y]) EndPan() {
	_ = a.Update(func(m *AxesModel[X, Y]) error {
		m.EndPan()
		return nil
	})
}

// rlock and runlock let the render pass hold the shared lock across
// several registrations without knowing the axis types.
func (a *Axes[X, Y]) rlock()   { a.mu.RLock() }
func (a *Axes[X, Y]) runlock() { a.mu.RUnlock() }

// snapshotLocked must be called with the lock held.
func (a *Axes[X, Y]) snapshotLocked() Snapshot[X, Y] { return a.model.Snapshot() }

// Gesturer is the type-erased gesture surface of an Axes, used by host
// views that route pointer events to every axes of a plot.
type Gesturer interface {
	BeginPan(pos Point)
	DragTo(pos Point) error
	EndPan()
	Zoom(center Point, factor float64) error
	ZoomXY(center Point, fx, fy float64) error
	Gesture() GestureState
}

var _ Gesturer = (*Axes[float64, float64])(nil)
