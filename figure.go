package figure

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Figure is the root of a plotting surface: a name and an ordered list of
// plots. Plots are never removed.
//
// Figure is safe for concurrent use.
type Figure struct {
	mu    sync.RWMutex
	name  string
	plots []*Plot
}

// NewFigure creates an empty figure.
func NewFigure(name string) *Figure {
	return &Figure{name: name}
}

// Name returns the figure name.
func (f *Figure) Name() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.name
}

// SetName changes the figure name.
func (f *Figure) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
}

// AddPlot appends a new plot and returns it.
func (f *Figure) AddPlot(opts ...PlotOption) *Plot {
	p := NewPlot(opts...)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plots = append(f.plots, p)
	return p
}

// Plots returns the plots in insertion order. The slice is a copy.
func (f *Figure) Plots() []*Plot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Plot, len(f.plots))
	copy(out, f.plots)
	return out
}

// Len returns the number of plots.
func (f *Figure) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.plots)
}

// Layout stacks the plots vertically in area with equal heights.
// The last plot takes the rounding remainder.
func (f *Figure) Layout(area image.Rectangle) error {
	plots := f.Plots()
	if len(plots) == 0 {
		return nil
	}
	if area.Dy() < len(plots) || area.Dx() <= 0 {
		return fmt.Errorf("%w: area %v for %d plots", ErrInvalidViewport, area, len(plots))
	}
	var errs []error
	for i, p := range plots {
		if err := p.Layout(StackedRect(area, len(plots), i)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StackedRect returns row i of n stacked rows of area.
// The last row takes the rounding remainder.
func StackedRect(area image.Rectangle, n, i int) image.Rectangle {
	h := area.Dy() / n
	r := image.Rect(area.Min.X, area.Min.Y+i*h, area.Max.X, area.Min.Y+(i+1)*h)
	if i == n-1 {
		r.Max.Y = area.Max.Y
	}
	return r
}

// Render renders every plot into dst and joins their errors.
func (f *Figure) Render(dst *Pixmap) error {
	var errs []error
	for _, p := range f.Plots() {
		if err := p.Render(dst); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PlotAt returns the plot whose layout area contains pt.
func (f *Figure) PlotAt(pt image.Point) (*Plot, bool) {
	for _, p := range f.Plots() {
		if pt.In(p.Area()) {
			return p, true
		}
	}
	return nil, false
}
