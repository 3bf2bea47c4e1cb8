package figure

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"
)

// Plot is an ordered list of renderer registrations, each bound to a shared
// axes. Several registrations may share one axes; they are then drawn in
// the same coordinate frame.
//
// Plot is safe for concurrent use. Registration and layout take the plot
// write lock; rendering takes the read lock.
type Plot struct {
	mu    sync.RWMutex
	opts  plotOptions
	area  image.Rectangle
	slots []axesSlot
	regs  []registration
}

// NewPlot creates an empty plot.
func NewPlot(opts ...PlotOption) *Plot {
	o := defaultPlotOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Plot{opts: o}
}

// Name returns the plot name.
func (p *Plot) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.name
}

// Len returns the number of registrations.
func (p *Plot) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.regs)
}

// Area returns the rectangle of the last Layout.
func (p *Plot) Area() image.Rectangle {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.area
}

// ContentRect returns the axes viewport inside the last layout area.
func (p *Plot) ContentRect() image.Rectangle {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.contentRect(p.area)
}

func (p *Plot) contentRect(area image.Rectangle) image.Rectangle {
	m := p.opts.margins
	r := image.Rectangle{
		Min: image.Pt(area.Min.X+m.Left, area.Min.Y+m.Top),
		Max: image.Pt(area.Max.X-m.Right, area.Max.Y-m.Bottom),
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r.Intersect(area)
}

// AxesHandle registers renderers on one axes of a plot.
type AxesHandle[X, Y Number] struct {
	plot *Plot
	slot int
	axes *Axes[X, Y]
}

// AddAxes returns the handle for axes a in plot p. Adding the same axes
// again returns a handle to the same slot.
func AddAxes[X, Y Number](p *Plot, a *Axes[X, Y]) *AxesHandle[X, Y] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &AxesHandle[X, Y]{plot: p, slot: p.slotLocked(a), axes: a}
}

// AddAxesDelegated registers a delegated renderer on axes a.
func AddAxesDelegated[X, Y Number](p *Plot, a *Axes[X, Y], fn DrawFunc[X, Y]) *AxesHandle[X, Y] {
	return AddAxes(p, a).Add(Delegated(fn))
}

func (p *Plot) slotLocked(a axesSlot) int {
	for i, s := range p.slots {
		if s.key() == a.key() {
			return i
		}
	}
	p.slots = append(p.slots, a)
	return len(p.slots) - 1
}

// Axes returns the shared axes of the handle.
func (h *AxesHandle[X, Y]) Axes() *Axes[X, Y] {
	return h.axes
}

// Add appends one registration. A renderer without its callable is ignored.
func (h *AxesHandle[X, Y]) Add(r Renderer[X, Y]) *AxesHandle[X, Y] {
	switch {
	case r.Kind == RendererNative && r.Source == nil,
		r.Kind == RendererDelegated && r.Draw == nil:
		return h
	}
	h.plot.mu.Lock()
	defer h.plot.mu.Unlock()
	h.plot.regs = append(h.plot.regs, &entry[X, Y]{slot: h.slot, r: r})
	return h
}

// Plot appends a native registration. Each call adds one registration.
func (h *AxesHandle[X, Y]) Plot(src Source[X, Y]) *AxesHandle[X, Y] {
	return h.Add(Native(src))
}

// PlotFunc appends a native registration over a function.
func (h *AxesHandle[X, Y]) PlotFunc(fn func(cx *RenderContext[X, Y])) *AxesHandle[X, Y] {
	if fn == nil {
		return h
	}
	return h.Plot(SourceFunc[X, Y](fn))
}

// PlotDelegated appends a delegated registration.
func (h *AxesHandle[X, Y]) PlotDelegated(fn DrawFunc[X, Y]) *AxesHandle[X, Y] {
	return h.Add(Delegated(fn))
}

// Layout places the plot in area and resizes the viewport of every axes to
// the content rectangle. Returns ErrInvalidViewport when the margins leave
// no content.
func (p *Plot) Layout(area image.Rectangle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	content := p.contentRect(area)
	if content.Empty() {
		return fmt.Errorf("%w: content %v of area %v", ErrInvalidViewport, content, area)
	}
	p.area = area
	size := Sz(float64(content.Dx()), float64(content.Dy()))
	var errs []error
	for _, s := range p.slots {
		if err := s.resize(size); err != nil {
			errs = append(errs, err)
		}
	}
	Logger().Debug("figure: plot layout", "plot", p.opts.name, "area", area, "content", content)
	return errors.Join(errs...)
}

// Render draws every registration into dst in registration order.
//
// Each distinct axes is read-locked once for the whole pass and
// snapshotted once, so every renderer of one axes sees the identical
// coordinate state. Failures of single registrations are reported as
// *DrawError values joined into the result; the other registrations still
// draw. Nothing is written back to the axes.
func (p *Plot) Render(dst *Pixmap) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	area := p.area
	if area.Empty() {
		area = dst.Bounds()
	}
	content := p.contentRect(area)
	if p.opts.background.A > 0 {
		dst.Fill(area.Intersect(dst.Bounds()), p.opts.background)
	}

	// Lock in creation order of the axes so passes of plots sharing axes
	// never wait on each other in a cycle.
	order := make([]int, len(p.slots))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(p.slots[a].order(), p.slots[b].order())
	})
	open := make([]openAxes, len(p.slots))
	for _, i := range order {
		open[i] = p.slots[i].open()
		defer open[i].close()
	}

	if p.opts.frame && !content.Empty() {
		for i := range p.slots {
			if p.hasNativeLocked(i) {
				open[i].frame(dst, area, content, p.opts.style)
			}
		}
	}

	da := NewDrawArea(dst, area, content)
	var errs []error
	for i, reg := range p.regs {
		if err := renderOne(reg, open[reg.slotIndex()], da); err != nil {
			Logger().Warn("figure: renderer failed",
				"plot", p.opts.name, "index", i, "kind", reg.kind().String(), "err", err)
			errs = append(errs, &DrawError{Plot: p.opts.name, Index: i, Kind: reg.kind(), Err: err})
		}
	}
	return errors.Join(errs...)
}

// renderOne converts a panic of the registration into an error.
func renderOne(reg registration, o openAxes, da *DrawArea) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return reg.render(o, da)
}

func (p *Plot) hasNativeLocked(slot int) bool {
	for _, reg := range p.regs {
		if reg.slotIndex() == slot && reg.kind() == RendererNative {
			return true
		}
	}
	return false
}

// Fit sets the bounds of every axes to the union of the extents of its
// native sources that implement Extenter. Axes in ViewFixed mode, and axes
// without any extent, are left unchanged.
func (p *Plot) Fit() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var errs []error
	for i, s := range p.slots {
		if err := s.fit(i, p.regs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Gestures returns the distinct axes of the plot in order of first
// registration.
func (p *Plot) Gestures() []Gesturer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Gesturer, len(p.slots))
	for i, s := range p.slots {
		out[i] = s.gesturer()
	}
	return out
}

// axesSlot is the type-erased view of one distinct axes of a plot.
type axesSlot interface {
	key() any
	order() uint64
	gesturer() Gesturer
	resize(size Size2[float64, float64]) error
	open() openAxes
	fit(slot int, regs []registration) error
}

// openAxes is an axes read-locked for one render pass.
type openAxes interface {
	close()
	frame(dst *Pixmap, area, content image.Rectangle, st frameStyle)
}

// registration is the type-erased view of one entry.
type registration interface {
	slotIndex() int
	kind() RendererKind
	render(o openAxes, da *DrawArea) error
}

func (a *Axes[X, Y]) key() any                                  { return a }
func (a *Axes[X, Y]) order() uint64                             { return a.id }
func (a *Axes[X, Y]) gesturer() Gesturer                        { return a }
func (a *Axes[X, Y]) resize(size Size2[float64, float64]) error { return a.ResizeViewport(size) }

func (a *Axes[X, Y]) open() openAxes {
	a.rlock()
	return &passAxes[X, Y]{axes: a, snap: a.snapshotLocked()}
}

func (a *Axes[X, Y]) fit(slot int, regs []registration) error {
	var (
		bounds AxesBounds[X, Y]
		found  bool
	)
	for _, reg := range regs {
		e, ok := reg.(*entry[X, Y])
		if !ok || e.slot != slot || e.r.Kind != RendererNative {
			continue
		}
		ex, ok := e.r.Source.(Extenter[X, Y])
		if !ok {
			continue
		}
		b, ok := ex.Extent()
		switch {
		case !ok:
		case !found:
			bounds, found = b, true
		default:
			bounds = bounds.Union(b)
		}
	}
	if !found {
		return nil
	}
	Logger().Debug("figure: fit axes", "bounds", bounds.String())
	return a.Fit(bounds)
}

// passAxes holds the read lock of one axes until close.
type passAxes[X, Y Number] struct {
	axes *Axes[X, Y]
	snap Snapshot[X, Y]
}

func (o *passAxes[X, Y]) close() { o.axes.runlock() }

func (o *passAxes[X, Y]) frame(dst *Pixmap, area, content image.Rectangle, st frameStyle) {
	drawFrame(dst, area, content, o.snap, st)
}

// entry is one registration of a renderer on an axes.
type entry[X, Y Number] struct {
	slot int
	r    Renderer[X, Y]
}

func (e *entry[X, Y]) slotIndex() int     { return e.slot }
func (e *entry[X, Y]) kind() RendererKind { return e.r.Kind }

func (e *entry[X, Y]) render(o openAxes, da *DrawArea) error {
	snap := o.(*passAxes[X, Y]).snap
	switch e.r.Kind {
	case RendererNative:
		cx := newRenderContext(snap)
		e.r.Source.Render(cx)
		rasterize(da, cx)
		return nil
	case RendererDelegated:
		return e.r.Draw(da, snap)
	default:
		return fmt.Errorf("unknown renderer kind %v", e.r.Kind)
	}
}

// rasterize draws the geometry collected in cx into the content of da.
func rasterize[X, Y Number](da *DrawArea, cx *RenderContext[X, Y]) {
	r := newRasterizer(da.dst.Image(), da.Content, da.Content.Min)
	if r == nil {
		return
	}
	for _, s := range cx.strokes {
		r.stroke(s)
	}
	for _, g := range cx.glyphs {
		r.marker(g)
	}
}
