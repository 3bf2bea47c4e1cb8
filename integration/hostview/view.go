// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hostview

import (
	"errors"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/figure"
)

// View is the host element showing one figure. Positions passed to its
// event methods are in host coordinates, the same space as the bounds
// given to Layout.
type View struct {
	fig *figure.Figure
	cfg config

	mu     sync.Mutex
	bounds image.Rectangle
	pan    *panTarget

	paintMu sync.Mutex
	pixmap  *figure.Pixmap
	fps     *FPSCounter
}

// panTarget is the plot a pan gesture started on.
type panTarget struct {
	origin   figure.Point
	gestures []figure.Gesturer
}

// New creates a view of fig.
func New(fig *figure.Figure, opts ...Option) *View {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &View{
		fig:    fig,
		cfg:    cfg,
		pixmap: figure.NewPixmap(0, 0),
		fps:    NewFPSCounter(),
	}
}

// Figure returns the figure shown by the view.
func (v *View) Figure() *figure.Figure {
	return v.fig
}

// PerformanceOverlay reports whether the host window layer should enable
// its GPU performance overlay.
func (v *View) PerformanceOverlay() bool {
	return v.cfg.hud
}

// Bounds returns the rectangle of the last Layout.
func (v *View) Bounds() image.Rectangle {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bounds
}

// Measure returns the size the view wants within avail. The view fills
// the available space, but needs at least one row per plot plus the title.
func (v *View) Measure(avail image.Point) image.Point {
	minH := v.fig.Len() + v.titleBand()
	return image.Pt(max(avail.X, 1), max(avail.Y, minH))
}

func (v *View) titleBand() int {
	if v.cfg.title && v.fig.Name() != "" {
		return titleHeight
	}
	return 0
}

// plotArea returns the rectangle the plots are stacked in, relative to the
// view origin.
func (v *View) plotArea(size image.Point) image.Rectangle {
	return image.Rect(0, min(v.titleBand(), size.Y), size.X, size.Y)
}

// Layout places the view at bounds and lays out every plot of the figure.
// An in-progress pan is cancelled.
func (v *View) Layout(bounds image.Rectangle) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.endPanLocked()
	v.bounds = bounds
	return v.fig.Layout(v.plotArea(bounds.Size()))
}

// Paint renders the figure into the view pixmap and returns it. The
// pixmap is reused by the next Paint. Renderer failures are returned
// joined; the rest of the frame is still drawn.
func (v *View) Paint() (*figure.Pixmap, error) {
	size := v.Bounds().Size()

	v.paintMu.Lock()
	defer v.paintMu.Unlock()

	v.pixmap.Resize(size.X, size.Y)
	if size.X <= 0 || size.Y <= 0 {
		return v.pixmap, nil
	}
	v.pixmap.Clear(v.cfg.background)

	if band := v.titleBand(); band > 0 {
		drawCentered(v.pixmap.Image(), v.fig.Name(), image.Rect(0, 0, size.X, band), v.cfg.textColor)
	}
	err := v.fig.Render(v.pixmap)
	if v.cfg.fps {
		v.fps.Tick()
		drawText(v.pixmap.Image(), v.fps.String(), image.Pt(textPad, textPad), v.cfg.textColor)
	}
	return v.pixmap, err
}

// Present paints a frame and draws it at the view origin through dc.
func (v *View) Present(p *Presenter, dc gpucontext.TextureDrawer) error {
	pix, err := v.Paint()
	if pix.Width() == 0 || pix.Height() == 0 {
		return err
	}
	origin := v.Bounds().Min
	if uerr := p.Upload(pix); uerr != nil {
		return errors.Join(err, uerr)
	}
	return errors.Join(err, p.Present(dc, float32(origin.X), float32(origin.Y)))
}

// hitLocked returns the gestures of the plot under pos and the host position of
// its content origin.
func (v *View) hitLocked(pos figure.Point) (*panTarget, bool) {
	rel := pos.Sub(figure.Pt(float64(v.bounds.Min.X), float64(v.bounds.Min.Y)))
	p, ok := v.fig.PlotAt(image.Pt(int(math.Floor(rel.X)), int(math.Floor(rel.Y))))
	if !ok {
		return nil, false
	}
	c := p.ContentRect().Min.Add(v.bounds.Min)
	return &panTarget{
		origin:   figure.Pt(float64(c.X), float64(c.Y)),
		gestures: p.Gestures(),
	}, true
}

// PointerDown begins a pan on every axes of the plot under pos. It
// reports whether a plot was hit.
func (v *View) PointerDown(pos figure.Point) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pan != nil {
		return true
	}
	t, ok := v.hitLocked(pos)
	if !ok {
		return false
	}
	local := pos.Sub(t.origin)
	for _, g := range t.gestures {
		g.BeginPan(local)
	}
	v.pan = t
	return true
}

// PointerMove drags an in-progress pan to pos. Without a pan it does
// nothing.
func (v *View) PointerMove(pos figure.Point) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.pan == nil {
		return nil
	}
	local := pos.Sub(v.pan.origin)
	var errs []error
	for _, g := range v.pan.gestures {
		if err := g.DragTo(local); err != nil {
			errs = append(errs, err)
		}
	}
	return v.report("pan", errors.Join(errs...))
}

// PointerUp ends an in-progress pan.
func (v *View) PointerUp() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.endPanLocked()
}

// Panning reports whether a pan is in progress.
func (v *View) Panning() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pan != nil
}

func (v *View) endPanLocked() {
	if v.pan == nil {
		return
	}
	for _, g := range v.pan.gestures {
		g.EndPan()
	}
	v.pan = nil
}

// Scroll zooms every axes of the plot under pos about pos.
func (v *View) Scroll(pos figure.Point, d ScrollDelta, mods Modifiers) error {
	factor := v.cfg.zoomFactor(d)
	if factor == 1 {
		return nil
	}
	fx, fy := zoomAxes(factor, mods)

	v.mu.Lock()
	defer v.mu.Unlock()
	t, ok := v.hitLocked(pos)
	if !ok {
		return nil
	}
	local := pos.Sub(t.origin)
	var errs []error
	for _, g := range t.gestures {
		if err := g.ZoomXY(local, fx, fy); err != nil {
			errs = append(errs, err)
		}
	}
	return v.report("zoom", errors.Join(errs...))
}

func (v *View) report(gesture string, err error) error {
	if err != nil {
		figure.Logger().Warn("hostview: gesture failed", "gesture", gesture, "figure", v.fig.Name(), "err", err)
	}
	return err
}
