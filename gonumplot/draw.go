package gonumplot

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gogpu/figure"
)

// dpi makes one gonum point equal one destination pixel.
const dpi = 72

// Builder populates the plot of one frame. The axis limits of p are set
// from the snapshot after Builder returns.
type Builder[X, Y figure.Number] func(p *plot.Plot, s figure.Snapshot[X, Y]) error

// Option configures a delegated gonum renderer.
type Option func(*config)

type config struct {
	axes       bool
	background color.Color
	title      string
}

func defaultConfig() config {
	return config{background: color.Transparent}
}

// WithAxes draws the gonum axes inside the content rectangle. The data
// area then shrinks by the axes size and no longer lines up with native
// renderers on the same axes.
func WithAxes(enabled bool) Option {
	return func(c *config) {
		c.axes = enabled
	}
}

// WithBackground sets the color the content rectangle is filled with
// before the plot is drawn. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.background = c
		}
	}
}

// WithTitle sets the gonum plot title. A title reserves space at the top of
// the content rectangle.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// New returns a delegated renderer drawing the plot produced by build.
// An empty content rectangle draws nothing and skips build.
func New[X, Y figure.Number](build Builder[X, Y], opts ...Option) figure.DrawFunc[X, Y] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(area *figure.DrawArea, s figure.Snapshot[X, Y]) error {
		w, h := area.ContentSize()
		if w <= 0 || h <= 0 {
			return nil
		}
		p := cfg.newPlot()
		if err := build(p, s); err != nil {
			return err
		}
		pin(p, s.Bounds())
		area.Blit(drawImage(p, w, h, cfg.background))
		return nil
	}
}

func (c config) newPlot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.Transparent
	p.Title.Text = c.title
	if !c.axes {
		p.HideAxes()
		p.X.Padding = 0
		p.Y.Padding = 0
	}
	return p
}

// pin fixes the axis limits of p to b.
func pin[X, Y figure.Number](p *plot.Plot, b figure.AxesBounds[X, Y]) {
	p.X.Min, p.X.Max = float64(b.X.Low()), float64(b.X.High())
	p.Y.Min, p.Y.Max = float64(b.Y.Low()), float64(b.Y.High())
}

// drawImage renders p into a new w x h image.
func drawImage(p *plot.Plot, w, h int, bg color.Color) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(Length(float64(w)), Length(float64(h))),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(bg),
	)
	p.Draw(vgdraw.New(c))
	return c.Image()
}

// Length converts a pixel distance to a gonum length at the renderer DPI.
func Length(px float64) vg.Length {
	return vg.Length(px) * vg.Inch / dpi
}
