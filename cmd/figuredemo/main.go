// Command figuredemo renders an animated figure to a PNG file.
//
// The figure holds one plot with a native renderer and a gonum renderer
// sharing one axes, as a host view would hold it. Each frame advances the
// animation clock; the last frame is saved.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/plot"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/gonumplot"
	"github.com/gogpu/figure/integration/hostview"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "figure.png", "output file")
		frames    = flag.Int("frames", 30, "number of frames to render")
		fps       = flag.Float64("fps", 60, "simulated frame rate")
		lines     = flag.Int("lines", 20, "number of animated lines")
		zoom      = flag.Float64("zoom", 1, "zoom factor applied about the viewport center before rendering")
		transpose = flag.Bool("transpose", false, "swap the axes of the animated lines")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		figure.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *fps <= 0 {
		log.Fatalf("Invalid frame rate: %v", *fps)
	}

	bounds, err := figure.NewAxesBounds(0.0, 100.0, 0.0, 100.0)
	if err != nil {
		log.Fatalf("Invalid bounds: %v", err)
	}
	axes, err := figure.NewAxes(bounds, figure.Sz(float64(*width), float64(*height)))
	if err != nil {
		log.Fatalf("Failed to create axes: %v", err)
	}

	clock := &demoClock{step: time.Duration(float64(time.Second) / *fps)}
	anim := figure.NewAnimation(0, 100, 0.1)

	fig := figure.NewFigure("Example Figure")
	p := fig.AddPlot(figure.WithName("animation"))
	h := figure.AddAxes(p, axes)
	h.Plot(figure.GridCount[float64, float64](10, 10))
	h.PlotFunc(func(cx *figure.RenderContext[float64, float64]) {
		for _, l := range anim.Lines(clock.elapsed, *lines, 5, *transpose) {
			cx.DrawLine(l)
		}
	})
	figure.AddAxesDelegated(p, axes, gonumplot.New(func(gp *plot.Plot, _ figure.Snapshot[float64, float64]) error {
		red := anim
		red.Color = figure.Red
		return gonumplot.AddLines(gp, red.Line(clock.elapsed, 50, !*transpose))
	}))

	view := hostview.New(fig, append(hostview.OptionsFromEnv(), hostview.WithFPS(true))...)
	if err := view.Layout(image.Rect(0, 0, *width, *height)); err != nil {
		log.Fatalf("Layout failed: %v", err)
	}
	if *zoom != 1 {
		c := p.ContentRect()
		center := figure.Pt(float64(c.Dx())/2, float64(c.Dy())/2)
		if err := axes.Zoom(center, 1 / *zoom); err != nil {
			log.Fatalf("Zoom failed: %v", err)
		}
	}

	var pix *figure.Pixmap
	for i := 0; i < max(*frames, 1); i++ {
		pix, err = view.Paint()
		if err != nil {
			log.Printf("Frame %d: %v", i, err)
		}
		clock.tick()
	}

	if err := pix.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Figure saved to %s (%dx%d, %d frames)\n", *output, *width, *height, max(*frames, 1))
}

// demoClock advances by a fixed step per frame.
type demoClock struct {
	elapsed time.Duration
	step    time.Duration
}

func (c *demoClock) tick() {
	c.elapsed += c.step
}
