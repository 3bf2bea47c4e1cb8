// Package figure provides an interactive 2-D plotting surface.
//
// # Overview
//
// figure owns the mapping between a data coordinate space and the pixel
// space of a viewport. It supports interactive zoom and pan, and lets a
// native line and marker renderer and an external charting library draw
// into the same logical axes, synchronized to one shared viewport state.
//
// # Quick Start
//
//	import "github.com/gogpu/figure"
//
//	bounds, err := figure.NewAxesBounds(0.0, 100.0, 0.0, 100.0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	axes, err := figure.NewAxes(bounds, figure.Sz(800, 600))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f := figure.NewFigure("example")
//	p := f.AddPlot()
//	figure.AddAxes(p, axes).
//		Plot(figure.GridCount[float64, float64](10, 10)).
//		Plot(figure.LineBetween(figure.P2(0.0, 0.0), figure.P2(100.0, 100.0)))
//
//	pm := figure.NewPixmap(800, 600)
//	if err := f.Layout(pm.Bounds()); err != nil {
//		log.Fatal(err)
//	}
//	if err := f.Render(pm); err != nil {
//		log.Printf("render: %v", err)
//	}
//	if err := pm.SavePNG("figure.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Data space has y growing upward. Viewport pixels have the origin at the
// top-left corner of the axes content with y growing downward, so data
// "up" is screen "up". A data point at the lower-left corner of the bounds
// maps to (0, height).
//
// # Concurrency
//
// An Axes is shared by every registration that draws in its frame. Render
// passes read-lock each axes once for the whole pass; gestures, resizes and
// fits take the write lock. Renderers run under the read lock and must not
// call back into their axes.
//
// # Renderers
//
// A native renderer is a Source that emits lines and markers into a
// RenderContext; the package rasterizes them into the axes content with
// golang.org/x/image/vector. A delegated renderer is a DrawFunc that gets
// the DrawArea and the coordinate Snapshot and draws with an external
// library; see package gonumplot.
package figure
