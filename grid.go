package figure

// Grid draws reference lines across the visible bounds.
//
// A count grid picks 1, 2 or 5 times a power of ten so that about the
// requested number of lines are visible. A step grid draws a line at every
// multiple of a fixed data step. In both modes the lines stay anchored to
// data values while the view pans.
type Grid[X, Y Number] struct {
	xCount, yCount int
	xStep, yStep   float64

	// Color is the line color. Defaults to LightGray.
	Color RGBA

	// Width is the line width in pixels. Defaults to 1.
	Width float64
}

// GridCount creates a grid with about nx vertical and ny horizontal lines.
func GridCount[X, Y Number](nx, ny int) *Grid[X, Y] {
	return &Grid[X, Y]{xCount: nx, yCount: ny, Color: LightGray, Width: 1}
}

// GridStep creates a grid with a line every dx along x and every dy along y.
func GridStep[X, Y Number](dx, dy float64) *Grid[X, Y] {
	return &Grid[X, Y]{xStep: dx, yStep: dy, Color: LightGray, Width: 1}
}

// Lines returns the positions of the grid lines inside b.
func (g *Grid[X, Y]) Lines(b AxesBounds[X, Y]) (xs []X, ys []Y) {
	if g.xCount > 0 || g.yCount > 0 {
		return b.X.NiceTicks(g.xCount), b.Y.NiceTicks(g.yCount)
	}
	return b.X.Ticks(g.xStep), b.Y.Ticks(g.yStep)
}

// Render implements Source.
func (g *Grid[X, Y]) Render(cx *RenderContext[X, Y]) {
	b := cx.Bounds()
	xs, ys := g.Lines(b)
	for _, x := range xs {
		cx.Polyline([]Point2[X, Y]{{X: x, Y: b.Y.Low()}, {X: x, Y: b.Y.High()}}, g.Color, g.Width)
	}
	for _, y := range ys {
		cx.Polyline([]Point2[X, Y]{{X: b.X.Low(), Y: y}, {X: b.X.High(), Y: y}}, g.Color, g.Width)
	}
}
