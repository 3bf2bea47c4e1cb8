package figure

// Margins is the space in pixels between a plot area and its axes content.
type Margins struct {
	Left, Right, Top, Bottom int
}

// DefaultMargins leaves room for tick labels on the left and bottom.
var DefaultMargins = Margins{Left: 30, Right: 30, Top: 0, Bottom: 30}

// PlotOption configures a Plot during creation.
// Use functional options to customize Plot behavior.
//
// Example:
//
//	p := f.AddPlot(figure.WithName("prices"), figure.WithFrame(false))
type PlotOption func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	name       string
	margins    Margins
	frame      bool
	background RGBA
	style      frameStyle
}

// defaultPlotOptions returns the default plot options.
func defaultPlotOptions() plotOptions {
	return plotOptions{
		margins:    DefaultMargins,
		frame:      true,
		background: White,
		style:      defaultFrameStyle(),
	}
}

// WithName sets the plot name reported in draw errors and logs.
func WithName(name string) PlotOption {
	return func(o *plotOptions) {
		o.name = name
	}
}

// WithMargins sets the space between the plot area and the axes content.
// Negative values are treated as zero.
func WithMargins(m Margins) PlotOption {
	return func(o *plotOptions) {
		o.margins = Margins{
			Left:   max(m.Left, 0),
			Right:  max(m.Right, 0),
			Top:    max(m.Top, 0),
			Bottom: max(m.Bottom, 0),
		}
	}
}

// WithFrame enables or disables the border and tick labels drawn around
// axes that have native renderers. Enabled by default.
func WithFrame(enabled bool) PlotOption {
	return func(o *plotOptions) {
		o.frame = enabled
	}
}

// WithBackground sets the color the plot area is cleared to before each
// render. A fully transparent color leaves the destination untouched.
func WithBackground(c RGBA) PlotOption {
	return func(o *plotOptions) {
		o.background = c
	}
}

// WithTickFormatter sets the formatter for frame tick labels.
func WithTickFormatter(f *TickFormatter) PlotOption {
	return func(o *plotOptions) {
		if f != nil {
			o.style.formatter = f
		}
	}
}

// WithTickLabels sets per-axis label functions for frame ticks, such as
// UnixTimeLabels for a time axis. A nil function keeps the tick formatter
// for that axis.
func WithTickLabels(x, y LabelFunc) PlotOption {
	return func(o *plotOptions) {
		o.style.xLabels = x
		o.style.yLabels = y
	}
}

// WithFrameColor sets the color of the frame border and tick labels.
func WithFrameColor(c RGBA) PlotOption {
	return func(o *plotOptions) {
		o.style.color = c
	}
}
