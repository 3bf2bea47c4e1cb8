// Package gonumplot renders gonum plots as delegated figure renderers.
//
// A delegated renderer built here creates a fresh [plot.Plot] for every
// frame, lets the caller populate it, pins its axes to the snapshot bounds
// and draws it into the content rectangle of the plot area. The gonum data
// area is made to cover the content rectangle exactly, so gonum plotters and
// native figure renderers on the same axes line up pixel for pixel.
//
//	a, err := figure.NewAxes(bounds, figure.Sz(640.0, 480.0))
//	if err != nil {
//	    return err
//	}
//	figure.AddAxesDelegated(p, a, gonumplot.New(func(gp *plot.Plot, s figure.Snapshot[float64, float64]) error {
//	    return gonumplot.AddLines(gp, line)
//	}))
//
// Axes, tick marks and the gonum background are hidden by default. Use
// [WithAxes] and [WithBackground] to show them.
package gonumplot
