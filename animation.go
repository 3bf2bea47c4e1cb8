package figure

import (
	"math"
	"time"
)

// animationRate is the phase speed of an animation in radians per second.
const animationRate = 10.0

// Animation produces sine wave lines that move with elapsed time.
// It is a value type: the start time is fixed at creation and every
// output is a pure function of the elapsed time.
type Animation struct {
	Start, End, Step float64

	// Began is the reference time for Elapsed.
	Began time.Time

	// Color is the stroke color of produced lines.
	Color RGBA
}

// NewAnimation creates an animation sampling x in [start, end] every step,
// starting now.
func NewAnimation(start, end, step float64) Animation {
	return Animation{Start: start, End: end, Step: step, Began: time.Now(), Color: Green}
}

// Elapsed returns the time since the animation began.
func (a Animation) Elapsed() time.Duration {
	return time.Since(a.Began)
}

// Line returns the wave y = sin(x + phase) + shift sampled over the x range,
// where phase grows with elapsed. With transpose the axes are swapped.
// Returns an empty line for a non-positive or non-finite step.
func (a Animation) Line(elapsed time.Duration, shift float64, transpose bool) *Line[float64, float64] {
	l := NewLine[float64, float64]().WithColor(a.Color)
	if !finite(a.Step) || a.Step <= 0 || !finite(a.Start) || !finite(a.End) {
		return l
	}
	t := elapsed.Seconds() * animationRate
	n := int(math.Floor((a.End-a.Start)/a.Step+1e-9)) + 1
	for i := 0; i < n && i <= maxSamples; i++ {
		x := a.Start + float64(i)*a.Step
		p := P2(x, math.Sin(x+t)+shift)
		if transpose {
			p = Flip(p)
		}
		l.Add(p)
	}
	return l
}

// maxSamples bounds the points of one animation line.
const maxSamples = 1 << 20

// Lines returns count waves offset by spacing along the value axis.
func (a Animation) Lines(elapsed time.Duration, count int, spacing float64, transpose bool) []*Line[float64, float64] {
	out := make([]*Line[float64, float64], 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, a.Line(elapsed, float64(i)*spacing, transpose))
	}
	return out
}

// Source returns a native source that draws count waves at render time.
func (a Animation) Source(count int, spacing float64, transpose bool) Source[float64, float64] {
	return SourceFunc[float64, float64](func(cx *RenderContext[float64, float64]) {
		for _, l := range a.Lines(a.Elapsed(), count, spacing, transpose) {
			cx.DrawLine(l)
		}
	})
}
