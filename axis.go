package figure

import (
	"fmt"
	"math"
)

// maxTicks bounds the number of values produced by Ticks.
const maxTicks = 1000

// AxisRange is a closed interval [Low, High] on one axis with Low < High.
//
// The zero value is not a valid range; use NewAxisRange.
type AxisRange[T Number] struct {
	low, high T
}

// NewAxisRange returns the range [low, high].
// Returns ErrInvalidRange if low >= high, either bound is not finite, or
// the span high - low overflows. Inverted bounds are rejected, never swapped.
func NewAxisRange[T Number](low, high T) (AxisRange[T], error) {
	if !validBounds(float64(low), float64(high)) {
		return AxisRange[T]{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, low, high)
	}
	return AxisRange[T]{low: low, high: high}, nil
}

// validBounds reports whether [l, h] is a non-empty range with a finite span.
func validBounds(l, h float64) bool {
	return finite(l) && finite(h) && l < h && finite(h-l)
}

// MustAxisRange is like NewAxisRange but panics on error.
// Use only for constant bounds.
func MustAxisRange[T Number](low, high T) AxisRange[T] {
	r, err := NewAxisRange(low, high)
	if err != nil {
		panic(err)
	}
	return r
}

// Low returns the lower bound.
func (r AxisRange[T]) Low() T { return r.low }

// High returns the upper bound.
func (r AxisRange[T]) High() T { return r.high }

// Span returns High - Low as a real number.
func (r AxisRange[T]) Span() float64 {
	return float64(r.high) - float64(r.low)
}

// IsValid reports whether r satisfies the range invariant.
// The zero value is not valid.
func (r AxisRange[T]) IsValid() bool {
	return validBounds(float64(r.low), float64(r.high))
}

// ToFraction maps v onto [0, 1] by linear interpolation.
// Values outside the range extrapolate beyond [0, 1]; nothing is clamped.
func (r AxisRange[T]) ToFraction(v T) float64 {
	return r.fraction(float64(v))
}

func (r AxisRange[T]) fraction(v float64) float64 {
	return (v - float64(r.low)) / r.Span()
}

// FromFraction is the inverse of ToFraction for any real f.
func (r AxisRange[T]) FromFraction(f float64) T {
	return fromFloat[T](r.value(f))
}

func (r AxisRange[T]) value(f float64) float64 {
	return float64(r.low) + f*r.Span()
}

// Contains reports whether v lies within the closed range.
func (r AxisRange[T]) Contains(v T) bool {
	return v >= r.low && v <= r.high
}

// Clamp limits v to the range.
func (r AxisRange[T]) Clamp(v T) T {
	switch {
	case v < r.low:
		return r.low
	case v > r.high:
		return r.high
	default:
		return v
	}
}

// Shift returns the range moved by delta data units.
func (r AxisRange[T]) Shift(delta float64) (AxisRange[T], error) {
	return NewAxisRange(
		fromFloat[T](float64(r.low)+delta),
		fromFloat[T](float64(r.high)+delta),
	)
}

// ScaleAbout returns the range scaled by factor around the data value c.
// c stays fixed; factor < 1 narrows the range, factor > 1 widens it.
//
// On integer axes a bound that would round back to itself moves one unit
// instead, so repeated small zooms keep changing the range. Narrowing a
// range that cannot shrink further fails with ErrInvalidRange.
func (r AxisRange[T]) ScaleAbout(c, factor float64) (AxisRange[T], error) {
	low := c + (float64(r.low)-c)*factor
	high := c + (float64(r.high)-c)*factor
	if isIntegral[T]() && factor != 1 {
		low = unitStep(float64(r.low), low, c)
		high = unitStep(float64(r.high), high, c)
	}
	return NewAxisRange(fromFloat[T](low), fromFloat[T](high))
}

// unitStep returns to, or from moved one unit toward to when to rounds
// back to from. Bounds within one unit of the center c are left alone.
func unitStep(from, to, c float64) float64 {
	if math.Round(to) != from || math.Abs(from-c) < 1 {
		return to
	}
	if to < from {
		return from - 1
	}
	return from + 1
}

// Union returns the smallest range containing both r and o.
func (r AxisRange[T]) Union(o AxisRange[T]) AxisRange[T] {
	out := r
	if o.low < out.low {
		out.low = o.low
	}
	if o.high > out.high {
		out.high = o.high
	}
	return out
}

// Ticks returns the multiples of step that lie within the range, ascending.
// Ticks stay anchored to data values while the range pans.
// Returns nil for non-positive or non-finite steps.
func (r AxisRange[T]) Ticks(step float64) []T {
	if !finite(step) || step <= 0 {
		return nil
	}
	if isIntegral[T]() && step < 1 {
		step = 1
	}
	lo, hi := float64(r.low), float64(r.high)
	first := math.Ceil(lo/step) * step
	eps := step * 1e-9
	var ticks []T
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*step
		if v > hi+eps {
			break
		}
		ticks = append(ticks, fromFloat[T](v))
	}
	return ticks
}

// NiceTicks returns roughly n ticks at 1, 2 or 5 times a power of ten.
func (r AxisRange[T]) NiceTicks(n int) []T {
	return r.Ticks(NiceStep(r.Span(), n))
}

// NiceStep returns a step of 1, 2 or 5 times a power of ten that divides
// span into about n intervals.
func NiceStep(span float64, n int) float64 {
	if n <= 0 || !finite(span) || span <= 0 {
		return 0
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func (r AxisRange[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.low, r.high)
}
