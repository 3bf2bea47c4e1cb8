package figure

import "fmt"

// AxesBounds is the visible data rectangle: one range per axis.
// Bounds are replaced as a whole so a transform is never derived from a
// half-updated pair.
type AxesBounds[X, Y Number] struct {
	X AxisRange[X]
	Y AxisRange[Y]
}

// NewAxesBounds builds bounds from raw limits.
// Returns ErrInvalidRange if either axis is malformed.
func NewAxesBounds[X, Y Number](xlow, xhigh X, ylow, yhigh Y) (AxesBounds[X, Y], error) {
	x, err := NewAxisRange(xlow, xhigh)
	if err != nil {
		return AxesBounds[X, Y]{}, fmt.Errorf("x axis: %w", err)
	}
	y, err := NewAxisRange(ylow, yhigh)
	if err != nil {
		return AxesBounds[X, Y]{}, fmt.Errorf("y axis: %w", err)
	}
	return AxesBounds[X, Y]{X: x, Y: y}, nil
}

// IsValid reports whether both ranges are valid.
func (b AxesBounds[X, Y]) IsValid() bool {
	return b.X.IsValid() && b.Y.IsValid()
}

// Min returns the lower-left corner.
func (b AxesBounds[X, Y]) Min() Point2[X, Y] {
	return Point2[X, Y]{X: b.X.Low(), Y: b.Y.Low()}
}

// Max returns the upper-right corner.
func (b AxesBounds[X, Y]) Max() Point2[X, Y] {
	return Point2[X, Y]{X: b.X.High(), Y: b.Y.High()}
}

// Contains reports whether p lies within the bounds.
func (b AxesBounds[X, Y]) Contains(p Point2[X, Y]) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y)
}

// Union returns the smallest bounds containing both b and o.
func (b AxesBounds[X, Y]) Union(o AxesBounds[X, Y]) AxesBounds[X, Y] {
	return AxesBounds[X, Y]{X: b.X.Union(o.X), Y: b.Y.Union(o.Y)}
}

// Shift moves both axes by real data deltas.
func (b AxesBounds[X, Y]) Shift(dx, dy float64) (AxesBounds[X, Y], error) {
	x, err := b.X.Shift(dx)
	if err != nil {
		return b, err
	}
	y, err := b.Y.Shift(dy)
	if err != nil {
		return b, err
	}
	return AxesBounds[X, Y]{X: x, Y: y}, nil
}

func (b AxesBounds[X, Y]) String() string {
	return fmt.Sprintf("x%v y%v", b.X, b.Y)
}
