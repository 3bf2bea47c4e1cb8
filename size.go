package figure

import "fmt"

// Size2 is a width/height pair in pixel or data units.
//
// Values built with NewSize2 have non-negative, finite components.
// The zero value is a valid empty size.
type Size2[W, H Number] struct {
	Width  W
	Height H
}

// NewSize2 validates and returns a size.
// Returns ErrInvalidSize if either component is negative or not finite.
func NewSize2[W, H Number](width W, height H) (Size2[W, H], error) {
	w, h := float64(width), float64(height)
	if !finite(w) || !finite(h) || w < 0 || h < 0 {
		return Size2[W, H]{}, fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}
	return Size2[W, H]{Width: width, Height: height}, nil
}

// Sz is a convenience function for an unvalidated pixel size.
func Sz(width, height float64) Size2[float64, float64] {
	return Size2[float64, float64]{Width: width, Height: height}
}

// Empty reports whether either component is zero or less.
func (s Size2[W, H]) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale returns the size with both components multiplied by f.
func (s Size2[W, H]) Scale(f float64) Size2[W, H] {
	return Size2[W, H]{
		Width:  fromFloat[W](float64(s.Width) * f),
		Height: fromFloat[H](float64(s.Height) * f),
	}
}

// validViewport reports whether s can back an invertible transform.
func validViewport(s Size2[float64, float64]) error {
	if !finite(s.Width) || !finite(s.Height) || s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, s.Width, s.Height)
	}
	return nil
}
