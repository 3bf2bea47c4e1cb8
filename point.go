package figure

import "math"

// Point represents a point or vector in pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Point2 is a point in data space. X and Y are independent axis types.
type Point2[X, Y Number] struct {
	X X
	Y Y
}

// P2 is a convenience function to create a Point2.
func P2[X, Y Number](x X, y Y) Point2[X, Y] {
	return Point2[X, Y]{X: x, Y: y}
}

// Add shifts the point by a data-space delta.
func (p Point2[X, Y]) Add(d Size2[X, Y]) Point2[X, Y] {
	return Point2[X, Y]{X: p.X + d.Width, Y: p.Y + d.Height}
}

// Sub returns the component-wise difference p - q.
func (p Point2[X, Y]) Sub(q Point2[X, Y]) Size2[X, Y] {
	return Size2[X, Y]{Width: p.X - q.X, Height: p.Y - q.Y}
}

// Lerp interpolates between p and q with a real scalar.
// Integer axes round the interpolated value.
func (p Point2[X, Y]) Lerp(q Point2[X, Y], t float64) Point2[X, Y] {
	return Point2[X, Y]{
		X: fromFloat[X](float64(p.X) + (float64(q.X)-float64(p.X))*t),
		Y: fromFloat[Y](float64(p.Y) + (float64(q.Y)-float64(p.Y))*t),
	}
}

// Less orders points by X, then by Y.
func (p Point2[X, Y]) Less(q Point2[X, Y]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Flip swaps the coordinates of a point whose axes share one type.
func Flip[T Number](p Point2[T, T]) Point2[T, T] {
	return Point2[T, T]{X: p.Y, Y: p.X}
}
