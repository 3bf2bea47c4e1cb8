package figure

import "image"

// Matrix is a 2x3 affine map in row-major order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Axes transforms are axis-aligned, so B and D stay zero for the matrices
// returned by Snapshot.Transform and Snapshot.InverseTransform.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Multiply returns the map that applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// offset returns the translation by p.
func offset(p image.Point) Matrix {
	return Matrix{A: 1, C: float64(p.X), E: 1, F: float64(p.Y)}
}
