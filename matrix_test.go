package figure

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"zero", Matrix{}, Pt(3, 4), Pt(0, 0)},
		{"identity", Matrix{A: 1, E: 1}, Pt(3, 4), Pt(3, 4)},
		{"translate", Matrix{A: 1, C: 10, E: 1, F: -2}, Pt(3, 4), Pt(13, 2)},
		{"flip y", Matrix{A: 2, E: -1, F: 10}, Pt(3, 4), Pt(6, 6)},
		{"shear", Matrix{A: 1, B: 0.5, D: 0.25, E: 1}, Pt(4, 2), Pt(5, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.TransformPoint(tt.in))
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply applies the right operand first.
	translate := Matrix{A: 1, C: 10, E: 1}
	scale := Matrix{A: 2, E: 2}
	assert.Equal(t, Pt(12, 2), translate.Multiply(scale).TransformPoint(Pt(1, 1)))
	assert.Equal(t, Pt(22, 2), scale.Multiply(translate).TransformPoint(Pt(1, 1)))
}

func TestMatrixOffsetComposes(t *testing.T) {
	s := newTestAxes(t).Snapshot()
	toDst := offset(image.Pt(30, 5)).Multiply(s.Transform())
	assertPoint(t, Pt(30, 15), toDst.TransformPoint(Pt(0, 0)), 1e-12)
	assertPoint(t, Pt(40, 5), toDst.TransformPoint(Pt(100, 100)), 1e-12)
}
