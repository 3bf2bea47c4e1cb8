package figure

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of types usable as axis values.
//
// Integer axes round when a real value is mapped back onto them.
// time.Duration satisfies Number through its int64 underlying type.
type Number interface {
	constraints.Integer | constraints.Float
}

// isIntegral reports whether T is an integer type.
func isIntegral[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// fromFloat converts a real value to T, rounding for integer types.
func fromFloat[T Number](f float64) T {
	if isIntegral[T]() {
		return T(math.Round(f))
	}
	return T(f)
}

// finite reports whether f is neither NaN nor infinite.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
