package interpolate

import (
	"fmt"
	"sort"
)

// Linear is a linear interpolator over a tabulated function.
type Linear struct {
	xs, vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing
// sequence of points, xs, which take on the values given by vals.
//
// Lookups occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(vals) = %d", len(xs), len(vals),
		))
	}
	if len(xs) < 2 {
		panic("Interpolation requires at least two points.")
	}
	return &Linear{xs: xs, vals: vals}
}

// Lo and Hi return the bounds of the interpolator's support.
func (lin *Linear) Lo() float64 { return lin.xs[0] }
func (lin *Linear) Hi() float64 { return lin.xs[len(lin.xs)-1] }

// Eval returns the interpolated value at x.
//
// Eval panics if called on a value outside the supplied range of
// inputs.
func (lin *Linear) Eval(x float64) float64 {
	if x < lin.Lo() || x > lin.Hi() {
		panic(fmt.Sprintf(
			"x = %g outside of interpolation range [%g, %g]",
			x, lin.Lo(), lin.Hi(),
		))
	}

	i2 := sort.SearchFloat64s(lin.xs, x)
	if i2 == 0 { i2 = 1 }
	i1 := i2 - 1

	x1, x2 := lin.xs[i1], lin.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]
	return ((v2 - v1) / (x2 - x1)) * (x - x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an
// output array is given, the output is written to that array (the
// array is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = lin.Eval(x) }
	return out[0]
}
