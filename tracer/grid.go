package tracer

import (
	"fmt"
	"math"
)

// LogGrid returns n energies logarithmically spaced between min and 1,
// inclusive on both ends. min must lie in (0, 1) so that the power-law
// term of the distribution stays finite everywhere on the grid.
func LogGrid(min float64, n int) []float64 {
	if min <= 0 || min >= 1 {
		panic(fmt.Sprintf("grid minimum %g outside of (0, 1)", min))
	}
	if n < 2 {
		panic(fmt.Sprintf("grid size %d is too small", n))
	}

	lmin := math.Log10(min)
	es := make([]float64, n)
	for i := range es {
		es[i] = math.Pow(10, lmin*(1-float64(i)/float64(n-1)))
	}
	// The top of the grid is exactly 1, so integration over [min, 1]
	// never leaves the tabulated support.
	es[n-1] = 1
	return es
}

// validGrid reports whether es is strictly increasing with all
// elements in (0, 1].
func validGrid(es []float64) bool {
	if len(es) < 2 || es[0] <= 0 || es[len(es)-1] > 1 { return false }
	for i := 1; i < len(es); i++ {
		if es[i] <= es[i-1] { return false }
	}
	return true
}
