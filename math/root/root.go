/*Package root solves f(x) = 0 for monotonic f on the positive reals.

The solver is a bracketing bisection seeded at a small positive guess,
which is the robust replacement for a derivative-based solver started
from the same seed: the bracket is grown (or shrunk) geometrically from
the seed until the function changes sign, then bisected. It never
returns an unconverged guess; failures are reported as errors.
*/
package root

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoRoot is returned when no sign change can be bracketed within
// the search bounds, i.e. the equation has no solution on the domain.
var ErrNoRoot = errors.New("root: no sign change within search bounds")

const (
	// DefaultSeed matches the fixed initial guess used by the model's
	// calibration scripts.
	DefaultSeed = 1e-3
	// Search bounds for bracket expansion.
	xMin = 1e-300
	xMax = 1e8
	// maxIter bounds the bisection loop; 200 halvings are enough to
	// reduce any representable bracket below any representable
	// relative tolerance.
	maxIter = 200
)

// Options controls a Bisect call. The zero value uses DefaultSeed and
// a relative tolerance of 1e-12.
type Options struct {
	Seed   float64
	RelTol float64
}

func (opt *Options) setDefaults() {
	if opt.Seed <= 0 { opt.Seed = DefaultSeed }
	if opt.RelTol <= 0 { opt.RelTol = 1e-12 }
}

// Bisect returns x > 0 with f(x) = 0 for a function assumed monotonic
// increasing on (0, inf). It fails with ErrNoRoot if f does not change
// sign between xMin and xMax, and with a convergence error if the
// bracket collapses onto a NaN evaluation.
func Bisect(f func(float64) float64, opt Options) (float64, error) {
	opt.setDefaults()

	a := opt.Seed
	fa := f(a)
	if math.IsNaN(fa) {
		return 0, fmt.Errorf("root: f(%g) is NaN", a)
	}
	if fa == 0 { return a, nil }

	var b, fb float64
	if fa > 0 {
		// Root lies below the seed.
		b, fb = a, fa
		for a > xMin {
			a /= 2
			if fa = f(a); fa <= 0 { break }
		}
		if fa > 0 { return 0, ErrNoRoot }
	} else {
		for b = 2 * a; b < xMax; b *= 2 {
			if fb = f(b); fb >= 0 { break }
		}
		if fb < 0 { return 0, ErrNoRoot }
	}
	if fa == 0 { return a, nil }
	if fb == 0 { return b, nil }

	for i := 0; i < maxIter; i++ {
		mid := (a + b) / 2
		fmid := f(mid)
		if math.IsNaN(fmid) {
			return 0, fmt.Errorf("root: f(%g) is NaN during bisection", mid)
		}
		if fmid == 0 { return mid, nil }
		if fmid < 0 {
			a = mid
		} else {
			b = mid
		}
		if b-a <= opt.RelTol*b { return (a + b) / 2, nil }
	}

	return 0, fmt.Errorf(
		"root: bisection did not converge to relative tolerance %g "+
			"(bracket [%g, %g])", opt.RelTol, a, b,
	)
}
