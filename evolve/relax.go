/*Package evolve models the time evolution of a subhalo's structural
parameters (Tmx, rmx, Vmx, Mmx) under tidal stripping along its orbit.

The crossing time Tmx is relaxed towards its asymptote by the closed
form Tasy + Y0*(1 + (t/tau)^eta)^(-1/eta), with (Tasy, tau, eta) set
per mass-loss regime. Units follow the calibration: Tmx is measured in
units of the orbital period at pericenter, Tperi, and t in units of
the radial orbital period, Torb.
*/
package evolve

import (
	"fmt"
	"math"
)

// The heavy mass loss regime, Tmx0 > heavyThreshold.
const (
	heavyThreshold = 0.66
	heavyTasy      = 0.22 // in units of Tperi
	heavyTauAsy    = 0.65 // in units of Torb
)

// Tmx returns the crossing time at a time t for a subhalo which
// started with crossing time tmx0. tmx0 is in units of Tperi, t in
// units of Torb, and the returned value in units of Tperi.
//
// The two regimes are separate calibrations and their formulas are
// not guaranteed to agree at the tmx0 = 0.66 boundary; BranchGap
// measures the mismatch. At t = 0 both branches return tmx0 exactly.
func Tmx(tmx0, t float64) (float64, error) {
	if tmx0 <= 0 {
		return 0, fmt.Errorf("evolve: Tmx0 = %g is not positive", tmx0)
	}
	if t < 0 {
		return 0, fmt.Errorf("evolve: time %g is negative", t)
	}
	// Boundary condition of the closed form: (1+0)^(-1/eta) = 1.
	if t == 0 { return tmx0, nil }
	if tmx0 > heavyThreshold {
		return heavyTmx(tmx0, t), nil
	}
	return moderateTmx(tmx0, t), nil
}

func heavyTmx(tmx0, t float64) float64 {
	y0 := tmx0 - heavyTasy
	tau := heavyTauAsy / y0
	eta := 1 - math.Exp(-2.5*y0)
	return heavyTasy + decay(y0, t/tau, eta)
}

func moderateTmx(tmx0, t float64) float64 {
	tasy := tmx0 / math.Pow(1+tmx0, 2.17)
	y0 := tmx0 - tasy
	tau := 1.2 / math.Sqrt(tmx0)
	return tasy + decay(y0, t/tau, 0.67)
}

// decay is the shared generalized-logistic form
// y0 * (1 + x^eta)^(-1/eta), which equals y0 at x = 0 and decays
// towards 0 as x grows.
func decay(y0, x, eta float64) float64 {
	return y0 * math.Pow(1+math.Pow(x, eta), -1/eta)
}

// BranchGap evaluates both regime formulas at the boundary
// Tmx0 = 0.66 and returns heavy minus moderate at the time t. The
// calibrations do not join continuously; the gap is reported so that
// downstream users know the size of the seam.
func BranchGap(t float64) float64 {
	return heavyTmx(heavyThreshold, t) - moderateTmx(heavyThreshold, t)
}
