/*Package track implements the EN21 tidal track, the empirical relation
between a stripped subhalo's structural parameters and those of its
progenitor. All quantities are dimensionless ratios: rr0 = rmx/rmx0,
VV0 = Vmx/Vmx0, and combinations thereof.
*/
package track

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gostrip/math/root"
)

// VV0 is the tidal track Vmx/Vmx0 as a function of rmx/rmx0:
// 2^0.4 * rr0^0.65 / (1 + rr0^2)^0.4. It is normalized so that
// VV0(1) = 1 and is strictly increasing on the stripped regime
// rr0 <= 1.
func VV0(rr0 float64) float64 {
	return math.Pow(2, 0.4) * math.Pow(rr0, 0.65) /
		math.Pow(1+rr0*rr0, 0.4)
}

// RR0FromMass numerically inverts the track to find the radius ratio
// rmx/rmx0 corresponding to a remnant mass fraction Mmx/Mmx0, solving
// rr0 * VV0(rr0) = massRatio. The product grows monotonically from 0,
// so the root is unique.
func RR0FromMass(massRatio float64) (float64, error) {
	if massRatio <= 0 {
		return 0, fmt.Errorf(
			"track: mass ratio %g is not positive", massRatio,
		)
	}
	f := func(rr0 float64) float64 { return rr0*VV0(rr0) - massRatio }
	rr0, err := root.Bisect(f, root.Options{})
	if err != nil {
		return 0, fmt.Errorf(
			"track: inverting the track at Mmx/Mmx0 = %g: %s",
			massRatio, err.Error(),
		)
	}
	return rr0, nil
}

// RR0FromPeriod numerically inverts the track to find the radius ratio
// rmx/rmx0 corresponding to a crossing time ratio Tmx/Tmx0, solving
// rr0 / VV0(rr0) = periodRatio. The quotient grows monotonically from
// 0, so the root is unique.
func RR0FromPeriod(periodRatio float64) (float64, error) {
	if periodRatio <= 0 {
		return 0, fmt.Errorf(
			"track: period ratio %g is not positive", periodRatio,
		)
	}
	f := func(rr0 float64) float64 { return rr0/VV0(rr0) - periodRatio }
	rr0, err := root.Bisect(f, root.Options{})
	if err != nil {
		return 0, fmt.Errorf(
			"track: inverting the track at Tmx/Tmx0 = %g: %s",
			periodRatio, err.Error(),
		)
	}
	return rr0, nil
}
