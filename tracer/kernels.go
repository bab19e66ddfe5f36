/*Package tracer models the tidal stripping of mass-less stellar
tracers embedded in NFW dark matter halos.

Energies are expressed as e = 1 - E/Phi0, referred to the potential
minimum Phi0 = Phi(r=0). The package evaluates the empirical energy
distribution of the initial conditions, the filter selecting the
particles which remain bound after stripping, the energy mapping which
models the relaxation of the remnant, and the pipeline convolving the
three into the final dN/de.

The filter and the energy mapping are calibrated for remnant mass
fractions Mmx/Mmx0 < 1/10, and the truncation energy fit for
Mmx/Mmx0 < 1/3. Outside those regimes the formulas still evaluate, but
the results are not validated; Strip reports the breach on its
Diagnostics sink.
*/
package tracer

import (
	"math"
)

// Params describes the shape of the initial energy distribution: a
// power law of slope Alpha towards the most-bound energies with an
// exponential truncation of sharpness Beta beyond the scale energy Es.
type Params struct {
	Alpha, Beta, Es float64
}

// DNDe is the empirical energy distribution of the initial conditions,
// e^alpha * exp(-(e/es)^beta), unnormalized. The grid minimum must stay
// strictly positive: at e = 0 the power term is undefined for
// non-positive Alpha.
func DNDe(e float64, p Params) float64 {
	return math.Pow(e, p.Alpha) * math.Exp(-math.Pow(e/p.Es, p.Beta))
}

// BoundFraction is the filter selecting those particles in the initial
// dN/de which remain bound after stripping to the truncation energy
// emxt. It decreases monotonically from ~1 for e << emxt to ~0 for
// e >> emxt.
func BoundFraction(e, emxt float64) float64 {
	return 1 / (1 + math.Pow(0.85*e/emxt, 12))
}

// MappedEnergy maps an initial energy ei onto the final energy of the
// relaxed remnant. It is strictly increasing in ei and saturates below
// the emxt-scaled bound, so all initial energies land in a bounded
// final range.
func MappedEnergy(ei, emxt float64) float64 {
	return math.Pow(1+math.Pow(0.8*ei/emxt, -3), -1.0/3)
}

// TruncationEnergy approximates the tidal truncation energy emxt as a
// function of the remnant mass fraction Mmx/Mmx0. The fit is calibrated
// for mass fractions below 1/3.
func TruncationEnergy(massFrac float64) float64 {
	return 0.77 * math.Pow(massFrac, 0.43)
}

// log10 of Euler's number, the Jacobian of the base-10 logarithm.
var log10e = math.Log10(math.E)

// Log10Normal is the log-base-10 normal density in x, centered on xbar
// with a scatter of dex (in dex). It returns 0 for x <= 0, where the
// logarithm is undefined, and for non-positive xbar or dex.
func Log10Normal(x, xbar, dex float64) float64 {
	if x <= 0 || xbar <= 0 || dex <= 0 { return 0 }
	u := math.Log10(x/xbar) / dex
	return log10e / (dex * math.Sqrt(2*math.Pi) * x) * math.Exp(-0.5*u*u)
}
