package tracer

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/phil-mansfield/gostrip/math/interpolate"
	"github.com/phil-mansfield/gostrip/math/quad"
)

// convMinDepth forces 2^10 uniform panels under the convolution
// integral, enough to resolve a few-hundredths-of-a-dex scatter kernel
// anywhere on the grid.
const convMinDepth = 10

// Stripped is the output of the stripping pipeline: the initial,
// filtered, and final dN/de tabulated on a shared energy grid, each
// normalized so that its linear interpolant integrates to 1 over
// [Es[0], 1], together with the normalization integrals of the
// unnormalized densities.
type Stripped struct {
	Es []float64
	// Initial is the dN/de of the initial conditions, Filtered the
	// subset which remains bound, and Final the bound subset after
	// relaxation, i.e. after the energy mapping convolved with its
	// log-normal scatter.
	Initial, Filtered, Final []float64

	NormInitial, NormFiltered, NormFinal float64

	// Emxt is the tidal truncation energy corresponding to the remnant
	// mass fraction.
	Emxt float64
	// LL0 = NormFiltered / NormInitial is the fraction of the initial
	// tracer population which survives the stripping.
	LL0 float64
}

// Strip runs the stripping pipeline on the energy grid es for a
// remnant mass fraction massFrac and a log-normal energy scatter of
// scatterDex dex around the mean energy mapping. Quadrature warnings
// and regime-of-validity warnings go to opt.Diag.
//
// The per-point convolution integrals are independent and are computed
// by a worker pool; the output does not depend on the execution order.
func Strip(
	es []float64, p Params, massFrac, scatterDex float64, opt quad.Options,
) (*Stripped, error) {
	switch {
	case !validGrid(es):
		return nil, fmt.Errorf(
			"tracer: energy grid is not strictly increasing within (0, 1]",
		)
	case p.Es <= 0 || p.Beta <= 0:
		return nil, fmt.Errorf(
			"tracer: invalid distribution shape (es = %g, beta = %g)",
			p.Es, p.Beta,
		)
	case massFrac <= 0:
		return nil, fmt.Errorf(
			"tracer: remnant mass fraction %g is not positive", massFrac,
		)
	case scatterDex <= 0:
		return nil, fmt.Errorf(
			"tracer: scatter %g dex is not positive", scatterDex,
		)
	}

	if massFrac >= 1.0/3 {
		opt.Diag.Warnf(
			"tracer: remnant mass fraction %g >= 1/3: truncation energy "+
				"fit is outside its calibrated regime", massFrac,
		)
	} else if massFrac >= 0.1 {
		opt.Diag.Warnf(
			"tracer: remnant mass fraction %g >= 1/10: bound filter and "+
				"energy mapping are outside their calibrated regime",
			massFrac,
		)
	}

	emxt := TruncationEnergy(massFrac)
	lo, hi := es[0], es[len(es)-1]

	raw := make([]float64, len(es))
	filt := make([]float64, len(es))
	for i, e := range es {
		raw[i] = DNDe(e, p)
		filt[i] = BoundFraction(e, emxt) * raw[i]
	}

	normRaw := gridNorm(es, raw, opt)
	normFilt := gridNorm(es, filt, opt)

	// The scatter kernel has a fixed width in log energy, so the
	// convolution is integrated over u = ln(ei): the peak then spans
	// the same subdivision depth at every output energy, and the
	// MinDepth floor guarantees the initial samples cannot straddle it.
	copt := opt
	if copt.MinDepth < convMinDepth { copt.MinDepth = convMinDepth }
	ulo, uhi := math.Log(lo), math.Log(hi)

	conv := make([]float64, len(es))
	workers := runtime.NumCPU()
	if workers > len(es) { workers = len(es) }
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(es); i += workers {
				ef := es[i]
				integrand := func(u float64) float64 {
					ei := math.Exp(u)
					return ei * BoundFraction(ei, emxt) * DNDe(ei, p) *
						Log10Normal(ef, MappedEnergy(ei, emxt), scatterDex)
				}
				conv[i], _ = quad.Integrate(integrand, ulo, uhi, copt)
			}
		}(w)
	}
	wg.Wait()

	normConv := gridNorm(es, conv, opt)
	for _, norm := range []float64{normRaw, normFilt, normConv} {
		if norm <= 0 || math.IsNaN(norm) {
			return nil, fmt.Errorf(
				"tracer: distribution normalization integral is %g", norm,
			)
		}
	}

	return &Stripped{
		Es:           es,
		Initial:      normalize(raw, normRaw),
		Filtered:     normalize(filt, normFilt),
		Final:        normalize(conv, normConv),
		NormInitial:  normRaw,
		NormFiltered: normFilt,
		NormFinal:    normConv,
		Emxt:         emxt,
		LL0:          normFilt / normRaw,
	}, nil
}

// gridNorm integrates the linear interpolant of the tabulated density
// vals over the grid's support.
func gridNorm(es, vals []float64, opt quad.Options) float64 {
	lin := interpolate.NewLinear(es, vals)
	norm, _ := quad.Integrate(lin.Eval, lin.Lo(), lin.Hi(), opt)
	return norm
}

func normalize(vals []float64, norm float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals { out[i] = v / norm }
	return out
}
