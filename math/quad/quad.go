/*Package quad implements adaptive 1-D quadrature over finite intervals.

The accuracy contract mirrors the usual scientific-library one: the
returned value satisfies the requested absolute or relative tolerance
when the integrand is smooth on the interval. When the tolerance cannot
be reached within the subdivision budget, the best estimate is returned
anyway and a warning is recorded on the caller's Diagnostics sink.
Integration failures are a modeling signal, not a fatal error.
*/
package quad

import (
	"fmt"
	"math"
	"sync"
)

// Diagnostics collects non-fatal numerical warnings. The zero value is
// ready for use and a single Diagnostics may be shared by concurrent
// Integrate calls. A nil *Diagnostics discards all warnings.
type Diagnostics struct {
	mu    sync.Mutex
	warns []string
}

// Warnf records a formatted warning.
func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	if d == nil { return }
	d.mu.Lock()
	d.warns = append(d.warns, fmt.Sprintf(format, args...))
	d.mu.Unlock()
}

// Warnings returns a copy of all warnings recorded so far.
func (d *Diagnostics) Warnings() []string {
	if d == nil { return nil }
	d.mu.Lock()
	out := make([]string, len(d.warns))
	copy(out, d.warns)
	d.mu.Unlock()
	return out
}

// Count returns the number of warnings recorded so far.
func (d *Diagnostics) Count() int {
	if d == nil { return 0 }
	d.mu.Lock()
	n := len(d.warns)
	d.mu.Unlock()
	return n
}

const (
	// DefaultAbsTol and DefaultRelTol are used when Options leaves the
	// corresponding tolerance at zero.
	DefaultAbsTol = 1e-10
	DefaultRelTol = 1e-8
	// DefaultMaxDepth bounds the interval bisection depth.
	DefaultMaxDepth = 50
)

// Options controls a single Integrate call.
//
// MinDepth forces that many levels of uniform subdivision before the
// local error test may accept an interval. Integrands with sharp,
// narrow features need a non-zero MinDepth: otherwise the first few
// samples can straddle the feature and accept a spurious zero.
type Options struct {
	AbsTol, RelTol float64
	MinDepth       int
	MaxDepth       int
	Diag           *Diagnostics
}

func (opt *Options) setDefaults() {
	if opt.AbsTol <= 0 { opt.AbsTol = DefaultAbsTol }
	if opt.RelTol <= 0 { opt.RelTol = DefaultRelTol }
	if opt.MaxDepth <= 0 { opt.MaxDepth = DefaultMaxDepth }
	if opt.MinDepth < 0 { opt.MinDepth = 0 }
	if opt.MinDepth > opt.MaxDepth { opt.MinDepth = opt.MaxDepth }
}

type integrator struct {
	f                  func(float64) float64
	minDepth, maxDepth int
	// Intervals where the depth budget ran out before the local
	// tolerance was met.
	starved int
}

// Integrate computes the definite integral of f over [lo, hi] by
// adaptive Simpson quadrature and returns the value together with an
// error estimate. Tolerances stricter than the subdivision budget
// allows degrade to a Diagnostics warning rather than an error.
func Integrate(
	f func(float64) float64, lo, hi float64, opt Options,
) (value, errEst float64) {
	opt.setDefaults()

	sign := 1.0
	if lo == hi { return 0, 0 }
	if lo > hi { lo, hi, sign = hi, lo, -1 }

	in := &integrator{f: f, minDepth: opt.MinDepth, maxDepth: opt.MaxDepth}

	mid := (lo + hi) / 2
	flo, fmid, fhi := f(lo), f(mid), f(hi)
	whole := simpson(lo, hi, flo, fmid, fhi)

	tol := opt.AbsTol
	if rt := opt.RelTol * math.Abs(whole); rt > tol { tol = rt }

	value, errEst = in.refine(lo, hi, flo, fmid, fhi, whole, tol, 0)

	if in.starved > 0 {
		opt.Diag.Warnf(
			"quad: tolerance (abs=%g, rel=%g) not met on %d subinterval(s) "+
				"of [%g, %g] after %d levels; error estimate %g",
			opt.AbsTol, opt.RelTol, in.starved, lo, hi, opt.MaxDepth, errEst,
		)
	}

	return sign * value, errEst
}

// simpson is the three-point Simpson estimate on [lo, hi].
func simpson(lo, hi, flo, fmid, fhi float64) float64 {
	return (hi - lo) / 6 * (flo + 4*fmid + fhi)
}

func (in *integrator) refine(
	lo, hi, flo, fmid, fhi, whole, tol float64, depth int,
) (value, errEst float64) {
	mid := (lo + hi) / 2
	lmid, rmid := (lo+mid)/2, (mid+hi)/2
	flmid, frmid := in.f(lmid), in.f(rmid)

	left := simpson(lo, mid, flo, flmid, fmid)
	right := simpson(mid, hi, fmid, frmid, fhi)
	delta := left + right - whole

	// Richardson: Simpson's rule converges one order faster on the
	// halved intervals, so delta/15 estimates the remaining error.
	if depth >= in.minDepth && math.Abs(delta) <= 15*tol {
		return left + right + delta/15, math.Abs(delta) / 15
	}
	if depth >= in.maxDepth {
		in.starved++
		return left + right + delta/15, math.Abs(delta) / 15
	}

	lval, lerr := in.refine(lo, mid, flo, flmid, fmid, left, tol/2, depth+1)
	rval, rerr := in.refine(mid, hi, fmid, frmid, fhi, right, tol/2, depth+1)
	return lval + rval, lerr + rerr
}
