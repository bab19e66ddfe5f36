package tracer

import (
	"math"
	"testing"

	"github.com/phil-mansfield/gostrip/math/quad"
	"github.com/stretchr/testify/assert"
)

func TestDNDe(t *testing.T) {
	p := Params{Alpha: 3, Beta: 3, Es: math.Pow(10, -0.32)}

	// e^alpha * exp(-(e/es)^beta) evaluated by hand at the scale
	// energy: es^3 / e.
	want := math.Pow(p.Es, 3) / math.E
	assert.InEpsilon(t, want, DNDe(p.Es, p), 1e-12)

	// The power-law limit: the exponential factor is ~1 well below es.
	e := 1e-4
	assert.InEpsilon(t, e*e*e, DNDe(e, p), 1e-6)
}

func TestBoundFractionLimits(t *testing.T) {
	emxt := 0.1
	if f := BoundFraction(emxt*1e-3, emxt); math.Abs(f-1) > 1e-10 {
		t.Errorf("BoundFraction(e << emxt) = %g instead of ~1", f)
	}
	if f := BoundFraction(emxt*1e3, emxt); f > 1e-10 {
		t.Errorf("BoundFraction(e >> emxt) = %g instead of ~0", f)
	}
}

func TestBoundFractionMonotone(t *testing.T) {
	emxt := 0.1
	es := LogGrid(1e-5, 500)
	for i := 1; i < len(es); i++ {
		f1, f2 := BoundFraction(es[i-1], emxt), BoundFraction(es[i], emxt)
		if f2 > f1 {
			t.Fatalf(
				"BoundFraction increases from %g to %g across e = %g",
				f1, f2, es[i],
			)
		}
	}
}

func TestMappedEnergyMonotoneAndBounded(t *testing.T) {
	emxt := 0.0575
	es := LogGrid(1e-5, 500)
	prev := 0.0
	for _, e := range es {
		ef := MappedEnergy(e, emxt)
		if ef <= prev {
			t.Fatalf("MappedEnergy not strictly increasing at e = %g", e)
		}
		if ef >= 1 {
			t.Fatalf("MappedEnergy(%g) = %g >= 1", e, ef)
		}
		prev = ef
	}
}

func TestTruncationEnergy(t *testing.T) {
	assert.InEpsilon(t, 0.77, TruncationEnergy(1), 1e-12)
	assert.InEpsilon(
		t, 0.77*math.Pow(0.01, 0.43), TruncationEnergy(1.0/100), 1e-12,
	)
}

func TestLog10NormalDomain(t *testing.T) {
	if y := Log10Normal(0, 1, 0.1); y != 0 {
		t.Errorf("Log10Normal(0) = %g instead of 0", y)
	}
	if y := Log10Normal(-1, 1, 0.1); y != 0 {
		t.Errorf("Log10Normal(-1) = %g instead of 0", y)
	}
	if y := Log10Normal(1, -1, 0.1); y != 0 {
		t.Errorf("Log10Normal with xbar < 0 = %g instead of 0", y)
	}
	if y := Log10Normal(1, 1, 0); y != 0 {
		t.Errorf("Log10Normal with dex = 0 = %g instead of 0", y)
	}
}

// The kernel is a probability density in x: its integral over the
// positive reals is 1. Scatters of a few hundredths of a dex keep the
// density extremely narrow, which is exactly the regime the stripping
// convolution uses it in.
func TestLog10NormalNormalized(t *testing.T) {
	xbar, dex := 0.1, 0.03
	f := func(x float64) float64 { return Log10Normal(x, xbar, dex) }
	// +-10 sigma in log10(x).
	lo := xbar * math.Pow(10, -10*dex)
	hi := xbar * math.Pow(10, 10*dex)
	val, _ := quad.Integrate(f, lo, hi, quad.Options{})
	assert.InEpsilon(t, 1, val, 1e-6)
}

func TestLogGrid(t *testing.T) {
	es := LogGrid(1e-5, 1000)
	assert.Equal(t, 1000, len(es))
	assert.InEpsilon(t, 1e-5, es[0], 1e-12)
	assert.Equal(t, 1.0, es[len(es)-1])
	if !validGrid(es) {
		t.Errorf("LogGrid output is not a valid grid")
	}
}

func BenchmarkDNDe(b *testing.B) {
	p := Params{Alpha: 3, Beta: 3, Es: math.Pow(10, -0.32)}
	for i := 0; i < b.N; i++ { DNDe(0.1, p) }
}

func BenchmarkLog10Normal(b *testing.B) {
	for i := 0; i < b.N; i++ { Log10Normal(0.1, 0.09, 0.03) }
}
