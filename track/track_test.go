package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVV0Normalization(t *testing.T) {
	// 2^0.4 * 1 / 2^0.4 = 1: an unstripped subhalo keeps its Vmx.
	assert.InEpsilon(t, 1, VV0(1), 1e-12)
}

func TestVV0Monotone(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 1000; i++ {
		rr0 := float64(i) / 1000
		v := VV0(rr0)
		if v <= prev {
			t.Fatalf("VV0 not strictly increasing at rr0 = %g", rr0)
		}
		prev = v
	}
}

func TestRR0FromMassRoundTrip(t *testing.T) {
	for _, rr0 := range []float64{0.01, 0.05, 0.1, 0.3, 0.5, 0.9, 0.99} {
		m := rr0 * VV0(rr0)
		got, err := RR0FromMass(m)
		if err != nil {
			t.Errorf("RR0FromMass(%g) failed: %s", m, err.Error())
		} else if math.Abs(got-rr0) > 1e-9*rr0 {
			t.Errorf("RR0FromMass(%g) = %g instead of %g", m, got, rr0)
		}
	}
}

func TestRR0FromPeriodRoundTrip(t *testing.T) {
	for _, rr0 := range []float64{0.01, 0.05, 0.1, 0.3, 0.5, 0.9, 0.99} {
		p := rr0 / VV0(rr0)
		got, err := RR0FromPeriod(p)
		if err != nil {
			t.Errorf("RR0FromPeriod(%g) failed: %s", p, err.Error())
		} else if math.Abs(got-rr0) > 1e-9*rr0 {
			t.Errorf("RR0FromPeriod(%g) = %g instead of %g", p, got, rr0)
		}
	}
}

func TestRR0FromMassIdentity(t *testing.T) {
	// Mass ratio 1 is the unstripped point of the track.
	rr0, err := RR0FromMass(1)
	if err != nil {
		t.Fatalf("RR0FromMass(1) failed: %s", err.Error())
	}
	assert.InEpsilon(t, 1, rr0, 1e-9)
}

func TestRR0FromMassSmallLimit(t *testing.T) {
	// As the mass ratio goes to 0+ the radius ratio follows without
	// blowing up.
	prev := math.Inf(1)
	for _, m := range []float64{1e-2, 1e-4, 1e-6, 1e-8} {
		rr0, err := RR0FromMass(m)
		if err != nil {
			t.Fatalf("RR0FromMass(%g) failed: %s", m, err.Error())
		}
		if rr0 <= 0 || rr0 >= prev {
			t.Errorf("RR0FromMass(%g) = %g does not shrink towards 0",
				m, rr0)
		}
		prev = rr0
	}
}

func TestRR0InvalidTargets(t *testing.T) {
	if _, err := RR0FromMass(0); err == nil {
		t.Errorf("RR0FromMass(0) did not fail")
	}
	if _, err := RR0FromMass(-1); err == nil {
		t.Errorf("RR0FromMass(-1) did not fail")
	}
	if _, err := RR0FromPeriod(0); err == nil {
		t.Errorf("RR0FromPeriod(0) did not fail")
	}
	if _, err := RR0FromPeriod(-2); err == nil {
		t.Errorf("RR0FromPeriod(-2) did not fail")
	}
}

func BenchmarkRR0FromPeriod(b *testing.B) {
	for i := 0; i < b.N; i++ { RR0FromPeriod(0.5) }
}
