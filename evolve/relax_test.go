package evolve

import (
	"math"
	"testing"
)

func TestTmxBoundaryCondition(t *testing.T) {
	// At t = 0 the closed form returns Tmx0 exactly, in both regimes.
	for _, tmx0 := range []float64{0.1, 0.5, 0.66, 0.7, 1.735} {
		got, err := Tmx(tmx0, 0)
		if err != nil {
			t.Fatalf("Tmx(%g, 0) failed: %s", tmx0, err.Error())
		}
		if got != tmx0 {
			t.Errorf("Tmx(%g, 0) = %g instead of Tmx0", tmx0, got)
		}
	}
}

func TestTmxDecays(t *testing.T) {
	for _, tmx0 := range []float64{0.3, 0.66, 1.0, 1.735} {
		prev := tmx0
		for _, time := range []float64{0.1, 0.5, 1, 2, 5, 10, 50} {
			got, err := Tmx(tmx0, time)
			if err != nil {
				t.Fatalf("Tmx(%g, %g) failed: %s", tmx0, time, err.Error())
			}
			if got >= prev {
				t.Errorf(
					"Tmx(%g, %g) = %g does not decay below %g",
					tmx0, time, got, prev,
				)
			}
			prev = got
		}
	}
}

func TestTmxAsymptotes(t *testing.T) {
	// Heavy mass loss relaxes towards the universal asymptote.
	got, err := Tmx(1.5, 1e8)
	if err != nil {
		t.Fatalf("Tmx failed: %s", err.Error())
	}
	if math.Abs(got-heavyTasy) > 1e-3 {
		t.Errorf("heavy regime asymptote = %g instead of %g",
			got, heavyTasy)
	}

	// Moderate mass loss towards Tmx0/(1+Tmx0)^2.17.
	tmx0 := 0.4
	want := tmx0 / math.Pow(1+tmx0, 2.17)
	got, err = Tmx(tmx0, 1e8)
	if err != nil {
		t.Fatalf("Tmx failed: %s", err.Error())
	}
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("moderate regime asymptote = %g instead of %g", got, want)
	}
}

func TestTmxInvalidInput(t *testing.T) {
	if _, err := Tmx(0, 1); err == nil {
		t.Errorf("Tmx0 = 0 did not fail")
	}
	if _, err := Tmx(-0.5, 1); err == nil {
		t.Errorf("Tmx0 < 0 did not fail")
	}
	if _, err := Tmx(0.5, -1); err == nil {
		t.Errorf("t < 0 did not fail")
	}
}

// The two regime calibrations are not constrained to join continuously
// at Tmx0 = 0.66. The gap is not patched over; this records its size.
func TestBranchGapAtBoundary(t *testing.T) {
	worst := 0.0
	for _, time := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		gap := BranchGap(time)
		if math.IsNaN(gap) {
			t.Fatalf("BranchGap(%g) is NaN", time)
		}
		if math.Abs(gap) > math.Abs(worst) { worst = gap }
		t.Logf("BranchGap(%5.1f) = %+.2e", time, gap)
	}
	// The calibrations happen to nearly agree; a large seam would mean
	// one of the branch formulas was transcribed wrong.
	if math.Abs(worst) > 0.01 {
		t.Errorf("branch seam %g is far larger than the calibrations'"+
			" published mismatch", worst)
	}
}

func BenchmarkTmx(b *testing.B) {
	for i := 0; i < b.N; i++ { Tmx(1.735, 3.3) }
}
