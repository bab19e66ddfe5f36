package evolve

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gostrip/track"
)

// G is Newton's constant in simulation units.
const G = 1

// Orbit describes the orbital geometry of a subhalo within its host:
// the pericentric distance Rperi, the apo-to-pericenter ratio
// RapoRperi, the radial orbital period Torb, and the circular orbital
// period at pericenter Tperi.
type Orbit struct {
	Rperi, RapoRperi, Torb, Tperi float64
}

// Fecc is the eccentricity delay factor (2x/(x+1))^3.2 with
// x = rapo/rperi: eccentric orbits spend most of their time far from
// pericenter and strip correspondingly slower.
func Fecc(rarp float64) float64 {
	return math.Pow(2*rarp/(rarp+1), 3.2)
}

// Subhalo holds the initial structural parameters of a subhalo: the
// radius of maximum circular velocity and the velocity there.
type Subhalo struct {
	Rmx0, Vmx0 float64
}

// Tmx0 is the initial crossing time 2*pi*rmx0/Vmx0.
func (s *Subhalo) Tmx0() float64 {
	return 2 * math.Pi * s.Rmx0 / s.Vmx0
}

// State is the subhalo's structure projected to a single query time.
// A non-nil Err marks this time sample as failed; the other samples of
// the same series are unaffected.
type State struct {
	T, Tmx, Rmx, Vmx, Mmx float64
	Err                   error
}

// Evolve projects the subhalo's structure to each query time: the
// crossing time relaxes per the two-regime law, the radius ratio
// follows from inverting the tidal track at Tmx/Tmx0, and Vmx and
// Mmx = rmx*Vmx^2/G follow from the forward track. Each time is
// evaluated independently; per-time failures are recorded on the
// returned State, never aborting the series.
func Evolve(o *Orbit, s *Subhalo, ts []float64) ([]State, error) {
	switch {
	case o.Torb <= 0 || o.Tperi <= 0:
		return nil, fmt.Errorf(
			"evolve: invalid orbit periods (Torb = %g, Tperi = %g)",
			o.Torb, o.Tperi,
		)
	case o.RapoRperi < 1:
		return nil, fmt.Errorf(
			"evolve: rapo/rperi = %g is below 1", o.RapoRperi,
		)
	case s.Rmx0 <= 0 || s.Vmx0 <= 0:
		return nil, fmt.Errorf(
			"evolve: invalid subhalo (rmx0 = %g, Vmx0 = %g)",
			s.Rmx0, s.Vmx0,
		)
	}

	fecc := Fecc(o.RapoRperi)
	tmx0 := s.Tmx0()

	states := make([]State, len(ts))
	for i, t := range ts {
		states[i] = evolveAt(o, s, fecc, tmx0, t)
	}
	return states, nil
}

func evolveAt(o *Orbit, s *Subhalo, fecc, tmx0, t float64) State {
	st := State{T: t}

	// Tmx enters the relaxation law in units of Tperi, t in units of
	// the eccentricity-delayed orbital period.
	tmx, err := Tmx(tmx0/o.Tperi, t/(o.Torb*fecc))
	if err != nil {
		st.Err = err
		return st
	}
	st.Tmx = o.Tperi * tmx

	rr0, err := track.RR0FromPeriod(st.Tmx / tmx0)
	if err != nil {
		st.Err = err
		return st
	}

	st.Rmx = s.Rmx0 * rr0
	st.Vmx = s.Vmx0 * track.VV0(rr0)
	st.Mmx = st.Rmx * st.Vmx * st.Vmx / G
	return st
}
