package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleDNDeFile = `[DNDe]

#######################
# Required Parameters #
#######################

# Power-law slope of the initial dN/de towards the most-bound energies.
Alpha = 3
# Sharpness of the exponential truncation beyond the scale energy.
Beta = 3
# Scale energy of the truncation. 0.4786 corresponds to Rh0/rmx0 = 1/4.
ScaleEnergy = 0.4786300923226385

# Remnant mass fraction Mmx/Mmx0 the subhalo is stripped down to. The
# model is calibrated for fractions below 1/10.
MassFraction = 0.01

# File the three-column output table (e, initial dN/de, final dN/de)
# is written to.
Output = final_dNde.dat

#######################
# Optional Parameters #
#######################

# Log-normal scatter, in dex, around the mean energy mapping.
# ScatterDex = 0.03

# Lower edge of the energy grid (the upper edge is always e = 1) and
# the number of grid points.
# GridMin = 1e-5
# GridPoints = 1000

# Quadrature tolerances. Tolerances stricter than achievable degrade
# to warnings in LogFile rather than errors.
# AbsTol = 1e-12
# RelTol = 1e-8

# File integration and regime warnings are appended to. Defaults to
# standard error.
# LogFile = warnings.log

# PNG file the initial and final distributions are plotted to. Plotting
# requires python with matplotlib.
# PlotFile = final_dNde.png`

	ExampleOrbitFile = `[Orbit]

#######################
# Required Parameters #
#######################

# Orbit geometry: pericentric distance in kpc, the apo-to-pericentre
# ratio, and the radial orbital period in Gyr.
Rperi = 20
RapoRperi = 5
Torb = 1.23

# Circular velocity of the host at the pericentre, in km/s. Sets the
# orbital period at pericentre, Tperi = 2 pi rperi / vc.
VcPeri = 220

# Initial subhalo structure: radius of maximum circular velocity in
# kpc and the circular velocity there in km/s.
Rmx0 = 2.2
Vmx0 = 13.95

# File the five-column output table (t, Tmx, rmx, Vmx, Mmx) is written
# to, in Gyr, kpc, km/s, and Msun.
Output = tracks.dat

#######################
# Optional Parameters #
#######################

# Total evolution time in Gyr and the number of equally spaced query
# times (including t = 0).
# TMax = 15
# Steps = 16

# A multi-subhalo catalog: a whitespace-separated ASCII table whose
# first two columns are rmx0 [kpc] and Vmx0 [km/s], one subhalo per
# row. When set, Rmx0 and Vmx0 above are ignored and one output table
# per row is written to Output with the row index appended.
# SubhaloFile = subhalos.dat

# PNG file the Mmx/Mmx0 track is plotted to.
# PlotFile = tracks.png`
)

// DNDeConfig configures the stripped dN/de worked example.
type DNDeConfig struct {
	// Required
	Alpha, Beta, ScaleEnergy float64
	MassFraction             float64
	Output                   string

	// Optional
	ScatterDex     float64
	GridMin        float64
	GridPoints     int
	AbsTol, RelTol float64
	LogFile        string
	PlotFile       string
}

// OrbitConfig configures the subhalo evolution worked example. Inputs
// are in physical units (kpc, km/s, Gyr); outputs are converted back
// from the simulation unit system.
type OrbitConfig struct {
	// Required
	Rperi, RapoRperi, Torb float64
	VcPeri                 float64
	Rmx0, Vmx0             float64
	Output                 string

	// Optional
	TMax        float64
	Steps       int
	SubhaloFile string
	LogFile     string
	PlotFile    string
}

// DefaultDNDeConfig fills in the optional parameters of the worked
// example.
func DefaultDNDeConfig() DNDeConfig {
	return DNDeConfig{
		ScatterDex: 0.03,
		GridMin:    1e-5,
		GridPoints: 1000,
		AbsTol:     1e-12,
		RelTol:     1e-8,
	}
}

// DefaultOrbitConfig fills in the optional parameters of the worked
// example.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{TMax: 15, Steps: 16}
}

// ReadDNDeConfig reads and validates a [DNDe] config file.
func ReadDNDeConfig(fname string) (*DNDeConfig, error) {
	wrap := struct{ DNDe DNDeConfig }{DefaultDNDeConfig()}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.DNDe

	switch {
	case con.Beta <= 0 || con.ScaleEnergy <= 0:
		return nil, fmt.Errorf(
			"Beta and ScaleEnergy must be positive in %s.", fname,
		)
	case con.MassFraction <= 0 || con.MassFraction >= 1:
		return nil, fmt.Errorf(
			"MassFraction must be in (0, 1) in %s.", fname,
		)
	case con.GridMin <= 0 || con.GridMin >= 1:
		return nil, fmt.Errorf("GridMin must be in (0, 1) in %s.", fname)
	case con.GridPoints < 2:
		return nil, fmt.Errorf("GridPoints must be at least 2 in %s.", fname)
	case con.Output == "":
		return nil, fmt.Errorf("Output is not set in %s.", fname)
	}
	return con, nil
}

// ReadOrbitConfig reads and validates an [Orbit] config file.
func ReadOrbitConfig(fname string) (*OrbitConfig, error) {
	wrap := struct{ Orbit OrbitConfig }{DefaultOrbitConfig()}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Orbit

	switch {
	case con.Rperi <= 0 || con.Torb <= 0 || con.VcPeri <= 0:
		return nil, fmt.Errorf(
			"Rperi, Torb, and VcPeri must be positive in %s.", fname,
		)
	case con.RapoRperi < 1:
		return nil, fmt.Errorf("RapoRperi must be at least 1 in %s.", fname)
	case con.SubhaloFile == "" && (con.Rmx0 <= 0 || con.Vmx0 <= 0):
		return nil, fmt.Errorf(
			"Rmx0 and Vmx0 must be positive in %s.", fname,
		)
	case con.TMax <= 0 || con.Steps < 1:
		return nil, fmt.Errorf(
			"TMax must be positive and Steps at least 1 in %s.", fname,
		)
	case con.Output == "":
		return nil, fmt.Errorf("Output is not set in %s.", fname)
	}
	return con, nil
}
