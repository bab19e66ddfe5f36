package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/phil-mansfield/gostrip/evolve"
	"github.com/phil-mansfield/gostrip/io"
	"github.com/phil-mansfield/gostrip/math/quad"
	"github.com/phil-mansfield/gostrip/tracer"
	"github.com/phil-mansfield/gostrip/track"
)

// Simulation units: G = 1 with masses in 1e10 Msun, lengths in kpc,
// times in 4.714e-3 Gyr, and velocities in 207.4 km/s.
const (
	massUnit   = 1.0e10   // Msun
	lengthUnit = 1.0      // kpc
	timeUnit   = 4.714e-3 // Gyr
	velUnit    = 207.4    // km/s
)

func main() {
	var dNdeFile, orbitFile, exampleConfig string

	flag.StringVar(
		&dNdeFile, "DNDe", "",
		"Configuration file for [DNDe] mode.",
	)
	flag.StringVar(
		&orbitFile, "Orbit", "",
		"Configuration file for [Orbit] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'DNDe' and 'Orbit'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		exampleConfigMain(exampleConfig)
	case dNdeFile != "":
		dNdeMain(dNdeFile)
	case orbitFile != "":
		orbitMain(orbitFile)
	default:
		log.Fatalf(
			"One of the flags -DNDe, -Orbit, or -ExampleConfig is "+
				"required. Run '%s -help' for information.", os.Args[0],
		)
	}
}

func exampleConfigMain(name string) {
	switch name {
	case "DNDe":
		fmt.Println(io.ExampleDNDeFile)
	case "Orbit":
		fmt.Println(io.ExampleOrbitFile)
	default:
		log.Fatalf(
			"Unrecognized config type '%s'. Accepted arguments are "+
				"'DNDe' and 'Orbit'.", name,
		)
	}
}

// writeWarnings appends collected diagnostics to the configured log
// file, or to standard error when none is set.
func writeWarnings(diag *quad.Diagnostics, logFile string) {
	warns := diag.Warnings()
	if len(warns) == 0 { return }

	out := os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(
			logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644,
		)
		if err != nil {
			log.Printf("Could not open %s: %s", logFile, err.Error())
		} else {
			defer f.Close()
			out = f
		}
	}
	for _, w := range warns { fmt.Fprintln(out, w) }
}

func dNdeMain(confFile string) {
	con, err := io.ReadDNDeConfig(confFile)
	if err != nil { log.Fatal(err.Error()) }

	diag := &quad.Diagnostics{}
	opt := quad.Options{
		AbsTol: con.AbsTol, RelTol: con.RelTol, Diag: diag,
	}
	es := tracer.LogGrid(con.GridMin, con.GridPoints)
	p := tracer.Params{
		Alpha: con.Alpha, Beta: con.Beta, Es: con.ScaleEnergy,
	}

	st, err := tracer.Strip(es, p, con.MassFraction, con.ScatterDex, opt)
	if err != nil { log.Fatal(err.Error()) }

	err = io.WriteTable(
		con.Output,
		[]string{"e = 1-E/Phi0 | initial dN/de | final dN/de"},
		st.Es, st.Initial, st.Final,
	)
	if err != nil { log.Fatal(err.Error()) }

	rr0, err := track.RR0FromMass(con.MassFraction)
	if err != nil { log.Fatal(err.Error()) }

	fmt.Println("Tidally stripped stellar tracer in initial NFW profile")
	fmt.Printf(" output '%s' format  : "+
		"|  e = 1-E/Phi0   |   dNde_i   |   dNde_f   |\n", con.Output)
	fmt.Println(" initial dN/de_i with e referred to " +
		"Phi0 = - 4.63 * Vmx0^2 of the initial NFW")
	fmt.Println(" final   dN/de_f with e referred to " +
		"Phi0 = - 3.35 * Vmx^2  of the final truncated cusp")
	fmt.Printf(" relative change in Luminosity   : L/L0     = %.4f\n",
		st.LL0)
	fmt.Printf(" relative change in size (DM)    : rmx/rmx0 = %.4f\n", rr0)
	fmt.Printf(" relative change in velocity (DM): Vmx/Vmx0 = %.4f\n",
		track.VV0(rr0))
	if con.LogFile != "" && diag.Count() > 0 {
		fmt.Printf(" see '%s' for (integration) warnings\n", con.LogFile)
	}

	if con.PlotFile != "" {
		plotDNDe(con.PlotFile, st)
		flushPlots()
	}
	writeWarnings(diag, con.LogFile)
}

func orbitMain(confFile string) {
	con, err := io.ReadOrbitConfig(confFile)
	if err != nil { log.Fatal(err.Error()) }

	rperi := con.Rperi / lengthUnit
	o := &evolve.Orbit{
		Rperi:     rperi,
		RapoRperi: con.RapoRperi,
		Torb:      con.Torb / timeUnit,
		Tperi:     2 * math.Pi * rperi / (con.VcPeri / velUnit),
	}

	rmx0s := []float64{con.Rmx0}
	vmx0s := []float64{con.Vmx0}
	if con.SubhaloFile != "" {
		rmx0s, vmx0s, err = io.ReadSubhalos(con.SubhaloFile)
		if err != nil { log.Fatal(err.Error()) }
	}

	ts := make([]float64, con.Steps)
	for i := range ts {
		ts[i] = con.TMax / timeUnit *
			float64(i) / float64(max(con.Steps-1, 1))
	}

	for i := range rmx0s {
		s := &evolve.Subhalo{
			Rmx0: rmx0s[i] / lengthUnit,
			Vmx0: vmx0s[i] / velUnit,
		}
		states, err := evolve.Evolve(o, s, ts)
		if err != nil { log.Fatal(err.Error()) }

		out := con.Output
		if con.SubhaloFile != "" {
			out = fmt.Sprintf("%s.%d", con.Output, i)
		}
		if err := writeTrack(out, states); err != nil {
			log.Fatal(err.Error())
		}
		if con.PlotFile != "" {
			pf := con.PlotFile
			if con.SubhaloFile != "" {
				pf = fmt.Sprintf("%s.%d", con.PlotFile, i)
			}
			plotTrack(pf, s, states)
		}
	}
	if con.PlotFile != "" { flushPlots() }
}

func max(x, y int) int {
	if x > y { return x }
	return y
}

// writeTrack converts a time series back to physical units and writes
// it as a five-column table. Failed time samples are reported and
// skipped; the rest of the series is kept.
func writeTrack(fname string, states []evolve.State) error {
	n := len(states)
	ts := make([]float64, 0, n)
	tmxs := make([]float64, 0, n)
	rmxs := make([]float64, 0, n)
	vmxs := make([]float64, 0, n)
	mmxs := make([]float64, 0, n)

	for _, st := range states {
		if st.Err != nil {
			log.Printf(
				"Skipping t = %g Gyr: %s", st.T*timeUnit, st.Err.Error(),
			)
			continue
		}
		ts = append(ts, st.T*timeUnit)
		tmxs = append(tmxs, st.Tmx*timeUnit)
		rmxs = append(rmxs, st.Rmx*lengthUnit)
		vmxs = append(vmxs, st.Vmx*velUnit)
		mmxs = append(mmxs, st.Mmx*massUnit)
	}

	return io.WriteTable(
		fname,
		[]string{"t [Gyr] | Tmx [Gyr] | rmx [kpc] | Vmx [km/s] | Mmx [Msun]"},
		ts, tmxs, rmxs, vmxs, mmxs,
	)
}
