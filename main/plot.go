package main

import (
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gostrip/evolve"
	"github.com/phil-mansfield/gostrip/tracer"
)

// The plotting calls only queue matplotlib commands; flushPlots hands
// them to python.
func flushPlots() { plt.Execute() }

func plotDNDe(fname string, st *tracer.Stripped) {
	plt.Figure()

	plt.Plot(st.Es, st.Initial, "k", plt.LW(2))
	plt.Plot(st.Es, st.Final, "r", plt.LW(2))

	plt.XLabel(`$e = 1 - E/\Phi_0$`, plt.FontSize(16))
	plt.YLabel(`$dN/de$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.SaveFig(fname)
}

func plotTrack(fname string, s *evolve.Subhalo, states []evolve.State) {
	mmx0 := s.Rmx0 * s.Vmx0 * s.Vmx0 / evolve.G

	ts := make([]float64, 0, len(states))
	fracs := make([]float64, 0, len(states))
	for _, st := range states {
		if st.Err != nil { continue }
		ts = append(ts, st.T*timeUnit)
		fracs = append(fracs, st.Mmx/mmx0)
	}

	plt.Figure()
	plt.Plot(ts, fracs, "k", plt.LW(2))
	plt.XLabel(`$t$ $[{\rm Gyr}]$`, plt.FontSize(16))
	plt.YLabel(`$M_{\rm mx} / M_{\rm mx0}$`, plt.FontSize(16))
	plt.YScale("log")
	plt.SaveFig(fname)
}
