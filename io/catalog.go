package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"
)

// ReadSubhalos reads a multi-subhalo catalog: a whitespace-separated
// ASCII table whose first two columns are rmx0 [kpc] and Vmx0 [km/s].
func ReadSubhalos(file string) (rmx0s, vmx0s []float64, err error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil { return nil, nil, err }

	rmx0s, vmx0s = cols[0], cols[1]
	for i := range rmx0s {
		if rmx0s[i] <= 0 || vmx0s[i] <= 0 {
			return nil, nil, fmt.Errorf(
				"subhalo %d in %s has non-positive rmx0 = %g or Vmx0 = %g",
				i, file, rmx0s[i], vmx0s[i],
			)
		}
	}
	return rmx0s, vmx0s, nil
}

// WriteTable writes columns of equal length to a whitespace-separated
// ASCII table. Lines of the header are prefixed with "# ".
func WriteTable(fname string, header []string, cols ...[]float64) error {
	for i := 1; i < len(cols); i++ {
		if len(cols[i]) != len(cols[0]) {
			return fmt.Errorf(
				"column 0 has %d rows, but column %d has %d",
				len(cols[0]), i, len(cols[i]),
			)
		}
	}

	f, err := os.Create(fname)
	if err != nil { return err }
	defer f.Close()

	for _, line := range header {
		fmt.Fprintf(f, "# %s\n", line)
	}
	for row := 0; row < len(cols[0]); row++ {
		for i := range cols {
			if i > 0 { fmt.Fprint(f, " ") }
			fmt.Fprintf(f, "%.10g", cols[i][row])
		}
		fmt.Fprintln(f)
	}
	return nil
}
