package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	xs := []float64{0, 1, 2, 4}
	vals := []float64{1, 3, 5, 9}
	lin := NewLinear(xs, vals)

	// points on the grid should work
	assert.Equal(t, 1.0, lin.Eval(0), "left edge")
	assert.Equal(t, 5.0, lin.Eval(2), "on grid")
	assert.Equal(t, 9.0, lin.Eval(4), "right edge")
	// points between grid points should work
	assert.Equal(t, 2.0, lin.Eval(0.5), "between points")
	assert.Equal(t, 7.0, lin.Eval(3), "wide interval")
}

func TestLinearEvalAll(t *testing.T) {
	lin := NewLinear([]float64{0, 1, 2}, []float64{0, 2, 4})
	out := lin.EvalAll([]float64{0, 0.25, 1.5, 2})
	assert.Equal(t, []float64{0, 0.5, 3, 4}, out)
}

func TestLinearOutOfRangePanics(t *testing.T) {
	lin := NewLinear([]float64{1, 2}, []float64{1, 2})
	defer func() {
		if recover() == nil {
			t.Errorf("Eval outside the support did not panic.")
		}
	}()
	lin.Eval(0.5)
}
