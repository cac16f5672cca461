package interpolate

import (
	"math"
	"testing"
)

func TestLinearEval(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	vals := []float64{0, 2, 4, 6} // y = 2x

	tests := []struct{ x, out float64 }{
		{0.5, 1},
		{1.5, 3},
		{2, 4},
		{0, 0},
		{3, 6},
		{-0.5, 0}, // clamps
		{3.5, 6},  // clamps
	}

	lin := NewLinear(xs, vals)
	for i := range tests {
		out := lin.Eval(tests[i].x)
		if math.Abs(out-tests[i].out) > 1e-10 {
			t.Errorf("Eval(%g) = %g, but I expected %g.",
				tests[i].x, out, tests[i].out)
		}
	}
}

func TestLinearNonUniform(t *testing.T) {
	// Spacing chosen so the uniform guess misses and the binary search
	// has to take over.
	xs := []float64{0, 0.1, 0.2, 0.3, 10}
	vals := []float64{0, 1, 2, 3, 4}

	lin := NewLinear(xs, vals)
	tests := []struct{ x, out float64 }{
		{0.05, 0.5},
		{0.25, 2.5},
		{5.15, 3.5},
	}
	for i := range tests {
		out := lin.Eval(tests[i].x)
		if math.Abs(out-tests[i].out) > 1e-10 {
			t.Errorf("Eval(%g) = %g, but I expected %g.",
				tests[i].x, out, tests[i].out)
		}
	}
}

func TestLinearPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected mismatched table lengths to panic, but " +
				"they didn't.")
		}
	}()
	NewLinear([]float64{0, 1}, []float64{0})
}
