/*package interpolate provides 1D linear interpolation over tables of
strictly increasing x values. Lookups outside the table clamp to the
endpoint values, which is the behavior the sphere mapping tables need:
their domains are closed and a query can land a rounding error past either
end.*/
package interpolate

// Linear is a linear interpolator over a strictly increasing table.
type Linear struct {
	xs, vals []float64
	x0, dx   float64
}

// NewLinear creates a linear interpolator for the strictly increasing
// points xs, which take on the values given by vals.
//
// Lookups are O(log |xs|), or O(1) when the points turn out to be close to
// uniformly spaced.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	}
	if len(xs) < 2 {
		panic("An interpolation table needs at least two points.")
	}
	return &Linear{
		xs: xs, vals: vals,
		x0: xs[0],
		dx: (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1),
	}
}

// Eval returns the interpolated value at x. Values outside the table's
// range evaluate to the nearest endpoint value.
func (lin *Linear) Eval(x float64) float64 {
	if x <= lin.x0 { return lin.vals[0] }
	if x >= lin.xs[len(lin.xs)-1] { return lin.vals[len(lin.vals)-1] }

	i := lin.search(x)
	x1, x2 := lin.xs[i], lin.xs[i+1]
	v1, v2 := lin.vals[i], lin.vals[i+1]

	t := (x - x1) / (x2 - x1)
	return v1 + t*(v2-v1)
}

// search returns i such that xs[i] <= x < xs[i+1]. The caller guarantees x
// is strictly inside the table.
func (lin *Linear) search(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - lin.x0) / lin.dx)
	if guess >= 0 && guess < len(lin.xs)-1 &&
		lin.xs[guess] <= x && x < lin.xs[guess+1] {

		return guess
	}

	// Binary search.
	lo, hi := 0, len(lin.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= lin.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
