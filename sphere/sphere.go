/*package sphere generates low-discrepancy points on spheres of three or
more dimensions.

The cylindrical mapping used by lds.Sphere is only area-preserving on the
2-sphere. For S^n with n >= 3 the polar angle has to be drawn from a
density proportional to sin^n, which this package does by inverting the
cumulative integral of sin^n through a precomputed table and clamped linear
interpolation. The tables are built once per dimension and shared by every
generator, so construction is cheap after the first.

Generators are mutable values owned by a single caller, like the rest of
this module: share one across goroutines only with external locking.
*/
package sphere

import (
	"math"

	"github.com/luk036/lds-gen/lds"
	"github.com/luk036/lds-gen/math/interpolate"
)

const (
	numPoints = 300
	halfPi    = math.Pi / 2
)

// Mapping tables over numPoints uniform samples of [0, pi].
var (
	xTable    []float64 // the samples themselves
	negCosine []float64 // -cos x, the antiderivative of sin x
	sine      []float64 // sin x

	// tpCache[n] holds the cumulative integral table for sin^n x,
	// normalized the way tp below defines it. Filled on demand during
	// construction; not synchronized, construct generators from one
	// goroutine.
	tpCache = map[int][]float64{}
)

func init() {
	xTable = linspace(0.0, math.Pi, numPoints)
	negCosine = make([]float64, numPoints)
	sine = make([]float64, numPoints)
	for i, x := range xTable {
		negCosine[i] = -math.Cos(x)
		sine[i] = math.Sin(x)
	}
}

// linspace returns num evenly spaced samples over [start, stop].
func linspace(start, stop float64, num int) []float64 {
	if num == 1 { return []float64{start} }
	step := (stop - start) / float64(num-1)
	out := make([]float64, num)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// tp returns the integral table for dimension n, satisfying the recurrence
// tp(n) = ((n-1) tp(n-2) + (-cos x) sin^(n-1) x) / n with tp(0) = x and
// tp(1) = -cos x. Each table is strictly increasing, which is what lets
// interpolate.Linear invert it.
func tp(n int) []float64 {
	if table, ok := tpCache[n]; ok { return table }

	var table []float64
	switch n {
	case 0:
		table = xTable
	case 1:
		table = negCosine
	default:
		prev := tp(n - 2)
		table = make([]float64, numPoints)
		for i := range table {
			table[i] = (float64(n-1)*prev[i] +
				negCosine[i]*math.Pow(sine[i], float64(n-1))) / float64(n)
		}
	}

	tpCache[n] = table
	return table
}

// Sphere3 generates evenly distributed points on the unit 3-sphere. The
// polar angle comes from inverting the sin^2 integral table; the remaining
// coordinates come from a 2-sphere generator.
type Sphere3 struct {
	vdc     *lds.VdCorput
	sphere2 *lds.Sphere
	inv     *interpolate.Linear
}

var _ lds.Gen = &Sphere3{}

// NewSphere3 returns a 3-sphere generator with the given per-dimension
// bases, usually three distinct primes.
func NewSphere3(base [3]int) *Sphere3 {
	return &Sphere3{
		vdc:     lds.NewVdCorput(base[0]),
		sphere2: lds.NewSphere([2]int{base[1], base[2]}),
		inv:     interpolate.NewLinear(tp(2), xTable),
	}
}

// Pop returns the next point as [x0, x1, x2, x3].
func (s *Sphere3) Pop() []float64 {
	ti := halfPi * s.vdc.Pop() // map to [0, pi/2]
	xi := s.inv.Eval(ti)
	cosxi, sinxi := math.Cos(xi), math.Sin(xi)

	p := s.sphere2.Pop()
	return []float64{sinxi * p[0], sinxi * p[1], sinxi * p[2], cosxi}
}

// Reseed resets every underlying counter to seed.
func (s *Sphere3) Reseed(seed int) {
	s.vdc.Reseed(seed)
	s.sphere2.Reseed(seed)
}

// SphereN generates evenly distributed points on the unit n-sphere,
// building recursively on lower-dimensional generators: an n-sphere point
// is a scaled (n-1)-sphere point plus a polar coordinate.
type SphereN struct {
	vdc        *lds.VdCorput
	inner      lds.Gen // *lds.Sphere for n = 2, *SphereN above that
	inv        *interpolate.Linear
	t0, tRange float64
}

var _ lds.Gen = &SphereN{}

// NewSphereN returns a generator for the n-sphere, where n = len(base).
// Points have n + 1 coordinates. Panics if fewer than three bases are
// given; use lds.Sphere or lds.Circle for the lower dimensions.
func NewSphereN(base []int) *SphereN {
	n := len(base) - 1
	if n < 2 {
		panic("A SphereN generator needs at least three bases.")
	}

	var inner lds.Gen
	if n == 2 {
		inner = lds.NewSphere([2]int{base[1], base[2]})
	} else {
		inner = NewSphereN(base[1:])
	}

	table := tp(n)
	t0, tRange := table[0], table[numPoints-1]-table[0]
	if n == 2 {
		// sin^2 integrates to exactly [0, pi/2]; using the closed form
		// keeps the 2-case identical to Sphere3.
		t0, tRange = 0, halfPi
	}
	return &SphereN{
		vdc:    lds.NewVdCorput(base[0]),
		inner:  inner,
		inv:    interpolate.NewLinear(table, xTable),
		t0:     t0,
		tRange: tRange,
	}
}

// Pop returns the next point as a slice of len(base) + 1 coordinates.
func (s *SphereN) Pop() []float64 {
	vd := s.vdc.Pop()
	ti := s.t0 + s.tRange*vd // map to [t0, tm-1]
	xi := s.inv.Eval(ti)
	sinxi := math.Sin(xi)

	p := s.inner.Pop()
	out := make([]float64, 0, len(p)+1)
	for _, c := range p {
		out = append(out, sinxi*c)
	}
	return append(out, math.Cos(xi))
}

// Reseed resets every underlying counter to seed.
func (s *SphereN) Reseed(seed int) {
	s.vdc.Reseed(seed)
	s.inner.Reseed(seed)
}
