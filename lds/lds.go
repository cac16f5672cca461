/*package lds provides low-discrepancy sequence generators: the Van der
Corput and Halton sequences, and their projections onto the unit circle,
disk, sphere, and 3-sphere.

Low-discrepancy points fill a domain more evenly than pseudo-random draws,
which makes them useful for quasi-Monte-Carlo integration and spatial
sampling. Every generator here is deterministic: the only state is a
counter, and Reseed moves it to any position in the sequence.

Here are some usage examples for these generators.

	// Successive fractions in [0, 1)
	vdc := NewVdCorput(2)
	x := vdc.Pop()

	// 2D points with coprime bases
	h := NewHalton([2]int{2, 3})
	p := h.Pop()

	// Points on the unit sphere
	s := NewSphere([2]int{2, 3})
	v := s.Pop()

Generators whose outputs are vectors satisfy the Gen interface. For the
exact integer variants of VdCorput and Halton, see the ilds package.
*/
package lds

import (
	"math"
)

const twoPi = 2.0 * math.Pi

// Gen is the interface shared by the vector-valued sequence generators.
type Gen interface {
	// Pop returns the next point of the sequence.
	Pop() []float64
	// Reseed moves the sequence to the position after seed.
	Reseed(seed int)
}

var (
	_ Gen = &Halton{}
	_ Gen = &HaltonN{}
	_ Gen = &Circle{}
	_ Gen = &Disk{}
	_ Gen = &Sphere{}
	_ Gen = &Sphere3Hopf{}
)

// Vdc returns the base-b radical inverse of k: the digits of k in the given
// base, reversed and reinterpreted as a fraction in [0, 1).
func Vdc(k, base int) float64 {
	res, denom := 0.0, 1.0
	for k != 0 {
		denom *= float64(base)
		res += float64(k%base) / denom
		k /= base
	}
	return res
}

// VdCorput generates the Van der Corput sequence: the radical inverses of
// 1, 2, 3, ... in a fixed base.
type VdCorput struct {
	count, base int
}

// NewVdCorput returns a Van der Corput generator over the given base.
// Bases below 2 don't have a meaningful digit expansion and will loop
// forever on the first Pop, so don't do that.
func NewVdCorput(base int) *VdCorput {
	return &VdCorput{base: base}
}

// Pop returns the next value of the sequence. For base 2 the sequence runs
// 0.5, 0.25, 0.75, 0.125, ...
func (vdc *VdCorput) Pop() float64 {
	vdc.count++
	return Vdc(vdc.count, vdc.base)
}

// Reseed sets the counter to seed. The next Pop returns the radical
// inverse of seed + 1.
func (vdc *VdCorput) Reseed(seed int) { vdc.count = seed }

// Halton generates the 2D Halton sequence: a Van der Corput sequence per
// dimension, advanced in lock-step. Distinct prime bases keep the two
// dimensions from sharing digit patterns.
type Halton struct {
	vdc0, vdc1 VdCorput
}

// NewHalton returns a Halton generator with the given per-dimension bases.
func NewHalton(base [2]int) *Halton {
	return &Halton{VdCorput{base: base[0]}, VdCorput{base: base[1]}}
}

// Pop returns the next point of the sequence.
func (h *Halton) Pop() []float64 {
	return []float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed resets both dimensions to the same counter value.
func (h *Halton) Reseed(seed int) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// HaltonN generates the n-dimensional Halton sequence.
type HaltonN struct {
	vdcs []VdCorput
}

// NewHaltonN returns a Halton generator with one dimension per entry of
// base. PrimeTable supplies good bases for any dimension count.
func NewHaltonN(base []int) *HaltonN {
	vdcs := make([]VdCorput, len(base))
	for i := range base {
		vdcs[i] = VdCorput{base: base[i]}
	}
	return &HaltonN{vdcs}
}

// Dim returns the number of dimensions.
func (h *HaltonN) Dim() int { return len(h.vdcs) }

// Pop returns the next point of the sequence.
func (h *HaltonN) Pop() []float64 {
	target := make([]float64, len(h.vdcs))
	for i := range h.vdcs {
		target[i] = h.vdcs[i].Pop()
	}
	return target
}

// Reseed resets every dimension to the same counter value.
func (h *HaltonN) Reseed(seed int) {
	for i := range h.vdcs {
		h.vdcs[i].Reseed(seed)
	}
}

// Circle generates evenly distributed points on the unit circle by mapping
// a Van der Corput sequence onto [0, 2π).
type Circle struct {
	vdc VdCorput
}

// NewCircle returns a Circle generator driven by the given base.
func NewCircle(base int) *Circle {
	return &Circle{VdCorput{base: base}}
}

// Pop returns the next point as [sin θ, cos θ].
func (c *Circle) Pop() []float64 {
	theta := c.vdc.Pop() * twoPi // map to [0, 2*pi]
	return []float64{math.Sin(theta), math.Cos(theta)}
}

// Reseed sets the underlying counter to seed.
func (c *Circle) Reseed(seed int) { c.vdc.Reseed(seed) }

// Disk generates evenly distributed points on the unit disk. The angle
// comes from one Van der Corput sequence and the radius from the square
// root of another, which keeps the area density uniform.
type Disk struct {
	vdc0, vdc1 VdCorput
}

// NewDisk returns a Disk generator with the given per-dimension bases.
func NewDisk(base [2]int) *Disk {
	return &Disk{VdCorput{base: base[0]}, VdCorput{base: base[1]}}
}

// Pop returns the next point as [x, y].
func (d *Disk) Pop() []float64 {
	theta := d.vdc0.Pop() * twoPi      // map to [0, 2*pi]
	radius := math.Sqrt(d.vdc1.Pop()) // map to [0, 1]
	return []float64{radius * math.Cos(theta), radius * math.Sin(theta)}
}

// Reseed resets both underlying counters to seed.
func (d *Disk) Reseed(seed int) {
	d.vdc0.Reseed(seed)
	d.vdc1.Reseed(seed)
}

// Sphere generates evenly distributed points on the unit 2-sphere using
// the cylindrical projection: z comes from a Van der Corput sequence and
// the azimuth from a Circle generator.
type Sphere struct {
	vdc    VdCorput
	cirgen Circle
}

// NewSphere returns a Sphere generator with the given per-dimension bases.
func NewSphere(base [2]int) *Sphere {
	return &Sphere{VdCorput{base: base[0]}, Circle{VdCorput{base: base[1]}}}
}

// Pop returns the next point as [x, y, z].
func (s *Sphere) Pop() []float64 {
	cosphi := 2.0*s.vdc.Pop() - 1.0 // map to [-1, 1]
	sinphi := math.Sqrt(1.0 - cosphi*cosphi)
	cs := s.cirgen.Pop()
	return []float64{sinphi * cs[0], sinphi * cs[1], cosphi}
}

// Reseed resets both underlying generators to seed.
func (s *Sphere) Reseed(seed int) {
	s.cirgen.Reseed(seed)
	s.vdc.Reseed(seed)
}

// Sphere3Hopf generates points on the unit 3-sphere through the Hopf
// fibration, driven by three Van der Corput sequences.
type Sphere3Hopf struct {
	vdc0, vdc1, vdc2 VdCorput
}

// NewSphere3Hopf returns a Sphere3Hopf generator with the given
// per-dimension bases.
func NewSphere3Hopf(base [3]int) *Sphere3Hopf {
	return &Sphere3Hopf{
		VdCorput{base: base[0]},
		VdCorput{base: base[1]},
		VdCorput{base: base[2]},
	}
}

// Pop returns the next point as [x0, x1, x2, x3].
func (s *Sphere3Hopf) Pop() []float64 {
	phi := s.vdc0.Pop() * twoPi // map to [0, 2*pi]
	psy := s.vdc1.Pop() * twoPi // map to [0, 2*pi]
	vd := s.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1.0 - vd)
	return []float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

// Reseed resets all three underlying counters to seed.
func (s *Sphere3Hopf) Reseed(seed int) {
	s.vdc0.Reseed(seed)
	s.vdc1.Reseed(seed)
	s.vdc2.Reseed(seed)
}
