/*package ilds provides integer-valued low-discrepancy sequence generators.

Unlike the generators in the lds package, which return fractions in [0, 1),
these return the radical inverse scaled by base^scale and computed entirely
in integer arithmetic, so sequences are bit-for-bit reproducible across
platforms.

Here are some usage examples for these generators.

	// Generate a single value
	vdc, err := NewVdCorput(2, 10)
	if err != nil { ... }
	x := vdc.Pop()

	// A 2D point per call
	h, err := NewHalton([2]uint32{2, 3}, [2]uint32{11, 7})
	p := h.Pop()

	// Restart a sequence from a known point
	vdc.Reseed(0)

A generator is a plain mutable value owned by its caller. Sharing one
instance between goroutines requires external synchronization; independent
instances need none.
*/
package ilds

import (
	"fmt"
	"math"
)

// VdCorput generates the integer Van der Corput sequence in a fixed base.
// Each call to Pop advances a counter and returns the counter's base-b
// digits reversed, scaled by base^scale.
type VdCorput struct {
	base, scale uint32
	count       uint64
	factor      uint64
}

// NewVdCorput returns a generator over the given base with scale digit
// positions. It returns an error if base is smaller than 2 or if base^scale
// does not fit in a uint64.
func NewVdCorput(base, scale uint32) (*VdCorput, error) {
	if base < 2 {
		return nil, fmt.Errorf(
			"A Van der Corput generator needs a base of at least 2, "+
				"but was given %d.", base,
		)
	}
	factor, err := pow(base, scale)
	if err != nil { return nil, err }
	return &VdCorput{base: base, scale: scale, factor: factor}, nil
}

// MustVdCorput is NewVdCorput for parameters known to be valid. It panics
// where NewVdCorput would return an error.
func MustVdCorput(base, scale uint32) *VdCorput {
	vdc, err := NewVdCorput(base, scale)
	if err != nil { panic(err.Error()) }
	return vdc
}

// DefaultVdCorput returns the base-2, scale-10 generator, whose outputs
// range over [0, 1024).
func DefaultVdCorput() *VdCorput {
	return MustVdCorput(2, 10)
}

// pow computes base^scale with an overflow check at every step.
func pow(base, scale uint32) (uint64, error) {
	factor := uint64(1)
	for i := uint32(0); i < scale; i++ {
		if factor > math.MaxUint64/uint64(base) {
			return 0, fmt.Errorf(
				"%d^%d does not fit in a uint64, so the generator's "+
					"scale factor cannot be represented.", base, scale,
			)
		}
		factor *= uint64(base)
	}
	return factor, nil
}

// Pop advances the counter and returns the radical inverse of the new
// counter value, scaled by base^scale.
//
// Outputs are pairwise distinct while the counter stays in
// [1, base^scale]. Past that point digits beyond scale are dropped, so
// counters that agree modulo base^scale map to the same output.
func (vdc *VdCorput) Pop() uint64 {
	vdc.count++

	k, factor := vdc.count, vdc.factor
	res := uint64(0)
	for k != 0 {
		factor /= uint64(vdc.base)
		res += (k % uint64(vdc.base)) * factor
		k /= uint64(vdc.base)
	}
	return res
}

// Reseed sets the counter to seed, discarding the previous position. The
// next Pop returns the radical inverse of seed + 1.
func (vdc *VdCorput) Reseed(seed uint64) { vdc.count = seed }

// Base returns the radix the generator reverses digits in.
func (vdc *VdCorput) Base() uint32 { return vdc.base }

// Cap returns base^scale, the denominator of the sequence. Outputs lie in
// [0, Cap()) and are collision-free for the first Cap() draws after a
// Reseed(0).
func (vdc *VdCorput) Cap() uint64 { return vdc.factor }

// Halton generates the 2D integer Halton sequence: two Van der Corput
// generators advanced in lock-step, one per dimension. The dimensions stay
// aligned by index because Reseed resets both counters together.
type Halton struct {
	vdc0, vdc1 VdCorput
}

// NewHalton returns a Halton generator with per-dimension bases and scales.
// The usual choice is a pair of distinct primes, e.g. bases [2, 3], so the
// two dimensions don't share digit patterns, but any valid bases are
// accepted.
func NewHalton(base, scale [2]uint32) (*Halton, error) {
	vdc0, err := NewVdCorput(base[0], scale[0])
	if err != nil { return nil, err }
	vdc1, err := NewVdCorput(base[1], scale[1])
	if err != nil { return nil, err }
	return &Halton{*vdc0, *vdc1}, nil
}

// Pop returns the next point of the sequence.
func (h *Halton) Pop() [2]uint64 {
	return [2]uint64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed resets both dimensions to the same counter value.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// HaltonN generates the n-dimensional integer Halton sequence. It is the
// slice-valued generalization of Halton.
type HaltonN struct {
	vdcs []VdCorput
}

// NewHaltonN returns an n-dimensional Halton generator. base and scale must
// have the same nonzero length.
func NewHaltonN(base, scale []uint32) (*HaltonN, error) {
	if len(base) != len(scale) {
		return nil, fmt.Errorf(
			"I was given %d bases but %d scales: a Halton generator "+
				"needs one of each per dimension.", len(base), len(scale),
		)
	}
	if len(base) == 0 {
		return nil, fmt.Errorf(
			"A Halton generator needs at least one dimension.",
		)
	}

	vdcs := make([]VdCorput, len(base))
	for i := range base {
		vdc, err := NewVdCorput(base[i], scale[i])
		if err != nil { return nil, err }
		vdcs[i] = *vdc
	}
	return &HaltonN{vdcs}, nil
}

// Dim returns the number of dimensions.
func (h *HaltonN) Dim() int { return len(h.vdcs) }

// Pop returns the next point of the sequence.
func (h *HaltonN) Pop() []uint64 {
	target := make([]uint64, len(h.vdcs))
	h.PopAt(target)
	return target
}

// PopAt is equivalent to Pop, except the point is written to target.
// target must have length Dim().
func (h *HaltonN) PopAt(target []uint64) {
	if len(target) != len(h.vdcs) {
		panic(fmt.Sprintf(
			"Target length %d does not match dimension %d.",
			len(target), len(h.vdcs),
		))
	}
	for i := range h.vdcs {
		target[i] = h.vdcs[i].Pop()
	}
}

// Reseed resets every dimension to the same counter value.
func (h *HaltonN) Reseed(seed uint64) {
	for i := range h.vdcs {
		h.vdcs[i].Reseed(seed)
	}
}
