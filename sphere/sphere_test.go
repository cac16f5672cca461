package sphere

import (
	"math"
	"testing"

	"github.com/luk036/lds-gen/lds"
)

const testEps = 1e-9

func pointsEq(xs, ys []float64) bool {
	if len(xs) != len(ys) { return false }
	for i := range xs {
		if math.Abs(xs[i]-ys[i]) > testEps { return false }
	}
	return true
}

func radius(p []float64) float64 {
	sum := 0.0
	for _, c := range p { sum += c * c }
	return math.Sqrt(sum)
}

func TestTables(t *testing.T) {
	if len(xTable) != numPoints {
		t.Errorf("The sample table has %d points instead of %d.",
			len(xTable), numPoints)
	}
	if xTable[0] != 0 || math.Abs(xTable[numPoints-1]-math.Pi) > testEps {
		t.Errorf("The sample table spans [%g, %g] instead of [0, pi].",
			xTable[0], xTable[numPoints-1])
	}

	for _, n := range []int{2, 3, 4, 5} {
		table := tp(n)
		if len(table) != numPoints {
			t.Errorf("tp(%d) has %d points instead of %d.",
				n, len(table), numPoints)
		}
		for i := 1; i < len(table); i++ {
			if table[i] <= table[i-1] {
				t.Errorf("tp(%d) is not strictly increasing at index %d.",
					n, i)
			}
		}
	}
}

func TestSphere3KnownValues(t *testing.T) {
	s := NewSphere3([3]int{2, 3, 5})
	s.Reseed(0)

	seq := [][]float64{
		{0.8966646826186098, 0.2913440162992141,
			-0.33333333333333337, 6.123233995736766e-17},
		{0.5069371683663506, -0.697739153354296,
			0.30492319090118075, 0.4039760251002259},
		{-0.33795811224423367, -0.4651594355695309,
			-0.7114874454360887, -0.4039760251002258},
	}
	for i := range seq {
		out := s.Pop()
		if !pointsEq(out, seq[i]) {
			t.Errorf("Pop() %d = %v, but I expected %v.", i+1, out, seq[i])
		}
	}
}

func TestSphere3Reseed(t *testing.T) {
	s := NewSphere3([3]int{2, 3, 5})
	s.Reseed(0)
	first := s.Pop()
	second := s.Pop()

	s.Reseed(0)
	if out := s.Pop(); !pointsEq(out, first) {
		t.Errorf("Pop() after a repeated Reseed(0) = %v instead of %v.",
			out, first)
	}

	// Reseed(1) skips exactly the first point.
	s.Reseed(1)
	if out := s.Pop(); !pointsEq(out, second) {
		t.Errorf("Pop() after Reseed(1) = %v instead of %v.", out, second)
	}
}

func TestSphere3OnSphere(t *testing.T) {
	bases := [][3]int{{2, 3, 5}, {2, 5, 3}, {3, 2, 7}}
	for _, base := range bases {
		s := NewSphere3(base)
		s.Reseed(0)
		for i := 0; i < 1000; i++ {
			out := s.Pop()
			if r := radius(out); math.Abs(r-1) > testEps {
				t.Errorf("Bases %v: Pop() %d = %v is off the unit sphere "+
					"(r = %g).", base, i+1, out, r)
			}
		}
	}
}

func TestSphereNKnownValues(t *testing.T) {
	s := NewSphereN([]int{2, 3, 5, 7})
	s.Reseed(0)

	seq := [][]float64{
		{0.6031153874276115, 0.4809684718990214, -0.5785601510223212,
			0.2649326520763179, 6.123233995736766e-17},
		{0.8637599808754701, -0.19714757907418667, -0.18084851769929866,
			-0.24844094775703415, 0.34730740940375543},
	}
	for i := range seq {
		out := s.Pop()
		if !pointsEq(out, seq[i]) {
			t.Errorf("Pop() %d = %v, but I expected %v.", i+1, out, seq[i])
		}
	}

	s5 := NewSphereN([]int{2, 3, 5, 7, 11})
	s5.Reseed(0)
	want := []float64{0.32090412427462717, 0.49933656418440564,
		-0.6058022068814627, 0.4791399826477607, 0.22607985725822774,
		6.123233995736766e-17}
	if out := s5.Pop(); !pointsEq(out, want) {
		t.Errorf("First 5-base Pop() = %v, but I expected %v.", out, want)
	}
}

func TestSphereNMatchesSphere3(t *testing.T) {
	// Three bases make SphereN and Sphere3 the same sequence.
	sn := NewSphereN([]int{2, 3, 5})
	s3 := NewSphere3([3]int{2, 3, 5})
	sn.Reseed(7)
	s3.Reseed(7)

	for i := 0; i < 100; i++ {
		a, b := sn.Pop(), s3.Pop()
		if !pointsEq(a, b) {
			t.Errorf("SphereN and Sphere3 diverge at step %d: %v vs %v.",
				i+1, a, b)
		}
	}
}

func TestSphereNDimensions(t *testing.T) {
	for dims := 3; dims <= 6; dims++ {
		base := make([]int, dims)
		for i := range base { base[i] = lds.PrimeTable[i] }

		s := NewSphereN(base)
		s.Reseed(0)
		for i := 0; i < 200; i++ {
			out := s.Pop()
			if len(out) != dims+1 {
				t.Errorf("%d bases produced a %d-coordinate point.",
					dims, len(out))
			}
			if r := radius(out); math.Abs(r-1) > testEps {
				t.Errorf("%d bases: Pop() %d is off the unit sphere "+
					"(r = %g).", dims, i+1, r)
			}
		}
	}
}

func TestSphereNPanicsOnTooFewBases(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected NewSphereN with two bases to panic, but " +
				"it didn't.")
		}
	}()
	NewSphereN([]int{2, 3})
}

func BenchmarkSphere3Pop(b *testing.B) {
	s := NewSphere3([3]int{2, 3, 5})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Pop()
	}
}

func BenchmarkSphereNPop(b *testing.B) {
	s := NewSphereN([]int{2, 3, 5, 7, 11, 13})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Pop()
	}
}
