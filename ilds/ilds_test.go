package ilds

import (
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func TestVdCorputKnownValues(t *testing.T) {
	cv.Convey("a base-2, scale-10 generator reseeded to 0", t, func() {
		vdc := DefaultVdCorput()
		vdc.Reseed(0)

		cv.Convey("pops the scaled radical inverses of 1, 2, 3, 4", func() {
			cv.So(vdc.Pop(), cv.ShouldEqual, 512)
			cv.So(vdc.Pop(), cv.ShouldEqual, 256)
			cv.So(vdc.Pop(), cv.ShouldEqual, 768)
			cv.So(vdc.Pop(), cv.ShouldEqual, 128)
		})
	})
}

func TestVdCorputReseed(t *testing.T) {
	cv.Convey("reseeding overwrites the counter outright", t, func() {
		vdc := MustVdCorput(2, 10)

		vdc.Reseed(5)
		cv.So(vdc.Pop(), cv.ShouldEqual, 384) // radical inverse of 6

		vdc.Reseed(0)
		cv.So(vdc.Pop(), cv.ShouldEqual, 512)

		cv.Convey("and a fresh generator starts as if reseeded to 0", func() {
			fresh := MustVdCorput(2, 10)
			cv.So(fresh.Pop(), cv.ShouldEqual, 512)
		})
	})
}

func TestVdCorputDeterminism(t *testing.T) {
	cv.Convey("two generators with the same parameters and seed "+
		"produce identical sequences", t, func() {

		params := []struct {
			base, scale uint32
			seed        uint64
		}{
			{2, 10, 0},
			{3, 7, 19},
			{7, 5, 100},
		}

		for _, p := range params {
			a, b := MustVdCorput(p.base, p.scale), MustVdCorput(p.base, p.scale)
			a.Reseed(p.seed)
			b.Reseed(p.seed)
			for i := 0; i < 1000; i++ {
				cv.So(a.Pop(), cv.ShouldEqual, b.Pop())
			}
		}
	})
}

func TestVdCorputInjectivityWindow(t *testing.T) {
	cv.Convey("a base-3, scale-4 generator", t, func() {
		vdc := MustVdCorput(3, 4)
		cv.So(vdc.Cap(), cv.ShouldEqual, 81)

		cv.Convey("is injective and range-bounded over its first "+
			"Cap() draws", func() {

			seen := map[uint64]bool{}
			for i := uint64(1); i <= vdc.Cap(); i++ {
				x := vdc.Pop()
				cv.So(x, cv.ShouldBeLessThan, vdc.Cap())
				cv.So(seen[x], cv.ShouldBeFalse)
				seen[x] = true
			}
		})

		cv.Convey("collides once the counter leaves the window", func() {
			vdc.Reseed(0)
			first := vdc.Pop()
			vdc.Reseed(vdc.Cap())
			cv.So(vdc.Pop(), cv.ShouldEqual, first)
		})
	})
}

func TestHaltonKnownValues(t *testing.T) {
	cv.Convey("a Halton generator with bases [2, 3] and scales [11, 7]", t,
		func() {
			h, err := NewHalton([2]uint32{2, 3}, [2]uint32{11, 7})
			cv.So(err, cv.ShouldBeNil)
			h.Reseed(0)

			cv.So(h.Pop(), cv.ShouldResemble, [2]uint64{1024, 729})
			cv.So(h.Pop(), cv.ShouldResemble, [2]uint64{512, 1458})

			cv.Convey("and reseeding realigns both dimensions", func() {
				h.Reseed(0)
				cv.So(h.Pop(), cv.ShouldResemble, [2]uint64{1024, 729})
			})
		})
}

func TestHaltonMatchesComponents(t *testing.T) {
	cv.Convey("a Halton generator advances its dimensions in "+
		"lock-step with standalone generators", t, func() {

		h, err := NewHalton([2]uint32{2, 5}, [2]uint32{10, 6})
		cv.So(err, cv.ShouldBeNil)
		v0, v1 := MustVdCorput(2, 10), MustVdCorput(5, 6)

		h.Reseed(3)
		v0.Reseed(3)
		v1.Reseed(3)
		for i := 0; i < 100; i++ {
			p := h.Pop()
			cv.So(p[0], cv.ShouldEqual, v0.Pop())
			cv.So(p[1], cv.ShouldEqual, v1.Pop())
		}
	})
}

func TestHaltonN(t *testing.T) {
	cv.Convey("a 3-dimensional HaltonN generator", t, func() {
		h, err := NewHaltonN([]uint32{2, 3, 5}, []uint32{11, 7, 5})
		cv.So(err, cv.ShouldBeNil)
		cv.So(h.Dim(), cv.ShouldEqual, 3)
		h.Reseed(0)

		// 5^5 = 3125; 1/5 of it is 625.
		cv.So(h.Pop(), cv.ShouldResemble, []uint64{1024, 729, 625})
		cv.So(h.Pop(), cv.ShouldResemble, []uint64{512, 1458, 1250})

		cv.Convey("PopAt writes into a caller-provided slice", func() {
			h.Reseed(0)
			target := make([]uint64, 3)
			h.PopAt(target)
			cv.So(target, cv.ShouldResemble, []uint64{1024, 729, 625})
		})
	})
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		base, scale uint32
		valid       bool
	}{
		{2, 10, true},
		{3, 40, true},
		{2, 63, true},
		{0, 10, false},
		{1, 10, false},
		{2, 64, false},
		{3, 41, false},
		{10, 20, false},
	}

	for i := range tests {
		vdc, err := NewVdCorput(tests[i].base, tests[i].scale)
		if tests[i].valid {
			if err != nil {
				t.Errorf("Expected NewVdCorput(%d, %d) to succeed, but got "+
					"the error '%s'.", tests[i].base, tests[i].scale, err.Error())
			} else if vdc.Cap() == 0 {
				t.Errorf("NewVdCorput(%d, %d) returned a zero Cap().",
					tests[i].base, tests[i].scale)
			}
		} else if err == nil {
			t.Errorf("Expected NewVdCorput(%d, %d) to return an error, but "+
				"it didn't.", tests[i].base, tests[i].scale)
		}
	}

	if _, err := NewHalton([2]uint32{2, 1}, [2]uint32{10, 10}); err == nil {
		t.Errorf("Expected an invalid second dimension to fail Halton " +
			"construction, but it didn't.")
	}
	if _, err := NewHaltonN([]uint32{2, 3}, []uint32{10}); err == nil {
		t.Errorf("Expected mismatched base and scale lengths to fail " +
			"HaltonN construction, but they didn't.")
	}
	if _, err := NewHaltonN([]uint32{}, []uint32{}); err == nil {
		t.Errorf("Expected a zero-dimensional HaltonN construction to " +
			"fail, but it didn't.")
	}
}

func TestMustVdCorputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected MustVdCorput(1, 10) to panic, but it didn't.")
		}
	}()
	MustVdCorput(1, 10)
}

func BenchmarkVdCorputPop(b *testing.B) {
	vdc := DefaultVdCorput()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = vdc.Pop()
	}
}

func BenchmarkHaltonPop(b *testing.B) {
	h, _ := NewHalton([2]uint32{2, 3}, [2]uint32{11, 7})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = h.Pop()
	}
}

func BenchmarkHaltonNPopAt(b *testing.B) {
	h, _ := NewHaltonN([]uint32{2, 3, 5, 7, 11, 13}, []uint32{11, 7, 5, 4, 3, 3})
	target := make([]uint64, h.Dim())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.PopAt(target)
	}
}
