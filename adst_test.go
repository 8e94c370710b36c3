package vp9

import (
	"testing"
)

// The golden vectors below are pre-calculated from a known-good
// implementation of the inverse ADST schedules.
var adstGolden = []struct {
	log2Size int
	in       []int32
	want     []int32
}{
	{
		2,
		[]int32{-1719, -596, 177, -782},
		[]int32{-1350, -859, -2186, -750},
	},
	{
		3,
		[]int32{411, -782, 1757, -1712, 1115, 815, 2014, 751},
		[]int32{3810, -1797, 190, 1804, -1991, -1748, -1256, 4864},
	},
	{
		4,
		[]int32{
			1786, 1850, -1677, 1809, -656, 1553, 1539, 374,
			205, -1034, -528, 1362, 1524, -1070, -1204, 1926,
		},
		[]int32{
			3476, 2752, 2671, -668, -1537, 2152, 7517, -3558,
			6825, -391, 4489, 5163, 4225, 404, -2975, -3940,
		},
	},
}

func TestInverseADST(t *testing.T) {
	for _, g := range adstGolden {
		data := make([]int32, len(g.in))
		copy(data, g.in)

		if err := InverseADST(g.log2Size, data, false); err != nil {
			t.Fatalf("size %d: %v", 1<<g.log2Size, err)
		}

		for i := range data {
			if data[i] != g.want[i] {
				t.Errorf("size %d: output %d: got %d, want %d", 1<<g.log2Size, i, data[i], g.want[i])
			}
		}
	}
}

func TestInverseADSTZero(t *testing.T) {
	for log2Size := 2; log2Size <= 4; log2Size++ {
		data := make([]int32, 1<<log2Size)

		if err := InverseADST(log2Size, data, false); err != nil {
			t.Fatal(err)
		}

		for i, v := range data {
			if v != 0 {
				t.Errorf("size %d: output %d: got %d, want 0", 1<<log2Size, i, v)
			}
		}
	}
}

func TestInverseADSTSingleCoefficient(t *testing.T) {
	for log2Size := 2; log2Size <= 4; log2Size++ {
		for _, c := range dcTestValues {
			full := make([]int32, 1<<log2Size)
			fast := make([]int32, 1<<log2Size)
			full[0] = c
			fast[0] = c

			if err := InverseADST(log2Size, full, false); err != nil {
				t.Fatal(err)
			}
			if err := InverseADST(log2Size, fast, true); err != nil {
				t.Fatal(err)
			}

			for i := range full {
				if fast[i] != full[i] {
					t.Errorf("size %d, dc %d: output %d: fast path %d, full transform %d",
						1<<log2Size, c, i, fast[i], full[i])
				}
			}
		}
	}
}

func TestInverseADSTSize(t *testing.T) {
	buf := make([]int32, 32)

	for _, log2Size := range []int{-1, 0, 1, 5, 6} {
		if err := InverseADST(log2Size, buf, false); err != ErrTransformSize {
			t.Errorf("log2Size %d: got %v, want %v", log2Size, err, ErrTransformSize)
		}
	}

	if err := InverseADST(4, make([]int32, 8), false); err != ErrTransformSize {
		t.Errorf("short buffer: got %v, want %v", err, ErrTransformSize)
	}
}
