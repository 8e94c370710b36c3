package vp9

import (
	"testing"
)

// The golden vectors below are pre-calculated from a known-good
// implementation of the flattened inverse DCT schedules.
var idctGolden = []struct {
	log2Size int
	in       []int32
	want     []int32
}{
	{
		2,
		[]int32{1562, -1091, -1987, -1306},
		[]int32{-1809, 3298, 1720, 1207},
	},
	{
		3,
		[]int32{-1762, -1361, -1242, 857, -109, -1906, -1796, -1919},
		[]int32{-5213, 1652, -5917, 68, 956, 1211, -1622, -1103},
	},
	{
		4,
		[]int32{
			787, 1918, 1749, -832, -1301, -549, -1111, -1929,
			1939, -2, -1520, 1768, -1487, -1320, -1672, 160,
		},
		[]int32{
			-620, 5531, 2445, 8818, 365, -144, -514, -1053,
			2125, -7546, -3986, 4365, 1248, -5079, 2773, 176,
		},
	},
	{
		5,
		[]int32{
			-1532, 429, 1892, 862, 134, -7, -410, 1666,
			-1890, -1470, -2001, 684, -871, 1825, 1043, -680,
			-1605, -1424, 2019, -705, -1431, -286, -867, -1826,
			788, -1140, -892, 453, 1672, -1724, 1361, 219,
		},
		[]int32{
			-3202, 6293, 1534, 1729, 7187, -2466, -2759, -6846,
			-4206, 3657, 4850, -3792, -9662, -3081, -839, -8629,
			-3377, -925, 8579, -7230, -2000, 1188, -9347, 1370,
			-726, -171, -5720, 4793, 2791, 7140, -7101, -3688,
		},
	},
}

func TestInverseDCT(t *testing.T) {
	for _, g := range idctGolden {
		data := make([]int32, len(g.in))
		copy(data, g.in)

		if err := InverseDCT(g.log2Size, data, false); err != nil {
			t.Fatalf("size %d: %v", 1<<g.log2Size, err)
		}

		for i := range data {
			if data[i] != g.want[i] {
				t.Errorf("size %d: output %d: got %d, want %d", 1<<g.log2Size, i, data[i], g.want[i])
			}
		}
	}
}

func TestInverseDCTZero(t *testing.T) {
	for log2Size := 2; log2Size <= 5; log2Size++ {
		data := make([]int32, 1<<log2Size)

		if err := InverseDCT(log2Size, data, false); err != nil {
			t.Fatal(err)
		}

		for i, v := range data {
			if v != 0 {
				t.Errorf("size %d: output %d: got %d, want 0", 1<<log2Size, i, v)
			}
		}
	}
}

// dcTestValues spans the legal coefficient magnitude range for the DC-only
// fast-path equivalence tests.
var dcTestValues = []int32{
	-8192, -4096, -1000, -40, -33, -26, -19, -12, -5, -1,
	0, 1, 5, 12, 19, 26, 33, 40, 255, 1000, 4095, 8191,
}

func TestInverseDCTSingleCoefficient(t *testing.T) {
	for log2Size := 2; log2Size <= 5; log2Size++ {
		for _, c := range dcTestValues {
			full := make([]int32, 1<<log2Size)
			fast := make([]int32, 1<<log2Size)
			full[0] = c
			fast[0] = c

			if err := InverseDCT(log2Size, full, false); err != nil {
				t.Fatal(err)
			}
			if err := InverseDCT(log2Size, fast, true); err != nil {
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

func TestInverseDCTSize(t *testing.T) {
	buf := make([]int32, 32)

	for _, log2Size := range []int{-1, 0, 1, 6, 7} {
		if err := InverseDCT(log2Size, buf, false); err != ErrTransformSize {
			t.Errorf("log2Size %d: got %v, want %v", log2Size, err, ErrTransformSize)
		}
	}

	// A buffer shorter than the block length is rejected the same way.
	if err := InverseDCT(5, make([]int32, 16), false); err != ErrTransformSize {
		t.Errorf("short buffer: got %v, want %v", err, ErrTransformSize)
	}
}

// TestInverseDCTAllOnes runs the separable row-then-column composition on
// the 4x4 all-ones coefficient block, the standard worked example for the
// fixed-point rounding behavior. The expected residuals are exact integers,
// not floating approximations.
func TestInverseDCTAllOnes(t *testing.T) {
	want := [16]int32{
		6, -2, 2, 0,
		-1, 1, -1, 0,
		1, -1, 1, 0,
		0, 0, 0, 0,
	}

	var block [16]int32
	for i := range block {
		block[i] = 1
	}

	for row := 0; row < 4; row++ {
		if err := InverseDCT(2, block[4*row:4*row+4], false); err != nil {
			t.Fatal(err)
		}
	}

	var column [4]int32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			column[row] = block[4*row+col]
		}

		if err := InverseDCT(2, column[:], false); err != nil {
			t.Fatal(err)
		}

		for row := 0; row < 4; row++ {
			block[4*row+col] = column[row]
		}
	}

	if block != want {
		t.Errorf("got %v, want %v", block, want)
	}
}
