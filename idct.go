package vp9

// InverseDCT applies the inverse discrete cosine transform in place to
// data[:1<<log2Size], for log2Size 2 to 5 (block lengths 4 to 32). Input is
// in natural coefficient order; the bit-reversal permutation the transform
// is defined over is folded into the first rotation stage. The
// singleCoefficient fast path may only be requested when data[0] is known
// to be the only non-zero coefficient and produces bit-identical output.
//
// An out-of-range size or a short buffer returns ErrTransformSize; block
// sizes ultimately originate from untrusted input, so this is reported as
// an error rather than a panic.
func InverseDCT(log2Size int, data []int32, singleCoefficient bool) error {
	if log2Size < 2 || log2Size > 5 {
		return ErrTransformSize
	}

	size := 1 << uint(log2Size)
	if len(data) < size {
		return ErrTransformSize
	}

	d := data[:size]

	if singleCoefficient {
		idctSingle(d)
		return nil
	}

	switch log2Size {
	case 2:
		idct4(d)
	case 3:
		idct8(d)
	case 4:
		idct16(d)
	case 5:
		idct32(d)
	}

	return nil
}

// idctSingle is the DC-only fast path: with all AC coefficients zero, every
// output sample is the rounded rotation of the DC value alone.
func idctSingle(data []int32) {
	dc := round2(int64(data[0]) * int64(sin64(16)))

	for i := range data {
		data[i] = dc
	}
}

// The transforms below are the recursive inverse DCT flattened into
// straight-line stages per block size, so each stage can be reordered for
// instruction-level parallelism without changing the rounding behavior.
// Stages alternate between two scratch buffers; the final Hadamard pass
// writes the output in natural order.

func idct4(data []int32) {
	var t1 [4]int32

	butterflyBrev(t1[:], data, 2, 0, 1, 16, true)
	butterflyBrev(t1[:], data, 2, 2, 3, 24, false)

	hadamard(data, t1[:], 0, 3)
	hadamard(data, t1[:], 1, 2)
}

func idct8(data []int32) {
	var t1, t2 [8]int32

	butterflyBrev(t1[:], data, 3, 0, 1, 16, true)
	butterflyBrev(t1[:], data, 3, 2, 3, 24, false)
	butterflyBrev(t1[:], data, 3, 4, 7, 28, false)
	butterflyBrev(t1[:], data, 3, 5, 6, 12, false)

	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)

	hadamard(data, t1[:], 0, 7)
	hadamard(data, t1[:], 1, 6)
	hadamard(data, t1[:], 2, 5)
	hadamard(data, t1[:], 3, 4)
}

func idct16(data []int32) {
	var t1, t2 [16]int32

	butterflyBrev(t1[:], data, 4, 0, 1, 16, true)
	butterflyBrev(t1[:], data, 4, 2, 3, 24, false)
	butterflyBrev(t1[:], data, 4, 4, 7, 28, false)
	butterflyBrev(t1[:], data, 4, 5, 6, 12, false)
	butterflyBrev(t1[:], data, 4, 8, 15, 30, false)
	butterflyBrev(t1[:], data, 4, 9, 14, 14, false)
	butterflyBrev(t1[:], data, 4, 10, 13, 22, false)
	butterflyBrev(t1[:], data, 4, 11, 12, 6, false)

	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)
	hadamard(t2[:], t1[:], 8, 9)
	hadamard(t2[:], t1[:], 11, 10)
	hadamard(t2[:], t1[:], 12, 13)
	hadamard(t2[:], t1[:], 15, 14)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)
	butterflyFlip(t1[:], t2[:], 14, 9, 24, true)
	butterflyFlip(t1[:], t2[:], 10, 13, 72, true)

	hadamard(t2[:], t1[:], 0, 7)
	hadamard(t2[:], t1[:], 1, 6)
	hadamard(t2[:], t1[:], 2, 5)
	hadamard(t2[:], t1[:], 3, 4)
	hadamard(t2[:], t1[:], 8, 11)
	hadamard(t2[:], t1[:], 15, 12)
	hadamard(t2[:], t1[:], 9, 10)
	hadamard(t2[:], t1[:], 14, 13)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 13, 10, 16, true)
	butterflyFlip(t1[:], t2[:], 12, 11, 16, true)

	for i := 0; i < 8; i++ {
		hadamard(data, t1[:], i, 15-i)
	}
}

func idct32(data []int32) {
	var t1, t2 [32]int32

	butterflyBrev(t1[:], data, 5, 0, 1, 16, true)
	butterflyBrev(t1[:], data, 5, 2, 3, 24, false)
	butterflyBrev(t1[:], data, 5, 4, 7, 28, false)
	butterflyBrev(t1[:], data, 5, 5, 6, 12, false)
	butterflyBrev(t1[:], data, 5, 8, 15, 30, false)
	butterflyBrev(t1[:], data, 5, 9, 14, 14, false)
	butterflyBrev(t1[:], data, 5, 10, 13, 22, false)
	butterflyBrev(t1[:], data, 5, 11, 12, 6, false)
	butterflyBrev(t1[:], data, 5, 16, 31, 31, false)
	butterflyBrev(t1[:], data, 5, 17, 30, 15, false)
	butterflyBrev(t1[:], data, 5, 18, 29, 23, false)
	butterflyBrev(t1[:], data, 5, 19, 28, 7, false)
	butterflyBrev(t1[:], data, 5, 20, 27, 27, false)
	butterflyBrev(t1[:], data, 5, 21, 26, 11, false)
	butterflyBrev(t1[:], data, 5, 22, 25, 19, false)
	butterflyBrev(t1[:], data, 5, 23, 24, 3, false)

	hadamard(t2[:], t1[:], 0, 3)
	hadamard(t2[:], t1[:], 1, 2)
	hadamard(t2[:], t1[:], 4, 5)
	hadamard(t2[:], t1[:], 7, 6)
	hadamard(t2[:], t1[:], 8, 9)
	hadamard(t2[:], t1[:], 11, 10)
	hadamard(t2[:], t1[:], 12, 13)
	hadamard(t2[:], t1[:], 15, 14)
	hadamard(t2[:], t1[:], 16, 17)
	hadamard(t2[:], t1[:], 19, 18)
	hadamard(t2[:], t1[:], 20, 21)
	hadamard(t2[:], t1[:], 23, 22)
	hadamard(t2[:], t1[:], 24, 25)
	hadamard(t2[:], t1[:], 27, 26)
	hadamard(t2[:], t1[:], 28, 29)
	hadamard(t2[:], t1[:], 31, 30)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 6, 5, 16, true)
	butterflyFlip(t1[:], t2[:], 14, 9, 24, true)
	butterflyFlip(t1[:], t2[:], 10, 13, 72, true)
	butterflyFlip(t1[:], t2[:], 30, 17, 28, true)
	butterflyFlip(t1[:], t2[:], 22, 25, 84, true)
	butterflyFlip(t1[:], t2[:], 26, 21, 12, true)
	butterflyFlip(t1[:], t2[:], 18, 29, 68, true)

	hadamard(t2[:], t1[:], 0, 7)
	hadamard(t2[:], t1[:], 1, 6)
	hadamard(t2[:], t1[:], 2, 5)
	hadamard(t2[:], t1[:], 3, 4)
	hadamard(t2[:], t1[:], 8, 11)
	hadamard(t2[:], t1[:], 15, 12)
	hadamard(t2[:], t1[:], 9, 10)
	hadamard(t2[:], t1[:], 14, 13)
	hadamard(t2[:], t1[:], 16, 19)
	hadamard(t2[:], t1[:], 23, 20)
	hadamard(t2[:], t1[:], 24, 27)
	hadamard(t2[:], t1[:], 31, 28)
	hadamard(t2[:], t1[:], 17, 18)
	hadamard(t2[:], t1[:], 22, 21)
	hadamard(t2[:], t1[:], 25, 26)
	hadamard(t2[:], t1[:], 30, 29)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 13, 10, 16, true)
	butterflyFlip(t1[:], t2[:], 12, 11, 16, true)
	butterflyFlip(t1[:], t2[:], 29, 18, 24, true)
	butterflyFlip(t1[:], t2[:], 21, 26, 72, true)
	butterflyFlip(t1[:], t2[:], 28, 19, 24, true)
	butterflyFlip(t1[:], t2[:], 20, 27, 72, true)

	hadamard(t2[:], t1[:], 0, 15)
	hadamard(t2[:], t1[:], 1, 14)
	hadamard(t2[:], t1[:], 2, 13)
	hadamard(t2[:], t1[:], 3, 12)
	hadamard(t2[:], t1[:], 4, 11)
	hadamard(t2[:], t1[:], 5, 10)
	hadamard(t2[:], t1[:], 6, 9)
	hadamard(t2[:], t1[:], 7, 8)
	hadamard(t2[:], t1[:], 16, 23)
	hadamard(t2[:], t1[:], 31, 24)
	hadamard(t2[:], t1[:], 17, 22)
	hadamard(t2[:], t1[:], 30, 25)
	hadamard(t2[:], t1[:], 18, 21)
	hadamard(t2[:], t1[:], 29, 26)
	hadamard(t2[:], t1[:], 19, 20)
	hadamard(t2[:], t1[:], 28, 27)

	t1 = t2
	butterflyFlip(t1[:], t2[:], 27, 20, 16, true)
	butterflyFlip(t1[:], t2[:], 26, 21, 16, true)
	butterflyFlip(t1[:], t2[:], 25, 22, 16, true)
	butterflyFlip(t1[:], t2[:], 24, 23, 16, true)

	for i := 0; i < 16; i++ {
		hadamard(data, t1[:], i, 31-i)
	}
}
