package vp9

// sinPi1..sinPi4 are sin(k*pi/9) scaled by 1<<14, the constants of the
// closed-form 4-point inverse ADST.
const (
	sinPi1 = 5283
	sinPi2 = 9929
	sinPi3 = 13377
	sinPi4 = 15212
)

// InverseADST applies the inverse asymmetric discrete sine transform in
// place to data[:1<<log2Size], for log2Size 2 to 4 (block lengths 4 to 16).
// The singleCoefficient fast path may only be requested when data[0] is
// known to be the only non-zero coefficient and produces bit-identical
// output.
//
// An out-of-range size or a short buffer returns ErrTransformSize.
func InverseADST(log2Size int, data []int32, singleCoefficient bool) error {
	if log2Size < 2 || log2Size > 4 {
		return ErrTransformSize
	}

	size := 1 << uint(log2Size)
	if len(data) < size {
		return ErrTransformSize
	}

	d := data[:size]

	if singleCoefficient {
		switch log2Size {
		case 2:
			adstSingle4(d)
		case 3:
			adstSingle8(d)
		case 4:
			adstSingle16(d)
		}

		return nil
	}

	switch log2Size {
	case 2:
		adst4(d)
	case 3:
		adst8(d)
	case 4:
		adst16(d)
	}

	return nil
}

// adstPermuteInput applies the ADST input interleave in place: even
// positions receive the inputs in reverse order, odd positions in forward
// order.
func adstPermuteInput(data []int32) {
	var c [16]int32
	copy(c[:], data)

	n := len(data)
	for i := 0; i < n; i += 2 {
		data[i] = c[n-1-i]
		data[i+1] = c[i]
	}
}

// adstPermuteOutput applies the ADST output permutation from src into data
// and negates outputs 1, 3, n-3 and n-1. The permutation is the XOR fold of
// the bit-reversed index.
func adstPermuteOutput(data, src []int32, log2Size int) {
	max := (1 << uint(log2Size)) - 1

	for to := 0; to <= max; to++ {
		from := brev(log2Size, to)
		from ^= (from << 1) & max

		v := src[from]
		if to == 1 || to == 3 || to == max || to == max-2 {
			v = -v
		}

		data[to] = v
	}
}

// adst4 is the closed-form 4-point inverse ADST.
func adst4(data []int32) {
	s0 := sinPi1 * int64(data[0])
	s1 := sinPi2 * int64(data[0])
	s2 := sinPi3 * int64(data[1])
	s3 := sinPi4 * int64(data[2])
	s4 := sinPi1 * int64(data[2])
	s5 := sinPi2 * int64(data[3])
	s6 := sinPi4 * int64(data[3])
	s7 := sinPi3 * int64(data[0]-data[2]+data[3])

	x0 := s0 + s3 + s5
	x1 := s1 - s4 - s6
	x2 := s7
	x3 := s2

	data[0] = round2(x0 + x3)
	data[1] = round2(x1 + x3)
	data[2] = round2(x2)
	data[3] = round2(x0 + x1 - x3)
}

func adst8(data []int32) {
	var wide [8]int64

	adstPermuteInput(data)

	for i := 0; i < 4; i++ {
		wideButterfly(wide[:], data, 2*i, 1+2*i, uint8(30-8*i), true)
	}
	for i := 0; i < 4; i++ {
		wideHadamard(data, wide[:], i, 4+i)
	}

	for i := 0; i < 2; i++ {
		wideButterfly(wide[:], data, 4+3*i, 5+i, uint8(24-16*i), true)
	}
	for i := 0; i < 2; i++ {
		wideHadamard(data, wide[:], 4+i, 6+i)
	}

	for i := 0; i < 2; i++ {
		hadamardInPlace(data, i, 2+i)
	}
	for i := 0; i < 2; i++ {
		butterflyInPlace(data, 2+4*i, 3+4*i, 16, true)
	}

	var c [8]int32
	copy(c[:], data)
	adstPermuteOutput(data, c[:], 3)
}

func adst16(data []int32) {
	var wide [16]int64

	adstPermuteInput(data)

	for i := 0; i < 8; i++ {
		wideButterfly(wide[:], data, 2*i, 1+2*i, uint8(31-4*i), true)
	}
	for i := 0; i < 8; i++ {
		wideHadamard(data, wide[:], i, 8+i)
	}

	for i := 0; i < 4; i++ {
		wideButterfly(wide[:], data, 8+2*i, 9+2*i, uint8(128+28-16*i), true)
	}
	for i := 0; i < 4; i++ {
		wideHadamard(data, wide[:], 8+i, 12+i)
	}

	for i := 0; i < 4; i++ {
		hadamardInPlace(data, i, 4+i)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wideButterfly(wide[:], data, 4+8*i+3*j, 5+8*i+j, uint8(24-16*j), true)
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wideHadamard(data, wide[:], 4+8*j+i, 6+8*j+i)
		}
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			hadamardInPlace(data, 8*j+i, 2+8*j+i)
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			butterflyInPlace(data, 2+4*j+8*i, 3+4*j+8*i, uint8(48+64*(i^j)), false)
		}
	}

	var c [16]int32
	copy(c[:], data)
	adstPermuteOutput(data, c[:], 4)
}

// adstSingle4 is the DC-only fast path of the 4-point inverse ADST.
func adstSingle4(data []int32) {
	s0 := sinPi1 * int64(data[0])
	s1 := sinPi2 * int64(data[0])
	s2 := sinPi3 * int64(data[0])
	s3 := s0 + s1

	data[0] = round2(s0)
	data[1] = round2(s1)
	data[2] = round2(s2)
	data[3] = round2(s3)
}

// adstSingle8 is the DC-only fast path of the 8-point inverse ADST. With a
// single input value, only the rotations fed by it survive; the surviving
// chain is computed directly and passed through the output permutation.
func adstSingle8(data []int32) {
	var im [8]int32

	cos := int64(cos64(30))
	sin := int64(sin64(30))
	im[0] = round2(int64(data[0]) * cos)
	im[1] = round2(int64(-data[0]) * sin)

	cos = int64(cos64(16))
	sin = int64(sin64(16))
	im[2] = round2(int64(im[0])*sin + int64(im[1])*cos)
	im[3] = round2(int64(im[0])*cos - int64(im[1])*sin)

	cos = int64(cos64(24))
	sin = int64(sin64(24))
	im[4] = round2(int64(im[0])*sin + int64(im[1])*cos)
	im[5] = round2(int64(im[0])*cos - int64(im[1])*sin)

	cos = int64(cos64(16))
	sin = int64(sin64(16))
	im[6] = round2(int64(im[4])*sin + int64(im[5])*cos)
	im[7] = round2(int64(im[4])*cos - int64(im[5])*sin)

	adstPermuteOutput(data, im[:], 3)
}

// adstSingle16 is the DC-only fast path of the 16-point inverse ADST.
func adstSingle16(data []int32) {
	var im [16]int32

	cos := int64(cos64(31))
	sin := int64(sin64(31))
	s0 := round2(int64(data[0]) * cos)
	s1 := round2(int64(-data[0]) * sin)
	im[0] = s0
	im[1] = s1

	cos = int64(cos64(48))
	sin = int64(sin64(48))
	im[2] = round2(int64(s0)*cos - int64(s1)*sin)
	im[3] = round2(int64(s0)*sin + int64(s1)*cos)

	cos = int64(cos64(24))
	sin = int64(sin64(24))
	s5 := round2(int64(s0)*cos - int64(s1)*sin)
	s4 := round2(int64(s0)*sin + int64(s1)*cos)
	im[4] = s4
	im[5] = s5

	cos = int64(cos64(112))
	sin = int64(sin64(112))
	im[6] = round2(int64(s4)*cos - int64(s5)*sin)
	im[7] = round2(int64(s4)*sin + int64(s5)*cos)

	cos = int64(cos64(28))
	sin = int64(sin64(28))
	s9 := round2(int64(s0)*cos - int64(s1)*sin)
	s8 := round2(int64(s0)*sin + int64(s1)*cos)
	im[8] = s8
	im[9] = s9

	cos = int64(cos64(112))
	sin = int64(sin64(112))
	im[10] = round2(int64(s8)*cos - int64(s9)*sin)
	im[11] = round2(int64(s8)*sin + int64(s9)*cos)

	cos = int64(cos64(24))
	sin = int64(sin64(24))
	s13 := round2(int64(s8)*cos - int64(s9)*sin)
	s12 := round2(int64(s8)*sin + int64(s9)*cos)
	im[12] = s12
	im[13] = s13

	cos = int64(cos64(48))
	sin = int64(sin64(48))
	im[14] = round2(int64(s12)*cos - int64(s13)*sin)
	im[15] = round2(int64(s12)*sin + int64(s13)*cos)

	adstPermuteOutput(data, im[:], 4)
}
