package vp9

import (
	"math/bits"
)

// cos64Lookup holds cos(angle*pi/64) for angle 0..32, scaled by 1<<14. The
// other three quadrants of the full 128-step period follow by symmetry in
// cos64 below.
var cos64Lookup = [33]int32{
	16384, 16364, 16305, 16207, 16069, 15893, 15679, 15426,
	15137, 14811, 14449, 14053, 13623, 13160, 12665, 12140,
	11585, 11003, 10394, 9760, 9102, 8423, 7723, 7005,
	6270, 5520, 4756, 3981, 3196, 2404, 1606, 804,
	0,
}

// cos64 returns cos(angle*pi/64) in 14-bit fixed point. The angle is
// interpreted modulo one period of 128 steps.
func cos64(angle uint8) int32 {
	angle &= 127

	switch {
	case angle <= 32:
		return cos64Lookup[angle]
	case angle <= 64:
		return -cos64Lookup[64-angle]
	case angle <= 96:
		return -cos64Lookup[angle-64]
	default:
		return cos64Lookup[128-angle]
	}
}

// sin64 returns sin(angle*pi/64) in 14-bit fixed point.
func sin64(angle uint8) int32 {
	if angle < 32 {
		angle += 128
	}

	return cos64(angle - 32)
}

// round2 rounds half up after shifting out the 14 fractional bits every
// rotation result carries.
func round2(v int64) int32 {
	return int32((v + 1<<13) >> 14)
}

// brev reverses the low log2Size bits of index.
func brev(log2Size, index int) int {
	return int(bits.Reverse8(uint8(index)) >> uint(8-log2Size))
}

// butterfly rotates the pair in[inA], in[inB] by the given angle and writes
// the rounded results to out[outA], out[outB]. out and in must not alias;
// the in-place variant below exists for that case.
func butterfly(out []int32, outA, outB int, in []int32, inA, inB int, angle uint8) {
	cos := int64(cos64(angle))
	sin := int64(sin64(angle))

	out[outA] = round2(int64(in[inA])*cos - int64(in[inB])*sin)
	out[outB] = round2(int64(in[inA])*sin + int64(in[inB])*cos)
}

// butterflyFlip is butterfly with the output pair optionally swapped.
func butterflyFlip(out, in []int32, a, b int, angle uint8, flip bool) {
	if flip {
		butterfly(out, b, a, in, a, b, angle)
	} else {
		butterfly(out, a, b, in, a, b, angle)
	}
}

// butterflyBrev is butterflyFlip reading its input pair through the
// bit-reversal permutation of the given transform size, folding the DCT
// input permutation into the first rotation stage.
func butterflyBrev(out, in []int32, log2Size, a, b int, angle uint8, flip bool) {
	inA := brev(log2Size, a)
	inB := brev(log2Size, b)

	if flip {
		butterfly(out, b, a, in, inA, inB, angle)
	} else {
		butterfly(out, a, b, in, inA, inB, angle)
	}
}

// butterflyInPlace rotates a pair within a single buffer, using a
// temporary pair to satisfy butterfly's aliasing contract.
func butterflyInPlace(data []int32, a, b int, angle uint8, flip bool) {
	var t [2]int32

	if flip {
		butterfly(t[:], 1, 0, data, a, b, angle)
	} else {
		butterfly(t[:], 0, 1, data, a, b, angle)
	}

	data[a], data[b] = t[0], t[1]
}

// hadamard writes the sum and difference of in[a], in[b] to out[a], out[b].
// out and in must not alias.
func hadamard(out, in []int32, a, b int) {
	out[a] = in[a] + in[b]
	out[b] = in[a] - in[b]
}

func hadamardInPlace(data []int32, a, b int) {
	x, y := data[a], data[b]
	data[a], data[b] = x+y, x-y
}

// wideButterfly rotates a pair into the wide intermediate tier without
// rounding. The sine transforms keep intermediates at 24+bitdepth bits of
// precision; rounding happens in wideHadamard on the way back down.
func wideButterfly(out []int64, in []int32, a, b int, angle uint8, flip bool) {
	cos := int64(cos64(angle))
	sin := int64(sin64(angle))

	x := int64(in[a])*cos - int64(in[b])*sin
	y := int64(in[a])*sin + int64(in[b])*cos

	if flip {
		out[b], out[a] = x, y
	} else {
		out[a], out[b] = x, y
	}
}

// wideHadamard sums and differences a pair of wide intermediates and rounds
// the results back into the narrow tier.
func wideHadamard(out []int32, in []int64, a, b int) {
	out[a] = round2(in[a] + in[b])
	out[b] = round2(in[a] - in[b])
}
