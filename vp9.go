// Package vp9 implements the entropy-decoding and inverse-transform core of
// a VP9 video decoder: a boolean (range) arithmetic decoder and the
// fixed-point inverse DCT/ADST transform family.
//
// The BooleanDecoder turns a compressed byte range (a frame or tile
// partition) into a sequence of probability-weighted booleans and
// fixed-width literals. The transform functions convert dequantized
// frequency-domain coefficients into spatial-domain pixel residuals,
// bit-exactly per the VP9 bitstream specification.
//
// Frame parsing, probability adaptation, prediction, dequantization and
// loop filtering are left to the caller. A typical reconstruction loop
// decodes coefficients through a BooleanDecoder, dequantizes them, applies
// the row transform to each row and the column transform to each column of
// the block (see TransformSet), and adds the residuals to the prediction.
//
// Neither the decoder nor the transforms allocate or share state; one
// BooleanDecoder per tile and one buffer per block may be used from
// concurrent goroutines without synchronization.
package vp9

import (
	"errors"
)

// Standard error types for coefficient decoding.
var (
	ErrEmptyInput     = errors.New("boolean decoder input is empty")
	ErrMarkerNonZero  = errors.New("boolean decoder marker bit is non-zero")
	ErrOverread       = errors.New("boolean decoder read past the end of its data")
	ErrNonZeroPadding = errors.New("boolean decoder has a non-zero padding byte")
	ErrTransformSize  = errors.New("unsupported transform size")
)

// TransformType selects one of the two 1-D inverse transform families.
type TransformType uint8

const (
	// TransformDCT is the inverse discrete cosine transform, sizes 4 to 32.
	TransformDCT TransformType = iota
	// TransformADST is the inverse asymmetric discrete sine transform, sizes 4 to 16.
	TransformADST
)

// TransformSet carries the row/column transform pair signaled in the
// bitstream for one block. It has no state of its own; it only selects
// which transform function the reconstruction loop invokes per direction.
type TransformSet struct {
	Row    TransformType
	Column TransformType
}

// InverseTransform1D applies the selected 1-D inverse transform in place to
// data[:1<<log2Size]. The singleCoefficient fast path may only be requested
// when the caller knows from the coefficient count that data[0] is the only
// non-zero value; its output is bit-identical to the full transform.
func InverseTransform1D(kind TransformType, log2Size int, data []int32, singleCoefficient bool) error {
	if kind == TransformADST {
		return InverseADST(log2Size, data, singleCoefficient)
	}

	return InverseDCT(log2Size, data, singleCoefficient)
}
