package vp9

import (
	"math/bits"
)

const (
	// reserveBytes is the number of look-ahead bytes loaded into the value
	// register per refill, below the active 8-bit decoding window.
	reserveBytes = 7
	reserveBits  = reserveBytes * 8
)

// BooleanDecoder is the VP9 boolean (range) arithmetic decoder. It narrows
// a working interval on every decoded symbol using a caller-supplied
// probability, renormalizing the interval back into an 8-bit window and
// refilling a multi-byte look-ahead register in bulk.
//
// The decoder borrows the input slice for its lifetime and never allocates.
// One instance decodes one independently coded byte range (a frame or tile
// partition); instances are not safe for concurrent use.
type BooleanDecoder struct {
	data      []byte
	position  int
	bytesLeft int

	// value holds the active decoding window in its top 8 bits and up to
	// reserveBits of not-yet-consumed look-ahead bits below it.
	value     uint64
	validBits int

	rng      uint32
	overread bool
}

// NewBooleanDecoder creates a decoder over the given byte range and decodes
// the mandatory marker bit. A set marker bit means the range is not a valid
// boolean-coded partition and fails with ErrMarkerNonZero.
func NewBooleanDecoder(data []byte) (*BooleanDecoder, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	d := &BooleanDecoder{
		data:      data,
		bytesLeft: len(data),
		rng:       255,
	}
	d.fillReservoir()

	if d.ReadBool(128) {
		return nil, ErrMarkerNonZero
	}

	return d, nil
}

// fillReservoir loads look-ahead bytes into the value register, most
// significant byte first. Once the input is exhausted the overread flag is
// set and the register is left as is; further reads behave as if the stream
// continued with zero bits, and Finish reports the error.
func (d *BooleanDecoder) fillReservoir() {
	if d.validBits > 8 {
		return
	}

	if d.bytesLeft == 0 {
		d.overread = true
		return
	}

	n := d.bytesLeft
	if n > reserveBytes {
		n = reserveBytes
	}

	var v uint64
	for _, b := range d.data[d.position : d.position+n] {
		v = v<<8 | uint64(b)
	}
	v <<= uint(64 - 8*n)

	d.position += n
	d.bytesLeft -= n

	d.value |= v >> uint(d.validBits)
	d.validBits += 8 * n
}

// ReadBool decodes one boolean symbol. The probability is the chance of
// returning false, scaled to 256. ReadBool itself never fails; input
// exhaustion is recorded in the sticky overread flag and surfaces at Finish.
func (d *BooleanDecoder) ReadBool(probability uint8) bool {
	split := 1 + ((d.rng-1)*uint32(probability))>>8
	// The value being compared resides in the top 8 bits of the value
	// register, so the split is shifted up to the same window.
	splitShifted := uint64(split) << reserveBits

	var result bool
	if d.value < splitShifted {
		d.rng = split
	} else {
		d.rng -= split
		d.value -= splitShifted
		result = true
	}

	shift := bits.LeadingZeros8(uint8(d.rng))
	d.rng <<= uint(shift)
	d.value <<= uint(shift)
	d.validBits -= shift

	d.fillReservoir()

	return result
}

// ReadLiteral decodes an unsigned integer of the given bit width, most
// significant bit first, with the fixed non-adapting probability 128.
func (d *BooleanDecoder) ReadLiteral(count uint8) uint32 {
	var value uint32
	for i := uint8(0); i < count; i++ {
		value <<= 1
		if d.ReadBool(128) {
			value++
		}
	}

	return value
}

// Finish validates the end of the byte range after the last symbol has been
// decoded. It fails with ErrOverread if any read ran past the input, and
// with ErrNonZeroPadding unless the unconsumed look-ahead bits and every
// unread trailing byte are zero.
//
// Bitstream conformance additionally requires encoders to pad such that the
// final coded byte does not collide with a superframe marker pattern
// ((b & 0xe0) == 0xc0). That rule belongs to the superframe layer and is
// not checked here.
func (d *BooleanDecoder) Finish() error {
	if d.overread {
		return ErrOverread
	}

	if d.value != 0 {
		return ErrNonZeroPadding
	}

	for _, b := range d.data[d.position:] {
		if b != 0 {
			return ErrNonZeroPadding
		}
	}

	return nil
}
