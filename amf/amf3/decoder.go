package amf3

import (
	"io"

	"github.com/torresjeff/sharedobject/internal/binary64"
)

// DecodeU29 reads an AMF3 variable length integer from r.
// The high bit of the first 3 bytes is used as a flag to determine whether the next byte is part of the integer.
// If all 3 flags are set, a 4th byte follows and all 8 of its bits are data, for a total of 29 data bits.
// Only the 4 byte form can be negative: the 29 bits are then read as a two's complement integer.
// Shorter forms are always non-negative.
func DecodeU29(r io.ByteReader) (int32, error) {
	var val int32
	dataBits := 0
	finished := false
	for i := 0; i < 3; i++ {
		part, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		val = (val << 7) | int32(part&0x7F)
		dataBits += 7
		if part&0x80 == 0 {
			finished = true
			break
		}
	}
	if !finished {
		// a 4 byte integer, uses all 8 bits of the last byte completely
		part, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		val = (val << 8) | int32(part)
		dataBits += 8
	}

	if dataBits == 29 && val>>28 == 1 {
		// Sign extend from bit 28
		val = int32(uint32(val) | 0xE0000000)
	}
	return val, nil
}

// DecodeDouble reads an 8 byte IEEE-754 double from r.
// Shared object files store it in big endian order.
func DecodeDouble(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary64.Reversed.Float64(buf[:]), nil
}
