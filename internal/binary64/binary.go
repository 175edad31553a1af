package binary64

import (
	"encoding/binary"
	"math"
)

// Reversed reads 64-bit values whose bytes are stored in the opposite order of the host's little endian layout.
var Reversed reversed

type reversed struct{}

func (reversed) Uint64(b []byte) uint64 {
	_ = b[7] // early bounds check to guarantee safety of reads below
	var swapped [8]byte
	for i := 0; i < 8; i++ {
		swapped[i] = b[7-i]
	}
	return binary.LittleEndian.Uint64(swapped[:])
}

func (r reversed) Float64(b []byte) float64 {
	return math.Float64frombits(r.Uint64(b))
}

func (reversed) PutUint64(b []byte, v uint64) {
	_ = b[7] // early bounds check to guarantee safety of writes below
	var swapped [8]byte
	binary.LittleEndian.PutUint64(swapped[:], v)
	for i := 0; i < 8; i++ {
		b[i] = swapped[7-i]
	}
}

func (r reversed) PutFloat64(b []byte, f float64) {
	r.PutUint64(b, math.Float64bits(f))
}
