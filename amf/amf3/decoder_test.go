package amf3

import (
	"bytes"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/torresjeff/sharedobject/internal/binary64"
)

// encodeU29 is the inverse of DecodeU29, used to build fixtures.
func encodeU29(i int32) []byte {
	useNextByte := byte(0x80)
	u := uint32(i) & 0x1FFFFFFF
	switch {
	case u <= 0x7F:
		return []byte{byte(u)}
	case u <= 0x3FFF:
		return []byte{byte(u>>7) | useNextByte, byte(u & 0x7F)}
	case u <= 0x1FFFFF:
		return []byte{byte(u>>14) | useNextByte, byte(u>>7) | useNextByte, byte(u & 0x7F)}
	default:
		return []byte{byte(u>>22) | useNextByte, byte(u>>15) | useNextByte, byte(u>>8) | useNextByte, byte(u)}
	}
}

func TestDecodeU29(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		out  int32
	}{
		{"zero", []byte{0x00}, 0},
		{"oneByteMax", []byte{0x7F}, 127},
		{"twoBytesMin", []byte{0x81, 0x00}, 128},
		{"twoBytesMax", []byte{0xFF, 0x7F}, 0x3FFF},
		{"threeBytes", []byte{0x81, 0x80, 0x00}, 0x4000},
		{"threeBytesMax", []byte{0xFF, 0xFF, 0x7F}, 0x1FFFFF},
		{"fourBytes", []byte{0x80, 0xC0, 0x80, 0x00}, 0x200000},
		{"fourBytesMaxInt", []byte{0xBF, 0xFF, 0xFF, 0xFF}, MaxInt},
		{"fourBytesMinusOne", []byte{0xFF, 0xFF, 0xFF, 0xFF}, -1},
		{"fourBytesMinInt", []byte{0xC0, 0x80, 0x80, 0x00}, MinInt},
		// the top bit of a 3 byte form never makes the value negative
		{"threeBytesTopBitSet", []byte{0xC0, 0x80, 0x00}, 0x100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.in)
			got, err := DecodeU29(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.out {
				t.Errorf("got %d, want %d", got, tt.out)
			}
			if r.Len() != 0 {
				t.Errorf("expected all %d bytes to be consumed, %d left", len(tt.in), r.Len())
			}
		})
	}
}

func TestDecodeU29_ShortForms(t *testing.T) {
	// Every value below 2^21 round trips and is non-negative.
	for _, v := range []int32{0, 1, 63, 64, 127, 128, 255, 256, 0x3FFF, 0x4000, 0xFFFFF, 0x1FFFFF} {
		got, err := DecodeU29(bytes.NewReader(encodeU29(v)))
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v || got < 0 {
			t.Errorf("got %d, want %d", got, v)
		}
	}
}

func TestDecodeU29_FourByteSign(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := MinInt + rng.Int31n(MaxInt-MinInt)
		if v >= 0 && v <= 0x1FFFFF {
			continue
		}
		got, err := DecodeU29(bytes.NewReader(encodeU29(v)))
		if err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("got %d, want %d", got, v)
		}
		top := (uint32(v)>>28)&1 == 1
		if (got < 0) != top {
			t.Fatalf("value %d: negative=%v, top bit=%v", got, got < 0, top)
		}
	}
}

func TestDecodeU29_Truncated(t *testing.T) {
	for _, in := range [][]byte{{}, {0x80}, {0x80, 0x80}, {0x80, 0x80, 0x80}} {
		if _, err := DecodeU29(bytes.NewReader(in)); err != io.EOF {
			t.Errorf("% x: got %v, want %v", in, err, io.EOF)
		}
	}
}

func TestDecodeDouble(t *testing.T) {
	got, err := DecodeDouble(bytes.NewReader([]byte{0x3F, 0xF8, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.5 {
		t.Errorf("got %v, want 1.5", got)
	}
}

func TestDecodeDouble_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := []uint64{
		math.Float64bits(0),
		math.Float64bits(math.Copysign(0, -1)),
		math.Float64bits(math.Inf(1)),
		math.Float64bits(math.Inf(-1)),
		math.Float64bits(math.MaxFloat64),
		math.Float64bits(math.SmallestNonzeroFloat64),
		0x7FF8000000000001, // quiet NaN with payload
		0x7FF0000000000BAD, // signalling NaN with payload
		0xFFF8000000000000,
	}
	for i := 0; i < 200; i++ {
		samples = append(samples, math.Float64bits(rng.NormFloat64()*1e6))
	}

	for _, bits := range samples {
		var buf [8]byte
		binary64.Reversed.PutUint64(buf[:], bits)
		got, err := DecodeDouble(bytes.NewReader(buf[:]))
		if err != nil {
			t.Fatalf("decode %#x: %v", bits, err)
		}
		if math.Float64bits(got) != bits {
			t.Errorf("got %#x, want %#x", math.Float64bits(got), bits)
		}
	}
}

func TestDecodeDouble_Truncated(t *testing.T) {
	if _, err := DecodeDouble(bytes.NewReader([]byte{1, 2, 3})); err != io.ErrUnexpectedEOF {
		t.Errorf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName(TypeVectorObject); got != "vector-object" {
		t.Errorf("got %q", got)
	}
	if got := TypeName(0xFF); got != "unknown" {
		t.Errorf("got %q", got)
	}
	if IsKnownType(0x12) {
		t.Error("0x12 should not be a known type")
	}
}
