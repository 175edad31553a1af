package sharedobject

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reader is a cursor over the in-memory contents of a shared object file.
// It implements io.Reader and io.ByteReader so the amf3 codecs can read from it directly.
// A Reader is owned by a single parse and is not safe for concurrent use.
type Reader struct {
	data []byte
	n    int
	// end is the logical end of the document, set once the declared length has been read.
	// Reads never go past end nor past the buffer.
	end int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data, end: len(data)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.n
}

// SetEnd sets the logical end of the document. It may lie past the end of the buffer, in which
// case reads fail with ErrOutOfBounds once the buffer runs out. A negative end is ignored.
func (r *Reader) SetEnd(end int) {
	if end < 0 {
		return
	}
	r.end = end
}

// End returns the logical end of the document.
func (r *Reader) End() int {
	return r.end
}

// Remaining reports whether the cursor is still before the logical end of the document.
func (r *Reader) Remaining() bool {
	return r.n < r.end
}

// UnreadByte moves the cursor back by one byte.
func (r *Reader) UnreadByte() error {
	if r.n <= 0 {
		return errors.Wrap(ErrOutOfBounds, "unread at offset 0")
	}
	r.n--
	return nil
}

func (r *Reader) need(size int) error {
	if size < 0 || r.end-r.n < size {
		return errors.Wrapf(ErrOutOfBounds, "reading %d bytes at offset %d (end %d)", size, r.n, r.end)
	}
	if len(r.data)-r.n < size {
		return errors.Wrapf(ErrOutOfBounds, "reading %d bytes at offset %d, file has %d bytes", size, r.n, len(r.data))
	}
	return nil
}

// ReadByte reads and returns a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.n]
	r.n++
	return b, nil
}

// Read reads exactly len(p) bytes into p. If fewer bytes are available nothing is consumed
// and an ErrOutOfBounds error is returned.
func (r *Reader) Read(p []byte) (int, error) {
	if err := r.need(len(p)); err != nil {
		return 0, err
	}
	n := copy(p, r.data[r.n:])
	r.n += n
	return n, nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.data[r.n:])
	r.n += 2
	return v, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.n:])
	r.n += 4
	return v, nil
}

// ReadUTF8 reads length bytes and returns them as a string. The bytes must be valid UTF-8.
func (r *Reader) ReadUTF8(length int) (string, error) {
	if err := r.need(length); err != nil {
		return "", err
	}
	b := r.data[r.n : r.n+length]
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidEncoding, "string of %d bytes at offset %d", length, r.n)
	}
	r.n += length
	return string(b), nil
}
