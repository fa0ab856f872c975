package vpack

import (
	"errors"
	"io"
)

var (
	ErrShortBuffer = errors.New("vpack: short buffer")
	ErrVersion     = errors.New("vpack: unknown version")
	ErrTrailing    = errors.New("vpack: trailing bytes")
	ErrInvalid     = errors.New("vpack: invalid value")
)

// Buffer is a byte buffer used to serialize data into, or
// deserialize data from, depending on Writing.
type Buffer struct {
	Data    []byte
	Pos     int // reading position; not used for writing
	Writing bool

	// Err is the first error hit while reading. Once set, reads return
	// zero values and pack functions become no-ops on the data.
	Err error
}

// NewReader prepares a Buffer for deserializing data from
// the backing byte buffer. The caller owns the data.
func NewReader(data []byte) *Buffer {
	return &Buffer{Data: data}
}

// NewWriter prepares a buffer for serializing data into.
// The backing buffer is owned by Buffer, but when
// serialization is done, the caller may use it.
func NewWriter() *Buffer {
	return &Buffer{
		Data:    make([]byte, 0, 64),
		Writing: true,
	}
}

func (b *Buffer) ReadingDone() bool {
	return b.Pos >= len(b.Data)
}

// Fail records err unless an earlier error is already set.
func (b *Buffer) Fail(err error) {
	if b.Err == nil {
		b.Err = err
	}
}

// Grow extends Data by n zeroed bytes and returns the new region.
func (b *Buffer) Grow(n int) []byte {
	pos := len(b.Data)
	if cap(b.Data)-pos >= n {
		b.Data = b.Data[:pos+n]
	} else {
		b.Data = append(b.Data, make([]byte, n)...)
	}
	return b.Data[pos : pos+n]
}

func (b *Buffer) WriteBytes(newData ...byte) {
	b.Data = append(b.Data, newData...)
}

// implements io.ByteReader
func (buf *Buffer) ReadByte() (byte, error) {
	if buf.Pos >= len(buf.Data) {
		return 0, io.EOF
	}
	b := buf.Data[buf.Pos]
	buf.Pos++
	return b, nil
}

// ReadBytes returns the next n bytes as a slice into Data, not a copy. If
// there are fewer than n bytes left it sets ErrShortBuffer and returns nil.
func (b *Buffer) ReadBytes(n int) []byte {
	if n < 0 || n > len(b.Data)-b.Pos {
		b.Fail(ErrShortBuffer)
		b.Pos = len(b.Data)
		return nil
	}
	out := b.Data[b.Pos : b.Pos+n]
	b.Pos += n
	return out
}

// readFixed is ReadBytes for the fixed-width helpers: on a short buffer it
// returns n zero bytes so the caller can decode without checking.
func (b *Buffer) readFixed(n int) []byte {
	if out := b.ReadBytes(n); out != nil {
		return out
	}
	return make([]byte, n)
}
