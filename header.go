package vmodel

import "encoding/binary"

// HeaderSize is the fixed length of an envelope header.
//
//	0..3  ID       u32 little endian
//	4..7  Version  u32 little endian
//	8..   body     opaque, produced by the model's codec
const HeaderSize = 8

var le = binary.LittleEndian

// Header identifies the model family and the version the body was encoded at.
type Header struct {
	ID      uint32
	Version uint32
}

// AppendHeader appends the 8-byte encoding of h to dst.
func AppendHeader(dst []byte, h Header) []byte {
	dst = le.AppendUint32(dst, h.ID)
	return le.AppendUint32(dst, h.Version)
}

// Bytes returns the 8-byte encoding of h.
func (h Header) Bytes() []byte {
	return AppendHeader(make([]byte, 0, HeaderSize), h)
}

// ReadHeader parses the header at the start of data. The returned body is a
// sub-slice of data, not a copy.
func ReadHeader(data []byte) (Header, []byte, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, invalidHeader(len(data))
	}
	h := Header{
		ID:      le.Uint32(data[0:4]),
		Version: le.Uint32(data[4:8]),
	}
	return h, data[HeaderSize:], nil
}

// Peek returns the header of an envelope without looking at the body.
func Peek(data []byte) (Header, error) {
	h, _, err := ReadHeader(data)
	return h, err
}

// Prepend returns a new buffer holding the header followed by body. It
// allocates once.
func Prepend(body []byte, h Header) []byte {
	out := make([]byte, HeaderSize+len(body))
	le.PutUint32(out[0:4], h.ID)
	le.PutUint32(out[4:8], h.Version)
	copy(out[HeaderSize:], body)
	return out
}

// SetHeader overwrites the header of an existing envelope in place. The body
// is left untouched, so the caller is responsible for it still matching h.
func SetHeader(data []byte, h Header) error {
	if len(data) < HeaderSize {
		return invalidHeader(len(data))
	}
	le.PutUint32(data[0:4], h.ID)
	le.PutUint32(data[4:8], h.Version)
	return nil
}
