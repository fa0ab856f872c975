// Package codec provides the pluggable body codecs used by vmodel envelopes.
//
// A codec only turns one Go type into bytes and back. It knows nothing about
// headers, type identities or versions; vmodel prepends those.
package codec

// Codec serializes values of type T. Implementations should be deterministic
// and safe for concurrent use.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// ContentTyper is implemented by codecs that can name their wire format.
type ContentTyper interface {
	ContentType() string
}

const (
	ContentJSON  = "application/json"
	ContentCBOR  = "application/cbor"
	ContentProto = "application/x-protobuf"
	ContentVpack = "application/x-vpack"
)

// ContentType returns c's content type, or "application/octet-stream" when c
// does not report one.
func ContentType[T any](c Codec[T]) string {
	if ct, ok := c.(ContentTyper); ok {
		return ct.ContentType()
	}
	return "application/octet-stream"
}

type funcs[T any] struct {
	enc func(T) ([]byte, error)
	dec func([]byte) (T, error)
}

// Funcs builds a Codec from a pair of functions.
func Funcs[T any](enc func(T) ([]byte, error), dec func([]byte) (T, error)) Codec[T] {
	return funcs[T]{enc: enc, dec: dec}
}

func (f funcs[T]) Encode(v T) ([]byte, error)     { return f.enc(v) }
func (f funcs[T]) Decode(data []byte) (T, error) { return f.dec(data) }
