package codec

import (
	cbor "github.com/fxamacker/cbor/v2"
)

type cborCodec[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// CBOR returns a deterministic CBOR codec (RFC 7049 canonical encoding).
// Struct fields are encoded as maps keyed by field name unless the type says
// otherwise with cbor struct tags (`cbor:",toarray"` gives a compact tuple
// encoding).
func CBOR[T any]() (Codec[T], error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, err
	}
	return cborCodec[T]{enc: em, dec: dm}, nil
}

// MustCBOR is CBOR for package-level schema declarations.
func MustCBOR[T any]() Codec[T] {
	c, err := CBOR[T]()
	if err != nil {
		panic(err)
	}
	return c
}

func (cborCodec[T]) ContentType() string { return ContentCBOR }

func (c cborCodec[T]) Encode(v T) ([]byte, error) { return c.enc.Marshal(v) }

func (c cborCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.dec.Unmarshal(data, &v)
	return v, err
}
