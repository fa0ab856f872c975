package codec

import "go.hasen.dev/vmodel/vpack"

type packCodec[T any] struct {
	fn vpack.PackFn[T]
}

// Pack returns a codec that uses a vpack serialization function. It is the
// most compact of the built-in codecs and the only one whose layout is fully
// under the caller's control.
func Pack[T any](fn vpack.PackFn[T]) Codec[T] {
	return packCodec[T]{fn: fn}
}

func (packCodec[T]) ContentType() string { return ContentVpack }

func (p packCodec[T]) Encode(v T) ([]byte, error) { return vpack.ToBytes(&v, p.fn) }

func (p packCodec[T]) Decode(data []byte) (T, error) { return vpack.FromBytes(data, p.fn) }
