package codec

import "encoding/json"

type jsonCodec[T any] struct{}

// JSON returns a codec backed by encoding/json.
func JSON[T any]() Codec[T] { return jsonCodec[T]{} }

func (jsonCodec[T]) ContentType() string { return ContentJSON }

func (jsonCodec[T]) Encode(v T) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

var _ Codec[struct{}] = jsonCodec[struct{}]{}
