package vpack

// PackFn is a generic serialization function that can be used either to
// serialize or deserialize data, depending on the buffer's mode.
type PackFn[T any] func(data *T, buffer *Buffer)

func ToBytes[T any](obj *T, fn PackFn[T]) ([]byte, error) {
	buf := NewWriter()
	fn(obj, buf)
	if buf.Err != nil {
		return nil, buf.Err
	}
	return buf.Data, nil
}

// FromBytes decodes data into a new T. The whole input must be consumed.
func FromBytes[T any](data []byte, fn PackFn[T]) (T, error) {
	var obj T
	err := FromBytesInto(data, &obj, fn)
	return obj, err
}

func FromBytesInto[T any](data []byte, obj *T, fn PackFn[T]) error {
	buf := NewReader(data)
	fn(obj, buf)
	if buf.Err != nil {
		return buf.Err
	}
	if !buf.ReadingDone() {
		return ErrTrailing
	}
	return nil
}
