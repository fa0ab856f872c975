package codec

import (
	"google.golang.org/protobuf/proto"
)

type protoCodec[T proto.Message] struct {
	mo proto.MarshalOptions
	uo proto.UnmarshalOptions
}

// Proto returns a Protocol Buffers codec with deterministic marshaling. T is
// a generated message pointer type such as *pb.Order.
func Proto[T proto.Message]() Codec[T] {
	return protoCodec[T]{
		mo: proto.MarshalOptions{Deterministic: true},
		uo: proto.UnmarshalOptions{},
	}
}

func (protoCodec[T]) ContentType() string { return ContentProto }

func (p protoCodec[T]) Encode(v T) ([]byte, error) { return p.mo.Marshal(v) }

func (p protoCodec[T]) Decode(data []byte) (T, error) {
	var zero T
	// A nil message pointer still knows its type.
	msg, ok := zero.ProtoReflect().Type().New().Interface().(T)
	if !ok {
		return zero, errProtoType
	}
	if err := p.uo.Unmarshal(data, msg); err != nil {
		return zero, err
	}
	return msg, nil
}
