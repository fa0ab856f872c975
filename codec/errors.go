package codec

import "errors"

var errProtoType = errors.New("codec: proto message type does not round-trip through ProtoReflect")
