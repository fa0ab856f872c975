package vpack

import (
	"encoding/binary"
	"math"
)

var BigEndian = binary.BigEndian

// FUInt64 implements fixed size serialization of uint64. It writes data in big
// endian, making it suitable for int keys to bolt.
func FUInt64(n *uint64, buf *Buffer) {
	if buf.Writing {
		buf.Data = BigEndian.AppendUint64(buf.Data, *n)
	} else {
		*n = BigEndian.Uint64(buf.readFixed(8))
	}
}

// FUInt32 implements fixed size serialization of uint32 in big endian.
func FUInt32(n *uint32, buf *Buffer) {
	if buf.Writing {
		buf.Data = BigEndian.AppendUint32(buf.Data, *n)
	} else {
		*n = BigEndian.Uint32(buf.readFixed(4))
	}
}

// FUInt16 implements fixed size serialization of uint16 in big endian.
func FUInt16(n *uint16, buf *Buffer) {
	if buf.Writing {
		buf.Data = BigEndian.AppendUint16(buf.Data, *n)
	} else {
		*n = BigEndian.Uint16(buf.readFixed(2))
	}
}

// FInt64 implements fixed size serialization of int64. It writes data in big
// endian, making it suitable for int keys to bolt.
func FInt64(n *int64, buf *Buffer) {
	var u = uint64(*n)
	FUInt64(&u, buf)
	*n = int64(u)
}

func Float64(n *float64, buf *Buffer) {
	// bits conversions are plain reinterpretations
	var u = math.Float64bits(*n)
	FUInt64(&u, buf)
	*n = math.Float64frombits(u)
}

// Byte implements serialization for a single byte
func Byte(b *byte, buf *Buffer) {
	if buf.Writing {
		buf.WriteBytes(*b)
	} else {
		*b = buf.readFixed(1)[0]
	}
}

// Bool implements serialization for a bool. Any byte other than 0 or 1 is a
// decode error.
func Bool(b *bool, buf *Buffer) {
	var bt byte
	if *b {
		bt = 1
	}
	Byte(&bt, buf)
	if bt > 1 {
		buf.Fail(ErrInvalid)
	}
	*b = bt == 1
}

// VInt64 implements varint encoding for int64. Varint users fewer bytes for
// small values.
func VInt64(n *int64, buf *Buffer) {
	if buf.Writing {
		buf.Data = binary.AppendVarint(buf.Data, *n)
	} else {
		var err error
		*n, err = binary.ReadVarint(buf)
		if err != nil {
			buf.Fail(ErrShortBuffer)
		}
	}
}

// VUInt64 implements varint encoding for uint64.
func VUInt64(n *uint64, buf *Buffer) {
	if buf.Writing {
		buf.Data = binary.AppendUvarint(buf.Data, *n)
	} else {
		var err error
		*n, err = binary.ReadUvarint(buf)
		if err != nil {
			buf.Fail(ErrShortBuffer)
		}
	}
}

// VUInt32 is VUInt64 for uint32; values that do not fit are a decode error.
func VUInt32(n *uint32, buf *Buffer) {
	var n64 = uint64(*n)
	VUInt64(&n64, buf)
	if n64 > math.MaxUint32 {
		buf.Fail(ErrInvalid)
	}
	*n = uint32(n64)
}

// Int implements varint encoding for int (as int64).
func Int(n *int, buf *Buffer) {
	var n64 = int64(*n)
	VInt64(&n64, buf)
	*n = int(n64)
}

// UInt implements varint encoding for uint (as uint64).
func UInt(n *uint, buf *Buffer) {
	var n64 = uint64(*n)
	VUInt64(&n64, buf)
	*n = uint(n64)
}

type IntBased interface {
	~int | ~int64
}

// IntEnum implements varint encoding for an int (or int64) based enum types
func IntEnum[T IntBased](n *T, buf *Buffer) {
	var n64 = int64(*n)
	VInt64(&n64, buf)
	*n = T(n64)
}

// Rune implements serialization for a single rune as a varint.
func Rune(r *rune, buf *Buffer) {
	var n64 = int64(*r)
	VInt64(&n64, buf)
	*r = rune(n64)
}
