package vpack

import (
	"encoding"
	"time"

	"go.hasen.dev/generic"
)

// length reads or writes a varint length prefix. When reading, a length
// larger than the remaining input is an error and comes back as 0.
func length(n int, buf *Buffer) int {
	Int(&n, buf)
	if !buf.Writing && (n < 0 || n > len(buf.Data)-buf.Pos) {
		buf.Fail(ErrShortBuffer)
		return 0
	}
	return n
}

// String implements serialization for a string by first writing out the length
// in bytes (as a varint) then dumping the actual bytes into the buffer. When
// deserializing, it reads the length then clones that many bytes into a new
// string.
func String(s *string, buf *Buffer) {
	var size = length(len(*s), buf)
	if buf.Writing {
		copy(buf.Grow(size), *s)
		return
	}
	// string(...) copies out of the input buffer
	*s = string(buf.ReadBytes(size))
}

// StringZ implement serialization for a string using null-byte termination.
// This allows is to be used in the key of a boltdb key
func StringZ(s *string, buf *Buffer) {
	if buf.Writing {
		copy(buf.Grow(len(*s)), *s)
		buf.WriteBytes(0)
		return
	}
	var start = buf.Pos
	var end = start
	for end < len(buf.Data) && buf.Data[end] != 0 {
		end++
	}
	if end == len(buf.Data) {
		buf.Fail(ErrShortBuffer)
	}
	buf.Pos = end + 1
	*s = string(buf.Data[start:end])
}

// ByteSlice implements serialization for a byte slice. It's more or less just
// like String.
func ByteSlice(s *[]byte, buf *Buffer) {
	var size = length(len(*s), buf)
	if buf.Writing {
		copy(buf.Grow(size), *s)
		return
	}
	// ReadBytes returns a slice into the buffer; we need our own copy
	*s = make([]byte, size)
	copy(*s, buf.ReadBytes(size))
}

// Slice is a helper for serialization a slice of some type, given its
// serialization function. It starts by reading/writing the length of the slice,
// then uses the provided serialization function to serialize each individual
// item in the slice.
func Slice[T any](list *[]T, fn PackFn[T], buf *Buffer) {
	var size = length(len(*list), buf)
	if !buf.Writing {
		*list = make([]T, size)
	}
	for index := range *list {
		fn(&(*list)[index], buf)
		if buf.Err != nil {
			return
		}
	}
}

func Map[K comparable, T any](m *map[K]T, keyFn PackFn[K], valFn PackFn[T], buf *Buffer) {
	var size = length(len(*m), buf)
	if buf.Writing {
		for key, val := range *m {
			keyFn(&key, buf)
			valFn(&val, buf)
		}
		return
	}
	generic.InitMap(m)
	for i := 0; i < size && buf.Err == nil; i++ {
		var key K
		var val T
		keyFn(&key, buf)
		valFn(&val, buf)
		(*m)[key] = val
	}
}

type Binary interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// BinaryMarshal implements serialization for an object that implements the
// BinaryMarshaler and BinaryUnmarshaler interfaces from the standard library.
func BinaryMarshal(b Binary, buf *Buffer) {
	var data []byte
	if buf.Writing {
		var err error
		if data, err = b.MarshalBinary(); err != nil {
			buf.Fail(err)
			return
		}
	}
	ByteSlice(&data, buf)
	if !buf.Writing && buf.Err == nil {
		if err := b.UnmarshalBinary(data); err != nil {
			buf.Fail(err)
		}
	}
}

// Time implement serialization for the std library's Time object using the
// Binary Marshalling interface
func Time(t *time.Time, buf *Buffer) {
	BinaryMarshal(t, buf)
}

// UnixTime serializes Time as a unix timestamp: the resolution is truncated to
// seconds and the location is dropped.
func UnixTime(t *time.Time, buf *Buffer) {
	var seconds int64
	if buf.Writing {
		seconds = t.Unix()
	}
	VInt64(&seconds, buf)
	if !buf.Writing {
		*t = time.Unix(seconds, 0)
	}
}

// UnixTimeMilli is similar to UnixTime but truncates to the millisecond.
func UnixTimeMilli(t *time.Time, buf *Buffer) {
	var ms int64
	if buf.Writing {
		ms = t.UnixMilli()
	}
	VInt64(&ms, buf)
	if !buf.Writing {
		*t = time.UnixMilli(ms)
	}
}

// Versioned is a helper for creating versioned object serializers. It writes
// len(fns) as the version; when reading it dispatches to fns[version-1].
//
// This is an in-body version tag for types that migrate by hand. Types that
// go through vmodel carry their version in the envelope header instead.
func Versioned[T any](item *T, buf *Buffer, fns ...PackFn[T]) {
	var version = len(fns)
	Int(&version, buf)
	if version < 1 || version > len(fns) {
		buf.Fail(ErrVersion)
		return
	}
	fns[version-1](item, buf)
}
