package vmodel

import (
	"fmt"

	"go.uber.org/zap"

	"go.hasen.dev/vmodel/codec"
)

// Descriptor is the type-erased identity of one version in a chain.
type Descriptor interface {
	// ID is shared by every version of the same logical model.
	ID() uint32
	// Version increases along the chain; the root is the oldest.
	Version() uint32
	// Predecessor is the adjacent older version, or nil at the root.
	Predecessor() Descriptor
}

// Model is the contract a concrete version type T takes part in. It is
// implemented by a schema value per version, not by T itself, so versions stay
// plain sibling structs.
//
// Root, From and TryFrom build Models for the common cases. Hand-written
// implementations must keep the chain linear: one root, strictly increasing
// versions, one ID (see CheckChain).
type Model[T any] interface {
	Descriptor

	// EncodeBody encodes v with the model's codec, without a header.
	EncodeBody(v T) ([]byte, error)

	// DecodeBody decodes a body that claims to belong to model id. It fails
	// with KindMismatchedModelID before touching data if id is not ours.
	DecodeBody(data []byte, id uint32) (T, error)

	// DecodeUpgradeBody decodes a body encoded at version and upgrades it
	// through the predecessor chain until it is a T.
	DecodeUpgradeBody(data []byte, id, version uint32) (T, error)

	// EncodeDowngradeBody downgrades v through the predecessor chain until it
	// reaches version, then encodes it there.
	EncodeDowngradeBody(v T, version uint32) ([]byte, error)
}

// Schema is the Model built by Root, From and TryFrom. Schemas are immutable
// and safe for concurrent use; declare them once as package variables.
type Schema[T any] struct {
	id      uint32
	version uint32
	codec   codec.Codec[T]
	prev    Descriptor

	// nil on a root; down is also nil on a derived schema that only upgrades.
	up   func(data []byte, id, version uint32) (T, error)
	down func(v T, version uint32) ([]byte, error)
}

var _ Model[struct{}] = (*Schema[struct{}])(nil)

// Root declares the oldest version of a model: no predecessor, so bytes at
// any other version are rejected.
func Root[T any](id, version uint32, c codec.Codec[T]) *Schema[T] {
	if c == nil {
		panic("vmodel: nil codec")
	}
	return &Schema[T]{id: id, version: version, codec: c}
}

// From declares a version whose conversions to and from its predecessor
// cannot fail. down may be nil for a model that never needs to emit older
// bytes; EncodeDowngrade to an older version then reports
// KindDowngradeNotSupported.
//
// The new version shares prev's ID and must be greater than prev's version;
// From panics otherwise.
func From[P, T any](prev Model[P], version uint32, c codec.Codec[T], up func(P) T, down func(T) P) *Schema[T] {
	if up == nil {
		panic("vmodel: nil upgrade conversion")
	}
	tryUp := func(p P) (T, error) { return up(p), nil }
	var tryDown func(T) (P, error)
	if down != nil {
		tryDown = func(v T) (P, error) { return down(v), nil }
	}
	return TryFrom(prev, version, c, tryUp, tryDown)
}

// TryFrom is From for conversions that can fail. A failed upgrade is reported
// as KindUpgrade and a failed downgrade as KindDowngrade, both wrapping the
// conversion's error.
func TryFrom[P, T any](prev Model[P], version uint32, c codec.Codec[T], up func(P) (T, error), down func(T) (P, error)) *Schema[T] {
	if prev == nil {
		panic("vmodel: nil predecessor")
	}
	if up == nil {
		panic("vmodel: nil upgrade conversion")
	}
	from := prev.Version()
	if version <= from {
		panic(fmt.Sprintf("vmodel: model %d: version %d does not follow predecessor version %d", prev.ID(), version, from))
	}

	s := Root(prev.ID(), version, c)
	s.prev = prev
	s.up = func(data []byte, id, source uint32) (T, error) {
		var zero T
		p, err := prev.DecodeUpgradeBody(data, id, source)
		if err != nil {
			return zero, err
		}
		v, err := up(p)
		if err != nil {
			log().Debug("upgrade conversion failed",
				zap.Uint32("id", s.id), zap.Uint32("from", from), zap.Uint32("to", version), zap.Error(err))
			return zero, &Error{Kind: KindUpgrade, From: from, To: version, Cause: err}
		}
		return v, nil
	}
	if down != nil {
		s.down = func(v T, target uint32) ([]byte, error) {
			p, err := down(v)
			if err != nil {
				log().Debug("downgrade conversion failed",
					zap.Uint32("id", s.id), zap.Uint32("from", version), zap.Uint32("to", from), zap.Error(err))
				return nil, &Error{Kind: KindDowngrade, From: version, To: from, Cause: err}
			}
			return prev.EncodeDowngradeBody(p, target)
		}
	}
	return s
}

func (s *Schema[T]) ID() uint32              { return s.id }
func (s *Schema[T]) Version() uint32         { return s.version }
func (s *Schema[T]) Predecessor() Descriptor { return s.prev }

// Codec returns the body codec of this version.
func (s *Schema[T]) Codec() codec.Codec[T] { return s.codec }

func (s *Schema[T]) String() string {
	return fmt.Sprintf("model %d v%d", s.id, s.version)
}

func (s *Schema[T]) EncodeBody(v T) ([]byte, error) {
	body, err := s.codec.Encode(v)
	if err != nil {
		return nil, &Error{Kind: KindEncodeBody, Cause: err}
	}
	return body, nil
}

func (s *Schema[T]) DecodeBody(data []byte, id uint32) (T, error) {
	var zero T
	if id != s.id {
		return zero, &Error{Kind: KindMismatchedModelID, Expected: s.id, Actual: id}
	}
	v, err := s.codec.Decode(data)
	if err != nil {
		return zero, &Error{Kind: KindDecodeBody, Cause: err}
	}
	return v, nil
}

func (s *Schema[T]) DecodeUpgradeBody(data []byte, id, version uint32) (T, error) {
	switch {
	case version == s.version:
		return s.DecodeBody(data, id)
	case version < s.version && s.up != nil:
		log().Debug("upgrade step",
			zap.Uint32("id", s.id), zap.Uint32("source", version), zap.Uint32("at", s.version))
		return s.up(data, id, version)
	default:
		var zero T
		return zero, &Error{Kind: KindUpgradeNotSupported, From: version, To: s.version}
	}
}

func (s *Schema[T]) EncodeDowngradeBody(v T, version uint32) ([]byte, error) {
	switch {
	case version == s.version:
		return s.EncodeBody(v)
	case version < s.version && s.down != nil:
		log().Debug("downgrade step",
			zap.Uint32("id", s.id), zap.Uint32("target", version), zap.Uint32("at", s.version))
		return s.down(v, version)
	default:
		return nil, &Error{Kind: KindDowngradeNotSupported, From: version, To: s.version}
	}
}
