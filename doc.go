/*
Package vmodel wraps serialized values in a small envelope that records what
they are and which version of their schema produced them, so applications
that evolve independently can keep reading each other's data.

# Envelope

An envelope is an 8-byte header followed by the body:

	0..3  model id   u32 little endian
	4..7  version    u32 little endian
	8..   body       whatever the model's codec produced

The body format is pluggable (see package codec): JSON, CBOR, Protobuf and
the compact vpack encoding are built in, and any pair of encode/decode
functions will do.

# Models and chains

Every version of a logical model is its own Go type, and each gets a schema
value describing how it relates to the version before it. The versions of one
model form a chain: a root, then each newer version declared From (or
TryFrom, when the conversion can fail) its predecessor.

At time t0:

	type PointV1 struct {
	    X uint32
	    Y uint32
	}

	var PointV1Model = vmodel.Root(1, 1, codec.JSON[PointV1]())

Later at time t1 the struct gains a name and wider integers:

	type PointV2 struct {
	    Name string
	    X    uint64
	    Y    uint64
	}

	var PointV2Model = vmodel.From(PointV1Model, 2, codec.JSON[PointV2](),
	    func(p PointV1) PointV2 { return PointV2{X: uint64(p.X), Y: uint64(p.Y)} },
	    func(p PointV2) PointV1 { return PointV1{X: uint32(p.X), Y: uint32(p.Y)} },
	)

An application built at t1 decodes with PointV2Model. Bytes written at t0 are
decoded as PointV1 and upgraded; bytes written at t1 are decoded directly.
Decode also returns the version it found, and EncodeDowngrade at that version
produces bytes the t0 application can still read:

	p, version, err := vmodel.Decode(PointV2Model, data)
	// ... change p ...
	reply, err := vmodel.EncodeDowngrade(PointV2Model, p, version)

A model never decodes bytes that are newer than itself: the t0 application
gets an error of kind KindUpgradeNotSupported for t1 bytes.

# Errors

Every failure is an *Error whose Kind says what went wrong; codec and
conversion errors stay reachable through errors.Is and errors.As. Nothing is
retried.

# Concurrency

Schemas are immutable after construction and every call works on its own
buffers, so all functions are safe for concurrent use.
*/
package vmodel
