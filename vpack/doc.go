/*
Package vpack implements a compact scheme for binary serialization and
deserialization of plain data into and from byte buffers.

It is the default body codec for vmodel envelopes (see codec.Pack), and it is
general purpose enough to be used on its own, for bolt keys or files.

# Serialization Buffer

The basic building block is a `Buffer` struct that has a backing byte slice
and a Writing flag.

This allows the "serialization" function to fulfill the role of both reading and
writing at the same time.

A serialization function takes a pointer to an object (to be (de)serialized) and
a pointer to a Buffer.

If the buffer is writing, the function appends the binary representation of
the object. Otherwise it reads from the buffer into the object passed.

As a user of this package, you almost never have to check the mode in your
own code. You list the fields you want to serialize and what function to use
for each:

	type Point struct {
	    X uint32
	    Y uint32
	}

	func PackPoint(p *Point, buf *vpack.Buffer) {
	    vpack.VUInt32(&p.X, buf)
	    vpack.VUInt32(&p.Y, buf)
	}

Fields are read back in exactly the order they were written.

# Errors

Reading stops being meaningful after the first failure: the error is kept in
`Buffer.Err` and surfaced by FromBytes. Writing cannot fail except through
BinaryMarshal.

# Versioning

For long-lived data whose schema evolves, prefer vmodel: each version is its
own Go type, the version lives in the envelope header, and conversions between
adjacent versions are ordinary functions.

For small local structures the Versioned helper is enough: it writes a
version number before the fields and dispatches to the matching function on
read. Old functions keep reading the old layout and migrate by hand:

	func v1PackXYZ(xyz *XYZ, buf *vpack.Buffer) {
	    var energy int // field that used to exist
	    vpack.Int(&xyz.Unit, buf)
	    vpack.Int(&energy, buf)
	    xyz.Price = energy * xyz.Unit
	}

	func v2PackXYZ(xyz *XYZ, buf *vpack.Buffer) {
	    vpack.Int(&xyz.Unit, buf)
	    vpack.Int(&xyz.Price, buf)
	}

	func PackXYZ(xyz *XYZ, buf *vpack.Buffer) {
	    vpack.Versioned(xyz, buf, v1PackXYZ, v2PackXYZ)
	}

Note that Versioned always writes the newest layout.
*/
package vpack
