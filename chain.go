package vmodel

import (
	"errors"
	"fmt"
)

// ErrBrokenChain is returned by CheckChain.
var ErrBrokenChain = errors.New("vmodel: broken chain")

// Versions lists the versions reachable from d, oldest first. The walk stops
// at the first link that does not go strictly down in version.
func Versions(d Descriptor) []uint32 {
	var out []uint32
	for cur := d; cur != nil; cur = cur.Predecessor() {
		if n := len(out); n > 0 && cur.Version() >= out[n-1] {
			break
		}
		out = append(out, cur.Version())
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CheckChain verifies that every version below d shares d's ID and that
// versions strictly decrease towards the root. Schemas built with From and
// TryFrom always pass; it exists for hand-written Model implementations,
// which the negotiation engine trusts without checking.
func CheckChain(d Descriptor) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrBrokenChain)
	}
	for cur, prev := d, d.Predecessor(); prev != nil; cur, prev = prev, prev.Predecessor() {
		if prev.ID() != cur.ID() {
			return fmt.Errorf("%w: version %d has id %d but its predecessor version %d has id %d",
				ErrBrokenChain, cur.Version(), cur.ID(), prev.Version(), prev.ID())
		}
		if prev.Version() >= cur.Version() {
			return fmt.Errorf("%w: model %d: predecessor version %d is not older than %d",
				ErrBrokenChain, cur.ID(), prev.Version(), cur.Version())
		}
	}
	return nil
}
