package vmodel

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling. Branch on Kind
// (or use errors.Is with the Err* sentinels) rather than on error strings.
type Kind uint8

const (
	KindInvalidHeader Kind = iota + 1
	KindMismatchedModelID
	KindDecodeBody
	KindEncodeBody
	KindUpgradeNotSupported
	KindDowngradeNotSupported
	KindUpgrade
	KindDowngrade
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHeader:
		return "invalid header"
	case KindMismatchedModelID:
		return "mismatched model id"
	case KindDecodeBody:
		return "decode body"
	case KindEncodeBody:
		return "encode body"
	case KindUpgradeNotSupported:
		return "upgrade not supported"
	case KindDowngradeNotSupported:
		return "downgrade not supported"
	case KindUpgrade:
		return "upgrade"
	case KindDowngrade:
		return "downgrade"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Error is the error type returned by the header, encode and decode operations.
//
// For the NotSupported kinds From is the requested version and To is the
// version of the model that gave up. For KindUpgrade and KindDowngrade they
// are the two adjacent versions of the conversion that failed. Expected and
// Actual are the model ids for KindMismatchedModelID. Cause is the codec's
// error for the body kinds and the conversion's error for KindUpgrade and
// KindDowngrade.
type Error struct {
	Kind     Kind
	From     uint32
	To       uint32
	Expected uint32
	Actual   uint32
	Cause    error
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrInvalidHeader         = &Error{Kind: KindInvalidHeader}
	ErrMismatchedModelID     = &Error{Kind: KindMismatchedModelID}
	ErrDecodeBody            = &Error{Kind: KindDecodeBody}
	ErrEncodeBody            = &Error{Kind: KindEncodeBody}
	ErrUpgradeNotSupported   = &Error{Kind: KindUpgradeNotSupported}
	ErrDowngradeNotSupported = &Error{Kind: KindDowngradeNotSupported}
	ErrUpgrade               = &Error{Kind: KindUpgrade}
	ErrDowngrade             = &Error{Kind: KindDowngrade}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Kind {
	case KindInvalidHeader:
		msg = "vmodel: invalid header"
	case KindMismatchedModelID:
		msg = fmt.Sprintf("vmodel: mismatched model id: expected %d, actual %d", e.Expected, e.Actual)
	case KindUpgradeNotSupported:
		msg = fmt.Sprintf("vmodel: upgrade from %d to %d is not supported", e.From, e.To)
	case KindDowngradeNotSupported:
		msg = fmt.Sprintf("vmodel: downgrade to %d from %d is not supported", e.From, e.To)
	case KindUpgrade:
		msg = fmt.Sprintf("vmodel: upgrade from %d to %d", e.From, e.To)
	case KindDowngrade:
		msg = fmt.Sprintf("vmodel: downgrade from %d to %d", e.From, e.To)
	default:
		msg = "vmodel: " + e.Kind.String()
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.Kind == e.Kind
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

func invalidHeader(n int) error {
	return &Error{Kind: KindInvalidHeader, Cause: fmt.Errorf("%d bytes, need %d", n, HeaderSize)}
}
