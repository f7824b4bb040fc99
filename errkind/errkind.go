// Package errkind provides the structured error taxonomy shared by
// psequence and pheap (spec §7).
//
// The pattern — a machine-readable Kind plus a human-readable message and
// optional cause, with errors.Is/errors.As-compatible Unwrap — is
// borrowed from the companion repo matzehuels/stacktower's pkg/errors,
// renamed from that repo's HTTP/CLI error codes to the six kinds this
// domain raises.
package errkind

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error classification.
type Kind string

const (
	// OutOfRange is raised when a scalar index falls outside [-n, n).
	// Slice bounds clamp and never raise it.
	OutOfRange Kind = "OUT_OF_RANGE"

	// EmptyContainer is raised by peek/pop/view operations on an empty
	// sequence or heap.
	EmptyContainer Kind = "EMPTY_CONTAINER"

	// NotFound is raised when a lookup by value finds no match.
	NotFound Kind = "NOT_FOUND"

	// LengthMismatch is raised when a strided-slice assignment's
	// replacement iterable length does not equal the slice length.
	LengthMismatch Kind = "LENGTH_MISMATCH"

	// NotComparable classifies ordering or hashing requests that cannot
	// be discharged for the element type in hand. Cross-polarity heap
	// comparison never reaches it: the two polarities are distinct types,
	// so such a call does not compile.
	NotComparable Kind = "NOT_COMPARABLE"

	// InvalidArgument is raised for malformed call arguments: a zero
	// slice step, a multi-view index list that is not strictly
	// ascending, a chunk size that is not positive, etc.
	InvalidArgument Kind = "INVALID_ARGUMENT"
)

// Error is a structured error carrying a Kind, a formatted message, and an
// optional wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the Kind from err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
