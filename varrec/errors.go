package varrec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the errors this package and the versioninfo package
// above it can return. It is the single error taxonomy spec.md §7
// describes; both layers surface values of *Error carrying one of these
// kinds rather than minting their own error types.
type Kind int

const (
	// KindEmpty means the input stream had zero length at read time.
	KindEmpty Kind = iota
	// KindCorrupt means an I/O failure or a structural inconsistency
	// (child bytes overflow their parent, a NUL terminator was never
	// found before end-of-stream, a record doesn't fit in 16 bits, ...).
	KindCorrupt
	// KindIndexOutOfBounds means an enumeration index fell outside [0, count).
	KindIndexOutOfBounds
	// KindUnknownName means a named lookup found nothing with that name.
	KindUnknownName
	// KindDuplicateName means an add-by-name call collided with an
	// existing entry of the same name.
	KindDuplicateName
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCorrupt:
		return "corrupt"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	case KindUnknownName:
		return "unknown name"
	case KindDuplicateName:
		return "duplicate name"
	default:
		return "unknown error kind"
	}
}

// Error is the one error type vsinfo's codec and model ever return.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets callers test `errors.Is(err, varrec.IndexOutOfBounds)` etc.
// without caring about the message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for use with errors.Is. They carry no message or cause;
// only their Kind is ever compared.
var (
	Empty            = &Error{Kind: KindEmpty}
	Corrupt          = &Error{Kind: KindCorrupt}
	IndexOutOfBounds = &Error{Kind: KindIndexOutOfBounds}
	UnknownName      = &Error{Kind: KindUnknownName}
	DuplicateName    = &Error{Kind: KindDuplicateName}
)

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// corrupt folds a low-level I/O failure into the Corrupt kind, keeping
// the original cause (and its stack trace) reachable via errors.Unwrap.
func corrupt(cause error, format string, args ...interface{}) *Error {
	if cause == nil {
		return nil
	}
	return &Error{
		Kind:    KindCorrupt,
		Message: fmt.Sprintf(format, args...),
		Cause:   errors.WithStack(cause),
	}
}

func indexOutOfBounds(index, count int) *Error {
	return newError(KindIndexOutOfBounds, "index %d out of bounds for count %d", index, count)
}
