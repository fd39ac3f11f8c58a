// Package errs defines the typed error kinds raised by the bitset core and
// its surrounding services, in the shape of a Kind constant plus a
// message-carrying struct.
package errs

import "fmt"

// Kind classifies an Error the way the host must distinguish failures.
type Kind string

const (
	TypeMismatch   Kind = "TypeMismatch"
	OutOfRange     Kind = "OutOfRange"
	MissingElement Kind = "MissingElement"
	EmptySet       Kind = "EmptySet"
	EncodingError  Kind = "EncodingError"
	DomainError    Kind = "DomainError"
)

// Error is the concrete error type for every failure the bitset package
// and its services raise. Wrap with github.com/pkg/errors at service
// boundaries when additional call-site context or a stack trace is useful.
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

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is supports errors.Is(err, &Error{Kind: X}) comparisons by kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind that carries a lower-level cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// HasKind reports whether err is (or wraps) an *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
