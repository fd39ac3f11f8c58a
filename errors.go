package bitset

import "bitset/internal/errs"

// Error is the error type returned by every fallible operation in this
// package. Use the Is* predicates below to classify it, or errors.As to
// recover the Kind and wrapped cause directly.
type Error = errs.Error

func newTypeMismatch(format string, args ...any) error {
	return errs.New(errs.TypeMismatch, format, args...)
}

func newOutOfRange(format string, args ...any) error {
	return errs.New(errs.OutOfRange, format, args...)
}

func newMissingElement(format string, args ...any) error {
	return errs.New(errs.MissingElement, format, args...)
}

func newEmptySet(format string, args ...any) error {
	return errs.New(errs.EmptySet, format, args...)
}

func newEncodingError(cause error, format string, args ...any) error {
	return errs.Wrap(errs.EncodingError, cause, format, args...)
}

func newDomainError(format string, args ...any) error {
	return errs.New(errs.DomainError, format, args...)
}

// IsTypeMismatch reports whether err is a TypeMismatch failure.
func IsTypeMismatch(err error) bool { return errs.HasKind(err, errs.TypeMismatch) }

// IsOutOfRange reports whether err is an OutOfRange failure.
func IsOutOfRange(err error) bool { return errs.HasKind(err, errs.OutOfRange) }

// IsMissingElement reports whether err is a MissingElement failure.
func IsMissingElement(err error) bool { return errs.HasKind(err, errs.MissingElement) }

// IsEmptySet reports whether err is an EmptySet failure.
func IsEmptySet(err error) bool { return errs.HasKind(err, errs.EmptySet) }

// IsEncodingError reports whether err is an EncodingError failure.
func IsEncodingError(err error) bool { return errs.HasKind(err, errs.EncodingError) }

// IsDomainError reports whether err is a DomainError failure.
func IsDomainError(err error) bool { return errs.HasKind(err, errs.DomainError) }
