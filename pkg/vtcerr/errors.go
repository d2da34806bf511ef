// Package vtcerr defines the structured error values returned by the
// timecode engine. Every fallible operation in pkg/rational, pkg/rate and
// pkg/timecode returns one of these; nothing in the core panics.
package vtcerr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error.
type Kind string

const (
	// Parsing failures.
	KindUnrecognizedFormat       Kind = "UNRECOGNIZED_FORMAT"
	KindBadDropFrames            Kind = "BAD_DROP_FRAMES"
	KindPartialFrame             Kind = "PARTIAL_FRAME"
	KindDropFrameMaximumExceeded Kind = "DROP_FRAME_MAXIMUM_EXCEEDED"

	// Framerate construction failures.
	KindNonPositive        Kind = "NON_POSITIVE"
	KindInvalidNtscRate    Kind = "INVALID_NTSC_RATE"
	KindBadDropRate        Kind = "BAD_DROP_RATE"
	KindImpreciseFloat     Kind = "IMPRECISE_FLOAT"
	KindCoerceRequiresNtsc Kind = "COERCE_REQUIRES_NTSC"
	KindInvalidSmpteValue  Kind = "INVALID_SMPTE_VALUE"

	// Arithmetic policy violations.
	KindMixedRateArithmetic    Kind = "MIXED_RATE_ARITHMETIC"
	KindMixedOutTypeArithmetic Kind = "MIXED_OUT_TYPE_ARITHMETIC"

	KindDivisionByZero Kind = "DIVISION_BY_ZERO"
	KindNoneResult     Kind = "NONE_RESULT"
	KindFlippedRange   Kind = "FLIPPED_RANGE"
)

// Error carries an error kind along with human-readable context. Details
// holds operation-specific values such as the operand rates of a mixed-rate
// addition.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so callers can
// match with errors.Is(err, &vtcerr.Error{Kind: vtcerr.KindBadDropFrames}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithDetails attaches details to the error and returns it.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a kind and message.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err (or anything it wraps) is an engine error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
