package unravel

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidFormat indicates the input does not match the transform's expected shape.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTooShort indicates the input matches the shape but carries too little data.
	ErrTooShort = errors.New("input too short")

	// ErrDecode indicates the shape matched but the underlying decode step failed.
	ErrDecode = errors.New("decode failed")

	// ErrUnknownTransform indicates a transform name outside the builtin set.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInvalidTag indicates a struct tag names an unknown transform.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ErrorKind names the failure classes a single transform can report.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "InvalidFormat"
	KindTooShort      ErrorKind = "TooShort"
	KindDecodeError   ErrorKind = "DecodeError"
	KindUnknown       ErrorKind = "Unknown"
)

// Kind maps err onto the transform error taxonomy.
// Errors outside the taxonomy report KindUnknown; nil reports "".
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrTooShort):
		return KindTooShort
	case errors.Is(err, ErrDecode):
		return KindDecodeError
	default:
		return KindUnknown
	}
}

// TransformError represents a failed transform.
// It wraps a sentinel error with the transform name and a human-readable reason.
type TransformError struct {
	Err       error     // Underlying sentinel error (ErrInvalidFormat, ErrTooShort, ErrDecode)
	Transform Transform // Transform that rejected the input
	Reason    string    // Human-readable reason
	Field     string    // Record field, set by Processor
	Cause     error     // Original error from the underlying decoder, if any
}

func (e *TransformError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Transform, e.Err.Error())
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %s)", e.Field)
	}
	return msg
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newTransformError creates a TransformError for a rejected input.
func newTransformError(sentinel error, t Transform, reason string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Transform: t,
		Reason:    reason,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
