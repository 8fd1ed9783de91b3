package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // wrong signature, form type or resource type
	ErrKindEmpty                      // encode called without frames
	ErrKindTruncated                  // input ended before a declared length was satisfied
	ErrKindRange                      // value does not fit its on-disk field
	ErrKindUnsupported                // recognized but undecodable payload
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindEmpty:
		return "empty"
	case ErrKindTruncated:
		return "truncated"
	case ErrKindRange:
		return "range"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error with the same kind and message, so wrapped
// copies of a sentinel still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels returned by the codecs.
var (
	// ErrNotCursor indicates a directory whose resource type is not 2.
	ErrNotCursor = &Error{Kind: ErrKindFormat, Msg: "not a cursor file"}
	// ErrNoFrames indicates a directory declaring zero entries.
	ErrNoFrames = &Error{Kind: ErrKindFormat, Msg: "no frames"}
	// ErrNotRIFF indicates a stream that does not start with "RIFF".
	ErrNotRIFF = &Error{Kind: ErrKindFormat, Msg: "not a RIFF file"}
	// ErrNotANI indicates a RIFF stream whose form type is not "ACON".
	ErrNotANI = &Error{Kind: ErrKindFormat, Msg: "not an ANI file"}
	// ErrInvalidCursorData indicates an embedded resource too short to peek.
	ErrInvalidCursorData = &Error{Kind: ErrKindFormat, Msg: "invalid cursor data"}
	// ErrEmptyInput indicates encode was called with no frames.
	ErrEmptyInput = &Error{Kind: ErrKindEmpty, Msg: "no frames to encode"}
)

// Format returns a format error with the given message and cause.
func Format(msg string, cause error) error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Err: cause}
}

// Truncated wraps an I/O failure that cut a declared length short.
func Truncated(what string, cause error) error {
	return &Error{Kind: ErrKindTruncated, Msg: what + ": truncated", Err: cause}
}

// Range reports a value that cannot be encoded.
func Range(msg string) error {
	return &Error{Kind: ErrKindRange, Msg: msg}
}

// Unsupported reports a payload the package recognizes but cannot decode.
func Unsupported(msg string) error {
	return &Error{Kind: ErrKindUnsupported, Msg: msg}
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k ErrKind) bool {
	var te *Error
	if !errors.As(err, &te) {
		return false
	}
	return te.Kind == k
}
