package enrollment

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("invalid name")
	ErrDecode      = errors.New("decode error")
	ErrIO          = errors.New("i/o error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindInvalidName ErrorKind = "invalid_name"
	KindDecode      ErrorKind = "decode"
	KindIO          ErrorKind = "io"
)

var kindDocs = map[ErrorKind]string{
	KindNotFound:    "File or directory not found.",
	KindInvalidName: "Inappropriate argument value (of correct type).",
	KindDecode:      "Document could not be decoded as a JSON array of enrollment records.",
	KindIO:          "Input/output operation failed.",
}

var kindSentinels = map[ErrorKind]error{
	KindNotFound:    ErrNotFound,
	KindInvalidName: ErrInvalidName,
	KindDecode:      ErrDecode,
	KindIO:          ErrIO,
}

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel error of the kind, so errors.Is(err, ErrNotFound)
// works without callers knowing about *Error.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsKind helps callers classify errors through any amount of wrapping.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Doc returns the documentation text for the error's kind.
func Doc(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if doc, ok := kindDocs[e.Kind]; ok {
			return doc
		}
	}
	return "Common base for all non-exit errors."
}

// Category returns the kind name for an *Error and the dynamic Go type for
// anything else.
func Category(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return string(e.Kind)
	}
	return fmt.Sprintf("%T", err)
}
