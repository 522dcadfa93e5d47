package esrp

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind uint8

const (
	// KindNotFound means the source file does not exist.
	KindNotFound Kind = iota
	// KindPermission means the source file exists but cannot be read.
	KindPermission
	// KindDecoding means the source bytes are not text in any supported encoding.
	KindDecoding
	// KindStructural means line classification failed; the error carries the
	// offending line number and its raw content.
	KindStructural
	// KindIndexOutOfRange means an accessor was called with an index past the
	// end of the scan or trace sequence.
	KindIndexOutOfRange
	// KindValidation means a data model invariant was violated during
	// construction, such as mismatched sample sequence lengths.
	KindValidation
	// KindUnsupported means an operation was requested that the receiver
	// cannot perform, such as a contradictory export option combination.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindDecoding:
		return "decoding error"
	case KindStructural:
		return "structural parse error"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindValidation:
		return "validation error"
	case KindUnsupported:
		return "unsupported operation"
	default:
		return "unknown error"
	}
}

// Error is the single error type produced by this package. Context fields are
// populated per Kind: Line and Content for structural parse errors, Requested
// and Available for index errors. Err holds the wrapped cause, if any.
type Error struct {
	Kind    Kind
	Message string

	Line    int
	Content string

	Requested int
	Available int

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStructural:
		if e.Err != nil {
			return fmt.Sprintf("parse line %d: %q: %v", e.Line, e.Content, e.Err)
		}
		return fmt.Sprintf("parse line %d: %q: %s", e.Line, e.Content, e.Message)
	case KindIndexOutOfRange:
		return fmt.Sprintf("%s %d out of range (%d available)", e.Message, e.Requested, e.Available)
	default:
		msg := e.Message
		if msg == "" {
			msg = e.Kind.String()
		}
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", msg, e.Err)
		}
		return msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func structuralError(line int, content string, cause error) *Error {
	return &Error{Kind: KindStructural, Line: line, Content: content, Err: cause}
}

func indexError(what string, requested, available int) *Error {
	return &Error{
		Kind:      KindIndexOutOfRange,
		Message:   what,
		Requested: requested,
		Available: available,
	}
}
