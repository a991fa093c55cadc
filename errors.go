package apl360

import (
	"errors"
	"fmt"
)

// ErrKind enumerates the failure classes of the evaluation pipeline.
// Every error returned by the core is an *Error carrying one of these kinds.
type ErrKind int8

// Failure classes. Malformed postfix streams and stack underflows count as
// syntax errors; ErrDepth guards against unbounded recursion on adversarially
// nested input.
const (
	ErrSyntax ErrKind = iota // unknown character, unmatched grouping, malformed expression
	ErrName                  // reference to an unbound identifier
	ErrValue                 // malformed literal, bad iota argument, shape mismatch
	ErrDomain                // division by zero, log of non-positive, invalid power
	ErrIndex                 // 1-based index out of range, non-indexable target
	ErrDepth                 // nesting/recursion limit exceeded
)

func (k ErrKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrName:
		return "name error"
	case ErrValue:
		return "value error"
	case ErrDomain:
		return "domain error"
	case ErrIndex:
		return "index error"
	case ErrDepth:
		return "depth error"
	}
	return "error"
}

// Error is the error type returned by all core operations. It never wraps
// other errors; the pipeline aborts on the first failure.
type Error struct {
	kind ErrKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Kind returns the failure class of e.
func (e *Error) Kind() ErrKind {
	return e.kind
}

// Errorf creates an *Error of kind k with a formatted message.
func Errorf(k ErrKind, format string, a ...interface{}) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, a...)}
}

// KindOf extracts the failure class from an error returned by the core.
// ok is false for nil and for foreign errors.
func KindOf(err error) (kind ErrKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}
