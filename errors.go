package bigint

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of every error returned by this package.
var Error = errs.Class("bigint")

// ErrorKind classifies a failed operation. Use errors.Is(err, DivisionByZero)
// or Kind(err) to inspect an error returned by this package.
type ErrorKind int

const (
	// InvalidArgument is returned for a non-positive size passed to a sizing
	// operation, or for an empty byte representation.
	InvalidArgument ErrorKind = iota + 1

	// DivisionByZero is returned by Quo, Rem and QuoRem when the divisor is
	// zero.
	DivisionByZero

	// InvalidStringLiteral is returned when a string is not a decimal
	// integer matching [+-]?[0-9]+.
	InvalidStringLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case DivisionByZero:
		return "division by zero"
	case InvalidStringLiteral:
		return "invalid string literal"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

func (k ErrorKind) Error() string { return k.String() }

// Kind returns the ErrorKind carried by err, or 0 if err did not come from
// this package.
func Kind(err error) ErrorKind {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string {
	if e.msg == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.msg
}

func (e *kindError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.kind
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return Error.Wrap(&kindError{kind: kind, msg: fmt.Sprintf(format, args...)})
}
