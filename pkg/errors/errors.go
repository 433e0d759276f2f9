// Package errors augments the standard errors with sentinel values
// that can wrap an underlying cause.
//
// Sentinels are declared once (typically in a status package) and
// wrapped at the failure site:
//
//	return status.ErrCopy.Wrap(err)
//
// Wrap returns a copy, so the declared sentinel is never mutated.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
type Error struct {
	msg    string
	err    error
	parent *Error
}

// Error message, followed by the wrapped cause if any
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error. The receiver is left untouched.
func (e *Error) Wrap(err error) *Error {
	root := e
	if e.parent != nil {
		root = e.parent
	}
	return &Error{msg: e.msg, err: err, parent: root}
}

// WrapMessage wraps a plain message as the cause.
func (e *Error) WrapMessage(format string, args ...interface{}) *Error {
	return e.Wrap(stderr.New(fmt.Sprintf(format, args...)))
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.parent != nil && e.parent == t
}

// As finds the first error in err's chain that matches target
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
