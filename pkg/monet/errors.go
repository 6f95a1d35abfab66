package monet

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is the panic value of a strict constructor or combinator
// called with a nil payload, handler or selector.
type ArgumentError struct {
	Op     string
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must not be nil"
	}
	return fmt.Sprintf("%s: %s %s", e.Op, e.Param, reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// RequireNonNil panics with an *ArgumentError when v is nil.
func RequireNonNil(op, param string, v any) {
	if IsNil(v) {
		panic(&ArgumentError{Op: op, Param: param})
	}
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recovered turns a value returned by recover into an error. Errors are
// returned unchanged so callers can still match them with errors.Is/As.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
