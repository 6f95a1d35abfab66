package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/monet/pkg/monet"
)

// Result is either Ok with a value of type T or Error with a value of type E.
// T and E should be distinct types for From to be unambiguous.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok returns a success. It panics with *monet.ArgumentError if v is nil.
func Ok[T, E any](v T) Result[T, E] {
	monet.RequireNonNil("result.Ok", "value", v)
	return Result[T, E]{ok: v, isOk: true}
}

// Error returns a failure. It panics with *monet.ArgumentError if e is nil.
func Error[T, E any](e E) Result[T, E] {
	monet.RequireNonNil("result.Error", "error", e)
	return Result[T, E]{err: e}
}

// From builds a Result from a bare value: a T becomes Ok, otherwise an E
// becomes Error. T is checked first, so when T and E coincide the value is Ok.
// A nil value or a value of any other type panics with *monet.ArgumentError.
func From[T, E any](v any) Result[T, E] {
	monet.RequireNonNil("result.From", "value", v)

	if t, ok := v.(T); ok {
		return Ok[T, E](t)
	}
	if e, ok := v.(E); ok {
		return Error[T](e)
	}

	panic(&monet.ArgumentError{
		Op:     "result.From",
		Param:  "value",
		Reason: fmt.Sprintf("of type %T is neither %s nor %s", v, monet.TypeName[T](), monet.TypeName[E]()),
	})
}

// Of turns a (value, error) pair into a Result. A nil value without an error
// is reported as an *monet.ArgumentError failure.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Error[T](err)
	}
	if monet.IsNil(v) {
		return Error[T, error](&monet.ArgumentError{Op: "result.Of", Param: "value"})
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsError() bool {
	return !r.isOk
}

// Get returns the success value and whether r is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.ok, r.isOk
}

// GetError returns the failure value and whether r is Error.
func (r Result[T, E]) GetError() (E, bool) {
	return r.err, !r.isOk
}

// GetValueOrDefault returns the success value, or fallback for an Error.
// A nil fallback panics with *monet.ArgumentError.
func (r Result[T, E]) GetValueOrDefault(fallback T) T {
	monet.RequireNonNil("result.GetValueOrDefault", "fallback", fallback)
	if r.isOk {
		return r.ok
	}
	return fallback
}

// Match calls onOk or onError. Both handlers are required.
func (r Result[T, E]) Match(onOk func(T), onError func(E)) {
	monet.RequireNonNil("result.Match", "onOk", onOk)
	monet.RequireNonNil("result.Match", "onError", onError)

	if r.isOk {
		onOk(r.ok)
	} else {
		onError(r.err)
	}
}

// Equal reports whether both are Ok with deeply equal values or both are
// Error with deeply equal errors.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.ok, other.ok)
	}
	return reflect.DeepEqual(r.err, other.err)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Result.Ok<%s>: %v", monet.TypeName[T](), r.ok)
	}
	return fmt.Sprintf("Result.Error<%s>: %v", monet.TypeName[E](), r.err)
}
