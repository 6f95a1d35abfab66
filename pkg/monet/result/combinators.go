package result

import (
	"github.com/ib-77/monet/pkg/monet"
	"github.com/ib-77/monet/pkg/monet/option"
)

// Map applies f to an Ok value; an Error passes through unchanged.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	monet.RequireNonNil("result.Map", "f", f)

	if !r.isOk {
		return Error[U](r.err)
	}
	return Ok[U, E](f(r.ok))
}

// MapError applies f to an Error value; an Ok passes through unchanged.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	monet.RequireNonNil("result.MapError", "f", f)

	if r.isOk {
		return Ok[T, F](r.ok)
	}
	return Error[T](f(r.err))
}

// Bind returns f(v) for Ok(v); an Error short-circuits.
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	monet.RequireNonNil("result.Bind", "f", f)

	if !r.isOk {
		return Error[U](r.err)
	}
	return f(r.ok)
}

// BindProject binds r to bind and combines both values with project.
// It is two nested Binds: the first Error is returned.
func BindProject[T, U, R, E any](r Result[T, E], bind func(T) Result[U, E], project func(T, U) R) Result[R, E] {
	monet.RequireNonNil("result.BindProject", "bind", bind)
	monet.RequireNonNil("result.BindProject", "project", project)

	return Bind(r, func(t T) Result[R, E] {
		return Bind(bind(t), func(u U) Result[R, E] {
			return Ok[R, E](project(t, u))
		})
	})
}

// AsError widens the error type to error.
func AsError[T any, E error](r Result[T, E]) Result[T, error] {
	return MapError(r, func(e E) error { return e })
}

// Match returns onOk(v) or onError(e). Both handlers are required.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onError func(E) R) R {
	monet.RequireNonNil("result.Match", "onOk", onOk)
	monet.RequireNonNil("result.Match", "onError", onError)

	if r.isOk {
		return onOk(r.ok)
	}
	return onError(r.err)
}

// Try calls f and returns Ok with its result. A panic inside f becomes an
// Error carrying the raised value: errors are kept as is, anything else is
// wrapped in *monet.PanicError. A nil result is an *monet.ArgumentError failure.
func Try[T any](f func() T) (r Result[T, error]) {
	monet.RequireNonNil("result.Try", "f", f)

	defer func() {
		if rec := recover(); rec != nil {
			r = Error[T](monet.Recovered(rec))
		}
	}()

	return Ok[T, error](f())
}

// TryE is Try for functions reporting failure through an error.
func TryE[T any](f func() (T, error)) (r Result[T, error]) {
	monet.RequireNonNil("result.TryE", "f", f)

	defer func() {
		if rec := recover(); rec != nil {
			r = Error[T](monet.Recovered(rec))
		}
	}()

	v, err := f()
	return Of(v, err)
}

// FromOption returns Ok for Some and Error(e) for None. A nil e panics
// with *monet.ArgumentError.
func FromOption[T, E any](o option.Option[T], e E) Result[T, E] {
	monet.RequireNonNil("result.FromOption", "error", e)

	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Error[T](e)
}

// ToOption returns Some for Ok and None for Error, dropping the error.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	if !r.isOk {
		return option.None[T]()
	}
	return option.Some(r.ok)
}
