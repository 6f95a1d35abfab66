package option

import (
	"github.com/ib-77/monet/pkg/monet"
)

// Map returns None for None and Of(f(v)) for Some(v), so a nil result collapses to None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	monet.RequireNonNil("option.Map", "f", f)

	if !o.present {
		return None[U]()
	}
	return Of(f(o.value))
}

// Bind returns None for None and f(v) for Some(v).
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	monet.RequireNonNil("option.Bind", "f", f)

	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// BindProject binds o to bind and combines both values with project.
// It is two nested Binds: evaluation stops at the first None.
func BindProject[T, U, R any](o Option[T], bind func(T) Option[U], project func(T, U) R) Option[R] {
	monet.RequireNonNil("option.BindProject", "bind", bind)
	monet.RequireNonNil("option.BindProject", "project", project)

	return Bind(o, func(t T) Option[R] {
		return Bind(bind(t), func(u U) Option[R] {
			return Of(project(t, u))
		})
	})
}

// Flatten collapses a nested Option: None and Some(None) both become None.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.present {
		return None[T]()
	}
	return o.value
}

// Match returns onSome(v) for Some(v) and onNone() for None. Both handlers are required.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	monet.RequireNonNil("option.Match", "onSome", onSome)
	monet.RequireNonNil("option.Match", "onNone", onNone)

	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Try calls f and returns Of its result. A panic inside f yields None;
// what was raised is discarded.
func Try[T any](f func() T) (o Option[T]) {
	monet.RequireNonNil("option.Try", "f", f)

	defer func() {
		if r := recover(); r != nil {
			o = None[T]()
		}
	}()

	return Of(f())
}

// TryE is Try for functions reporting failure through an error:
// a non-nil error yields None as well.
func TryE[T any](f func() (T, error)) (o Option[T]) {
	monet.RequireNonNil("option.TryE", "f", f)

	defer func() {
		if r := recover(); r != nil {
			o = None[T]()
		}
	}()

	v, err := f()
	if err != nil {
		return None[T]()
	}
	return Of(v)
}
