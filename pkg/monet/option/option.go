package option

import (
	"fmt"
	"reflect"

	"github.com/ib-77/monet/pkg/monet"
)

// Option is a value of type T or nothing. The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

// NoneMarker is the untyped absence marker, see Nothing and FromNone.
type NoneMarker struct{}

// Nothing converts to the None of any Option[T] through FromNone.
var Nothing = NoneMarker{}

// Some returns a present Option. It panics with *monet.ArgumentError if v is nil;
// use Of for values that may legitimately be nil.
func Some[T any](v T) Option[T] {
	monet.RequireNonNil("option.Some", "value", v)
	return Option[T]{value: v, present: true}
}

// Of returns None when v is nil and Some(v) otherwise.
func Of[T any](v T) Option[T] {
	if monet.IsNil(v) {
		return None[T]()
	}
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNone converts the untyped marker to None of T.
func FromNone[T any](_ NoneMarker) Option[T] {
	return None[T]()
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// ToPtr returns nil when o is None and a pointer to a copy of the value otherwise.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetValueOrDefault returns the value if present, fallback otherwise.
// A nil fallback panics with *monet.ArgumentError.
func (o Option[T]) GetValueOrDefault(fallback T) T {
	monet.RequireNonNil("option.GetValueOrDefault", "fallback", fallback)
	if o.present {
		return o.value
	}
	return fallback
}

// Match calls onSome with the value or onNone. Both handlers are required.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	monet.RequireNonNil("option.Match", "onSome", onSome)
	monet.RequireNonNil("option.Match", "onNone", onNone)

	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Equal reports whether both are None, or both are Some with deeply equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}
	return !o.present || reflect.DeepEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Option.Some<%s>: %v", monet.TypeName[T](), o.value)
	}
	return fmt.Sprintf("Option.None<%s>", monet.TypeName[T]())
}
