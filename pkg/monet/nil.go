package monet

import "reflect"

// IsNil reports whether v is an absent value: a nil interface, or a nil
// pointer, map, slice, channel, func or unsafe pointer.
// Zero numbers, false, "" and empty non-nil slices are present.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// TypeName returns the name of T used in String renderings.
func TypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
