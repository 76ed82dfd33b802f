package util

import "reflect"

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// IsNil reports whether v is nil, including typed nils held in an interface
// (nil pointers, maps, slices, funcs, chans and interfaces).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return IsNilValue(reflect.ValueOf(v))
}

// IsNilValue is IsNil for an already reflected value.
func IsNilValue(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
