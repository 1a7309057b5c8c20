// Package reflectx holds the low-level reflect plumbing used to read the
// state of value types, including their unexported fields.
package reflectx

import (
	"reflect"
	"unsafe"
)

// IsNil reports whether v is invalid or a nil value of a nilable kind.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Addressable returns v when it is addressable and an addressable copy otherwise.
// v must not be a read-only value obtained through an unexported field.
func Addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	return cp
}

// Expose returns a view of v that can be passed to Interface.
// Values read through unexported fields are re-based on their address;
// ok is false when that is impossible because v is not addressable.
func Expose(v reflect.Value) (exposed reflect.Value, ok bool) {
	if !v.IsValid() || v.CanInterface() {
		return v, true
	}
	if !v.CanAddr() {
		return v, false
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true
}
