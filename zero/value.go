// Package zero provides helpers for the zero value of generic types.
// The vectormap packages treat the zero value as the "default" value:
// GetOrInsertDefault stores it, and the two-slot bool map treats a slot
// holding it as unset.
package zero

import "reflect"

// Value returns the zero value for type T.
//
//	zero.Value[int]()       // 0
//	zero.Value[string]()    // ""
//	zero.Value[*MyStruct]() // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It works for any T, including slices, maps and structs that are not
// comparable with ==. A non-nil empty slice or map is not zero.
func IsZero[T any](value T) bool {
	return reflect.ValueOf(&value).Elem().IsZero()
}

// Equal reports whether value == the zero value of T. Prefer it over
// IsZero when T is known to be comparable.
func Equal[T comparable](value T) bool {
	var zeroVal T

	return value == zeroVal
}
