// Package compare provides the key-equality capabilities used by the
// linear-scan containers. Nothing here hashes or orders values: equality
// is the only requirement placed on keys.
package compare

// Comparable is implemented by types that define their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// EqualFunc reports whether a and b are equal.
type EqualFunc[T any] func(a, b T) bool

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Builtin returns an EqualFunc based on the == operator.
func Builtin[T comparable]() EqualFunc[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// Method returns an EqualFunc that delegates to T's Equals method.
func Method[T Comparable[T]]() EqualFunc[T] {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}

// IndexFunc returns the index of the first element of items equal to
// target under eq, or -1 if there is none.
func IndexFunc[T any](items []T, target T, eq EqualFunc[T]) int {
	for i := range items {
		if eq(items[i], target) {
			return i
		}
	}

	return -1
}
