//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics unless value is true. If the first arg is a string it is
// used as a format string for the remaining args.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args))
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil panics if value is nil.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// SameLen panics unless a and b have the same length.
func SameLen[A, B any](a []A, b []B) {
	if len(a) == len(b) {
		return
	}

	panic(failure([]any{"parallel slices out of sync: %d != %d", len(a), len(b)}))
}
