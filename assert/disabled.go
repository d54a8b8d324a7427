//go:build assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// True would panic unless value is true; assertions are disabled.
func True(bool, ...any) {}

// False would panic unless value is false; assertions are disabled.
func False(bool, ...any) {}

// NotNil would panic if value is nil; assertions are disabled.
func NotNil(any, ...any) {}

// SameLen would panic unless a and b have the same length; assertions are
// disabled.
func SameLen[A, B any]([]A, []B) {}
