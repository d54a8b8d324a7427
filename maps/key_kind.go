package maps

import "github.com/amp-labs/vectormap/zero"

// IsIntKey reports whether K is exactly the built-in int type. Named types
// whose underlying type is int, other integer widths and interface types
// all report false. The answer depends only on the instantiation of K.
//
//	maps.IsIntKey[int]()    // true
//	maps.IsIntKey[uint]()   // false
//	maps.IsIntKey[string]() // false
func IsIntKey[K any]() bool {
	_, ok := any(zero.Value[K]()).(int)

	return ok
}
