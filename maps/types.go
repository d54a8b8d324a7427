package maps

import (
	"github.com/amp-labs/vectormap/optional"
	"github.com/amp-labs/vectormap/try"
)

// KeyValuePair is a single entry of a map, as yielded by Entries.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// Mapping is the operation set shared by VectorMap and the two-slot bool
// maps. Lookups are linear scans by key equality; nothing is hashed.
//
// Pointers returned by GetOrInsertDefault and At stay valid until the next
// call that adds an entry. Do not hold one across an Insert or a
// GetOrInsertDefault of a new key.
//
// Thread-safety: implementations are not thread-safe. Concurrent access
// must be synchronized by the caller.
type Mapping[K any, V any] interface {
	// Insert adds key with value if no equal key is present. It returns
	// the key and whether an entry was added. An existing entry is never
	// updated.
	Insert(key K, value V) (K, bool)

	// GetOrInsertDefault returns a pointer to the value stored for key,
	// first adding key with the zero value if it is absent. It never fails.
	GetOrInsertDefault(key K) *V

	// At returns a pointer to the value stored for key, or an error
	// wrapping errors.ErrKeyNotFound. It never adds an entry.
	At(key K) (*V, error)

	// Get is the read-only form of At and returns a copy of the value.
	Get(key K) (V, error)

	// Find returns the value for key as an optional, None when absent.
	Find(key K) optional.Value[V]

	// TryGet returns the outcome of Get as a single value.
	TryGet(key K) try.Try[V]

	// Contains reports whether key is present.
	Contains(key K) bool

	// Len returns the number of entries.
	Len() int

	// IsIntKey reports whether the key type is exactly int.
	IsIntKey() bool
}
