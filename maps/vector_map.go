// Package maps provides insertion-ordered associative containers backed by
// parallel slices. Lookups scan the keys linearly and compare them for
// equality; keys are never hashed or ordered.
package maps

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/vectormap/assert"
	"github.com/amp-labs/vectormap/compare"
	"github.com/amp-labs/vectormap/errors"
	"github.com/amp-labs/vectormap/optional"
	"github.com/amp-labs/vectormap/try"
)

var (
	_ Mapping[int, string]    = (*VectorMap[int, string])(nil)
	_ Mapping[string, string] = (*VectorMap[string, string])(nil)
)

// VectorMap is an insertion-ordered map from K to V stored as two parallel
// slices. keys[i] always corresponds to values[i], and no two keys are
// equal. Entries can be added or updated in place but never removed.
//
// Lookup and insertion are O(n). Use one of the constructors; the zero
// VectorMap has no equality function and is not usable.
//
// Thread-safety: VectorMap is not thread-safe.
type VectorMap[K any, V any] struct {
	keys   []K
	values []V
	equals compare.EqualFunc[K]
	intKey bool
}

// New creates an empty VectorMap whose keys are compared with ==.
//
// Example:
//
//	m := maps.New[int, rune]()
//	m.Insert(0, 'a')
//	m.Insert(1, 'b')
//	_, inserted := m.Insert(1, 'x') // inserted == false, value stays 'b'
func New[K comparable, V any](opts ...Option) *VectorMap[K, V] {
	return NewWithEquals[K, V](compare.Builtin[K](), opts...)
}

// NewComparable creates an empty VectorMap whose keys are compared with
// their own Equals method.
func NewComparable[K compare.Comparable[K], V any](opts ...Option) *VectorMap[K, V] {
	return NewWithEquals[K, V](compare.Method[K](), opts...)
}

// NewWithEquals creates an empty VectorMap using eq for key equality.
// It panics if eq is nil.
func NewWithEquals[K any, V any](eq compare.EqualFunc[K], opts ...Option) *VectorMap[K, V] {
	if eq == nil {
		panic("maps: nil key equality function")
	}

	o := buildOptions(opts)

	return &VectorMap[K, V]{
		keys:   make([]K, 0, o.capacity),
		values: make([]V, 0, o.capacity),
		equals: eq,
		intKey: IsIntKey[K](),
	}
}

func (m *VectorMap[K, V]) indexOf(key K) int {
	return compare.IndexFunc(m.keys, key, m.equals)
}

// push appends an entry and returns a pointer to its value slot.
func (m *VectorMap[K, V]) push(key K, value V) *V {
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)

	assert.SameLen(m.keys, m.values)

	return &m.values[len(m.values)-1]
}

// Insert adds key with value unless an equal key is already present.
// It returns the key and true if the entry was added, or the key and false
// if the map was left unchanged. Existing values are never replaced.
func (m *VectorMap[K, V]) Insert(key K, value V) (K, bool) {
	if m.indexOf(key) >= 0 {
		return key, false
	}

	m.push(key, value)

	return key, true
}

// GetOrInsertDefault returns a pointer to the value stored for key. If key
// is absent it is appended with the zero value of V first, so the map grows
// by one. The pointer is invalidated by the next call that adds an entry.
func (m *VectorMap[K, V]) GetOrInsertDefault(key K) *V {
	if idx := m.indexOf(key); idx >= 0 {
		return &m.values[idx]
	}

	var value V

	return m.push(key, value)
}

// At returns a pointer to the value stored for key so the caller can update
// it in place. It fails with errors.ErrKeyNotFound when key is absent and
// never modifies the map.
func (m *VectorMap[K, V]) At(key K) (*V, error) {
	idx := m.indexOf(key)
	if idx < 0 {
		return nil, errors.KeyNotFound(key)
	}

	return &m.values[idx], nil
}

// Get returns a copy of the value stored for key, or an error wrapping
// errors.ErrKeyNotFound.
func (m *VectorMap[K, V]) Get(key K) (V, error) { //nolint:ireturn
	ptr, err := m.At(key)
	if err != nil {
		var value V

		return value, err
	}

	return *ptr, nil
}

// Find returns the value stored for key, or None if key is absent.
func (m *VectorMap[K, V]) Find(key K) optional.Value[V] {
	if idx := m.indexOf(key); idx >= 0 {
		return optional.Some(m.values[idx])
	}

	return optional.None[V]()
}

// TryGet returns the result of Get as a single Try value.
func (m *VectorMap[K, V]) TryGet(key K) try.Try[V] {
	value, err := m.Get(key)

	return try.Of(value, err)
}

// Contains reports whether an equal key is present.
func (m *VectorMap[K, V]) Contains(key K) bool {
	return m.indexOf(key) >= 0
}

// Len returns the number of entries.
func (m *VectorMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy, so
// editing it cannot introduce duplicate keys into the map.
func (m *VectorMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns a snapshot of the values in insertion order. The slice is
// a copy: later updates through At or GetOrInsertDefault do not show up in
// it, and writes to it do not reach the map.
func (m *VectorMap[K, V]) Values() []V {
	return slices.Clone(m.values)
}

// Entries returns a snapshot of all entries in insertion order.
func (m *VectorMap[K, V]) Entries() []KeyValuePair[K, V] {
	entries := make([]KeyValuePair[K, V], len(m.keys))
	for i := range m.keys {
		entries[i] = KeyValuePair[K, V]{Key: m.keys[i], Value: m.values[i]}
	}

	return entries
}

// Seq returns an iterator over the entries in insertion order, compatible
// with range-over-func:
//
//	for key, value := range m.Seq() { ... }
//
// The map must not grow while the iterator is running.
func (m *VectorMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// IsIntKey reports whether K is exactly int.
func (m *VectorMap[K, V]) IsIntKey() bool {
	return m.intKey
}

// String renders one "key: <k> value: <v>" line per entry.
func (m *VectorMap[K, V]) String() string {
	var sb strings.Builder

	for key, value := range m.Seq() {
		_, _ = fmt.Fprintf(&sb, "key: %v value: %v\n", key, value)
	}

	return sb.String()
}
