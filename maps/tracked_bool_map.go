package maps

import (
	"github.com/amp-labs/vectormap/errors"
	"github.com/amp-labs/vectormap/optional"
	"github.com/amp-labs/vectormap/try"
	"github.com/amp-labs/vectormap/zero"
)

var _ Mapping[bool, int] = (*TrackedBoolMap[int])(nil)

// TrackedBoolMap is a BoolMap that records presence explicitly, so a
// stored zero value is a real entry. Insert(true, 0) followed by At(true)
// returns 0 here, where BoolMap would report ErrKeyNotFound.
//
// GetOrInsertDefault marks its slot present, matching VectorMap.
//
// The zero TrackedBoolMap is empty and ready to use.
type TrackedBoolMap[V any] struct {
	slots   [2]V
	present [2]bool
}

// NewTrackedBoolMap creates an empty TrackedBoolMap.
func NewTrackedBoolMap[V any]() *TrackedBoolMap[V] {
	return &TrackedBoolMap[V]{}
}

// true lives in slot 0, false in slot 1.
func slotIndex(key bool) int {
	if key {
		return 0
	}

	return 1
}

// Insert stores value under key unless the slot is already present. It
// returns key and whether the value was stored. A zero value counts.
func (m *TrackedBoolMap[V]) Insert(key bool, value V) (bool, bool) {
	idx := slotIndex(key)
	if m.present[idx] {
		return key, false
	}

	m.slots[idx] = value
	m.present[idx] = true

	return key, true
}

// GetOrInsertDefault marks the slot for key present and returns a pointer
// to it.
func (m *TrackedBoolMap[V]) GetOrInsertDefault(key bool) *V {
	idx := slotIndex(key)
	m.present[idx] = true

	return &m.slots[idx]
}

// At returns a pointer to the slot for key, or ErrKeyNotFound if the slot
// was never set.
func (m *TrackedBoolMap[V]) At(key bool) (*V, error) {
	idx := slotIndex(key)
	if !m.present[idx] {
		return nil, errors.SlotNotSpecified(key)
	}

	return &m.slots[idx], nil
}

// Get returns a copy of the slot for key, or ErrKeyNotFound if the slot
// was never set.
func (m *TrackedBoolMap[V]) Get(key bool) (V, error) { //nolint:ireturn
	idx := slotIndex(key)
	if !m.present[idx] {
		return zero.Value[V](), errors.SlotNotSpecified(key)
	}

	return m.slots[idx], nil
}

// Find returns the slot for key, or None if the slot was never set.
func (m *TrackedBoolMap[V]) Find(key bool) optional.Value[V] {
	idx := slotIndex(key)

	return optional.Of(m.slots[idx], m.present[idx])
}

// TryGet returns the result of Get as a single Try value.
func (m *TrackedBoolMap[V]) TryGet(key bool) try.Try[V] {
	value, err := m.Get(key)

	return try.Of(value, err)
}

// Contains reports whether the slot for key was set.
func (m *TrackedBoolMap[V]) Contains(key bool) bool {
	return m.present[slotIndex(key)]
}

// Len returns the number of set slots, between 0 and 2.
func (m *TrackedBoolMap[V]) Len() int {
	return countSet(m.present[:]...)
}

// IsIntKey is always false for bool keys.
func (m *TrackedBoolMap[V]) IsIntKey() bool {
	return false
}
