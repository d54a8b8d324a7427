package maps

import (
	"github.com/amp-labs/vectormap/errors"
	"github.com/amp-labs/vectormap/optional"
	"github.com/amp-labs/vectormap/try"
	"github.com/amp-labs/vectormap/zero"
)

var _ Mapping[bool, string] = (*BoolMap[string])(nil)

// BoolMap is the bool-keyed counterpart of VectorMap. It keeps exactly two
// value slots instead of slices.
//
// A slot counts as unset while it holds the zero value of V. Storing the
// zero value is therefore indistinguishable from never storing anything:
// Insert(true, "") succeeds, yet At(true) still reports ErrKeyNotFound and
// a later Insert(true, "x") succeeds too. Use TrackedBoolMap when that
// matters.
//
// The zero BoolMap is empty and ready to use.
type BoolMap[V any] struct {
	trueValue  V
	falseValue V
}

// NewBoolMap creates an empty BoolMap.
func NewBoolMap[V any]() *BoolMap[V] {
	return &BoolMap[V]{}
}

func (m *BoolMap[V]) slot(key bool) *V {
	if key {
		return &m.trueValue
	}

	return &m.falseValue
}

func (m *BoolMap[V]) isSet(key bool) bool {
	return !zero.IsZero(*m.slot(key))
}

// Insert stores value under key if the slot is unset. It returns key and
// whether the value was stored.
func (m *BoolMap[V]) Insert(key bool, value V) (bool, bool) {
	if m.isSet(key) {
		return key, false
	}

	*m.slot(key) = value

	return key, true
}

// GetOrInsertDefault returns a pointer to the slot for key, set or not.
func (m *BoolMap[V]) GetOrInsertDefault(key bool) *V {
	return m.slot(key)
}

// At returns a pointer to the slot for key, or ErrKeyNotFound while the
// slot holds the zero value.
func (m *BoolMap[V]) At(key bool) (*V, error) {
	if !m.isSet(key) {
		return nil, errors.SlotNotSpecified(key)
	}

	return m.slot(key), nil
}

// Get returns a copy of the slot for key, or ErrKeyNotFound while it
// holds the zero value.
func (m *BoolMap[V]) Get(key bool) (V, error) { //nolint:ireturn
	if !m.isSet(key) {
		return zero.Value[V](), errors.SlotNotSpecified(key)
	}

	return *m.slot(key), nil
}

// Find returns the slot for key, or None while it holds the zero value.
func (m *BoolMap[V]) Find(key bool) optional.Value[V] {
	return optional.Of(*m.slot(key), m.isSet(key))
}

// TryGet returns the result of Get as a single Try value.
func (m *BoolMap[V]) TryGet(key bool) try.Try[V] {
	value, err := m.Get(key)

	return try.Of(value, err)
}

// Contains reports whether the slot for key holds a non-zero value.
func (m *BoolMap[V]) Contains(key bool) bool {
	return m.isSet(key)
}

// Len returns the number of set slots, between 0 and 2.
func (m *BoolMap[V]) Len() int {
	return countSet(m.isSet(true), m.isSet(false))
}

// IsIntKey is always false for bool keys.
func (m *BoolMap[V]) IsIntKey() bool {
	return false
}

func countSet(flags ...bool) int {
	n := 0

	for _, f := range flags {
		if f {
			n++
		}
	}

	return n
}
