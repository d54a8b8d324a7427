// Package errors holds the error values shared by the vectormap packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by the must-exist accessors when no entry
// matches the requested key. Callers should test for it with errors.Is,
// since it is always wrapped with the offending key.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFound wraps ErrKeyNotFound with a description of the missing key.
func KeyNotFound(key any) error {
	return fmt.Errorf("%w: value for non existing key %v requested", ErrKeyNotFound, key)
}

// SlotNotSpecified wraps ErrKeyNotFound for the two-slot bool maps, where
// "missing" means the slot was never given a value.
func SlotNotSpecified(key bool) error {
	return fmt.Errorf("%w: value for %t not specified", ErrKeyNotFound, key)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Nil errors are ignored, so callers can Add the result of every call
// and check HasError once at the end.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when
// there is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
