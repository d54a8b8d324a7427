// Package try provides Try, a value-or-error result. The maps package
// returns it from TryGet so a lookup can be passed around as one value
// instead of a (value, error) pair.
package try

// Try holds either a successful Value or an Error.
type Try[A any] struct {
	Value A
	Error error
}

// Of packs a (value, error) pair into a Try. The value is dropped when
// err is non-nil.
func Of[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}

	return Success(value)
}

// Success wraps a value.
func Success[A any](value A) Try[A] {
	return Try[A]{Value: value}
}

// Failure wraps an error.
func Failure[A any](err error) Try[A] {
	return Try[A]{Error: err}
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

// Get unpacks the Try. On failure the value is always the zero value.
func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	}

	return t.Value, nil
}

func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	}

	return defaultValue
}

// Map applies f to a successful value. Failures pass through untouched.
func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsFailure() {
		return Failure[B](t.Error)
	}

	value, err := f(t.Value)

	return Of(value, err)
}
