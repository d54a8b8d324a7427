package maps

// Option configures a VectorMap at construction.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity pre-sizes the backing slices for n entries. Growth past n
// follows the usual append doubling. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
