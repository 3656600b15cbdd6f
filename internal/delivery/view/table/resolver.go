package table

// Resolver is either a fixed value or a function of the row, resolved once per row at render time.
type Resolver[T any] struct {
	value    T
	computed func(row Record) T
}

// Static resolves to v for every row.
func Static[T any](v T) Resolver[T] {
	return Resolver[T]{value: v}
}

// Computed resolves by calling fn with the row.
func Computed[T any](fn func(row Record) T) Resolver[T] {
	return Resolver[T]{computed: fn}
}

// Resolve returns the value for row. A panicking function resolves to the zero value.
func (r Resolver[T]) Resolve(row Record) (out T) {
	if r.computed == nil {
		return r.value
	}

	defer func() {
		if recover() != nil {
			var zero T
			out = zero
		}
	}()

	return r.computed(row)
}
