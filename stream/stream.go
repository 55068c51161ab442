package stream

// Stream provides pull-based sequential access to a sequence of values.
//
// Front is only meaningful after Next has returned true, and keeps
// returning the same element until the following Next. Once Next returns
// false the stream is exhausted and must not be used again, unless the
// stage is explicitly cyclic (Loop).
type Stream[T any] interface {
	// Front returns the current element.
	Front() T
	// Next advances to the next element and reports whether it exists.
	Next() bool
	// Endless reports whether the stream is declared able to produce
	// elements without bound. It is an upper bound, not an exact answer.
	Endless() bool
}

// Cloner is implemented by stages with value semantics. Clone returns an
// independent copy of the stage and its whole upstream in their current
// state, or nil when some part of the chain cannot be copied.
type Cloner[T any] interface {
	Clone() Stream[T]
}

// Clone copies s if it supports copying.
func Clone[T any](s Stream[T]) (Stream[T], bool) {
	c, ok := s.(Cloner[T])
	if !ok {
		return nil, false
	}
	cp := c.Clone()
	return cp, cp != nil
}

// cloneOf is used by stage Clone methods: it yields nil when the upstream
// cannot be copied so the whole chain reports itself as non-clonable.
func cloneOf[T any](s Stream[T]) Stream[T] {
	cp, ok := Clone(s)
	if !ok {
		return nil
	}
	return cp
}

// Builder combines with a stream to produce a new stage or a final result.
type Builder[T, R any] interface {
	Build(s Stream[T]) (R, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc[T, R any] func(s Stream[T]) (R, error)

// Build calls f(s).
func (f BuilderFunc[T, R]) Build(s Stream[T]) (R, error) {
	return f(s)
}

// stage builds a Builder for a wrapping stage that cannot fail.
func stage[T, U any](wrap func(Stream[T]) Stream[U]) Builder[T, Stream[U]] {
	return BuilderFunc[T, Stream[U]](func(s Stream[T]) (Stream[U], error) {
		return wrap(s), nil
	})
}

// Then applies b to s. The stream is handed over to the builder and must
// not be used by the caller afterwards.
func Then[T, R any](s Stream[T], b Builder[T, R]) (R, error) {
	return b.Build(s)
}

// Chain applies element-preserving builders in order and stops at the
// first error.
func Chain[T any](s Stream[T], builders ...Builder[T, Stream[T]]) (Stream[T], error) {
	var err error
	for _, b := range builders {
		if s, err = b.Build(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Compose returns a builder that applies a and then b.
func Compose[T, U, R any](a Builder[T, Stream[U]], b Builder[U, R]) Builder[T, R] {
	return BuilderFunc[T, R](func(s Stream[T]) (R, error) {
		mid, err := a.Build(s)
		if err != nil {
			var zero R
			return zero, err
		}
		return b.Build(mid)
	})
}

// Must returns r and panics if err is non-nil.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}
