package stream

// Join concatenates the streams: each one is exhausted before the next is
// advanced. The result is endless if any of the streams is.
func Join[T any](first, second Stream[T], rest ...Stream[T]) Stream[T] {
	parts := make([]Stream[T], 0, 2+len(rest))
	parts = append(parts, first, second)
	parts = append(parts, rest...)
	return &concatStage[T]{parts: parts, endlessIfAny: true}
}

// Combine zips the streams positionally: each Next advances every stream
// in order, stopping at the first that is exhausted, and yields fn applied
// to their current elements. The result is endless only if every stream
// is. fn receives a fresh slice on every call.
func Combine[T, R any](fn func([]T) R, first, second Stream[T], rest ...Stream[T]) Stream[R] {
	parts := make([]Stream[T], 0, 2+len(rest))
	parts = append(parts, first, second)
	parts = append(parts, rest...)
	return &combineStage[T, R]{parts: parts, fn: fn}
}

// Combine2 zips two streams of different element types.
func Combine2[A, B, R any](fn func(A, B) R, a Stream[A], b Stream[B]) Stream[R] {
	return &combine2Stage[A, B, R]{a: a, b: b, fn: fn}
}

// Combine3 zips three streams of different element types.
func Combine3[A, B, C, R any](fn func(A, B, C) R, a Stream[A], b Stream[B], c Stream[C]) Stream[R] {
	ab := Combine2(func(x A, y B) pair[A, B] { return pair[A, B]{x, y} }, a, b)
	return Combine2(func(p pair[A, B], z C) R { return fn(p.first, p.second, z) }, ab, c)
}

type pair[A, B any] struct {
	first  A
	second B
}

// --- concatenation (join, flat) ---

type concatStage[T any] struct {
	parts []Stream[T]
	idx   int
	// endlessIfAny selects the classification: any part endless (join)
	// or every part endless (flat).
	endlessIfAny bool
}

func (c *concatStage[T]) Front() T { return c.parts[c.idx].Front() }

func (c *concatStage[T]) Next() bool {
	for c.idx < len(c.parts) {
		if c.parts[c.idx].Next() {
			return true
		}
		c.idx++
	}
	return false
}

func (c *concatStage[T]) Endless() bool {
	if c.endlessIfAny {
		for _, p := range c.parts {
			if p.Endless() {
				return true
			}
		}
		return false
	}
	if len(c.parts) == 0 {
		return false
	}
	for _, p := range c.parts {
		if !p.Endless() {
			return false
		}
	}
	return true
}

func (c *concatStage[T]) Clone() Stream[T] {
	parts := make([]Stream[T], len(c.parts))
	for i, p := range c.parts {
		if parts[i] = cloneOf(p); parts[i] == nil {
			return nil
		}
	}
	return &concatStage[T]{parts: parts, idx: c.idx, endlessIfAny: c.endlessIfAny}
}

// --- combination ---

type combineStage[T, R any] struct {
	parts []Stream[T]
	fn    func([]T) R
	cache R
}

func (c *combineStage[T, R]) Front() R { return c.cache }

func (c *combineStage[T, R]) Next() bool {
	for _, p := range c.parts {
		if !p.Next() {
			return false
		}
	}
	fronts := make([]T, len(c.parts))
	for i, p := range c.parts {
		fronts[i] = p.Front()
	}
	c.cache = c.fn(fronts)
	return true
}

func (c *combineStage[T, R]) Endless() bool {
	for _, p := range c.parts {
		if !p.Endless() {
			return false
		}
	}
	return true
}

func (c *combineStage[T, R]) Clone() Stream[R] {
	parts := make([]Stream[T], len(c.parts))
	for i, p := range c.parts {
		if parts[i] = cloneOf(p); parts[i] == nil {
			return nil
		}
	}
	return &combineStage[T, R]{parts: parts, fn: c.fn, cache: c.cache}
}

type combine2Stage[A, B, R any] struct {
	a     Stream[A]
	b     Stream[B]
	fn    func(A, B) R
	cache R
}

func (c *combine2Stage[A, B, R]) Front() R { return c.cache }

func (c *combine2Stage[A, B, R]) Next() bool {
	if !c.a.Next() || !c.b.Next() {
		return false
	}
	c.cache = c.fn(c.a.Front(), c.b.Front())
	return true
}

func (c *combine2Stage[A, B, R]) Endless() bool {
	return c.a.Endless() && c.b.Endless()
}

func (c *combine2Stage[A, B, R]) Clone() Stream[R] {
	a := cloneOf(c.a)
	b := cloneOf(c.b)
	if a == nil || b == nil {
		return nil
	}
	return &combine2Stage[A, B, R]{a: a, b: b, fn: c.fn, cache: c.cache}
}
