package stream

import (
	"cmp"
	"iter"
)

// First returns the first element, if any. It pulls a single element and
// accepts endless streams.
func First[T any]() Builder[T, Optional[T]] {
	return BuilderFunc[T, Optional[T]](func(s Stream[T]) (Optional[T], error) {
		if s.Next() {
			return Some(s.Front()), nil
		}
		return None[T](), nil
	})
}

// ElementAt returns the element at zero-based position pos, if any. It
// accepts endless streams.
func ElementAt[T any](pos int) Builder[T, Optional[T]] {
	return Compose(Skip[T](pos), First[T]())
}

// Seq returns a single-use iterator over the remaining elements, for use
// with range. It accepts endless streams; the loop body decides when to
// stop.
func Seq[T any]() Builder[T, iter.Seq[T]] {
	return BuilderFunc[T, iter.Seq[T]](func(s Stream[T]) (iter.Seq[T], error) {
		return func(yield func(T) bool) {
			for s.Next() {
				if !yield(s.Front()) {
					return
				}
			}
		}, nil
	})
}

// ForEach calls fn for every element.
func ForEach[T any](fn func(T)) Builder[T, struct{}] {
	return BuilderFunc[T, struct{}](func(s Stream[T]) (struct{}, error) {
		if err := requireFinite("for_each", s); err != nil {
			return struct{}{}, err
		}
		for s.Next() {
			fn(s.Front())
		}
		return struct{}{}, nil
	})
}

// Reduce folds the elements from the left, seeded with the first element.
// An empty stream yields None.
func Reduce[T any](fn func(acc, v T) T) Builder[T, Optional[T]] {
	return BuilderFunc[T, Optional[T]](func(s Stream[T]) (Optional[T], error) {
		if err := requireFinite("reduce", s); err != nil {
			return None[T](), err
		}
		if !s.Next() {
			return None[T](), nil
		}
		acc := s.Front()
		for s.Next() {
			acc = fn(acc, s.Front())
		}
		return Some(acc), nil
	})
}

// Fold folds the elements from the left, starting from init.
func Fold[T, R any](init R, fn func(acc R, v T) R) Builder[T, R] {
	return BuilderFunc[T, R](func(s Stream[T]) (R, error) {
		if err := requireFinite("fold", s); err != nil {
			return init, err
		}
		acc := init
		for s.Next() {
			acc = fn(acc, s.Front())
		}
		return acc, nil
	})
}

// Bounds holds the smallest and largest element of a stream.
type Bounds[T any] struct {
	Min T
	Max T
}

// Min returns the smallest element.
func Min[T cmp.Ordered]() Builder[T, Optional[T]] { return MinFunc(cmp.Compare[T]) }

// Max returns the largest element.
func Max[T cmp.Ordered]() Builder[T, Optional[T]] { return MaxFunc(cmp.Compare[T]) }

// MinMax returns the smallest and the largest element in one pass.
func MinMax[T cmp.Ordered]() Builder[T, Optional[Bounds[T]]] { return MinMaxFunc(cmp.Compare[T]) }

// MinFunc returns the smallest element under compare. Among equal elements
// the last one wins.
func MinFunc[T any](compare func(a, b T) int) Builder[T, Optional[T]] {
	return extremum("min", func(cur, v T) bool { return compare(cur, v) >= 0 })
}

// MaxFunc returns the largest element under compare. Among equal elements
// the last one wins.
func MaxFunc[T any](compare func(a, b T) int) Builder[T, Optional[T]] {
	return extremum("max", func(cur, v T) bool { return compare(v, cur) >= 0 })
}

// extremum scans the stream and replaces the running value whenever
// replace(cur, v) holds.
func extremum[T any](op string, replace func(cur, v T) bool) Builder[T, Optional[T]] {
	return BuilderFunc[T, Optional[T]](func(s Stream[T]) (Optional[T], error) {
		if err := requireFinite(op, s); err != nil {
			return None[T](), err
		}
		if !s.Next() {
			return None[T](), nil
		}
		cur := s.Front()
		for s.Next() {
			if v := s.Front(); replace(cur, v) {
				cur = v
			}
		}
		return Some(cur), nil
	})
}

// MinMaxFunc returns the smallest and the largest element under compare in
// one pass, with the same tie-breaking as MinFunc and MaxFunc.
func MinMaxFunc[T any](compare func(a, b T) int) Builder[T, Optional[Bounds[T]]] {
	return BuilderFunc[T, Optional[Bounds[T]]](func(s Stream[T]) (Optional[Bounds[T]], error) {
		if err := requireFinite("minmax", s); err != nil {
			return None[Bounds[T]](), err
		}
		if !s.Next() {
			return None[Bounds[T]](), nil
		}
		b := Bounds[T]{Min: s.Front(), Max: s.Front()}
		for s.Next() {
			v := s.Front()
			if compare(b.Min, v) >= 0 {
				b.Min = v
			}
			if compare(v, b.Max) >= 0 {
				b.Max = v
			}
		}
		return Some(b), nil
	})
}

// AllMatch reports whether pred holds for every element. It stops at the
// first element that fails.
func AllMatch[T any](pred func(T) bool) Builder[T, bool] {
	return match("all_match", pred, false, true)
}

// AnyMatch reports whether pred holds for some element. It stops at the
// first element that matches.
func AnyMatch[T any](pred func(T) bool) Builder[T, bool] {
	return match("any_match", pred, true, false)
}

// NoneMatch reports whether pred holds for no element. It stops at the
// first element that matches.
func NoneMatch[T any](pred func(T) bool) Builder[T, bool] {
	return match("none_match", pred, true, true)
}

// match returns !whenAllPass as soon as pred(v) == stopOn, and whenAllPass
// otherwise.
func match[T any](op string, pred func(T) bool, stopOn, whenAllPass bool) Builder[T, bool] {
	return BuilderFunc[T, bool](func(s Stream[T]) (bool, error) {
		if err := requireFinite(op, s); err != nil {
			return false, err
		}
		for s.Next() {
			if pred(s.Front()) == stopOn {
				return !whenAllPass, nil
			}
		}
		return whenAllPass, nil
	})
}

// Count returns the number of elements.
func Count[T any]() Builder[T, int] {
	return BuilderFunc[T, int](func(s Stream[T]) (int, error) {
		if err := requireFinite("count", s); err != nil {
			return 0, err
		}
		n := 0
		for s.Next() {
			n++
		}
		return n, nil
	})
}

// Incrementer is a counter that CountInto can advance.
type Incrementer[C any] interface {
	Inc() C
}

// CountInto advances c once per element and returns the final counter.
func CountInto[T any, C Incrementer[C]](c C) Builder[T, C] {
	return BuilderFunc[T, C](func(s Stream[T]) (C, error) {
		if err := requireFinite("count", s); err != nil {
			return c, err
		}
		for s.Next() {
			c = c.Inc()
		}
		return c, nil
	})
}

// Collect inserts every element into container using insert and returns
// the container.
func Collect[T, C any](container C, insert func(C, T) C) Builder[T, C] {
	return BuilderFunc[T, C](func(s Stream[T]) (C, error) {
		if err := requireFinite("collect", s); err != nil {
			return container, err
		}
		c := container
		for s.Next() {
			c = insert(c, s.Front())
		}
		return c, nil
	})
}

// ToSlice collects the elements into a new slice.
func ToSlice[T any]() Builder[T, []T] {
	return Collect([]T(nil), func(xs []T, v T) []T { return append(xs, v) })
}
