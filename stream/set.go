package stream

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Set is the membership collection used by Distinct. Insert adds v and
// reports whether it was not already present.
type Set[T any] interface {
	Insert(v T) bool
}

// SetCloner is implemented by sets that can be copied along with the
// stage that owns them.
type SetCloner[T any] interface {
	CloneSet() Set[T]
}

// SetFunc adapts a function to the Set interface.
type SetFunc[T any] func(v T) bool

// Insert calls f(v).
func (f SetFunc[T]) Insert(v T) bool { return f(v) }

// HashSet is a Set of comparable values backed by a hash set.
type HashSet[T comparable] struct {
	inner *hashset.Set
}

// NewHashSet returns a HashSet seeded with values.
func NewHashSet[T comparable](values ...T) *HashSet[T] {
	s := &HashSet[T]{inner: hashset.New()}
	for _, v := range values {
		s.inner.Add(v)
	}
	return s
}

// Insert adds v and reports whether it was new.
func (s *HashSet[T]) Insert(v T) bool {
	if s.inner.Contains(v) {
		return false
	}
	s.inner.Add(v)
	return true
}

// Contains reports whether v is in the set.
func (s *HashSet[T]) Contains(v T) bool { return s.inner.Contains(v) }

// Len returns the number of elements.
func (s *HashSet[T]) Len() int { return s.inner.Size() }

// Values returns the elements in no particular order.
func (s *HashSet[T]) Values() []T {
	values := make([]T, 0, s.inner.Size())
	for _, v := range s.inner.Values() {
		values = append(values, v.(T))
	}
	return values
}

// CloneSet returns an independent copy.
func (s *HashSet[T]) CloneSet() Set[T] {
	return NewHashSet(s.Values()...)
}

// TreeSet is a Set ordered by a comparison function, backed by a
// red-black tree. It accepts element types that are not comparable.
type TreeSet[T any] struct {
	inner   *redblacktree.Tree
	compare func(a, b T) int
}

// NewTreeSet returns an empty TreeSet ordered by compare.
func NewTreeSet[T any](compare func(a, b T) int) *TreeSet[T] {
	return &TreeSet[T]{
		inner: redblacktree.NewWith(func(a, b interface{}) int {
			return compare(a.(T), b.(T))
		}),
		compare: compare,
	}
}

// Insert adds v and reports whether no equal element was present.
func (s *TreeSet[T]) Insert(v T) bool {
	if _, found := s.inner.Get(v); found {
		return false
	}
	s.inner.Put(v, struct{}{})
	return true
}

// Contains reports whether an element equal to v is in the set.
func (s *TreeSet[T]) Contains(v T) bool {
	_, found := s.inner.Get(v)
	return found
}

// Len returns the number of elements.
func (s *TreeSet[T]) Len() int { return s.inner.Size() }

// Values returns the elements in ascending order.
func (s *TreeSet[T]) Values() []T {
	values := make([]T, 0, s.inner.Size())
	for _, k := range s.inner.Keys() {
		values = append(values, k.(T))
	}
	return values
}

// CloneSet returns an independent copy.
func (s *TreeSet[T]) CloneSet() Set[T] {
	cp := NewTreeSet(s.compare)
	for _, k := range s.inner.Keys() {
		cp.inner.Put(k, struct{}{})
	}
	return cp
}
