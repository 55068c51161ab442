package stream

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/gostream/errors"
)

// Number is the element type accepted by the counter sources.
type Number interface {
	constraints.Integer | constraints.Float
}

// --- Slice sources ---

type sliceStream[T any] struct {
	items     []T
	pos       int
	unchecked bool
}

// FromSlice returns a finite stream over items. The slice is not copied.
func FromSlice[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items}
}

// FromSliceUnchecked returns a stream over items that never checks for the
// end of the slice and is therefore declared endless. Advancing past the
// last element is a contract violation; the caller must stop it first
// (for example with Take).
func FromSliceUnchecked[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items, unchecked: true}
}

func (s *sliceStream[T]) Front() T { return s.items[s.pos-1] }

func (s *sliceStream[T]) Next() bool {
	if !s.unchecked && s.pos >= len(s.items) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceStream[T]) Endless() bool { return s.unchecked }

func (s *sliceStream[T]) Clone() Stream[T] {
	cp := *s
	return &cp
}

// --- Range-over-func source ---

// SeqStream adapts an iter.Seq to the pull protocol. It is finite and
// cannot be cloned. Stop releases the underlying iterator when the stream
// is abandoned before exhaustion.
type SeqStream[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

// FromSeq returns a finite stream over seq.
func FromSeq[T any](seq iter.Seq[T]) *SeqStream[T] {
	next, stop := iter.Pull(seq)
	return &SeqStream[T]{next: next, stop: stop}
}

// Front returns the current element.
func (s *SeqStream[T]) Front() T { return s.cur }

// Next pulls the next element from the sequence.
func (s *SeqStream[T]) Next() bool {
	if s.done {
		return false
	}
	v, ok := s.next()
	if !ok {
		s.Stop()
		return false
	}
	s.cur = v
	return true
}

// Endless reports false.
func (s *SeqStream[T]) Endless() bool { return false }

// Stop releases the sequence. Further calls to Next return false.
func (s *SeqStream[T]) Stop() {
	if s.done {
		return
	}
	s.done = true
	s.stop()
}

// --- Counters ---

type counter[N Number] struct {
	cur, step N
	started   bool
}

// Iota returns an endless stream first, first+step, first+2*step, ...
func Iota[N Number](first, step N) Stream[N] {
	return &counter[N]{cur: first, step: step}
}

func (c *counter[N]) Front() N { return c.cur }

// Next leaves cur untouched on the first call so that floating point
// counters start exactly at first.
func (c *counter[N]) Next() bool {
	if c.started {
		c.cur += c.step
	}
	c.started = true
	return true
}

func (c *counter[N]) Endless() bool { return true }

func (c *counter[N]) Clone() Stream[N] {
	cp := *c
	return &cp
}

// RangeN returns the finite stream 0, 1, ..., n-1.
func RangeN[N constraints.Integer](n N) Stream[N] {
	return Range(0, n)
}

// Range returns the finite stream first, first+1, ..., last-1.
func Range[N constraints.Integer](first, last N) Stream[N] {
	n := 0
	if last > first {
		n = clampLen(span(first, last))
	}
	return newTake(Iota(first, 1), n)
}

// RangeStep returns first, first+step, ... for every value strictly before
// last in the direction of step.
func RangeStep[N constraints.Integer](first, last, step N) (Stream[N], error) {
	if step == 0 {
		return nil, errors.InvalidArgument("step", "range step must not be zero")
	}
	n := 0
	switch {
	case step > 0 && last > first:
		n = clampLen((span(first, last)-1)/uint64(step) + 1)
	case step < 0 && last < first:
		n = clampLen((span(last, first)-1)/(0-uint64(step)) + 1)
	}
	return newTake(Iota(first, step), n), nil
}

// span returns hi-lo for lo < hi. It is computed in uint64 so that the
// difference cannot overflow N; two's complement wrap-around keeps it
// exact for signed types.
func span[N constraints.Integer](lo, hi N) uint64 {
	return uint64(hi) - uint64(lo)
}

// clampLen converts an element count to int, saturating at math.MaxInt.
func clampLen(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// --- Generators ---

type generator[T any] struct {
	fn    func() T
	cache T
}

// Generate returns an endless stream whose every element is produced by a
// call to fn. Clones share fn, and with it any state fn closes over.
func Generate[T any](fn func() T) Stream[T] {
	return &generator[T]{fn: fn}
}

func (g *generator[T]) Front() T { return g.cache }

func (g *generator[T]) Next() bool {
	g.cache = g.fn()
	return true
}

func (g *generator[T]) Endless() bool { return true }

func (g *generator[T]) Clone() Stream[T] {
	cp := *g
	return &cp
}

type iterateStream[T any] struct {
	fn      func(T) T
	cur     T
	started bool
}

// Iterate returns the endless stream init, fn(init), fn(fn(init)), ...
func Iterate[T any](init T, fn func(T) T) Stream[T] {
	return &iterateStream[T]{fn: fn, cur: init}
}

// IterateWhile is Iterate truncated at the first element for which hasNext
// is false.
func IterateWhile[T any](init T, hasNext func(T) bool, fn func(T) T) Stream[T] {
	return &takeWhileStage[T]{up: Iterate(init, fn), pred: hasNext, open: true}
}

func (it *iterateStream[T]) Front() T { return it.cur }

func (it *iterateStream[T]) Next() bool {
	if it.started {
		it.cur = it.fn(it.cur)
	}
	it.started = true
	return true
}

func (it *iterateStream[T]) Endless() bool { return true }

func (it *iterateStream[T]) Clone() Stream[T] {
	cp := *it
	return &cp
}

// --- Empty and singleton ---

type emptyStream[T any] struct {
	endless bool
}

// Empty returns a finite stream with no elements.
func Empty[T any]() Stream[T] {
	return &emptyStream[T]{}
}

// EndlessEmpty returns a stream that is declared endless but never yields
// an element. It exists to stand in for an absent endless source.
func EndlessEmpty[T any]() Stream[T] {
	return &emptyStream[T]{endless: true}
}

func (e *emptyStream[T]) Front() T {
	var zero T
	return zero
}

func (e *emptyStream[T]) Next() bool { return false }

func (e *emptyStream[T]) Endless() bool { return e.endless }

func (e *emptyStream[T]) Clone() Stream[T] {
	cp := *e
	return &cp
}

// Singleton returns a finite stream with the value held by opt, if any.
func Singleton[T any](opt Optional[T]) Stream[T] {
	v, ok := opt.Get()
	n := 0
	if ok {
		n = 1
	}
	return newTake(Generate(func() T { return v }), n)
}

// Of returns a finite stream with the single element v.
func Of[T any](v T) Stream[T] {
	return Singleton(Some(v))
}

// EndlessSingleton repeats the value held by opt forever, or returns
// EndlessEmpty when opt is empty.
func EndlessSingleton[T any](opt Optional[T]) Stream[T] {
	v, ok := opt.Get()
	if !ok {
		return EndlessEmpty[T]()
	}
	return Generate(func() T { return v })
}
