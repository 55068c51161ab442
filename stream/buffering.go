package stream

import (
	"cmp"
	"slices"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/logger"
)

// Sort yields the elements in ascending order.
func Sort[T cmp.Ordered]() Builder[T, Stream[T]] {
	return SortFunc(cmp.Compare[T])
}

// SortFunc yields the elements stably sorted by compare. The upstream is
// drained on the first Next; an endless upstream is rejected.
func SortFunc[T any](compare func(a, b T) int) Builder[T, Stream[T]] {
	return BuilderFunc[T, Stream[T]](func(s Stream[T]) (Stream[T], error) {
		if err := requireFinite("sort", s); err != nil {
			return nil, err
		}
		return &bufferStage[T]{up: s, op: "sort", arrange: func(buf []T) {
			slices.SortStableFunc(buf, compare)
		}}, nil
	})
}

// Reverse yields the elements in reverse order. The upstream is drained on
// the first Next; an endless upstream is rejected.
func Reverse[T any]() Builder[T, Stream[T]] {
	return BuilderFunc[T, Stream[T]](func(s Stream[T]) (Stream[T], error) {
		if err := requireFinite("reverse", s); err != nil {
			return nil, err
		}
		return &bufferStage[T]{up: s, op: "reverse", arrange: func(buf []T) {
			slices.Reverse(buf)
		}}, nil
	})
}

// Distinct yields only the elements set accepts as new, in first-seen
// order. The set grows with every distinct element, so an endless upstream
// with unbounded variety grows it without bound.
func Distinct[T any](set Set[T]) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &distinctStage[T]{up: s, set: set}
	})
}

// Loop replays the stream from its initial state every time it is
// exhausted. The stream must be clonable.
func Loop[T any]() Builder[T, Stream[T]] {
	return BuilderFunc[T, Stream[T]](func(s Stream[T]) (Stream[T], error) {
		origin, ok := Clone(s)
		if !ok {
			return nil, errors.NotClonable("loop")
		}
		return &loopStage[T]{live: s, origin: origin}, nil
	})
}

// TailRepeat yields the upstream elements and then repeats the last one
// forever.
func TailRepeat[T any]() Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &tailRepeatStage[T]{up: s}
	})
}

// --- sort / reverse ---

type bufferStage[T any] struct {
	up      Stream[T]
	op      string
	arrange func([]T)
	buf     []T
	pos     int
	loaded  bool
}

func (b *bufferStage[T]) Front() T { return b.buf[b.pos-1] }

func (b *bufferStage[T]) Next() bool {
	if !b.loaded {
		b.load()
	}
	if b.pos >= len(b.buf) {
		return false
	}
	b.pos++
	return true
}

func (b *bufferStage[T]) load() {
	for b.up.Next() {
		b.buf = append(b.buf, b.up.Front())
	}
	b.arrange(b.buf)
	b.up = nil
	b.loaded = true
	log().Debug("stream materialized", logger.Fields(
		logger.FieldOperation, b.op,
		logger.FieldCount, len(b.buf),
	))
}

func (b *bufferStage[T]) Endless() bool { return false }

func (b *bufferStage[T]) Clone() Stream[T] {
	cp := *b
	if b.up != nil {
		if cp.up = cloneOf(b.up); cp.up == nil {
			return nil
		}
	}
	cp.buf = slices.Clone(b.buf)
	return &cp
}

// --- distinct ---

type distinctStage[T any] struct {
	up  Stream[T]
	set Set[T]
	cur T
}

func (d *distinctStage[T]) Front() T { return d.cur }

func (d *distinctStage[T]) Next() bool {
	for d.up.Next() {
		if v := d.up.Front(); d.set.Insert(v) {
			d.cur = v
			return true
		}
	}
	return false
}

func (d *distinctStage[T]) Endless() bool { return d.up.Endless() }

func (d *distinctStage[T]) Clone() Stream[T] {
	sc, ok := d.set.(SetCloner[T])
	if !ok {
		return nil
	}
	up := cloneOf(d.up)
	if up == nil {
		return nil
	}
	return &distinctStage[T]{up: up, set: sc.CloneSet(), cur: d.cur}
}

// --- loop ---

type loopStage[T any] struct {
	live, origin Stream[T]
}

func (l *loopStage[T]) Front() T { return l.live.Front() }

// Next restarts from a copy of the initial state on exhaustion. A stream
// that is empty from the start ends the loop instead of spinning.
func (l *loopStage[T]) Next() bool {
	if l.live.Next() {
		return true
	}
	l.live = cloneOf(l.origin)
	return l.live.Next()
}

func (l *loopStage[T]) Endless() bool { return true }

func (l *loopStage[T]) Clone() Stream[T] {
	live := cloneOf(l.live)
	if live == nil {
		return nil
	}
	return &loopStage[T]{live: live, origin: cloneOf(l.origin)}
}

// --- tail_repeat ---

type tailRepeatStage[T any] struct {
	up   Stream[T]
	last T
}

func (t *tailRepeatStage[T]) Front() T { return t.last }

func (t *tailRepeatStage[T]) Next() bool {
	if t.up != nil {
		if t.up.Next() {
			t.last = t.up.Front()
			return true
		}
		t.up = nil
	}
	return true
}

func (t *tailRepeatStage[T]) Endless() bool { return true }

func (t *tailRepeatStage[T]) Clone() Stream[T] {
	cp := *t
	if t.up != nil {
		if cp.up = cloneOf(t.up); cp.up == nil {
			return nil
		}
	}
	return &cp
}
