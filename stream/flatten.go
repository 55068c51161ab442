package stream

import "github.com/kbukum/gostream/logger"

// Flat concatenates a stream of streams. The outer stream is drained when
// the builder is applied, so it must be finite. The result is endless only
// if there is at least one inner stream and every inner stream is endless;
// an empty outer stream gives a finite, empty result rather than a
// vacuously endless one.
func Flat[T any]() Builder[Stream[T], Stream[T]] {
	return BuilderFunc[Stream[T], Stream[T]](func(s Stream[Stream[T]]) (Stream[T], error) {
		if err := requireFinite("flat", s); err != nil {
			return nil, err
		}
		var parts []Stream[T]
		for s.Next() {
			parts = append(parts, s.Front())
		}
		log().Debug("stream materialized", logger.Fields(
			logger.FieldOperation, "flat",
			logger.FieldCount, len(parts),
		))
		return &concatStage[T]{parts: parts}, nil
	})
}

// EndlessFlat concatenates a stream of streams lazily, pulling the next
// inner stream only when the current one is exhausted. It is always
// declared endless.
func EndlessFlat[T any]() Builder[Stream[T], Stream[T]] {
	return stage(func(s Stream[Stream[T]]) Stream[T] {
		return &endlessFlatStage[T]{outer: s}
	})
}

// FlatMap maps every element to a stream and concatenates the results
// eagerly, as Flat does.
func FlatMap[T, U any](fn func(T) Stream[U]) Builder[T, Stream[U]] {
	return Compose(Map(fn), Flat[U]())
}

// EndlessFlatMap maps every element to a stream and concatenates the
// results lazily, as EndlessFlat does.
func EndlessFlatMap[T, U any](fn func(T) Stream[U]) Builder[T, Stream[U]] {
	return Compose(Map(fn), EndlessFlat[U]())
}

type endlessFlatStage[T any] struct {
	outer Stream[Stream[T]]
	inner Stream[T]
}

func (e *endlessFlatStage[T]) Front() T { return e.inner.Front() }

// Next has two states: inside an inner stream (inner != nil) or between
// inner streams. Exhausted or empty inner streams are skipped.
func (e *endlessFlatStage[T]) Next() bool {
	for {
		if e.inner != nil {
			if e.inner.Next() {
				return true
			}
			e.inner = nil
		}
		if !e.outer.Next() {
			return false
		}
		e.inner = e.outer.Front()
	}
}

func (e *endlessFlatStage[T]) Endless() bool { return true }

func (e *endlessFlatStage[T]) Clone() Stream[T] {
	outer := cloneOf(e.outer)
	if outer == nil {
		return nil
	}
	cp := &endlessFlatStage[T]{outer: outer}
	if e.inner != nil {
		if cp.inner = cloneOf(e.inner); cp.inner == nil {
			return nil
		}
	}
	return cp
}
