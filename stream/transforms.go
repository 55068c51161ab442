package stream

// Filter keeps the elements for which pred holds. On an endless upstream
// pred must eventually hold, or Next never returns.
func Filter[T any](pred func(T) bool) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &filterStage[T]{up: s, pred: pred}
	})
}

// Map transforms each element with fn.
func Map[T, U any](fn func(T) U) Builder[T, Stream[U]] {
	return stage(func(s Stream[T]) Stream[U] {
		return &mapStage[T, U]{up: s, fn: fn}
	})
}

// FilterMap transforms each element with fn and drops the elements for
// which fn reports false.
func FilterMap[T, U any](fn func(T) (U, bool)) Builder[T, Stream[U]] {
	return stage(func(s Stream[T]) Stream[U] {
		return &filterMapStage[T, U]{up: s, fn: fn}
	})
}

// Take yields at most the first n elements. The result is always finite.
func Take[T any](n int) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return newTake(s, n)
	})
}

// Skip drops the first n elements.
func Skip[T any](n int) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &skipStage[T]{up: s, n: n}
	})
}

// TakeWhile yields elements until the first one for which pred is false.
// That element is not yielded and the stage stays exhausted afterwards.
func TakeWhile[T any](pred func(T) bool) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &takeWhileStage[T]{up: s, pred: pred, open: true}
	})
}

// SkipWhile drops elements while pred holds and yields everything from the
// first element for which it does not.
func SkipWhile[T any](pred func(T) bool) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &skipWhileStage[T]{up: s, pred: pred}
	})
}

// Peek calls fn on every element as it is advanced to.
func Peek[T any](fn func(T)) Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &peekStage[T]{up: s, fn: fn}
	})
}

// MakeEndless marks the stream as endless without changing its elements.
func MakeEndless[T any]() Builder[T, Stream[T]] {
	return stage(func(s Stream[T]) Stream[T] {
		return &endlessStage[T]{up: s}
	})
}

// --- filter ---

type filterStage[T any] struct {
	up   Stream[T]
	pred func(T) bool
}

func (f *filterStage[T]) Front() T { return f.up.Front() }

func (f *filterStage[T]) Next() bool {
	for f.up.Next() {
		if f.pred(f.up.Front()) {
			return true
		}
	}
	return false
}

func (f *filterStage[T]) Endless() bool { return f.up.Endless() }

func (f *filterStage[T]) Clone() Stream[T] {
	up := cloneOf(f.up)
	if up == nil {
		return nil
	}
	return &filterStage[T]{up: up, pred: f.pred}
}

// --- map ---

type mapStage[T, U any] struct {
	up    Stream[T]
	fn    func(T) U
	cache U
}

func (m *mapStage[T, U]) Front() U { return m.cache }

func (m *mapStage[T, U]) Next() bool {
	if !m.up.Next() {
		return false
	}
	m.cache = m.fn(m.up.Front())
	return true
}

func (m *mapStage[T, U]) Endless() bool { return m.up.Endless() }

func (m *mapStage[T, U]) Clone() Stream[U] {
	up := cloneOf(m.up)
	if up == nil {
		return nil
	}
	return &mapStage[T, U]{up: up, fn: m.fn, cache: m.cache}
}

type filterMapStage[T, U any] struct {
	up    Stream[T]
	fn    func(T) (U, bool)
	cache U
}

func (m *filterMapStage[T, U]) Front() U { return m.cache }

func (m *filterMapStage[T, U]) Next() bool {
	for m.up.Next() {
		if v, ok := m.fn(m.up.Front()); ok {
			m.cache = v
			return true
		}
	}
	return false
}

func (m *filterMapStage[T, U]) Endless() bool { return m.up.Endless() }

func (m *filterMapStage[T, U]) Clone() Stream[U] {
	up := cloneOf(m.up)
	if up == nil {
		return nil
	}
	return &filterMapStage[T, U]{up: up, fn: m.fn, cache: m.cache}
}

// --- take / skip ---

type takeStage[T any] struct {
	up        Stream[T]
	remaining int
}

func newTake[T any](s Stream[T], n int) *takeStage[T] {
	if n < 0 {
		n = 0
	}
	return &takeStage[T]{up: s, remaining: n}
}

func (t *takeStage[T]) Front() T { return t.up.Front() }

func (t *takeStage[T]) Next() bool {
	if t.remaining == 0 {
		return false
	}
	t.remaining--
	if !t.up.Next() {
		t.remaining = 0
		return false
	}
	return true
}

func (t *takeStage[T]) Endless() bool { return false }

func (t *takeStage[T]) Clone() Stream[T] {
	up := cloneOf(t.up)
	if up == nil {
		return nil
	}
	return &takeStage[T]{up: up, remaining: t.remaining}
}

type skipStage[T any] struct {
	up      Stream[T]
	n       int
	skipped bool
}

func (s *skipStage[T]) Front() T { return s.up.Front() }

func (s *skipStage[T]) Next() bool {
	if !s.skipped {
		s.skipped = true
		for i := 0; i < s.n; i++ {
			if !s.up.Next() {
				return false
			}
		}
	}
	return s.up.Next()
}

func (s *skipStage[T]) Endless() bool { return s.up.Endless() }

func (s *skipStage[T]) Clone() Stream[T] {
	up := cloneOf(s.up)
	if up == nil {
		return nil
	}
	return &skipStage[T]{up: up, n: s.n, skipped: s.skipped}
}

// --- take_while / skip_while ---

type takeWhileStage[T any] struct {
	up   Stream[T]
	pred func(T) bool
	open bool
}

func (t *takeWhileStage[T]) Front() T { return t.up.Front() }

func (t *takeWhileStage[T]) Next() bool {
	if !t.open {
		return false
	}
	t.open = t.up.Next() && t.pred(t.up.Front())
	return t.open
}

// Endless forwards the upstream classification even though pred may end
// the stream at runtime.
func (t *takeWhileStage[T]) Endless() bool { return t.up.Endless() }

func (t *takeWhileStage[T]) Clone() Stream[T] {
	up := cloneOf(t.up)
	if up == nil {
		return nil
	}
	return &takeWhileStage[T]{up: up, pred: t.pred, open: t.open}
}

type skipWhileState int

const (
	skipping skipWhileState = iota
	passing
	drained
)

type skipWhileStage[T any] struct {
	up    Stream[T]
	pred  func(T) bool
	state skipWhileState
}

func (s *skipWhileStage[T]) Front() T { return s.up.Front() }

func (s *skipWhileStage[T]) Next() bool {
	switch s.state {
	case skipping:
		for s.up.Next() {
			if !s.pred(s.up.Front()) {
				s.state = passing
				return true
			}
		}
	case passing:
		if s.up.Next() {
			return true
		}
	case drained:
		return false
	}
	s.state = drained
	return false
}

func (s *skipWhileStage[T]) Endless() bool { return s.up.Endless() }

func (s *skipWhileStage[T]) Clone() Stream[T] {
	up := cloneOf(s.up)
	if up == nil {
		return nil
	}
	return &skipWhileStage[T]{up: up, pred: s.pred, state: s.state}
}

// --- peek / make_endless ---

type peekStage[T any] struct {
	up Stream[T]
	fn func(T)
}

func (p *peekStage[T]) Front() T { return p.up.Front() }

func (p *peekStage[T]) Next() bool {
	if !p.up.Next() {
		return false
	}
	p.fn(p.up.Front())
	return true
}

func (p *peekStage[T]) Endless() bool { return p.up.Endless() }

func (p *peekStage[T]) Clone() Stream[T] {
	up := cloneOf(p.up)
	if up == nil {
		return nil
	}
	return &peekStage[T]{up: up, fn: p.fn}
}

type endlessStage[T any] struct {
	up Stream[T]
}

func (e *endlessStage[T]) Front() T { return e.up.Front() }

func (e *endlessStage[T]) Next() bool { return e.up.Next() }

func (e *endlessStage[T]) Endless() bool { return true }

func (e *endlessStage[T]) Clone() Stream[T] {
	up := cloneOf(e.up)
	if up == nil {
		return nil
	}
	return &endlessStage[T]{up: up}
}
