package stream

import (
	"reflect"

	"github.com/kbukum/gostream/errors"
)

// Any is a type-erased stage: it holds any Stream[T] and forwards the pull
// protocol to it, so pipelines built from different stage chains can share
// one static type. Copying an *Any copies the pointer, not the stage; use
// Copy or Clone for an independent stage.
type Any[T any] struct {
	s Stream[T]
}

// NewAny wraps s.
func NewAny[T any](s Stream[T]) *Any[T] {
	return &Any[T]{s: s}
}

// Erase returns a builder that wraps the stream in an Any.
func Erase[T any]() Builder[T, *Any[T]] {
	return BuilderFunc[T, *Any[T]](func(s Stream[T]) (*Any[T], error) {
		return NewAny(s), nil
	})
}

// Front returns the current element of the held stage.
func (a *Any[T]) Front() T { return a.s.Front() }

// Next advances the held stage.
func (a *Any[T]) Next() bool { return a.s.Next() }

// Endless reports the classification of the held stage.
func (a *Any[T]) Endless() bool { return a.s.Endless() }

// Valid reports whether a stage is held.
func (a *Any[T]) Valid() bool { return a.s != nil }

// Clone returns a deep copy of the held stage wrapped in a new Any, or nil
// when the held stage cannot be copied.
func (a *Any[T]) Clone() Stream[T] {
	if a.s == nil {
		return &Any[T]{}
	}
	s := cloneOf(a.s)
	if s == nil {
		return nil
	}
	return &Any[T]{s: s}
}

// Copy is Clone with an error for non-clonable stages.
func (a *Any[T]) Copy() (*Any[T], error) {
	cp := a.Clone()
	if cp == nil {
		return nil, errors.NotClonable("any.copy")
	}
	return cp.(*Any[T]), nil
}

// Move transfers the held stage to a new Any and leaves a empty.
func (a *Any[T]) Move() *Any[T] {
	m := &Any[T]{s: a.s}
	a.s = nil
	return m
}

// Reset replaces the held stage.
func (a *Any[T]) Reset(s Stream[T]) {
	a.s = s
}

// Type returns the dynamic type of the held stage. It returns nil when the
// Any is empty or runtime type reporting is disabled.
func (a *Any[T]) Type() reflect.Type {
	if a.s == nil || !CurrentOptions().TypeReporting {
		return nil
	}
	return reflect.TypeOf(a.s)
}

// TypeName returns the name of Type, or "" when it is unavailable.
func (a *Any[T]) TypeName() string {
	t := a.Type()
	if t == nil {
		return ""
	}
	return t.String()
}
