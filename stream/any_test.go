package stream

import (
	"strings"
	"testing"

	"github.com/kbukum/gostream/errors"
)

func withOptions(t *testing.T, o Options) {
	t.Helper()
	prev := CurrentOptions()
	Configure(o)
	t.Cleanup(func() { Configure(prev) })
}

func TestAny_Forwards(t *testing.T) {
	a, err := Then(RangeN(3), Erase[int]())
	if err != nil {
		t.Fatal(err)
	}
	if !a.Valid() || a.Endless() {
		t.Fatal("expected a valid finite Any")
	}
	assertEqual(t, []int{0, 1, 2}, mustSlice[int](t, a))
}

func TestAny_UnifiesPipelines(t *testing.T) {
	pipelines := []*Any[int]{
		NewAny(RangeN(2)),
		NewAny(Must(Then(Iota(0, 5), Take[int](2)))),
		NewAny(Join(Of(9), Empty[int]())),
	}
	var got []int
	for _, p := range pipelines {
		got = append(got, mustSlice[int](t, p)...)
	}
	assertEqual(t, []int{0, 1, 0, 5, 9}, got)
}

func TestAny_Copy(t *testing.T) {
	a := NewAny(RangeN(4))
	pull[int](a, 1)

	cp, err := a.Copy()
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, []int{1, 2, 3}, mustSlice[int](t, a))
	assertEqual(t, []int{1, 2, 3}, mustSlice[int](t, cp))
}

func TestAny_CopyNotClonable(t *testing.T) {
	seq := FromSeq(func(yield func(int) bool) { yield(1) })
	defer seq.Stop()

	_, err := NewAny[int](seq).Copy()
	if !errors.HasCode(err, errors.ErrCodeNotClonable) {
		t.Errorf("expected NOT_CLONABLE, got %v", err)
	}
}

func TestAny_Move(t *testing.T) {
	a := NewAny(RangeN(2))
	b := a.Move()
	if a.Valid() {
		t.Error("moved-from Any must be empty")
	}
	if a.Type() != nil {
		t.Error("empty Any has no type")
	}
	assertEqual(t, []int{0, 1}, mustSlice[int](t, b))

	a.Reset(Of(5))
	assertEqual(t, []int{5}, mustSlice[int](t, a))
}

func TestAny_Type(t *testing.T) {
	withOptions(t, Options{OnEndless: PolicyError, TypeReporting: true})

	a := NewAny(Must(Then(RangeN(3), Map(func(v int) string { return "" }))))
	if a.Type() == nil {
		t.Fatal("expected a type with reporting enabled")
	}
	if name := a.TypeName(); !strings.Contains(name, "mapStage") {
		t.Errorf("expected the held stage type, got %q", name)
	}

	other := NewAny(Join(Of(""), Of("")))
	if a.Type() == other.Type() {
		t.Error("different stage chains must report different types")
	}
}

func TestAny_TypeReportingDisabled(t *testing.T) {
	withOptions(t, Options{OnEndless: PolicyError, TypeReporting: false})

	a := NewAny(RangeN(3))
	if a.Type() != nil || a.TypeName() != "" {
		t.Errorf("expected no type information, got %v", a.Type())
	}
}
