package stream

import (
	"math"
	"testing"

	"github.com/kbukum/gostream/errors"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		want        []int
	}{
		{"ascending", 3, 7, []int{3, 4, 5, 6}},
		{"empty when equal", 5, 5, nil},
		{"empty when reversed", 7, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Range(tc.first, tc.last)
			if s.Endless() {
				t.Error("range must be finite")
			}
			assertEqual(t, tc.want, mustSlice(t, s))
		})
	}
}

func TestRange_Sum(t *testing.T) {
	add := func(acc, v int) int { return acc + v }

	got, err := Then(Range(1, 101), Fold(0, add))
	if err != nil {
		t.Fatal(err)
	}
	if got != 5050 {
		t.Errorf("Fold: got %d, want 5050", got)
	}

	reduced, err := Then(Range(1, 101), Reduce(add))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := reduced.Get(); !ok || v != 5050 {
		t.Errorf("Reduce: got %v, want Some(5050)", reduced)
	}
}

func countOf[T any](t *testing.T, s Stream[T], err error) int {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	n, err := Then(s, Count[T]())
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestRange_NearTypeLimits(t *testing.T) {
	tests := []struct {
		name  string
		count func(t *testing.T) int
		want  int
	}{
		{"int8 across zero", func(t *testing.T) int { return countOf(t, Range[int8](-100, 100), nil) }, 200},
		{"int8 full width", func(t *testing.T) int { return countOf(t, Range[int8](math.MinInt8, math.MaxInt8), nil) }, 255},
		{"uint8 full width", func(t *testing.T) int { return countOf(t, Range[uint8](0, math.MaxUint8), nil) }, 255},
		{"int64 top", func(t *testing.T) int { return countOf(t, Range[int64](math.MaxInt64-3, math.MaxInt64), nil) }, 3},
		{"int64 bottom", func(t *testing.T) int { return countOf(t, Range[int64](math.MinInt64, math.MinInt64+2), nil) }, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.count(t); got != tc.want {
				t.Errorf("got %d elements, want %d", got, tc.want)
			}
		})
	}

	assertEqual(t, []int8{124, 125, 126}, mustSlice(t, Range[int8](124, 127)))
}

func TestRangeStep_NearTypeLimits(t *testing.T) {
	tests := []struct {
		name  string
		count func(t *testing.T) int
		want  int
	}{
		{"int8", func(t *testing.T) int { s, err := RangeStep[int8](0, 120, 10); return countOf(t, s, err) }, 12},
		{"uint8", func(t *testing.T) int { s, err := RangeStep[uint8](0, 250, 10); return countOf(t, s, err) }, 25},
		{"int64 large step", func(t *testing.T) int {
			s, err := RangeStep[int64](0, math.MaxInt64, math.MaxInt64/2)
			return countOf(t, s, err)
		}, 3},
		{"int8 min step", func(t *testing.T) int { s, err := RangeStep[int8](127, -128, -128); return countOf(t, s, err) }, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.count(t); got != tc.want {
				t.Errorf("got %d elements, want %d", got, tc.want)
			}
		})
	}

	up, _ := RangeStep[int8](math.MinInt8, math.MaxInt8, 100)
	assertEqual(t, []int8{-128, -28, 72}, mustSlice(t, up))

	down, _ := RangeStep[int8](math.MaxInt8, math.MinInt8, -100)
	assertEqual(t, []int8{127, 27, -73}, mustSlice(t, down))
}

func TestRangeStep(t *testing.T) {
	tests := []struct {
		name              string
		first, last, step int
		want              []int
	}{
		{"positive", 0, 10, 3, []int{0, 3, 6, 9}},
		{"exact end excluded", 0, 9, 3, []int{0, 3, 6}},
		{"negative", 10, 0, -3, []int{10, 7, 4, 1}},
		{"wrong direction", 0, 10, -1, nil},
		{"empty", 4, 4, 1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := RangeStep(tc.first, tc.last, tc.step)
			if err != nil {
				t.Fatal(err)
			}
			assertEqual(t, tc.want, mustSlice(t, s))
		})
	}
}

func TestRangeStep_ZeroStep(t *testing.T) {
	_, err := RangeStep(0, 10, 0)
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestIota(t *testing.T) {
	s := Iota(0.5, 0.25)
	if !s.Endless() {
		t.Error("iota must be endless")
	}
	assertEqual(t, []float64{0.5, 0.75, 1.0}, pull(s, 3))

	assertEqual(t, []int{10, 8, 6}, pull(Iota(10, -2), 3))
}

func TestFromSlice(t *testing.T) {
	items := []string{"a", "b"}
	s := FromSlice(items)
	if s.Endless() {
		t.Error("FromSlice must be finite")
	}
	assertEqual(t, items, mustSlice(t, s))

	u := FromSliceUnchecked(items)
	if !u.Endless() {
		t.Error("FromSliceUnchecked must be declared endless")
	}
	assertEqual(t, items, pull(u, 10))
}

func TestFromSeq(t *testing.T) {
	seq := FromSeq(func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i * i) {
				return
			}
		}
	})
	defer seq.Stop()

	assertEqual(t, []int{1, 4, 9}, mustSlice[int](t, seq))
}

func TestFromSeq_StopEarly(t *testing.T) {
	done := false
	seq := FromSeq(func(yield func(int) bool) {
		defer func() { done = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
	assertEqual(t, []int{0, 1}, pull[int](seq, 2))
	seq.Stop()
	if !done {
		t.Error("Stop must release the underlying iterator")
	}
}

func TestGenerate(t *testing.T) {
	n := 0
	s := Generate(func() int { n++; return n })
	if !s.Endless() {
		t.Error("generate must be endless")
	}
	assertEqual(t, []int{1, 2, 3, 4}, pull(s, 4))
}

func TestIterate(t *testing.T) {
	s := Iterate(1, func(v int) int { return v * 2 })
	assertEqual(t, []int{1, 2, 4, 8, 16}, pull(s, 5))
}

func TestIterateWhile(t *testing.T) {
	s := IterateWhile(1, func(v int) bool { return v < 20 }, func(v int) int { return v * 3 })
	assertEqual(t, []int{1, 3, 9}, pull(s, 100))
}

func TestEmptyAndSingleton(t *testing.T) {
	tests := []struct {
		name        string
		s           Stream[int]
		wantEndless bool
		want        []int
	}{
		{"empty", Empty[int](), false, nil},
		{"endless empty", EndlessEmpty[int](), true, nil},
		{"of", Of(7), false, []int{7}},
		{"singleton none", Singleton(None[int]()), false, nil},
		{"endless singleton none", EndlessSingleton(None[int]()), true, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.s.Endless() != tc.wantEndless {
				t.Errorf("Endless() = %v, want %v", tc.s.Endless(), tc.wantEndless)
			}
			assertEqual(t, tc.want, pull(tc.s, 10))
		})
	}
}

func TestEndlessSingleton(t *testing.T) {
	s := EndlessSingleton(Some("x"))
	if !s.Endless() {
		t.Error("expected endless")
	}
	assertEqual(t, []string{"x", "x", "x"}, pull(s, 3))
}
