package main

import (
	"context"
	"strings"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/observability"
	"github.com/kbukum/gostream/stream"
)

func add(acc, v int64) int64 { return acc + v }

// sumRange adds up first, first+1, ..., last-1.
func sumRange(ctx context.Context, m *observability.Metrics, first, last int64) (int64, error) {
	s, err := stream.Then(stream.Range(first, last), observability.Instrument[int64](ctx, m, "range"))
	if err != nil {
		return 0, err
	}
	return stream.Then(s, observability.Traced(ctx, m, "sum", stream.Fold(int64(0), add)))
}

type rangeStats struct {
	Count int
	Sum   int64
	Min   int64
	Max   int64
	Mean  float64
}

// statsOf computes several aggregates over one range. Each aggregate
// drains its own copy of the stream.
func statsOf(ctx context.Context, m *observability.Metrics, s stream.Stream[int64]) (rangeStats, error) {
	forCount, ok := stream.Clone(s)
	if !ok {
		return rangeStats{}, errors.NotClonable("stats")
	}
	forSum, _ := stream.Clone(s)

	var st rangeStats
	var err error
	if st.Count, err = stream.Then(forCount, observability.Traced(ctx, m, "count", stream.Count[int64]())); err != nil {
		return st, err
	}
	if st.Sum, err = stream.Then(forSum, observability.Traced(ctx, m, "sum", stream.Fold(int64(0), add))); err != nil {
		return st, err
	}
	bounds, err := stream.Then(s, observability.Traced(ctx, m, "minmax", stream.MinMax[int64]()))
	if err != nil {
		return st, err
	}
	if b, ok := bounds.Get(); ok {
		st.Min, st.Max = b.Min, b.Max
		st.Mean = float64(st.Sum) / float64(st.Count)
	}
	return st, nil
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// firstPrimes filters an endless counter and stops after n primes.
func firstPrimes(ctx context.Context, m *observability.Metrics, n int) ([]int64, error) {
	candidates, err := stream.Then(stream.Iota[int64](2, 1), observability.Instrument[int64](ctx, m, "candidates"))
	if err != nil {
		return nil, err
	}
	s, err := stream.Chain(candidates, stream.Filter(isPrime), stream.Take[int64](n))
	if err != nil {
		return nil, err
	}
	return stream.Then(s, observability.Traced(ctx, m, "primes", stream.ToSlice[int64]()))
}

type sortOptions struct {
	Unique     bool
	Reverse    bool
	IgnoreCase bool
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// sortWords sorts words stably. Unique keeps the first of each group of
// equal words; with IgnoreCase words equal up to case form one group.
func sortWords(ctx context.Context, m *observability.Metrics, words []string, opts sortOptions) ([]string, error) {
	var builders []stream.Builder[string, stream.Stream[string]]
	compare := strings.Compare
	var set stream.Set[string] = stream.NewHashSet[string]()
	if opts.IgnoreCase {
		compare = compareFold
		set = stream.NewTreeSet(compareFold)
	}
	if opts.Unique {
		builders = append(builders, stream.Distinct(set))
	}
	builders = append(builders, stream.SortFunc(compare))
	if opts.Reverse {
		builders = append(builders, stream.Reverse[string]())
	}

	s, err := stream.Chain(stream.FromSlice(words), builders...)
	if err != nil {
		return nil, err
	}
	return stream.Then(s, observability.Traced(ctx, m, "sort", stream.ToSlice[string]()))
}

// cycleItems repeats items until n elements have been produced.
func cycleItems(ctx context.Context, m *observability.Metrics, items []string, n int) ([]string, error) {
	looped, err := stream.Then(stream.FromSlice(items), stream.Loop[string]())
	if err != nil {
		return nil, err
	}
	return stream.Then(looped, observability.Traced(ctx, m, "cycle",
		stream.Compose(stream.Take[string](n), stream.ToSlice[string]())))
}

func collatzStep(n int64) int64 {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}

// collatz returns the Collatz trajectory of start, ending at 1. The
// trajectory is declared endless, so it is consumed through Seq with a
// step limit.
func collatz(ctx context.Context, m *observability.Metrics, start int64, maxSteps int) ([]int64, error) {
	trajectory := stream.Join(
		stream.IterateWhile(start, func(v int64) bool { return v != 1 }, collatzStep),
		stream.Of[int64](1),
	)
	seq, err := stream.Then(trajectory, observability.Traced(ctx, m, "collatz", stream.Seq[int64]()))
	if err != nil {
		return nil, err
	}
	var out []int64
	for v := range seq {
		if len(out) == maxSteps {
			return out, errors.InvalidArgument("max-steps", "trajectory did not reach 1 within the step limit")
		}
		out = append(out, v)
	}
	return out, nil
}
