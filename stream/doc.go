// Package stream provides lazy, pull-based sequence processing.
//
// Every stage implements the pull protocol: Next advances to the next
// element and reports whether one exists, Front reads the current element
// (repeatably) and Endless reports whether the stage is declared able to
// produce elements without bound. Nothing is computed until a consumer
// pulls, except the buffering stages (Sort, Reverse, Flat), which drain
// their finite upstream exactly once.
//
// Pipelines are assembled by applying builders to stages with Then. A
// builder either wraps the stage into a new one (Filter, Map, Take, ...) or
// consumes it into a result (Reduce, Count, ToSlice, ...). Builders are
// plain values and can be reused with any stage of a matching element type.
//
// # Operators
//
// Sources:
//
//   - FromSlice, FromSliceUnchecked, FromSeq
//   - Iota, Range, RangeN, RangeStep
//   - Generate, Iterate, IterateWhile
//   - Empty, EndlessEmpty, Of, Singleton, EndlessSingleton
//
// Transforms: Filter, Map, FilterMap, Take, Skip, TakeWhile, SkipWhile,
// Peek, MakeEndless.
//
// Buffering and reordering: Sort, SortFunc, Reverse, Distinct, Flat,
// EndlessFlat, FlatMap, EndlessFlatMap, Loop, TailRepeat.
//
// Composite: Join, Combine, Combine2, Combine3.
//
// Terminals: First, ElementAt, Seq, ForEach, Reduce, Fold, Min, Max, MinMax
// (and their Func variants), AllMatch, AnyMatch, NoneMatch, Count,
// CountInto, Collect, ToSlice.
//
// # Endless streams
//
// Terminals other than First, ElementAt and Seq, as well as Sort, Reverse
// and Flat, refuse a stage whose Endless reports true. The refusal happens
// before any element is pulled and, depending on the configured Policy,
// either returns an error matching ErrEndlessStream or logs at fatal level
// and exits the process.
//
// # Usage
//
//	evens, _ := stream.Chain(stream.Iota(1, 1),
//	    stream.Filter(func(n int) bool { return n%2 == 0 }),
//	    stream.Take[int](5),
//	)
//	sum, err := stream.Then(evens, stream.Reduce(func(a, b int) int { return a + b }))
//
// Stages are not safe for concurrent use.
package stream
