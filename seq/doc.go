// Package seq provides curried, lazily-evaluated combinators over iter.Seq.
//
// Every combinator takes its parameters first and returns a reusable,
// partially applied transform that receives the source sequence last:
//
//	evens := seq.Filter(func(n int) bool { return n%2 == 0 })
//	sum := seq.Fold(func(acc, n int) int { return acc + n }, 0)
//	total := pipe.Pipe3(seq.InitInfinite(func(i int) int { return i }), seq.Take[int](10), evens, sum)
//
// Lazy transforms (Map, Filter, Collect, Scan, Zip, Tap, Take, Concat) do no
// work until the result is ranged over, and pull from their source one
// element at a time, so they are safe on infinite sources as long as the
// consumer stops early. Eager reductions (Fold, FoldBack, Iter, Head, Min,
// Max, MinBy, MaxBy, ToSlice) consume the source when called; on an infinite
// source only Head returns.
//
// # Wrapper
//
// Seq[T] wraps any producer for dot-chaining. Its methods delegate to the
// standalone combinators; type-changing steps use the standalone form
// because Go methods cannot declare type parameters:
//
//	lengths := seq.Map(func(s string) int { return len(s) })(seq.OfSlice(words).Filter(notEmpty).All())
//
// # Errors
//
// Head, Min, Max, MinBy and MaxBy return an error matching ErrEmptySequence
// when the source is empty. Panics raised by caller-supplied functions are
// never recovered: they stop iteration and reach the caller unchanged. The
// Try variants do the same for returned errors.
//
// # Resources
//
// Producers that hold resources implement Iterator and are adapted with
// FromIterator, which closes them exactly once on exhaustion, failure or
// early abandonment.
package seq
