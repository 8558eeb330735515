package seq

import "iter"

// Pair is one element of a zipped sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map returns a transform yielding mapper(x) for each element x, in order.
func Map[A, B any](mapper func(A) B) func(iter.Seq[A]) iter.Seq[B] {
	return func(source iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			for v := range source {
				if !yield(mapper(v)) {
					return
				}
			}
		}
	}
}

// Filter returns a transform yielding only the elements for which
// predicate holds. predicate is called exactly once per pulled element.
func Filter[T any](predicate func(T) bool) func(iter.Seq[T]) iter.Seq[T] {
	return func(source iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range source {
				if predicate(v) && !yield(v) {
					return
				}
			}
		}
	}
}

// Collect returns a flat-map transform: each element is expanded by mapping
// and the resulting sub-sequences are yielded one after another.
func Collect[A, B any](mapping func(A) iter.Seq[B]) func(iter.Seq[A]) iter.Seq[B] {
	return func(source iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			for v := range source {
				for w := range mapping(v) {
					if !yield(w) {
						return
					}
				}
			}
		}
	}
}

// Scan returns a transform yielding state first and then every intermediate
// accumulator, so the output has one more element than the input.
func Scan[T, S any](scanner func(S, T) S, state S) func(iter.Seq[T]) iter.Seq[S] {
	return func(source iter.Seq[T]) iter.Seq[S] {
		return func(yield func(S) bool) {
			acc := state
			if !yield(acc) {
				return
			}
			for v := range source {
				acc = scanner(acc, v)
				if !yield(acc) {
					return
				}
			}
		}
	}
}

// Tap returns a transform that calls action on each element just before
// passing it downstream unchanged.
func Tap[T any](action func(T)) func(iter.Seq[T]) iter.Seq[T] {
	return func(source iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range source {
				action(v)
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Take returns a transform yielding at most n elements. The source is not
// pulled again once n elements have been yielded.
func Take[T any](n int) func(iter.Seq[T]) iter.Seq[T] {
	return func(source iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			count := 0
			for v := range source {
				if !yield(v) {
					return
				}
				count++
				if count >= n {
					return
				}
			}
		}
	}
}

// Zip returns a transform pairing source1 with its argument position by
// position. It stops as soon as either side runs out; the remainder of the
// longer side is ignored.
func Zip[A, B any](source1 iter.Seq[A]) func(iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(source2 iter.Seq[B]) iter.Seq[Pair[A, B]] {
		return func(yield func(Pair[A, B]) bool) {
			next2, stop2 := iter.Pull(source2)
			defer stop2()

			for a := range source1 {
				b, ok := next2()
				if !ok {
					return
				}
				if !yield(Pair[A, B]{First: a, Second: b}) {
					return
				}
			}
		}
	}
}

// TryMap is Map for mappers that can fail. Each result is yielded with a nil
// error; the first failure is yielded with a zero value and ends the sequence.
func TryMap[A, B any](mapper func(A) (B, error)) func(iter.Seq[A]) iter.Seq2[B, error] {
	return func(source iter.Seq[A]) iter.Seq2[B, error] {
		return func(yield func(B, error) bool) {
			for v := range source {
				res, err := mapper(v)
				if err != nil {
					var zero B
					yield(zero, err)
					return
				}
				if !yield(res, nil) {
					return
				}
			}
		}
	}
}
