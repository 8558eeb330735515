package seq

import (
	"cmp"
	"iter"
	"slices"
	"sync"

	"github.com/kbukum/seqkit/errors"
)

// ErrEmptySequence matches, via errors.Is, every error returned when an
// operation needs at least one element and the source has none. It is a bare
// code, so it carries no state a caller could change; each failure is a
// fresh *errors.AppError with the operation name in its details.
var ErrEmptySequence error = errors.ErrCodeEmptySequence

// Fold returns a reduction computing folder(...folder(folder(state, e0), e1)..., eN).
// It never returns on an infinite source.
func Fold[T, S any](folder func(S, T) S, state S) func(iter.Seq[T]) S {
	return func(source iter.Seq[T]) S {
		acc := state
		for v := range source {
			acc = folder(acc, v)
		}
		return acc
	}
}

// FoldBack returns a function computing folder(e0, folder(e1, ... folder(eN, state))).
//
// Right-to-left order needs every element up front, so source is buffered
// in full the first time the returned function is called and the buffer is
// reused by later calls. source must be finite.
func FoldBack[T, S any](folder func(T, S) S, source iter.Seq[T]) func(S) S {
	items := sync.OnceValue(func() []T {
		return slices.Collect(source)
	})
	return func(state S) S {
		xs := items()
		acc := state
		for i := len(xs) - 1; i >= 0; i-- {
			acc = folder(xs[i], acc)
		}
		return acc
	}
}

// Iter returns a function calling action on every element in order.
func Iter[T any](action func(T)) func(iter.Seq[T]) {
	return func(source iter.Seq[T]) {
		for v := range source {
			action(v)
		}
	}
}

// Head returns the first element, pulling nothing beyond it.
func Head[T any](source iter.Seq[T]) (T, error) {
	for v := range source {
		return v, nil
	}
	var zero T
	return zero, errors.EmptySequence("head")
}

// ToSlice materializes source. It never returns on an infinite source.
func ToSlice[T any](source iter.Seq[T]) []T {
	return slices.Collect(source)
}

// Min returns the smallest element in cmp.Compare order. Among equal
// elements the first one encountered wins.
func Min[T cmp.Ordered](source iter.Seq[T]) (T, error) {
	return best(source, "min", cmp.Less[T])
}

// Max returns the greatest element in cmp.Compare order. Among equal
// elements the first one encountered wins.
func Max[T cmp.Ordered](source iter.Seq[T]) (T, error) {
	return best(source, "max", greater[T])
}

// MinBy returns a reduction yielding the smallest projection(x) over the
// source. The result is the projected value, not the element it came from.
func MinBy[T any, K cmp.Ordered](projection func(T) K) func(iter.Seq[T]) (K, error) {
	return func(source iter.Seq[T]) (K, error) {
		return best(Map(projection)(source), "min_by", cmp.Less[K])
	}
}

// MaxBy returns a reduction yielding the greatest projection(x) over the
// source. The result is the projected value, not the element it came from.
func MaxBy[T any, K cmp.Ordered](projection func(T) K) func(iter.Seq[T]) (K, error) {
	return func(source iter.Seq[T]) (K, error) {
		return best(Map(projection)(source), "max_by", greater[K])
	}
}

// TryFold is Fold for folders that can fail. It stops at the first error and
// returns it unchanged together with the last good accumulator.
func TryFold[T, S any](folder func(S, T) (S, error), state S) func(iter.Seq[T]) (S, error) {
	return func(source iter.Seq[T]) (S, error) {
		acc := state
		for v := range source {
			next, err := folder(acc, v)
			if err != nil {
				return acc, err
			}
			acc = next
		}
		return acc, nil
	}
}

// TryIter is Iter for actions that can fail. It stops at the first error and
// returns it unchanged.
func TryIter[T any](action func(T) error) func(iter.Seq[T]) error {
	return func(source iter.Seq[T]) error {
		for v := range source {
			if err := action(v); err != nil {
				return err
			}
		}
		return nil
	}
}

func greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// best returns the element no later element beats under better, so ties
// keep the earliest one.
func best[T any](source iter.Seq[T], op string, better func(candidate, current T) bool) (T, error) {
	var current T
	found := false
	for v := range source {
		if !found || better(v, current) {
			current = v
			found = true
		}
	}
	if !found {
		return current, errors.EmptySequence(op)
	}
	return current, nil
}
