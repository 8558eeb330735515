package seq

import (
	"iter"
	"math"
	"slices"

	"github.com/kbukum/seqkit/pipe"
)

// Seq wraps a single-pass producer for dot-chaining. It holds nothing but
// the producer itself and can be ranged over directly.
type Seq[T any] iter.Seq[T]

// Of wraps source without copying or consuming it.
func Of[S ~func(yield func(T) bool), T any](source S) Seq[T] {
	return Seq[T](source)
}

// OfIterable is an alias of Of.
func OfIterable[S ~func(yield func(T) bool), T any](source S) Seq[T] {
	return Of(source)
}

// OfSlice wraps items without copying them.
func OfSlice[T any](items []T) Seq[T] {
	return Seq[T](slices.Values(items))
}

func empty[T any](func(T) bool) {}

// Empty returns the zero-element sequence. The returned value is shared and
// stateless.
func Empty[T any]() iter.Seq[T] {
	return empty[T]
}

// Singleton returns a sequence that yields item once.
func Singleton[T any](item T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(item)
	}
}

// InitInfinite yields initializer(0), initializer(1), ... up to math.MaxInt.
// Results are never cached: every iteration calls initializer again.
func InitInfinite[T any](initializer func(int) T) iter.Seq[T] {
	return initFrom(0, initializer)
}

func initFrom[T any](start int, initializer func(int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			if !yield(initializer(i)) || i == math.MaxInt {
				return
			}
		}
	}
}

// Concat yields every element of each source in argument order.
func Concat[T any](sources ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, source := range sources {
			for v := range source {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// --- Wrapper methods ---

// All returns the wrapped producer as an iter.Seq.
func (s Seq[T]) All() iter.Seq[T] {
	return iter.Seq[T](s)
}

// Pipe threads the sequence through fns from left to right.
func (s Seq[T]) Pipe(fns ...func(iter.Seq[T]) iter.Seq[T]) Seq[T] {
	return Seq[T](pipe.Pipe(s.All(), fns...))
}

// Map is the same-type form of Map.
func (s Seq[T]) Map(mapper func(T) T) Seq[T] {
	return Seq[T](Map(mapper)(s.All()))
}

// Filter keeps the elements satisfying predicate.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	return Seq[T](Filter(predicate)(s.All()))
}

// Collect is the same-type form of Collect.
func (s Seq[T]) Collect(mapping func(T) iter.Seq[T]) Seq[T] {
	return Seq[T](Collect(mapping)(s.All()))
}

// Scan is the same-type form of Scan.
func (s Seq[T]) Scan(scanner func(T, T) T, state T) Seq[T] {
	return Seq[T](Scan(scanner, state)(s.All()))
}

// Tap calls action on each element as it flows past.
func (s Seq[T]) Tap(action func(T)) Seq[T] {
	return Seq[T](Tap(action)(s.All()))
}

// Take yields at most n elements.
func (s Seq[T]) Take(n int) Seq[T] {
	return Seq[T](Take[T](n)(s.All()))
}

// Concat appends others after s.
func (s Seq[T]) Concat(others ...iter.Seq[T]) Seq[T] {
	return Seq[T](Concat(append([]iter.Seq[T]{s.All()}, others...)...))
}

// Zip pairs s with other, stopping at the shorter of the two.
func (s Seq[T]) Zip(other iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return Zip[T, T](s.All())(other)
}

// Fold is the same-type form of Fold.
func (s Seq[T]) Fold(folder func(T, T) T, state T) T {
	return Fold(folder, state)(s.All())
}

// FoldBack is the same-type form of FoldBack.
func (s Seq[T]) FoldBack(folder func(T, T) T, state T) T {
	return FoldBack(folder, s.All())(state)
}

// Head returns the first element.
func (s Seq[T]) Head() (T, error) {
	return Head(s.All())
}

// Iter calls action on every element.
func (s Seq[T]) Iter(action func(T)) {
	Iter(action)(s.All())
}

// ToSlice materializes the sequence.
func (s Seq[T]) ToSlice() []T {
	return ToSlice(s.All())
}
