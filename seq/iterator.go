package seq

import (
	"context"
	"iter"

	"github.com/kbukum/seqkit/errors"
)

// Iterator provides pull-based sequential access to a producer that may hold
// resources such as files, cursors or connections.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Source adapts an Iterator into a single-pass Seq and owns its release.
// The iterator is closed exactly once: when iteration ends for any reason,
// including the consumer stopping early, or on an explicit Close.
type Source[T any] struct {
	ctx    context.Context
	it     Iterator[T]
	err    error
	used   bool
	closed bool
}

// FromIterator takes ownership of it. Values are pulled with ctx.
func FromIterator[T any](ctx context.Context, it Iterator[T]) *Source[T] {
	return &Source[T]{ctx: ctx, it: it}
}

// Seq returns the sequence view. It can be ranged over once; later ranges
// yield nothing.
func (s *Source[T]) Seq() Seq[T] {
	return func(yield func(T) bool) {
		if s.used {
			return
		}
		s.used = true
		defer s.release()

		for {
			if err := s.ctx.Err(); err != nil {
				s.fail(errors.IteratorFailed("next", err))
				return
			}
			v, ok, err := s.it.Next(s.ctx)
			if err != nil {
				s.fail(errors.IteratorFailed("next", err))
				return
			}
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Err returns the first failure seen while pulling or closing, or nil.
func (s *Source[T]) Err() error {
	return s.err
}

// Close releases the iterator if iteration has not already done so.
func (s *Source[T]) Close() error {
	s.used = true
	s.release()
	return s.err
}

func (s *Source[T]) release() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.it.Close(); err != nil {
		s.fail(errors.IteratorFailed("close", err))
	}
}

func (s *Source[T]) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// ToIterator adapts source into an Iterator. Close stops the underlying
// sequence, running any deferred cleanup inside it.
func ToIterator[T any](source iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(source)
	return &pullIter[T]{next: next, stop: stop}
}

// SliceIterator returns an Iterator over items.
func SliceIterator[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items}
}

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := it.next()
	return v, ok, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
