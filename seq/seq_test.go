package seq

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/kbukum/seqkit/pipe"
)

// countingNaturals yields 0, 1, 2, ... forever and records how many values
// were produced.
func countingNaturals(pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// oncePerRange yields items but reports a second range as a test failure.
func oncePerRange[T any](t *testing.T, items ...T) iter.Seq[T] {
	t.Helper()
	used := false
	return func(yield func(T) bool) {
		if used {
			t.Error("single-pass source ranged over twice")
			return
		}
		used = true
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

func TestEmpty(t *testing.T) {
	if got := ToSlice(Empty[int]()); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
	// shared value, usable any number of times
	for range 3 {
		for range Empty[string]() {
			t.Fatal("Empty yielded an element")
		}
	}
}

func TestSingleton(t *testing.T) {
	got := ToSlice(Singleton("x"))
	if !slices.Equal(got, []string{"x"}) {
		t.Errorf("got %v, want [x]", got)
	}
}

func TestOfSlice_NoCopy(t *testing.T) {
	items := []int{1, 2, 3}
	s := OfSlice(items)
	items[0] = 10
	if got := s.ToSlice(); !slices.Equal(got, []int{10, 2, 3}) {
		t.Errorf("expected OfSlice to view the slice, got %v", got)
	}
}

func TestOf_RoundTrip(t *testing.T) {
	src := slices.Values([]int{4, 5, 6})
	wrapped := Of(Of(src))
	if got := wrapped.ToSlice(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Errorf("got %v", got)
	}
	if got := OfIterable(src).ToSlice(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Errorf("OfIterable got %v", got)
	}
}

func TestOf_DoesNotConsume(t *testing.T) {
	pulled := 0
	_ = Of(countingNaturals(&pulled))
	if pulled != 0 {
		t.Errorf("Of must not pull from its source, pulled %d", pulled)
	}
}

func TestInitInfinite(t *testing.T) {
	calls := 0
	s := InitInfinite(func(i int) int {
		calls++
		return i * i
	})
	if calls != 0 {
		t.Fatal("InitInfinite must be lazy")
	}
	got := ToSlice(Take[int](4)(s))
	if !slices.Equal(got, []int{0, 1, 4, 9}) {
		t.Errorf("got %v", got)
	}
	if calls != 4 {
		t.Errorf("expected 4 initializer calls, got %d", calls)
	}

	// no caching: ranging again recomputes
	_ = ToSlice(Take[int](2)(s))
	if calls != 6 {
		t.Errorf("expected initializer to be re-invoked, got %d calls", calls)
	}
}

func TestInitInfinite_StopsAtMaxInt(t *testing.T) {
	got := ToSlice(initFrom(math.MaxInt-2, func(i int) int { return i }))
	want := []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConcat(t *testing.T) {
	got := ToSlice(Concat(
		slices.Values([]int{1, 2}),
		Empty[int](),
		slices.Values([]int{3}),
	))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestConcat_NoSources(t *testing.T) {
	if got := ToSlice(Concat[int]()); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestConcat_LazyAcrossSources(t *testing.T) {
	pulled := 0
	got, err := Head(Concat(Empty[int](), countingNaturals(&pulled)))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 || pulled != 1 {
		t.Errorf("got %d after %d pulls, want 0 after 1", got, pulled)
	}
}

func TestSeq_Chaining(t *testing.T) {
	got := OfSlice([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Map(func(n int) int { return n * 10 }).
		ToSlice()
	if !slices.Equal(got, []int{20, 40, 60}) {
		t.Errorf("got %v", got)
	}
}

func TestSeq_Pipe(t *testing.T) {
	s := OfSlice([]int{1, 2, 3})
	if got := s.Pipe().ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("empty Pipe must return the same elements, got %v", got)
	}
	got := s.Pipe(
		Map(func(n int) int { return n + 1 }),
		Filter(func(n int) bool { return n != 3 }),
	).ToSlice()
	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestSeq_Methods(t *testing.T) {
	s := OfSlice([]int{1, 2, 3})

	if got := s.Fold(func(acc, n int) int { return acc + n }, 0); got != 6 {
		t.Errorf("Fold got %d", got)
	}
	if got := s.FoldBack(func(n, acc int) int { return acc*10 + n }, 0); got != 321 {
		t.Errorf("FoldBack got %d, want 321", got)
	}
	if got := s.Scan(func(acc, n int) int { return acc + n }, 0).ToSlice(); !slices.Equal(got, []int{0, 1, 3, 6}) {
		t.Errorf("Scan got %v", got)
	}
	if got := s.Collect(func(n int) iter.Seq[int] { return slices.Values([]int{n, n}) }).ToSlice(); !slices.Equal(got, []int{1, 1, 2, 2, 3, 3}) {
		t.Errorf("Collect got %v", got)
	}
	if got := s.Concat(Singleton(4)).ToSlice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Concat got %v", got)
	}
	if got := s.Take(2).ToSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Take got %v", got)
	}
	head, err := s.Head()
	if err != nil || head != 1 {
		t.Errorf("Head got %d, %v", head, err)
	}

	var seen []int
	s.Tap(func(n int) { seen = append(seen, n) }).Iter(func(int) {})
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Errorf("Tap/Iter saw %v", seen)
	}

	pairs := slices.Collect(s.Zip(slices.Values([]int{7, 8})))
	want := []Pair[int, int]{{1, 7}, {2, 8}}
	if !slices.Equal(pairs, want) {
		t.Errorf("Zip got %v, want %v", pairs, want)
	}
}

func TestSeq_RangeDirectly(t *testing.T) {
	var got []string
	for v := range OfSlice([]string{"a", "b"}) {
		got = append(got, v)
	}
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("got %v", got)
	}
}

func TestSeq_PipeIdentity(t *testing.T) {
	src := slices.Values([]int{3, 1, 2})
	got := pipe.Pipe(src, pipe.Identity[iter.Seq[int]])
	if !slices.Equal(ToSlice(got), []int{3, 1, 2}) {
		t.Errorf("got %v", ToSlice(got))
	}
}
