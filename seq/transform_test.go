package seq

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := ToSlice(Map(func(n int) string { return "#" + strconv.Itoa(n) })(slices.Values([]int{1, 2, 3})))
	want := []string{"#1", "#2", "#3"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_Lazy(t *testing.T) {
	calls := 0
	pulled := 0
	mapped := Map(func(n int) int {
		calls++
		return n
	})(countingNaturals(&pulled))
	if calls != 0 || pulled != 0 {
		t.Fatalf("constructing Map must not evaluate anything (calls=%d pulled=%d)", calls, pulled)
	}
	head, err := Head(mapped)
	if err != nil {
		t.Fatal(err)
	}
	if head != 0 || calls != 1 || pulled != 1 {
		t.Errorf("head=%d calls=%d pulled=%d, want 0/1/1", head, calls, pulled)
	}
}

func TestMap_Reusable(t *testing.T) {
	double := Map(func(n int) int { return n * 2 })
	a := ToSlice(double(slices.Values([]int{1, 2})))
	b := ToSlice(double(slices.Values([]int{5})))
	if !slices.Equal(a, []int{2, 4}) || !slices.Equal(b, []int{10}) {
		t.Errorf("partially applied Map not reusable: %v %v", a, b)
	}
}

func TestFilter(t *testing.T) {
	input := []int{5, 2, 8, 1, 6, 3}
	var checked []int
	keep := Filter(func(n int) bool {
		checked = append(checked, n)
		return n > 2
	})
	got := ToSlice(keep(slices.Values(input)))
	if !slices.Equal(got, []int{5, 8, 6, 3}) {
		t.Errorf("got %v", got)
	}
	if !slices.Equal(checked, input) {
		t.Errorf("predicate must see each element exactly once in order, saw %v", checked)
	}
}

func TestFilter_InfiniteWithEarlyStop(t *testing.T) {
	pulled := 0
	evens := Filter(func(n int) bool { return n%2 == 0 })(countingNaturals(&pulled))
	got := ToSlice(Take[int](3)(evens))
	if !slices.Equal(got, []int{0, 2, 4}) {
		t.Errorf("got %v", got)
	}
	if pulled != 5 {
		t.Errorf("expected 5 pulls, got %d", pulled)
	}
}

func TestCollect(t *testing.T) {
	expand := Collect(func(n int) iter.Seq[int] {
		if n == 2 {
			return Empty[int]()
		}
		return slices.Values([]int{n, n * 10})
	})
	got := ToSlice(expand(slices.Values([]int{1, 2, 3})))
	if !slices.Equal(got, []int{1, 10, 3, 30}) {
		t.Errorf("got %v", got)
	}
}

func TestCollect_InfiniteInner(t *testing.T) {
	repeat := Collect(func(n int) iter.Seq[int] {
		return InitInfinite(func(int) int { return n })
	})
	got := ToSlice(Take[int](3)(repeat(slices.Values([]int{7, 8}))))
	if !slices.Equal(got, []int{7, 7, 7}) {
		t.Errorf("got %v", got)
	}
}

func TestScan(t *testing.T) {
	got := ToSlice(Scan(func(acc, n int) int { return acc + n }, 0)(slices.Values([]int{1, 2, 3})))
	if !slices.Equal(got, []int{0, 1, 3, 6}) {
		t.Errorf("got %v, want [0 1 3 6]", got)
	}
}

func TestScan_EmptyYieldsSeed(t *testing.T) {
	got := ToSlice(Scan(func(acc string, s string) string { return acc + s }, "seed")(Empty[string]()))
	if !slices.Equal(got, []string{"seed"}) {
		t.Errorf("got %v", got)
	}
}

func TestScan_Lazy(t *testing.T) {
	pulled := 0
	running := Scan(func(acc, n int) int { return acc + n }, 100)(countingNaturals(&pulled))
	got := ToSlice(Take[int](3)(running))
	if !slices.Equal(got, []int{100, 100, 101}) {
		t.Errorf("got %v", got)
	}
	if pulled != 2 {
		t.Errorf("expected 2 pulls, got %d", pulled)
	}
}

func TestZip(t *testing.T) {
	got := slices.Collect(Zip[int, int](slices.Values([]int{1, 2, 3}))(slices.Values([]int{4, 5})))
	want := []Pair[int, int]{{1, 4}, {2, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip_MixedTypesAndInfinite(t *testing.T) {
	letters := slices.Values([]string{"a", "b"})
	got := slices.Collect(Zip[string, int](letters)(InitInfinite(func(i int) int { return i })))
	want := []Pair[string, int]{{"a", 0}, {"b", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip_EmptySide(t *testing.T) {
	if got := slices.Collect(Zip[int, int](Empty[int]())(slices.Values([]int{1}))); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	tapped := Tap(func(n int) { seen = append(seen, n) })(slices.Values([]int{1, 2, 3}))
	if len(seen) != 0 {
		t.Fatal("Tap must be lazy")
	}
	got := ToSlice(Take[int](2)(tapped))
	if !slices.Equal(got, []int{1, 2}) || !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("got %v, seen %v", got, seen)
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"prefix", 2, []int{1, 2}},
		{"exact", 3, []int{1, 2, 3}},
		{"more than available", 10, []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToSlice(Take[int](tc.n)(slices.Values([]int{1, 2, 3})))
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTake_DoesNotOverpull(t *testing.T) {
	pulled := 0
	_ = ToSlice(Take[int](3)(countingNaturals(&pulled)))
	if pulled != 3 {
		t.Errorf("expected 3 pulls, got %d", pulled)
	}
}

func TestTryMap(t *testing.T) {
	parse := TryMap(strconv.Atoi)

	t.Run("success", func(t *testing.T) {
		var got []int
		for v, err := range parse(slices.Values([]string{"1", "2"})) {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, v)
		}
		if !slices.Equal(got, []int{1, 2}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		var got []int
		var gotErr error
		steps := 0
		for v, err := range parse(slices.Values([]string{"1", "x", "3"})) {
			steps++
			if err != nil {
				gotErr = err
				continue
			}
			got = append(got, v)
		}
		var numErr *strconv.NumError
		if !errors.As(gotErr, &numErr) {
			t.Fatalf("expected mapper error unchanged, got %v", gotErr)
		}
		if !slices.Equal(got, []int{1}) || steps != 2 {
			t.Errorf("expected iteration to end at the failure, got %v after %d steps", got, steps)
		}
	})
}

func TestMap_PanicPropagates(t *testing.T) {
	var after []int
	defer func() {
		if r := recover(); r != "bad element" {
			t.Fatalf("expected mapper panic to propagate unchanged, got %v", r)
		}
		if !slices.Equal(after, []int{1}) {
			t.Errorf("iteration must stop at the panic, consumed %v", after)
		}
	}()
	mapped := Map(func(n int) int {
		if n == 2 {
			panic("bad element")
		}
		return n
	})(slices.Values([]int{1, 2, 3}))
	for v := range mapped {
		after = append(after, v)
	}
}
