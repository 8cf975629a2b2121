package ordmap

import (
	"fmt"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/yndnr/ordmap-go/pkg/monoid"
)

// testPair keeps generated keys in a small space so that maps overlap.
type testPair struct {
	Key   uint8
	Value int16
}

func build(ps []testPair) *Map[string, int] {
	m := New[string, int]()
	for _, p := range ps {
		m.Add(fmt.Sprintf("k%d", p.Key%12), int(p.Value))
	}
	return m
}

func TestEmpty(t *testing.T) {
	e := Empty[string, int]()
	if e.Len() != 0 {
		t.Errorf("Empty().Len() = %d, want 0", e.Len())
	}
}

func TestConcat(t *testing.T) {
	a := New[string, string]()
	b := New[string, string]()
	a.Add("key1", "value1")
	b.Add("key1", "value2")
	b.Add("key2", "value3")

	got := a.Concat(b)
	if got != a {
		t.Error("Concat should return the receiver")
	}
	if v, _ := got.Get("key1"); v != "value2" {
		t.Errorf("Get(key1) = %q, want value2", v)
	}
	if v, _ := got.Get("key2"); v != "value3" {
		t.Errorf("Get(key2) = %q, want value3", v)
	}
	list := got.ToList()
	if last := list[len(list)-1]; last.Key != "key2" || last.Value != "value3" {
		t.Errorf("last pair = %v, want {key2 value3}", last)
	}
	if b.Len() != 2 {
		t.Errorf("other.Len() = %d, want 2", b.Len())
	}
}

func TestConcatRightBias(t *testing.T) {
	a := FromList(pairs("k", 1))
	b := FromList(pairs("k", 2, "j", 3))

	got := a.Concat(b)
	if v, _ := got.Get("k"); v != 2 {
		t.Errorf("Get(k) = %d, want 2", v)
	}
	if diff := cmp.Diff(pairs("k", 2, "j", 3), got.ToList()); diff != "" {
		t.Errorf("ToList() mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatPromotesSharedKeys(t *testing.T) {
	a := FromList(pairs("a", 1, "b", 2, "c", 3))
	b := FromList(pairs("a", 10, "d", 4))

	a.Concat(b)
	if diff := cmp.Diff(pairs("b", 2, "c", 3, "a", 10, "d", 4), a.ToList()); diff != "" {
		t.Errorf("ToList() mismatch (-want +got):\n%s", diff)
	}
	checkInvariants(t, a)
}

func TestConcatNilAndSelf(t *testing.T) {
	m := FromList(pairs("a", 1, "b", 2))

	if got := m.Concat(nil); got != m {
		t.Error("Concat(nil) should return the receiver")
	}
	m.Concat(m)
	if diff := cmp.Diff(pairs("a", 1, "b", 2), m.ToList()); diff != "" {
		t.Errorf("self Concat changed map (-want +got):\n%s", diff)
	}
}

func TestConcatDifferentBucketCounts(t *testing.T) {
	a := NewWithBuckets[string, int](1)
	a.Extend(pairs("a", 1, "b", 2))
	b := NewWithBuckets[string, int](13)
	b.Extend(pairs("b", 20, "c", 30))

	a.Concat(b)
	if diff := cmp.Diff(pairs("a", 1, "b", 20, "c", 30), a.ToList()); diff != "" {
		t.Errorf("ToList() mismatch (-want +got):\n%s", diff)
	}
	if a.BucketCount() != 1 {
		t.Errorf("BucketCount() = %d, want 1", a.BucketCount())
	}
	checkInvariants(t, a)
}

func TestMonoidIdentity(t *testing.T) {
	f := func(ps []testPair) bool {
		m := build(ps)

		left := Empty[string, int]().Concat(build(ps))
		right := build(ps).Concat(Empty[string, int]())

		return Equal(left, m) && Equal(right, m) &&
			cmp.Equal(left.ToList(), m.ToList()) &&
			cmp.Equal(right.ToList(), m.ToList())
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMonoidAssociativity(t *testing.T) {
	f := func(a, b, c []testPair) bool {
		left := build(a).Concat(build(b)).Concat(build(c))
		right := build(a).Concat(build(b).Concat(build(c)))
		return Equal(left, right)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMerge(t *testing.T) {
	a := FromList(pairs("a", 1, "b", 2))
	b := FromList(pairs("b", 3))
	c := FromList(pairs("c", 4, "a", 5))

	got := Merge(a, b, c)
	if diff := cmp.Diff(pairs("b", 3, "c", 4, "a", 5), got.ToList()); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}

	// Inputs are untouched
	if diff := cmp.Diff(pairs("a", 1, "b", 2), a.ToList()); diff != "" {
		t.Errorf("Merge() modified input (-want +got):\n%s", diff)
	}

	if Merge[string, int]().Len() != 0 {
		t.Error("Merge() with no maps should be empty")
	}
}

func TestMergeMatchesConcat(t *testing.T) {
	f := func(a, b, c []testPair) bool {
		want := build(a).Concat(build(b)).Concat(build(c))
		got := monoid.Concat(Monoid[string, int](), build(a), build(b), build(c))
		return cmp.Equal(want.ToList(), got.ToList())
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestTransform(t *testing.T) {
	m := NewWithBuckets[string, int](5)
	m.Extend(pairs("key1", 1, "key2", 2))

	doubled := Transform(m, func(v int) int { return v * 2 })
	if v, _ := doubled.Get("key1"); v != 2 {
		t.Errorf("Get(key1) = %d, want 2", v)
	}
	if v, _ := doubled.Get("key2"); v != 4 {
		t.Errorf("Get(key2) = %d, want 4", v)
	}
	if doubled.BucketCount() != 5 {
		t.Errorf("BucketCount() = %d, want 5", doubled.BucketCount())
	}

	// Source untouched
	if v, _ := m.Get("key1"); v != 1 {
		t.Errorf("source Get(key1) = %d, want 1", v)
	}

	strs := Transform(m, strconv.Itoa)
	want := []Pair[string, string]{{"key1", "1"}, {"key2", "2"}}
	if diff := cmp.Diff(want, strs.ToList()); diff != "" {
		t.Errorf("Transform(Itoa) mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformFunctorLaws(t *testing.T) {
	f := func(v int) int { return v*3 + 1 }
	g := func(v int) int { return v - 7 }

	laws := func(ps []testPair) bool {
		m := build(ps)

		id := Transform(m, func(v int) int { return v })
		composed := Transform(Transform(m, f), g)
		direct := Transform(m, func(v int) int { return g(f(v)) })

		return cmp.Equal(id.ToList(), m.ToList()) &&
			cmp.Equal(composed.ToList(), direct.ToList())
	}
	if err := quick.Check(laws, nil); err != nil {
		t.Error(err)
	}
}

func TestFold(t *testing.T) {
	m := FromList(pairs("key1", 1, "key2", 2))

	sum := Fold(m, func(acc, v int) int { return acc + v }, 0)
	if sum != 3 {
		t.Errorf("Fold(+) = %d, want 3", sum)
	}

	// Order is preserved
	joined := Fold(m, func(acc string, v int) string { return acc + strconv.Itoa(v) }, ">")
	if joined != ">12" {
		t.Errorf("Fold(join) = %q, want %q", joined, ">12")
	}
}

func TestFoldEmpty(t *testing.T) {
	empty := Empty[string, int]()

	if got := Fold(empty, func(acc, v int) int { return acc + v }, 0); got != 0 {
		t.Errorf("Fold(empty, 0) = %d, want 0", got)
	}
	if got := Fold(empty, func(acc, v int) int { return acc * v }, 42); got != 42 {
		t.Errorf("Fold(empty, 42) = %d, want 42", got)
	}
}

func TestFoldZeroInitialIsCombined(t *testing.T) {
	m := FromList(pairs("a", 5, "b", 6))

	// A zero initial is a real starting value, not "unset"
	got := Fold(m, func(acc, v int) int { return acc * v }, 0)
	if got != 0 {
		t.Errorf("Fold(*, 0) = %d, want 0", got)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		input  []Pair[string, int]
		fn     func(acc, v int) int
		want   int
		wantOK bool
	}{
		{"empty", nil, func(a, b int) int { return a + b }, 0, false},
		{"single", pairs("a", 7), func(a, b int) int { return a + b }, 7, true},
		{"sum", pairs("a", 1, "b", 2, "c", 3), func(a, b int) int { return a + b }, 6, true},
		{"first wins", pairs("a", 1, "b", 2), func(a, _ int) int { return a }, 1, true},
		// A naive "zero means unset" check would return 5 here
		{"zero accumulator", pairs("a", 2, "b", 0, "c", 5), func(a, b int) int { return a * b }, 0, true},
		{"cancels to zero", pairs("a", 1, "b", -1, "c", 5), func(a, b int) int { return a + b }, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reduce(FromList(tt.input), tt.fn)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Reduce() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReduceNilValues(t *testing.T) {
	one, two := 1, 2
	m := New[string, *int]()
	m.Add("a", &one)
	m.Add("b", nil)
	m.Add("c", &two)

	calls := 0
	got, ok := Reduce(m, func(acc, v *int) *int {
		calls++
		if v == nil {
			return nil
		}
		return v
	})
	if !ok || got != &two {
		t.Errorf("Reduce() = (%v, %v), want (&two, true)", got, ok)
	}
	if calls != 2 {
		t.Errorf("combinator called %d times, want 2", calls)
	}
}
