package ordmap

import "github.com/yndnr/ordmap-go/pkg/monoid"

// Empty returns a new empty map, the identity element for Concat.
func Empty[K comparable, V any]() *Map[K, V] {
	return New[K, V]()
}

// Concat merges other into m and returns m.
//
// Keys of other are applied in other's order. A key already present in m
// takes other's value and moves to the end of the iteration order; a new key
// is appended. Concat is right-biased and associative on the set of pairs,
// though the resulting order may differ between groupings.
//
// A nil other, or m itself, leaves m unchanged.
func (m *Map[K, V]) Concat(other *Map[K, V]) *Map[K, V] {
	if other == nil || other == m {
		return m
	}

	m.init()
	for e := other.head; e != nil; e = e.next {
		if existing := m.find(e.key); existing != nil {
			existing.value = e.value
			m.moveToBack(existing)
			continue
		}
		m.Add(e.key, e.value)
	}
	return m
}

// Transform returns a new map holding f(value) for every key, in the same
// order and with the same bucket count. m is not modified.
func Transform[K comparable, V, W any](m *Map[K, V], f func(V) W) *Map[K, W] {
	out := NewWithBuckets[K, W](m.BucketCount())
	for e := m.front(); e != nil; e = e.next {
		out.Add(e.key, f(e.value))
	}
	return out
}

// Fold combines values in order, starting from initial.
// On an empty map it returns initial.
func Fold[K comparable, V, A any](m *Map[K, V], f func(acc A, value V) A, initial A) A {
	acc := initial
	for e := m.front(); e != nil; e = e.next {
		acc = f(acc, e.value)
	}
	return acc
}

// Reduce combines values in order without an initial value: the first value
// seeds the accumulator and later values are combined with f. The boolean is
// false only for an empty map.
//
// Whether the fold has started is tracked separately from the accumulator,
// so zero or nil intermediate results are combined like any other value.
func Reduce[K comparable, V any](m *Map[K, V], f func(acc, value V) V) (V, bool) {
	var acc V
	started := false
	for e := m.front(); e != nil; e = e.next {
		if !started {
			acc, started = e.value, true
			continue
		}
		acc = f(acc, e.value)
	}
	return acc, started
}

// Monoid returns the map monoid: Empty as identity and Concat as append.
// Append mutates its left operand.
func Monoid[K comparable, V any]() monoid.Monoid[*Map[K, V]] {
	return monoid.Monoid[*Map[K, V]]{
		Empty: Empty[K, V],
		Append: func(a, b *Map[K, V]) *Map[K, V] {
			return a.Concat(b)
		},
	}
}

// Merge concatenates maps left to right into a new map.
// The inputs are not modified.
func Merge[K comparable, V any](maps ...*Map[K, V]) *Map[K, V] {
	return monoid.Concat(Monoid[K, V](), maps...)
}
