package ordmap

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultBucketCount is the number of buckets used by New and by the zero Map.
const DefaultBucketCount = 10

// Pair is a key-value pair as produced by ToList and consumed by FromList.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered hash map with a fixed bucket count.
//
// Each entry sits in exactly one bucket chain and is also a node of the
// order list, so lookups and iteration always see the same set of keys.
//
// The zero Map is empty and ready to use. A nil *Map reads as empty;
// writing to it panics.
type Map[K comparable, V any] struct {
	buckets [][]*entry[K, V]
	head    *entry[K, V]
	tail    *entry[K, V]
	size    int
}

type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// New creates an empty map with DefaultBucketCount buckets.
func New[K comparable, V any]() *Map[K, V] {
	return NewWithBuckets[K, V](DefaultBucketCount)
}

// NewWithBuckets creates an empty map with a fixed number of buckets.
// A non-positive count falls back to DefaultBucketCount.
func NewWithBuckets[K comparable, V any](bucketCount int) *Map[K, V] {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &Map[K, V]{
		buckets: make([][]*entry[K, V], bucketCount),
	}
}

// FromList creates a map from pairs, applying them in order with Add.
func FromList[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.Extend(pairs)
	return m
}

func (m *Map[K, V]) init() {
	if m.buckets == nil {
		m.buckets = make([][]*entry[K, V], DefaultBucketCount)
	}
}

// lookup returns the bucket index for key and the position of its entry in
// that bucket's chain, or -1 if the key is absent.
func (m *Map[K, V]) lookup(key K) (int, int) {
	if m == nil || len(m.buckets) == 0 {
		return 0, -1
	}
	b := int(hashKey(key) % uint64(len(m.buckets)))
	for i, e := range m.buckets[b] {
		if e.key == key {
			return b, i
		}
	}
	return b, -1
}

func (m *Map[K, V]) find(key K) *entry[K, V] {
	b, i := m.lookup(key)
	if i < 0 {
		return nil
	}
	return m.buckets[b][i]
}

// Add inserts or updates a key.
//
// Updating an existing key keeps its position in iteration order.
// A new key is appended to its bucket chain and to the end of the order.
func (m *Map[K, V]) Add(key K, value V) {
	m.init()
	b, i := m.lookup(key)
	if i >= 0 {
		m.buckets[b][i].value = value
		return
	}

	e := &entry[K, V]{key: key, value: value}
	m.buckets[b] = append(m.buckets[b], e)
	m.pushBack(e)
	m.size++
}

// Set is an alias for Add.
func (m *Map[K, V]) Set(key K, value V) {
	m.Add(key, value)
}

// Get retrieves a value by key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Remove deletes a key. It reports whether the key was present;
// removing an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) bool {
	b, i := m.lookup(key)
	if i < 0 {
		return false
	}

	e := m.buckets[b][i]
	m.buckets[b] = slices.Delete(m.buckets[b], i, i+1)
	if len(m.buckets[b]) == 0 {
		m.buckets[b] = nil
	}
	m.unlink(e)
	m.size--
	return true
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Has checks if a key exists.
func (m *Map[K, V]) Has(key K) bool {
	return m.find(key) != nil
}

// Extend adds pairs in order. Later duplicates overwrite earlier values
// without moving the key.
func (m *Map[K, V]) Extend(pairs []Pair[K, V]) {
	for _, p := range pairs {
		m.Add(p.Key, p.Value)
	}
}

// ToList returns all pairs in iteration order.
func (m *Map[K, V]) ToList() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.Len())
	for e := m.front(); e != nil; e = e.next {
		pairs = append(pairs, Pair[K, V]{Key: e.key, Value: e.value})
	}
	return pairs
}

// Filter returns a new map with the same bucket count holding the entries
// for which pred returns true, in their original relative order.
func (m *Map[K, V]) Filter(pred func(key K, value V) bool) *Map[K, V] {
	out := NewWithBuckets[K, V](m.BucketCount())
	for e := m.front(); e != nil; e = e.next {
		if pred(e.key, e.value) {
			out.Add(e.key, e.value)
		}
	}
	return out
}

// Clone returns a shallow copy with the same bucket count and order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return m.Filter(func(K, V) bool { return true })
}

// Clear removes all entries. The bucket count is kept.
func (m *Map[K, V]) Clear() {
	m.init()
	clear(m.buckets)
	m.head, m.tail = nil, nil
	m.size = 0
}

// BucketCount returns the fixed number of buckets.
func (m *Map[K, V]) BucketCount() int {
	if m == nil || len(m.buckets) == 0 {
		return DefaultBucketCount
	}
	return len(m.buckets)
}

// BucketStats describes the chain held by one bucket.
type BucketStats struct {
	Index int
	Count int
}

// Stats returns the chain length of every bucket.
func (m *Map[K, V]) Stats() []BucketStats {
	stats := make([]BucketStats, m.BucketCount())
	for i := range stats {
		stats[i].Index = i
		if m != nil && i < len(m.buckets) {
			stats[i].Count = len(m.buckets[i])
		}
	}
	return stats
}

// String formats the map as ordmap[k1:v1 k2:v2] in iteration order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("ordmap[")
	for e := m.front(); e != nil; e = e.next {
		if e != m.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", e.key, e.value)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether two maps hold the same key-value pairs,
// ignoring iteration order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for e := a.front(); e != nil; e = e.next {
		v, ok := b.Get(e.key)
		if !ok || !eq(e.value, v) {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) front() *entry[K, V] {
	if m == nil {
		return nil
	}
	return m.head
}

func (m *Map[K, V]) pushBack(e *entry[K, V]) {
	e.prev = m.tail
	e.next = nil
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
}

func (m *Map[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// moveToBack relocates an entry to the end of the order.
func (m *Map[K, V]) moveToBack(e *entry[K, V]) {
	if m.tail == e {
		return
	}
	m.unlink(e)
	m.pushBack(e)
}
