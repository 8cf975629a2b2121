// Package ordmap provides an insertion-ordered hash map with monoid
// operations.
//
// The map uses separate chaining over a fixed number of buckets
// (DefaultBucketCount unless created with NewWithBuckets). The bucket count
// never grows, so chains lengthen as the map fills; the package trades
// collision performance at scale for simple, stable iteration order.
//
// Iteration follows first-insertion order:
//
//   - Add on an existing key updates the value in place
//   - Remove drops the key from the order; a later Add appends it again
//   - Concat moves a shared key to the end and takes the right-hand value
//
// Usage:
//
//	m := ordmap.New[string, int]()
//	m.Add("a", 1)
//	m.Add("b", 2)
//	m.Add("a", 3)
//	m.ToList() // [{a 3} {b 2}]
//
//	merged := ordmap.Merge(m, other)
//	total := ordmap.Fold(merged, func(acc, v int) int { return acc + v }, 0)
//
// Thread Safety:
//
// A Map is not safe for concurrent use. Callers that share a map across
// goroutines must synchronize access themselves.
package ordmap
