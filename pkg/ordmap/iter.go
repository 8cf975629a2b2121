package ordmap

import "iter"

// Range iterates over all key-value pairs in order.
//
// The callback returns false to stop iteration. The callback may remove the
// current key or add new ones (new keys are visited); removing any other key
// during iteration is not supported.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for e := m.front(); e != nil; {
		next, prev := e.next, e.prev
		if !fn(e.key, e.value) {
			return
		}
		switch {
		case next != nil:
			e = next
		case e.next != nil || m.tail == e:
			// still linked; keys added by fn follow it
			e = e.next
		case prev != nil:
			// e was removed; keys added by fn follow its predecessor
			e = prev.next
		default:
			e = m.head
		}
	}
}

// All returns an iterator over key-value pairs in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.Range
}

// Keys returns all keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for e := m.front(); e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns all values in order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for e := m.front(); e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}
