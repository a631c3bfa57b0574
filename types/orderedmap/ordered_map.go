package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap stores key-value pairs in insertion order. It is a typed
// facade over wk8/go-ordered-map; iteration order is the order in which
// keys were first set, which is what makes emitted completion fragments
// deterministic.
type OrderedMap[K comparable, V any] struct {
	om *wk8.OrderedMap
}

// Pair is a cursor over the map's entries, starting at Front.
type Pair[K comparable, V any] struct {
	p *wk8.Pair
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: wk8.New()}
}

// Set stores a key-value pair. If the key already exists its value is
// overwritten and its position in the iteration order is preserved.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.om.Set(key, val)
}

// Get returns the value stored under key.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.om.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Delete removes the entry stored under key, reporting whether it existed.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	_, ok := o.om.Delete(key)
	return ok
}

// Len returns the number of stored entries.
func (o *OrderedMap[K, V]) Len() int {
	return o.om.Len()
}

// Front returns a cursor at the oldest entry, or nil when the map is empty.
func (o *OrderedMap[K, V]) Front() *Pair[K, V] {
	p := o.om.Oldest()
	if p == nil {
		return nil
	}
	return &Pair[K, V]{p: p}
}

// Next advances the cursor, returning nil once the entries are exhausted.
func (p *Pair[K, V]) Next() *Pair[K, V] {
	n := p.p.Next()
	if n == nil {
		return nil
	}
	return &Pair[K, V]{p: n}
}

// Key returns the key at the cursor.
func (p *Pair[K, V]) Key() K {
	return p.p.Key.(K)
}

// Value returns the value at the cursor.
func (p *Pair[K, V]) Value() V {
	return p.p.Value.(V)
}

// Keys returns all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	for p := o.Front(); p != nil; p = p.Next() {
		keys = append(keys, p.Key())
	}
	return keys
}
