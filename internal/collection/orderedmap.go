// Package collection provides small container types used by the matching
// engine.
package collection

// OrderedMap is a map that iterates in insertion order. The selector
// depends on candidate order as its final tie-break, so grouping scored
// candidates by place id must not lose the order they were produced in.
type OrderedMap[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{items: make(map[K]V)}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Has reports whether the key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.items[key]

	return ok
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]

	return v, ok
}

// Set inserts or replaces the value for key. A replaced key keeps its
// original position.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// GetOrInsert returns the value for key, inserting factory() first when
// the key is absent.
func (m *OrderedMap[K, V]) GetOrInsert(key K, factory func() V) V {
	if v, ok := m.items[key]; ok {
		return v
	}
	v := factory()
	m.Set(key, v)

	return v
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// Values returns the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.items[k])
	}

	return values
}
