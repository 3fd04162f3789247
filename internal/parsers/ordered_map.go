package parsers

// OrderedMap is an associative container that remembers first-insertion
// order of keys. Set overwrites the value of an existing key without
// moving it (last write wins on the value, first write wins on the
// position), which is exactly the deduplication contract of the
// normalizer.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: map[string]V{}}
}

func (m *OrderedMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-insertion order.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Values returns the values in first-insertion order of their keys.
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}
