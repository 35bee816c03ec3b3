package oas

import (
	"iter"
	"slices"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// It is used wherever the output document must reproduce the order in which
// entries were declared: schema properties, paths, responses, and components.
//
// The zero value is not usable; create one with NewOrderedMap.
// A nil *OrderedMap behaves as an empty map for read operations.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set stores value under key. A key that already exists keeps its position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, exists := m.values[key]; !exists {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the map, cloning each value with cloneValue.
// A nil cloneValue copies values as-is.
func (m *OrderedMap[V]) Clone(cloneValue func(V) V) *OrderedMap[V] {
	if m == nil {
		return nil
	}
	out := &OrderedMap[V]{
		keys:   slices.Clone(m.keys),
		values: make(map[string]V, len(m.values)),
	}
	for k, v := range m.values {
		if cloneValue != nil {
			v = cloneValue(v)
		}
		out.values[k] = v
	}
	return out
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return marshalFieldsJSON(m.fields())
}

// MarshalYAML encodes the map as a YAML mapping with keys in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}
	return fieldsNode(m.fields())
}

func (m *OrderedMap[V]) fields() []field {
	fs := make([]field, 0, len(m.keys))
	for _, k := range m.keys {
		fs = append(fs, field{key: k, value: m.values[k]})
	}
	return fs
}
