package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed mapping that keeps insertion order through
// marshaling. Replacing an existing key keeps its original position.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap creates an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// Set inserts a key-value pair, or replaces the value if the key exists.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has returns true if the key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// MarshalYAML implements yaml.Marshaler. An empty Map renders as an empty
// mapping. The encoders render a nil pointer as null before consulting
// this method, so maps that must appear in the output are always
// allocated by their builders.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}

	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		keyNode.SetString(key)

		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("encoding value for %q: %w", key, err)
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}

// MarshalJSON implements json.Marshaler. An empty Map renders as an
// empty object.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	if m != nil {
		for i, key := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			keyData, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}

			buf.Write(keyData)
			buf.WriteByte(':')

			valData, err := json.Marshal(m.values[key])
			if err != nil {
				return nil, fmt.Errorf("encoding value for %q: %w", key, err)
			}

			buf.Write(valData)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
