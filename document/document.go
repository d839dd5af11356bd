package document

import (
	"iter"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a mapping from string keys to document values that preserves
// insertion order. Values are scalars (string, bool, integer or float
// types), []any sequences, or nested *Map mappings.
type Map struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, any]()}
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	return m.entries.Get(key)
}

// Set stores value under key. An existing key keeps its position;
// a new key is appended after all current keys.
func (m *Map) Set(key string, value any) {
	m.entries.Set(key, value)
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.entries.Get(key)
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return m.entries.Len()
}

// Keys returns all keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// All iterates over all entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Normalize converts value into the document value domain: typed scalar
// slices become []any sequences and map[string]any becomes a nested *Map
// (with keys sorted for determinism, since Go map iteration order is
// random). Anything else passes through unchanged.
func Normalize(value any) any {
	switch v := value.(type) {
	case *Map:
		return v
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}

		return out
	case []string:
		return toSequence(v)
	case []int:
		return toSequence(v)
	case []int64:
		return toSequence(v)
	case []float64:
		return toSequence(v)
	case []bool:
		return toSequence(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		out := NewMap()
		for _, key := range keys {
			out.Set(key, Normalize(v[key]))
		}

		return out
	default:
		return value
	}
}

func toSequence[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}

	return out
}
