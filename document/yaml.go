package document

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Decode parses YAML data into a Map, preserving key order. Empty input
// yields an empty Map. The root node must be a mapping; scalar or sequence
// roots return ErrNotMapping.
func Decode(data []byte) (*Map, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return NewMap(), nil
	}

	slice, ok := raw.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	mapping, ok := fromYAML(slice).(*Map)
	if !ok {
		return nil, ErrNotMapping
	}

	return mapping, nil
}

// Encode serializes a Map to YAML bytes in key order. It delegates to the
// external serializer and therefore does not emit comments; see the template
// package for comment-aware rendering.
func Encode(m *Map) ([]byte, error) {
	data, err := yaml.Marshal(toYAML(m))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// fromYAML converts a decoded goccy value into the document value domain.
// Mapping keys are stringified; YAML permits non-string keys but documents
// here are keyed by strings only.
func fromYAML(value any) any {
	switch v := value.(type) {
	case yaml.MapSlice:
		mapping := NewMap()

		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}

			mapping.Set(key, fromYAML(item.Value))
		}

		return mapping
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = fromYAML(item)
		}

		return out
	default:
		return v
	}
}

func toYAML(value any) any {
	switch v := value.(type) {
	case *Map:
		slice := make(yaml.MapSlice, 0, v.Len())
		for key, item := range v.All() {
			slice = append(slice, yaml.MapItem{Key: key, Value: toYAML(item)})
		}

		return slice
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = toYAML(item)
		}

		return out
	default:
		return v
	}
}
