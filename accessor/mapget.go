package accessor

import (
	"errors"
	"strconv"

	"github.com/0xalexb/mall/document"
)

var errNotCoercible = errors.New("value is not coercible to target type")

// ParseFunc converts a raw document value into T. Returning an error drops
// the entry.
type ParseFunc[T any] func(value any) (T, error)

// MapOf returns the mapping at path with every value converted through
// parse. Entries whose parse call fails are dropped. The result is always a
// fresh map; defaultValue is returned only when the path does not resolve to
// a mapping, never merged with partial results.
//
// MapOf is a package-level function because methods cannot introduce type
// parameters.
func MapOf[T any](a *Accessor, path string, parse ParseFunc[T], defaultValue map[string]T) map[string]T {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	mapping, ok := value.(*document.Map)
	if !ok {
		return defaultValue
	}

	out := make(map[string]T, mapping.Len())

	for key, raw := range mapping.All() {
		parsed, err := parse(raw)
		if err != nil {
			continue
		}

		out[key] = parsed
	}

	return out
}

// GetStringMap returns the mapping of strings at path. Entries with
// non-string values are dropped.
func (a *Accessor) GetStringMap(path string, defaultValue map[string]string) map[string]string {
	return MapOf(a, path, func(value any) (string, error) {
		if s, ok := value.(string); ok {
			return s, nil
		}

		return "", errNotCoercible
	}, defaultValue)
}

// GetIntMap returns the mapping of integers at path. String values are
// parsed; unparsable entries are dropped.
func (a *Accessor) GetIntMap(path string, defaultValue map[string]int) map[string]int {
	return MapOf(a, path, func(value any) (int, error) {
		if n, ok := toInt64(value); ok {
			return int(n), nil
		}

		if s, ok := value.(string); ok {
			n, err := strconv.ParseInt(s, 10, strconv.IntSize)
			if err != nil {
				return 0, err
			}

			return int(n), nil
		}

		return 0, errNotCoercible
	}, defaultValue)
}

// GetFloat64Map returns the mapping of floats at path. String values are
// parsed; unparsable entries are dropped.
func (a *Accessor) GetFloat64Map(path string, defaultValue map[string]float64) map[string]float64 {
	return MapOf(a, path, func(value any) (float64, error) {
		if f, ok := toFloat64(value); ok {
			return f, nil
		}

		if s, ok := value.(string); ok {
			return strconv.ParseFloat(s, 64)
		}

		return 0, errNotCoercible
	}, defaultValue)
}
