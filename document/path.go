package document

import "strings"

// PathSeparator separates segments in a document path.
const PathSeparator = "."

// SplitPath splits a dot-separated path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// Lookup resolves a dot-separated path against root, descending one mapping
// level per segment. It returns false if any segment is missing or if an
// intermediate value is not a mapping.
func Lookup(root *Map, path string) (any, bool) {
	current := any(root)

	for _, key := range SplitPath(path) {
		mapping, ok := current.(*Map)
		if !ok {
			return nil, false
		}

		current, ok = mapping.Get(key)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Insert stores value at the dot-separated path, creating intermediate
// mappings for segments that do not yet exist. A non-mapping value occupying
// an intermediate segment is replaced by a fresh mapping, discarding it.
func Insert(root *Map, path string, value any) {
	keys := SplitPath(path)
	current := root

	for _, key := range keys[:len(keys)-1] {
		if nested, ok := current.Get(key); ok {
			if mapping, ok := nested.(*Map); ok {
				current = mapping
				continue
			}
		}

		next := NewMap()
		current.Set(key, next)
		current = next
	}

	current.Set(keys[len(keys)-1], value)
}
