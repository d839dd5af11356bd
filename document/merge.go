package document

// Merge backfills existing with entries from template, in template insertion
// order. A key absent from existing is inserted with a deep copy of the
// template value. When both sides hold a mapping for the same key the merge
// recurses. In every other case the existing value wins unconditionally,
// even if its type differs from the template's.
func Merge(existing, template *Map) {
	for key, value := range template.All() {
		current, ok := existing.Get(key)
		if !ok {
			existing.Set(key, Copy(value))
			continue
		}

		existingMap, existingOK := current.(*Map)

		templateMap, templateOK := value.(*Map)
		if existingOK && templateOK {
			Merge(existingMap, templateMap)
		}
	}
}

// Copy returns a deep copy of a document value. Mappings and sequences are
// copied recursively; scalars are returned as-is.
func Copy(value any) any {
	switch v := value.(type) {
	case *Map:
		out := NewMap()
		for key, item := range v.All() {
			out.Set(key, Copy(item))
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Copy(item)
		}

		return out
	default:
		return value
	}
}
