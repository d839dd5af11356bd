package template

import (
	"fmt"
	"strings"

	"github.com/0xalexb/mall/document"
)

const indentStep = "  "

// Render serializes a document to text. Header lines come first, each
// prefixed "# ", followed by a blank line when any exist. The body is a
// depth-first, insertion-order traversal: for each key, an optional comment
// line looked up by the key's full dot path, then the key with either a
// formatted scalar or a nested block indented by two more spaces.
func Render(doc *document.Map, header []string, comments map[string]string) string {
	var out strings.Builder

	for _, line := range header {
		out.WriteString("# " + line + "\n")
	}

	if len(header) > 0 {
		out.WriteString("\n")
	}

	writeMap(&out, doc, "", "", comments)

	return out.String()
}

func writeMap(out *strings.Builder, mapping *document.Map, indent, prefix string, comments map[string]string) {
	for key, value := range mapping.All() {
		path := key
		if prefix != "" {
			path = prefix + document.PathSeparator + key
		}

		if comment := comments[path]; strings.TrimSpace(comment) != "" {
			out.WriteString(indent + "# " + comment + "\n")
		}

		if nested, ok := value.(*document.Map); ok {
			out.WriteString(indent + key + ":\n")
			writeMap(out, nested, indent+indentStep, path, comments)

			continue
		}

		out.WriteString(indent + key + ": " + formatScalar(value) + "\n")
	}
}

// formatScalar renders a leaf value. Strings are double-quoted with internal
// double quotes escaped; nothing else is escaped. Sequences render as a flat
// bracketed list whose elements use their natural text representation, so
// string elements inside sequences are not quoted.
func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(value)
	}
}
