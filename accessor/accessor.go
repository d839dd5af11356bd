package accessor

import (
	"log/slog"
	"strconv"

	"github.com/0xalexb/mall/document"
)

// Accessor wraps a configuration document root and resolves dot-separated
// paths into typed values. It holds no mutable state and is safe for
// concurrent reads.
type Accessor struct {
	root *document.Map
	log  *slog.Logger
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger that parse-failure diagnostics are reported to.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accessor) {
		if logger != nil {
			a.log = logger
		}
	}
}

// New creates an Accessor over root. A nil root behaves like an empty
// document.
func New(root *document.Map, opts ...Option) *Accessor {
	if root == nil {
		root = document.NewMap()
	}

	acc := &Accessor{root: root, log: slog.Default()}

	for _, apply := range opts {
		apply(acc)
	}

	return acc
}

// Get returns the raw value at path, or false if the path does not resolve.
func (a *Accessor) Get(path string) (any, bool) {
	return document.Lookup(a.root, path)
}

// GetSection returns an Accessor scoped to the mapping at path, enabling
// path-relative access without repeating prefixes. It returns false if the
// path does not resolve to a mapping.
func (a *Accessor) GetSection(path string) (*Accessor, bool) {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return nil, false
	}

	mapping, ok := value.(*document.Map)
	if !ok {
		return nil, false
	}

	return &Accessor{root: mapping, log: a.log}, true
}

// GetString returns the string at path. Non-string values are not
// stringified; they fall back to defaultValue.
func (a *Accessor) GetString(path, defaultValue string) string {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if s, ok := value.(string); ok {
		return s
	}

	return defaultValue
}

// GetInt returns the integer at path. Native numeric values are truncated to
// int; strings are parsed as decimal integers.
func (a *Accessor) GetInt(path string, defaultValue int) int {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if n, ok := toInt64(value); ok {
		return int(n)
	}

	if s, ok := value.(string); ok {
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			a.warnParseFailure("int", path, defaultValue)
			return defaultValue
		}

		return int(n)
	}

	return defaultValue
}

// GetInt64 returns the 64-bit integer at path.
func (a *Accessor) GetInt64(path string, defaultValue int64) int64 {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if n, ok := toInt64(value); ok {
		return n
	}

	if s, ok := value.(string); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			a.warnParseFailure("int64", path, defaultValue)
			return defaultValue
		}

		return n
	}

	return defaultValue
}

// GetFloat32 returns the 32-bit float at path.
func (a *Accessor) GetFloat32(path string, defaultValue float32) float32 {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if f, ok := toFloat64(value); ok {
		return float32(f)
	}

	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			a.warnParseFailure("float32", path, defaultValue)
			return defaultValue
		}

		return float32(f)
	}

	return defaultValue
}

// GetFloat64 returns the 64-bit float at path.
func (a *Accessor) GetFloat64(path string, defaultValue float64) float64 {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if f, ok := toFloat64(value); ok {
		return f
	}

	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			a.warnParseFailure("float64", path, defaultValue)
			return defaultValue
		}

		return f
	}

	return defaultValue
}

// GetBool returns the boolean at path. Strings are parsed with
// strconv.ParseBool.
func (a *Accessor) GetBool(path string, defaultValue bool) bool {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return defaultValue
	}

	if b, ok := value.(bool); ok {
		return b
	}

	if s, ok := value.(string); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			a.warnParseFailure("bool", path, defaultValue)
			return defaultValue
		}

		return b
	}

	return defaultValue
}

// GetStringSlice returns the sequence of strings at path. Non-string
// elements are dropped. The default is returned only when the path does not
// resolve to a sequence.
func (a *Accessor) GetStringSlice(path string, defaultValue []string) []string {
	seq, ok := a.sequence(path)
	if !ok {
		return defaultValue
	}

	out := make([]string, 0, len(seq))

	for _, item := range seq {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

// GetIntSlice returns the sequence of integers at path. String elements are
// parsed; elements that are neither numeric nor parsable strings are
// dropped.
func (a *Accessor) GetIntSlice(path string, defaultValue []int) []int {
	seq, ok := a.sequence(path)
	if !ok {
		return defaultValue
	}

	out := make([]int, 0, len(seq))

	for _, item := range seq {
		if n, ok := toInt64(item); ok {
			out = append(out, int(n))
			continue
		}

		if s, ok := item.(string); ok {
			if n, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
				out = append(out, int(n))
			}
		}
	}

	return out
}

// GetInt64Slice returns the sequence of 64-bit integers at path.
func (a *Accessor) GetInt64Slice(path string, defaultValue []int64) []int64 {
	seq, ok := a.sequence(path)
	if !ok {
		return defaultValue
	}

	out := make([]int64, 0, len(seq))

	for _, item := range seq {
		if n, ok := toInt64(item); ok {
			out = append(out, n)
			continue
		}

		if s, ok := item.(string); ok {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				out = append(out, n)
			}
		}
	}

	return out
}

// GetFloat64Slice returns the sequence of floats at path.
func (a *Accessor) GetFloat64Slice(path string, defaultValue []float64) []float64 {
	seq, ok := a.sequence(path)
	if !ok {
		return defaultValue
	}

	out := make([]float64, 0, len(seq))

	for _, item := range seq {
		if f, ok := toFloat64(item); ok {
			out = append(out, f)
			continue
		}

		if s, ok := item.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				out = append(out, f)
			}
		}
	}

	return out
}

func (a *Accessor) sequence(path string) ([]any, bool) {
	value, ok := document.Lookup(a.root, path)
	if !ok {
		return nil, false
	}

	seq, ok := value.([]any)

	return seq, ok
}

func (a *Accessor) warnParseFailure(kind, path string, defaultValue any) {
	a.log.Warn("failed to parse "+kind+" value",
		slog.String("key", path),
		slog.Any("default", defaultValue),
	)
}
