package accessor_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/mall/accessor"
	"github.com/0xalexb/mall/document"
	"github.com/0xalexb/mall/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessor(t *testing.T, data string) (*accessor.Accessor, *bytes.Buffer) {
	t.Helper()

	doc, err := document.Decode([]byte(data))
	require.NoError(t, err)

	var buf bytes.Buffer

	logger := logging.NewTextLogger(logging.Config{Level: "WARN"}, &buf)

	return accessor.New(doc, accessor.WithLogger(logger)), &buf
}

func TestAccessor_GetString(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `
test:
  string: "test"
  int: 123
`)

	assert.Equal(t, "test", cfg.GetString("test.string", "fallback"))
	assert.Empty(t, diag.String())
}

func TestAccessor_GetString_MissingPath(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `test: {}`)

	assert.Equal(t, "fallback", cfg.GetString("missing.path", "fallback"))
	// Missing paths fall back silently; only string parse failures warn.
	assert.Empty(t, diag.String())
}

func TestAccessor_GetString_TypeMismatch(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `
test:
  int: 123
`)

	// Non-string scalars are not stringified.
	assert.Equal(t, "fallback", cfg.GetString("test.int", "fallback"))
	// Type mismatches are silent as well, unlike parse failures. Intended
	// behavior, asymmetric on purpose.
	assert.Empty(t, diag.String())
}

func TestAccessor_GetInt(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
test:
  int: 123
  stringy: "456"
  float: 9.9
`)

	assert.Equal(t, 123, cfg.GetInt("test.int", 0))
	assert.Equal(t, 456, cfg.GetInt("test.stringy", 0))
	// Native floats are truncated, not parsed.
	assert.Equal(t, 9, cfg.GetInt("test.float", 0))
	assert.Equal(t, 42, cfg.GetInt("missing.path", 42))
}

func TestAccessor_GetInt_ParseFailureWarns(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `
test:
  bad: "not a number"
`)

	assert.Equal(t, 7, cfg.GetInt("test.bad", 7))
	assert.Contains(t, diag.String(), "failed to parse int value")
	assert.Contains(t, diag.String(), "test.bad")
	assert.Contains(t, diag.String(), "7")
}

func TestAccessor_GetInt64(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
test:
  long: 9876543210
  stringy: "9876543210"
`)

	assert.Equal(t, int64(9876543210), cfg.GetInt64("test.long", 0))
	assert.Equal(t, int64(9876543210), cfg.GetInt64("test.stringy", 0))
	assert.Equal(t, int64(-1), cfg.GetInt64("missing", -1))
}

func TestAccessor_GetFloat32(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
test:
  float: 3.14
  stringy: "2.5"
`)

	assert.InDelta(t, float32(3.14), cfg.GetFloat32("test.float", 0), 1e-6)
	assert.InDelta(t, float32(2.5), cfg.GetFloat32("test.stringy", 0), 1e-6)
	assert.InDelta(t, float32(1.5), cfg.GetFloat32("missing", 1.5), 1e-6)
}

func TestAccessor_GetFloat64(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `
test:
  double: 3.14159
  int: 2
  bad: "x"
`)

	assert.InDelta(t, 3.14159, cfg.GetFloat64("test.double", 0), 1e-9)
	assert.InDelta(t, 2.0, cfg.GetFloat64("test.int", 0), 1e-9)
	assert.InDelta(t, 0.5, cfg.GetFloat64("test.bad", 0.5), 1e-9)
	assert.Contains(t, diag.String(), "failed to parse float64 value")
}

func TestAccessor_GetBool(t *testing.T) {
	t.Parallel()

	cfg, diag := newAccessor(t, `
test:
  bool: true
  stringy: "true"
  bad: "maybe"
`)

	assert.True(t, cfg.GetBool("test.bool", false))
	assert.True(t, cfg.GetBool("test.stringy", false))
	assert.False(t, cfg.GetBool("test.bad", false))
	assert.True(t, cfg.GetBool("missing", true))
	assert.Contains(t, diag.String(), "failed to parse bool value")
}

func TestAccessor_GetIntSlice_DropsUnparsableElements(t *testing.T) {
	t.Parallel()

	doc := document.NewMap()
	document.Insert(doc, "list", []any{"1", "x", "3"})

	cfg := accessor.New(doc)

	// The path resolved to a sequence, so the default is not used; only the
	// unparsable element is dropped.
	assert.Equal(t, []int{1, 3}, cfg.GetIntSlice("list", []int{9}))
}

func TestAccessor_GetIntSlice_DefaultWhenNotSequence(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `list: "not a list"`)

	assert.Equal(t, []int{9}, cfg.GetIntSlice("list", []int{9}))
	assert.Equal(t, []int{9}, cfg.GetIntSlice("missing", []int{9}))
}

func TestAccessor_GetStringSlice(t *testing.T) {
	t.Parallel()

	doc := document.NewMap()
	document.Insert(doc, "list", []any{"a", 1, "b"})

	cfg := accessor.New(doc)

	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("list", nil))
}

func TestAccessor_GetInt64Slice(t *testing.T) {
	t.Parallel()

	doc := document.NewMap()
	document.Insert(doc, "list", []any{int64(9876543210), "123", true})

	cfg := accessor.New(doc)

	assert.Equal(t, []int64{9876543210, 123}, cfg.GetInt64Slice("list", nil))
}

func TestAccessor_GetFloat64Slice(t *testing.T) {
	t.Parallel()

	doc := document.NewMap()
	document.Insert(doc, "list", []any{1.5, "2.5", "x", 3})

	cfg := accessor.New(doc)

	assert.Equal(t, []float64{1.5, 2.5, 3}, cfg.GetFloat64Slice("list", nil))
}

func TestAccessor_GetStringMap(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
labels:
  env: prod
  region: eu-north-1
  replicas: 3
`)

	expected := map[string]string{"env": "prod", "region": "eu-north-1"}
	assert.Equal(t, expected, cfg.GetStringMap("labels", nil))
}

func TestAccessor_GetIntMap(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
limits:
  cpu: 4
  memory: "2048"
  disk: lots
`)

	expected := map[string]int{"cpu": 4, "memory": 2048}
	assert.Equal(t, expected, cfg.GetIntMap("limits", nil))
}

func TestAccessor_GetFloat64Map(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
weights:
  a: 0.5
  b: "1.5"
`)

	expected := map[string]float64{"a": 0.5, "b": 1.5}
	assert.Equal(t, expected, cfg.GetFloat64Map("weights", nil))
}

func TestAccessor_GetIntMap_DefaultWhenNotMapping(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `limits: 3`)

	fallback := map[string]int{"x": 1}
	assert.Equal(t, fallback, cfg.GetIntMap("limits", fallback))
}

func TestMapOf_CustomParser(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
endpoints:
  api: "https://api.example.com"
  bad: 42
`)

	parse := func(value any) (string, error) {
		s, ok := value.(string)
		if !ok {
			return "", assert.AnError
		}

		return s, nil
	}

	result := accessor.MapOf(cfg, "endpoints", parse, nil)

	assert.Equal(t, map[string]string{"api": "https://api.example.com"}, result)
}

func TestAccessor_GetSection(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `
a:
  b:
    c: "v"
`)

	section, ok := cfg.GetSection("a.b")
	require.True(t, ok)
	assert.Equal(t, "v", section.GetString("c", ""))
}

func TestAccessor_GetSection_NotAMapping(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `a: 1`)

	section, ok := cfg.GetSection("a")
	assert.False(t, ok)
	assert.Nil(t, section)

	section, ok = cfg.GetSection("missing")
	assert.False(t, ok)
	assert.Nil(t, section)
}

func TestAccessor_Get_Raw(t *testing.T) {
	t.Parallel()

	cfg, _ := newAccessor(t, `a: 1`)

	value, ok := cfg.Get("a")
	require.True(t, ok)
	assert.EqualValues(t, 1, value)

	_, ok = cfg.Get("missing")
	assert.False(t, ok)
}

func TestNew_NilRoot(t *testing.T) {
	t.Parallel()

	cfg := accessor.New(nil)

	assert.Equal(t, "fallback", cfg.GetString("anything", "fallback"))
}
