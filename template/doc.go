// Package template builds configuration file templates and writes them to
// disk, merging non-destructively with any file already present: values the
// user has set are kept, and only keys the existing file lacks are added.
//
// The writer emits its own minimal YAML dialect instead of delegating to the
// external serializer, specifically to control comment placement, which the
// serializer does not support. The dialect escapes only double quotes inside
// top-level string scalars and renders sequences as flat [a, b, c] lists
// with unquoted elements. Values containing characters significant to YAML
// (literal newlines, unescaped specials) may therefore fail to round-trip
// through the parser; this is a known limitation.
package template
