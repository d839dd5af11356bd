// Package accessor provides typed, default-driven reads over a parsed
// configuration document.
//
// Every getter takes a dot-separated path and a default value. A value whose
// native type already matches is returned directly; string values are parsed
// into the requested type where that makes sense. A string that fails to
// parse logs a warning and falls back to the default. A missing path, or a
// value of an incompatible non-string type, falls back to the default
// silently — callers must treat the default as the only signal for either
// situation. No getter ever returns an error.
//
// Slice and map getters recover at element granularity: an element that
// cannot be coerced is dropped without a diagnostic, and the call still
// succeeds with the remaining elements.
package accessor
