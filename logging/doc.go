// Package logging provides structured logging using Go's standard library
// log/slog. The JSON logger is the default sink for accessor diagnostics
// when the library is wired through the Fx module.
package logging
