package mall

import "log/slog"

// Options holds configuration settings for loading an accessor.
type Options struct {
	Logger   *slog.Logger
	LogLevel string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogger sets the logger that accessor diagnostics are reported to.
// Takes precedence over WithLogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel builds a JSON diagnostics logger on stderr at the given
// level. Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
