// Package mall reads and writes YAML configuration files. It combines a
// typed accessor over parsed documents with a template writer that merges
// generated defaults into existing files without disturbing user edits.
//
// The name is Swedish for "template".
package mall

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/mall/accessor"
	"github.com/0xalexb/mall/document"
	"github.com/0xalexb/mall/logging"
)

// Load reads and parses the YAML file at path and wraps it in a typed
// accessor. The file root must be a mapping.
func Load(path string, opts ...Option) (*accessor.Accessor, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and caller-supplied by design
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	doc, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %q: %w", cleanPath, err)
	}

	return accessor.New(doc, accessorOptions(&options)...), nil
}

func accessorOptions(options *Options) []accessor.Option {
	logger := options.Logger

	if logger == nil && options.LogLevel != "" {
		logger = logging.NewLogger(logging.Config{Level: options.LogLevel}, os.Stderr)
	}

	if logger == nil {
		return nil
	}

	return []accessor.Option{accessor.WithLogger(logger)}
}
