package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/mall/document"
)

// Builder accumulates template entries and a header comment block for a
// single configuration file. Mutating methods return the builder for
// chaining. A Builder is not safe for concurrent mutation.
type Builder struct {
	path     string
	root     *document.Map
	comments map[string]string
	header   []string
}

// NewBuilder creates a Builder that writes to the file at path.
func NewBuilder(path string) *Builder {
	return &Builder{
		path:     filepath.Clean(path),
		root:     document.NewMap(),
		comments: map[string]string{},
	}
}

// Header appends a comment block to the top of the file. Multi-line text is
// split on newlines; calling Header multiple times accumulates lines across
// calls.
func (b *Builder) Header(text string) *Builder {
	b.header = append(b.header, strings.Split(text, "\n")...)
	return b
}

// Add inserts value at the dot-separated path, creating intermediate
// mappings as needed, and records comment for that exact path (overwriting
// any prior comment). A scalar occupying an intermediate segment is silently
// replaced by a mapping; this overwrite is expected behavior, not an error.
func (b *Builder) Add(path string, value any, comment string) *Builder {
	document.Insert(b.root, path, document.Normalize(value))
	b.comments[path] = comment

	return b
}

// Write merges the template into the existing file, if any, and writes the
// result. Existing values always win; only keys the file lacks are added
// from the template. A file whose root is not a mapping is treated as empty
// and replaced. Only I/O and parse failures on the existing file surface as
// errors.
func (b *Builder) Write() error {
	existing, err := b.loadExisting()
	if err != nil {
		return err
	}

	document.Merge(existing, b.root)

	text := Render(existing, b.header, b.comments)

	err = os.WriteFile(b.path, []byte(text), 0o600)
	if err != nil {
		return fmt.Errorf("writing config %q: %w", b.path, err)
	}

	return nil
}

func (b *Builder) loadExisting() (*document.Map, error) {
	data, err := os.ReadFile(b.path) // #nosec G304 -- path is cleaned at construction
	if errors.Is(err, fs.ErrNotExist) {
		return document.NewMap(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading existing config %q: %w", b.path, err)
	}

	existing, err := document.Decode(data)
	if errors.Is(err, document.ErrNotMapping) {
		return document.NewMap(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("parsing existing config %q: %w", b.path, err)
	}

	return existing, nil
}
