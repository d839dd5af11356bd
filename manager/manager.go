package manager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/mall/accessor"
	"github.com/0xalexb/mall/document"
)

// Manager defines basic configuration persistence operations.
type Manager interface {
	// Load reads configuration data from the source.
	Load() error
	// Save writes the current configuration data back to the source.
	Save() error
}

// YAML is a file-backed Manager using YAML encoding.
type YAML struct {
	path string
	doc  *document.Map
}

// NewYAML creates a Manager for the YAML file at path. The document is empty
// until Load is called.
func NewYAML(path string) *YAML {
	return &YAML{
		path: filepath.Clean(path),
		doc:  document.NewMap(),
	}
}

// Load reads and parses the file, replacing the in-memory document.
func (m *YAML) Load() error {
	data, err := os.ReadFile(m.path) // #nosec G304 -- path is cleaned at construction
	if err != nil {
		return fmt.Errorf("loading config %q: %w", m.path, err)
	}

	doc, err := document.Decode(data)
	if err != nil {
		return fmt.Errorf("loading config %q: %w", m.path, err)
	}

	m.doc = doc

	return nil
}

// Save serializes the in-memory document and writes it back to the file.
func (m *YAML) Save() error {
	data, err := document.Encode(m.doc)
	if err != nil {
		return fmt.Errorf("saving config %q: %w", m.path, err)
	}

	err = os.WriteFile(m.path, data, 0o600)
	if err != nil {
		return fmt.Errorf("saving config %q: %w", m.path, err)
	}

	return nil
}

// Document returns the in-memory document. Mutations are visible to the next
// Save call.
func (m *YAML) Document() *document.Map {
	return m.doc
}

// Accessor returns a typed accessor over the in-memory document.
func (m *YAML) Accessor(opts ...accessor.Option) *accessor.Accessor {
	return accessor.New(m.doc, opts...)
}
