// Package manager provides a load/save lifecycle around a configuration
// document stored in a single file.
//
// Unlike the template package, saving delegates to the external YAML
// serializer, so comments are not preserved. Use it when the document is the
// source of truth and programmatic round-trips matter more than formatting.
package manager
