// Package document provides the nested value tree that configuration data is
// held in: an insertion-ordered mapping whose values are scalars, sequences
// ([]any) or nested mappings.
//
// Key order is preserved because it is significant when a document is
// rendered back to text. The tree is always acyclic; sharing a subtree
// between two documents is not supported (use Copy).
//
// Locations within a document are addressed by dot-separated paths such as
// "server.listen.port". There is no escaping mechanism for literal dots in
// keys, and path segments always address mapping keys, never sequence
// indices.
package document
