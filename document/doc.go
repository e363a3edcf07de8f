// Package document provides format-specific text extractors implementing
// core.DocumentReader, plus a Registry that dispatches to the right reader by
// file extension. Readers are stateless; the registry guards its reader map
// for concurrent registration and lookup.
//
// DefaultRegistry wires the built-in formats (plain text, markdown, JSON,
// YAML, HTML, CSV). Register additional readers for other formats without
// changing any calling code.
package document
