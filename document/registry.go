package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/agentscaffold/core"
)

// Registry maps file extensions to document readers. Safe for concurrent
// registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	readers map[string]core.DocumentReader // lowercased extension (with dot) -> reader
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]core.DocumentReader)}
}

// DefaultRegistry returns a registry wired with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewTextReader())
	r.Register(NewJSONReader())
	r.Register(NewYAMLReader())
	r.Register(NewHTMLReader())
	r.Register(NewCSVReader())
	return r
}

// Register adds a reader for every extension it reports, overwriting any
// previous reader for the same extension.
func (r *Registry) Register(reader core.DocumentReader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range reader.Extensions() {
		r.readers[strings.ToLower(ext)] = reader
	}
}

// ReaderFor returns the reader registered for path's extension or
// ErrUnsupportedFormat.
func (r *Registry) ReaderFor(path string) (core.DocumentReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	r.mu.RLock()
	defer r.mu.RUnlock()
	reader, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return reader, nil
}

// Read dispatches to the reader for path's extension and extracts the
// document.
func (r *Registry) Read(ctx context.Context, path string) (*core.Document, error) {
	reader, err := r.ReaderFor(path)
	if err != nil {
		return nil, err
	}
	return reader.Read(ctx, path)
}
