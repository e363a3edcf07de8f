package core

import "context"

// Document is the extracted text of a source file plus descriptive metadata.
type Document struct {
	Text      string            `json:"text"`
	SourceID  string            `json:"source_id"`
	SizeBytes int64             `json:"size_bytes"`
	PageCount int               `json:"page_count,omitempty"` // 0 for formats without a page concept
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// DocumentReader extracts plain text from files of one or more formats.
// Implementations are stateless and safe for concurrent use.
type DocumentReader interface {
	// Read extracts the document at path.
	Read(ctx context.Context, path string) (*Document, error)
	// Extensions returns the lowercased file extensions (including the dot)
	// this reader handles.
	Extensions() []string
}
