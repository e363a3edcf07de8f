package document

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/agentscaffold/core"
)

// TextReader extracts plain and markdown text files verbatim.
type TextReader struct{}

// NewTextReader returns a reader for plain text formats.
func NewTextReader() *TextReader { return &TextReader{} }

// Extensions implements core.DocumentReader.
func (r *TextReader) Extensions() []string {
	return []string{".txt", ".log", ".md", ".markdown"}
}

// Read returns the file contents unchanged.
func (r *TextReader) Read(ctx context.Context, path string) (*core.Document, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	return &core.Document{
		Text:      string(data),
		SourceID:  path,
		SizeBytes: int64(len(data)),
		Metadata:  map[string]string{"format": "text"},
	}, nil
}

// readSource checks ctx and loads the file. Shared by all built-in readers;
// SizeBytes always reflects the raw source, not the extracted text.
func readSource(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	return data, nil
}
