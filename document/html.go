package document

import (
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/hupe1980/agentscaffold/core"
)

// HTMLReader extracts readable text from HTML files by converting the markup
// to markdown, which preserves headings, lists and links without tag noise.
type HTMLReader struct{}

// NewHTMLReader returns a reader for HTML files.
func NewHTMLReader() *HTMLReader { return &HTMLReader{} }

// Extensions implements core.DocumentReader.
func (r *HTMLReader) Extensions() []string { return []string{".html", ".htm"} }

// Read converts the HTML document to markdown text.
func (r *HTMLReader) Read(ctx context.Context, path string) (*core.Document, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	text, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	return &core.Document{
		Text:      text,
		SourceID:  path,
		SizeBytes: int64(len(data)),
		Metadata:  map[string]string{"format": "html"},
	}, nil
}
