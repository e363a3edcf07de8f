package document

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/agentscaffold/core"
	"github.com/tidwall/gjson"
)

// JSONReader extracts the scalar leaves of a JSON document as line-oriented
// "path: value" text, which reads far better downstream than raw JSON.
type JSONReader struct{}

// NewJSONReader returns a reader for JSON files.
func NewJSONReader() *JSONReader { return &JSONReader{} }

// Extensions implements core.DocumentReader.
func (r *JSONReader) Extensions() []string { return []string{".json"} }

// Read validates and flattens the JSON document.
func (r *JSONReader) Read(ctx context.Context, path string) (*core.Document, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("read document %q: invalid JSON", path)
	}
	var lines []string
	flattenJSON(gjson.ParseBytes(data), "", &lines)
	return &core.Document{
		Text:      strings.Join(lines, "\n"),
		SourceID:  path,
		SizeBytes: int64(len(data)),
		Metadata:  map[string]string{"format": "json"},
	}, nil
}

// flattenJSON walks the value depth-first, emitting one line per scalar leaf.
func flattenJSON(v gjson.Result, prefix string, lines *[]string) {
	if v.IsObject() {
		v.ForEach(func(key, value gjson.Result) bool {
			child := key.String()
			if prefix != "" {
				child = prefix + "." + child
			}
			flattenJSON(value, child, lines)
			return true
		})
		return
	}
	if v.IsArray() {
		for i, item := range v.Array() {
			child := strconv.Itoa(i)
			if prefix != "" {
				child = prefix + "." + child
			}
			flattenJSON(item, child, lines)
		}
		return
	}
	if prefix == "" {
		*lines = append(*lines, v.String())
		return
	}
	*lines = append(*lines, prefix+": "+v.String())
}
