package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReader_FlattensScalars(t *testing.T) {
	path := writeFile(t, "data.json", `{"name":"ada","tags":["x","y"],"count":2}`)

	doc, err := NewJSONReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "name: ada")
	assert.Contains(t, doc.Text, "tags.0: x")
	assert.Contains(t, doc.Text, "tags.1: y")
	assert.Contains(t, doc.Text, "count: 2")
	assert.Equal(t, "json", doc.Metadata["format"])
}

func TestJSONReader_InvalidJSON(t *testing.T) {
	path := writeFile(t, "bad.json", `{"name":`)

	_, err := NewJSONReader().Read(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestYAMLReader_FlattensScalars(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: ada\nnested:\n  count: 2\ntags:\n  - x\n  - y\n")

	doc, err := NewYAMLReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "name: ada")
	assert.Contains(t, doc.Text, "nested.count: 2")
	assert.Contains(t, doc.Text, "tags.0: x")
	assert.Equal(t, "yaml", doc.Metadata["format"])
}

func TestYAMLReader_Invalid(t *testing.T) {
	path := writeFile(t, "bad.yaml", "key: [unclosed\n")

	_, err := NewYAMLReader().Read(context.Background(), path)
	require.Error(t, err)
}

func TestHTMLReader_ConvertsToMarkdown(t *testing.T) {
	path := writeFile(t, "page.html", `<html><body><h1>Title</h1><p>Hello <strong>world</strong></p></body></html>`)

	doc, err := NewHTMLReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "# Title")
	assert.Contains(t, doc.Text, "world")
	assert.NotContains(t, doc.Text, "<p>")
	assert.Equal(t, "html", doc.Metadata["format"])
}

func TestCSVReader_RowsAndMetadata(t *testing.T) {
	path := writeFile(t, "table.csv", "name,qty\nmilk,2\neggs,12\n")

	doc, err := NewCSVReader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "name\tqty\nmilk\t2\neggs\t12", doc.Text)
	assert.Equal(t, "3", doc.Metadata["rows"])
}

func TestCSVReader_Malformed(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n\"unterminated\n")

	_, err := NewCSVReader().Read(context.Background(), path)
	require.Error(t, err)
}
