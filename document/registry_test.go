package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentscaffold/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.DocumentReader = (*TextReader)(nil)
	_ core.DocumentReader = (*JSONReader)(nil)
	_ core.DocumentReader = (*YAMLReader)(nil)
	_ core.DocumentReader = (*HTMLReader)(nil)
	_ core.DocumentReader = (*CSVReader)(nil)
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistry_Dispatch(t *testing.T) {
	reg := DefaultRegistry()

	reader, err := reg.ReaderFor("notes/summary.MD")
	require.NoError(t, err)
	assert.IsType(t, &TextReader{}, reader)

	reader, err = reg.ReaderFor("data.json")
	require.NoError(t, err)
	assert.IsType(t, &JSONReader{}, reader)

	_, err = reg.ReaderFor("slides.pptx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = reg.ReaderFor("no-extension")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRegistry_RegisterOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewTextReader())
	reg.Register(NewCSVReader())

	reader, err := reg.ReaderFor("table.csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVReader{}, reader)
}

func TestRegistry_ReadTextAndMarkdown(t *testing.T) {
	reg := DefaultRegistry()
	path := writeFile(t, "readme.md", "# Title\n\nbody text\n")

	doc, err := reg.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody text\n", doc.Text)
	assert.Equal(t, path, doc.SourceID)
	assert.Equal(t, int64(len(doc.Text)), doc.SizeBytes)
	assert.Equal(t, "text", doc.Metadata["format"])
	assert.Zero(t, doc.PageCount)
}

func TestRegistry_ReadMissingFile(t *testing.T) {
	reg := DefaultRegistry()
	_, err := reg.Read(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_ReadCancelled(t *testing.T) {
	reg := DefaultRegistry()
	path := writeFile(t, "a.txt", "content")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reg.Read(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
