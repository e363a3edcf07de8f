package document

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/agentscaffold/core"
)

// CSVReader extracts tabular files as tab-separated lines, one per record,
// and reports the record count in the document metadata.
type CSVReader struct{}

// NewCSVReader returns a reader for CSV files.
func NewCSVReader() *CSVReader { return &CSVReader{} }

// Extensions implements core.DocumentReader.
func (r *CSVReader) Extensions() []string { return []string{".csv"} }

// Read parses the CSV document.
func (r *CSVReader) Read(ctx context.Context, path string) (*core.Document, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = strings.Join(rec, "\t")
	}
	return &core.Document{
		Text:      strings.Join(lines, "\n"),
		SourceID:  path,
		SizeBytes: int64(len(data)),
		Metadata: map[string]string{
			"format": "csv",
			"rows":   strconv.Itoa(len(records)),
		},
	}, nil
}
