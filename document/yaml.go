package document

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/agentscaffold/core"
	"gopkg.in/yaml.v3"
)

// YAMLReader extracts the scalar leaves of a YAML document as line-oriented
// "path: value" text, mirroring JSONReader for the YAML format family.
type YAMLReader struct{}

// NewYAMLReader returns a reader for YAML files.
func NewYAMLReader() *YAMLReader { return &YAMLReader{} }

// Extensions implements core.DocumentReader.
func (r *YAMLReader) Extensions() []string { return []string{".yaml", ".yml"} }

// Read parses and flattens the YAML document.
func (r *YAMLReader) Read(ctx context.Context, path string) (*core.Document, error) {
	data, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("read document %q: %w", path, err)
	}
	var lines []string
	flattenYAML(root, "", &lines)
	return &core.Document{
		Text:      strings.Join(lines, "\n"),
		SourceID:  path,
		SizeBytes: int64(len(data)),
		Metadata:  map[string]string{"format": "yaml"},
	}, nil
}

func flattenYAML(v any, prefix string, lines *[]string) {
	switch node := v.(type) {
	case map[string]any:
		for _, key := range sortedKeys(node) {
			child := key
			if prefix != "" {
				child = prefix + "." + key
			}
			flattenYAML(node[key], child, lines)
		}
	case []any:
		for i, item := range node {
			child := strconv.Itoa(i)
			if prefix != "" {
				child = prefix + "." + child
			}
			flattenYAML(item, child, lines)
		}
	case nil:
		// skip explicit nulls
	default:
		text := fmt.Sprintf("%v", node)
		if prefix == "" {
			*lines = append(*lines, text)
			return
		}
		*lines = append(*lines, prefix+": "+text)
	}
}

// sortedKeys keeps map output deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
