package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"linkml-openapi/internal/common"
)

// Format selects the output rendering.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// String returns the format's name as used on the command line.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return common.UnknownStr
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("unsupported output format %q (expected yaml or json)", s)
	}
}

// Serialize renders the document in the requested format. YAML uses
// two-space indentation; JSON uses two-space indentation and a trailing
// newline. Both keep mapping insertion order, so serializing the same
// document twice yields identical bytes.
func Serialize(doc *Document, format Format) ([]byte, error) {
	if format == FormatJSON {
		return serializeJSON(doc)
	}

	return serializeYAML(doc)
}

func serializeYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document as YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing YAML encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func serializeJSON(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document as JSON: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
