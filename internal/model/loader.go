package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the schema at path.
func LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}

// Parse decodes schema YAML and fills in schema-level defaults.
func Parse(data []byte) (*SchemaFile, error) {
	var file SchemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse schema yaml: %w", err)
	}

	applyDefaults(&file)
	return &file, nil
}

func applyDefaults(file *SchemaFile) {
	if file.DefaultRange == "" {
		file.DefaultRange = "string"
	}
}
