package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
id: https://example.org/person
name: person_schema
description: A model of people.
default_range: string
slots:
  name:
    description: Display name.
  email:
    pattern: "^\\S+@\\S+$"
classes:
  NamedThing:
    abstract: true
    slots: [name]
    attributes:
      id:
        identifier: true
        required: true
  Person:
    is_a: NamedThing
    description: A human being.
    annotations:
      openapi.resource: true
      openapi.path:
        value: people
    slots: email
    attributes:
      age:
        range: integer
        minimum_value: 0
        maximum_value: 200
      status:
        range: PersonStatus
    slot_usage:
      name:
        required: true
        annotations:
          openapi.query_param: "true"
enums:
  PersonStatus:
    description: Vital status.
    permissible_values:
      ALIVE:
      DEAD:
        description: No longer with us.
      UNKNOWN:
`

	file, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "person_schema", file.Name)
	assert.Equal(t, "A model of people.", file.Description)
	assert.Equal(t, "string", file.DefaultRange)

	require.Len(t, file.Slots, 2)
	assert.Equal(t, "name", file.Slots[0].Name)
	assert.Equal(t, "Display name.", file.Slots[0].Description)
	assert.Equal(t, "email", file.Slots[1].Name)
	assert.Equal(t, `^\S+@\S+$`, file.Slots[1].Pattern)

	require.Len(t, file.Classes, 2)

	base := file.Classes[0]
	assert.Equal(t, "NamedThing", base.Name)
	assert.True(t, base.Abstract)
	assert.Equal(t, StringOrArray{"name"}, base.Slots)
	require.Len(t, base.Attributes, 1)
	assert.Equal(t, "id", base.Attributes[0].Name)
	assert.True(t, base.Attributes[0].Identifier)
	assert.True(t, base.Attributes[0].Required)

	person := file.Classes[1]
	assert.Equal(t, "Person", person.Name)
	assert.Equal(t, "NamedThing", person.IsA)
	assert.Equal(t, StringOrArray{"email"}, person.Slots)

	// Compact and expanded annotation forms
	v, ok := person.Annotations.Get("openapi.resource")
	require.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = person.Annotations.Get("openapi.path")
	require.True(t, ok)
	assert.Equal(t, "people", v)

	require.Len(t, person.Attributes, 2)
	age := person.Attributes[0]
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, "integer", age.Range)
	require.NotNil(t, age.MinimumValue)
	assert.Equal(t, 0.0, *age.MinimumValue)
	require.NotNil(t, age.MaximumValue)
	assert.Equal(t, 200.0, *age.MaximumValue)
	assert.Equal(t, "PersonStatus", person.Attributes[1].Range)

	require.Len(t, person.SlotUsage, 1)
	usage := person.SlotUsage[0]
	assert.Equal(t, "name", usage.Name)
	assert.True(t, usage.Required)
	s, ok := usage.Annotations.StringValue("openapi.query_param")
	require.True(t, ok)
	assert.Equal(t, "true", s)

	require.Len(t, file.Enums, 1)
	status := file.Enums[0]
	assert.Equal(t, "PersonStatus", status.Name)
	assert.Equal(t, []string{"ALIVE", "DEAD", "UNKNOWN"}, status.PermissibleValues.Texts())
	assert.Equal(t, "No longer with us.", status.PermissibleValues[1].Description)
}

func TestParseMinimal(t *testing.T) {
	yaml := `
name: tiny
`

	file, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "tiny", file.Name)
	assert.Equal(t, "string", file.DefaultRange) // Default range
	assert.Empty(t, file.Classes)
	assert.Empty(t, file.Enums)
}

func TestParseDeclarationOrder(t *testing.T) {
	// Deliberately non-alphabetical: declaration order must survive.
	yaml := `
classes:
  Zebra:
    attributes:
      stripes:
      age:
      name:
  Apple:
enums:
  ZStatus:
    permissible_values:
      GAMMA:
      ALPHA:
      BETA:
  AStatus:
    permissible_values: [ONE, TWO]
`

	file, err := Parse([]byte(yaml))
	require.NoError(t, err)

	require.Len(t, file.Classes, 2)
	assert.Equal(t, "Zebra", file.Classes[0].Name)
	assert.Equal(t, "Apple", file.Classes[1].Name)

	var attrs []string
	for _, a := range file.Classes[0].Attributes {
		attrs = append(attrs, a.Name)
	}
	assert.Equal(t, []string{"stripes", "age", "name"}, attrs)

	require.Len(t, file.Enums, 2)
	assert.Equal(t, "ZStatus", file.Enums[0].Name)
	assert.Equal(t, []string{"GAMMA", "ALPHA", "BETA"}, file.Enums[0].PermissibleValues.Texts())
	assert.Equal(t, []string{"ONE", "TWO"}, file.Enums[1].PermissibleValues.Texts())
}

func TestParseAnnotationTyping(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected any
	}{
		{
			name: "bare true is bool",
			yaml: `
classes:
  A:
    annotations:
      openapi.resource: true
`,
			expected: true,
		},
		{
			name: "quoted true is string",
			yaml: `
classes:
  A:
    annotations:
      openapi.resource: "true"
`,
			expected: "true",
		},
		{
			name: "expanded form",
			yaml: `
classes:
  A:
    annotations:
      openapi.resource:
        value: True
`,
			expected: true,
		},
		{
			name: "list value",
			yaml: `
classes:
  A:
    annotations:
      openapi.operations: [list, read]
`,
			expected: []any{"list", "read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			require.Len(t, file.Classes, 1)
			require.Len(t, file.Classes[0].Annotations, 1)
			assert.Equal(t, tt.expected, file.Classes[0].Annotations[0].Value)
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{"people", "people"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValueString(tt.value))
		})
	}
}

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected StringOrArray
	}{
		{
			name: "single string",
			yaml: `
classes:
  A:
    slots: name
`,
			expected: StringOrArray{"name"},
		},
		{
			name: "array",
			yaml: `
classes:
  A:
    slots: [id, name]
`,
			expected: StringOrArray{"id", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, file.Classes[0].Slots)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"classes as list", "classes:\n  - A\n  - B\n"},
		{"annotations as list", "classes:\n  A:\n    annotations:\n      - openapi.resource\n"},
		{"slots entry as mapping", "classes:\n  A:\n    slots: {name: x}\n"},
		{"broken yaml", "classes: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	content := `
name: on_disk
classes:
  Thing:
    attributes:
      id:
        identifier: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "on_disk", file.Name)
	require.Len(t, file.Classes, 1)

	_, err = LoadFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
