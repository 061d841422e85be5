package gen_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkml-openapi/internal/gen"
	"linkml-openapi/internal/model"
	"linkml-openapi/internal/openapi"
)

func decodeJSON(t *testing.T, source string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(source), &v))
	return v
}

// TestGeneratedSchemasValidateInstances runs the JSON rendering of a
// generated document through a real JSON Schema compiler and checks
// component schemas against concrete instances. OpenAPI 3.1 schemas are
// plain 2020-12 JSON Schema, so the document itself is the fixture.
func TestGeneratedSchemasValidateInstances(t *testing.T) {
	t.Parallel()

	source := `
name: validation_suite
classes:
  NamedThing:
    abstract: true
    attributes:
      id:
        identifier: true
        required: true
      name:
        required: true
  Person:
    is_a: NamedThing
    annotations:
      openapi.resource: true
    attributes:
      age:
        range: integer
        minimum_value: 0
        maximum_value: 150
      code:
        pattern: "^[A-Z]{3}$"
      status:
        range: PersonStatus
      emails:
        range: string
        multivalued: true
enums:
  PersonStatus:
    permissible_values:
      ALIVE:
      DEAD:
`

	file, err := model.Parse([]byte(source))
	require.NoError(t, err)
	view, err := model.NewView(file)
	require.NoError(t, err)

	doc, err := gen.New(view, gen.DefaultConfig()).Generate()
	require.NoError(t, err)

	data, err := openapi.Serialize(doc, openapi.FormatJSON)
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	require.NoError(t, compiler.AddResource("openapi.json", bytes.NewReader(data)))

	person, err := compiler.Compile("openapi.json#/components/schemas/Person")
	require.NoError(t, err)

	tests := []struct {
		name     string
		instance string
		wantErr  bool
	}{
		{
			name:     "complete person",
			instance: `{"id":"p1","name":"Ada","age":36,"code":"ABC","status":"ALIVE","emails":["ada@example.org"]}`,
		},
		{
			name:     "minimal person",
			instance: `{"id":"p1","name":"Ada"}`,
		},
		{
			name:     "missing inherited required field",
			instance: `{"name":"Ada"}`,
			wantErr:  true,
		},
		{
			name:     "age above maximum",
			instance: `{"id":"p1","name":"Ada","age":200}`,
			wantErr:  true,
		},
		{
			name:     "age below minimum",
			instance: `{"id":"p1","name":"Ada","age":-3}`,
			wantErr:  true,
		},
		{
			name:     "age wrong type",
			instance: `{"id":"p1","name":"Ada","age":"forty"}`,
			wantErr:  true,
		},
		{
			name:     "code breaks pattern",
			instance: `{"id":"p1","name":"Ada","code":"abc"}`,
			wantErr:  true,
		},
		{
			name:     "status outside enum",
			instance: `{"id":"p1","name":"Ada","status":"RESTING"}`,
			wantErr:  true,
		},
		{
			name:     "emails not an array",
			instance: `{"id":"p1","name":"Ada","emails":"ada@example.org"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := person.Validate(decodeJSON(t, tt.instance))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestGeneratedEnumSchemaStandsAlone compiles an enum component on its
// own and checks value membership.
func TestGeneratedEnumSchemaStandsAlone(t *testing.T) {
	t.Parallel()

	source := `
name: validation_suite
classes:
  Sample:
    attributes:
      status:
        range: Status
enums:
  Status:
    permissible_values:
      OPEN:
      CLOSED:
`

	file, err := model.Parse([]byte(source))
	require.NoError(t, err)
	view, err := model.NewView(file)
	require.NoError(t, err)

	doc, err := gen.New(view, gen.DefaultConfig()).Generate()
	require.NoError(t, err)

	data, err := openapi.Serialize(doc, openapi.FormatJSON)
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	require.NoError(t, compiler.AddResource("openapi.json", bytes.NewReader(data)))

	status, err := compiler.Compile("openapi.json#/components/schemas/Status")
	require.NoError(t, err)

	assert.NoError(t, status.Validate("OPEN"))
	assert.NoError(t, status.Validate("CLOSED"))
	assert.Error(t, status.Validate("PENDING"))
	assert.Error(t, status.Validate(7))
}
