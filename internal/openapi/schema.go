package openapi

// JSON Schema type names used by the generator.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// ComponentRef is the prefix for same-document schema references.
const ComponentRef = "#/components/schemas/"

// Schema is a JSON-Schema-shaped type definition. A bare reference sets
// only Ref; field order here is the output key order.
type Schema struct {
	Ref         string        `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	AllOf       []*Schema     `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	Type        string        `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string        `yaml:"format,omitempty" json:"format,omitempty"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  *Map[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required    []string      `yaml:"required,omitempty" json:"required,omitempty"`
	Items       *Schema       `yaml:"items,omitempty" json:"items,omitempty"`
	Enum        []string      `yaml:"enum,omitempty" json:"enum,omitempty"`
	Pattern     string        `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Minimum     *float64      `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum     *float64      `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	Default     any           `yaml:"default,omitempty" json:"default,omitempty"`
}

// NewRef returns a bare reference to a named component schema.
func NewRef(name string) *Schema {
	return &Schema{Ref: ComponentRef + name}
}

// IsRef reports whether the schema is a bare same-document reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}
