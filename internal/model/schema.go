package model

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// SchemaFile is the root of a parsed schema in declaration order.
type SchemaFile struct {
	// ID is the schema URI. Informational only.
	ID string `yaml:"id,omitempty"`
	// Name is the schema name, used as the API title fallback.
	Name string `yaml:"name,omitempty"`
	// Description is used as the API description when no title override
	// carries one.
	Description string `yaml:"description,omitempty"`
	// DefaultRange is the range applied to slots that declare none.
	// The loader fills in "string" when the schema leaves it empty.
	DefaultRange string `yaml:"default_range,omitempty"`
	// Slots holds the schema-level slot definitions classes reference
	// by name.
	Slots SlotDefs `yaml:"slots,omitempty"`
	// Classes holds the class definitions in declaration order.
	Classes ClassDefs `yaml:"classes,omitempty"`
	// Enums holds the enum definitions in declaration order.
	Enums EnumDefs `yaml:"enums,omitempty"`
}

// ClassDef is one class declaration.
type ClassDef struct {
	// Name is the mapping key the class was declared under.
	Name string `yaml:"-"`
	// IsA names the parent class, if any.
	IsA string `yaml:"is_a,omitempty"`
	// Abstract classes never become resources by default.
	Abstract bool `yaml:"abstract,omitempty"`
	// Mixin classes never become resources by default.
	Mixin bool `yaml:"mixin,omitempty"`
	// Mixins lists mixin classes applied to this one. Parsed but not
	// flattened into the induced fields.
	Mixins StringOrArray `yaml:"mixins,omitempty"`
	// Description becomes the component schema description.
	Description string `yaml:"description,omitempty"`
	// Slots references schema-level slots by name.
	Slots StringOrArray `yaml:"slots,omitempty"`
	// Attributes holds slots declared inline on the class.
	Attributes SlotDefs `yaml:"attributes,omitempty"`
	// SlotUsage refines inherited or referenced slots per class.
	SlotUsage SlotDefs `yaml:"slot_usage,omitempty"`
	// Annotations carries the openapi.* generator switches.
	Annotations Annotations `yaml:"annotations,omitempty"`
}

// SlotDef is one slot declaration, either schema-level, an inline class
// attribute, or a slot_usage refinement.
type SlotDef struct {
	// Name is the mapping key the slot was declared under.
	Name string `yaml:"-"`
	// Description becomes the property or parameter description.
	Description string `yaml:"description,omitempty"`
	// Range names a class, an enum, or a primitive type.
	Range string `yaml:"range,omitempty"`
	// Required slots appear in the component's required list.
	Required bool `yaml:"required,omitempty"`
	// Multivalued slots map to array properties.
	Multivalued bool `yaml:"multivalued,omitempty"`
	// Identifier marks the slot backing item path variables.
	Identifier bool `yaml:"identifier,omitempty"`
	// Pattern is a regular expression facet for string values.
	Pattern string `yaml:"pattern,omitempty"`
	// MinimumValue is a lower bound facet for numeric values.
	MinimumValue *float64 `yaml:"minimum_value,omitempty"`
	// MaximumValue is an upper bound facet for numeric values.
	MaximumValue *float64 `yaml:"maximum_value,omitempty"`
	// Annotations carries the openapi.* generator switches.
	Annotations Annotations `yaml:"annotations,omitempty"`
}

// Clone returns a copy that can be refined without touching the original.
func (s *SlotDef) Clone() *SlotDef {
	out := *s
	if s.MinimumValue != nil {
		v := *s.MinimumValue
		out.MinimumValue = &v
	}
	if s.MaximumValue != nil {
		v := *s.MaximumValue
		out.MaximumValue = &v
	}
	out.Annotations = slices.Clone(s.Annotations)
	return &out
}

// EnumDef is one enum declaration.
type EnumDef struct {
	// Name is the mapping key the enum was declared under.
	Name string `yaml:"-"`
	// Description becomes the component schema description.
	Description string `yaml:"description,omitempty"`
	// PermissibleValues lists the allowed values in declaration order.
	PermissibleValues PermissibleValues `yaml:"permissible_values,omitempty"`
}

// PermissibleValue is one allowed enum value.
type PermissibleValue struct {
	// Text is the value as it appears on the wire. Defaults to the
	// mapping key when the declaration carries no explicit text.
	Text string `yaml:"text,omitempty"`
	// Description is informational only.
	Description string `yaml:"description,omitempty"`
}

// ClassDefs is an ordered list of classes keyed by name in the source.
type ClassDefs []*ClassDef

// UnmarshalYAML decodes a `classes:` mapping preserving declaration order.
func (c *ClassDefs) UnmarshalYAML(node *yaml.Node) error {
	return eachMappingEntry(node, "classes", func(name string, body *yaml.Node) error {
		def := &ClassDef{}
		if body != nil {
			if err := body.Decode(def); err != nil {
				return fmt.Errorf("class %s: %w", name, err)
			}
		}
		def.Name = name
		*c = append(*c, def)
		return nil
	})
}

// SlotDefs is an ordered list of slots keyed by name in the source. It
// backs schema-level `slots:`, class `attributes:`, and `slot_usage:`.
type SlotDefs []*SlotDef

// UnmarshalYAML decodes a slot mapping preserving declaration order.
func (s *SlotDefs) UnmarshalYAML(node *yaml.Node) error {
	return eachMappingEntry(node, "slots", func(name string, body *yaml.Node) error {
		def := &SlotDef{}
		if body != nil {
			if err := body.Decode(def); err != nil {
				return fmt.Errorf("slot %s: %w", name, err)
			}
		}
		def.Name = name
		*s = append(*s, def)
		return nil
	})
}

// Get returns the named slot, or nil when absent.
func (s SlotDefs) Get(name string) *SlotDef {
	for _, def := range s {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// EnumDefs is an ordered list of enums keyed by name in the source.
type EnumDefs []*EnumDef

// UnmarshalYAML decodes an `enums:` mapping preserving declaration order.
func (e *EnumDefs) UnmarshalYAML(node *yaml.Node) error {
	return eachMappingEntry(node, "enums", func(name string, body *yaml.Node) error {
		def := &EnumDef{}
		if body != nil {
			if err := body.Decode(def); err != nil {
				return fmt.Errorf("enum %s: %w", name, err)
			}
		}
		def.Name = name
		*e = append(*e, def)
		return nil
	})
}

// PermissibleValues is an ordered list of enum values.
type PermissibleValues []*PermissibleValue

// UnmarshalYAML accepts the canonical mapping form
//
//	permissible_values:
//	  ALIVE:
//	  DEAD: {description: No longer with us}
//
// as well as a plain list of value strings.
func (p *PermissibleValues) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var texts []string
		if err := node.Decode(&texts); err != nil {
			return err
		}
		for _, text := range texts {
			*p = append(*p, &PermissibleValue{Text: text})
		}
		return nil
	}

	return eachMappingEntry(node, "permissible_values", func(name string, body *yaml.Node) error {
		pv := &PermissibleValue{}
		if body != nil {
			if err := body.Decode(pv); err != nil {
				return fmt.Errorf("permissible value %s: %w", name, err)
			}
		}
		if pv.Text == "" {
			pv.Text = name
		}
		*p = append(*p, pv)
		return nil
	})
}

// Texts returns the wire values in declaration order.
func (p PermissibleValues) Texts() []string {
	texts := make([]string, 0, len(p))
	for _, pv := range p {
		texts = append(texts, pv.Text)
	}
	return texts
}

// StringOrArray accepts a single scalar or a list of scalars, so both
// `slots: name` and `slots: [id, name]` parse.
type StringOrArray []string

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*s = StringOrArray{single}
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*s = StringOrArray(many)
	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
	return nil
}

// eachMappingEntry walks a YAML mapping in document order, invoking fn
// with each key and its value node. Null bodies are passed as nil so
// bare `KEY:` declarations decode to zero-valued definitions.
func eachMappingEntry(node *yaml.Node, what string, fn func(name string, body *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for %s, got %v", what, node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		body := node.Content[i+1]
		if body.Tag == "!!null" {
			body = nil
		}
		if err := fn(node.Content[i].Value, body); err != nil {
			return err
		}
	}
	return nil
}
