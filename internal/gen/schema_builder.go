package gen

import (
	"fmt"

	"linkml-openapi/internal/common"
	"linkml-openapi/internal/diagnostic"
	"linkml-openapi/internal/model"
	"linkml-openapi/internal/openapi"
)

// schemaBuilder turns classes, slots, and enums into component schemas.
type schemaBuilder struct {
	view  *model.View
	diags *diagnostic.Diagnostics
}

// Build returns the components mapping: a schema for every class in
// declaration order, then one for every enum.
func (b *schemaBuilder) Build() (*openapi.Map[*openapi.Schema], error) {
	schemas := openapi.NewMap[*openapi.Schema]()

	for _, name := range b.view.AllClassNames() {
		schema, err := b.classSchema(b.view.GetClass(name))
		if err != nil {
			return nil, fmt.Errorf("building schema for %s: %w", name, err)
		}
		schemas.Set(name, schema)
	}
	for _, name := range b.view.AllEnumNames() {
		schemas.Set(name, b.enumSchema(b.view.GetEnum(name)))
	}

	return schemas, nil
}

// classSchema builds the component schema for a class. A class with a
// parent composes as allOf of the parent reference and a local object
// schema holding the induced fields; a root class is a plain object
// schema.
func (b *schemaBuilder) classSchema(cls *model.ClassDef) (*openapi.Schema, error) {
	induced, err := b.view.InducedSlots(cls.Name)
	if err != nil {
		return nil, err
	}

	properties := openapi.NewMap[*openapi.Schema]()
	var required []string

	for _, slot := range induced {
		properties.Set(slot.Name, b.slotSchema(cls, slot))
		if slot.Required {
			required = append(required, slot.Name)
		}
	}

	if cls.IsA != "" {
		local := &openapi.Schema{Type: openapi.TypeObject}
		if properties.Len() > 0 {
			local.Properties = properties
		}
		local.Required = required

		return &openapi.Schema{
			AllOf:       []*openapi.Schema{openapi.NewRef(cls.IsA), local},
			Description: cls.Description,
		}, nil
	}

	schema := &openapi.Schema{Type: openapi.TypeObject, Description: cls.Description}
	if properties.Len() > 0 {
		schema.Properties = properties
	}
	schema.Required = required
	return schema, nil
}

// slotSchema builds the property schema for one induced slot. Facets
// (description, pattern, bounds) attach to inline schemas; a bare
// component reference cannot carry keys, so a slot with facets wraps the
// reference in a single-element allOf that keeps only the description.
func (b *schemaBuilder) slotSchema(cls *model.ClassDef, slot *model.SlotDef) *openapi.Schema {
	base := b.rangeSchema(cls, slot)

	if base.IsRef() {
		if slotHasFacets(slot) {
			return &openapi.Schema{
				AllOf:       []*openapi.Schema{base},
				Description: slot.Description,
			}
		}
		return base
	}

	base.Description = slot.Description
	base.Pattern = slot.Pattern
	if slot.MinimumValue != nil {
		v := *slot.MinimumValue
		base.Minimum = &v
	}
	if slot.MaximumValue != nil {
		v := *slot.MaximumValue
		base.Maximum = &v
	}
	return base
}

// rangeSchema resolves a slot range: class reference, then enum
// reference, then primitive, falling back to string for anything else.
// Multivalued slots wrap the resolved schema in an array.
func (b *schemaBuilder) rangeSchema(cls *model.ClassDef, slot *model.SlotDef) *openapi.Schema {
	rangeName := slot.Range
	if rangeName == "" {
		rangeName = "string"
	}

	if b.view.GetClass(rangeName) != nil || b.view.GetEnum(rangeName) != nil {
		ref := openapi.NewRef(rangeName)
		if slot.Multivalued {
			return &openapi.Schema{Type: openapi.TypeArray, Items: ref}
		}
		return ref
	}

	inner, known := primitiveSchema(rangeName)
	if !known {
		b.diags.AddInfo(diagnostic.CodeUnknownRange,
			fmt.Sprintf("range %q is not a class, enum, or known primitive; treating as string", rangeName),
			cls.Name, slot.Name)
	}

	if slot.Multivalued {
		return &openapi.Schema{Type: openapi.TypeArray, Items: inner}
	}
	return inner
}

// enumSchema builds the component schema for an enum.
func (b *schemaBuilder) enumSchema(enum *model.EnumDef) *openapi.Schema {
	schema := &openapi.Schema{Type: openapi.TypeString, Description: enum.Description}

	if texts := enum.PermissibleValues.Texts(); !common.IsEmpty(texts) {
		schema.Enum = texts
	}
	return schema
}

// slotHasFacets reports whether the slot carries anything beyond its
// range that a bare reference would lose.
func slotHasFacets(slot *model.SlotDef) bool {
	return slot.Description != "" ||
		slot.Pattern != "" ||
		slot.MinimumValue != nil ||
		slot.MaximumValue != nil
}
