package model

import (
	"fmt"
	"slices"
	"strings"
)

// View indexes a parsed schema for the lookups the generator performs.
// It never mutates the underlying schema; induced slots are fresh copies.
type View struct {
	file    *SchemaFile
	classes map[string]*ClassDef
	enums   map[string]*EnumDef
	slots   map[string]*SlotDef
}

// NewView builds a view over file, rejecting duplicate definitions.
func NewView(file *SchemaFile) (*View, error) {
	v := &View{
		file:    file,
		classes: make(map[string]*ClassDef, len(file.Classes)),
		enums:   make(map[string]*EnumDef, len(file.Enums)),
		slots:   make(map[string]*SlotDef, len(file.Slots)),
	}

	for _, cls := range file.Classes {
		if _, ok := v.classes[cls.Name]; ok {
			return nil, fmt.Errorf("duplicate class %q", cls.Name)
		}
		v.classes[cls.Name] = cls
	}
	for _, enum := range file.Enums {
		if _, ok := v.enums[enum.Name]; ok {
			return nil, fmt.Errorf("duplicate enum %q", enum.Name)
		}
		v.enums[enum.Name] = enum
	}
	for _, slot := range file.Slots {
		if _, ok := v.slots[slot.Name]; ok {
			return nil, fmt.Errorf("duplicate slot %q", slot.Name)
		}
		v.slots[slot.Name] = slot
	}
	return v, nil
}

// Name returns the schema name, or "" when the schema declares none.
func (v *View) Name() string {
	return v.file.Name
}

// Description returns the schema description, or "".
func (v *View) Description() string {
	return v.file.Description
}

// AllClassNames lists the class names in declaration order.
func (v *View) AllClassNames() []string {
	names := make([]string, 0, len(v.file.Classes))
	for _, cls := range v.file.Classes {
		names = append(names, cls.Name)
	}
	return names
}

// AllEnumNames lists the enum names in declaration order.
func (v *View) AllEnumNames() []string {
	names := make([]string, 0, len(v.file.Enums))
	for _, enum := range v.file.Enums {
		names = append(names, enum.Name)
	}
	return names
}

// GetClass returns the named class, or nil when absent.
func (v *View) GetClass(name string) *ClassDef {
	return v.classes[name]
}

// GetEnum returns the named enum, or nil when absent.
func (v *View) GetEnum(name string) *EnumDef {
	return v.enums[name]
}

// GetSlot returns the named schema-level slot, or nil when absent.
func (v *View) GetSlot(name string) *SlotDef {
	return v.slots[name]
}

// InducedSlots returns the effective field list of a class: ancestor
// slots first (most distant ancestor leading), then the class's own
// referenced slots and attributes, with same-name declarations replacing
// the inherited entry in place. slot_usage refinements are merged in and
// empty ranges resolve to the schema default. The returned definitions
// are copies owned by the caller.
func (v *View) InducedSlots(className string) ([]*SlotDef, error) {
	induced, err := v.inducedSlots(className, nil)
	if err != nil {
		return nil, err
	}

	for _, slot := range induced {
		if slot.Range == "" {
			slot.Range = v.file.DefaultRange
		}
	}
	return induced, nil
}

func (v *View) inducedSlots(className string, seen []string) ([]*SlotDef, error) {
	cls := v.classes[className]
	if cls == nil {
		return nil, fmt.Errorf("unknown class %q", className)
	}
	if slices.Contains(seen, className) {
		return nil, fmt.Errorf("inheritance cycle: %s", strings.Join(append(seen, className), " -> "))
	}

	var induced []*SlotDef
	index := make(map[string]int)
	add := func(slot *SlotDef) {
		if i, ok := index[slot.Name]; ok {
			induced[i] = slot
			return
		}
		index[slot.Name] = len(induced)
		induced = append(induced, slot)
	}

	if cls.IsA != "" {
		parent, err := v.inducedSlots(cls.IsA, append(seen, className))
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", className, err)
		}
		for _, slot := range parent {
			add(slot)
		}
	}

	for _, name := range cls.Slots {
		base := v.slots[name]
		if base == nil {
			return nil, fmt.Errorf("class %q references unknown slot %q", className, name)
		}
		add(base.Clone())
	}
	for _, attr := range cls.Attributes {
		add(attr.Clone())
	}

	// Refinements apply to inherited entries as well as local ones;
	// usage blocks naming unknown slots are ignored.
	for _, usage := range cls.SlotUsage {
		if i, ok := index[usage.Name]; ok {
			applyUsage(induced[i], usage)
		}
	}
	return induced, nil
}

// applyUsage merges a slot_usage refinement into an induced slot copy.
// Only fields the refinement actually sets override; refinement
// annotations are prepended so they win later lookups.
func applyUsage(dst, usage *SlotDef) {
	if usage.Description != "" {
		dst.Description = usage.Description
	}
	if usage.Range != "" {
		dst.Range = usage.Range
	}
	if usage.Required {
		dst.Required = true
	}
	if usage.Multivalued {
		dst.Multivalued = true
	}
	if usage.Identifier {
		dst.Identifier = true
	}
	if usage.Pattern != "" {
		dst.Pattern = usage.Pattern
	}
	if usage.MinimumValue != nil {
		v := *usage.MinimumValue
		dst.MinimumValue = &v
	}
	if usage.MaximumValue != nil {
		v := *usage.MaximumValue
		dst.MaximumValue = &v
	}
	if len(usage.Annotations) > 0 {
		dst.Annotations = append(slices.Clone(usage.Annotations), dst.Annotations...)
	}
}

// SlotAnnotation resolves a slot-scoped annotation for a class, with the
// class's slot_usage taking precedence over the slot's own annotations.
func (v *View) SlotAnnotation(cls *ClassDef, slot *SlotDef, tag string) (string, bool) {
	if cls != nil {
		if usage := cls.SlotUsage.Get(slot.Name); usage != nil {
			if s, ok := usage.Annotations.StringValue(tag); ok {
				return s, true
			}
		}
	}
	return slot.Annotations.StringValue(tag)
}
