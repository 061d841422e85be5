package gen

import (
	"fmt"
	"slices"
	"strings"

	"linkml-openapi/internal/common"
	"linkml-openapi/internal/diagnostic"
	"linkml-openapi/internal/model"
)

// Annotation tags the generator reads.
const (
	annResource     = "openapi.resource"
	annPath         = "openapi.path"
	annOperations   = "openapi.operations"
	annPathVariable = "openapi.path_variable"
	annQueryParam   = "openapi.query_param"
)

// ResourceSpec captures everything path assembly needs to know about one
// resource class.
type ResourceSpec struct {
	// Class is the resource class definition.
	Class *model.ClassDef
	// Segment is the URL segment, with any openapi.path override applied.
	Segment string
	// Induced is the effective field list of the class.
	Induced []*model.SlotDef
	// PathVars are the slots forming the item path, in field order.
	// Empty means the resource only gets a collection path.
	PathVars []*model.SlotDef
	// Ops are the operations the class requests.
	Ops []Op
}

// HasOp reports whether the resource requests the operation.
func (r ResourceSpec) HasOp(op Op) bool {
	return slices.Contains(r.Ops, op)
}

// resources derives the ResourceSpec for every class that gets paths.
func (g *Generator) resources() ([]ResourceSpec, error) {
	names, err := g.resourceClasses()
	if err != nil {
		return nil, err
	}

	specs := make([]ResourceSpec, 0, len(names))
	for _, name := range names {
		cls := g.view.GetClass(name)

		induced, err := g.view.InducedSlots(name)
		if err != nil {
			return nil, err
		}

		specs = append(specs, ResourceSpec{
			Class:    cls,
			Segment:  resourceSegment(cls),
			Induced:  induced,
			PathVars: g.pathVariables(cls, induced),
			Ops:      g.resourceOps(cls),
		})
	}

	return specs, nil
}

// resourceClasses picks the classes that get REST paths. An explicit
// class filter wins; otherwise classes annotated openapi.resource; as a
// last resort every concrete class with at least one field.
func (g *Generator) resourceClasses() ([]string, error) {
	if !common.IsEmpty(g.cfg.Classes) {
		for _, name := range g.cfg.Classes {
			if g.view.GetClass(name) == nil {
				return nil, fmt.Errorf("unknown class %q in class filter", name)
			}
		}
		return g.cfg.Classes, nil
	}

	var annotated []string
	for _, name := range g.view.AllClassNames() {
		v, ok := g.view.GetClass(name).Annotations.Get(annResource)
		if ok && isResourceMarker(v) {
			annotated = append(annotated, name)
		}
	}
	if !common.IsEmpty(annotated) {
		return annotated, nil
	}

	var concrete []string
	for _, name := range g.view.AllClassNames() {
		cls := g.view.GetClass(name)
		if cls.Abstract || cls.Mixin {
			continue
		}

		induced, err := g.view.InducedSlots(name)
		if err != nil {
			return nil, err
		}
		if len(induced) > 0 {
			concrete = append(concrete, name)
		}
	}
	return concrete, nil
}

// isResourceMarker matches the exact truthy forms of openapi.resource:
// the YAML boolean true and the strings "true" and "True". Anything
// else, including "yes" or 1, does not mark a resource.
func isResourceMarker(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "True"
	default:
		return false
	}
}

// resourceSegment returns the URL segment for a class: the openapi.path
// annotation with leading slashes stripped, or the derived default.
func resourceSegment(cls *model.ClassDef) string {
	if v, ok := cls.Annotations.StringValue(annPath); ok {
		return strings.TrimLeft(v, "/")
	}
	return PathSegment(cls.Name)
}

// pathVariables picks the slots that form the item path. Slots annotated
// openapi.path_variable win; otherwise the identifier slot, then a slot
// literally named "id". Empty means collection-only.
func (g *Generator) pathVariables(cls *model.ClassDef, induced []*model.SlotDef) []*model.SlotDef {
	var annotated []*model.SlotDef
	for _, slot := range induced {
		v, ok := g.view.SlotAnnotation(cls, slot, annPathVariable)
		if ok && strings.EqualFold(v, "true") {
			annotated = append(annotated, slot)
		}
	}
	if len(annotated) > 0 {
		return annotated
	}

	for _, slot := range induced {
		if slot.Identifier {
			return []*model.SlotDef{slot}
		}
	}
	for _, slot := range induced {
		if slot.Name == "id" {
			return []*model.SlotDef{slot}
		}
	}
	return nil
}

// resourceOps resolves the openapi.operations annotation, accepting both
// the comma-separated string form and the YAML list form. Unknown names
// are dropped with a warning. Without the annotation every operation is
// generated.
func (g *Generator) resourceOps(cls *model.ClassDef) []Op {
	v, ok := cls.Annotations.Get(annOperations)
	if !ok {
		return AllOps()
	}

	var names []string
	switch t := v.(type) {
	case string:
		names = strings.Split(t, ",")
	case []any:
		for _, item := range t {
			names = append(names, model.ValueString(item))
		}
	default:
		names = []string{model.ValueString(t)}
	}

	var ops []Op
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}

		op, ok := ParseOp(trimmed)
		if !ok {
			g.diags.AddWarning(diagnostic.CodeUnknownOperation,
				fmt.Sprintf("operation %q is not one of list, create, read, update, delete", trimmed),
				cls.Name, "")
			continue
		}
		ops = append(ops, op)
	}
	return ops
}
