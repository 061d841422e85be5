package gen

import (
	"strings"

	"linkml-openapi/internal/model"
	"linkml-openapi/internal/openapi"
)

// pathBuilder assembles the path items for resource classes.
type pathBuilder struct {
	view    *model.View
	schemas *schemaBuilder
}

// Build returns the paths mapping for the derived resource specs.
func (b *pathBuilder) Build(specs []ResourceSpec) *openapi.Map[*openapi.PathItem] {
	paths := openapi.NewMap[*openapi.PathItem]()
	for _, spec := range specs {
		b.buildResource(paths, spec)
	}
	return paths
}

// buildResource adds the collection path and, when the resource has path
// variables, the item path. The collection entry exists even when the
// class requests neither list nor create, mirroring an API where the
// route is reserved but bare.
func (b *pathBuilder) buildResource(paths *openapi.Map[*openapi.PathItem], spec ResourceSpec) {
	cls := spec.Class

	collection := &openapi.PathItem{}
	if spec.HasOp(OpList) {
		collection.Get = b.listOperation(cls, spec.Induced)
	}
	if spec.HasOp(OpCreate) {
		collection.Post = b.createOperation(cls.Name)
	}
	paths.Set("/"+spec.Segment, collection)

	if len(spec.PathVars) == 0 {
		return
	}

	item := &openapi.PathItem{}
	segments := make([]string, 0, len(spec.PathVars))
	for _, v := range spec.PathVars {
		segments = append(segments, "{"+v.Name+"}")
		item.Parameters = append(item.Parameters, &openapi.Parameter{
			Name:     v.Name,
			In:       openapi.InPath,
			Required: openapi.Bool(true),
			Schema:   b.schemas.slotSchema(cls, v),
		})
	}

	if spec.HasOp(OpRead) {
		item.Get = b.readOperation(cls.Name)
	}
	if spec.HasOp(OpUpdate) {
		item.Put = b.updateOperation(cls.Name)
	}
	if spec.HasOp(OpDelete) {
		item.Delete = b.deleteOperation(cls.Name)
	}

	paths.Set("/"+spec.Segment+"/"+strings.Join(segments, "/"), item)
}

// listOperation names itself after the derived segment, not the
// openapi.path override, so a custom URL keeps a stable operation id.
func (b *pathBuilder) listOperation(cls *model.ClassDef, induced []*model.SlotDef) *openapi.Operation {
	segment := PathSegment(cls.Name)

	op := &openapi.Operation{
		Summary:     "List " + strings.ReplaceAll(segment, "_", " "),
		OperationID: "list_" + segment,
		Tags:        []string{cls.Name},
		Parameters:  b.queryParameters(cls, induced),
		Responses:   openapi.NewMap[*openapi.Response](),
	}
	op.Responses.Set("200", &openapi.Response{
		Description: "List of " + cls.Name + " objects",
		Content: openapi.JSONContent(&openapi.Schema{
			Type:  openapi.TypeArray,
			Items: openapi.NewRef(cls.Name),
		}),
	})
	return op
}

func (b *pathBuilder) createOperation(name string) *openapi.Operation {
	op := &openapi.Operation{
		Summary:     "Create a " + name,
		OperationID: "create_" + SnakeCase(name),
		Tags:        []string{name},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content:  openapi.JSONContent(openapi.NewRef(name)),
		},
		Responses: openapi.NewMap[*openapi.Response](),
	}
	op.Responses.Set("201", &openapi.Response{
		Description: name + " created",
		Content:     openapi.JSONContent(openapi.NewRef(name)),
	})
	op.Responses.Set("422", &openapi.Response{Description: "Validation error"})
	return op
}

func (b *pathBuilder) readOperation(name string) *openapi.Operation {
	op := &openapi.Operation{
		Summary:     "Get a " + name,
		OperationID: "get_" + SnakeCase(name),
		Tags:        []string{name},
		Responses:   openapi.NewMap[*openapi.Response](),
	}
	op.Responses.Set("200", &openapi.Response{
		Description: name + " details",
		Content:     openapi.JSONContent(openapi.NewRef(name)),
	})
	op.Responses.Set("404", &openapi.Response{Description: "Not found"})
	return op
}

func (b *pathBuilder) updateOperation(name string) *openapi.Operation {
	op := &openapi.Operation{
		Summary:     "Update a " + name,
		OperationID: "update_" + SnakeCase(name),
		Tags:        []string{name},
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content:  openapi.JSONContent(openapi.NewRef(name)),
		},
		Responses: openapi.NewMap[*openapi.Response](),
	}
	op.Responses.Set("200", &openapi.Response{
		Description: name + " updated",
		Content:     openapi.JSONContent(openapi.NewRef(name)),
	})
	op.Responses.Set("404", &openapi.Response{Description: "Not found"})
	op.Responses.Set("422", &openapi.Response{Description: "Validation error"})
	return op
}

func (b *pathBuilder) deleteOperation(name string) *openapi.Operation {
	op := &openapi.Operation{
		Summary:     "Delete a " + name,
		OperationID: "delete_" + SnakeCase(name),
		Tags:        []string{name},
		Responses:   openapi.NewMap[*openapi.Response](),
	}
	op.Responses.Set("204", &openapi.Response{Description: name + " deleted"})
	op.Responses.Set("404", &openapi.Response{Description: "Not found"})
	return op
}

// queryParameters builds the list operation's parameters: pagination
// first, then either the slots annotated openapi.query_param or, when no
// slot opts in, every scalar filterable field.
func (b *pathBuilder) queryParameters(cls *model.ClassDef, induced []*model.SlotDef) []*openapi.Parameter {
	params := []*openapi.Parameter{
		{
			Name:   "limit",
			In:     openapi.InQuery,
			Schema: &openapi.Schema{Type: openapi.TypeInteger, Default: 100},
		},
		{
			Name:   "offset",
			In:     openapi.InQuery,
			Schema: &openapi.Schema{Type: openapi.TypeInteger, Default: 0},
		},
	}

	var annotated []*openapi.Parameter
	for _, slot := range induced {
		v, ok := b.view.SlotAnnotation(cls, slot, annQueryParam)
		if ok && strings.EqualFold(v, "true") {
			annotated = append(annotated, b.filterParameter(cls, slot))
		}
	}
	if len(annotated) > 0 {
		return append(params, annotated...)
	}

	for _, slot := range induced {
		if slot.Multivalued || slot.Identifier {
			continue
		}
		if !b.filterableRange(slot.Range) {
			continue
		}
		params = append(params, b.filterParameter(cls, slot))
	}
	return params
}

func (b *pathBuilder) filterParameter(cls *model.ClassDef, slot *model.SlotDef) *openapi.Parameter {
	return &openapi.Parameter{
		Name:     slot.Name,
		In:       openapi.InQuery,
		Required: openapi.Bool(false),
		Schema:   b.schemas.slotSchema(cls, slot),
	}
}

// filterableRange limits auto-inferred filters to equality-comparable
// scalars: strings, integers, booleans, and enums.
func (b *pathBuilder) filterableRange(rangeName string) bool {
	switch rangeName {
	case "", "string", "integer", "boolean":
		return true
	}
	return b.view.GetEnum(rangeName) != nil
}
