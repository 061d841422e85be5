package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Annotation is one tag-value pair attached to a class or slot. Values
// keep their YAML type: an unquoted `true` is a bool, a quoted `"true"`
// is a string, a bare number is an int or float.
type Annotation struct {
	Tag   string
	Value any
}

// Annotations is the ordered annotation list of a class or slot.
type Annotations []Annotation

// UnmarshalYAML accepts both annotation forms LinkML allows:
//
//	annotations:
//	  openapi.resource: true
//	  openapi.path:
//	    value: people
//
// The expanded form contributes its `value` entry; everything else in
// the expanded mapping is ignored.
func (a *Annotations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for annotations, got %v", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		tag := node.Content[i].Value
		value, err := annotationValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("annotation %s: %w", tag, err)
		}
		*a = append(*a, Annotation{Tag: tag, Value: value})
	}
	return nil
}

func annotationValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "value" {
				node = node.Content[i+1]
				break
			}
		}
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the raw value of the named annotation. The second result
// reports whether the annotation is present at all, which matters for
// presence-only switches carrying falsy values.
func (a Annotations) Get(tag string) (any, bool) {
	for _, ann := range a {
		if ann.Tag == tag {
			return ann.Value, true
		}
	}
	return nil, false
}

// StringValue returns the named annotation's value rendered as a string.
func (a Annotations) StringValue(tag string) (string, bool) {
	v, ok := a.Get(tag)
	if !ok {
		return "", false
	}
	return ValueString(v), true
}

// ValueString renders an annotation value the way the generator compares
// it: strings pass through, bools become lowercase "true"/"false", and
// everything else uses its default formatting.
func ValueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}
