// Package model provides the LinkML schema types, the YAML loader, and the
// read-only model view the generator queries.
//
// Declaration order is semantic: induced field order drives property order,
// required-list order, and parameter order in the generated document, so
// every mapping in the schema file (classes, enums, attributes, slot_usage,
// permissible_values, annotations) decodes into ordered slices rather than
// Go maps.
//
// # Schema subset
//
// The loader consumes the slice of LinkML this generator reads; unknown
// keys are ignored:
//
//	name: person_schema
//	description: A model of people and the places they live.
//	default_range: string
//	slots:
//	  name:
//	    description: Display name.
//	classes:
//	  NamedThing:
//	    abstract: true
//	    slots: name
//	    attributes:
//	      id:
//	        identifier: true
//	        required: true
//	  Person:
//	    is_a: NamedThing
//	    annotations:
//	      openapi.resource: true
//	    attributes:
//	      age:
//	        range: integer
//	        minimum_value: 0
//	        maximum_value: 200
//	    slot_usage:
//	      name:
//	        annotations:
//	          openapi.query_param: "true"
//	enums:
//	  PersonStatus:
//	    permissible_values:
//	      ALIVE:
//	      DEAD:
//	      UNKNOWN:
//
// # Flexible forms
//
// Annotation values keep their YAML type (an unquoted true is a bool, a
// quoted "true" is a string) and accept both the compact `tag: value` form
// and the expanded `tag: {value: ...}` form. A class's `slots` entry and a
// `permissible_values` block accept both single-value and list shapes.
//
// # Model view
//
// View indexes a parsed schema and answers the generator's queries:
// class/enum listings in declaration order, definition lookups by name,
// InducedSlots (the inheritance-flattened effective field list with
// slot_usage applied), and SlotAnnotation (slot_usage annotations before
// the slot's own).
package model
