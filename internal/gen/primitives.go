package gen

import "linkml-openapi/internal/openapi"

// primitiveSchema maps a LinkML primitive range onto a JSON schema. The
// second result is false when the range is outside the built-in table,
// in which case the caller gets the string fallback. A fresh schema is
// returned on every call since callers attach descriptions and facets.
func primitiveSchema(rangeName string) (*openapi.Schema, bool) {
	switch rangeName {
	case "string":
		return &openapi.Schema{Type: openapi.TypeString}, true
	case "integer":
		return &openapi.Schema{Type: openapi.TypeInteger}, true
	case "float":
		return &openapi.Schema{Type: openapi.TypeNumber, Format: "float"}, true
	case "double":
		return &openapi.Schema{Type: openapi.TypeNumber, Format: "double"}, true
	case "boolean":
		return &openapi.Schema{Type: openapi.TypeBoolean}, true
	case "date":
		return &openapi.Schema{Type: openapi.TypeString, Format: "date"}, true
	case "datetime":
		return &openapi.Schema{Type: openapi.TypeString, Format: "date-time"}, true
	case "uri", "uriorcurie", "nodeidentifier":
		return &openapi.Schema{Type: openapi.TypeString, Format: "uri"}, true
	case "decimal":
		return &openapi.Schema{Type: openapi.TypeNumber}, true
	case "ncname":
		return &openapi.Schema{Type: openapi.TypeString}, true
	default:
		return &openapi.Schema{Type: openapi.TypeString}, false
	}
}
