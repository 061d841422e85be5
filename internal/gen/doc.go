// Package gen turns a schema view into an OpenAPI 3.1 document.
//
// Generation walks the schema in declaration order: every class and enum
// becomes a component schema, then each resource class contributes a
// collection path and, when a path variable can be determined, an item
// path carrying the CRUD operations the class requests.
//
// Generation patterns:
//   - Class to object schema, with allOf composition for is_a parents
//   - Slot to inline schema, component reference, or array schema
//   - Enum to string schema with fixed values
//   - openapi.* annotations driving resource selection, path segments,
//     path variables, operations, and query filters
package gen
