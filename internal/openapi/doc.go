// Package openapi provides the OpenAPI 3.1 document model and its
// serialization.
//
// Mapping order is load-bearing for human review: paths, component
// schemas, object properties, and response codes render in the order the
// generator inserted them, across both YAML and JSON output. Map is the
// insertion-ordered mapping used everywhere plain Go maps would shuffle
// keys.
//
// Key types:
//   - Document: the top-level envelope (openapi/info/servers/paths/components)
//   - Schema: a JSON-Schema-shaped type definition, $ref included
//   - Map: ordered string-keyed mapping with YAML and JSON marshalers
//   - Format: output rendering selector (yaml or json)
package openapi
