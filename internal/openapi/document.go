package openapi

// Version is the OpenAPI version stamped on every generated document.
const Version = "3.1.0"

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
)

// MediaTypeJSON is the content type used for all request and response bodies.
const MediaTypeJSON = "application/json"

// Document is the top-level OpenAPI envelope. Paths and Components are
// always allocated so an empty document still renders `paths: {}`.
type Document struct {
	OpenAPI    string          `yaml:"openapi" json:"openapi"`
	Info       Info            `yaml:"info" json:"info"`
	Servers    []Server        `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths      *Map[*PathItem] `yaml:"paths" json:"paths"`
	Components *Components     `yaml:"components,omitempty" json:"components,omitempty"`
}

// Info is the document metadata block.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Server describes one server base URL.
type Server struct {
	URL string `yaml:"url" json:"url"`
}

// Components holds the shared schema registry.
type Components struct {
	Schemas *Map[*Schema] `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// PathItem groups the operations and shared parameters of one path template.
type PathItem struct {
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Get        *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Post       *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Put        *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Delete     *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
}

// Operation describes a single HTTP operation.
type Operation struct {
	Summary     string          `yaml:"summary,omitempty" json:"summary,omitempty"`
	OperationID string          `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Tags        []string        `yaml:"tags,omitempty" json:"tags,omitempty"`
	Parameters  []*Parameter    `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody    `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *Map[*Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// Parameter describes a path or query parameter. Required is a pointer so
// the key can be omitted entirely (pagination parameters carry no required
// marker, path parameters carry an explicit true, query filters an
// explicit false).
type Parameter struct {
	Name     string  `yaml:"name" json:"name"`
	In       string  `yaml:"in" json:"in"`
	Required *bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Schema   *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// RequestBody describes an operation request payload.
type RequestBody struct {
	Required bool                  `yaml:"required" json:"required"`
	Content  map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Response describes one status code outcome.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// JSONContent wraps a schema as an application/json content mapping.
func JSONContent(schema *Schema) map[string]*MediaType {
	return map[string]*MediaType{MediaTypeJSON: {Schema: schema}}
}

// Bool returns a pointer to v, for the tri-state Parameter.Required field.
func Bool(v bool) *bool {
	return &v
}
