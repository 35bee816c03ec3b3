package oas

// Canonical schema type names (used in Schema.Type)
const (
	TypeInteger = "integer"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie = "cookie"
)

// Media types chosen for request and response content
const (
	MediaTypeJSON = "application/json"
	MediaTypeText = "text/plain"
)

// DefaultOpenAPIVersion is the "openapi" field written when none is configured.
const DefaultOpenAPIVersion = "3.0.0"

// Component reference prefixes
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// SecuritySchemeRef builds "#/components/securitySchemes/{name}".
func SecuritySchemeRef(name string) string {
	return RefPrefixSecuritySchemes + name
}

// IsCanonicalType reports whether t is one of the six canonical type names.
func IsCanonicalType(t string) bool {
	switch t {
	case TypeInteger, TypeString, TypeBoolean, TypeNumber, TypeObject, TypeArray:
		return true
	}
	return false
}
