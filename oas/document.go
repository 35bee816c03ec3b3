package oas

import "slices"

// Document is the root of an OpenAPI 3 document.
type Document struct {
	OpenAPI    string                 `yaml:"openapi" json:"openapi"`
	Info       *Info                  `yaml:"info" json:"info"`
	Servers    []*Server              `yaml:"servers,omitempty" json:"servers,omitempty"`
	Tags       []*Tag                 `yaml:"tags,omitempty" json:"tags,omitempty"`
	Paths      *OrderedMap[*PathItem] `yaml:"paths" json:"paths"`
	Components *Components            `yaml:"components,omitempty" json:"components,omitempty"`
	Security   []SecurityRequirement  `yaml:"security,omitempty" json:"security,omitempty"`
}

// NewDocument creates an empty document with the given info.
func NewDocument(openapi string, info *Info) *Document {
	if openapi == "" {
		openapi = DefaultOpenAPIVersion
	}
	return &Document{
		OpenAPI: openapi,
		Info:    info,
		Paths:   NewOrderedMap[*PathItem](),
	}
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Server represents a server
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag adds metadata to a single tag
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Components holds reusable objects referenced from the rest of the document.
type Components struct {
	Schemas         *OrderedMap[*Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	SecuritySchemes *OrderedMap[*SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
}

// IsEmpty reports whether no component is defined.
func (c *Components) IsEmpty() bool {
	return c == nil || (c.Schemas.Len() == 0 && c.SecuritySchemes.Len() == 0)
}

// SecurityScheme defines a security scheme
type SecurityScheme struct {
	Type         string `yaml:"type" json:"type"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
	Name         string `yaml:"name,omitempty" json:"name,omitempty"` // apiKey only
	In           string `yaml:"in,omitempty" json:"in,omitempty"`     // apiKey only: "query", "header", "cookie"
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
}

// SecurityRequirement lists the required security schemes and their scopes
type SecurityRequirement map[string][]string

// Clone returns a deep copy of the requirement.
func (r SecurityRequirement) Clone() SecurityRequirement {
	if r == nil {
		return nil
	}
	out := make(SecurityRequirement, len(r))
	for name, scopes := range r {
		out[name] = slices.Clone(scopes)
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{OpenAPI: d.OpenAPI}
	if d.Info != nil {
		info := *d.Info
		out.Info = &info
	}
	for _, s := range d.Servers {
		srv := *s
		out.Servers = append(out.Servers, &srv)
	}
	for _, t := range d.Tags {
		tag := *t
		out.Tags = append(out.Tags, &tag)
	}
	out.Paths = d.Paths.Clone((*PathItem).Clone)
	if d.Components != nil {
		out.Components = &Components{
			Schemas: d.Components.Schemas.Clone((*Schema).Clone),
			SecuritySchemes: d.Components.SecuritySchemes.Clone(func(s *SecurityScheme) *SecurityScheme {
				if s == nil {
					return nil
				}
				cp := *s
				return &cp
			}),
		}
	}
	for _, req := range d.Security {
		out.Security = append(out.Security, req.Clone())
	}
	return out
}

// RewriteSchemas replaces every schema reachable from the document (component
// schemas, parameter schemas, request and response bodies) with fn(schema).
// fn is never called with nil.
func (d *Document) RewriteSchemas(fn func(*Schema) *Schema) {
	if d == nil {
		return
	}
	if d.Components != nil && d.Components.Schemas != nil {
		for name, s := range d.Components.Schemas.All() {
			if s != nil {
				d.Components.Schemas.Set(name, fn(s))
			}
		}
	}
	for _, item := range d.Paths.All() {
		for _, op := range item.Operations {
			for _, p := range op.Parameters {
				if p != nil && p.Schema != nil {
					p.Schema = fn(p.Schema)
				}
			}
			if op.RequestBody != nil {
				rewriteContent(op.RequestBody.Content, fn)
			}
			for _, resp := range op.Responses.All() {
				if resp != nil {
					rewriteContent(resp.Content, fn)
				}
			}
		}
	}
}

func rewriteContent(content map[string]*MediaType, fn func(*Schema) *Schema) {
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			mt.Schema = fn(mt.Schema)
		}
	}
}

// WalkOperations calls fn for every operation in path order, then method
// order. Walking stops when fn returns false.
func (d *Document) WalkOperations(fn func(path, method string, op *Operation) bool) {
	if d == nil {
		return
	}
	for path, item := range d.Paths.All() {
		for method, op := range item.Operations {
			if !fn(path, method, op) {
				return
			}
		}
	}
}
