package oas

import (
	"slices"

	"github.com/erraggy/oasflat/internal/httputil"
)

// Methods lists the HTTP methods a PathItem can hold, in output order.
var Methods = []string{
	httputil.MethodGet,
	httputil.MethodPut,
	httputil.MethodPost,
	httputil.MethodDelete,
	httputil.MethodOptions,
	httputil.MethodHead,
	httputil.MethodPatch,
	httputil.MethodTrace,
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// slot returns the field holding the operation for method, or nil for an
// unsupported method. method must be lowercase.
func (p *PathItem) slot(method string) **Operation {
	switch method {
	case httputil.MethodGet:
		return &p.Get
	case httputil.MethodPut:
		return &p.Put
	case httputil.MethodPost:
		return &p.Post
	case httputil.MethodDelete:
		return &p.Delete
	case httputil.MethodOptions:
		return &p.Options
	case httputil.MethodHead:
		return &p.Head
	case httputil.MethodPatch:
		return &p.Patch
	case httputil.MethodTrace:
		return &p.Trace
	}
	return nil
}

// Operation returns the operation registered for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	if s := p.slot(method); s != nil {
		return *s
	}
	return nil
}

// SetOperation stores op under method (nil clears it).
// It reports false when method is not a supported HTTP method.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	s := p.slot(method)
	if s == nil {
		return false
	}
	*s = op
	return true
}

// Operations iterates over the defined operations in Methods order.
func (p *PathItem) Operations(yield func(method string, op *Operation) bool) {
	if p == nil {
		return
	}
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			if !yield(m, op) {
				return
			}
		}
	}
}

// IsEmpty reports whether no operation is defined.
func (p *PathItem) IsEmpty() bool {
	for range p.Operations {
		return false
	}
	return true
}

// Clone returns a deep copy of the path item.
func (p *PathItem) Clone() *PathItem {
	if p == nil {
		return nil
	}
	out := &PathItem{}
	for m, op := range p.Operations {
		out.SetOperation(m, op.Clone())
	}
	return out
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string               `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string                 `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                 `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter           `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody           `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *OrderedMap[*Response] `yaml:"responses" json:"responses"`
	Deprecated  bool                   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security    []SecurityRequirement  `yaml:"security,omitempty" json:"security,omitempty"`
}

// NewOperation creates an operation with an empty response set.
func NewOperation() *Operation {
	return &Operation{Responses: NewOrderedMap[*Response]()}
}

// HasTag reports whether the operation carries tag.
func (o *Operation) HasTag(tag string) bool {
	return o != nil && slices.Contains(o.Tags, tag)
}

// Clone returns a deep copy of the operation.
func (o *Operation) Clone() *Operation {
	if o == nil {
		return nil
	}
	out := *o
	out.Tags = slices.Clone(o.Tags)
	if o.Parameters != nil {
		out.Parameters = make([]*Parameter, len(o.Parameters))
		for i, p := range o.Parameters {
			out.Parameters[i] = p.Clone()
		}
	}
	out.RequestBody = o.RequestBody.Clone()
	out.Responses = o.Responses.Clone((*Response).Clone)
	if o.Security != nil {
		out.Security = make([]SecurityRequirement, len(o.Security))
		for i, req := range o.Security {
			out.Security[i] = req.Clone()
		}
	}
	return &out
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content" json:"content"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
}

// Clone returns a deep copy of the request body.
func (r *RequestBody) Clone() *RequestBody {
	if r == nil {
		return nil
	}
	out := *r
	out.Content = cloneContent(r.Content)
	return &out
}

// Response describes a single response from an API Operation.
// Description is always encoded; OpenAPI requires the field even when empty.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Clone returns a deep copy of the response.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	out := *r
	out.Content = cloneContent(r.Content)
	return &out
}

// MediaType provides schema for the media type
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

func cloneContent(content map[string]*MediaType) map[string]*MediaType {
	if content == nil {
		return nil
	}
	out := make(map[string]*MediaType, len(content))
	for ct, mt := range content {
		if mt == nil {
			out[ct] = nil
			continue
		}
		out[ct] = &MediaType{Schema: mt.Schema.Clone()}
	}
	return out
}
