package builder

import (
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oasflat/flatschema"
	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/pathtemplate"
)

// RouteConfig sets several route properties in one call.
// Every field is optional; set fields are applied in a fixed order: Req,
// Responses (ascending status code), Query, Header, Cookie, Tag, Summary,
// Desc, Deprecated, Security, OperationID.
type RouteConfig struct {
	Tag         string
	Summary     string
	Desc        string
	Req         string
	Query       []string
	Header      []string
	Cookie      []string
	Security    string
	Deprecated  bool
	OperationID string
	// Responses maps status codes to flat-schema bodies
	Responses map[int]string
}

// Route is the fluent handle for one operation, identified by the
// normalized path template and the HTTP method.
//
// Every method returns the Route for chaining. A rejected call leaves the
// operation untouched and is reported by Err and by Builder.Document.
type Route struct {
	b      *Builder
	method string
	path   string
	op     *oas.Operation
	errs   BuilderErrors
}

// Get registers (or returns) the GET operation for path.
func (b *Builder) Get(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodGet, path, cfg...)
}

// Post registers (or returns) the POST operation for path.
func (b *Builder) Post(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodPost, path, cfg...)
}

// Put registers (or returns) the PUT operation for path.
func (b *Builder) Put(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodPut, path, cfg...)
}

// Patch registers (or returns) the PATCH operation for path.
func (b *Builder) Patch(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodPatch, path, cfg...)
}

// Delete registers (or returns) the DELETE operation for path.
func (b *Builder) Delete(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodDelete, path, cfg...)
}

// Head registers (or returns) the HEAD operation for path.
func (b *Builder) Head(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodHead, path, cfg...)
}

// Options registers (or returns) the OPTIONS operation for path.
func (b *Builder) Options(path string, cfg ...RouteConfig) *Route {
	return b.Route(httputil.MethodOptions, path, cfg...)
}

// Route registers the operation for method and path, or returns the existing
// one when the same normalized route was registered before: "/users/{id:1}"
// and "/users/{id}" name the same route. Path parameters are extracted from
// the template only when the operation is created.
//
// Configs are applied in order after registration.
func (b *Builder) Route(method, path string, cfg ...RouteConfig) *Route {
	m, ok := httputil.NormalizeMethod(method)
	key := b.pathKey(path)
	r := &Route{b: b, method: m, path: key}
	if !ok {
		// detached operation: calls on it succeed but never reach the document
		r.op = oas.NewOperation()
		r.fail(NewInvalidMethodError(method, key))
		return r
	}

	item, exists := b.paths.Get(key)
	if !exists {
		item = &oas.PathItem{}
		b.paths.Set(key, item)
	}
	r.op = item.Operation(m)
	if r.op == nil {
		r.op = oas.NewOperation()
		r.op.Parameters = pathtemplate.ExtractParameters(path)
		item.SetOperation(m, r.op)
		if b.cfg.operationIDs {
			id := uniqueOperationID(operationIDFor(m, key), func(id string) bool {
				_, used := b.operationIDs[id]
				return used
			})
			r.op.OperationID = id
			b.operationIDs[id] = operationLocation{Method: m, Path: key}
		}
		b.logger.Debug("registered route", "method", m, "path", key)
	}

	for _, c := range cfg {
		r.Apply(c)
	}
	return r
}

// Apply sets every non-zero field of cfg, in the order documented on
// RouteConfig.
func (r *Route) Apply(cfg RouteConfig) *Route {
	if cfg.Req != "" {
		r.Req(cfg.Req)
	}
	for _, code := range slices.Sorted(maps.Keys(cfg.Responses)) {
		r.Res(code, cfg.Responses[code])
	}
	if len(cfg.Query) > 0 {
		r.Query(cfg.Query...)
	}
	if len(cfg.Header) > 0 {
		r.Header(cfg.Header...)
	}
	if len(cfg.Cookie) > 0 {
		r.Cookie(cfg.Cookie...)
	}
	if cfg.Tag != "" {
		r.Tag(cfg.Tag)
	}
	if cfg.Summary != "" {
		r.Summary(cfg.Summary)
	}
	if cfg.Desc != "" {
		r.Desc(cfg.Desc)
	}
	if cfg.Deprecated {
		r.Deprecate()
	}
	if cfg.Security != "" {
		r.Security(cfg.Security)
	}
	if cfg.OperationID != "" {
		r.OperationID(cfg.OperationID)
	}
	return r
}

// Method returns the lowercase HTTP method of the route.
func (r *Route) Method() string { return r.method }

// Path returns the normalized path key of the route.
func (r *Route) Path() string { return r.path }

// Operation returns the live operation. Mutating it changes the document.
func (r *Route) Operation() *oas.Operation { return r.op }

// Err returns the errors of rejected calls on this route, or nil.
func (r *Route) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs
}

func (r *Route) fail(be *BuilderError) {
	if be.Method == "" {
		be.Method = r.method
	}
	if be.Path == "" {
		be.Path = r.path
	}
	r.errs = append(r.errs, be)
	r.b.record(be)
}

// body compiles a request or response body. Strings starting with '#' are
// component references; "#Name" is shorthand for "#/components/schemas/Name".
func body(flat string) (*oas.Schema, error) {
	if ref, ok := strings.CutPrefix(flat, "#"); ok {
		if strings.HasPrefix(ref, "/") {
			return &oas.Schema{Ref: flat}, nil
		}
		return &oas.Schema{Ref: oas.SchemaRef(ref)}, nil
	}
	return flatschema.Compile(flat)
}

// Req sets the JSON request body from a flat schema or component reference.
func (r *Route) Req(flat string) *Route {
	schema, err := body(strings.TrimSpace(flat))
	if err != nil {
		r.fail(&BuilderError{Component: ComponentRequestBody, Field: "req", Cause: err})
		return r
	}
	r.op.RequestBody = &oas.RequestBody{
		Content: map[string]*oas.MediaType{oas.MediaTypeJSON: {Schema: schema}},
	}
	return r
}

// Res sets the response for a status code. An empty flat schema yields a
// response without content. String schemas are served as text/plain,
// everything else as application/json.
func (r *Route) Res(code int, flat string) *Route {
	if !httputil.ValidateStatusCode(code) {
		r.fail(&BuilderError{Component: ComponentResponse, Field: httputil.StatusKey(code), Message: "status code out of range"})
		return r
	}
	if !httputil.IsStandardStatusCode(code) {
		r.b.logger.Warn("non-standard status code", "method", r.method, "path", r.path, "code", code)
	}

	resp := &oas.Response{}
	if flat = strings.TrimSpace(flat); flat != "" {
		schema, err := body(flat)
		if err != nil {
			r.fail(&BuilderError{Component: ComponentResponse, Field: httputil.StatusKey(code), Cause: err})
			return r
		}
		contentType := oas.MediaTypeJSON
		if schema.Type == oas.TypeString {
			contentType = oas.MediaTypeText
		}
		resp.Content = map[string]*oas.MediaType{contentType: {Schema: schema}}
	}
	r.op.Responses.Set(httputil.StatusKey(code), resp)
	return r
}

// Query adds query parameters. Each spec is "name[:[?|+]type[:default]]";
// comma-joined lists are split.
func (r *Route) Query(specs ...string) *Route {
	return r.params(oas.ParamInQuery, specs)
}

// Header adds header parameters, with the same grammar as Query.
func (r *Route) Header(specs ...string) *Route {
	return r.params(oas.ParamInHeader, specs)
}

// Cookie adds cookie parameters, with the same grammar as Query.
func (r *Route) Cookie(specs ...string) *Route {
	return r.params(oas.ParamInCookie, specs)
}

// params parses every spec before touching the operation, so one bad spec
// rejects the whole call. A parameter with the same name and location as an
// existing one replaces it in place.
func (r *Route) params(in string, specs []string) *Route {
	var parsed []*oas.Parameter
	for _, spec := range flatschema.SplitSpecs(specs...) {
		p, err := flatschema.ParseParameter(in, spec)
		if err != nil {
			r.fail(&BuilderError{Component: ComponentParameter, Field: in, Cause: err})
			return r
		}
		parsed = append(parsed, p)
	}

	for _, p := range parsed {
		i := slices.IndexFunc(r.op.Parameters, func(existing *oas.Parameter) bool {
			return existing.Name == p.Name && existing.In == p.In
		})
		if i >= 0 {
			r.op.Parameters[i] = p
		} else {
			r.op.Parameters = append(r.op.Parameters, p)
		}
	}
	return r
}

// Tag sets the operation's tag, replacing any previous one.
func (r *Route) Tag(name string) *Route {
	r.op.Tags = []string{name}
	return r
}

// Summary sets the operation summary.
func (r *Route) Summary(s string) *Route {
	r.op.Summary = s
	return r
}

// Desc sets the operation description.
func (r *Route) Desc(s string) *Route {
	r.op.Description = s
	return r
}

// Security requires the named security scheme for this operation.
func (r *Route) Security(schemeName string) *Route {
	r.op.Security = []oas.SecurityRequirement{{schemeName: {}}}
	return r
}

// Deprecate marks the operation deprecated.
func (r *Route) Deprecate() *Route {
	r.op.Deprecated = true
	return r
}

// OperationID sets the operation ID, which must be unique in the document.
func (r *Route) OperationID(id string) *Route {
	if id == r.op.OperationID {
		return r
	}
	if first, used := r.b.operationIDs[id]; used {
		r.fail(NewDuplicateOperationIDError(id, r.method, r.path, &first))
		return r
	}
	if r.op.OperationID != "" {
		delete(r.b.operationIDs, r.op.OperationID)
	}
	r.op.OperationID = id
	r.b.operationIDs[id] = operationLocation{Method: r.method, Path: r.path}
	return r
}

// Remove deletes this operation from the document. The path entry is
// dropped when it has no operations left.
func (r *Route) Remove() {
	item, ok := r.b.paths.Get(r.path)
	if !ok || item.Operation(r.method) != r.op {
		return
	}
	item.SetOperation(r.method, nil)
	if item.IsEmpty() {
		r.b.paths.Delete(r.path)
	}
	if r.op.OperationID != "" {
		delete(r.b.operationIDs, r.op.OperationID)
	}
	r.b.logger.Debug("removed route", "method", r.method, "path", r.path)
}
