package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/erraggy/oasflat/flatschema"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/pathtemplate"
	"github.com/erraggy/oasflat/validator"
)

// Builder accumulates an OpenAPI document from route registrations.
//
// The document is owned by the Builder value: create one with New, mutate it
// through its methods and the *Route values they return, export it with
// Document, MarshalJSON, MarshalYAML, or WriteFile, then discard it.
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent operations.
type Builder struct {
	cfg    *builderConfig
	logger Logger

	// Document sections
	info     *oas.Info
	servers  []*oas.Server
	tags     []*oas.Tag
	paths    *oas.OrderedMap[*oas.PathItem]
	security []oas.SecurityRequirement

	// Components
	schemas         *oas.OrderedMap[*oas.Schema]
	securitySchemes *oas.OrderedMap[*oas.SecurityScheme]

	// Tracking
	operationIDs map[string]operationLocation // Track where each operationID was first defined
	errors       []*BuilderError              // Accumulated errors
}

// New creates a Builder with an empty document.
//
// Example:
//
//	b := builder.New(
//		builder.WithTitle("Pet Store"),
//		builder.WithVersion("2.0.0"),
//	)
//	b.Get("/pets/{id:42}").Tag("pets").Res(200, "{id:i,name:s}")
//	data, err := b.MarshalJSON()
func New(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	b := &Builder{
		cfg:    cfg,
		logger: cfg.logger,
		info: &oas.Info{
			Title:       cfg.title,
			Version:     cfg.version,
			Description: cfg.description,
		},
	}
	b.Reset()
	return b
}

// Reset discards every path, component, tag, server, security requirement,
// and recorded error. Info and options are kept.
func (b *Builder) Reset() {
	b.servers = nil
	b.tags = nil
	b.security = nil
	b.paths = oas.NewOrderedMap[*oas.PathItem]()
	b.schemas = oas.NewOrderedMap[*oas.Schema]()
	b.securitySchemes = oas.NewOrderedMap[*oas.SecurityScheme]()
	b.operationIDs = make(map[string]operationLocation)
	b.errors = nil
}

// SetTitle sets the title in the Info object.
func (b *Builder) SetTitle(title string) *Builder {
	b.info.Title = title
	return b
}

// SetVersion sets the version in the Info object.
// Note: This is the API version, not the OpenAPI specification version.
func (b *Builder) SetVersion(version string) *Builder {
	b.info.Version = version
	return b
}

// SetDescription sets the description in the Info object.
func (b *Builder) SetDescription(desc string) *Builder {
	b.info.Description = desc
	return b
}

// AddServer appends a server entry.
func (b *Builder) AddServer(url, description string) *Builder {
	if url == "" {
		b.record(&BuilderError{Component: ComponentServer, Message: "server URL is required"})
		return b
	}
	b.servers = append(b.servers, &oas.Server{URL: url, Description: description})
	return b
}

// AddTag adds a tag to the document. Adding an existing tag again updates
// its description.
func (b *Builder) AddTag(name, description string) *Builder {
	if name == "" {
		b.record(&BuilderError{Component: ComponentTag, Message: "tag name is required"})
		return b
	}
	for _, t := range b.tags {
		if t.Name == name {
			t.Description = description
			return b
		}
	}
	b.tags = append(b.tags, &oas.Tag{Name: name, Description: description})
	return b
}

// componentName matches the component key pattern OpenAPI 3 allows.
var componentName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// RegisterSchema compiles flat and stores it as components.schemas[name].
// It returns the reference "#/components/schemas/{name}" for use in request
// and response bodies. Registering a name again replaces the schema.
//
// A failure is returned and also recorded, so Document reports it as well.
func (b *Builder) RegisterSchema(name, flat string) (string, error) {
	if !componentName.MatchString(name) {
		be := NewSchemaError(name, "invalid component name", nil)
		b.record(be)
		return "", be
	}
	schema, err := flatschema.Compile(flat)
	if err != nil {
		be := NewSchemaError(name, "", err)
		b.record(be)
		return "", be
	}
	b.schemas.Set(name, schema)
	b.logger.Debug("registered schema", "name", name)
	return oas.SchemaRef(name), nil
}

// SetSecurity sets document-wide security requirements, one per scheme name.
func (b *Builder) SetSecurity(schemeNames ...string) *Builder {
	b.security = nil
	for _, name := range schemeNames {
		b.security = append(b.security, oas.SecurityRequirement{name: {}})
	}
	return b
}

// RemoveFilter selects what Remove deletes. Both fields are optional.
type RemoveFilter struct {
	// Path removes every operation registered under this template.
	// The template is normalized first, so "/users/{id:1}" matches "/users/{id}".
	Path string
	// Tag removes every operation carrying this tag. Paths left without
	// operations are removed as well.
	Tag string
}

// Remove deletes the operations selected by filter.
func (b *Builder) Remove(filter RemoveFilter) *Builder {
	if filter.Path != "" {
		key := b.pathKey(filter.Path)
		if b.paths.Delete(key) {
			b.forgetOperationIDs(func(loc operationLocation) bool { return loc.Path == key })
			b.logger.Debug("removed path", "path", key)
		}
	}
	if filter.Tag != "" {
		for key, item := range b.paths.All() {
			for method, op := range item.Operations {
				if op.HasTag(filter.Tag) {
					item.SetOperation(method, nil)
					b.forgetOperationIDs(func(loc operationLocation) bool {
						return loc.Path == key && loc.Method == method
					})
				}
			}
		}
		for _, key := range b.paths.Keys() {
			if item, _ := b.paths.Get(key); item.IsEmpty() {
				b.paths.Delete(key)
			}
		}
		b.logger.Debug("removed tagged operations", "tag", filter.Tag)
	}
	return b
}

func (b *Builder) forgetOperationIDs(match func(operationLocation) bool) {
	for id, loc := range b.operationIDs {
		if match(loc) {
			delete(b.operationIDs, id)
		}
	}
}

// pathKey returns the identity of a route template.
func (b *Builder) pathKey(template string) string {
	if b.cfg.bracePaths {
		return pathtemplate.ToBraceForm(template)
	}
	return pathtemplate.NormalizeKey(template)
}

// record stores a rejected call and logs it.
func (b *Builder) record(be *BuilderError) {
	b.errors = append(b.errors, be)
	b.logger.Warn("builder call rejected", "error", be.Error())
}

// Err returns every error recorded so far as BuilderErrors, or nil.
func (b *Builder) Err() error {
	if len(b.errors) == 0 {
		return nil
	}
	return append(BuilderErrors(nil), b.errors...)
}

// Document returns a deep copy of the accumulated document.
//
// It fails with BuilderErrors when any call was rejected or when a
// component reference does not resolve. Each *BuilderError matches
// oaserrors.ErrConfig and unwraps to its cause.
func (b *Builder) Document() (*oas.Document, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	if errs := b.checkReferences(); len(errs) > 0 {
		return nil, errs
	}

	info := *b.info
	doc := oas.NewDocument(b.cfg.openapi, &info)
	for _, s := range b.servers {
		srv := *s
		doc.Servers = append(doc.Servers, &srv)
	}
	for _, t := range b.tags {
		tag := *t
		doc.Tags = append(doc.Tags, &tag)
	}
	for _, req := range b.security {
		doc.Security = append(doc.Security, req.Clone())
	}
	doc.Paths = b.paths.Clone((*oas.PathItem).Clone)
	if b.schemas.Len() > 0 || b.securitySchemes.Len() > 0 {
		doc.Components = &oas.Components{}
		if b.schemas.Len() > 0 {
			doc.Components.Schemas = b.schemas.Clone((*oas.Schema).Clone)
		}
		if b.securitySchemes.Len() > 0 {
			doc.Components.SecuritySchemes = b.securitySchemes.Clone(func(s *oas.SecurityScheme) *oas.SecurityScheme {
				cp := *s
				return &cp
			})
		}
	}

	if b.cfg.strictRequired {
		doc.RewriteSchemas((*oas.Schema).Standardize)
	}
	return doc, nil
}

// checkReferences reports local component references that do not resolve.
func (b *Builder) checkReferences() BuilderErrors {
	var errs BuilderErrors
	var walk func(s *oas.Schema, method, path string)
	walk = func(s *oas.Schema, method, path string) {
		if s == nil {
			return
		}
		if name, ok := strings.CutPrefix(s.Ref, oas.RefPrefixSchemas); ok && !b.schemas.Has(name) {
			errs = append(errs, NewReferenceError(ComponentSchema, s.Ref, method, path))
		}
		for _, prop := range s.Properties.All() {
			walk(prop, method, path)
		}
		walk(s.Items, method, path)
		for _, alt := range s.OneOf {
			walk(alt, method, path)
		}
	}

	for name, s := range b.schemas.All() {
		walk(s, "", name)
	}
	for path, item := range b.paths.All() {
		for method, op := range item.Operations {
			for _, p := range op.Parameters {
				walk(p.Schema, method, path)
			}
			if op.RequestBody != nil {
				for _, mt := range op.RequestBody.Content {
					walk(mt.Schema, method, path)
				}
			}
			for _, resp := range op.Responses.All() {
				for _, mt := range resp.Content {
					walk(mt.Schema, method, path)
				}
			}
			for _, req := range op.Security {
				for scheme := range req {
					if !b.securitySchemes.Has(scheme) {
						errs = append(errs, NewReferenceError(ComponentSecurityScheme, oas.SecuritySchemeRef(scheme), method, path))
					}
				}
			}
		}
	}
	for _, req := range b.security {
		for scheme := range req {
			if !b.securitySchemes.Has(scheme) {
				errs = append(errs, NewReferenceError(ComponentSecurityScheme, oas.SecuritySchemeRef(scheme), "", ""))
			}
		}
	}
	return errs
}

// StrictDocument returns Document with object-level "required" lists and
// brace-style path keys, regardless of the builder options. This is the form
// OpenAPI 3 tooling accepts.
func (b *Builder) StrictDocument() (*oas.Document, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	if !b.cfg.strictRequired {
		doc.RewriteSchemas((*oas.Schema).Standardize)
	}
	if !b.cfg.bracePaths {
		paths := oas.NewOrderedMap[*oas.PathItem]()
		for key, item := range doc.Paths.All() {
			paths.Set(pathtemplate.ToBraceForm(key), item)
		}
		doc.Paths = paths
	}
	return doc, nil
}

// Validate checks the strict form of the document with the validator package.
func (b *Builder) Validate(ctx context.Context) error {
	doc, err := b.StrictDocument()
	if err != nil {
		return err
	}
	return validator.Validate(ctx, doc)
}

// MarshalJSON returns the document as indented JSON bytes.
func (b *Builder) MarshalJSON() ([]byte, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	return oas.EncodeJSON(doc)
}

// MarshalYAML returns the document as YAML bytes.
func (b *Builder) MarshalYAML() ([]byte, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	return oas.EncodeYAML(doc)
}

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// WriteFile writes the document to a file.
// The format is inferred from the file extension (.json for JSON, .yaml/.yml
// or anything else for YAML).
func (b *Builder) WriteFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = b.MarshalJSON()
	default:
		data, err = b.MarshalYAML()
	}
	if err != nil {
		var be BuilderErrors
		if errors.As(err, &be) {
			return err
		}
		return fmt.Errorf("builder: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("builder: failed to write file: %w", err)
	}
	return nil
}
