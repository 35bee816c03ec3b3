package manifest

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasflat/builder"
)

// BuilderOptions returns the builder options the manifest asks for.
// Extra options (such as a logger) are appended after them.
func (m *Manifest) BuilderOptions(extra ...builder.BuilderOption) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithOperationIDs(m.Options.OperationIDs),
		builder.WithStrictRequired(m.Options.StrictRequired),
		builder.WithBracePaths(m.Options.BracePaths),
	}
	if m.OpenAPI != "" {
		opts = append(opts, builder.WithOpenAPIVersion(m.OpenAPI))
	}
	return append(opts, extra...)
}

// Build creates a builder configured from the manifest and applies it.
func (m *Manifest) Build(extra ...builder.BuilderOption) (*builder.Builder, error) {
	b := builder.New(m.BuilderOptions(extra...)...)
	if err := m.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply replays the manifest onto b: info, servers, tags, security schemes,
// schemas, default security, then routes in order.
//
// Validation problems are returned joined before b is touched. Otherwise
// every builder call is made and the builder's accumulated errors are
// returned wrapped, so errors.As(err, &builder.BuilderErrors{}) works.
func (m *Manifest) Apply(b *builder.Builder) error {
	if errs := Validate(m); len(errs) > 0 {
		return fmt.Errorf("manifest: invalid: %w", errors.Join(errs...))
	}

	if m.Title != "" {
		b.SetTitle(m.Title)
	}
	if m.Version != "" {
		b.SetVersion(m.Version)
	}
	if m.Description != "" {
		b.SetDescription(m.Description)
	}
	for _, s := range m.Servers {
		b.AddServer(s.URL, s.Description)
	}
	for _, t := range m.Tags {
		b.AddTag(t.Name, t.Description)
	}
	for _, s := range m.Security {
		b.AddSecurityScheme(s.Name, builder.SecuritySchemeConfig{
			Type:         s.Scheme.Type,
			Scheme:       s.Scheme.Scheme,
			BearerFormat: s.Scheme.BearerFormat,
			In:           s.Scheme.In,
			Name:         s.Scheme.Name,
			Description:  s.Scheme.Description,
		})
	}
	for _, s := range m.Schemas {
		// failures are recorded on the builder and reported below
		_, _ = b.RegisterSchema(s.Name, string(s.Flat))
	}
	if len(m.DefaultSecurity) > 0 {
		b.SetSecurity(m.DefaultSecurity...)
	}

	for _, r := range m.Routes {
		b.Route(r.Method, r.Path, r.config())
	}

	if err := b.Err(); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// config converts a manifest route to a builder.RouteConfig. Response keys
// were checked by Validate.
func (r Route) config() builder.RouteConfig {
	cfg := builder.RouteConfig{
		Tag:         r.Tag,
		Summary:     r.Summary,
		Desc:        r.Desc,
		Req:         string(r.Req),
		Query:       r.Query,
		Header:      r.Header,
		Cookie:      r.Cookie,
		Security:    r.Security,
		Deprecated:  r.Deprecated,
		OperationID: r.OperationID,
	}
	if len(r.Responses) > 0 {
		cfg.Responses = make(map[int]string, len(r.Responses))
		for key, flat := range r.Responses {
			code, _ := statusCode(key)
			cfg.Responses[code] = string(flat)
		}
	}
	return cfg
}
