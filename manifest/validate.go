package manifest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oasflat/builder"
	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

// Validate checks a manifest for structural errors before it is applied.
//
// Returns every problem found; an empty slice means the manifest is valid.
// Structural problems are *oaserrors.ConfigError values whose Option is the
// manifest location (e.g., "routes[2].method"). A "#Name" body, route
// security, or defaultSecurity entry naming an undeclared component is a
// *oaserrors.ReferenceError. Flat schemas themselves are compiled by Apply.
func Validate(m *Manifest) []error {
	var errs []error
	configErr := func(option string, value any, format string, args ...any) {
		errs = append(errs, &oaserrors.ConfigError{Option: option, Value: value, Message: fmt.Sprintf(format, args...)})
	}

	if m.Title == "" {
		configErr("title", nil, "title is required")
	}

	for i, s := range m.Servers {
		if s.URL == "" {
			configErr(fmt.Sprintf("servers[%d].url", i), nil, "server url is required")
		}
	}
	for i, t := range m.Tags {
		if t.Name == "" {
			configErr(fmt.Sprintf("tags[%d].name", i), nil, "tag name is required")
		}
	}

	var schemeNames []string
	for _, s := range m.Security {
		schemeNames = append(schemeNames, s.Name)
		switch s.Scheme.Type {
		case "", builder.SecurityTypeHTTP, builder.SecurityTypeAPIKey:
		default:
			configErr("security."+s.Name+".type", s.Scheme.Type,
				"unsupported security scheme type; use %q or %q", builder.SecurityTypeHTTP, builder.SecurityTypeAPIKey)
		}
	}
	securityRef := func(name string) {
		if !slices.Contains(schemeNames, name) {
			errs = append(errs, &oaserrors.ReferenceError{
				Ref:     oas.SecuritySchemeRef(name),
				Message: "security scheme is not declared in the manifest",
			})
		}
	}
	for _, name := range m.DefaultSecurity {
		securityRef(name)
	}

	for _, s := range m.Schemas {
		if s.Name == "" {
			configErr("schemas", nil, "schema name is required")
		}
	}
	schemaRef := func(flat Flat) {
		name, ok := strings.CutPrefix(strings.TrimSpace(string(flat)), "#")
		if !ok || name == "" || strings.HasPrefix(name, "/") {
			return
		}
		if !m.Schemas.Has(name) {
			errs = append(errs, &oaserrors.ReferenceError{
				Ref:     oas.SchemaRef(name),
				Message: "schema is not declared in the manifest",
			})
		}
	}

	for i, r := range m.Routes {
		prefix := fmt.Sprintf("routes[%d]", i)
		if _, ok := httputil.NormalizeMethod(r.Method); !ok {
			configErr(prefix+".method", r.Method, "unsupported HTTP method")
		}
		if !strings.HasPrefix(r.Path, "/") {
			configErr(prefix+".path", r.Path, "path must start with '/'")
		}
		schemaRef(r.Req)
		for key, flat := range r.Responses {
			if _, err := statusCode(key); err != nil {
				configErr(prefix+".responses", key, "%v", err)
			}
			schemaRef(flat)
		}
		if r.Security != "" {
			securityRef(r.Security)
		}
	}
	return errs
}

// statusCode parses a responses key.
func statusCode(key string) (int, error) {
	code, ok := httputil.ParseStatusKey(key)
	if !ok {
		return 0, fmt.Errorf("invalid status code %q", key)
	}
	return code, nil
}
