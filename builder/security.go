package builder

import (
	"github.com/erraggy/oasflat/oas"
)

// Security scheme types
const (
	SecurityTypeHTTP   = "http"
	SecurityTypeAPIKey = "apiKey"
)

// SecuritySchemeConfig describes a security scheme for AddSecurityScheme.
// Zero fields take defaults: an HTTP bearer scheme, and for API keys a
// header named after the scheme.
type SecuritySchemeConfig struct {
	// Type is "http" (default) or "apiKey"
	Type string
	// Scheme is the HTTP authorization scheme, "bearer" by default
	Scheme string
	// BearerFormat hints at the bearer token format (e.g., "JWT")
	BearerFormat string
	// In locates an API key: "header" (default), "query", or "cookie"
	In string
	// Name is the API key header, query, or cookie name
	Name string
	// Description is free text
	Description string
}

// AddSecurityScheme stores a security scheme under
// components.securitySchemes[name] and returns its reference
// "#/components/securitySchemes/{name}".
func (b *Builder) AddSecurityScheme(name string, cfg SecuritySchemeConfig) string {
	if !componentName.MatchString(name) {
		b.record(&BuilderError{Component: ComponentSecurityScheme, Path: name, Message: "invalid component name"})
		return ""
	}

	scheme := &oas.SecurityScheme{
		Type:        cfg.Type,
		Description: cfg.Description,
	}
	if scheme.Type == "" {
		scheme.Type = SecurityTypeHTTP
	}

	switch scheme.Type {
	case SecurityTypeHTTP:
		scheme.Scheme = cfg.Scheme
		if scheme.Scheme == "" {
			scheme.Scheme = "bearer"
		}
		if scheme.Scheme == "bearer" {
			scheme.BearerFormat = cfg.BearerFormat
		}
	case SecurityTypeAPIKey:
		scheme.In = cfg.In
		if scheme.In == "" {
			scheme.In = oas.ParamInHeader
		}
		scheme.Name = cfg.Name
		if scheme.Name == "" {
			scheme.Name = name
		}
		switch scheme.In {
		case oas.ParamInHeader, oas.ParamInQuery, oas.ParamInCookie:
		default:
			b.record(&BuilderError{Component: ComponentSecurityScheme, Path: name, Field: "in", Message: "unsupported API key location " + scheme.In})
			return ""
		}
	default:
		b.record(&BuilderError{Component: ComponentSecurityScheme, Path: name, Field: "type", Message: "unsupported security scheme type " + scheme.Type})
		return ""
	}

	b.securitySchemes.Set(name, scheme)
	b.logger.Debug("registered security scheme", "name", name, "type", scheme.Type)
	return oas.SecuritySchemeRef(name)
}
