package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/pathtemplate"
)

// componentNamePattern is the OpenAPI 3 rule for component map keys.
var componentNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func (v *Validator) validateVersion(doc *oas.Document, result *ValidationResult) {
	if doc.OpenAPI == "" {
		v.addError(result, "openapi", "Document must declare an openapi version")
		return
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		v.addError(result, "openapi", fmt.Sprintf("Unsupported openapi version %q, expected 3.x", doc.OpenAPI))
	}
}

func (v *Validator) validateInfo(doc *oas.Document, result *ValidationResult) {
	if doc.Info == nil {
		v.addError(result, "info", "Document must have an info object")
		return
	}
	if doc.Info.Title == "" {
		v.addError(result, "info.title", "Info object must have a title")
	}
	if doc.Info.Version == "" {
		v.addError(result, "info.version", "Info object must have a version")
	}
}

func (v *Validator) validateServers(doc *oas.Document, result *ValidationResult) {
	for i, srv := range doc.Servers {
		if srv == nil || srv.URL == "" {
			v.addError(result, fmt.Sprintf("servers[%d].url", i), "Server must have a url")
		}
	}
}

func (v *Validator) validateTags(doc *oas.Document, result *ValidationResult) {
	seen := make(map[string]bool, len(doc.Tags))
	for i, tag := range doc.Tags {
		if tag == nil || tag.Name == "" {
			v.addError(result, fmt.Sprintf("tags[%d].name", i), "Tag must have a name")
			continue
		}
		if seen[tag.Name] {
			v.addError(result, fmt.Sprintf("tags[%d].name", i), fmt.Sprintf("Duplicate tag name %q", tag.Name))
		}
		seen[tag.Name] = true
	}
}

func (v *Validator) validateComponents(doc *oas.Document, result *ValidationResult) {
	if doc.Components == nil {
		return
	}
	for name := range doc.Components.Schemas.All() {
		if !componentNamePattern.MatchString(name) {
			v.addError(result, joinPath("components", "schemas", name),
				fmt.Sprintf("Invalid component name %q: must match %s", name, componentNamePattern))
		}
	}
	for name, scheme := range doc.Components.SecuritySchemes.All() {
		path := joinPath("components", "securitySchemes", name)
		if !componentNamePattern.MatchString(name) {
			v.addError(result, path,
				fmt.Sprintf("Invalid component name %q: must match %s", name, componentNamePattern))
		}
		v.validateSecurityScheme(scheme, path, result)
	}
}

func (v *Validator) validateSecurityScheme(scheme *oas.SecurityScheme, path string, result *ValidationResult) {
	if scheme == nil {
		v.addError(result, path, "Security scheme must not be empty")
		return
	}
	switch scheme.Type {
	case "http":
		if scheme.Scheme == "" {
			v.addError(result, joinPath(path, "scheme"), "HTTP security scheme must have a scheme")
		}
		if scheme.BearerFormat != "" && !strings.EqualFold(scheme.Scheme, "bearer") {
			v.addWarning(result, joinPath(path, "bearerFormat"), "bearerFormat only applies to the bearer scheme")
		}
	case "apiKey":
		if scheme.Name == "" {
			v.addError(result, joinPath(path, "name"), "API key security scheme must have a name")
		}
		switch scheme.In {
		case oas.ParamInQuery, oas.ParamInHeader, oas.ParamInCookie:
		default:
			v.addError(result, joinPath(path, "in"),
				fmt.Sprintf("API key location must be query, header or cookie, got %q", scheme.In))
		}
	case "":
		v.addError(result, joinPath(path, "type"), "Security scheme must have a type")
	default:
		v.addError(result, joinPath(path, "type"), fmt.Sprintf("Unsupported security scheme type %q", scheme.Type))
	}
}

func (v *Validator) validatePaths(doc *oas.Document, result *ValidationResult) {
	for pathPattern, item := range doc.Paths.All() {
		prefix := joinPath("paths", pathPattern)
		if !strings.HasPrefix(pathPattern, "/") {
			v.addError(result, prefix, "Path must start with '/'")
		}
		if item == nil || item.IsEmpty() {
			v.addWarning(result, prefix, "Path declares no operations")
			continue
		}
		templateParams := make(map[string]bool)
		for _, name := range pathtemplate.Names(pathPattern) {
			if templateParams[name] {
				v.addError(result, prefix, fmt.Sprintf("Path template repeats parameter %q", name))
			}
			templateParams[name] = true
		}
		for method, op := range item.Operations {
			result.OperationCount++
			opPath := joinPath(prefix, method)
			v.validateParameters(op, opPath, templateParams, result)
			v.validateRequestBody(op.RequestBody, joinPath(opPath, "requestBody"), result)
			v.validateResponses(op, joinPath(opPath, "responses"), result)
		}
	}
}

// validateParameters checks uniqueness and path parameter consistency.
func (v *Validator) validateParameters(op *oas.Operation, opPath string, templateParams map[string]bool, result *ValidationResult) {
	type paramKey struct{ name, in string }
	seen := make(map[paramKey]bool, len(op.Parameters))
	declared := make(map[string]bool)

	for i, param := range op.Parameters {
		path := fmt.Sprintf("%s.parameters[%d]", opPath, i)
		if param == nil {
			v.addError(result, path, "Parameter must not be empty")
			continue
		}
		if param.Name == "" {
			v.addError(result, joinPath(path, "name"), "Parameter must have a name")
		}
		switch param.In {
		case oas.ParamInQuery, oas.ParamInHeader, oas.ParamInPath, oas.ParamInCookie:
		default:
			v.addError(result, joinPath(path, "in"),
				fmt.Sprintf("Parameter location must be query, header, path or cookie, got %q", param.In))
		}
		key := paramKey{param.Name, param.In}
		if seen[key] {
			v.addError(result, path, fmt.Sprintf("Duplicate %s parameter %q", param.In, param.Name))
		}
		seen[key] = true

		if param.In != oas.ParamInPath {
			continue
		}
		declared[param.Name] = true
		if !param.Required {
			v.addError(result, joinPath(path, "required"), "Path parameters must have required: true")
		}
		if !templateParams[param.Name] {
			v.addWarning(result, path,
				fmt.Sprintf("Parameter %q is declared as path parameter but not used in path template", param.Name))
		}
	}

	for name := range templateParams {
		if !declared[name] {
			v.addError(result, opPath,
				fmt.Sprintf("Path template references parameter '{%s}' but it is not declared in parameters", name))
		}
	}
}

func (v *Validator) validateRequestBody(body *oas.RequestBody, path string, result *ValidationResult) {
	if body == nil {
		return
	}
	if len(body.Content) == 0 {
		v.addError(result, joinPath(path, "content"), "Request body must have at least one media type")
	}
	for mediaType, mt := range body.Content {
		if mt == nil || mt.Schema == nil {
			v.addWarning(result, joinPath(path, "content", mediaType), "Media type has no schema")
		}
	}
}

func (v *Validator) validateResponses(op *oas.Operation, path string, result *ValidationResult) {
	if op.Responses.Len() == 0 {
		v.addError(result, path, "Operation must define at least one response")
		return
	}
	hasSuccess := false
	for key, resp := range op.Responses.All() {
		respPath := joinPath(path, key)
		if resp == nil {
			v.addError(result, respPath, "Response must not be empty")
			continue
		}
		switch {
		case key == "default":
			hasSuccess = true
		case isStatusRange(key):
			if key[0] == '2' {
				hasSuccess = true
			}
		default:
			code, ok := httputil.ParseStatusKey(key)
			if !ok {
				v.addError(result, respPath, fmt.Sprintf("Invalid HTTP status code: %s", key))
				continue
			}
			if !httputil.IsStandardStatusCode(code) {
				v.addWarning(result, respPath, fmt.Sprintf("Non-standard HTTP status code: %d", code))
			}
			if code >= 200 && code < 300 {
				hasSuccess = true
			}
		}
	}
	if !hasSuccess {
		v.addWarning(result, path, "Operation should define at least one successful (2XX) response")
	}
}

// isStatusRange reports whether key is a status code range such as "2XX".
func isStatusRange(key string) bool {
	return len(key) == 3 && key[0] >= '1' && key[0] <= '5' && key[1:] == "XX"
}

func (v *Validator) validateOperationIDs(doc *oas.Document, result *ValidationResult) {
	first := make(map[string]string)
	doc.WalkOperations(func(path, method string, op *oas.Operation) bool {
		if op.OperationID == "" {
			return true
		}
		location := strings.ToUpper(method) + " " + path
		if prev, ok := first[op.OperationID]; ok {
			v.addError(result, joinPath("paths", path, method, "operationId"),
				fmt.Sprintf("Duplicate operationId %q (first seen at %s)", op.OperationID, prev))
			return true
		}
		first[op.OperationID] = location
		return true
	})
}

func (v *Validator) validateSecurityRequirements(doc *oas.Document, result *ValidationResult) {
	var schemes *oas.OrderedMap[*oas.SecurityScheme]
	if doc.Components != nil {
		schemes = doc.Components.SecuritySchemes
	}
	check := func(reqs []oas.SecurityRequirement, path string) {
		for i, req := range reqs {
			for name := range req {
				if !schemes.Has(name) {
					v.addError(result, fmt.Sprintf("%s[%d].%s", path, i, name),
						fmt.Sprintf("Security requirement references undefined scheme %q", name))
				}
			}
		}
	}
	check(doc.Security, "security")
	doc.WalkOperations(func(path, method string, op *oas.Operation) bool {
		check(op.Security, joinPath("paths", path, method, "security"))
		return true
	})
}
