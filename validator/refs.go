package validator

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasflat/oas"
)

// maxSchemaNestingDepth guards the schema walk against pathological trees.
const maxSchemaNestingDepth = 100

// validateRefs checks that every schema reference names a defined component.
func (v *Validator) validateRefs(doc *oas.Document, result *ValidationResult) {
	var schemas *oas.OrderedMap[*oas.Schema]
	if doc.Components != nil {
		schemas = doc.Components.Schemas
	}
	check := func(s *oas.Schema, path string) {
		v.validateSchemaRefs(s, path, schemas, result, 0)
	}

	for name, s := range schemas.All() {
		check(s, joinPath("components", "schemas", name))
	}
	doc.WalkOperations(func(path, method string, op *oas.Operation) bool {
		opPath := joinPath("paths", path, method)
		for i, p := range op.Parameters {
			if p != nil {
				check(p.Schema, fmt.Sprintf("%s.parameters[%d].schema", opPath, i))
			}
		}
		if op.RequestBody != nil {
			for mediaType, mt := range op.RequestBody.Content {
				if mt != nil {
					check(mt.Schema, joinPath(opPath, "requestBody", "content", mediaType, "schema"))
				}
			}
		}
		for code, resp := range op.Responses.All() {
			if resp == nil {
				continue
			}
			for mediaType, mt := range resp.Content {
				if mt != nil {
					check(mt.Schema, joinPath(opPath, "responses", code, "content", mediaType, "schema"))
				}
			}
		}
		return true
	})
}

func (v *Validator) validateSchemaRefs(s *oas.Schema, path string, schemas *oas.OrderedMap[*oas.Schema], result *ValidationResult, depth int) {
	if s == nil {
		return
	}
	if depth > maxSchemaNestingDepth {
		v.addError(result, path, fmt.Sprintf("Schema nesting exceeds %d levels", maxSchemaNestingDepth))
		return
	}
	if s.IsRef() {
		name, ok := strings.CutPrefix(s.Ref, oas.RefPrefixSchemas)
		switch {
		case !ok:
			v.addError(result, joinPath(path, "$ref"),
				fmt.Sprintf("Unsupported reference %q: only %s references are allowed", s.Ref, oas.RefPrefixSchemas))
		case !schemas.Has(name):
			v.addError(result, joinPath(path, "$ref"), fmt.Sprintf("Reference %q does not resolve", s.Ref))
		}
	}
	if s.Type != "" && !oas.IsCanonicalType(s.Type) {
		v.addError(result, joinPath(path, "type"), fmt.Sprintf("Unknown schema type %q", s.Type))
	}
	if s.Type == oas.TypeArray && s.Items == nil {
		v.addError(result, path, "Array schema must define items")
	}
	for name, prop := range s.Properties.All() {
		v.validateSchemaRefs(prop, joinPath(path, "properties", name), schemas, result, depth+1)
	}
	v.validateSchemaRefs(s.Items, joinPath(path, "items"), schemas, result, depth+1)
	for i, alt := range s.OneOf {
		v.validateSchemaRefs(alt, fmt.Sprintf("%s.oneOf[%d]", path, i), schemas, result, depth+1)
	}
}
