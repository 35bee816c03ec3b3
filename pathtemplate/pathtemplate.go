package pathtemplate

import (
	"regexp"
	"strings"

	"github.com/erraggy/oasflat/oas"
)

var (
	// braceToken matches {name} and {name:example}, capturing the body.
	braceToken = regexp.MustCompile(`\{([^}]+)\}`)
	// colonToken matches :name up to the next slash, capturing the body.
	colonToken = regexp.MustCompile(`:([^/]+)`)
)

// Token is a single parameter token found in a path template.
type Token struct {
	// Name is the parameter name
	Name string
	// Example is the text after the first colon inside the token, if any
	Example string
	// Brace reports whether the token used the {name} form
	Brace bool
}

// Tokens returns the parameter tokens of template in order of appearance.
func Tokens(template string) []Token {
	brace := true
	matches := braceToken.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		brace = false
		matches = colonToken.FindAllStringSubmatch(template, -1)
	}
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		name, example, _ := strings.Cut(m[1], ":")
		tokens = append(tokens, Token{Name: name, Example: example, Brace: brace})
	}
	return tokens
}

// ExtractParameters returns one required, string-typed path parameter per
// token of template. Example suffixes become the schema example. A template
// without tokens yields an empty, non-nil list.
func ExtractParameters(template string) []*oas.Parameter {
	tokens := Tokens(template)
	params := make([]*oas.Parameter, 0, len(tokens))
	for _, tok := range tokens {
		schema := &oas.Schema{Type: oas.TypeString}
		if tok.Example != "" {
			schema.Example = tok.Example
		}
		params = append(params, &oas.Parameter{
			Name:     tok.Name,
			In:       oas.ParamInPath,
			Required: true,
			Schema:   schema,
		})
	}
	return params
}

// Names returns the parameter names of template in order of appearance.
func Names(template string) []string {
	tokens := Tokens(template)
	if len(tokens) == 0 {
		return nil
	}
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Name
	}
	return names
}

// NormalizeKey reduces every brace token to its bare {name} form.
// Colon-style templates are returned unchanged.
func NormalizeKey(template string) string {
	if !braceToken.MatchString(template) {
		return template
	}
	return braceToken.ReplaceAllStringFunc(template, func(tok string) string {
		name, _, _ := strings.Cut(tok[1:len(tok)-1], ":")
		return "{" + name + "}"
	})
}

// ToBraceForm rewrites a colon-style template into bare brace form
// ("/users/:id" becomes "/users/{id}"). Brace-style templates are normalized
// with NormalizeKey.
func ToBraceForm(template string) string {
	if braceToken.MatchString(template) {
		return NormalizeKey(template)
	}
	return colonToken.ReplaceAllStringFunc(template, func(tok string) string {
		name, _, _ := strings.Cut(tok[1:], ":")
		return "{" + name + "}"
	})
}
