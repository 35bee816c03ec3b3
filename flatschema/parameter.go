package flatschema

import (
	"strings"

	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

// ParseParameter parses a parameter spec "name[:[?|+]type[:default]]" for the
// given location ("query", "header", "cookie", or "path").
//
// Parameters are required unless the type is marked optional with '?'.
// The type accepts everything a flat-schema property does, including nested
// literals such as "ids:?[i]". A default literal becomes the schema example.
func ParseParameter(in, spec string) (*oas.Parameter, error) {
	switch in {
	case oas.ParamInQuery, oas.ParamInHeader, oas.ParamInCookie, oas.ParamInPath:
	default:
		return nil, &oaserrors.ConfigError{Option: "in", Value: in, Message: "unsupported parameter location"}
	}

	input := stripSpace(spec)
	if strings.ContainsRune(input, 0) {
		return nil, malformed(input, input, "invalid NUL character")
	}
	flat, table, err := extract(input)
	if err != nil {
		return nil, toMalformed(input, err)
	}

	name, rest, _ := strings.Cut(flat, ":")
	if name == "" {
		return nil, malformed(input, input, "missing parameter name")
	}
	if strings.Contains(name, placeholderSigil) {
		return nil, malformed(input, input, "nested literal used as parameter name")
	}

	c := &compiler{table: table}
	schema, err := c.scalar(":" + rest)
	if err != nil {
		return nil, toMalformed(input, err)
	}
	required := schema.Required
	schema.Required = false

	return &oas.Parameter{
		Name:     name,
		In:       in,
		Required: required,
		Schema:   schema,
	}, nil
}

// SplitSpecs splits comma-joined parameter specs ("limit:i:10,offset:i:0")
// into single specs. Commas inside nested literals do not split. Blank
// entries are dropped.
func SplitSpecs(specs ...string) []string {
	var out []string
	for _, s := range specs {
		depth := 0
		start := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '{', '[':
				depth++
			case '}', ']':
				if depth > 0 {
					depth--
				}
			case ',':
				if depth == 0 {
					out = appendSpec(out, s[start:i])
					start = i + 1
				}
			}
		}
		out = appendSpec(out, s[start:])
	}
	return out
}

func appendSpec(out []string, spec string) []string {
	if spec = strings.TrimSpace(spec); spec != "" {
		out = append(out, spec)
	}
	return out
}
