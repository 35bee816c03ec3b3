package flatschema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

// Compile translates a flat-schema string into a schema tree.
//
// The returned tree is freshly allocated and shares nothing with earlier
// results. The root node carries an empty description for callers to fill.
// Any grammar violation yields a *oaserrors.MalformedSchemaError; no partial
// tree is ever returned.
func Compile(s string) (*oas.Schema, error) {
	input := stripSpace(s)
	if strings.ContainsRune(input, 0) {
		return nil, malformed(input, input, "invalid NUL character")
	}
	if input == "" {
		return nil, malformed(input, input, "empty schema")
	}

	flat, table, err := extract(input)
	if err != nil {
		return nil, toMalformed(input, err)
	}

	c := &compiler{table: table}
	root, err := c.element(flat)
	if err != nil {
		return nil, toMalformed(input, err)
	}
	return root, nil
}

// MustCompile is like Compile but panics if the string cannot be compiled.
// It simplifies safe initialization of package-level schemas.
func MustCompile(s string) *oas.Schema {
	schema, err := Compile(s)
	if err != nil {
		panic(fmt.Sprintf("flatschema: Compile(%q): %v", s, err))
	}
	return schema
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func malformed(input, fragment, message string) *oaserrors.MalformedSchemaError {
	return &oaserrors.MalformedSchemaError{Input: input, Fragment: fragment, Message: message}
}

func toMalformed(input string, err error) error {
	var se *syntaxError
	if errors.As(err, &se) {
		return malformed(input, se.fragment, se.message)
	}
	return malformed(input, input, err.Error())
}

// compiler resolves flattened spec strings against one side table.
type compiler struct {
	table blocks
}

func (c *compiler) fail(fragment, message string) error {
	return &syntaxError{fragment: c.table.expand(fragment), message: message}
}

// block resolves a stored fragment, delimiters included.
func (c *compiler) block(fragment string) (*oas.Schema, error) {
	inner := fragment[1 : len(fragment)-1]
	if fragment[0] == '[' {
		return c.array(fragment, inner)
	}
	return c.object(fragment, inner)
}

// element resolves a spec that may omit the name: a bare placeholder, a bare
// type code, or a full name:type:default scalar.
func (c *compiler) element(spec string) (*oas.Schema, error) {
	if frag, ok := c.table.lookup(spec); ok {
		return c.block(frag)
	}
	if !strings.Contains(spec, ":") {
		return c.scalar(":" + spec)
	}
	return c.scalar(spec)
}

func (c *compiler) array(fragment, inner string) (*oas.Schema, error) {
	node := &oas.Schema{Type: oas.TypeArray}
	if inner == "" {
		node.Items = &oas.Schema{Type: oas.TypeString}
		return node, nil
	}

	var alts []*oas.Schema
	for _, elem := range strings.Split(inner, ",") {
		if elem == "" {
			return nil, c.fail(fragment, "empty array element")
		}
		item, err := c.element(elem)
		if err != nil {
			return nil, err
		}
		if !containsSchema(alts, item) {
			alts = append(alts, item)
		}
	}

	if len(alts) == 1 {
		node.Items = alts[0]
	} else {
		node.Items = &oas.Schema{OneOf: alts}
	}
	return node, nil
}

func containsSchema(list []*oas.Schema, s *oas.Schema) bool {
	for _, existing := range list {
		if reflect.DeepEqual(existing, s) {
			return true
		}
	}
	return false
}

func (c *compiler) object(fragment, inner string) (*oas.Schema, error) {
	props := oas.NewOrderedMap[*oas.Schema]()
	node := &oas.Schema{Type: oas.TypeObject, Properties: props}
	if inner == "" {
		return node, nil
	}

	for _, pair := range strings.Split(inner, ",") {
		key, rest, hasSpec := strings.Cut(pair, ":")
		if key == "" {
			return nil, c.fail(fragment, "missing property name")
		}
		if strings.Contains(key, placeholderSigil) {
			return nil, c.fail(pair, "nested literal used as property name")
		}
		spec := ":" + rest
		if !hasSpec {
			spec = ":"
		}
		prop, err := c.scalar(spec)
		if err != nil {
			return nil, err
		}
		props.Set(key, prop)
	}
	return node, nil
}

// scalar resolves "name:[?|+]type[:default]". The name is discarded; the
// parent grafts the node under its own key.
func (c *compiler) scalar(spec string) (*oas.Schema, error) {
	parts := strings.SplitN(spec, ":", 3)
	name := parts[0]
	var tag, def string
	if len(parts) > 1 {
		tag = parts[1]
	}
	if len(parts) > 2 {
		def = parts[2]
	}

	if strings.Contains(name, placeholderSigil) {
		return nil, c.fail(spec, "nested literal in scalar name")
	}
	if strings.Contains(def, placeholderSigil) {
		return nil, c.fail(spec, "nested literal in default value")
	}
	if strings.Contains(name, ",") || strings.Contains(tag, ",") || strings.Contains(def, ",") {
		return nil, c.fail(spec, "unexpected ',' in scalar")
	}

	optional := false
	switch {
	case strings.HasPrefix(tag, "?"):
		tag = tag[1:]
		optional = true
	case strings.HasPrefix(tag, "+"):
		tag = tag[1:]
	}

	var node *oas.Schema
	switch {
	case strings.Contains(tag, placeholderSigil):
		frag, ok := c.table.lookup(tag)
		if !ok {
			return nil, c.fail(spec, "nested literal glued to other text")
		}
		nested, err := c.block(frag)
		if err != nil {
			return nil, err
		}
		node = nested
	case strings.HasPrefix(tag, "#"):
		node = &oas.Schema{Ref: refFor(tag)}
	default:
		node = &oas.Schema{Type: typeOrString(tag)}
	}

	if def != "" && !node.IsRef() {
		node.Example = coerceExample(node.Type, def)
	}
	node.Required = !optional
	return node, nil
}

// refFor expands the "#Name" shorthand to "#/components/schemas/Name".
// Other references are kept verbatim.
func refFor(tag string) string {
	if name, ok := strings.CutPrefix(tag, "#"); ok && name != "" && !strings.HasPrefix(name, "/") {
		return oas.SchemaRef(name)
	}
	return tag
}
