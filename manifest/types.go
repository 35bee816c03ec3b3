package manifest

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Manifest describes a whole API in one YAML (or JSON) document.
//
// Every schema-valued field holds a flat-schema string. Flat schemas use
// braces and brackets, so they must be quoted in YAML: req: "{id:i}".
type Manifest struct {
	// Title is info.title
	Title string `yaml:"title" json:"title"`
	// Version is info.version, the API version
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	// Description is info.description
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// OpenAPI overrides the "openapi" field of the generated document
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"`

	// Options toggles builder features
	Options Options `yaml:"options,omitempty" json:"options,omitempty"`

	Servers []Server `yaml:"servers,omitempty" json:"servers,omitempty"`
	Tags    []Tag    `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Security lists security schemes in declaration order
	Security SecuritySchemes `yaml:"security,omitempty" json:"security,omitempty"`
	// DefaultSecurity names the schemes required by every operation
	DefaultSecurity []string `yaml:"defaultSecurity,omitempty" json:"defaultSecurity,omitempty"`

	// Schemas lists component schemas in declaration order
	Schemas Schemas `yaml:"schemas,omitempty" json:"schemas,omitempty"`

	Routes []Route `yaml:"routes,omitempty" json:"routes,omitempty"`
}

// Options mirrors the builder options a manifest may enable.
type Options struct {
	OperationIDs   bool `yaml:"operationIds,omitempty" json:"operationIds,omitempty"`
	StrictRequired bool `yaml:"strictRequired,omitempty" json:"strictRequired,omitempty"`
	BracePaths     bool `yaml:"bracePaths,omitempty" json:"bracePaths,omitempty"`
}

// Server is a servers[] entry.
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag is a tags[] entry.
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SecurityScheme describes one entry of the security map.
type SecurityScheme struct {
	Type         string `yaml:"type,omitempty" json:"type,omitempty"`
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	In           string `yaml:"in,omitempty" json:"in,omitempty"`
	Name         string `yaml:"name,omitempty" json:"name,omitempty"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
}

// NamedSecurityScheme pairs a scheme with its component name.
type NamedSecurityScheme struct {
	Name   string
	Scheme SecurityScheme
}

// SecuritySchemes is the security map, kept in document order.
type SecuritySchemes []NamedSecurityScheme

// UnmarshalYAML decodes a mapping of scheme name to scheme, preserving order.
func (s *SecuritySchemes) UnmarshalYAML(node *yaml.Node) error {
	return decodeMapping(node, "security", func(name string, value *yaml.Node) error {
		var scheme SecurityScheme
		if err := value.Decode(&scheme); err != nil {
			return err
		}
		*s = append(*s, NamedSecurityScheme{Name: name, Scheme: scheme})
		return nil
	})
}

// NamedSchema pairs a flat schema with its component name.
type NamedSchema struct {
	Name string
	Flat Flat
}

// Schemas is the schemas map, kept in document order.
type Schemas []NamedSchema

// UnmarshalYAML decodes a mapping of component name to flat schema,
// preserving order.
func (s *Schemas) UnmarshalYAML(node *yaml.Node) error {
	return decodeMapping(node, "schemas", func(name string, value *yaml.Node) error {
		var flat Flat
		if err := value.Decode(&flat); err != nil {
			return err
		}
		*s = append(*s, NamedSchema{Name: name, Flat: flat})
		return nil
	})
}

// Has reports whether a schema named name is declared.
func (s Schemas) Has(name string) bool {
	for _, e := range s {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Route describes one operation.
type Route struct {
	Method      string   `yaml:"method" json:"method"`
	Path        string   `yaml:"path" json:"path"`
	Tag         string   `yaml:"tag,omitempty" json:"tag,omitempty"`
	Summary     string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Desc        string   `yaml:"desc,omitempty" json:"desc,omitempty"`
	Req         Flat     `yaml:"req,omitempty" json:"req,omitempty"`
	Query       []string `yaml:"query,omitempty" json:"query,omitempty"`
	Header      []string `yaml:"header,omitempty" json:"header,omitempty"`
	Cookie      []string `yaml:"cookie,omitempty" json:"cookie,omitempty"`
	Security    string   `yaml:"security,omitempty" json:"security,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	OperationID string   `yaml:"operationId,omitempty" json:"operationId,omitempty"`

	// Responses maps status codes to flat schemas; an empty string means no
	// content. Keys are strings so JSON manifests decode too.
	Responses map[string]Flat `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// Flat is a flat-schema string. Decoding rejects unquoted YAML flow
// collections, which is what an unquoted "{id:i}" parses as.
type Flat string

// UnmarshalYAML accepts scalars only.
func (f *Flat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: flat schema must be a quoted string, got a YAML %s", node.Line, kindName(node.Kind))
	}
	if node.Tag == "!!null" {
		*f = ""
		return nil
	}
	*f = Flat(node.Value)
	return nil
}

func decodeMapping(node *yaml.Node, field string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping, got a YAML %s", node.Line, field, kindName(node.Kind))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if err := fn(key.Value, value); err != nil {
			return fmt.Errorf("%s.%s: %w", field, key.Value, err)
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "scalar"
}
