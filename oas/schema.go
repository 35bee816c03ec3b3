package oas

import "slices"

// Schema is a node of a compiled schema tree.
//
// Only the subset of JSON Schema produced by the flat-schema grammar is
// modelled: scalar and container types, ordered object properties, array
// items (with a oneOf union for multi-alternative arrays), examples, and
// component references.
//
// Required has two encodings. Nodes compiled from a flat schema carry a
// boolean flag on each property node ("required": true). A strict export
// (see Standardize) replaces the flags with the object-level list of
// required property names that OpenAPI 3 validators expect.
type Schema struct {
	// Ref is a component reference such as "#/components/schemas/Pet"
	Ref string
	// Type is one of the canonical type names (see TypeString etc.)
	Type string
	// Description is free text; compiled root nodes start with an empty one
	Description string
	// Properties holds object properties in declaration order
	Properties *OrderedMap[*Schema]
	// Items is the array item schema
	Items *Schema
	// OneOf lists union alternatives (used for multi-alternative array items)
	OneOf []*Schema
	// Required is the per-node required flag produced by the flat grammar
	Required bool
	// RequiredProperties lists required property names (strict export)
	RequiredProperties []string
	// Example is the example value, already coerced to the node's type
	Example any
	// Default is the default value
	Default any
}

// IsRef reports whether the schema is a component reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// Property returns the named property schema, or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil {
		return nil
	}
	p, _ := s.Properties.Get(name)
	return p
}

func (s *Schema) fields() []field {
	fs := make([]field, 0, 8)
	if s.Ref != "" {
		fs = append(fs, field{"$ref", s.Ref})
	}
	if s.Type != "" {
		fs = append(fs, field{"type", s.Type})
	}
	if s.Description != "" {
		fs = append(fs, field{"description", s.Description})
	}
	if s.Properties != nil {
		fs = append(fs, field{"properties", s.Properties})
	}
	if s.Items != nil {
		fs = append(fs, field{"items", s.Items})
	}
	if len(s.OneOf) > 0 {
		fs = append(fs, field{"oneOf", s.OneOf})
	}
	switch {
	case len(s.RequiredProperties) > 0:
		fs = append(fs, field{"required", s.RequiredProperties})
	case s.Required:
		fs = append(fs, field{"required", true})
	}
	if s.Example != nil {
		fs = append(fs, field{"example", s.Example})
	}
	if s.Default != nil {
		fs = append(fs, field{"default", s.Default})
	}
	return fs
}

// MarshalJSON encodes the schema with a stable key order and properties in
// declaration order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return marshalFieldsJSON(s.fields())
}

// MarshalYAML encodes the schema with a stable key order and properties in
// declaration order.
func (s *Schema) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return fieldsNode(s.fields())
}

// Clone returns a deep copy of the schema tree.
// Example and Default values are scalars and are shared.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Properties = s.Properties.Clone((*Schema).Clone)
	out.Items = s.Items.Clone()
	if s.OneOf != nil {
		out.OneOf = make([]*Schema, len(s.OneOf))
		for i, alt := range s.OneOf {
			out.OneOf[i] = alt.Clone()
		}
	}
	out.RequiredProperties = slices.Clone(s.RequiredProperties)
	return &out
}

// Standardize returns a copy of the tree in which per-node required flags are
// folded into each object's RequiredProperties list, in property order.
// The receiver is not modified.
func (s *Schema) Standardize() *Schema {
	if s == nil {
		return nil
	}
	out := s.Clone()
	standardize(out)
	return out
}

func standardize(s *Schema) {
	if s == nil {
		return
	}
	if s.Properties != nil {
		var required []string
		for name, prop := range s.Properties.All() {
			if prop != nil && prop.Required {
				required = append(required, name)
			}
			standardize(prop)
		}
		if len(required) > 0 {
			s.RequiredProperties = required
		}
	}
	standardize(s.Items)
	for _, alt := range s.OneOf {
		standardize(alt)
	}
	s.Required = false
}
