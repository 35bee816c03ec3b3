package oas

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// field is a single key/value pair of an ordered object.
type field struct {
	key   string
	value any
}

// marshalFieldsJSON writes fields as a JSON object, in order.
func marshalFieldsJSON(fs []field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("oas: encoding %q: %w", f.key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fieldsNode builds a YAML mapping node from fields, in order.
func fieldsNode(fs []field) (*yaml.Node, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(fs)*2),
	}
	for _, f := range fs {
		var val yaml.Node
		if err := val.Encode(f.value); err != nil {
			return nil, fmt.Errorf("oas: encoding %q: %w", f.key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			&val,
		)
	}
	return node, nil
}

// EncodeJSON encodes v as indented JSON.
// Ordered maps and schemas keep their declaration order.
func EncodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// EncodeYAML encodes v as YAML.
// Ordered maps and schemas keep their declaration order.
func EncodeYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
