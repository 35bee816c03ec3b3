package oas

// Parameter describes a single operation parameter.
// Required is always encoded so optional parameters read "required": false.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"` // "query", "header", "path", "cookie"
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required" json:"required"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Clone returns a deep copy of the parameter.
func (p *Parameter) Clone() *Parameter {
	if p == nil {
		return nil
	}
	out := *p
	out.Schema = p.Schema.Clone()
	return &out
}

// Example returns the example value of the parameter schema, if any.
func (p *Parameter) Example() any {
	if p == nil || p.Schema == nil {
		return nil
	}
	return p.Schema.Example
}
