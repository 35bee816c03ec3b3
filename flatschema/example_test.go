package flatschema_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasflat/flatschema"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

func ExampleCompile() {
	schema, err := flatschema.Compile("{id:i:1,name:s:rex,tags:?[s]}")
	if err != nil {
		panic(err)
	}
	data, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"type":"object","properties":{"id":{"type":"integer","required":true,"example":1},"name":{"type":"string","required":true,"example":"rex"},"tags":{"type":"array","items":{"type":"string","required":true}}}}
}

func ExampleCompile_malformed() {
	_, err := flatschema.Compile("{a:i")
	fmt.Println(errors.Is(err, oaserrors.ErrMalformedSchema))
	fmt.Println(err)
	// Output:
	// true
	// malformed schema: {a:i: unterminated '{'
}

func ExampleParseParameter() {
	p, err := flatschema.ParseParameter(oas.ParamInQuery, "limit:?i:20")
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Name, p.In, p.Required, p.Schema.Type, p.Schema.Example)
	// Output:
	// limit query false integer 20
}
