// Package builder constructs OpenAPI 3 documents from flat-schema strings.
//
// A Builder owns one document. Routes are registered with a fluent API and
// described with the compact flat-schema grammar of the flatschema package:
//
//	b := builder.New(builder.WithTitle("Pet Store"))
//	b.AddServer("http://localhost:8080", "Local")
//
//	pet, _ := b.RegisterSchema("Pet", "{id:i:1,name:s:rex,tag:?s}")
//
//	b.Get("/pets/{id:1}").
//		Tag("pets").
//		Summary("Find a pet").
//		Res(200, pet).
//		Res(404, "{error:s}")
//
//	b.Post("/pets", builder.RouteConfig{
//		Tag:       "pets",
//		Req:       "#Pet",
//		Header:    []string{"x-request-id:?s"},
//		Responses: map[int]string{201: "#Pet"},
//	})
//
//	data, err := b.MarshalJSON()
//
// # Route identity
//
// A route is identified by its method and normalized path template. Example
// suffixes in brace tokens do not count: "/pets/{id:1}" and "/pets/{id}"
// return the same operation, and later calls merge into it. Path parameters
// are extracted from the template that first created the operation.
//
// # Bodies
//
// Request and response bodies take a flat schema, a component reference
// ("#/components/schemas/Pet"), or the shorthand "#Pet". Responses whose
// schema is a plain string are served as text/plain; everything else is
// application/json. An empty response body produces a response without
// content.
//
// # Errors
//
// A rejected call leaves the document untouched. The error is available from
// Route.Err and Builder.Err, and Document (as well as the Marshal and Write
// methods) returns all of them as BuilderErrors. Each *BuilderError matches
// oaserrors.ErrConfig and unwraps to its cause, such as
// oaserrors.ErrMalformedSchema or oaserrors.ErrReference.
//
// # Export
//
// By default compiled schemas keep the per-property "required": true flags
// of the flat grammar. WithStrictRequired exports object-level "required"
// lists instead, and WithBracePaths stores colon-style templates in brace
// form. Validate always checks the strict form with the validator package.
package builder
