// Package oasflat builds OpenAPI 3 documents from one-line "flat schema"
// strings.
//
// A flat schema describes a JSON shape compactly:
//
//	{id:i:1,name:s:rex,tags:?[s],owner:{email:s}}
//
// compiles to an object with a required integer id (example 1), a required
// string name (example "rex"), an optional string array tags, and a nested
// owner object.
//
// # Overview
//
// The library consists of these packages:
//
//   - flatschema: compile flat schemas and parameter specs into schema trees
//   - pathtemplate: extract path parameters from route templates
//     ("/users/{id:42}" or "/users/:id")
//   - builder: accumulate routes, components, and metadata into a document
//   - manifest: describe a whole API in a YAML file and replay it on a builder
//   - validator: check a generated document, semantically and with kin-openapi
//   - docserver: serve the document from a gin router
//   - oas: the document model, with order-preserving JSON and YAML encoding
//   - oaserrors: sentinel errors and typed error structs shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/oasflat
//
// # Quick Start
//
// Build a document in code:
//
//	b := builder.New(builder.WithTitle("Pet Store"), builder.WithOperationIDs(true))
//	pet, _ := b.RegisterSchema("Pet", "{id:i,name:s,tag:?s}")
//	b.Get("/pets/{id:42}").Tag("pets").Res(200, pet).Res(404, "")
//	b.Post("/pets", builder.RouteConfig{Req: pet, Responses: map[int]string{201: pet}})
//
//	if err := b.Validate(ctx); err != nil {
//		log.Fatal(err)
//	}
//	if err := b.WriteFile("openapi.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
// Or from a manifest:
//
//	m, err := manifest.LoadFile("api.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	b, err := m.Build()
//
// # Flat Schema Grammar
//
// Scalars are "name:type[:default]" where type is one of s (string),
// i (integer), n (number), b (boolean), o (object), a (array), or a
// reference such as #Pet. A "?" before the type marks the field optional,
// "+" marks it required explicitly. Objects are {field,field,...}. Arrays are [element]; an array
// of several fields becomes a oneOf union of items.
//
// # Error Handling
//
// Every package reports failures through the types in oaserrors. Use
// errors.Is with the sentinels (ErrMalformedSchema, ErrConfig, ErrReference,
// ErrValidation) or errors.As with the struct types for details. The builder
// accumulates errors and reports them all from Document.
//
// # Command-Line Interface
//
//	# Compile a flat schema
//	oasflat schema '{id:i,name:s}'
//
//	# Show the parameters of a path template
//	oasflat params '/users/{id:42}/posts/:slug'
//
//	# Build and validate a document from a manifest
//	oasflat build -validate -o openapi.json api.yaml
//
//	# Serve the document over HTTP
//	oasflat serve -addr :8080 api.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/oasflat/cmd/oasflat@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package oasflat
