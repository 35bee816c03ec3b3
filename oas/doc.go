// Package oas models the subset of an OpenAPI 3 document that oasflat
// produces: paths and operations, parameters, request and response bodies,
// component schemas and security schemes, tags, and servers.
//
// Maps whose order is visible to readers (schema properties, paths,
// responses, components) are stored in an [OrderedMap] so that JSON and YAML
// output reproduces declaration order:
//
//	data, err := oas.EncodeJSON(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Compiled schemas mark required properties with a per-node "required": true
// flag. Call [Schema.Standardize] (or rewrite a whole document with
// [Document.RewriteSchemas]) to obtain the object-level "required" lists that
// OpenAPI 3 validators expect.
package oas
