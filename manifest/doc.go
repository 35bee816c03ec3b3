// Package manifest loads API descriptions written as YAML (or JSON) files
// and replays them onto a builder.Builder.
//
// A manifest names the document metadata, component schemas as flat-schema
// strings, and one entry per route:
//
//	title: Pet Store
//	version: 1.0.0
//	options:
//	  operationIds: true
//	security:
//	  bearerAuth: {type: http, bearerFormat: JWT}
//	schemas:
//	  Pet: "{id:i,name:s,tag:?s}"
//	routes:
//	  - method: get
//	    path: /pets/{id:42}
//	    tag: pets
//	    security: bearerAuth
//	    responses:
//	      200: "#Pet"
//	      404: ""
//
// Flat schemas contain braces and brackets, which YAML reads as flow
// collections, so they must be quoted. "#Name" bodies expand to
// "#/components/schemas/Name".
//
// Map-valued sections (security, schemas) keep their declaration order in
// the generated document.
//
// # Usage
//
//	m, err := manifest.LoadFile("api.yaml")
//	if err != nil {
//		return err
//	}
//	b, err := m.Build()
//	if err != nil {
//		return err
//	}
//	return b.WriteFile("openapi.json")
package manifest
