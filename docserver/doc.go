// Package docserver serves a builder's document over HTTP with gin.
//
// Register mounts GET /openapi.json and GET /openapi.yaml. Each request
// rebuilds the document, so routes added through Server.Update show up on
// the next fetch. A builder that has recorded errors yields HTTP 500 with a
// JSON body {"error": "..."}.
//
//	b := builder.New(builder.WithTitle("Pet Store"))
//	b.Get("/pets", builder.RouteConfig{Responses: map[int]string{200: "[{id:i}]"}})
//
//	r := gin.Default()
//	docserver.Register(r, b, docserver.WithStrict(true))
//	_ = r.Run(":8080")
package docserver
