// Package flatschema compiles flat-schema strings into OpenAPI schema trees.
//
// A flat schema describes a JSON shape in one line:
//
//	{id:i:1,name:s:rex,tags:?[s],owner:{email:s}}
//
// # Grammar
//
// An object literal {k1:spec1,k2:spec2} lists properties in output order. A
// key without a spec ({hello,world}) is a required string. An array literal
// [spec] holds a single item type; [spec1,spec2] with distinct alternatives
// produces a oneOf union of item schemas. Array elements may omit the name
// ([i], [{a:s}]).
//
// A scalar spec is name:type:default. The type is a code (i, s, b, n, o, a),
// a canonical type name (integer, string, boolean, number, object, array), a
// nested literal, or a component reference (#/components/schemas/Pet, or
// the #Pet shorthand). A leading '?' marks the node optional and a leading
// '+' marks it explicitly required; nodes are required by default. Unknown type codes fall back to
// string. The default is everything after the second colon and becomes the
// node's example, coerced to the node type:
//
//	age:i:21        -> {"type": "integer", "required": true, "example": 21}
//	flag:?b:1       -> {"type": "boolean", "example": true}
//	url:s:http://x  -> {"type": "string", "required": true, "example": "http://x"}
//
// Whitespace is insignificant and removed before parsing.
//
// # Errors
//
// Unbalanced or mismatched brackets and scalars that cannot be classified
// fail with *oaserrors.MalformedSchemaError, which matches
// oaserrors.ErrMalformedSchema:
//
//	if _, err := flatschema.Compile("{a:i"); errors.Is(err, oaserrors.ErrMalformedSchema) {
//		// handle malformed input
//	}
//
// # Parameters
//
// [ParseParameter] applies the same grammar to query, header, and cookie
// parameter specs such as "limit:?i:10".
//
// Compile and ParseParameter are pure and safe for concurrent use.
package flatschema
