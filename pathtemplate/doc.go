// Package pathtemplate extracts path parameters from URL path templates.
//
// A template is either brace-style or colon-style, never both. Brace tokens
// take precedence: colon tokens are only recognized when the template holds
// no brace token at all.
//
//	/users/{id}          brace token "id"
//	/users/{id:42}       brace token "id" with example "42"
//	/users/:id           colon token "id"
//
// Example suffixes seed the generated documentation only. They never take
// part in route identity: [NormalizeKey] strips them so that "/users/{id:42}"
// and "/users/{id}" name the same route.
//
// Malformed tokens are treated as literal path text; no function in this
// package fails.
package pathtemplate
