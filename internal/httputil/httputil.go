// Package httputil provides HTTP method and status code helpers shared by the
// builder and the document model.
package httputil

import (
	"slices"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	MinStatusCode = 100 // Minimum valid HTTP status code
	MaxStatusCode = 599 // Maximum valid HTTP status code
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

var methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// NormalizeMethod lowercases and trims method and reports whether the result
// is an HTTP method a path item can hold.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	return m, slices.Contains(methods, m)
}

// standardStatusCodes contains RFC 9110 officially defined HTTP status codes.
var standardStatusCodes = map[int]bool{
	// 1xx Informational
	100: true, 101: true, 102: true, 103: true,
	// 2xx Success
	200: true, 201: true, 202: true, 203: true, 204: true, 205: true,
	206: true, 207: true, 208: true, 226: true,
	// 3xx Redirection
	300: true, 301: true, 302: true, 303: true, 304: true, 305: true,
	307: true, 308: true,
	// 4xx Client Error
	400: true, 401: true, 402: true, 403: true, 404: true, 405: true,
	406: true, 407: true, 408: true, 409: true, 410: true, 411: true,
	412: true, 413: true, 414: true, 415: true, 416: true, 417: true,
	418: true, 421: true, 422: true, 423: true, 424: true, 425: true,
	426: true, 428: true, 429: true, 431: true, 451: true,
	// 5xx Server Error
	500: true, 501: true, 502: true, 503: true, 504: true, 505: true,
	506: true, 507: true, 508: true, 510: true, 511: true,
}

// ValidateStatusCode reports whether code is in the 100-599 range.
func ValidateStatusCode(code int) bool {
	return code >= MinStatusCode && code <= MaxStatusCode
}

// IsStandardStatusCode reports whether code is defined by RFC 9110.
func IsStandardStatusCode(code int) bool {
	return standardStatusCodes[code]
}

// StatusKey formats code as a responses map key ("200").
func StatusKey(code int) string {
	return strconv.Itoa(code)
}

// ParseStatusKey parses a responses map key. The second result is false for
// keys that are not a valid numeric status code ("default", "2XX", "abc").
func ParseStatusKey(key string) (int, bool) {
	code, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || !ValidateStatusCode(code) {
		return 0, false
	}
	return code, true
}
