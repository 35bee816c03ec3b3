package flatschema

import (
	"math"
	"strconv"

	"github.com/erraggy/oasflat/oas"
)

// typeCodes maps the single-letter type codes to canonical type names.
var typeCodes = map[string]string{
	"i": oas.TypeInteger,
	"s": oas.TypeString,
	"b": oas.TypeBoolean,
	"n": oas.TypeNumber,
	"o": oas.TypeObject,
	"a": oas.TypeArray,
}

// TypeName resolves a type code ("i") or canonical type name ("integer") to
// the canonical name. The second result is false for anything else.
func TypeName(code string) (string, bool) {
	if name, ok := typeCodes[code]; ok {
		return name, true
	}
	if oas.IsCanonicalType(code) {
		return code, true
	}
	return "", false
}

// typeOrString is TypeName with the lenient fallback to string.
func typeOrString(code string) string {
	if name, ok := TypeName(code); ok {
		return name
	}
	return oas.TypeString
}

// coerceExample converts a default literal to a value of the given type.
// Numeric literals that do not parse are kept as text.
func coerceExample(typ, literal string) any {
	switch typ {
	case oas.TypeInteger, oas.TypeNumber:
		if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(literal, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
		return literal
	case oas.TypeBoolean:
		return literal == "true" || literal == "1"
	default:
		return literal
	}
}
