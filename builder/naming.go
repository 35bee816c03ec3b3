package builder

import (
	"strconv"
	"strings"

	"github.com/erraggy/oasflat/pathtemplate"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.English, cases.NoLower)
	lowerCaser = cases.Lower(language.English)
)

// operationIDFor derives an operation ID from a method and path template:
//
//	get /users              -> getUsers
//	get /users/{id}         -> getUsersById
//	post /users/:id/avatar  -> postUsersByIdAvatar
//	delete /                -> deleteRoot
func operationIDFor(method, template string) string {
	var sb strings.Builder
	sb.WriteString(lowerCaser.String(method))

	tokens := pathtemplate.Tokens(template)
	next := 0
	wrote := false
	for _, seg := range strings.Split(template, "/") {
		if seg == "" {
			continue
		}
		if next < len(tokens) && isParamSegment(seg) {
			sb.WriteString("By")
			sb.WriteString(titleWord(tokens[next].Name))
			next++
			wrote = true
			continue
		}
		sb.WriteString(titleWord(seg))
		wrote = true
	}
	if !wrote {
		sb.WriteString("Root")
	}
	return sb.String()
}

func isParamSegment(seg string) bool {
	return strings.HasPrefix(seg, "{") || strings.HasPrefix(seg, ":")
}

// titleWord converts a path segment ("user-profiles", "v2_items") to a
// single capitalized identifier word ("UserProfiles", "V2Items").
func titleWord(seg string) string {
	return titleCaser.String(strcase.ToCamel(seg))
}

// uniqueOperationID appends a numeric suffix until id is unused.
func uniqueOperationID(id string, used func(string) bool) string {
	if !used(id) {
		return id
	}
	for n := 2; ; n++ {
		candidate := id + strconv.Itoa(n)
		if !used(candidate) {
			return candidate
		}
	}
}
