package flatschema

import (
	"strconv"
	"strings"
)

// placeholderSigil starts every placeholder token. It cannot occur in a
// compiled input, which is rejected when it holds a NUL byte.
const placeholderSigil = "\x00$"

// blocks is the per-compile side table of extracted nested blocks.
// Entry n holds the fragment substituted by placeholder n, delimiters
// included; fragments may themselves hold placeholders of earlier entries.
type blocks []string

// extract replaces nested blocks with placeholders, innermost first, until no
// bracket remains. It returns the flattened string and the side table.
func extract(s string) (string, blocks, error) {
	var table blocks
	fail := func(fragment, message string) (string, blocks, error) {
		return "", nil, &syntaxError{fragment: table.expand(fragment), message: message}
	}
	for {
		closer := strings.IndexAny(s, "}]")
		if closer < 0 {
			break
		}
		opener := strings.LastIndexAny(s[:closer], "{[")
		if opener < 0 {
			return fail(s[:closer+1], "unmatched "+quoteByte(s[closer]))
		}
		if !matches(s[opener], s[closer]) {
			return fail(s[opener:closer+1], "mismatched "+quoteByte(s[opener])+" and "+quoteByte(s[closer]))
		}
		token := placeholder(len(table))
		table = append(table, s[opener:closer+1])
		s = s[:opener] + token + s[closer+1:]
	}
	if i := strings.IndexAny(s, "{["); i >= 0 {
		return fail(s[i:], "unterminated "+quoteByte(s[i]))
	}
	return s, table, nil
}

func quoteByte(b byte) string {
	return strconv.QuoteRune(rune(b))
}

func matches(opener, closer byte) bool {
	return (opener == '{' && closer == '}') || (opener == '[' && closer == ']')
}

func placeholder(n int) string {
	return placeholderSigil + strconv.Itoa(n)
}

// lookup returns the fragment for s when s is exactly one placeholder token.
func (t blocks) lookup(s string) (string, bool) {
	rest, ok := strings.CutPrefix(s, placeholderSigil)
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || n >= len(t) || strconv.Itoa(n) != rest {
		return "", false
	}
	return t[n], true
}

// expand restores the original text of s by substituting placeholders back.
// It is used to report offending fragments as the caller wrote them.
func (t blocks) expand(s string) string {
	for strings.Contains(s, placeholderSigil) {
		i := strings.Index(s, placeholderSigil)
		j := i + len(placeholderSigil)
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		frag, ok := t.lookup(s[i:j])
		if !ok {
			// unknown token; drop the sigil so the loop terminates
			frag = "$" + s[i+len(placeholderSigil):j]
		}
		s = s[:i] + frag + s[j:]
	}
	return s
}

// syntaxError is an internal grammar violation, converted to a
// MalformedSchemaError by Compile once the whole input is known.
type syntaxError struct {
	fragment string
	message  string
}

func (e *syntaxError) Error() string {
	return e.message
}
