// Package colorval defines the recognized color grammar (hex and
// rgb/rgba/hsl/hsla function notation), value normalization, and token
// matching over raw text. Matching is anchored to explicit regular
// patterns so behavior is reproducible without a CSS parser.
package colorval

import (
	"regexp"
	"strings"
)

// Hex digit counts accepted by the grammar, longest first so the regex
// alternation never splits a longer literal.
const (
	hexLenRGBA8 = 8
	hexLenRGB6  = 6
	hexLenRGBA4 = 4
	hexLenRGB3  = 3
)

// tokenPattern matches one color token: a hex literal or a
// rgb()/rgba()/hsl()/hsla() call whose arguments are plain numeric
// component syntax. Computed expressions (calc, var) never match.
var tokenPattern = regexp.MustCompile(
	`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{4}|[0-9a-fA-F]{3})` +
		`|(?:rgba?|hsla?)\(\s*[\d.,%\s/+-]+?\s*\)`,
)

// wholePattern anchors tokenPattern to a whole string.
var wholePattern = regexp.MustCompile(`^(?:` + tokenPattern.String() + `)$`)

// Match is one color token found in a text buffer, with its byte span.
type Match struct {
	Value string
	Start int
	End   int
}

// Normalize canonicalizes a color value for dedup comparison: lowercase
// with all whitespace removed. Idempotent for every input.
func Normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), ""))
}

// IsColor reports whether the trimmed string is exactly one token of the
// recognized color grammar.
func IsColor(s string) bool {
	return wholePattern.MatchString(strings.TrimSpace(s))
}

// First returns the first color token in s and its byte offset.
func First(s string) (Match, bool) {
	matches := FindAll(s)
	if len(matches) == 0 {
		return Match{}, false
	}

	return matches[0], true
}

// FindAll returns every color token in text in offset order. A hex
// literal followed by a further hex digit (e.g. five or nine digits) is
// rejected rather than truncated.
func FindAll(text string) []Match {
	var out []Match

	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if text[start] == '#' && end < len(text) && isHexDigit(text[end]) {
			continue
		}

		out = append(out, Match{Value: text[start:end], Start: start, End: end})
	}

	return out
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}
