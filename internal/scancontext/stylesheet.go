// Package scancontext infers the semantic context of a color occurrence:
// the enclosing selector or component scope and the property consuming
// the value. Two mutually exclusive strategies exist, selected by file
// kind. Both degrade gracefully: a scope or property that cannot be
// determined is the empty string, rendered as "unknown" downstream.
package scancontext

import (
	"regexp"
	"strings"
)

// Unknown is the display form of an unresolved scope or property.
const Unknown = "unknown"

// propertyPattern matches the identifier immediately preceding a colon
// at the start of a stylesheet line (standard properties and custom
// properties alike).
var propertyPattern = regexp.MustCompile(`^\s*([A-Za-z-][A-Za-z0-9_-]*)\s*:`)

// conditionalPrefixes open blocks that wrap rules rather than naming
// them; their text is never a scope.
var conditionalPrefixes = []string{"@media", "@supports", "@container", "@layer"}

var (
	blockCommentPattern = regexp.MustCompile(`/\*.*?\*/`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// Stylesheet extracts (scope, property) for an occurrence at a byte
// offset in stylesheet text. The scope is the selector of the nearest
// enclosing non-conditional block; the property is read off the
// occurrence's own line.
func Stylesheet(text string, lineStart, offset int) (scope, property string) {
	return stylesheetScope(text, offset), stylesheetProperty(text[lineStart:offset])
}

func stylesheetProperty(linePrefix string) string {
	m := propertyPattern.FindStringSubmatch(linePrefix)
	if m == nil {
		return ""
	}

	return m[1]
}

// stylesheetScope walks backward from offset counting unmatched braces.
// Conditional blocks (@media and friends) are transparent: the walk
// continues outward past them.
func stylesheetScope(text string, offset int) string {
	depth := 0

	for i := offset - 1; i >= 0; i-- {
		switch text[i] {
		case '}':
			depth++
		case '{':
			if depth > 0 {
				depth--

				continue
			}

			selector := cleanSelector(selectorBefore(text, i))
			if selector == "" || isConditional(selector) {
				continue
			}

			return selector
		}
	}

	return ""
}

// selectorBefore returns the raw text between the previous block or
// statement boundary and the opening brace at braceIdx.
func selectorBefore(text string, braceIdx int) string {
	start := 0

	for i := braceIdx - 1; i >= 0; i-- {
		ch := text[i]
		if ch == '}' || ch == '{' || ch == ';' {
			start = i + 1

			break
		}
	}

	return text[start:braceIdx]
}

// cleanSelector strips comments and collapses whitespace.
func cleanSelector(raw string) string {
	noComments := blockCommentPattern.ReplaceAllString(raw, " ")

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(noComments, " "))
}

func isConditional(selector string) bool {
	for _, p := range conditionalPrefixes {
		if strings.HasPrefix(selector, p) {
			return true
		}
	}

	return false
}
