// Package theme classifies stylesheet lines by their enclosing theme
// context (dark, light, or base). Theme overrides in CSS are
// block-scoped and nest arbitrarily, so the classifier models brace
// nesting as a stack of markers rather than a single flag.
package theme

import (
	"regexp"
	"strings"
)

// Tag is the theme classification of a source line.
type Tag string

const (
	// TagBase applies when no enclosing conditional block tags the line.
	TagBase Tag = "base"

	// TagDark applies inside dark-mode conditional blocks.
	TagDark Tag = "dark"

	// TagLight applies inside light-mode conditional blocks.
	TagLight Tag = "light"

	// tagInherit marks braces opened without a trigger of their own;
	// the effective tag comes from further down the stack.
	tagInherit Tag = ""
)

// Trigger patterns: a conditional color-scheme block opening, or a
// root-scope conditional keyed by an explicit theme-mode attribute.
var (
	darkTriggerPattern  = regexp.MustCompile(`prefers-color-scheme\s*:\s*dark|\[\s*data-theme\s*[*^$]?=\s*["']?dark`)
	lightTriggerPattern = regexp.MustCompile(`prefers-color-scheme\s*:\s*light|\[\s*data-theme\s*[*^$]?=\s*["']?light`)

	colorSchemePattern = regexp.MustCompile(`prefers-color-scheme`)
	systemModePattern  = regexp.MustCompile(`:root\s*:not\s*\(\s*\[\s*data-theme|data-theme\s*=\s*["']?system`)
)

// FileThemes holds the per-line classification of one stylesheet.
type FileThemes struct {
	// SupportsSystem is set when the file combines a color-scheme
	// conditional with a root rule that excludes an explicit theme
	// attribute (or names a "system" mode): automatic OS-driven theme
	// switching is supported.
	SupportsSystem bool

	lineTags []Tag
}

// At returns the theme in effect at a 1-based line. Out-of-range lines
// are base.
func (f *FileThemes) At(line int) Tag {
	if f == nil || line < 1 || line > len(f.lineTags) {
		return TagBase
	}

	return f.lineTags[line-1]
}

// Classify scans text line by line, pushing one marker per opening
// brace and popping per closing brace. A line containing a trigger tags
// the first brace it opens; every other brace inherits. The tag
// recorded for a line is the nearest explicit marker on the stack after
// the line's braces are processed.
func Classify(text string) *FileThemes {
	lines := strings.Split(text, "\n")

	result := &FileThemes{lineTags: make([]Tag, len(lines))}

	var stack []Tag

	inBlockComment := false

	for i, raw := range lines {
		line, nowInBlock := stripComments(raw, inBlockComment)
		inBlockComment = nowInBlock

		trigger := triggerOf(line)

		for _, ch := range line {
			switch ch {
			case '{':
				stack = append(stack, trigger)
				trigger = tagInherit
			case '}':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		}

		result.lineTags[i] = effective(stack)
	}

	result.SupportsSystem = supportsSystem(text)

	return result
}

// triggerOf returns the explicit tag a line's trigger pattern implies,
// or inherit when the line opens no conditional theme block.
func triggerOf(line string) Tag {
	switch {
	case darkTriggerPattern.MatchString(line):
		return TagDark
	case lightTriggerPattern.MatchString(line):
		return TagLight
	default:
		return tagInherit
	}
}

// effective searches the stack top-down for the nearest explicit tag.
func effective(stack []Tag) Tag {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] != tagInherit {
			return stack[i]
		}
	}

	return TagBase
}

// supportsSystem computes the file-level automatic-theme flag.
func supportsSystem(text string) bool {
	return colorSchemePattern.MatchString(text) && systemModePattern.MatchString(text)
}

// stripComments removes line comments and block-comment content from
// one line, tracking block comments that continue past the line end so
// braces inside comments never reach the automaton.
func stripComments(line string, inBlock bool) (string, bool) {
	var out strings.Builder

	i := 0

	for i < len(line) {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return out.String(), true
			}

			i += end + 2
			inBlock = false

			continue
		}

		if strings.HasPrefix(line[i:], "/*") {
			inBlock = true
			i += 2

			continue
		}

		if strings.HasPrefix(line[i:], "//") {
			return out.String(), false
		}

		out.WriteByte(line[i])
		i++
	}

	return out.String(), false
}
