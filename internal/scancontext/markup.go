package scancontext

import (
	"regexp"
	"strings"
)

// DefaultWindowLines bounds the backward walk for breadcrumb
// construction; it is the only cost bound per occurrence.
const DefaultWindowLines = 30

// Markup heuristics. Keys may be quoted or bare identifiers; tags are
// JSX-style, capitalized for components and lowercase for elements.
var (
	keyPattern       = regexp.MustCompile(`["']?([A-Za-z_$][A-Za-z0-9_$-]*)["']?\s*:`)
	componentPattern = regexp.MustCompile(`<([A-Z][A-Za-z0-9]*)`)
	elementPattern   = regexp.MustCompile(`<([a-z][a-z0-9-]*)`)
	classAttrPattern = regexp.MustCompile(`(?:className|class)\s*=\s*["']([^"']+)`)

	// boundaryPattern marks a function/component declaration; the
	// breadcrumb walk never crosses it, so context cannot leak from an
	// unrelated component above.
	boundaryPattern = regexp.MustCompile(
		`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\b` +
			`|^\s*(?:export\s+)?(?:const|let|var)\s+[A-Z][A-Za-z0-9]*\s*[:=]`,
	)
)

// Markup extracts (scope, property) for an occurrence in markup/script
// text. lines are the file's physical lines, occLine is 1-based, and
// linePrefix is the occurrence line's text before the occurrence.
func Markup(lines []string, occLine int, linePrefix string, windowLines int) (scope, property string) {
	return markupScope(lines, occLine, linePrefix, windowLines), markupProperty(linePrefix)
}

// markupProperty keeps the last (closest) key: match preceding the
// occurrence on its own line.
func markupProperty(linePrefix string) string {
	matches := keyPattern.FindAllStringSubmatch(linePrefix, -1)
	if len(matches) == 0 {
		return ""
	}

	return matches[len(matches)-1][1]
}

// markupScope builds a breadcrumb from the nearest enclosing component
// tag, element tag, and class attribute found in a bounded iterative
// walk over preceding lines. The walk stops at a declaration boundary.
func markupScope(lines []string, occLine int, linePrefix string, windowLines int) string {
	if windowLines <= 0 {
		windowLines = DefaultWindowLines
	}

	var component, element, class string

	scanLine := func(s string) {
		if component == "" {
			if m := lastSubmatch(componentPattern, s); m != "" {
				component = m
			}
		}

		if element == "" {
			if m := lastSubmatch(elementPattern, s); m != "" {
				element = m
			}
		}

		if class == "" {
			if m := lastSubmatch(classAttrPattern, s); m != "" {
				class = strings.Fields(m)[0]
			}
		}
	}

	// The occurrence's own line first (its prefix only), then upward.
	scanLine(linePrefix)

	for back := 1; back <= windowLines; back++ {
		idx := occLine - 1 - back
		if idx < 0 {
			break
		}

		line := lines[idx]
		if boundaryPattern.MatchString(line) {
			break
		}

		scanLine(line)
	}

	return assembleBreadcrumb(component, element, class)
}

// assembleBreadcrumb joins the found segments: component first, then
// the element with its class token attached. A component equal to the
// element tag is omitted; with no class the element stands alone.
func assembleBreadcrumb(component, element, class string) string {
	var tail string

	switch {
	case element != "" && class != "":
		tail = element + "." + class
	case element != "":
		tail = element
	case class != "":
		tail = "." + class
	}

	if component != "" && !strings.EqualFold(component, element) {
		if tail == "" {
			return component
		}

		return component + " > " + tail
	}

	return tail
}

func lastSubmatch(re *regexp.Regexp, s string) string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return ""
	}

	return matches[len(matches)-1][1]
}
