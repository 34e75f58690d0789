package importgraph

import (
	"path/filepath"
	"strings"

	"github.com/huescan-dev/huescan/internal/workspace"
)

// DefaultExtensions is the ordered candidate list appended to
// extensionless specifiers: stylesheet syntaxes first, then script and
// markup syntaxes. Order is part of the resolution contract.
var DefaultExtensions = []string{
	".css", ".scss", ".sass", ".less",
	".ts", ".tsx", ".js", ".jsx",
	".vue", ".svelte",
}

// indexBasename is the directory-style resolution fallback filename.
const indexBasename = "index"

// Resolver turns followable edges into canonical file paths. Alias and
// root-absolute specifiers resolve against Root; relative specifiers
// against the importing file's directory.
type Resolver struct {
	Host       workspace.Host
	Root       string
	Extensions []string
}

// NewResolver creates a Resolver over host rooted at root. A nil or
// empty extension list falls back to DefaultExtensions.
func NewResolver(host workspace.Host, root string, extensions []string) *Resolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Resolver{Host: host, Root: root, Extensions: extensions}
}

// Resolve returns the first existing candidate path for an edge, or
// false when no candidate exists. First match wins; remaining
// candidates are never consulted.
func (r *Resolver) Resolve(fromFile string, e Edge) (string, bool) {
	for _, candidate := range r.candidates(fromFile, e) {
		if r.Host.Exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// candidates produces the ordered candidate paths for one specifier.
// A specifier carrying an extension yields exactly one candidate;
// otherwise each configured extension is tried directly, then again
// under an index file inside the specifier path.
func (r *Resolver) candidates(fromFile string, e Edge) []string {
	base := r.base(fromFile, e.Specifier)

	if filepath.Ext(base) != "" {
		return []string{canonical(base)}
	}

	candidates := make([]string, 0, 2*len(r.Extensions))

	for _, ext := range r.Extensions {
		candidates = append(candidates, canonical(base+ext))
	}

	for _, ext := range r.Extensions {
		candidates = append(candidates, canonical(filepath.Join(base, indexBasename+ext)))
	}

	return candidates
}

// base maps a specifier onto an absolute filesystem path before
// extension probing.
func (r *Resolver) base(fromFile, spec string) string {
	for _, p := range aliasPrefixes {
		if rest, found := strings.CutPrefix(spec, p); found {
			return filepath.Join(r.Root, rest)
		}
	}

	if strings.HasPrefix(spec, "/") {
		return filepath.Join(r.Root, strings.TrimPrefix(spec, "/"))
	}

	return filepath.Join(filepath.Dir(fromFile), spec)
}

// canonical normalizes a path for visited-set identity.
func canonical(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
