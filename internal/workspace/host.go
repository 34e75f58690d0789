// Package workspace abstracts the host filesystem boundary for one scan
// pass: reading file text, probing import candidates, and producing
// display paths. All scan components consume files through this package
// so tests can substitute an in-memory host.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotText is returned by ReadText when a file exists but is not
// usable text (binary content).
var ErrNotText = errors.New("file is not text")

// Host is the filesystem collaborator a scan pass reads through.
// Failures at this boundary are soft: callers skip the file and
// continue.
type Host interface {
	// ReadText returns the full text of a file.
	ReadText(path string) (string, error)

	// Exists reports whether a path exists and is a regular file. Used
	// only during import-candidate resolution.
	Exists(path string) bool

	// Rel returns a workspace-relative display path. Cosmetic only.
	Rel(path string) string
}

// OSHost is the production Host backed by the operating system, rooted
// at a workspace directory used for display paths.
type OSHost struct {
	root string
}

// NewOSHost creates an OSHost rooted at dir.
func NewOSHost(dir string) *OSHost {
	return &OSHost{root: dir}
}

// ReadText reads a file and rejects binary content.
func (h *OSHost) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if isBinary(data) {
		return "", ErrNotText
	}

	return string(data), nil
}

// Exists reports whether path is an existing regular file.
func (h *OSHost) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Rel returns path relative to the workspace root, falling back to the
// input when no relative form exists.
func (h *OSHost) Rel(path string) string {
	rel, err := filepath.Rel(h.root, path)
	if err != nil {
		return path
	}

	return rel
}
