package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MapHost is an in-memory Host keyed by slash-separated paths. It backs
// the scan pipeline tests; production code uses OSHost.
type MapHost struct {
	Files map[string]string

	// Unreadable paths exist for resolution purposes but fail ReadText.
	Unreadable map[string]bool
}

// NewMapHost creates a MapHost over the given path→text map.
func NewMapHost(files map[string]string) *MapHost {
	return &MapHost{Files: files, Unreadable: map[string]bool{}}
}

// ReadText returns the stored text for path.
func (h *MapHost) ReadText(path string) (string, error) {
	key := filepath.ToSlash(path)

	if h.Unreadable[key] {
		return "", fmt.Errorf("read %s: access denied", path)
	}

	text, ok := h.Files[key]
	if !ok {
		return "", fmt.Errorf("read %s: no such file", path)
	}

	return text, nil
}

// Exists reports whether path is present in the map (readable or not).
func (h *MapHost) Exists(path string) bool {
	key := filepath.ToSlash(path)

	_, ok := h.Files[key]

	return ok || h.Unreadable[key]
}

// Rel strips a leading slash for display.
func (h *MapHost) Rel(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "/")
}
