// Package linemap maps byte offsets in a text buffer to line/column
// positions and back. Lines are 1-based, columns 0-based.
package linemap

import (
	"sort"
	"strings"
)

// Index holds the precomputed line-start offsets of one text buffer.
// Building is O(N) in the text length; lookups are O(log L) in the
// line count.
type Index struct {
	starts []int
	length int
}

// New builds an Index for text. The empty string yields a single line
// starting at offset 0.
func New(text string) *Index {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	starts[0] = 0

	for i := range len(text) {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &Index{starts: starts, length: len(text)}
}

// LineCount returns the number of lines in the indexed text.
func (ix *Index) LineCount() int {
	return len(ix.starts)
}

// Position converts a byte offset to a (line, column) pair. Offsets are
// clamped to [0, len(text)]; any in-range offset is valid input.
func (ix *Index) Position(offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}

	if offset > ix.length {
		offset = ix.length
	}

	// Greatest line whose start is <= offset.
	idx := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	}) - 1

	return idx + 1, offset - ix.starts[idx]
}

// Offset converts a (line, column) pair back to a byte offset. Lines out
// of range are clamped; the column is not validated against the line
// length.
func (ix *Index) Offset(line, column int) int {
	if line < 1 {
		line = 1
	}

	if line > len(ix.starts) {
		line = len(ix.starts)
	}

	return ix.starts[line-1] + column
}

// LineStart returns the byte offset at which the given 1-based line
// begins.
func (ix *Index) LineStart(line int) int {
	return ix.Offset(line, 0)
}
