package linemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_EmptyText(t *testing.T) {
	t.Parallel()

	ix := New("")

	assert.Equal(t, 1, ix.LineCount())

	line, col := ix.Position(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)
}

func TestPosition_MultiLine(t *testing.T) {
	t.Parallel()

	text := "abc\ndef\n\nghi"
	ix := New(text)

	tests := []struct {
		name   string
		offset int
		line   int
		column int
	}{
		{"start of text", 0, 1, 0},
		{"middle of first line", 2, 1, 2},
		{"newline belongs to its line", 3, 1, 3},
		{"start of second line", 4, 2, 0},
		{"empty line", 8, 3, 0},
		{"start of last line", 9, 4, 0},
		{"end of text", len(text), 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, col := ix.Position(tt.offset)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, col)
		})
	}
}

func TestPosition_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	ix := New("ab\ncd")

	line, col := ix.Position(-5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)

	line, col = ix.Position(1000)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
}

func TestOffset_RoundTrip(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree\n"
	ix := New(text)

	for offset := range len(text) + 1 {
		line, col := ix.Position(offset)
		assert.Equal(t, offset, ix.Offset(line, col))
	}
}

func TestLineCount_TrailingNewline(t *testing.T) {
	t.Parallel()

	// A trailing newline opens one more (empty) line.
	assert.Equal(t, 3, New("a\nb\n").LineCount())
	assert.Equal(t, 2, New("a\nb").LineCount())
}

func TestLineStart_LargeText(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("x\n", 1000)
	ix := New(text)

	assert.Equal(t, 0, ix.LineStart(1))
	assert.Equal(t, 2, ix.LineStart(2))
	assert.Equal(t, 1998, ix.LineStart(1000))
}
