package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary_EmptyData(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary(nil))
	assert.False(t, IsBinary([]byte{}))
}

func TestIsBinary_PureText(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary([]byte(".card { color: #fff; }\n")))
}

func TestIsBinary_NullByte(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBinary([]byte("hello\x00world")))
}

func TestIsBinary_NullBeyondSniffBoundary(t *testing.T) {
	t.Parallel()

	data := make([]byte, BinarySniffLength+1)
	for i := range data {
		data[i] = 'a'
	}

	data[BinarySniffLength] = 0x00

	assert.False(t, IsBinary(data))
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 0},
		{"single line no newline", "abc", 1},
		{"single line with newline", "abc\n", 1},
		{"two lines", "a\nb", 2},
		{"trailing newline", "a\nb\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CountLines([]byte(tt.data)))
		})
	}
}
