package vartable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huescan-dev/huescan/internal/workspace"
)

func filesFrom(pairs ...[2]string) []*workspace.File {
	files := make([]*workspace.File, 0, len(pairs))
	for _, p := range pairs {
		files = append(files, workspace.NewFile(p[0], p[1]))
	}

	return files
}

func TestCollect_BareColorDefinitions(t *testing.T) {
	t.Parallel()

	table := Collect(filesFrom([2]string{"/ws/a.css", `
:root {
  --border: #aabbcc;
  --accent: rgb(10, 20, 30);
  --shade: hsl(120, 50%, 50%);
}
`}))

	require.Equal(t, 3, table.Len())

	v, ok := table.Resolve("--border")
	require.True(t, ok)
	assert.Equal(t, "#aabbcc", v)

	v, ok = table.Resolve("--accent")
	require.True(t, ok)
	assert.Equal(t, "rgb(10, 20, 30)", v)
}

func TestCollect_ComputedValuesRecordNothing(t *testing.T) {
	t.Parallel()

	table := Collect(filesFrom([2]string{"/ws/a.css", `
:root {
  --pad: calc(100% - 2px);
  --alias: var(--border);
  --shadow: 0 1px 2px #00000033;
  --plain: 12px;
}
`}))

	assert.Equal(t, 0, table.Len())
}

func TestCollect_FirstWriterWinsAcrossFiles(t *testing.T) {
	t.Parallel()

	table := Collect(filesFrom(
		[2]string{"/ws/first.css", `:root { --accent: #111111; }`},
		[2]string{"/ws/second.css", `:root { --accent: #222222; }`},
	))

	def, ok := table.Definition("--accent")
	require.True(t, ok)
	assert.Equal(t, "#111111", def.Value)
	assert.Equal(t, "/ws/first.css", def.File)
}

func TestCollect_FirstWriterWinsWithinFile(t *testing.T) {
	t.Parallel()

	table := Collect(filesFrom([2]string{"/ws/a.css", `
:root { --fg: #fff; }
.dark { --fg: #000; }
`}))

	v, ok := table.Resolve("--fg")
	require.True(t, ok)
	assert.Equal(t, "#fff", v)
}

func TestResolve_UndefinedName(t *testing.T) {
	t.Parallel()

	table := Collect(nil)

	_, ok := table.Resolve("--undefined-token")
	assert.False(t, ok)
}
