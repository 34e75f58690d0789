package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huescan-dev/huescan/internal/theme"
	"github.com/huescan-dev/huescan/internal/vartable"
	"github.com/huescan-dev/huescan/internal/workspace"
)

func scanStylesheet(t *testing.T, path, text string) []Occurrence {
	t.Helper()

	file := workspace.NewFile(path, text)
	table := vartable.Collect([]*workspace.File{file})
	themes := theme.Classify(text)

	return ScanFile(file, table, themes, Options{})
}

func TestScanFile_DefinitionAndUsage(t *testing.T) {
	t.Parallel()

	occurrences := scanStylesheet(t, "/ws/a.css", `:root {
  --border: #aabbcc;
}
.pair-card {
  border: 1px solid var(--border);
}
`)

	require.Len(t, occurrences, 2)

	def := occurrences[0]
	assert.Equal(t, KindVariable, def.Kind)
	assert.Equal(t, "--border", def.Name)
	assert.Equal(t, "#aabbcc", def.Value)
	assert.True(t, def.Context.IsDefinition)
	assert.Equal(t, 2, def.Range.Line)
	assert.Equal(t, ":root", def.Context.Scope)
	assert.Equal(t, "--border", def.Context.Property)

	use := occurrences[1]
	assert.Equal(t, KindVariable, use.Kind)
	assert.Equal(t, "--border", use.Name)
	assert.Equal(t, "#aabbcc", use.Value)
	assert.False(t, use.Context.IsDefinition)
	assert.Equal(t, 5, use.Range.Line)
	assert.Equal(t, ".pair-card", use.Context.Scope)
	assert.Equal(t, "border", use.Context.Property)
}

func TestScanFile_DefinitionValueNotDoubleCountedAsLiteral(t *testing.T) {
	t.Parallel()

	occurrences := scanStylesheet(t, "/ws/a.css", `:root { --fg: #123456; }
.x { color: #123456; }
`)

	var variables, literals int

	for _, occ := range occurrences {
		switch occ.Kind {
		case KindVariable:
			variables++
		case KindLiteral:
			literals++
		}
	}

	// One definition, one independent literal; the definition's value
	// text is excluded from the literal pass.
	assert.Equal(t, 1, variables)
	assert.Equal(t, 1, literals)
}

func TestScanFile_UndefinedReferenceEmitsNothing(t *testing.T) {
	t.Parallel()

	occurrences := scanStylesheet(t, "/ws/a.css", `.x { color: var(--undefined-token); }`)

	assert.Empty(t, occurrences)
}

func TestScanFile_LiteralPositions(t *testing.T) {
	t.Parallel()

	occurrences := scanStylesheet(t, "/ws/a.css", `.x {
  color: #fff;
}
`)

	require.Len(t, occurrences, 1)

	occ := occurrences[0]
	assert.Equal(t, KindLiteral, occ.Kind)
	assert.Equal(t, "#fff", occ.Value)
	assert.Equal(t, 2, occ.Range.Line)
	assert.Equal(t, 9, occ.Range.StartColumn)
	assert.Equal(t, 13, occ.Range.EndColumn)
	assert.Equal(t, ".x", occ.Context.Scope)
	assert.Equal(t, "color", occ.Context.Property)
}

func TestScanFile_ThemeTagOnDefinitions(t *testing.T) {
	t.Parallel()

	occurrences := scanStylesheet(t, "/ws/a.css", `:root { --fg: #000000; }
@media (prefers-color-scheme: dark) {
  :root { --fg: #ffffff; }
}
`)

	require.Len(t, occurrences, 2)
	assert.Equal(t, theme.TagBase, occurrences[0].Context.Theme)
	assert.Equal(t, theme.TagDark, occurrences[1].Context.Theme)
}

func TestScanFile_DuplicateDefinitionStillRecorded(t *testing.T) {
	t.Parallel()

	// The table retains the first writer, but both declarations are
	// occurrences in their own right.
	occurrences := scanStylesheet(t, "/ws/a.css", `:root { --fg: #111111; }
.alt { --fg: #222222; }
`)

	require.Len(t, occurrences, 2)
	assert.Equal(t, "#111111", occurrences[0].Value)
	assert.Equal(t, "#222222", occurrences[1].Value)
	assert.True(t, occurrences[1].Context.IsDefinition)
}

func TestScanFile_MarkupStrategy(t *testing.T) {
	t.Parallel()

	file := workspace.NewFile("/ws/App.tsx", `function App() {
  return (
    <div className="shell dark">
      <header style={{ background: "#10141a" }} />
    </div>
  );
}
`)

	occurrences := ScanFile(file, vartable.Collect(nil), nil, Options{})

	require.Len(t, occurrences, 1)

	occ := occurrences[0]
	assert.Equal(t, KindLiteral, occ.Kind)
	assert.Equal(t, "#10141a", occ.Value)
	assert.Equal(t, "header.shell", occ.Context.Scope)
	assert.Equal(t, "background", occ.Context.Property)
	assert.Equal(t, theme.TagBase, occ.Context.Theme)
}

func TestSpanSet_Overlaps(t *testing.T) {
	t.Parallel()

	set := &spanSet{}
	set.add(10, 17)
	set.add(30, 34)

	assert.True(t, set.overlaps(10, 17))
	assert.True(t, set.overlaps(12, 14))
	assert.True(t, set.overlaps(5, 11))
	assert.True(t, set.overlaps(33, 40))
	assert.False(t, set.overlaps(0, 10))
	assert.False(t, set.overlaps(17, 30))
	assert.False(t, set.overlaps(40, 50))
}
