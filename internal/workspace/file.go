package workspace

import (
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/huescan-dev/huescan/pkg/linemap"
	"github.com/huescan-dev/huescan/pkg/textutil"
)

// Kind classifies a file's syntax for scanning strategy selection.
type Kind int

const (
	// KindMarkup covers script and markup syntaxes (js/ts/jsx/tsx, vue,
	// svelte, html). The markup context strategy applies.
	KindMarkup Kind = iota

	// KindStylesheet covers style-sheet syntaxes (css, scss, sass,
	// less). The stylesheet context strategy and theme classifier apply.
	KindStylesheet
)

// stylesheetLanguages are the enry language names treated as stylesheet
// syntax.
var stylesheetLanguages = map[string]bool{
	"CSS":  true,
	"SCSS": true,
	"Sass": true,
	"Less": true,
}

// stylesheetExtensions is the extension fallback when language
// detection is inconclusive.
var stylesheetExtensions = map[string]bool{
	".css":  true,
	".scss": true,
	".sass": true,
	".less": true,
}

// File is one source file visited during a scan pass: canonical path,
// raw text (read once), derived line index, and syntax kind. Files are
// not retained across passes.
type File struct {
	Path  string
	Text  string
	Lines *linemap.Index
	Kind  Kind
}

// NewFile builds the per-pass representation of a visited file.
func NewFile(path, text string) *File {
	return &File{
		Path:  path,
		Text:  text,
		Lines: linemap.New(text),
		Kind:  DetectKind(path, text),
	}
}

// LineCount returns the number of newline-delimited lines of text.
func (f *File) LineCount() int {
	return textutil.CountLines([]byte(f.Text))
}

// DetectKind classifies a file as stylesheet or markup/script syntax,
// preferring enry's language detection and falling back to the
// extension.
func DetectKind(path, text string) Kind {
	lang := enry.GetLanguage(filepath.Base(path), []byte(text))
	if stylesheetLanguages[lang] {
		return KindStylesheet
	}

	if lang == enry.OtherLanguage && stylesheetExtensions[strings.ToLower(filepath.Ext(path))] {
		return KindStylesheet
	}

	return KindMarkup
}

func isBinary(data []byte) bool {
	return textutil.IsBinary(data)
}
