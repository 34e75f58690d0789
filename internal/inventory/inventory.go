// Package inventory deduplicates and aggregates per-file color
// occurrences into the user-facing inventory: unique color entries,
// grouped by file, in a deterministic order.
package inventory

import (
	"sort"
	"strings"

	"github.com/huescan-dev/huescan/internal/scanner"
	"github.com/huescan-dev/huescan/internal/theme"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

// EntryKind is the dedup family of an entry.
type EntryKind string

const (
	// EntryVariable entries key on name + normalized value + theme, so
	// a dark-mode and light-mode definition of one name never collapse.
	EntryVariable EntryKind = "variable"

	// EntryLiteral entries key on file + normalized value.
	EntryLiteral EntryKind = "literal"
)

// Entry is one deduplicated color: every occurrence in it normalizes to
// the same value under the dedup key. The occurrence list is append-only
// during aggregation and read-only afterward.
type Entry struct {
	Kind        EntryKind
	Name        string
	Value       string
	Theme       theme.Tag
	Occurrences []scanner.Occurrence
}

// Definitions returns the occurrences that define this color.
func (e *Entry) Definitions() []scanner.Occurrence {
	return e.filter(true)
}

// Usages returns the occurrences that consume this color.
func (e *Entry) Usages() []scanner.Occurrence {
	return e.filter(false)
}

func (e *Entry) filter(definitions bool) []scanner.Occurrence {
	var out []scanner.Occurrence

	for _, occ := range e.Occurrences {
		if occ.Context.IsDefinition == definitions {
			out = append(out, occ)
		}
	}

	return out
}

// FileEntry is an entry viewed from one file: the shared entry plus the
// occurrences restricted to that file.
type FileEntry struct {
	Entry       *Entry
	Occurrences []scanner.Occurrence
}

// FileGroup partitions the inventory by file. Holds no state of its
// own; it is a view over the entry list.
type FileGroup struct {
	File    string
	Display string
	Entries []FileEntry
}

// UniqueCount returns the number of distinct entries visible in this
// file.
func (g *FileGroup) UniqueCount() int {
	return len(g.Entries)
}

// Inventory is the final result of one scan pass.
type Inventory struct {
	Root        string
	RootDisplay string

	Entries []*Entry
	Groups  []FileGroup

	// Truncated is set when the import walk hit the file cap.
	Truncated bool

	// SupportsSystemTheme is set when any stylesheet in the closure
	// signals OS-driven theme switching.
	SupportsSystemTheme bool

	FilesScanned int
	BytesScanned int
	LinesScanned int
}

// TotalUnique returns the number of deduplicated entries.
func (inv *Inventory) TotalUnique() int {
	return len(inv.Entries)
}

// keySep cannot appear in names, values, or paths after normalization.
const keySep = "\x00"

// Aggregate merges occurrences into unique entries and file groups.
// fileOrder is the BFS visitation order, root first; it fixes group
// ordering and makes the entry ordering reproducible.
func Aggregate(root string, fileOrder []string, occurrences []scanner.Occurrence, display func(string) string) *Inventory {
	entries := map[string]*Entry{}

	var ordered []*Entry

	for _, occ := range occurrences {
		key, entry := entryFor(occ)

		existing, ok := entries[key]
		if !ok {
			entries[key] = entry
			ordered = append(ordered, entry)
			existing = entry
		}

		existing.Occurrences = append(existing.Occurrences, occ)
	}

	inv := &Inventory{
		Root:        root,
		RootDisplay: display(root),
		Entries:     ordered,
	}

	inv.buildGroups(fileOrder, display)
	inv.sortEntries()

	return inv
}

// entryFor computes the dedup key and prototype entry of an occurrence.
func entryFor(occ scanner.Occurrence) (string, *Entry) {
	normalized := colorval.Normalize(occ.Value)

	if occ.Kind == scanner.KindVariable {
		key := strings.Join([]string{
			string(EntryVariable), occ.Name, normalized, string(occ.Context.Theme),
		}, keySep)

		return key, &Entry{
			Kind:  EntryVariable,
			Name:  occ.Name,
			Value: normalized,
			Theme: occ.Context.Theme,
		}
	}

	key := strings.Join([]string{string(EntryLiteral), occ.File, normalized}, keySep)

	return key, &Entry{Kind: EntryLiteral, Value: normalized}
}

// buildGroups partitions entries by file: root first, remaining files
// alphabetical by display path.
func (inv *Inventory) buildGroups(fileOrder []string, display func(string) string) {
	perFile := map[string][]FileEntry{}

	for _, entry := range inv.Entries {
		byFile := map[string][]scanner.Occurrence{}

		for _, occ := range entry.Occurrences {
			byFile[occ.File] = append(byFile[occ.File], occ)
		}

		for file, occs := range byFile {
			perFile[file] = append(perFile[file], FileEntry{Entry: entry, Occurrences: occs})
		}
	}

	files := make([]string, 0, len(fileOrder))
	files = append(files, fileOrder...)

	sort.SliceStable(files, func(i, j int) bool {
		if files[i] == inv.Root || files[j] == inv.Root {
			return files[i] == inv.Root && files[j] != inv.Root
		}

		return display(files[i]) < display(files[j])
	})

	for _, file := range files {
		fileEntries := perFile[file]
		if len(fileEntries) == 0 {
			continue
		}

		sortFileEntries(fileEntries)

		inv.Groups = append(inv.Groups, FileGroup{
			File:    file,
			Display: display(file),
			Entries: fileEntries,
		})
	}
}

// sortFileEntries orders a group: variables before literals, then
// alphabetical by name/value, then by first line in the file.
func sortFileEntries(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.Entry.Kind != b.Entry.Kind {
			return a.Entry.Kind == EntryVariable
		}

		aKey, bKey := a.Entry.sortName(), b.Entry.sortName()
		if aKey != bKey {
			return aKey < bKey
		}

		return a.Occurrences[0].Range.Line < b.Occurrences[0].Range.Line
	})
}

// sortEntries fixes the global entry order the same way, using the
// earliest occurrence line as the final tie-break.
func (inv *Inventory) sortEntries() {
	sort.SliceStable(inv.Entries, func(i, j int) bool {
		a, b := inv.Entries[i], inv.Entries[j]

		if a.Kind != b.Kind {
			return a.Kind == EntryVariable
		}

		aKey, bKey := a.sortName(), b.sortName()
		if aKey != bKey {
			return aKey < bKey
		}

		return a.Occurrences[0].Range.Line < b.Occurrences[0].Range.Line
	})
}

func (e *Entry) sortName() string {
	if e.Kind == EntryVariable {
		return e.Name
	}

	return e.Value
}
