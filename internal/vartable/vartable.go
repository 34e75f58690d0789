// Package vartable collects custom-property definitions (--name: value;)
// across an import closure into a single name→value table. The first
// file in traversal order to define a name wins; later definitions of
// the same name are ignored for resolution. The table is built once per
// pass and passed into the scanner as an immutable snapshot.
package vartable

import (
	"regexp"

	"github.com/huescan-dev/huescan/internal/workspace"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

// DeclPattern matches one custom-property declaration. Group 1 is the
// name (with leading dashes), group 2 the raw right-hand side up to the
// terminating semicolon.
var DeclPattern = regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:\s*([^;{}]+);`)

// Definition is one retained variable definition.
type Definition struct {
	Name  string
	Value string
	File  string
}

// Table is the closure-wide first-writer-wins name→value table.
type Table struct {
	defs map[string]Definition
}

// Collect scans every file in traversal order and builds the table.
// A declaration only defines a variable when its right-hand side is a
// bare color token; anything computed (calc, var, gradients) records
// nothing.
func Collect(files []*workspace.File) *Table {
	table := &Table{defs: map[string]Definition{}}

	for _, file := range files {
		for _, m := range DeclPattern.FindAllStringSubmatch(file.Text, -1) {
			name, rhs := m[1], m[2]

			if !colorval.IsColor(rhs) {
				continue
			}

			if _, taken := table.defs[name]; taken {
				continue
			}

			token, ok := colorval.First(rhs)
			if !ok {
				continue
			}

			table.defs[name] = Definition{Name: name, Value: token.Value, File: file.Path}
		}
	}

	return table
}

// Resolve returns the retained color value for a variable name.
func (t *Table) Resolve(name string) (string, bool) {
	def, ok := t.defs[name]
	if !ok {
		return "", false
	}

	return def.Value, true
}

// Definition returns the full retained definition for a name.
func (t *Table) Definition(name string) (Definition, bool) {
	def, ok := t.defs[name]

	return def, ok
}

// Len returns the number of retained definitions.
func (t *Table) Len() int {
	return len(t.defs)
}
