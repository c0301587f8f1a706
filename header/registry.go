// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "strings"

// Markers open and close the block comment a header is wrapped in.
type Markers struct {
	Open  string
	Close string
}

// Registry maps file extensions, including the leading dot, to the comment
// markers used for files with that extension.
type Registry map[string]Markers

// DefaultRegistry returns the registry of supported file types.
func DefaultRegistry() Registry {
	return Registry{
		".cs":    {Open: "/*", Close: "*/"},
		".py":    {Open: `"""`, Close: `"""`},
		".proto": {Open: "/*", Close: "*/"},
	}
}

// Lookup returns the markers for the file with the given name.
func (r Registry) Lookup(name string) (Markers, bool) {
	m, ok := r[Ext(name)]
	return m, ok
}

// Ext returns everything after the last dot in name, prefixed with a dot.
// A name without dots is returned whole with a dot in front, so "Makefile"
// has the extension ".Makefile".
func Ext(name string) string {
	return "." + name[strings.LastIndexByte(name, '.')+1:]
}
