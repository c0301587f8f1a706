// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header makes sure source files carry a canonical license header.
//
// [Enforce] walks a file tree and, for every file whose extension is known to
// a [Registry] and whose path is not excluded by [Rules], either verifies
// that the canonical [Header] is present ([ModeCI]) or inserts it, replacing
// a previous version of it when one is found ([ModeLocal]).
package header

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// DefaultHeaderPath is the file the canonical header is read from, relative
// to the working directory.
const DefaultHeaderPath = "license_header.txt"

// Header is the canonical license header.
type Header struct {
	text  string
	start string
	end   string
}

// New returns a Header with text trimmed of leading and trailing line breaks.
// Line endings are normalized to "\n".
func New(text string) (*Header, error) {
	text = strings.Trim(normalizeNewlines(text), "\n")
	if text == "" {
		return nil, errors.New("license header is empty")
	}
	h := &Header{text: text, start: text, end: text}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		h.start = text[:i]
	}
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		h.end = text[i+1:]
	}
	return h, nil
}

// normalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Load reads the header from the named file.
func Load(fsys afero.Fs, path string) (*Header, error) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading license header: %w", err)
	}
	h, err := New(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Text returns the header text.
func (h *Header) Text() string { return h.text }

// Start returns the first line of the header. It anchors the beginning of a
// previous version of the header in a file.
func (h *Header) Start() string { return h.start }

// End returns the last line of the header. It anchors the end of a previous
// version of the header in a file.
func (h *Header) End() string { return h.end }
