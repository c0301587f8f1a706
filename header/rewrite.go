// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"strings"
)

var (
	// ErrInconsistentMarkers means the last line of the header was found
	// before its first line, or not at all while the first line was.
	ErrInconsistentMarkers = errors.New("header end marker found before header start marker")
	// ErrConflictingCopyright means a file has no recognizable header but
	// mentions a copyright, so it likely carries some other license header.
	ErrConflictingCopyright = errors.New("found different copyright header")
	// ErrMissingHeaders means a check found files without the header.
	ErrMissingHeaders = errors.New("invalid copyright headers found")
)

// Action is what was done, or would have to be done, to a file.
type Action int

const (
	// Compliant files already contain the header.
	Compliant Action = iota
	// Missing files lack the header. Only reported in ModeCI.
	Missing
	// Replaced files had a previous version of the header replaced.
	Replaced
	// Inserted files had the header added at the top.
	Inserted
)

var actionNames = map[Action]string{
	Compliant: "compliant",
	Missing:   "missing",
	Replaced:  "replaced",
	Inserted:  "inserted",
}

func (a Action) String() string { return actionNames[a] }

// Rewrite returns content with the header in place.
//
// Line endings in content are normalized to "\n" first, so the returned
// content always uses "\n". If content already contains the header, it is returned unchanged. If it
// contains the first and last lines of the header, everything from the first
// occurrence of the first line through the first occurrence of the last line
// is replaced with the header. Otherwise the header is wrapped in m and
// prepended, unless content mentions a copyright.
func Rewrite(content string, h *Header, m Markers) (string, Action, error) {
	content = normalizeNewlines(content)
	if strings.Contains(content, h.text) {
		return content, Compliant, nil
	}

	start := strings.Index(content, h.start)
	end := strings.Index(content, h.end)
	switch {
	case start > end:
		return "", 0, ErrInconsistentMarkers
	case start >= 0 && end > 0:
		return content[:start] + h.text + content[end+len(h.end):], Replaced, nil
	case strings.Contains(strings.ToLower(content), "copyright"):
		return "", 0, ErrConflictingCopyright
	}

	var sb strings.Builder
	sb.Grow(len(m.Open) + len(h.text) + len(m.Close) + len(content) + 4)
	sb.WriteString(m.Open)
	sb.WriteByte('\n')
	sb.WriteString(h.text)
	sb.WriteByte('\n')
	sb.WriteString(m.Close)
	sb.WriteString("\n\n")
	sb.WriteString(content)
	return sb.String(), Inserted, nil
}
