// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "strings"

// Mode selects between verifying and fixing headers.
type Mode int

const (
	// ModeLocal inserts or replaces headers in place.
	ModeLocal Mode = iota
	// ModeCI only reports files without the header and never writes.
	ModeCI
)

func (m Mode) String() string {
	if m == ModeCI {
		return "ci"
	}
	return "local"
}

// ParseMode returns ModeCI if the first argument is "ci" in any case and
// ModeLocal otherwise.
func ParseMode(args []string) Mode {
	if len(args) > 0 && strings.EqualFold(args[0], "ci") {
		return ModeCI
	}
	return ModeLocal
}
