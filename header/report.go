// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes one line per acted upon file.
type printer struct {
	w    io.Writer
	good *color.Color
	warn *color.Color
	bad  *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	if w == nil {
		w = io.Discard
	}
	p := &printer{
		w:    w,
		good: color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.good, p.warn, p.bad} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) line(path string, c *color.Color, msg string) {
	fmt.Fprintf(p.w, "[%s]: %s\n", path, c.Sprint(msg))
}

func (p *printer) missing(path string)  { p.line(path, p.bad, "no or invalid copyright header.") }
func (p *printer) replaced(path string) { p.line(path, p.warn, "replace header") }
func (p *printer) inserted(path string) { p.line(path, p.good, "insert new header") }
func (p *printer) conflict(path string) {
	p.line(path, p.bad, "found different copyright header - please remove")
}
