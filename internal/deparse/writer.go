package deparse

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// writer accumulates rendered output and tracks the display column so the
// printer can decide where call argument lists wrap.
type writer struct {
	b      strings.Builder
	width  int
	indent int // levels, four columns each while rendering
	col    int
}

const renderIndent = 4

func (w *writer) write(s string) {
	w.b.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.col = runewidth.StringWidth(s[i+1:])
	} else {
		w.col += runewidth.StringWidth(s)
	}
}

// newline starts a fresh line at the current indent level.
func (w *writer) newline() {
	w.b.WriteByte('\n')
	pad := strings.Repeat(" ", w.indent*renderIndent)
	w.b.WriteString(pad)
	w.col = len(pad)
}

// fits reports whether s fits on the current line within the width budget.
func (w *writer) fits(s string) bool {
	return w.col+runewidth.StringWidth(s) <= w.width
}

func (w *writer) String() string {
	return w.b.String()
}
