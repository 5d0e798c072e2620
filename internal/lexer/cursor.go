package lexer

import "rtide/internal/diag"

// cursor walks the input byte by byte, tracking line/column for diagnostics.
type cursor struct {
	src  []byte
	off  int
	line int
	col  int
}

func newCursor(src []byte) cursor {
	return cursor{src: src, line: 1, col: 1}
}

func (c *cursor) eof() bool { return c.off >= len(c.src) }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.src) {
		return 0
	}
	return c.src[c.off+n]
}

func (c *cursor) bump() byte {
	b := c.src[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

func (c *cursor) pos() diag.Pos {
	return diag.Pos{Line: c.line, Col: c.col}
}

func (c *cursor) textFrom(mark int) string {
	return string(c.src[mark:c.off])
}
