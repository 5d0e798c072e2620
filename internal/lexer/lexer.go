package lexer

import (
	"rtide/internal/diag"
	"rtide/internal/token"
)

// Lexer produces significant tokens from masked source text.
type Lexer struct {
	cursor cursor
	bag    *diag.Bag
	look   *token.Token
}

func New(src []byte, bag *diag.Bag) *Lexer {
	return &Lexer{cursor: newCursor(src), bag: bag}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

// Peek returns the upcoming token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scan()
		lx.look = &tok
	}
	return *lx.look
}

func (lx *Lexer) scan() token.Token {
	lx.skipBlanks()
	pos := lx.cursor.pos()

	if lx.cursor.eof() {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	ch := lx.cursor.peek()
	switch {
	case ch == '\n':
		// Coalesce a run of newlines (and interleaved blanks) into one token.
		for {
			lx.skipBlanks()
			if lx.cursor.peek() != '\n' {
				break
			}
			lx.cursor.bump()
		}
		return token.Token{Kind: token.Newline, Text: "\n", Pos: pos}

	case isDigit(ch) || (ch == '.' && isDigit(lx.cursor.peekAt(1))):
		return lx.scanNumber()

	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()

	case ch == '`':
		return lx.scanBacktickIdent()

	case ch == '"' || ch == '\'':
		return lx.scanString()

	default:
		return lx.scanOperator()
	}
}

// skipBlanks consumes horizontal whitespace and raw comments, which only
// occur in the token stream when comment masking is disabled.
func (lx *Lexer) skipBlanks() {
	for !lx.cursor.eof() {
		switch lx.cursor.peek() {
		case ' ', '\t', '\r':
			lx.cursor.bump()
		case '#':
			for !lx.cursor.eof() && lx.cursor.peek() != '\n' {
				lx.cursor.bump()
			}
		default:
			return
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
