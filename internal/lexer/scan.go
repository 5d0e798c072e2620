package lexer

import "rtide/internal/token"

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	pos := lx.cursor.pos()
	mark := lx.cursor.off
	for !lx.cursor.eof() && isIdentCont(lx.cursor.peek()) {
		lx.cursor.bump()
	}
	text := lx.cursor.textFrom(mark)
	return token.Token{Kind: token.Lookup(text), Text: text, Pos: pos}
}

// scanBacktickIdent scans a `quoted` identifier; backticks stay in the text.
func (lx *Lexer) scanBacktickIdent() token.Token {
	pos := lx.cursor.pos()
	mark := lx.cursor.off
	lx.cursor.bump() // opening `
	for !lx.cursor.eof() && lx.cursor.peek() != '`' && lx.cursor.peek() != '\n' {
		lx.cursor.bump()
	}
	if lx.cursor.eof() || lx.cursor.peek() != '`' {
		lx.bag.Error(pos, "unterminated backquoted name")
		return token.Token{Kind: token.Invalid, Text: lx.cursor.textFrom(mark), Pos: pos}
	}
	lx.cursor.bump() // closing `
	return token.Token{Kind: token.Ident, Text: lx.cursor.textFrom(mark), Pos: pos}
}

func (lx *Lexer) scanNumber() token.Token {
	pos := lx.cursor.pos()
	mark := lx.cursor.off

	if lx.cursor.peek() == '0' && (lx.cursor.peekAt(1) == 'x' || lx.cursor.peekAt(1) == 'X') {
		lx.cursor.bump()
		lx.cursor.bump()
		for !lx.cursor.eof() && isHexDigit(lx.cursor.peek()) {
			lx.cursor.bump()
		}
	} else {
		for !lx.cursor.eof() && (isDigit(lx.cursor.peek()) || lx.cursor.peek() == '.') {
			lx.cursor.bump()
		}
		if b := lx.cursor.peek(); b == 'e' || b == 'E' {
			next := lx.cursor.peekAt(1)
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(lx.cursor.peekAt(2))) {
				lx.cursor.bump()
				if b := lx.cursor.peek(); b == '+' || b == '-' {
					lx.cursor.bump()
				}
				for !lx.cursor.eof() && isDigit(lx.cursor.peek()) {
					lx.cursor.bump()
				}
			}
		}
	}
	// Integer and imaginary suffixes.
	if b := lx.cursor.peek(); b == 'L' || b == 'i' {
		lx.cursor.bump()
	}
	return token.Token{Kind: token.NumLit, Text: lx.cursor.textFrom(mark), Pos: pos}
}

// scanString scans a single- or double-quoted literal. Escaped characters
// pass through verbatim; literal newlines are legal inside strings.
func (lx *Lexer) scanString() token.Token {
	pos := lx.cursor.pos()
	mark := lx.cursor.off
	quote := lx.cursor.bump()
	for !lx.cursor.eof() {
		b := lx.cursor.bump()
		if b == '\\' && !lx.cursor.eof() {
			lx.cursor.bump()
			continue
		}
		if b == quote {
			return token.Token{Kind: token.StrLit, Text: lx.cursor.textFrom(mark), Pos: pos}
		}
	}
	lx.bag.Error(pos, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Text: lx.cursor.textFrom(mark), Pos: pos}
}

// scanSpecial scans a %...% user infix operator, e.g. %in% or %/%.
func (lx *Lexer) scanSpecial() token.Token {
	pos := lx.cursor.pos()
	mark := lx.cursor.off
	lx.cursor.bump() // opening %
	for !lx.cursor.eof() && lx.cursor.peek() != '%' && lx.cursor.peek() != '\n' {
		lx.cursor.bump()
	}
	if lx.cursor.peek() != '%' {
		lx.bag.Error(pos, "unterminated %% operator")
		return token.Token{Kind: token.Invalid, Text: lx.cursor.textFrom(mark), Pos: pos}
	}
	lx.cursor.bump() // closing %
	return token.Token{Kind: token.Special, Text: lx.cursor.textFrom(mark), Pos: pos}
}

func (lx *Lexer) scanOperator() token.Token {
	pos := lx.cursor.pos()
	if lx.cursor.peek() == '%' {
		return lx.scanSpecial()
	}

	two := func(kind token.Kind, text string) token.Token {
		lx.cursor.bump()
		lx.cursor.bump()
		return token.Token{Kind: kind, Text: text, Pos: pos}
	}
	one := func(kind token.Kind, text string) token.Token {
		lx.cursor.bump()
		return token.Token{Kind: kind, Text: text, Pos: pos}
	}

	b0 := lx.cursor.peek()
	b1 := lx.cursor.peekAt(1)
	switch b0 {
	case '<':
		switch {
		case b1 == '-':
			return two(token.Assign, "<-")
		case b1 == '<' && lx.cursor.peekAt(2) == '-':
			tok := two(token.SuperAssign, "<<-")
			lx.cursor.bump()
			return tok
		case b1 == '=':
			return two(token.LtEq, "<=")
		default:
			return one(token.Lt, "<")
		}
	case '-':
		switch {
		case b1 == '>' && lx.cursor.peekAt(2) == '>':
			tok := two(token.SuperRAssign, "->>")
			lx.cursor.bump()
			return tok
		case b1 == '>':
			return two(token.RightAssign, "->")
		default:
			return one(token.Minus, "-")
		}
	case '>':
		if b1 == '=' {
			return two(token.GtEq, ">=")
		}
		return one(token.Gt, ">")
	case '=':
		if b1 == '=' {
			return two(token.EqEq, "==")
		}
		return one(token.Eq, "=")
	case '!':
		if b1 == '=' {
			return two(token.BangEq, "!=")
		}
		return one(token.Bang, "!")
	case '&':
		if b1 == '&' {
			return two(token.And, "&&")
		}
		return one(token.AndVec, "&")
	case '|':
		if b1 == '|' {
			return two(token.Or, "||")
		}
		return one(token.OrVec, "|")
	case ':':
		if b1 == ':' {
			if lx.cursor.peekAt(2) == ':' {
				tok := two(token.ColonColon, ":::")
				lx.cursor.bump()
				return tok
			}
			return two(token.ColonColon, "::")
		}
		return one(token.Colon, ":")
	case '[':
		if b1 == '[' {
			return two(token.LBracket2, "[[")
		}
		return one(token.LBracket, "[")
	case ']':
		return one(token.RBracket, "]")
	case '+':
		return one(token.Plus, "+")
	case '*':
		return one(token.Star, "*")
	case '/':
		return one(token.Slash, "/")
	case '^':
		return one(token.Caret, "^")
	case '~':
		return one(token.Tilde, "~")
	case '?':
		return one(token.Question, "?")
	case '$':
		return one(token.Dollar, "$")
	case '@':
		return one(token.At, "@")
	case ',':
		return one(token.Comma, ",")
	case ';':
		return one(token.Semicolon, ";")
	case '(':
		return one(token.LParen, "(")
	case ')':
		return one(token.RParen, ")")
	case '{':
		return one(token.LBrace, "{")
	case '}':
		return one(token.RBrace, "}")
	default:
		lx.bag.Error(pos, "unexpected character "+string(rune(b0)))
		lx.cursor.bump()
		return token.Token{Kind: token.Invalid, Text: string(rune(b0)), Pos: pos}
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
