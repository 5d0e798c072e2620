package token

// Kind identifies a token class.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	// Newline separates top-level and block expressions; the parser skips
	// it inside parenthesized contexts.
	Newline

	Ident
	NumLit
	StrLit

	// Keywords.
	KwIf
	KwElse
	KwFor
	KwWhile
	KwRepeat
	KwFunction
	KwBreak
	KwNext

	// Operators and punctuation.
	Plus
	Minus
	Star
	Slash
	Caret
	Tilde
	Question
	Bang
	Assign       // <-
	SuperAssign  // <<-
	RightAssign  // ->
	SuperRAssign // ->>
	Eq           // = (assignment or named-argument binding, by position)
	EqEq
	BangEq
	Lt
	LtEq
	Gt
	GtEq
	And    // &&
	AndVec // &
	Or     // ||
	OrVec  // |
	Special
	Colon
	ColonColon
	Dollar
	At
	Comma
	Semicolon
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	LBracket2 // [[
)

var kindNames = map[Kind]string{
	Invalid:      "invalid",
	EOF:          "eof",
	Newline:      "newline",
	Ident:        "ident",
	NumLit:       "number",
	StrLit:       "string",
	KwIf:         "if",
	KwElse:       "else",
	KwFor:        "for",
	KwWhile:      "while",
	KwRepeat:     "repeat",
	KwFunction:   "function",
	KwBreak:      "break",
	KwNext:       "next",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Caret:        "^",
	Tilde:        "~",
	Question:     "?",
	Bang:         "!",
	Assign:       "<-",
	SuperAssign:  "<<-",
	RightAssign:  "->",
	SuperRAssign: "->>",
	Eq:           "=",
	EqEq:         "==",
	BangEq:       "!=",
	Lt:           "<",
	LtEq:         "<=",
	Gt:           ">",
	GtEq:         ">=",
	And:          "&&",
	AndVec:       "&",
	Or:           "||",
	OrVec:        "|",
	Special:      "%op%",
	Colon:        ":",
	ColonColon:   "::",
	Dollar:       "$",
	At:           "@",
	Comma:        ",",
	Semicolon:    ";",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	LBracket:     "[",
	RBracket:     "]",
	LBracket2:    "[[",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
