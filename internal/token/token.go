package token

import "rtide/internal/diag"

// Token is a single significant token with its position and raw text.
type Token struct {
	Kind Kind
	Text string
	Pos  diag.Pos
}

// IsAssignOp reports whether the token spells a variable assignment.
// Eq is included: whether a given `=` is an assignment or a named-argument
// binding is decided by the parser from the token's syntactic position.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, SuperAssign, RightAssign, SuperRAssign, Eq:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved control-flow word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwElse, KwFor, KwWhile, KwRepeat, KwFunction, KwBreak, KwNext:
		return true
	default:
		return false
	}
}

var keywords = map[string]Kind{
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"repeat":   KwRepeat,
	"function": KwFunction,
	"break":    KwBreak,
	"next":     KwNext,
}

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Ident
}
