package parser

import (
	"fmt"

	"rtide/internal/ast"
	"rtide/internal/diag"
	"rtide/internal/lexer"
	"rtide/internal/source"
	"rtide/internal/token"
)

type parser struct {
	lx  *lexer.Lexer
	bag *diag.Bag
	cur token.Token

	// ctx tracks whether newlines are significant: '(' pushes skip,
	// '{' pushes keep. Top-level keeps newlines.
	ctx []byte
}

// Parse builds the ordered list of top-level expressions of a file.
// A syntactically invalid input yields a *diag.ParseError carrying the
// collected diagnostics.
func Parse(file *source.File, maxDiag int) ([]ast.Expr, error) {
	bag := diag.NewBag(maxDiag)
	p := &parser{lx: lexer.New(file.Content, bag), bag: bag}
	p.advance()

	var exprs []ast.Expr
	for {
		p.skipSeparators()
		if p.cur.Kind == token.EOF {
			break
		}
		e := p.parseExpr(0)
		if e != nil {
			exprs = append(exprs, e)
		}
		if bag.HasErrors() {
			break
		}
		p.expectTerminator()
	}

	if bag.HasErrors() {
		return nil, &diag.ParseError{Diags: bag.Items()}
	}
	return exprs, nil
}

func (p *parser) advance() {
	for {
		p.cur = p.lx.Next()
		if p.cur.Kind == token.Newline && p.skipNewlines() {
			continue
		}
		return
	}
}

func (p *parser) skipNewlines() bool {
	return len(p.ctx) > 0 && p.ctx[len(p.ctx)-1] == '('
}

func (p *parser) pushCtx(c byte) { p.ctx = append(p.ctx, c) }

func (p *parser) popCtx() {
	if len(p.ctx) > 0 {
		p.ctx = p.ctx[:len(p.ctx)-1]
	}
}

func (p *parser) skipSeparators() {
	for p.cur.Kind == token.Newline || p.cur.Kind == token.Semicolon {
		p.advance()
	}
}

func (p *parser) expectTerminator() {
	switch p.cur.Kind {
	case token.Newline, token.Semicolon:
		p.advance()
	case token.EOF, token.RBrace:
	default:
		p.errorf("unexpected %q after expression", p.cur.Kind.String())
		p.advance()
	}
}

func (p *parser) expect(kind token.Kind) token.Token {
	tok := p.cur
	if tok.Kind != kind {
		p.errorf("expected %q, found %q", kind.String(), p.cur.Kind.String())
		return tok
	}
	p.advance()
	return tok
}

func (p *parser) errorf(format string, args ...any) {
	p.bag.Error(p.cur.Pos, fmt.Sprintf(format, args...))
}
