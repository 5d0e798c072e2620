package parser

import (
	"rtide/internal/ast"
	"rtide/internal/token"
)

// Binding powers follow the R language definition. Left-associative
// operators use (l, l+1); right-associative ones use (l, l).
func binaryBP(kind token.Kind) (int, int) {
	switch kind {
	case token.Question:
		return 2, 3
	case token.Eq:
		return 4, 4
	case token.Assign, token.SuperAssign:
		return 6, 6
	case token.RightAssign, token.SuperRAssign:
		return 8, 9
	case token.Tilde:
		return 10, 11
	case token.Or, token.OrVec:
		return 12, 13
	case token.And, token.AndVec:
		return 14, 15
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.EqEq, token.BangEq:
		return 16, 17
	case token.Plus, token.Minus:
		return 18, 19
	case token.Star, token.Slash:
		return 20, 21
	case token.Special:
		return 22, 23
	case token.Colon:
		return 24, 25
	case token.Caret:
		return 30, 30
	case token.ColonColon, token.Dollar, token.At:
		return 40, 41
	default:
		return 0, 0
	}
}

const postfixBP = 40

func (p *parser) parseExpr(minBP int) ast.Expr {
	lhs := p.parsePrefix()

	for lhs != nil {
		kind := p.cur.Kind

		// Postfix: calls and subscripts.
		if (kind == token.LParen || kind == token.LBracket || kind == token.LBracket2) &&
			postfixBP >= minBP {
			lhs = p.parsePostfix(lhs)
			continue
		}

		lbp, rbp := binaryBP(kind)
		if lbp == 0 || lbp < minBP {
			break
		}
		op := p.cur
		p.advance()
		rhs := p.parseExpr(rbp)
		lhs = combine(op, lhs, rhs)
	}
	return lhs
}

// combine builds the node for an infix application. Assignment spellings
// get a dedicated node; right assignments are normalized so the target is
// always on the left.
func combine(op token.Token, lhs, rhs ast.Expr) ast.Expr {
	switch op.Kind {
	case token.Assign, token.SuperAssign, token.Eq:
		return &ast.Assign{Op: op.Kind, X: lhs, Y: rhs}
	case token.RightAssign:
		return &ast.Assign{Op: token.Assign, X: rhs, Y: lhs}
	case token.SuperRAssign:
		return &ast.Assign{Op: token.SuperAssign, X: rhs, Y: lhs}
	default:
		return &ast.Binary{Op: op.Kind, OpText: op.Text, X: lhs, Y: rhs}
	}
}

func (p *parser) parsePrefix() ast.Expr {
	tok := p.cur
	switch tok.Kind {
	case token.Ident, token.KwBreak, token.KwNext:
		p.advance()
		return &ast.Ident{Name: tok.Text, NamePos: tok.Pos}

	case token.NumLit:
		p.advance()
		return &ast.Num{Text: tok.Text, TextPos: tok.Pos}

	case token.StrLit:
		p.advance()
		return &ast.Str{Text: tok.Text, TextPos: tok.Pos}

	case token.Minus, token.Plus:
		p.advance()
		return &ast.Unary{Op: tok.Kind, OpPos: tok.Pos, X: p.parseExpr(26)}

	case token.Bang:
		p.advance()
		return &ast.Unary{Op: tok.Kind, OpPos: tok.Pos, X: p.parseExpr(16)}

	case token.Tilde:
		p.advance()
		return &ast.Unary{Op: tok.Kind, OpPos: tok.Pos, X: p.parseExpr(11)}

	case token.Question:
		p.advance()
		return &ast.Unary{Op: tok.Kind, OpPos: tok.Pos, X: p.parseExpr(3)}

	case token.LParen:
		p.advance()
		p.pushCtx('(')
		inner := p.parseExpr(0)
		p.popCtx()
		p.expect(token.RParen)
		return &ast.Paren{X: inner}

	case token.LBrace:
		return p.parseBlock()

	case token.KwIf:
		return p.parseIf()

	case token.KwFor:
		return p.parseFor()

	case token.KwWhile:
		return p.parseWhile()

	case token.KwRepeat:
		p.advance()
		return &ast.Repeat{RepeatPos: tok.Pos, Body: p.parseExpr(0)}

	case token.KwFunction:
		return p.parseFunction()

	default:
		p.errorf("unexpected %q", tok.Kind.String())
		p.advance()
		return nil
	}
}

func (p *parser) parseBlock() ast.Expr {
	lbrace := p.expect(token.LBrace)
	p.pushCtx('{')
	block := &ast.Block{LbracePos: lbrace.Pos}
	for {
		p.skipSeparators()
		if p.cur.Kind == token.RBrace || p.cur.Kind == token.EOF {
			break
		}
		e := p.parseExpr(0)
		if e != nil {
			block.Exprs = append(block.Exprs, e)
		}
		if p.bag.HasErrors() {
			break
		}
		p.expectTerminator()
	}
	p.popCtx()
	p.expect(token.RBrace)
	return block
}

func (p *parser) parseIf() ast.Expr {
	ifTok := p.expect(token.KwIf)
	p.expect(token.LParen)
	p.pushCtx('(')
	cond := p.parseExpr(0)
	p.popCtx()
	p.expect(token.RParen)
	p.skipBranchNewline()
	then := p.parseExpr(0)

	node := &ast.If{IfPos: ifTok.Pos, Cond: cond, Then: then}

	// `else` may start its own line inside a block or when the then-branch
	// carries a masked trailing comment; look through one newline for it.
	if p.cur.Kind == token.Newline && p.lx.Peek().Kind == token.KwElse {
		p.advance()
	}
	if p.cur.Kind == token.KwElse {
		p.advance()
		p.skipBranchNewline()
		node.Else = p.parseExpr(0)
	}
	return node
}

// skipBranchNewline consumes a line break between a control-flow header and
// its body, which is a continuation rather than a terminator.
func (p *parser) skipBranchNewline() {
	for p.cur.Kind == token.Newline {
		p.advance()
	}
}

func (p *parser) parseFor() ast.Expr {
	forTok := p.expect(token.KwFor)
	p.expect(token.LParen)
	p.pushCtx('(')
	name := p.expect(token.Ident)
	if in := p.cur; in.Kind != token.Ident || in.Text != "in" {
		p.errorf("expected \"in\" in for loop, found %q", in.Text)
	} else {
		p.advance()
	}
	seq := p.parseExpr(0)
	p.popCtx()
	p.expect(token.RParen)
	p.skipBranchNewline()
	return &ast.For{ForPos: forTok.Pos, Var: name.Text, Seq: seq, Body: p.parseExpr(0)}
}

func (p *parser) parseWhile() ast.Expr {
	whileTok := p.expect(token.KwWhile)
	p.expect(token.LParen)
	p.pushCtx('(')
	cond := p.parseExpr(0)
	p.popCtx()
	p.expect(token.RParen)
	p.skipBranchNewline()
	return &ast.While{WhilePos: whileTok.Pos, Cond: cond, Body: p.parseExpr(0)}
}

func (p *parser) parseFunction() ast.Expr {
	fnTok := p.expect(token.KwFunction)
	p.expect(token.LParen)
	p.pushCtx('(')
	var params []ast.Param
	for p.cur.Kind != token.RParen && p.cur.Kind != token.EOF {
		name := p.expect(token.Ident)
		param := ast.Param{Name: name.Text}
		if p.cur.Kind == token.Eq {
			p.advance()
			param.Default = p.parseExpr(5)
		}
		params = append(params, param)
		if p.cur.Kind != token.Comma {
			break
		}
		p.advance()
	}
	p.popCtx()
	p.expect(token.RParen)
	p.skipBranchNewline()
	return &ast.Function{FuncPos: fnTok.Pos, Params: params, Body: p.parseExpr(0)}
}

// parsePostfix parses a call or subscript argument list attached to fun.
func (p *parser) parsePostfix(fun ast.Expr) ast.Expr {
	open := p.cur
	p.advance()
	p.pushCtx('(')

	var closing token.Kind
	switch open.Kind {
	case token.LParen:
		closing = token.RParen
	default:
		closing = token.RBracket
	}

	args := p.parseArgs(closing)
	p.popCtx()
	p.expect(closing)
	if open.Kind == token.LBracket2 {
		p.expect(token.RBracket)
	}

	switch open.Kind {
	case token.LParen:
		return &ast.Call{Fun: fun, Args: args}
	case token.LBracket:
		return &ast.Index{X: fun, Args: args}
	default:
		return &ast.Index{X: fun, Double: true, Args: args}
	}
}

// parseArgs parses a comma-separated argument list. A `name = value` pair
// at the top level of the list is a named-argument binding and is stored on
// the Arg, never as an assignment node.
func (p *parser) parseArgs(closing token.Kind) []ast.Arg {
	var args []ast.Arg
	for {
		if p.cur.Kind == closing || p.cur.Kind == token.EOF {
			break
		}
		if p.cur.Kind == token.Comma {
			// Empty slot, as in x[, 1].
			args = append(args, ast.Arg{})
			p.advance()
			continue
		}

		var arg ast.Arg
		if (p.cur.Kind == token.Ident || p.cur.Kind == token.StrLit) &&
			p.lx.Peek().Kind == token.Eq {
			arg.Name = p.cur.Text
			p.advance() // name
			p.advance() // =
			if p.cur.Kind != token.Comma && p.cur.Kind != closing {
				arg.Value = p.parseExpr(5)
			}
		} else {
			arg.Value = p.parseExpr(5)
		}
		args = append(args, arg)

		if p.cur.Kind != token.Comma {
			break
		}
		p.advance()
		if p.cur.Kind == closing {
			// Trailing empty slot: f(x, ) or x[1, ].
			args = append(args, ast.Arg{})
		}
	}
	return args
}
