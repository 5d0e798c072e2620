// Package deparse re-serializes one expression tree to canonical text at a
// requested display width. Braced blocks always render multi-line; call and
// subscript argument lists wrap when they overflow the width.
package deparse

import (
	"strings"

	"rtide/internal/ast"
	"rtide/internal/mask"
	"rtide/internal/token"
)

// Expr renders a single top-level expression tree. The result carries no
// trailing newline; the caller joins trees with single newlines.
func Expr(e ast.Expr, width int) string {
	w := &writer{width: width}
	emit(w, e)
	return w.String()
}

func emit(w *writer, e ast.Expr) {
	if e == nil {
		return
	}
	if s, ok := flat(e); ok && (w.fits(s) || placeholder(s)) {
		w.write(s)
		return
	}

	switch n := e.(type) {
	case *ast.Block:
		emitBlock(w, n)

	case *ast.If:
		emitIf(w, n)

	case *ast.For:
		w.write("for (" + n.Var + " in ")
		emit(w, n.Seq)
		w.write(") ")
		emit(w, n.Body)

	case *ast.While:
		w.write("while (")
		emit(w, n.Cond)
		w.write(") ")
		emit(w, n.Body)

	case *ast.Repeat:
		w.write("repeat ")
		emit(w, n.Body)

	case *ast.Function:
		w.write("function(")
		emitParams(w, n.Params)
		w.write(") ")
		emit(w, n.Body)

	case *ast.Assign:
		emit(w, n.X)
		w.write(" " + assignSpelling(n.Op) + " ")
		emit(w, n.Y)

	case *ast.Binary:
		emit(w, n.X)
		w.write(infix(n))
		emit(w, n.Y)

	case *ast.Unary:
		w.write(n.Op.String())
		emit(w, n.X)

	case *ast.Paren:
		w.write("(")
		emit(w, n.X)
		w.write(")")

	case *ast.Call:
		emit(w, n.Fun)
		emitArgs(w, "(", ")", n.Args)

	case *ast.Index:
		emit(w, n.X)
		if n.Double {
			emitArgs(w, "[[", "]]", n.Args)
		} else {
			emitArgs(w, "[", "]", n.Args)
		}

	case *ast.Ident:
		w.write(n.Name)
	case *ast.Num:
		w.write(n.Text)
	case *ast.Str:
		w.write(n.Text)
	}
}

func emitBlock(w *writer, n *ast.Block) {
	w.write("{")
	w.indent++
	for _, sub := range n.Exprs {
		w.newline()
		emit(w, sub)
	}
	w.indent--
	w.newline()
	w.write("}")
}

// emitIf keeps `else` on the closing-brace line when the then-branch is a
// plain block. Any other then-branch (notably one carrying a masked trailing
// comment) pushes `else` onto its own line; the unmasker repairs that break.
func emitIf(w *writer, n *ast.If) {
	w.write("if (")
	emit(w, n.Cond)
	w.write(") ")
	emit(w, n.Then)
	if n.Else == nil {
		return
	}
	if _, isBlock := n.Then.(*ast.Block); isBlock {
		w.write(" else ")
	} else {
		w.newline()
		w.write("else ")
	}
	emit(w, n.Else)
}

// emitArgs renders an argument list, wrapping before an argument when it
// would overflow the width but fits on a continuation line. An argument too
// wide for any line is written in place; splitting it would not help.
func emitArgs(w *writer, opening, closing string, args []ast.Arg) {
	w.write(opening)
	w.indent++
	for i, a := range args {
		if i > 0 {
			w.write(",")
		}
		s, ok := flatArg(a)
		if !ok {
			// Argument contains a block; render it structurally.
			if i > 0 {
				w.write(" ")
			}
			if a.Name != "" {
				w.write(a.Name + " = ")
			}
			emit(w, a.Value)
			continue
		}
		switch {
		case i > 0 && !w.fits(" "+s) && fitsFresh(w, s):
			w.newline()
		case i > 0 && s != "":
			w.write(" ")
		case i == 0 && !w.fits(s) && fitsFresh(w, s):
			w.newline()
		}
		w.write(s)
	}
	w.indent--
	w.write(closing)
}

// fitsFresh reports whether s would fit on a new continuation line.
func fitsFresh(w *writer, s string) bool {
	return w.indent*renderIndent+len(s) <= w.width
}

func emitParams(w *writer, params []ast.Param) {
	for i, p := range params {
		if i > 0 {
			w.write(", ")
		}
		w.write(flatParam(p))
	}
}

func assignSpelling(op token.Kind) string {
	switch op {
	case token.SuperAssign:
		return "<<-"
	case token.Eq:
		return "="
	default:
		return "<-"
	}
}

// infix returns the operator with canonical spacing: `^`, `:`, `::`, `$` and
// `@` bind tightly and take none.
func infix(n *ast.Binary) string {
	switch n.Op {
	case token.Caret, token.Colon, token.Dollar, token.At:
		return n.Op.String()
	case token.ColonColon:
		if n.OpText == ":::" {
			return ":::"
		}
		return "::"
	case token.Special:
		return " " + n.OpText + " "
	default:
		return " " + n.Op.String() + " "
	}
}

// placeholder reports whether a flat rendering carries a masked comment.
// The unmasker needs a placeholder call, its sentinels and its payload on a
// single line, so such an expression is never wrapped, width notwithstanding.
func placeholder(s string) bool {
	return strings.Contains(s, mask.SentinelEnd)
}

// flat renders e on a single line, reporting false when e cannot be
// flattened (it contains a braced block or a literal newline).
func flat(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case nil:
		return "", true
	case *ast.Ident:
		return n.Name, !strings.Contains(n.Name, "\n")
	case *ast.Num:
		return n.Text, true
	case *ast.Str:
		return n.Text, !strings.Contains(n.Text, "\n")
	case *ast.Paren:
		s, ok := flat(n.X)
		return "(" + s + ")", ok
	case *ast.Unary:
		s, ok := flat(n.X)
		return n.Op.String() + s, ok
	case *ast.Binary:
		x, okx := flat(n.X)
		y, oky := flat(n.Y)
		return x + infix(n) + y, okx && oky
	case *ast.Assign:
		x, okx := flat(n.X)
		y, oky := flat(n.Y)
		return x + " " + assignSpelling(n.Op) + " " + y, okx && oky
	case *ast.Call:
		fun, okf := flat(n.Fun)
		args, oka := flatArgs(n.Args)
		return fun + "(" + args + ")", okf && oka
	case *ast.Index:
		x, okx := flat(n.X)
		args, oka := flatArgs(n.Args)
		if n.Double {
			return x + "[[" + args + "]]", okx && oka
		}
		return x + "[" + args + "]", okx && oka
	case *ast.If:
		cond, okc := flat(n.Cond)
		then, okt := flat(n.Then)
		s := "if (" + cond + ") " + then
		ok := okc && okt
		if n.Else != nil {
			alt, oke := flat(n.Else)
			s += " else " + alt
			ok = ok && oke
		}
		return s, ok
	case *ast.For:
		seq, oks := flat(n.Seq)
		body, okb := flat(n.Body)
		return "for (" + n.Var + " in " + seq + ") " + body, oks && okb
	case *ast.While:
		cond, okc := flat(n.Cond)
		body, okb := flat(n.Body)
		return "while (" + cond + ") " + body, okc && okb
	case *ast.Repeat:
		body, ok := flat(n.Body)
		return "repeat " + body, ok
	case *ast.Function:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, flatParam(p))
		}
		body, ok := flat(n.Body)
		return "function(" + strings.Join(params, ", ") + ") " + body, ok
	case *ast.Block:
		return "", false
	default:
		return "", false
	}
}

func flatArgs(args []ast.Arg) (string, bool) {
	parts := make([]string, 0, len(args))
	ok := true
	for _, a := range args {
		s, aok := flatArg(a)
		ok = ok && aok
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), ok
}

func flatArg(a ast.Arg) (string, bool) {
	if a.Value == nil {
		return a.Name, true
	}
	v, ok := flat(a.Value)
	if a.Name != "" {
		return a.Name + " = " + v, ok
	}
	return v, ok
}

func flatParam(p ast.Param) string {
	if p.Default == nil {
		return p.Name
	}
	d, _ := flat(p.Default)
	return p.Name + " = " + d
}

// Usage renders a function's declared parameter list as a call signature,
// e.g. `read_all(path, recursive = TRUE)`.
func Usage(name string, fn *ast.Function, width int) string {
	w := &writer{width: width}
	w.write(name)
	w.write("(")
	w.indent++
	for i, p := range fn.Params {
		if i > 0 {
			w.write(",")
		}
		s := flatParam(p)
		if i > 0 && w.fits(" "+s) {
			w.write(" ")
		} else if !w.fits(s) && fitsFresh(w, s) {
			w.newline()
		} else if i > 0 {
			w.write(" ")
		}
		w.write(s)
	}
	w.indent--
	w.write(")")
	return w.String()
}
