// Package ast defines the expression trees produced by the parser and
// consumed by the deparser. Trees are plain nodes; the formatter only ever
// holds an ordered list of top-level expressions.
package ast

import (
	"rtide/internal/diag"
	"rtide/internal/token"
)

// Expr is any expression node.
type Expr interface {
	Pos() diag.Pos
}

// Ident is a (possibly backquoted) name, or one of the argument-less
// keywords break/next and the reserved constants TRUE, NULL, NA, ...
type Ident struct {
	Name    string
	NamePos diag.Pos
}

// Num is a numeric literal, kept as written.
type Num struct {
	Text    string
	TextPos diag.Pos
}

// Str is a string literal including its quotes, kept as written.
type Str struct {
	Text    string
	TextPos diag.Pos
}

// Arg is one element of a call or index argument list. Name is non-empty
// for a named-argument binding (`f(x = 1)`); that binding is represented
// here, never as an Assign node, so assignment rewriting cannot touch it.
type Arg struct {
	Name  string
	Value Expr // nil for an empty slot, as in x[, 1]
}

// Call is a function call.
type Call struct {
	Fun  Expr
	Args []Arg
}

// Index is a subscript: x[...] or x[[...]].
type Index struct {
	X      Expr
	Double bool
	Args   []Arg
}

// Unary is a prefix operator application.
type Unary struct {
	Op    token.Kind
	OpPos diag.Pos
	X     Expr
}

// Binary is an infix operator application other than assignment.
// For token.Special, OpText holds the %...% spelling.
type Binary struct {
	Op     token.Kind
	OpText string
	X, Y   Expr
}

// Assign is a variable assignment: x <- 1, x <<- 1, x = 1, or 1 -> x
// (right assignments are normalized so X is always the target).
type Assign struct {
	Op   token.Kind
	X, Y Expr
}

// Paren is an explicit grouping.
type Paren struct {
	X Expr
}

// Block is a braced expression sequence.
type Block struct {
	LbracePos diag.Pos
	Exprs     []Expr
}

// If is a conditional with an optional else branch.
type If struct {
	IfPos diag.Pos
	Cond  Expr
	Then  Expr
	Else  Expr // nil when absent
}

// For is a for-in loop.
type For struct {
	ForPos diag.Pos
	Var    string
	Seq    Expr
	Body   Expr
}

// While is a while loop.
type While struct {
	WhilePos diag.Pos
	Cond     Expr
	Body     Expr
}

// Repeat is an unconditional loop.
type Repeat struct {
	RepeatPos diag.Pos
	Body      Expr
}

// Param is one declared function parameter with an optional default.
type Param struct {
	Name    string
	Default Expr
}

// Function is a function literal.
type Function struct {
	FuncPos diag.Pos
	Params  []Param
	Body    Expr
}

func (e *Ident) Pos() diag.Pos    { return e.NamePos }
func (e *Num) Pos() diag.Pos      { return e.TextPos }
func (e *Str) Pos() diag.Pos      { return e.TextPos }
func (e *Call) Pos() diag.Pos     { return e.Fun.Pos() }
func (e *Index) Pos() diag.Pos    { return e.X.Pos() }
func (e *Unary) Pos() diag.Pos    { return e.OpPos }
func (e *Binary) Pos() diag.Pos   { return e.X.Pos() }
func (e *Assign) Pos() diag.Pos   { return e.X.Pos() }
func (e *Paren) Pos() diag.Pos    { return e.X.Pos() }
func (e *Block) Pos() diag.Pos    { return e.LbracePos }
func (e *If) Pos() diag.Pos       { return e.IfPos }
func (e *For) Pos() diag.Pos      { return e.ForPos }
func (e *While) Pos() diag.Pos    { return e.WhilePos }
func (e *Repeat) Pos() diag.Pos   { return e.RepeatPos }
func (e *Function) Pos() diag.Pos { return e.FuncPos }
