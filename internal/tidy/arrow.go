package tidy

import (
	"rtide/internal/ast"
	"rtide/internal/token"
)

// rewriteAssignments replaces every `=` variable-assignment node with `<-`.
// Named-argument bindings inside call argument lists use the same surface
// token but are stored as ast.Arg names, not assignment nodes, so the walk
// structurally cannot touch them.
func rewriteAssignments(exprs []ast.Expr) {
	for _, e := range exprs {
		ast.Walk(e, func(n ast.Expr) {
			if a, ok := n.(*ast.Assign); ok && a.Op == token.Eq {
				a.Op = token.Assign
			}
		})
	}
}
