package ast

// Walk visits e and every expression nested inside it, parents first.
// Named-argument bindings are visited through their value expression only;
// the binding itself is an Arg, not a node.
func Walk(e Expr, visit func(Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *Call:
		Walk(n.Fun, visit)
		for _, a := range n.Args {
			Walk(a.Value, visit)
		}
	case *Index:
		Walk(n.X, visit)
		for _, a := range n.Args {
			Walk(a.Value, visit)
		}
	case *Unary:
		Walk(n.X, visit)
	case *Binary:
		Walk(n.X, visit)
		Walk(n.Y, visit)
	case *Assign:
		Walk(n.X, visit)
		Walk(n.Y, visit)
	case *Paren:
		Walk(n.X, visit)
	case *Block:
		for _, sub := range n.Exprs {
			Walk(sub, visit)
		}
	case *If:
		Walk(n.Cond, visit)
		Walk(n.Then, visit)
		Walk(n.Else, visit)
	case *For:
		Walk(n.Seq, visit)
		Walk(n.Body, visit)
	case *While:
		Walk(n.Cond, visit)
		Walk(n.Body, visit)
	case *Repeat:
		Walk(n.Body, visit)
	case *Function:
		for _, p := range n.Params {
			Walk(p.Default, visit)
		}
		Walk(n.Body, visit)
	}
}
