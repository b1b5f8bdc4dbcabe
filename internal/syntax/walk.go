package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		walkStmts(n.Stmts, v)

	case *FuncDecl:
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Param:
		walkTypeSpec(&n.TypeSpec, v)

	case *TypeDecl:
		for _, f := range n.Fields {
			Walk(f, v)
		}

	case *VarDecl:
		Walk(n.LHS, v)
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *Variable:
		walkTypeSpec(&n.TypeSpec, v)

	case *CallExpr:
		walkExprs(n.Args, v)

	case *AssignExpr:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *ArrayLit:
		walkExprs(n.Elems, v)

	case *SubscriptExpr:
		Walk(n.X, v)
		walkExprs(n.Indexes, v)

	case *TypeInstExpr:
		walkExprs(n.Values, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *BlockStmt:
		walkStmts(n.Stmts, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	// Leaf nodes: Constant, CharLit, StringLit, CincludeDecl
	// No children to visit
	}
}

func walkStmts(list []Stmt, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}

func walkExprs(list []Expr, v Visitor) {
	for _, x := range list {
		Walk(x, v)
	}
}

func walkTypeSpec(t *TypeSpec, v Visitor) {
	if t.ArraySize != nil {
		Walk(t.ArraySize, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
