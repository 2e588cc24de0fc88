package internal

// Tree is a node converted to plain maps and slices, ready for an encoder
type Tree = map[string]interface{}

// DumpAll converts every node with Dump
func DumpAll(nodes []Node) []Tree {
	trees := make([]Tree, 0, len(nodes))
	for _, node := range nodes {
		trees = append(trees, Dump(node))
	}
	return trees
}

// Dump converts node into a Tree keyed by field name, with a "type" entry
// naming the node and a "span" entry holding its source range
func Dump(node Node) Tree {
	v := treeVisitor{}
	switch n := node.(type) {
	case Expr:
		return v.expr(n)
	case Stmt:
		return v.stmt(n)
	}
	return nil
}

type treeVisitor struct{}

func (v treeVisitor) expr(e Expr) Tree {
	if e == nil {
		return nil
	}
	return e.Accept(v).(Tree)
}

func (v treeVisitor) stmt(s Stmt) Tree {
	if s == nil {
		return nil
	}
	return s.Accept(v).(Tree)
}

func (v treeVisitor) exprs(list []Expr) []Tree {
	trees := make([]Tree, 0, len(list))
	for _, e := range list {
		trees = append(trees, v.expr(e))
	}
	return trees
}

func (v treeVisitor) ident(id *IdentifierExpr) interface{} {
	if id == nil {
		return nil
	}
	return id.Name
}

func (v treeVisitor) block(b *BlockStmt) Tree {
	if b == nil {
		return nil
	}
	return v.stmt(b)
}

func treeNode(kind string, span Span, fields Tree) Tree {
	fields["type"] = kind
	fields["span"] = span.String()
	return fields
}

func (v treeVisitor) VisitIdentifierExpr(expr *IdentifierExpr) R {
	return treeNode("Identifier", expr.Loc, Tree{"name": expr.Name})
}

func (v treeVisitor) VisitLiteralExpr(expr *LiteralExpr) R {
	return treeNode("Literal", expr.Loc, Tree{"kind": expr.Kind.String(), "value": expr.Value})
}

func (v treeVisitor) VisitArrayExpr(expr *ArrayExpr) R {
	return treeNode("Array", expr.Loc, Tree{"elements": v.exprs(expr.Elements)})
}

func (v treeVisitor) VisitObjectExpr(expr *ObjectExpr) R {
	props := make(Tree, len(expr.Properties))
	for key, value := range expr.Properties {
		props[key] = v.expr(value)
	}
	return treeNode("Object", expr.Loc, Tree{"properties": props})
}

func (v treeVisitor) VisitBinaryExpr(expr *BinaryExpr) R {
	return treeNode("BinaryOp", expr.Loc, Tree{
		"op":    expr.Op.String(),
		"left":  v.expr(expr.Left),
		"right": v.expr(expr.Right),
	})
}

func (v treeVisitor) VisitUnaryExpr(expr *UnaryExpr) R {
	return treeNode("UnaryOp", expr.Loc, Tree{
		"op":      expr.Op.String(),
		"operand": v.expr(expr.Operand),
		"postfix": expr.Postfix,
	})
}

func (v treeVisitor) VisitCallExpr(expr *CallExpr) R {
	return treeNode("Call", expr.Loc, Tree{
		"callee":    v.expr(expr.Callee),
		"arguments": v.exprs(expr.Arguments),
	})
}

func (v treeVisitor) VisitFunctionExpr(expr *FunctionExpr) R {
	params := make([]interface{}, 0, len(expr.Params))
	for _, param := range expr.Params {
		params = append(params, v.ident(param))
	}
	return treeNode("Function", expr.Loc, Tree{
		"name":   v.ident(expr.Name),
		"params": params,
		"body":   v.block(expr.Body),
	})
}

func (v treeVisitor) VisitVarStmt(stmt *VarStmt) R {
	return treeNode("VariableDeclaration", stmt.Loc, Tree{
		"kind":        stmt.Kind.String(),
		"name":        v.ident(stmt.Name),
		"initializer": v.expr(stmt.Initializer),
	})
}

func (v treeVisitor) VisitIfStmt(stmt *IfStmt) R {
	return treeNode("IfElse", stmt.Loc, Tree{
		"condition": v.expr(stmt.Condition),
		"then":      v.stmt(stmt.Then),
		"else":      v.stmt(stmt.Else),
	})
}

func (v treeVisitor) VisitForStmt(stmt *ForStmt) R {
	return treeNode("For", stmt.Loc, Tree{
		"init":      v.stmt(stmt.Initializer),
		"condition": v.expr(stmt.Condition),
		"update":    v.expr(stmt.Update),
		"body":      v.stmt(stmt.Body),
	})
}

func (v treeVisitor) VisitWhileStmt(stmt *WhileStmt) R {
	return treeNode("While", stmt.Loc, Tree{
		"condition": v.expr(stmt.Condition),
		"body":      v.stmt(stmt.Body),
	})
}

func (v treeVisitor) VisitReturnStmt(stmt *ReturnStmt) R {
	return treeNode("Return", stmt.Loc, Tree{"value": v.expr(stmt.Value)})
}

func (v treeVisitor) VisitBreakStmt(stmt *BreakStmt) R {
	return treeNode("Break", stmt.Loc, Tree{})
}

func (v treeVisitor) VisitContinueStmt(stmt *ContinueStmt) R {
	return treeNode("Continue", stmt.Loc, Tree{})
}

func (v treeVisitor) VisitTryStmt(stmt *TryStmt) R {
	var catch Tree
	if c := stmt.Catch; c != nil {
		catch = treeNode("Catch", c.Loc, Tree{
			"name": v.ident(c.Name),
			"body": v.block(c.Body),
		})
	}
	return treeNode("TryCatch", stmt.Loc, Tree{
		"try":     v.block(stmt.Body),
		"catch":   catch,
		"finally": v.block(stmt.Finally),
	})
}

func (v treeVisitor) VisitBlockStmt(stmt *BlockStmt) R {
	stmts := make([]Tree, 0, len(stmt.Stmts))
	for _, s := range stmt.Stmts {
		stmts = append(stmts, v.stmt(s))
	}
	return treeNode("Block", stmt.Loc, Tree{"body": stmts})
}

func (v treeVisitor) VisitExprStmt(stmt *ExprStmt) R {
	return treeNode("ExpressionStatement", stmt.Loc, Tree{"expression": v.expr(stmt.Expression)})
}
