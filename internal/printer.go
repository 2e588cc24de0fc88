package internal

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// PrintTree writes one S-expression per node
func PrintTree(w io.Writer, nodes []Node) error {
	for _, node := range nodes {
		if _, err := fmt.Fprintln(w, Sexpr(node)); err != nil {
			return err
		}
	}
	return nil
}

// Sexpr renders node as an S-expression, e.g. (= a (+ 1 2))
func Sexpr(node Node) string {
	v := stringVisitor{}
	switch n := node.(type) {
	case Expr:
		return v.expr(n)
	case Stmt:
		return v.stmt(n)
	}
	return "()"
}

type stringVisitor struct{}

func (v stringVisitor) expr(e Expr) string {
	if e == nil {
		return "()"
	}
	return e.Accept(v).(string)
}

func (v stringVisitor) stmt(s Stmt) string {
	if s == nil {
		return "()"
	}
	return s.Accept(v).(string)
}

func (v stringVisitor) list(head string, items []string) string {
	if len(items) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + strings.Join(items, " ") + ")"
}

func (v stringVisitor) VisitIdentifierExpr(expr *IdentifierExpr) R {
	return expr.Name
}

func (v stringVisitor) VisitLiteralExpr(expr *LiteralExpr) R {
	switch expr.Kind {
	case LitString:
		return "\"" + expr.Value.(string) + "\""
	case LitDouble:
		return strconv.FormatFloat(expr.Value.(float64), 'g', -1, 64)
	case LitNull:
		return "null"
	}
	return fmt.Sprintf("%v", expr.Value)
}

func (v stringVisitor) VisitArrayExpr(expr *ArrayExpr) R {
	var items []string
	for _, el := range expr.Elements {
		items = append(items, v.expr(el))
	}
	return v.list("array", items)
}

func (v stringVisitor) VisitObjectExpr(expr *ObjectExpr) R {
	keys := make([]string, 0, len(expr.Properties))
	for key := range expr.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var items []string
	for _, key := range keys {
		items = append(items, key+":"+v.expr(expr.Properties[key]))
	}
	return v.list("object", items)
}

func (v stringVisitor) VisitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("(%s %s %s)", expr.Op, v.expr(expr.Left), v.expr(expr.Right))
}

func (v stringVisitor) VisitUnaryExpr(expr *UnaryExpr) R {
	if expr.Postfix {
		return fmt.Sprintf("(%s %s)", v.expr(expr.Operand), expr.Op)
	}
	return fmt.Sprintf("(%s %s)", expr.Op, v.expr(expr.Operand))
}

func (v stringVisitor) VisitCallExpr(expr *CallExpr) R {
	items := []string{v.expr(expr.Callee)}
	for _, arg := range expr.Arguments {
		items = append(items, v.expr(arg))
	}
	return v.list("call", items)
}

func (v stringVisitor) VisitFunctionExpr(expr *FunctionExpr) R {
	var items []string
	if expr.Name != nil {
		items = append(items, expr.Name.Name)
	}
	var params []string
	for _, param := range expr.Params {
		if param != nil {
			params = append(params, param.Name)
		}
	}
	items = append(items, "("+strings.Join(params, " ")+")")
	if expr.Body != nil {
		items = append(items, v.stmt(expr.Body))
	}
	return v.list("function", items)
}

func (v stringVisitor) VisitVarStmt(stmt *VarStmt) R {
	items := []string{"()"}
	if stmt.Name != nil {
		items[0] = stmt.Name.Name
	}
	if stmt.Initializer != nil {
		items = append(items, v.expr(stmt.Initializer))
	}
	return v.list(stmt.Kind.String(), items)
}

func (v stringVisitor) VisitIfStmt(stmt *IfStmt) R {
	items := []string{v.expr(stmt.Condition), v.stmt(stmt.Then)}
	if stmt.Else != nil {
		items = append(items, v.stmt(stmt.Else))
	}
	return v.list("if", items)
}

func (v stringVisitor) VisitForStmt(stmt *ForStmt) R {
	return v.list("for", []string{
		v.stmt(stmt.Initializer),
		v.expr(stmt.Condition),
		v.expr(stmt.Update),
		v.stmt(stmt.Body),
	})
}

func (v stringVisitor) VisitWhileStmt(stmt *WhileStmt) R {
	return v.list("while", []string{v.expr(stmt.Condition), v.stmt(stmt.Body)})
}

func (v stringVisitor) VisitReturnStmt(stmt *ReturnStmt) R {
	if stmt.Value == nil {
		return "(return)"
	}
	return v.list("return", []string{v.expr(stmt.Value)})
}

func (v stringVisitor) VisitBreakStmt(stmt *BreakStmt) R {
	return "(break)"
}

func (v stringVisitor) VisitContinueStmt(stmt *ContinueStmt) R {
	return "(continue)"
}

func (v stringVisitor) VisitTryStmt(stmt *TryStmt) R {
	items := []string{v.block(stmt.Body)}
	if c := stmt.Catch; c != nil {
		name := "()"
		if c.Name != nil {
			name = c.Name.Name
		}
		items = append(items, v.list("catch", []string{name, v.block(c.Body)}))
	}
	if stmt.Finally != nil {
		items = append(items, v.list("finally", []string{v.block(stmt.Finally)}))
	}
	return v.list("try", items)
}

func (v stringVisitor) VisitBlockStmt(stmt *BlockStmt) R {
	var items []string
	for _, s := range stmt.Stmts {
		items = append(items, v.stmt(s))
	}
	return v.list("block", items)
}

func (v stringVisitor) VisitExprStmt(stmt *ExprStmt) R {
	return v.expr(stmt.Expression)
}

// block guards against a nil *BlockStmt turning into a non-nil Stmt
func (v stringVisitor) block(b *BlockStmt) string {
	if b == nil {
		return "()"
	}
	return v.stmt(b)
}
