package internal

//go:generate sh -c "go run ../cmd/astgen Expr > expr.go"
//go:generate sh -c "go run ../cmd/astgen Stmt > stmt.go"

// R is the result of a visitor method
type R interface{}

// Node is anything the parser can return: a statement or an expression
type Node interface {
	Span() Span
}

// Expr is an expression node
type Expr interface {
	Node
	Accept(ExprVisitor) R
}

// Stmt is a statement node
type Stmt interface {
	Node
	Accept(StmtVisitor) R
}

// LiteralKind tells which scalar a LiteralExpr holds
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitBoolean
	LitInteger
	LitDouble
	LitString
)

func (k LiteralKind) String() string {
	switch k {
	case LitBoolean:
		return "boolean"
	case LitInteger:
		return "integer"
	case LitDouble:
		return "double"
	case LitString:
		return "string"
	}
	return "null"
}

// DeclKind is the keyword that introduced a variable declaration
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclLet
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	}
	return "var"
}

// CatchClause is the catch part of a try statement
type CatchClause struct {
	Name *IdentifierExpr
	Body *BlockStmt
	Loc  Span
}

// Span returns the source range of the clause
func (c *CatchClause) Span() Span {
	return c.Loc
}
