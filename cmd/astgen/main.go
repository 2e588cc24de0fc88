package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

var families = map[string][]string{
	"Expr": {
		"Identifier: Name string",
		"Literal: Kind LiteralKind, Value interface{}",
		"Array: Elements []Expr",
		"Object: Properties map[string]Expr",
		"Binary: Op BinaryOp, Left Expr, Right Expr",
		"Unary: Op UnaryOp, Operand Expr, Postfix bool",
		"Call: Callee Expr, Arguments []Expr",
		"Function: Name *IdentifierExpr, Params []*IdentifierExpr, Body *BlockStmt",
	},
	"Stmt": {
		"Var: Kind DeclKind, Name *IdentifierExpr, Initializer Expr",
		"If: Condition Expr, Then Stmt, Else Stmt",
		"For: Initializer Stmt, Condition Expr, Update Expr, Body Stmt",
		"While: Condition Expr, Body Stmt",
		"Return: Value Expr",
		"Break:",
		"Continue:",
		"Try: Body *BlockStmt, Catch *CatchClause, Finally *BlockStmt",
		"Block: Stmts []Stmt",
		"Expr: Expression Expr",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astgen Expr|Stmt")
		os.Exit(2)
	}
	types, ok := families[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(2)
	}
	src, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Stdout.Write(src)
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by astgen. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start Visitor interface
	out += fmt.Sprintf("// %sVisitor is implemented by walkers of %s nodes\n", baseName, strings.ToLower(baseName))
	out += fmt.Sprintf("type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := name + baseName
		out += "\tVisit" + structType + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	if fields != "" {
		for _, field := range strings.Split(fields, ",") {
			out += "\t" + strings.TrimSpace(field) + "\n"
		}
	}
	out += "\tLoc Span\n"
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") Accept(visitor " + baseName + "Visitor) R {\n"
	out += "\treturn visitor.Visit" + structName + "(s)\n"
	out += "}\n\n"
	out += "func (s *" + structName + ") Span() Span {\n"
	out += "\treturn s.Loc\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
