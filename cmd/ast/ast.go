package main

import (
	"fmt"
	"os"
	"strings"
)

// Usage: go run ./cmd/ast (Expr|Stmt)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast (Expr|Stmt)")
		os.Exit(64)
	}
	var out string
	switch os.Args[1] {
	case "Stmt":
		out = generateAst("Stmt", "is a statement node", []string{
			"Expr: expression Expr",
			"Print: keyword *Token, expression Expr",
			"Var: name *Token, initializer Expr",
			"Block: stmts []Stmt",
		})
	case "Expr":
		out = generateAst("Expr", "is an expression node", []string{
			"Assign: name *Token, value Expr",
			"Binary: left Expr, operator *Token, right Expr",
			"Grouping: expression Expr",
			"Literal: value Value",
			"Ternary: condition Expr, question *Token, left Expr, right Expr",
			"Unary: operator *Token, right Expr",
			"Variable: name *Token",
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown node family %q\n", os.Args[1])
		os.Exit(64)
	}
	fmt.Print(out)
}

func generateAst(baseName, doc string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface. The marker method closes the set of variants.
	out += "// " + baseName + " " + doc + ".\n"
	out += "type " + baseName + " interface {\n"
	out += "\t" + strings.ToLower(baseName) + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return strings.TrimSuffix(out, "\n")
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Method Definition

	return out
}
