package internal

import (
	"strings"
)

// PrintTree renders statements as parenthesized prefix expressions, one
// statement per line
func PrintTree(stmts []Stmt) string {
	var out strings.Builder
	for _, st := range stmts {
		out.WriteString(stmtString(st))
		out.WriteString("\n")
	}
	return out.String()
}

func stmtString(s Stmt) string {
	switch st := s.(type) {
	case *exprStmt:
		return parenthesize(";", st.expression)
	case *printStmt:
		return parenthesize("print", st.expression)
	case *varStmt:
		if st.initializer == nil {
			return "(var " + st.name.Lexeme + ")"
		}
		return "(var " + st.name.Lexeme + " " + exprString(st.initializer) + ")"
	case *blockStmt:
		out := "(block"
		for _, inner := range st.stmts {
			out += " " + stmtString(inner)
		}
		return out + ")"
	}
	panic("unreachable: unknown statement")
}

func exprString(e Expr) string {
	switch ex := e.(type) {
	case *literalExpr:
		if str, ok := ex.value.(loxString); ok {
			return `"` + string(str) + `"`
		}
		return stringify(ex.value)
	case *groupingExpr:
		return parenthesize("group", ex.expression)
	case *variableExpr:
		return ex.name.Lexeme
	case *assignExpr:
		return "(= " + ex.name.Lexeme + " " + exprString(ex.value) + ")"
	case *unaryExpr:
		return parenthesize(ex.operator.Lexeme, ex.right)
	case *binaryExpr:
		return parenthesize(ex.operator.Lexeme, ex.left, ex.right)
	case *ternaryExpr:
		return parenthesize("?:", ex.condition, ex.left, ex.right)
	}
	panic("unreachable: unknown expression")
}

func parenthesize(name string, exprs ...Expr) string {
	out := "(" + name
	for _, e := range exprs {
		out += " " + exprString(e)
	}
	return out + ")"
}
