package internal

import (
	"fmt"

	"lox/internal/tokens"
)

// Token is a classified lexeme together with the line it was scanned on.
// Tokens are never modified after the lexer emits them.
type Token struct {
	Kind    tokens.TokenType
	Lexeme  string
	Literal Value
	Line    int
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, t.Literal)
}

// where describes the token position for diagnostics
func (t *Token) where() string {
	if t.Kind == tokens.EOF {
		return " at end"
	}
	return " at '" + t.Lexeme + "'"
}
