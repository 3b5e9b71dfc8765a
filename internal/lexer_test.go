package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lox/internal/tokens"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expected []Token) {
	t.Helper()

	tks, errs := Scan(input, &testReporter{})
	require.Empty(t, errs, "unexpected lexical errors for %q", input)
	require.Len(t, tks, len(expected), "wrong token count for %q", input)
	for i, exp := range expected {
		assert.Equal(t, exp.Kind, tks[i].Kind, "tests[%d] - wrong kind", i)
		assert.Equal(t, exp.Lexeme, tks[i].Lexeme, "tests[%d] - wrong lexeme", i)
		assert.Equal(t, exp.Literal, tks[i].Literal, "tests[%d] - wrong literal", i)
		assert.Equal(t, exp.Line, tks[i].Line, "tests[%d] - wrong line", i)
	}
}

func TestLexerPunctuation(t *testing.T) {
	testLexer(t, "(){},.-+;*?:/", []Token{
		{Kind: tokens.LEFT_PAREN, Lexeme: "(", Line: 1},
		{Kind: tokens.RIGHT_PAREN, Lexeme: ")", Line: 1},
		{Kind: tokens.LEFT_BRACE, Lexeme: "{", Line: 1},
		{Kind: tokens.RIGHT_BRACE, Lexeme: "}", Line: 1},
		{Kind: tokens.COMMA, Lexeme: ",", Line: 1},
		{Kind: tokens.DOT, Lexeme: ".", Line: 1},
		{Kind: tokens.MINUS, Lexeme: "-", Line: 1},
		{Kind: tokens.PLUS, Lexeme: "+", Line: 1},
		{Kind: tokens.SEMICOLON, Lexeme: ";", Line: 1},
		{Kind: tokens.STAR, Lexeme: "*", Line: 1},
		{Kind: tokens.QUESTION, Lexeme: "?", Line: 1},
		{Kind: tokens.COLON, Lexeme: ":", Line: 1},
		{Kind: tokens.SLASH, Lexeme: "/", Line: 1},
		{Kind: tokens.EOF, Line: 1},
	})
}

func TestLexerOperators(t *testing.T) {
	testLexer(t, "! != = == < <= > >=", []Token{
		{Kind: tokens.BANG, Lexeme: "!", Line: 1},
		{Kind: tokens.BANG_EQUAL, Lexeme: "!=", Line: 1},
		{Kind: tokens.EQUAL, Lexeme: "=", Line: 1},
		{Kind: tokens.EQUAL_EQUAL, Lexeme: "==", Line: 1},
		{Kind: tokens.LESS, Lexeme: "<", Line: 1},
		{Kind: tokens.LESS_EQUAL, Lexeme: "<=", Line: 1},
		{Kind: tokens.GREATER, Lexeme: ">", Line: 1},
		{Kind: tokens.GREATER_EQUAL, Lexeme: ">=", Line: 1},
		{Kind: tokens.EOF, Line: 1},
	})
}

func TestLexerLiterals(t *testing.T) {
	testLexer(t, `12 3.25 "hi there" 4.`, []Token{
		{Kind: tokens.NUMBER, Lexeme: "12", Literal: loxNumber(12), Line: 1},
		{Kind: tokens.NUMBER, Lexeme: "3.25", Literal: loxNumber(3.25), Line: 1},
		{Kind: tokens.STRING, Lexeme: `"hi there"`, Literal: loxString("hi there"), Line: 1},
		{Kind: tokens.NUMBER, Lexeme: "4", Literal: loxNumber(4), Line: 1},
		{Kind: tokens.DOT, Lexeme: ".", Line: 1},
		{Kind: tokens.EOF, Line: 1},
	})
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	testLexer(t, "var orchid = nil or true_ print", []Token{
		{Kind: tokens.VAR, Lexeme: "var", Line: 1},
		{Kind: tokens.IDENTIFIER, Lexeme: "orchid", Line: 1},
		{Kind: tokens.EQUAL, Lexeme: "=", Line: 1},
		{Kind: tokens.NIL, Lexeme: "nil", Line: 1},
		{Kind: tokens.OR, Lexeme: "or", Line: 1},
		{Kind: tokens.IDENTIFIER, Lexeme: "true_", Line: 1},
		{Kind: tokens.PRINT, Lexeme: "print", Line: 1},
		{Kind: tokens.EOF, Line: 1},
	})
}

func TestLexerCommentsAndLines(t *testing.T) {
	testLexer(t, "1 // one\n\t2 // two\r\n\n\"a\nb\" 3", []Token{
		{Kind: tokens.NUMBER, Lexeme: "1", Literal: loxNumber(1), Line: 1},
		{Kind: tokens.NUMBER, Lexeme: "2", Literal: loxNumber(2), Line: 2},
		{Kind: tokens.STRING, Lexeme: "\"a\nb\"", Literal: loxString("a\nb"), Line: 5},
		{Kind: tokens.NUMBER, Lexeme: "3", Literal: loxNumber(3), Line: 5},
		{Kind: tokens.EOF, Line: 5},
	})
}

func TestLexerEmpty(t *testing.T) {
	testLexer(t, "", []Token{
		{Kind: tokens.EOF, Line: 1},
	})
}

func TestLexerUnexpectedCharacterContinues(t *testing.T) {
	reporter := &testReporter{}
	tks, errs := Scan("1 @\n# 2", reporter)

	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], ErrUnexpectedChar))
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 2, errs[1].Line)
	assert.Equal(t, []string{
		"[line 1] Error: Unexpected character.",
		"[line 2] Error: Unexpected character.",
	}, reporter.reports)

	require.Len(t, tks, 3)
	assert.Equal(t, tokens.NUMBER, tks[0].Kind)
	assert.Equal(t, tokens.NUMBER, tks[1].Kind)
	assert.Equal(t, tokens.EOF, tks[2].Kind)
}

func TestLexerUnterminatedString(t *testing.T) {
	reporter := &testReporter{}
	tks, errs := Scan("1\n\"abc\ndef", reporter)

	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrUnterminatedString))
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, "[line 2] Error: Unterminated string.", errs[0].Error())

	require.Len(t, tks, 2)
	assert.Equal(t, tokens.EOF, tks[1].Kind)
	assert.Equal(t, 3, tks[1].Line)
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "EOF", tokens.EOF.String())
	assert.Equal(t, "BANG_EQUAL", tokens.BANG_EQUAL.String())
	assert.Equal(t, "WHILE", tokens.WHILE.String())
	for word, kind := range tokens.Keywords {
		assert.NotEqual(t, "UNKNOWN", kind.String(), word)
	}
}
