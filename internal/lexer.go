package internal

import (
	"strconv"
	"unicode/utf8"

	"lox/internal/tokens"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens   []*Token
	errors   ErrorList
	reporter Reporter
}

// Scan converts source into tokens terminated by a single EOF token.
// Lexical errors are reported and collected but scanning continues past them.
func Scan(source string, reporter Reporter) ([]*Token, ErrorList) {
	l := &lexer{
		source:   source,
		line:     1,
		reporter: reporter,
	}
	l.scan()
	return l.tokens, l.errors
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, &Token{
		Kind: tokens.EOF,
		Line: l.line,
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		l.emit(tokens.STAR, nil)
	case '?':
		l.emit(tokens.QUESTION, nil)
	case ':':
		l.emit(tokens.COLON, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tokens.SLASH, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tokens.BANG_EQUAL, nil)
		} else {
			l.emit(tokens.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tokens.EQUAL_EQUAL, nil)
		} else {
			l.emit(tokens.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tokens.LESS_EQUAL, nil)
		} else {
			l.emit(tokens.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tokens.GREATER_EQUAL, nil)
		} else {
			l.emit(tokens.GREATER, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.setError(ErrUnexpectedChar, l.line)
		}
	}
}

func (l *lexer) string() {
	startLine := l.line
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.setError(ErrUnterminatedString, startLine)
		return
	}

	// Consume ending "
	l.advance()

	literal := l.source[l.start+1 : l.current-1]
	l.emit(tokens.STRING, loxString(literal))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		// Consume the "."
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tokens.NUMBER, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := tokens.Keywords[identifier]
	if !ok {
		tokenType = tokens.IDENTIFIER
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() rune {
	r, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width
	return r
}

func (l *lexer) match(c rune) bool {
	if l.isAtEnd() || l.peek() != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return rune(l.source[l.current])
}

func (l *lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return rune(l.source[l.current+1])
}

func (l *lexer) emit(kind tokens.TokenType, literal Value) {
	l.tokens = append(l.tokens, &Token{
		Kind:    kind,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.line,
	})
}

func (l *lexer) setError(err error, line int) {
	l.errors = append(l.errors, &SyntaxError{
		Line: line,
		Err:  err,
	})
	if l.reporter != nil {
		l.reporter.Report(line, "", err.Error())
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
