package internal

import (
	"lox/internal/tokens"
)

// parser stores parser data
type parser struct {
	tokens  []*Token
	current int

	stmts    []Stmt
	errors   ErrorList
	reporter Reporter
}

// Parse turns tokens into statements. A syntax error discards the rest of
// the statement it occurs in; parsing resumes at the next statement.
func Parse(tks []*Token, reporter Reporter) ([]Stmt, ErrorList) {
	p := &parser{
		tokens:   tks,
		reporter: reporter,
	}
	p.parse()
	return p.stmts, p.errors
}

func (p *parser) parse() {
	if len(p.tokens) == 0 {
		return
	}
	for !p.isAtEnd() {
		st := p.parseStmt()
		// A statement that failed to parse is dropped after synchronizing
		if st != nil {
			p.stmts = append(p.stmts, st)
		}
	}
}

func (p *parser) parseStmt() (st Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*SyntaxError); !ok {
				panic(r)
			}
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() Stmt {
	if p.match(tokens.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() Stmt {
	name := p.consume(tokens.IDENTIFIER, errExpectedIdentifier)

	var init Expr
	if p.match(tokens.EQUAL) {
		init = p.expression()
	}
	p.terminator(errExpectedSemicolonVar)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() Stmt {
	if p.match(tokens.PRINT) {
		return p.printStmt()
	}
	if p.match(tokens.LEFT_BRACE) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() Stmt {
	keyword := p.previous()
	value := p.expression()
	p.terminator(errExpectedSemicolonValue)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) block() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.check(tokens.RIGHT_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tokens.RIGHT_BRACE, errUnclosedBlock)
	return stmts
}

func (p *parser) expressionStmt() Stmt {
	expr := p.expression()
	p.terminator(errExpectedSemicolonExpr)
	return &exprStmt{expression: expr}
}

// terminator consumes the ';' closing a statement. The last statement of
// a source may leave it out.
func (p *parser) terminator(err error) {
	if p.isAtEnd() {
		return
	}
	p.consume(tokens.SEMICOLON, err)
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.ternary()
	if p.match(tokens.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		// Reported without synchronizing, the parser is not confused
		p.setError(equals, errInvalidAssignment)
	}
	return expr
}

func (p *parser) ternary() Expr {
	expr := p.equality()
	if p.match(tokens.QUESTION) {
		question := p.previous()
		left := p.expression()
		p.consume(tokens.COLON, errExpectedColon)
		right := p.expression()
		return &ternaryExpr{
			condition: expr,
			question:  question,
			left:      left,
			right:     right,
		}
	}
	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()
	for p.match(tokens.BANG_EQUAL, tokens.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()
	for p.match(tokens.GREATER, tokens.GREATER_EQUAL, tokens.LESS, tokens.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()
	for p.match(tokens.MINUS, tokens.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()
	for p.match(tokens.SLASH, tokens.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() Expr {
	if p.match(tokens.BANG, tokens.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(tokens.NUMBER, tokens.STRING) {
		return &literalExpr{value: p.previous().Literal}
	}
	if p.match(tokens.FALSE) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tokens.TRUE) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tokens.NIL) {
		return &literalExpr{value: nilValue}
	}
	if p.match(tokens.IDENTIFIER) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tokens.LEFT_PAREN) {
		expr := p.expression()
		p.consume(tokens.RIGHT_PAREN, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	panic(p.setError(p.peek(), errExpectedExpr))
}

func (p *parser) consume(tk tokens.TokenType, err error) *Token {
	if p.check(tk) {
		return p.advance()
	}
	panic(p.setError(p.peek(), err))
}

func (p *parser) setError(tk *Token, err error) *SyntaxError {
	syntaxErr := &SyntaxError{
		Line:  tk.Line,
		Where: tk.where(),
		Err:   err,
	}
	p.errors = append(p.errors, syntaxErr)
	if p.reporter != nil {
		p.reporter.Report(syntaxErr.Line, syntaxErr.Where, err.Error())
	}
	return syntaxErr
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(types ...tokens.TokenType) bool {
	for _, tk := range types {
		if p.check(tk) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokens.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == tk
}

func (p *parser) peek() *Token {
	return p.tokens[p.current]
}

func (p *parser) previous() *Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF
}

// synchronize discards tokens until a statement boundary
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == tokens.SEMICOLON {
			return
		}

		switch p.peek().Kind {
		case tokens.CLASS, tokens.FUN, tokens.VAR, tokens.FOR,
			tokens.IF, tokens.WHILE, tokens.PRINT, tokens.RETURN:
			return
		}

		p.advance()
	}
}
