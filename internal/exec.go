package internal

import (
	"errors"

	"github.com/sirupsen/logrus"

	"lox/internal/tokens"
)

// Interpreter evaluates statements against a chain of scopes rooted at
// globals. Bindings in globals persist across calls to Interpret.
type Interpreter struct {
	globals *env
	env     *env

	printer  IPrinter
	reporter Reporter
	logger   logrus.FieldLogger
	echo     bool
}

// NewInterpreter creates an interpreter with a fresh root scope
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	globals := newEnv(nil)
	i := &Interpreter{
		globals: globals,
		env:     globals,
		printer: p,
		echo:    true,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = discardLogger()
	}
	if i.reporter == nil {
		i.reporter = &printerReporter{printer: p}
	}
	return i
}

// Interpret executes stmts in order. The first runtime error is reported
// and stops the remaining statements.
func (e *Interpreter) Interpret(stmts []Stmt) error {
	e.env = e.globals
	for _, s := range stmts {
		if err := e.executeTop(s); err != nil {
			var runErr *RuntimeError
			if errors.As(err, &runErr) {
				e.logger.WithFields(logrus.Fields{
					"line":   runErr.Token.Line,
					"lexeme": runErr.Token.Lexeme,
				}).Debug("runtime error")
				e.reporter.Report(runErr.Token.Line, runErr.Token.where(), runErr.Message)
			}
			return err
		}
	}
	return nil
}

// executeTop echoes the value of top level expression statements
func (e *Interpreter) executeTop(s Stmt) error {
	st, ok := s.(*exprStmt)
	if !ok || !e.echo {
		return e.execute(s)
	}
	value, err := e.evaluate(st.expression)
	if err != nil {
		return err
	}
	e.printer.Println(stringify(value))
	return nil
}

func (e *Interpreter) execute(s Stmt) error {
	switch st := s.(type) {
	case *exprStmt:
		_, err := e.evaluate(st.expression)
		return err
	case *printStmt:
		value, err := e.evaluate(st.expression)
		if err != nil {
			return err
		}
		e.printer.Println(stringify(value))
		return nil
	case *varStmt:
		var value Value = nilValue
		if st.initializer != nil {
			var err error
			value, err = e.evaluate(st.initializer)
			if err != nil {
				return err
			}
		}
		e.env.define(st.name.Lexeme, value)
		return nil
	case *blockStmt:
		return e.executeBlock(st.stmts, newEnv(e.env))
	}
	panic("unreachable: unknown statement")
}

func (e *Interpreter) executeBlock(stmts []Stmt, env *env) error {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if err := e.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Interpreter) evaluate(expr Expr) (Value, error) {
	switch ex := expr.(type) {
	case *literalExpr:
		return ex.value, nil
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *variableExpr:
		return e.env.get(ex.name)
	case *assignExpr:
		return e.evaluateAssign(ex)
	case *unaryExpr:
		return e.evaluateUnary(ex)
	case *binaryExpr:
		return e.evaluateBinary(ex)
	case *ternaryExpr:
		return e.evaluateTernary(ex)
	}
	panic("unreachable: unknown expression")
}

func (e *Interpreter) evaluateAssign(expr *assignExpr) (Value, error) {
	value, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if err := e.env.assign(expr.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Interpreter) evaluateUnary(expr *unaryExpr) (Value, error) {
	value, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Kind {
	case tokens.BANG:
		return loxBool(!truthy(value)), nil
	case tokens.MINUS:
		valueNum, ok := value.(loxNumber)
		if !ok {
			return nil, newRuntimeError(expr.operator, ErrOperandNumber)
		}
		return -valueNum, nil
	}
	return nil, newRuntimeError(expr.operator, errUndefinedOp)
}

func (e *Interpreter) evaluateBinary(expr *binaryExpr) (Value, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	op, ok := binaryOperators[expr.operator.Kind]
	if !ok {
		return nil, newRuntimeError(expr.operator, errUndefinedOp)
	}
	value, err := binaryOperations[op](left, right)
	if err != nil {
		return nil, newRuntimeError(expr.operator, err)
	}
	return value, nil
}

// evaluateTernary only evaluates the selected branch
func (e *Interpreter) evaluateTernary(expr *ternaryExpr) (Value, error) {
	condition, err := e.evaluate(expr.condition)
	if err != nil {
		return nil, err
	}
	if truthy(condition) {
		return e.evaluate(expr.left)
	}
	return e.evaluate(expr.right)
}
