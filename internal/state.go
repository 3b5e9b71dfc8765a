package internal

import (
	"errors"
	"fmt"
	"strings"
)

// Reporter receives every diagnostic produced while running a source.
// Implementations must not abort; they record and return.
type Reporter interface {
	Report(line int, where, message string)
}

// SyntaxError is a lexical or parse error. Where is empty for lexical
// errors because no lexeme is available.
type SyntaxError struct {
	Line  int
	Where string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ErrorList collects the syntax errors of one pipeline stage
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns nil when the list is empty
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// RuntimeError is raised when an operator or variable lookup contract is
// violated during evaluation. Kind is one of the Err* sentinels.
type RuntimeError struct {
	Token   *Token
	Kind    error
	Message string
}

func newRuntimeError(tk *Token, kind error) *RuntimeError {
	return &RuntimeError{
		Token:   tk,
		Kind:    kind,
		Message: kind.Error(),
	}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.Token.where(), e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

// Outcome summarizes a run of the pipeline
type Outcome int

const (
	// OutcomeOK means the source ran to completion
	OutcomeOK Outcome = iota
	// OutcomeCompileError means scanning or parsing failed and nothing was evaluated
	OutcomeCompileError
	// OutcomeRuntimeError means evaluation stopped on a runtime error
	OutcomeRuntimeError
)

// ExitCode maps the outcome to the conventional sysexits code
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeCompileError:
		return 65
	case OutcomeRuntimeError:
		return 70
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeCompileError:
		return "compile error"
	case OutcomeRuntimeError:
		return "runtime error"
	default:
		return "ok"
	}
}

// Lexer errors
var ErrUnexpectedChar = errors.New("Unexpected character.")
var ErrUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedColon = errors.New("Expect ':' after then branch of ternary expression.")
var errExpectedExpr = errors.New("Expect expression.")
var errExpectedIdentifier = errors.New("Expect variable name.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errInvalidAssignment = errors.New("Invalid assignment target.")

// Runtime errors
var ErrUndefinedVariable = errors.New("Undefined variable.")
var ErrOperandNumber = errors.New("Operand must be a number.")
var ErrOperandsNumbers = errors.New("Operands must be numbers.")
var ErrDivisionByZero = errors.New("Cannot divide by zero.")
var ErrInvalidRepeat = errors.New("Operands must be two numbers or one number and one string.")
var ErrInvalidAddition = errors.New("Operands must be two numbers or two strings.")
var ErrInvalidComparison = errors.New("Operands must be numbers, strings, or both of them.")
var errUndefinedOp = errors.New("Undefined operator.")
