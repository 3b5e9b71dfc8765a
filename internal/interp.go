package internal

//go:generate sh -c "go run ../cmd/ast Expr > expr.go && go run ../cmd/ast Stmt > stmt.go && gofmt -w expr.go stmt.go"

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for pipeline tracing
func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithReporter sets the diagnostics sink. By default diagnostics are
// written to stderr through the printer.
func WithReporter(r Reporter) Option {
	return func(i *Interpreter) {
		i.reporter = r
	}
}

// WithEcho controls whether top level expression statements print their value
func WithEcho(echo bool) Option {
	return func(i *Interpreter) {
		i.echo = echo
	}
}

type printerReporter struct {
	printer IPrinter
}

func (r *printerReporter) Report(line int, where, message string) {
	r.printer.Fprintln(os.Stderr, fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Run scans, parses and evaluates source. Evaluation does not start when
// scanning or parsing reported an error. Bindings made by source remain
// visible to later calls.
func (e *Interpreter) Run(source string) Outcome {
	start := time.Now()

	tks, lexErrs := Scan(source, e.reporter)
	e.logger.WithFields(logrus.Fields{
		"tokens": len(tks),
		"errors": len(lexErrs),
	}).Debug("scanned source")

	stmts, parseErrs := Parse(tks, e.reporter)
	e.logger.WithFields(logrus.Fields{
		"statements": len(stmts),
		"errors":     len(parseErrs),
	}).Debug("parsed tokens")

	if len(lexErrs) > 0 || len(parseErrs) > 0 {
		return OutcomeCompileError
	}

	err := e.Interpret(stmts)
	e.logger.WithField("elapsed", time.Since(start)).Debug("interpreted statements")
	if err != nil {
		return OutcomeRuntimeError
	}
	return OutcomeOK
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter, opts ...Option) Outcome {
	return NewInterpreter(p, opts...).Run(source)
}
