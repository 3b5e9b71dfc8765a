package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lox/internal"
	"lox/internal/config"
)

const (
	exitOK    = 0
	exitUsage = 64
	exitIO    = 74
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file (default $LOX_CONFIG or ~/.loxrc.yml)")
	logLevel := flags.String("log-level", "", "override the configured log level")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "Usage: lox [script]")
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	c := color.New()
	c.SetOutput(stdout)
	if !cfg.Color || os.Getenv("NO_COLOR") != "" {
		c.Disable()
	}

	interp := internal.NewInterpreter(
		&writerPrinter{out: stdout},
		internal.WithLogger(logger),
		internal.WithReporter(&colorReporter{color: c, out: stderr}),
		internal.WithEcho(cfg.Echo),
	)

	if flags.NArg() == 1 {
		return runFile(interp, logger, flags.Arg(0), stderr)
	}
	runPrompt(interp, cfg.Prompt, c, stdin, stdout)
	return exitOK
}

func runFile(interp *internal.Interpreter, logger logrus.FieldLogger, path string, stderr io.Writer) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}

	outcome := interp.Run(string(b))
	logger.WithFields(logrus.Fields{
		"path":    absPath,
		"outcome": outcome.String(),
	}).Debug("script finished")
	return outcome.ExitCode()
}

// runPrompt keeps one root scope for the whole session; errors only
// affect the line they occur on.
func runPrompt(interp *internal.Interpreter, prompt string, c *color.Color, stdin io.Reader, stdout io.Writer) {
	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, c.Cyan(prompt))
		if !scanner.Scan() {
			fmt.Fprintln(stdout)
			return
		}
		interp.Run(scanner.Text())
	}
}

type writerPrinter struct {
	out io.Writer
}

func (p *writerPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(p.out, a...)
}

func (p *writerPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (p *writerPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

type colorReporter struct {
	color *color.Color
	out   io.Writer
}

func (r *colorReporter) Report(line int, where, message string) {
	fmt.Fprintln(r.out, r.color.Red(fmt.Sprintf("[line %d] Error%s: %s", line, where, message)))
}
