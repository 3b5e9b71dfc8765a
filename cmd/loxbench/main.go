package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"lox/internal"
)

var source = `
var a = 1;
{
    var a = a + 1;
    a = a * 2 > 3 ? "big" * 3 : a;
}
a = a + 1;
`

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) {
	return 0, nil
}

func (discardPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return 0, nil
}

func (discardPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return 0, nil
}

func main() {
	iterations := flag.Int("n", 10000, "number of runs")
	flag.Parse()
	if *iterations < 1 {
		*iterations = 1
	}

	if flag.NArg() == 1 {
		b, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			logrus.WithError(err).Fatal("read script")
		}
		source = string(b)
	}

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		if outcome := internal.RunSourceWithPrinter(source, discardPrinter{}); outcome != internal.OutcomeOK {
			logrus.WithField("outcome", outcome.String()).Fatal("script failed")
		}
	}
	elapsed := time.Since(start)

	logrus.WithFields(logrus.Fields{
		"iterations": *iterations,
		"elapsed":    elapsed,
		"per_run":    elapsed / time.Duration(*iterations),
	}).Info("benchmark finished")
	fmt.Println("Time elapsed is:", elapsed)
}
