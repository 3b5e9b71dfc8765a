package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"

	"lox/internal"
)

type stderrReporter struct{}

func (stderrReporter) Report(line int, where, message string) {
	fmt.Fprintf(os.Stderr, "[line %d] Error%s: %s\n", line, where, message)
}

func main() {
	dumpTokens := flag.Bool("tokens", false, "dump the token stream instead of the tree")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: loxast [-tokens] /path/to/source.lox")
		os.Exit(64)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	b, err := io.ReadAll(file)
	if err != nil {
		log.Fatal(err)
	}

	source := string(b)

	tks, lexErrs := internal.Scan(source, stderrReporter{})
	if *dumpTokens {
		pretty.Println(tks)
		return
	}
	if len(lexErrs) > 0 {
		os.Exit(65)
	}

	stmts, parseErrs := internal.Parse(tks, stderrReporter{})
	if len(parseErrs) > 0 {
		os.Exit(65)
	}

	fmt.Print(internal.PrintTree(stmts))
}
