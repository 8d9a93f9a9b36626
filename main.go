package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	"golang.org/x/term"

	"go.creack.net/gocalc/calc"
	"go.creack.net/gocalc/tui"
)

type options struct {
	precision   int
	dumpAST     bool
	interactive bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("gocalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gocalc [flags] [expression ...]\n\n")
		fmt.Fprintf(stderr, "Without expressions, reads one expression per line from stdin,\n")
		fmt.Fprintf(stderr, "or starts the interactive keypad when stdin is a terminal.\n\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.precision, "precision", 0, "max fractional digits of results (0 for shortest exact form)")
	fs.BoolVar(&opts.dumpAST, "ast", false, "dump the parsed expression tree to stderr")
	fs.BoolVar(&opts.interactive, "i", false, "force the interactive keypad")
	fs.BoolVar(&opts.verbose, "v", false, "log why an evaluation failed")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

type runner struct {
	opts      options
	evaluator calc.Evaluator
	stdout    io.Writer
	stderr    io.Writer
	logger    *log.Logger
}

func (r *runner) evaluate(input string) bool {
	if r.opts.dumpAST {
		if expr, err := r.evaluator.Parse(input); err == nil {
			_, _ = pretty.Fprintf(r.stderr, "%# v\n", expr)
		}
	}
	res := r.evaluator.EvaluateExpression(input)
	if !res.OK && r.opts.verbose {
		r.logger.Printf("Evaluate %q: %s (%s).", input, res.Err, res.Kind)
	}
	fmt.Fprintln(r.stdout, res.Display())
	return res.OK
}

func (r *runner) evaluateLines(in io.Reader) (bool, error) {
	scanner := bufio.NewScanner(in)
	success := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !r.evaluate(line) {
			success = false
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}
	return success, nil
}

// run returns the process exit code: 0 when every evaluation succeeded,
// 1 when at least one failed, 2 on usage errors.
func run(args []string, stdin *os.File, stdout, stderr io.Writer) (int, error) {
	opts, exprs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0, nil
	}
	if err != nil {
		return 2, nil
	}

	r := &runner{
		opts:      opts,
		evaluator: calc.Evaluator{Precision: opts.precision},
		stdout:    stdout,
		stderr:    stderr,
		logger:    log.New(stderr, "gocalc: ", 0),
	}

	if len(exprs) > 0 {
		exitCode := 0
		for _, expr := range exprs {
			if !r.evaluate(expr) {
				exitCode = 1
			}
		}
		return exitCode, nil
	}

	if opts.interactive || term.IsTerminal(int(stdin.Fd())) {
		if err := tui.Run(r.evaluator); err != nil {
			return 1, fmt.Errorf("interactive keypad: %w", err)
		}
		return 0, nil
	}

	success, err := r.evaluateLines(stdin)
	if err != nil {
		return 1, err
	}
	if !success {
		return 1, nil
	}
	return 0, nil
}

func main() {
	exitCode, err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
	os.Exit(exitCode)
}
