/*
File    : golox/cmd/golox/main.go
Package : main

Package main is the golox entry point: a small command dispatcher,
grounded on the teacher's main/main.go (os.Args-based mode selection,
--help/--version flags, colored diagnostics), retargeted at the four
sub-commands spec.md §6 fixes instead of Go-Mix's REPL/file/server
split: `tokenize`, `parse`, `evaluate`, `run`, plus a bare `golox`
falling back to the interactive REPL the way `go-mix` with no
arguments does.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/interpreter"
	"github.com/ndjordjevic/golox/lexer"
	"github.com/ndjordjevic/golox/parser"
	"github.com/ndjordjevic/golox/repl"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/resolver"
	"github.com/ndjordjevic/golox/token"
)

// VERSION is the current version of the golox interpreter.
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "golox> "

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ____   ___    __    ___  __  __
  / ___) / _ \  / /   / _ \ \ \/ /
 | |  _ | | | |/ /   | | | | \  /
 | |_| || |_| / /___ | |_| | /  \
  \____) \___/\____/  \___/ /_/\_\
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on os.Args: `--help`/`-h` and `--version`/`-v` print
// information and exit 0; one of the four fixed sub-commands reads a
// source file and runs it through the requested stage of the pipeline;
// no arguments at all starts the interactive REPL.
func main() {
	if len(os.Args) < 2 {
		repler := repl.New(BANNER, VERSION, LINE, PROMPT)
		repler.Start(os.Stdout)
		return
	}

	arg := os.Args[1]
	if arg == "--help" || arg == "-h" {
		showHelp()
		os.Exit(0)
	}
	if arg == "--version" || arg == "-v" {
		showVersion()
		os.Exit(0)
	}

	if len(os.Args) < 3 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing filename. Usage: golox %s <file>\n", arg)
		os.Exit(1)
	}
	command := arg
	fileName := os.Args[2]

	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[IO ERROR] %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		os.Exit(runTokenize(string(source)))
	case "parse":
		os.Exit(runParse(string(source)))
	case "evaluate":
		os.Exit(runEvaluate(string(source), true))
	case "run":
		os.Exit(runEvaluate(string(source), false))
	default:
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Unknown command '%s'. Expected one of: tokenize, parse, evaluate, run.\n", command)
		os.Exit(1)
	}
}

// runTokenize scans source and prints one line per token in the fixed
// `<TYPE> <LEXEME> <LITERAL>` format, LITERAL being `null` unless the
// token is a STRING (raw value) or NUMBER (decimal with at least one
// fractional digit) — deliberately NOT loxvalue.Stringify's rule,
// which trims a trailing `.0` instead of guaranteeing one.
func runTokenize(source string) int {
	reporter := report.New(os.Stderr)
	tokens := lexer.New(source, reporter).ScanTokens()

	for _, tok := range tokens {
		fmt.Println(formatToken(tok))
	}
	if reporter.HadError {
		return 65
	}
	return 0
}

func formatToken(tok token.Token) string {
	literal := "null"
	switch tok.Type {
	case token.STRING:
		literal = tok.Literal.(string)
	case token.NUMBER:
		literal = formatNumberLiteral(tok.Literal.(float64))
	}
	return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, literal)
}

// formatNumberLiteral renders a NUMBER token's literal with at least
// one fractional digit, e.g. `76` becomes `76.0`, `76.5` stays
// `76.5`. strconv.FormatFloat alone never adds a fractional part for
// an integral value, so that case is handled explicitly.
func formatNumberLiteral(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	for _, c := range text {
		if c == '.' {
			return text
		}
	}
	return text + ".0"
}

// runParse scans and parses source, printing the s-expression form of
// each statement. Static errors during either stage are reported and
// exit 65; no evaluation is attempted.
func runParse(source string) int {
	reporter := report.New(os.Stderr)
	tokens := lexer.New(source, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return 65
	}

	printer := ast.NewPrinter()
	fmt.Println(printer.PrintStatements(statements))
	return 0
}

// runEvaluate drives the whole pipeline: scan, parse, resolve, and
// (absent any static error) interpret. replMode controls whether a
// bare expression statement additionally prints its value, matching
// `evaluate`'s REPL-like single-program semantics versus `run`'s
// script semantics (spec.md §4.6).
func runEvaluate(source string, replMode bool) int {
	reporter := report.New(os.Stderr)
	tokens := lexer.New(source, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return 65
	}

	res := resolver.New(reporter)
	res.Resolve(statements)
	if reporter.HadError {
		return 65
	}

	interp := interpreter.New(reporter, os.Stdout)
	interp.REPLMode = replMode
	interp.Interpret(statements, res.Locals)
	if reporter.HadRuntimeError {
		return 70
	}
	return 0
}

func showHelp() {
	cyanColor.Println("golox - A Tree-Walking Lox Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                        Start interactive REPL mode")
	yellowColor.Println("  golox tokenize <file>        Print the token stream")
	yellowColor.Println("  golox parse <file>           Print the parsed AST as s-expressions")
	yellowColor.Println("  golox evaluate <file>        Parse, resolve, and run, echoing bare expressions")
	yellowColor.Println("  golox run <file>             Parse, resolve, and run as a script")
	yellowColor.Println("  golox --help                 Display this help message")
	yellowColor.Println("  golox --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXIT CODES:")
	yellowColor.Println("  0   no error")
	yellowColor.Println("  65  static error (lexical, syntactic, or resolver)")
	yellowColor.Println("  70  runtime error")
}

func showVersion() {
	cyanColor.Println("golox - A Tree-Walking Lox Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
}
