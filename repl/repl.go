/*
File    : golox/repl/repl.go
Package : repl

Package repl implements the interactive Read-Eval-Print Loop: each line
the user enters is scanned, parsed, resolved, and interpreted against a
single persistent Interpreter, so a function or variable defined on one
line survives into the next. It is adapted from the teacher's
repl.Repl (repl/repl.go) — same readline-backed loop, same banner/
separator-line presentation, same "read a line, run it, keep going
even after an error" shape — retargeted at the Lox pipeline and its two
distinct error classes (a static HadError vs. a dynamic
HadRuntimeError) instead of a single panic/recover catch-all.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ndjordjevic/golox/interpreter"
	"github.com/ndjordjevic/golox/lexer"
	"github.com/ndjordjevic/golox/parser"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL holds the banner/prompt presentation for an interactive session.
type REPL struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a REPL with the given presentation strings.
func New(banner, version, line, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner and basic usage instructions.
func (r *REPL) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "golox "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type Lox statements and press enter.")
	cyanColor.Fprintln(writer, "Type 'exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, writing program output and diagnostics to
// writer. A single resolver and interpreter persist across lines, so
// declarations made on one line are visible on the next; a line that
// fails to parse or resolve does not affect lines already run.
func (r *REPL) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	reporter := report.New(writer)
	interp := interpreter.New(reporter, writer)
	interp.REPLMode = true
	res := resolver.New(reporter)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		rl.SaveHistory(line)
		r.evalLine(reporter, interp, res, line)
	}
}

// evalLine runs one line of input through the full pipeline. The
// reporter's flags are reset first so an earlier line's error does not
// leak into this one's (spec.md §7: reset between REPL lines, never
// mid-pipeline).
func (r *REPL) evalLine(reporter *report.Reporter, interp *interpreter.Interpreter, res *resolver.Resolver, line string) {
	reporter.Reset()

	tokens := lexer.New(line, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return
	}

	res.Resolve(statements)
	if reporter.HadError {
		return
	}

	interp.Interpret(statements, res.Locals)
}
