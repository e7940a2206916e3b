/*
File    : golox/report/report.go
Package : report

Package report centralizes the two process-scoped error flags the
pipeline stages share (HadError for lexical/syntactic/static-semantic
problems, HadRuntimeError for evaluation-time failures) along with the
diagnostic formatting rules fixed by the specification. It plays the
role the teacher's Evaluator.CreateError/Par error fields play, but as
its own dependency-free sink so the core packages (lexer, parser,
resolver, interpreter) never need to import an output or color library
directly — only the outermost REPL/CLI layers decide how a report is
displayed.
*/
package report

import (
	"fmt"
	"io"

	"github.com/ndjordjevic/golox/token"
)

// Reporter accumulates the two error flags and writes formatted
// diagnostics to a caller-supplied sink. A fresh Reporter (or a Reset
// one) must be used per independent compilation unit — the spec
// requires the flags to be reset between REPL lines but never mid-
// pipeline.
type Reporter struct {
	Stderr           io.Writer
	HadError         bool
	HadRuntimeError  bool
}

// New creates a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Stderr: w}
}

// Reset clears both error flags, ready for the next independent
// compilation (e.g. the next REPL input line).
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a static error known only by line number, the plainest
// form: "[line N] Error: <message>".
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a static error tied to a specific token, choosing
// the "at end"/"at '<lexeme>'" qualifier the spec requires.
func (r *Reporter) TokenError(t token.Token, message string) {
	if t.Type == token.EOF {
		r.report(t.Line, " at end", message)
	} else {
		r.report(t.Line, fmt.Sprintf(" at '%s'", t.Lexeme), message)
	}
}

// report formats and emits one static diagnostic and marks HadError.
func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Stderr, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeError is the concrete error value raised by the interpreter
// for operand-type, undefined-variable, undefined-property,
// uncallable-callee, arity, and superclass-type failures. It carries
// the offending token so the line can be reported, and is distinct
// from the non-local return-unwind signal — the two must never be
// mistaken for each other (spec.md §7).
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// NewRuntimeError builds a RuntimeError anchored on the given token.
func NewRuntimeError(t token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: t, Message: fmt.Sprintf(format, args...)}
}

// RuntimeErrorOccurred prints a runtime error in the required two-line
// form ("<message>\n[line N]") and sets HadRuntimeError.
func (r *Reporter) RuntimeErrorOccurred(err *RuntimeError) {
	fmt.Fprintf(r.Stderr, "%s\n[line %d]\n", err.Message, err.Token.Line)
	r.HadRuntimeError = true
}
