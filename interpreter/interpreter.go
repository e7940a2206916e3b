/*
File    : golox/interpreter/interpreter.go
Package : interpreter

Package interpreter walks a resolved Lox program and executes it
directly against the AST, without compiling to any intermediate form —
the tree-walking design spec.md calls for. Its shape is grounded on the
teacher's eval.Evaluator (eval/evaluator.go: globals/environment state,
an io.Writer output sink, a single Eval entry point dispatching via
type switch) generalized for single inheritance, bound methods, and the
resolver's precomputed scope distances, none of which GoMix's flat
function/struct model needs.
*/
package interpreter

import (
	"io"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/environment"
	"github.com/ndjordjevic/golox/loxvalue"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

// Interpreter holds the mutable execution state for one program run:
// the permanent global scope, the current (innermost) scope, the
// resolver's scope-distance side table, and where program output goes.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      map[ast.ID]int
	reporter    *report.Reporter
	writer      io.Writer

	// REPLMode makes a bare expression statement print its value, the
	// one documented behavioral difference between `run`/script
	// execution and the interactive REPL (spec.md §4.6).
	REPLMode bool
}

// New creates an Interpreter whose global scope has `clock` predefined,
// writing Print statement output to w and reporting runtime errors
// through r.
func New(r *report.Reporter, w io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", loxvalue.Clock())
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.ID]int),
		reporter:    r,
		writer:      w,
	}
}

// Interpret runs a whole resolved program, using locals (produced by
// resolver.Resolver.Resolve) to decide which variable references read
// directly from a known scope distance versus falling back to a
// dynamic global lookup. Execution stops at the first runtime error,
// which is reported through the Interpreter's Reporter.
func (i *Interpreter) Interpret(statements []ast.Stmt, locals map[ast.ID]int) {
	i.locals = locals
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			i.reporter.RuntimeErrorOccurred(err)
			return
		}
	}
}

// ExecuteBlock runs statements with environment env as the current
// scope, restoring the previous scope on the way out — including when
// unwinding past a panicked loxvalue.ReturnSignal, since the deferred
// restore always runs regardless of how this function exits. This is
// the method loxvalue.LoxFunction.Call uses to run a function body,
// satisfying the loxvalue.Executor interface without loxvalue needing
// to import this package.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable reads name's value, using the resolver's recorded
// scope distance for expr when one exists, or falling back to a
// dynamic lookup in the global scope when expr was never resolved
// (true globals, and any reference the resolver could not place).
func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (interface{}, *report.RuntimeError) {
	if distance, ok := i.locals[expr.ID()]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}
