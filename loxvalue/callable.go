/*
File    : golox/loxvalue/callable.go
Package : loxvalue
*/
package loxvalue

import (
	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/environment"
	"github.com/ndjordjevic/golox/report"
)

// Executor is the slice of *interpreter.Interpreter that a Callable
// needs in order to run a function body. It is declared here, at the
// consumer, rather than imported from the interpreter package, so that
// loxvalue has no dependency on interpreter — interpreter depends on
// loxvalue, not the other way around, and *interpreter.Interpreter
// satisfies this interface structurally without either package naming
// the other.
type Executor interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError
}

// Callable is anything that can appear on the left of a call expression:
// a user-defined function or method, a class (called to construct an
// instance), or a native function such as clock.
type Callable interface {
	Arity() int
	Call(ex Executor, arguments []interface{}) (interface{}, *report.RuntimeError)
	String() string
}
