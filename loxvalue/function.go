/*
File    : golox/loxvalue/function.go
Package : loxvalue

LoxFunction plays the role the teacher's function.Function plays
(function/function.go): name, parameters, body, and a captured defining
scope. It is generalized here for method binding (Bind, used for `this`
and for producing the closures a class's methods need) and for the
`init` constructor's "always returns the instance" rule, neither of
which GoMix's flat function model has any use for.
*/
package loxvalue

import (
	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/environment"
	"github.com/ndjordjevic/golox/report"
)

// LoxFunction is a user-defined function or method together with the
// environment it closes over.
type LoxFunction struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction wraps a parsed function declaration as a callable value.
func NewFunction(declaration *ast.Function, closure *environment.Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

// Arity reports how many arguments the function expects.
func (f *LoxFunction) Arity() int {
	return len(f.Declaration.Params)
}

// Call runs the function body in a fresh scope enclosed by the
// function's closure, with parameters bound to arguments. A `return`
// inside the body surfaces here as a recovered ReturnSignal rather than
// an ordinary Go return, since ExecuteBlock has no way to short-circuit
// a sequence of statements on its own.
func (f *LoxFunction) Call(ex Executor, arguments []interface{}) (result interface{}, runtimeErr *report.RuntimeError) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			signal, ok := r.(ReturnSignal)
			if !ok {
				panic(r)
			}
			if f.IsInitializer {
				result = f.Closure.GetAt(0, "this")
				return
			}
			result = signal.Value
		}
	}()

	if runtimeErr = ex.ExecuteBlock(f.Declaration.Body, env); runtimeErr != nil {
		return nil, runtimeErr
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a copy of this function whose closure is a new scope,
// enclosed by the original closure, binding `this` to instance. Each
// access to a method therefore gets a distinct bound copy, matching
// jlox's method-as-value semantics (storing a bound method in a
// variable keeps working after the instance is reassigned elsewhere).
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// String renders the function the way Lox's reference interpreter
// prints functions: "<fn NAME>".
func (f *LoxFunction) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}
