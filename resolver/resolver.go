/*
File    : golox/resolver/resolver.go
Package : resolver

Package resolver performs the static pass between parsing and
interpretation: for every variable reference it counts how many
lexical scopes out the binding lives, so the interpreter can read or
write it directly via Environment.GetAt/AssignAt instead of walking the
scope chain at every access, and so that shadowing inside a closure
resolves to the binding that was in effect where the closure was
written rather than whatever is in scope when it happens to run.

This is a direct re-expression, via Go type switches instead of
double-dispatch Visitor methods, of original_source/app/resolver.py's
scope-stack/FunctionType/ClassType state machine — the teacher's own
packages have no equivalent static pass (GoMix resolves every variable
dynamically at eval time), so there is nothing of the teacher's to
adapt here beyond its reporting and state-machine conventions.
*/
package resolver

import (
	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

// functionType tracks what kind of function body is currently being
// resolved, so `return` can be checked for context (`this` is checked
// with classType).
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classType tracks whether resolution is currently inside a class body,
// and whether that class has a superclass, so `this`/`super` can be
// checked for context.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program once, before it is ever executed,
// annotating every variable reference with its lexical scope distance.
type Resolver struct {
	reporter *report.Reporter
	scopes   []map[string]bool
	current  functionType
	class    classType

	// Locals maps a Variable/Assign/This/Super expression's ID to the
	// number of scopes between its use and its declaration. An ID
	// absent from this map is a global, resolved dynamically.
	Locals map[ast.ID]int
}

// New creates a Resolver that reports errors to r. The outermost
// (global) scope is never pushed onto the scope stack — unlike the
// resolver this is grounded on, which always keeps one entry at index
// 0 — because globals here are resolved dynamically by Environment.Get
// rather than through this table, matching spec.md §4.3/4.4's division
// of labor between the global environment and the resolved side table.
func New(r *report.Reporter) *Resolver {
	return &Resolver{reporter: r, Locals: make(map[ast.ID]int)}
}

// Resolve runs the static pass over a whole program.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope, marked not-yet-ready, so
// that a variable cannot refer to itself in its own initializer
// (`var a = a;` in a local scope is reported as an error by
// resolveVariable).
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name ready for use in the innermost scope.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records how many scopes out name is bound, searching
// from the innermost scope outward. A name never found in any tracked
// scope is left unrecorded and treated as a global at interpretation
// time.
func (r *Resolver) resolveLocal(exprID ast.ID, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.current
	r.current = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.current = enclosingFunction
}
