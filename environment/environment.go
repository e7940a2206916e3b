/*
File    : golox/environment/environment.go
Package : environment

Package environment implements the lexical scope chain the interpreter
walks to resolve, bind, and assign variables. It is adapted from the
teacher's scope.Scope (scope/scope.go in the retrieval pack): the same
map-plus-Parent chain shape, trimmed of the Consts/LetVars/LetTypes
bookkeeping Lox has no use for (no let/const declarations), and with a
GetAt/AssignAt pair added so the interpreter can use the resolver's
precomputed scope distances instead of walking the chain dynamically.

Unlike the teacher's Scope, which is copied wholesale by value when a
function closes over it (scope.Scope.Copy(), used by function/function.go),
an Environment here is always captured and shared by pointer. Lox
closures must observe later mutations of their captured variables (a
counter's captured count must tick up across calls), which a snapshot
copy cannot provide; this follows original_source/app/environment.py,
whose `enclosing` reference is never duplicated.
*/
package environment

import (
	"fmt"

	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

// Environment is one lexical scope: a set of name-to-value bindings plus
// a link to the enclosing scope. The global scope has a nil Parent.
type Environment struct {
	values map[string]interface{}
	Parent *Environment
}

// New creates a scope enclosed by parent, or a global scope if parent is
// nil.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]interface{}),
		Parent: parent,
	}
}

// Define binds name to value in this scope, overwriting any existing
// binding of the same name in this scope. Lox permits redeclaring a
// variable at the same scope, so unlike Assign this never fails.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name starting at this scope and walking Parent links
// outward, returning a runtime error anchored on tok if it is never
// bound.
func (e *Environment) Get(tok token.Token) (interface{}, *report.RuntimeError) {
	if value, ok := e.values[tok.Lexeme]; ok {
		return value, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(tok)
	}
	return nil, report.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// Assign updates an existing binding of tok.Lexeme in the nearest scope
// (starting here) that already defines it. It does not create a new
// binding — assigning to an undeclared name is a runtime error.
func (e *Environment) Assign(tok token.Token, value interface{}) *report.RuntimeError {
	if _, ok := e.values[tok.Lexeme]; ok {
		e.values[tok.Lexeme] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(tok, value)
	}
	return report.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// ancestor walks distance scopes outward. A distance that does not
// match the chain's actual depth indicates the resolver and interpreter
// have gone out of sync, which is a bug rather than a recoverable
// runtime condition.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.Parent == nil {
			panic(fmt.Sprintf("environment: ancestor distance %d exceeds scope chain depth", distance))
		}
		env = env.Parent
	}
	return env
}

// GetAt reads name directly from the scope distance steps outward,
// bypassing the dynamic walk in Get. distance comes from the resolver's
// side table.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the scope distance steps outward.
func (e *Environment) AssignAt(distance int, tok token.Token, value interface{}) {
	e.ancestor(distance).values[tok.Lexeme] = value
}
