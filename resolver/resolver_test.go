package resolver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/lexer"
	"github.com/ndjordjevic/golox/parser"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/resolver"
)

func resolve(t *testing.T, source string) ([]ast.Stmt, *resolver.Resolver, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	r := report.New(&buf)
	tokens := lexer.New(source, r).ScanTokens()
	stmts := parser.New(tokens, r).Parse()
	require.False(t, r.HadError, "unexpected parse error: %s", buf.String())

	res := resolver.New(r)
	res.Resolve(stmts)
	return stmts, res, r
}

func TestResolve_GlobalVariableLeftUnresolved(t *testing.T) {
	stmts, res, r := resolve(t, "var x = 1;\nprint x;")
	require.False(t, r.HadError)

	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	_, ok := res.Locals[variable.ID()]
	assert.False(t, ok, "global references should not be recorded in Locals")
}

func TestResolve_LocalVariableDistance(t *testing.T) {
	_, res, r := resolve(t, "{ var x = 1; { print x; } }")
	require.False(t, r.HadError)

	// One Variable node ("x" inside the nested block) should resolve at
	// distance 1 (one scope out: the nested block to the outer block).
	found := false
	for _, distance := range res.Locals {
		if distance == 1 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_SelfReferencingInitializerIsError(t *testing.T) {
	_, _, r := resolve(t, "{ var a = a; }")
	assert.True(t, r.HadError)
}

func TestResolve_RedeclarationInSameScopeIsError(t *testing.T) {
	_, _, r := resolve(t, "{ var a = 1; var a = 2; }")
	assert.True(t, r.HadError)
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, _, r := resolve(t, "return 1;")
	assert.True(t, r.HadError)
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, _, r := resolve(t, "class C { init() { return 1; } }")
	assert.True(t, r.HadError)
}

func TestResolve_ReturnBareFromInitializerIsFine(t *testing.T) {
	_, _, r := resolve(t, "class C { init() { return; } }")
	assert.False(t, r.HadError)
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, _, r := resolve(t, "print this;")
	assert.True(t, r.HadError)
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, _, r := resolve(t, "fun f() { print super.m(); } ")
	assert.True(t, r.HadError)
}

func TestResolve_SuperWithNoSuperclassIsError(t *testing.T) {
	_, _, r := resolve(t, "class C { m() { return super.m(); } }")
	assert.True(t, r.HadError)
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	_, _, r := resolve(t, "class Oops < Oops {}")
	assert.True(t, r.HadError)
}

func TestResolve_DuplicateMethodIsError(t *testing.T) {
	_, _, r := resolve(t, "class C { m() {} m() {} }")
	assert.True(t, r.HadError)
}

func TestResolve_ValidSubclassUsingSuper(t *testing.T) {
	_, _, r := resolve(t, `
class A { m() { return 1; } }
class B < A { m() { return super.m(); } }
`)
	assert.False(t, r.HadError)
}
