package loxvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/environment"
	"github.com/ndjordjevic/golox/loxvalue"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, loxvalue.IsTruthy(nil))
	assert.False(t, loxvalue.IsTruthy(false))
	assert.True(t, loxvalue.IsTruthy(true))
	assert.True(t, loxvalue.IsTruthy(0.0))
	assert.True(t, loxvalue.IsTruthy(""))
}

func TestIsEqual(t *testing.T) {
	assert.True(t, loxvalue.IsEqual(nil, nil))
	assert.False(t, loxvalue.IsEqual(nil, false))
	assert.True(t, loxvalue.IsEqual(1.0, 1.0))
	assert.False(t, loxvalue.IsEqual(1.0, "1"))
	assert.True(t, loxvalue.IsEqual("a", "a"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", loxvalue.Stringify(nil))
	assert.Equal(t, "true", loxvalue.Stringify(true))
	assert.Equal(t, "false", loxvalue.Stringify(false))
	assert.Equal(t, "76", loxvalue.Stringify(76.0))
	assert.Equal(t, "3.14", loxvalue.Stringify(3.14))
	assert.Equal(t, "hello", loxvalue.Stringify("hello"))
}

// stubExecutor satisfies loxvalue.Executor without pulling in the
// interpreter package, so LoxFunction.Call can be exercised here in
// isolation.
type stubExecutor struct {
	exec func(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError
}

func (s stubExecutor) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError {
	return s.exec(statements, env)
}

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestLoxFunction_CallReturnsValueViaPanic(t *testing.T) {
	declaration := &ast.Function{Name: ident("f"), Params: nil, Body: nil}
	closure := environment.New(nil)
	fn := loxvalue.NewFunction(declaration, closure, false)

	ex := stubExecutor{exec: func(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError {
		panic(loxvalue.ReturnSignal{Value: 42.0})
	}}

	result, err := fn.Call(ex, nil)
	require.Nil(t, err)
	assert.Equal(t, 42.0, result)
}

func TestLoxFunction_InitializerAlwaysReturnsThis(t *testing.T) {
	declaration := &ast.Function{Name: ident("init"), Params: nil, Body: nil}
	closure := environment.New(nil)
	fn := loxvalue.NewFunction(declaration, closure, true)
	instance := loxvalue.NewInstance(loxvalue.NewClass("Thing", nil, nil))
	bound := fn.Bind(instance)

	ex := stubExecutor{exec: func(statements []ast.Stmt, env *environment.Environment) *report.RuntimeError {
		panic(loxvalue.ReturnSignal{Value: 999.0})
	}}

	result, err := bound.Call(ex, nil)
	require.Nil(t, err)
	assert.Same(t, instance, result)
}

func TestLoxClass_FindMethodFallsBackToSuperclass(t *testing.T) {
	base := loxvalue.NewClass("Base", nil, map[string]*loxvalue.LoxFunction{
		"greet": loxvalue.NewFunction(&ast.Function{Name: ident("greet")}, environment.New(nil), false),
	})
	derived := loxvalue.NewClass("Derived", base, map[string]*loxvalue.LoxFunction{})

	method, ok := derived.FindMethod("greet")
	require.True(t, ok)
	assert.Equal(t, "greet", method.Declaration.Name.Lexeme)
}

func TestLoxInstance_GetBindsMethod(t *testing.T) {
	class := loxvalue.NewClass("Thing", nil, map[string]*loxvalue.LoxFunction{
		"method": loxvalue.NewFunction(&ast.Function{Name: ident("method")}, environment.New(nil), false),
	})
	instance := loxvalue.NewInstance(class)

	value, err := instance.Get(ident("method"))
	require.Nil(t, err)
	bound, ok := value.(*loxvalue.LoxFunction)
	require.True(t, ok)
	assert.Equal(t, instance, bound.Closure.GetAt(0, "this"))
}

func TestLoxInstance_GetUndefinedPropertyIsRuntimeError(t *testing.T) {
	instance := loxvalue.NewInstance(loxvalue.NewClass("Thing", nil, nil))
	_, err := instance.Get(ident("missing"))
	require.NotNil(t, err)
}

func TestLoxInstance_SetThenGetField(t *testing.T) {
	instance := loxvalue.NewInstance(loxvalue.NewClass("Thing", nil, nil))
	instance.Set(ident("x"), 5.0)
	value, err := instance.Get(ident("x"))
	require.Nil(t, err)
	assert.Equal(t, 5.0, value)
}

func TestClock_ArityZero(t *testing.T) {
	clock := loxvalue.Clock()
	assert.Equal(t, 0, clock.Arity())
	result, err := clock.Call(nil, nil)
	require.Nil(t, err)
	_, ok := result.(float64)
	assert.True(t, ok)
}
