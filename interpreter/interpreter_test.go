package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndjordjevic/golox/interpreter"
	"github.com/ndjordjevic/golox/lexer"
	"github.com/ndjordjevic/golox/parser"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/resolver"
)

// run lexes, parses, resolves, and interprets source, returning
// everything written to stdout and the reporter used throughout.
func run(t *testing.T, source string) (string, *report.Reporter) {
	t.Helper()
	var stderr, stdout bytes.Buffer
	r := report.New(&stderr)

	tokens := lexer.New(source, r).ScanTokens()
	stmts := parser.New(tokens, r).Parse()
	require.False(t, r.HadError, "parse error: %s", stderr.String())

	res := resolver.New(r)
	res.Resolve(stmts)
	require.False(t, r.HadError, "resolve error: %s", stderr.String())

	interp := interpreter.New(r, &stdout)
	interp.Interpret(stmts, res.Locals)

	if stderr.Len() > 0 {
		t.Logf("stderr: %s", stderr.String())
	}
	return stdout.String(), r
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, r := run(t, "print 1 + 2 * 3;")
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, r := run(t, `print "foo" + "bar";`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_NumberStringifyTrimsTrailingZero(t *testing.T) {
	out, r := run(t, "print 76.0;")
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "76\n", out)
}

func TestInterpret_PlusTypeMismatchIsRuntimeError(t *testing.T) {
	_, r := run(t, `print 1 + "a";`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, r := run(t, "print missing;")
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_GlobalVariableAssignment(t *testing.T) {
	out, r := run(t, "var x = 1;\nx = x + 1;\nprint x;")
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "2\n", out)
}

func TestInterpret_BlockScopingShadowsOuter(t *testing.T) {
	out, r := run(t, `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, r := run(t, `if (1 < 2) print "yes"; else print "no";`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, r := run(t, `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugared(t *testing.T) {
	out, r := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	out, r := run(t, `
fun add(a, b) {
  return a + b;
}
print add(1, 2);
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_ClosureCapturesLiveVariable(t *testing.T) {
	// The divergence from the teacher's Scope.Copy()-based closure
	// capture: each call to the returned function must see the *same*
	// counter, ticking up across calls, not a snapshot from creation.
	out, r := run(t, `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
print counter();
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_RecursiveFunction(t *testing.T) {
	out, r := run(t, `
fun fib(n) {
  if (n <= 1) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(8);
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "21\n", out)
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, r := run(t, `
fun add(a, b) { return a + b; }
add(1);
`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, r := run(t, `
var x = 1;
x();
`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_ClassInstantiationAndMethod(t *testing.T) {
	out, r := run(t, `
class Greeter {
  greet(name) {
    print "Hello, " + name + "!";
  }
}
var g = Greeter();
g.greet("Lox");
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "Hello, Lox!\n", out)
}

func TestInterpret_InitializerRunsAndReturnsInstance(t *testing.T) {
	out, r := run(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
  show() {
    print this.x;
    print this.y;
  }
}
var p = Point(1, 2);
p.show();
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpret_FieldsAreOpenAndAssignable(t *testing.T) {
	out, r := run(t, `
class Box {}
var b = Box();
b.value = 42;
print b.value;
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "42\n", out)
}

func TestInterpret_SuperCallsParentMethod(t *testing.T) {
	out, r := run(t, `
class Animal {
  speak() {
    print "...";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print "Woof";
  }
}
Dog().speak();
`)
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "...\nWoof\n", out)
}

func TestInterpret_UndefinedPropertyIsRuntimeError(t *testing.T) {
	_, r := run(t, `
class Box {}
var b = Box();
print b.missing;
`)
	assert.True(t, r.HadRuntimeError)
}

func TestInterpret_ClockIsCallableWithZeroArity(t *testing.T) {
	out, r := run(t, "print clock() > 0;")
	require.False(t, r.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_LogicalOperatorsShortCircuit(t *testing.T) {
	out, r := run(t, `
fun sideEffect() { print "called"; return true; }
false and sideEffect();
true or sideEffect();
`)
	require.False(t, r.HadRuntimeError)
	assert.True(t, !strings.Contains(out, "called"))
}
