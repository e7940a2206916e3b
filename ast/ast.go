/*
File    : golox/ast/ast.go
Package : ast

Package ast defines the Lox abstract syntax tree: Expr and Stmt are
tagged-union marker interfaces implemented by immutable node structs.
Dispatch over the tree (in the resolver and the interpreter) uses an
exhaustive Go type switch rather than a double-dispatch Visitor — the
same choice the teacher's own Evaluator.Eval makes (eval/evaluator_expressions.go
switches on parser.Node) even though a parser.NodeVisitor interface
also exists there; design note 1 in the specification calls this out
directly: "the dynamic-dispatch visitor pattern of the source maps to
exhaustive pattern matching on the variant."
*/
package ast

import "github.com/ndjordjevic/golox/token"

// ID is a construction-time-unique identifier for an Expr node. The
// resolver's side table is keyed on ID rather than on node identity,
// since Go has no stable, hashable identity for an arbitrary interface
// value the way the book's Java/Python implementations use object
// identity (design note 2).
type ID int64

var nextID ID

// newID hands out the next node ID. The scanner/parser run on a single
// goroutine (spec.md §5: single-threaded, synchronous), so no locking
// is needed here.
func newID() ID {
	nextID++
	return nextID
}

// Expr is the tagged union of expression node kinds.
type Expr interface {
	ID() ID
	exprNode()
}

// Stmt is the tagged union of statement node kinds.
type Stmt interface {
	stmtNode()
}

// exprBase gives every Expr implementation its unique ID without
// repeating the boilerplate in each node type.
type exprBase struct {
	id ID
}

func newExprBase() exprBase { return exprBase{id: newID()} }

func (b exprBase) ID() ID    { return b.id }
func (exprBase) exprNode()   {}

// ---- Expressions -----------------------------------------------------

// Literal is a literal value: nil, boolean, number, or string.
type Literal struct {
	exprBase
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Grouping is a parenthesized sub-expression, kept distinct from its
// inner expression so the printer can render the parens.
type Grouping struct {
	exprBase
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Expression: expression}
}

// Unary is a prefix operator applied to a single operand: `-x`, `!x`.
type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: operator, Right: right}
}

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Logical is `and`/`or`, kept distinct from Binary because both
// short-circuit instead of always evaluating both operands.
type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

// Variable is a reference to a named binding.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

// Assign stores a new value into an existing binding.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Call invokes a callable with zero or more argument expressions. Paren
// is the closing `)` token, kept for arity-mismatch error reporting.
type Call struct {
	exprBase
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren token.Token, arguments []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: arguments}
}

// Get reads a property (field or method) off an instance.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

// Set writes a field on an instance.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// This is a `this` reference inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

// ---- Statements --------------------------------------------------------

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// Expression is a bare expression evaluated for its side effects (and,
// in REPL mode, printed).
type Expression struct {
	stmtBase
	Expr Expr
}

// Print evaluates an expression and writes its stringified value.
type Print struct {
	stmtBase
	Expr Expr
}

// Var declares a variable, with an optional initializer expression.
type Var struct {
	stmtBase
	Name        token.Token
	Initializer Expr // nil if absent
}

// Block groups statements under a fresh lexical scope.
type Block struct {
	stmtBase
	Statements []Stmt
}

// If is a conditional with an optional else branch.
type If struct {
	stmtBase
	Condition  Expr
	Then       Stmt
	ElseBranch Stmt // nil if absent
}

// While repeats Body while Condition is truthy. `for` is desugared into
// this by the parser, per spec.md §4.2.
type While struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// Function declares a named function (or method, when it appears inside
// a Class's Methods).
type Function struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Return unwinds to the nearest enclosing function call, optionally
// carrying a value (nil means the implicit `return;`/fallthrough nil).
type Return struct {
	stmtBase
	Keyword token.Token
	Value   Expr // nil if absent
}

// Class declares a class, with an optional superclass reference and its
// method table.
type Class struct {
	stmtBase
	Name       token.Token
	Superclass *Variable // nil if absent
	Methods    []*Function
}
