/*
File    : golox/ast/printer.go
Package : ast

Printer renders statements/expressions as the s-expressions fixed by
spec.md §6, used by the `parse` CLI subcommand. It plays the same role
as the teacher's main/print_visitor.go PrintingVisitor and is grounded
equally on original_source/app/ast_printer.py, but dispatches with a
type switch rather than double-dispatch Accept/Visit calls, matching
the rest of this package's tree-walking style.
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer formats Stmt/Expr trees as parenthesized s-expressions.
type Printer struct{}

// NewPrinter returns a ready-to-use Printer.
func NewPrinter() *Printer { return &Printer{} }

// PrintStatements renders a whole program, one s-expression per line.
func (p *Printer) PrintStatements(stmts []Stmt) string {
	var b strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.PrintStmt(stmt))
	}
	return b.String()
}

// PrintStmt renders a single statement.
func (p *Printer) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *Expression:
		return p.PrintExpr(s.Expr)
	case *Print:
		return p.parenthesize("print", s.Expr)
	case *Var:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, p.PrintExpr(s.Initializer))
	case *Block:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteByte(' ')
			b.WriteString(p.PrintStmt(inner))
		}
		b.WriteByte(')')
		return b.String()
	case *If:
		if s.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Then))
		}
		return fmt.Sprintf("(if %s %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Then), p.PrintStmt(s.ElseBranch))
	case *While:
		return fmt.Sprintf("(while %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Body))
	case *Function:
		return p.printFunction(s)
	case *Return:
		if s.Value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", p.PrintExpr(s.Value))
	case *Class:
		var b strings.Builder
		b.WriteString("(class ")
		b.WriteString(s.Name.Lexeme)
		if s.Superclass != nil {
			b.WriteString(" < ")
			b.WriteString(s.Superclass.Name.Lexeme)
		}
		for _, m := range s.Methods {
			b.WriteByte(' ')
			b.WriteString(p.printFunction(m))
		}
		b.WriteByte(')')
		return b.String()
	default:
		return fmt.Sprintf("<unknown-stmt %T>", stmt)
	}
}

func (p *Printer) printFunction(f *Function) string {
	var b strings.Builder
	b.WriteString("(fun ")
	b.WriteString(f.Name.Lexeme)
	b.WriteString(" (")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(param.Lexeme)
	}
	b.WriteString(")")
	for _, stmt := range f.Body {
		b.WriteByte(' ')
		b.WriteString(p.PrintStmt(stmt))
	}
	b.WriteByte(')')
	return b.String()
}

// PrintExpr renders a single expression.
func (p *Printer) PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return p.printLiteral(e.Value)
	case *Grouping:
		return p.parenthesize("group", e.Expression)
	case *Unary:
		return p.parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, p.PrintExpr(e.Value))
	case *Call:
		var b strings.Builder
		b.WriteString("(call ")
		b.WriteString(p.PrintExpr(e.Callee))
		for _, arg := range e.Arguments {
			b.WriteByte(' ')
			b.WriteString(p.PrintExpr(arg))
		}
		b.WriteByte(')')
		return b.String()
	case *Get:
		return fmt.Sprintf("(. %s %s)", p.PrintExpr(e.Object), e.Name.Lexeme)
	case *Set:
		return fmt.Sprintf("(. %s %s %s)", p.PrintExpr(e.Object), e.Name.Lexeme, p.PrintExpr(e.Value))
	case *This:
		return "this"
	case *Super:
		return fmt.Sprintf("(super %s)", e.Method.Lexeme)
	default:
		return fmt.Sprintf("<unknown-expr %T>", expr)
	}
}

// printLiteral renders a literal value per spec.md §6: true/false/nil,
// decimal numbers, or the string as-is.
func (p *Printer) printLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(p.PrintExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
