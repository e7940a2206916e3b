package interpreter

import (
	"fmt"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/loxvalue"
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, *report.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.evaluate(e.Expression)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)

	case *ast.Assign:
		return i.evalAssign(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return i.evalSuper(e)

	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (interface{}, *report.RuntimeError) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, rerr := checkNumberOperand(e.Operator, right)
		if rerr != nil {
			return nil, rerr
		}
		return -n, nil
	case token.BANG:
		return !loxvalue.IsTruthy(right), nil
	}
	panic("interpreter: unhandled unary operator " + e.Operator.Lexeme)
}

func (i *Interpreter) evalLogical(e *ast.Logical) (interface{}, *report.RuntimeError) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if loxvalue.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !loxvalue.IsTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (interface{}, *report.RuntimeError) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		return evalPlus(e.Operator, left, right)
	case token.MINUS:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l - r, nil
	case token.SLASH:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l / r, nil
	case token.STAR:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l * r, nil
	case token.GREATER:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l >= r, nil
	case token.LESS:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, rerr := checkNumberOperands(e.Operator, left, right)
		if rerr != nil {
			return nil, rerr
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !loxvalue.IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return loxvalue.IsEqual(left, right), nil
	}
	panic("interpreter: unhandled binary operator " + e.Operator.Lexeme)
}

// evalPlus implements Lox's overloaded `+`: numeric addition when both
// operands are numbers, concatenation when both are strings, and a
// runtime error for any other combination.
func evalPlus(operator token.Token, left, right interface{}) (interface{}, *report.RuntimeError) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, report.NewRuntimeError(operator, "Operands must be two numbers or two strings.")
}

func checkNumberOperand(operator token.Token, operand interface{}) (float64, *report.RuntimeError) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, report.NewRuntimeError(operator, "Operand must be a number.")
}

func checkNumberOperands(operator token.Token, left, right interface{}) (float64, float64, *report.RuntimeError) {
	l, ok := left.(float64)
	r, ok2 := right.(float64)
	if !ok || !ok2 {
		return 0, 0, report.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}

func (i *Interpreter) evalAssign(e *ast.Assign) (interface{}, *report.RuntimeError) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e.ID()]; ok {
		i.environment.AssignAt(distance, e.Name, value)
		return value, nil
	}
	if err := i.globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (interface{}, *report.RuntimeError) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(e.Arguments))
	for idx, arg := range e.Arguments {
		value, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments[idx] = value
	}

	callable, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, report.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return nil, report.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}

	return callable.Call(i, arguments)
}

func (i *Interpreter) evalGet(e *ast.Get) (interface{}, *report.RuntimeError) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.LoxInstance)
	if !ok {
		return nil, report.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (i *Interpreter) evalSet(e *ast.Set) (interface{}, *report.RuntimeError) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.LoxInstance)
	if !ok {
		return nil, report.NewRuntimeError(e.Name, "Only instances have fields.")
	}

	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

// evalSuper resolves `super.method`: the resolver always pushes the
// `this` scope directly inside the `super` scope, so `super` is always
// found at the recorded distance and `this` one scope closer in.
func (i *Interpreter) evalSuper(e *ast.Super) (interface{}, *report.RuntimeError) {
	distance := i.locals[e.ID()]
	superclassValue := i.environment.GetAt(distance, "super")
	superclass := superclassValue.(*loxvalue.LoxClass)

	instanceValue := i.environment.GetAt(distance-1, "this")
	instance := instanceValue.(*loxvalue.LoxInstance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, report.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
