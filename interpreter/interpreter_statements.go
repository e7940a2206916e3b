package interpreter

import (
	"fmt"

	"github.com/ndjordjevic/golox/ast"
	"github.com/ndjordjevic/golox/environment"
	"github.com/ndjordjevic/golox/loxvalue"
	"github.com/ndjordjevic/golox/report"
)

func (i *Interpreter) execute(stmt ast.Stmt) *report.RuntimeError {
	switch s := stmt.(type) {
	case *ast.Expression:
		value, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		if i.REPLMode {
			fmt.Fprintln(i.writer, loxvalue.Stringify(value))
		}
		return nil

	case *ast.Print:
		value, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.writer, loxvalue.Stringify(value))
		return nil

	case *ast.Var:
		var value interface{}
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return i.ExecuteBlock(s.Statements, environment.New(i.environment))

	case *ast.If:
		condition, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if loxvalue.IsTruthy(condition) {
			return i.execute(s.Then)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil

	case *ast.While:
		for {
			condition, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !loxvalue.IsTruthy(condition) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := loxvalue.NewFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value interface{}
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(loxvalue.ReturnSignal{Value: value})

	case *ast.Class:
		return i.executeClass(s)

	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// executeClass evaluates a class declaration: resolves the optional
// superclass (which must itself evaluate to a class), builds the
// method table with each method closing over an environment that binds
// `super` when there is one, and binds the finished class value to its
// name in the enclosing scope.
func (i *Interpreter) executeClass(stmt *ast.Class) *report.RuntimeError {
	var superclass *loxvalue.LoxClass
	if stmt.Superclass != nil {
		value, err := i.evaluate(stmt.Superclass)
		if err != nil {
			return err
		}
		class, ok := value.(*loxvalue.LoxClass)
		if !ok {
			return report.NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	i.environment.Define(stmt.Name.Lexeme, nil)

	methodEnv := i.environment
	if superclass != nil {
		methodEnv = environment.New(i.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.LoxFunction, len(stmt.Methods))
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = loxvalue.NewFunction(method, methodEnv, isInitializer)
	}

	class := loxvalue.NewClass(stmt.Name.Lexeme, superclass, methods)
	return i.environment.Assign(stmt.Name, class)
}
