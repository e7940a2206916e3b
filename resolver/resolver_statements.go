package resolver

import "github.com/ndjordjevic/golox/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Class:
		r.resolveClass(s)

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)

	case *ast.Expression:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.current == functionNone {
			r.reporter.TokenError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.current == functionInitializer {
				r.reporter.TokenError(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(stmt *ast.Class) {
	r.declare(stmt.Name)
	r.define(stmt.Name)

	enclosingClass := r.class
	r.class = classClass

	if stmt.Superclass != nil && stmt.Name.Lexeme == stmt.Superclass.Name.Lexeme {
		r.reporter.TokenError(stmt.Superclass.Name, "A class can't inherit from itself.")
	}

	if stmt.Superclass != nil {
		r.class = classSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	methodNames := make(map[string]bool)
	for _, method := range stmt.Methods {
		if methodNames[method.Name.Lexeme] {
			r.reporter.TokenError(method.Name, "Method '"+method.Name.Lexeme+"' is already defined in this class.")
		}
		methodNames[method.Name.Lexeme] = true

		declaration := functionMethod
		if method.Name.Lexeme == "init" {
			declaration = functionInitializer
		}
		r.resolveFunction(method, declaration)
	}
	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.class = enclosingClass
}
