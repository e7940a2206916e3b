/*
File    : golox/loxvalue/class.go
Package : loxvalue

LoxClass is the runtime counterpart of an ast.Class declaration. It
plays the role the teacher's objects.GoMixStruct plays (objects/struct.go)
— name plus a method table — generalized with a Superclass link for
single inheritance, which GoMix's flat struct model does not have.
*/
package loxvalue

import "github.com/ndjordjevic/golox/report"

// LoxClass is both the class object itself (what a class declaration
// evaluates to) and the factory for its instances (calling a class
// constructs one).
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

// NewClass builds a class value. methods maps method name to its
// not-yet-bound LoxFunction (binding to a specific instance happens on
// lookup, in LoxInstance.Get).
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, falling back to the
// superclass chain the same way Environment.Get falls back to
// enclosing scopes.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if method, ok := c.Methods[name]; ok {
		return method, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the `init` method, or zero if the class
// declares none — calling a class with no initializer takes no
// arguments.
func (c *LoxClass) Arity() int {
	if initializer, ok := c.FindMethod("init"); ok {
		return initializer.Arity()
	}
	return 0
}

// Call constructs a new instance and, if the class (or an ancestor)
// defines `init`, runs it bound to that instance before returning it.
func (c *LoxClass) Call(ex Executor, arguments []interface{}) (interface{}, *report.RuntimeError) {
	instance := NewInstance(c)
	if initializer, ok := c.FindMethod("init"); ok {
		if _, err := initializer.Bind(instance).Call(ex, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// String renders the class the way Lox's reference interpreter prints
// a class value: just its name.
func (c *LoxClass) String() string {
	return c.Name
}
