/*
File    : golox/loxvalue/instance.go
Package : loxvalue

LoxInstance is the runtime counterpart of objects.GoMixObjectInstance
(objects/struct.go): a field map plus a reference back to its class.
*/
package loxvalue

import (
	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

// LoxInstance is a live object created by calling a LoxClass.
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]interface{}
}

// NewInstance creates a field-less instance of class.
func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{Class: class, Fields: make(map[string]interface{})}
}

// Get reads a property off the instance: fields shadow methods, and a
// method found on the class is bound to this instance before being
// returned, so `this` resolves correctly when the method later runs.
func (i *LoxInstance) Get(name token.Token) (interface{}, *report.RuntimeError) {
	if value, ok := i.Fields[name.Lexeme]; ok {
		return value, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, report.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set writes a field on the instance. Lox instances are open: any
// property name can be assigned, creating it if absent.
func (i *LoxInstance) Set(name token.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}

// String renders the instance the way Lox's reference interpreter
// prints an instance: "ClassName instance".
func (i *LoxInstance) String() string {
	return i.Class.Name + " instance"
}
