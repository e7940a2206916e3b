/*
File    : golox/loxvalue/native.go
Package : loxvalue

Native functions, grounded on the shape of the teacher's std.Builtin
(std/builtins.go: a name plus a callback), trimmed to the single
builtin spec.md's non-goals leave in scope — `clock`, a zero-argument
function returning the number of seconds since an arbitrary fixed
point, used by Lox programs to measure elapsed time.
*/
package loxvalue

import (
	"time"

	"github.com/ndjordjevic/golox/report"
)

// NativeFunction wraps a Go function as a Callable with a fixed arity,
// the same "name + callback" shape as the teacher's std.Builtin but
// satisfying the Callable interface directly rather than being
// dispatched through a separate builtin table.
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(arguments []interface{}) interface{}
}

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) Call(_ Executor, arguments []interface{}) (interface{}, *report.RuntimeError) {
	return n.Fn(arguments), nil
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

// Clock returns the `clock` native function: the current Unix time, in
// fractional seconds, as a Lox number.
func Clock() *NativeFunction {
	return &NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(arguments []interface{}) interface{} {
			return float64(time.Now().UnixNano()) / 1e9
		},
	}
}
