/*
File    : golox/loxvalue/value.go
Package : loxvalue

Package loxvalue defines the runtime representation of Lox values and
the objects (functions, classes, instances) that the interpreter
produces and consumes. A Lox value is represented as a bare Go
interface{} holding one of: nil, bool, float64, string, or a Callable
(LoxFunction/LoxClass/a native function), or a *LoxInstance — the same
"use the host language's native union" approach the teacher takes with
its objects.GoMixObject family (objects/objects.go), but without a
wrapper struct per primitive: a float64 already carries everything a
Lox number needs, so Stringify/IsTruthy/IsEqual work directly against
the Go type switch instead of against an extra layer of boxing.
*/
package loxvalue

import "strconv"

// IsTruthy implements Lox's truthiness rule: nil and the boolean false
// are falsy, everything else (including 0 and the empty string) is
// truthy.
func IsTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: nil only equals nil, and otherwise
// values of different dynamic types are never equal (no implicit
// coercion between numbers and strings, etc).
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a Lox value the way `print` and the REPL do.
// Numbers drop a trailing ".0" so integral results print as integers,
// matching the reference interpreter's stringify rule; all other
// formatting is delegated to the value's own String method where one
// exists.
func Stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return trimTrailingZeroFraction(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return v
	case fmt_Stringer:
		return v.String()
	default:
		return ""
	}
}

// fmt_Stringer mirrors fmt.Stringer without importing fmt just for the
// interface name; every Callable and *LoxInstance implements String().
type fmt_Stringer interface {
	String() string
}

// trimTrailingZeroFraction strips a ".0" suffix, if the text has one,
// so that e.g. 76 prints as "76" rather than "76.0".
// strconv.FormatFloat with precision -1 already writes integral values
// without a fractional part, so for its output this is a no-op guard.
// This mirrors the reference interpreter's number stringify
// rule and is distinct from the `tokenize` subcommand's NUMBER literal
// column, which always keeps at least one fractional digit.
func trimTrailingZeroFraction(text string) string {
	if len(text) >= 2 && text[len(text)-2] == '.' && text[len(text)-1] == '0' {
		return text[:len(text)-2]
	}
	return text
}
