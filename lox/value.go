package lox

import (
	"math"
	"strconv"
)

// Literal is the decoded payload of a token.
// Every Value is a Literal; Identifier is the only Literal that is not a Value.
type Literal interface {
	isLiteral()
}

// Value is a runtime value: Nil, Bool, Number or String.
type Value interface {
	Literal
	isValue()
}

type (
	Nil        struct{}
	Bool       bool
	Number     float64
	String     string
	Identifier string
)

func (Nil) isLiteral()        {}
func (Bool) isLiteral()       {}
func (Number) isLiteral()     {}
func (String) isLiteral()     {}
func (Identifier) isLiteral() {}

func (Nil) isValue()    {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}

func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

// Equal reports whether a and b are the same variant with the same content.
// Numbers compare by IEEE equality, so NaN is never equal to itself.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	}
	return false
}

func FormatValue(v Value) string {
	return FormatLiteral(v)
}

func FormatLiteral(l Literal) string {
	switch l := l.(type) {
	case nil, Nil:
		return "nil"
	case Bool:
		return strconv.FormatBool(bool(l))
	case Number:
		return FormatNumber(float64(l))
	case String:
		return strconv.Quote(string(l))
	case Identifier:
		return string(l)
	}
	return "<invalid>"
}

// FormatNumber renders the shortest decimal form without an exponent.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
