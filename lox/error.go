package lox

import "fmt"

func formatError(line int, message string) string {
	return fmt.Sprintf("[line %d] Error: %s", line, message)
}

type ScanErrorKind uint8

const (
	UnterminatedString ScanErrorKind = iota + 1
	UnexpectedCharacter
)

func (k ScanErrorKind) Error() string {
	switch k {
	case UnterminatedString:
		return "unterminated string"
	case UnexpectedCharacter:
		return "unexpected character"
	}
	return fmt.Sprintf("scan error %d", k)
}

type ScanError struct {
	Kind ScanErrorKind
	Line int
	Char rune
}

func (e *ScanError) Error() string {
	if e.Kind == UnexpectedCharacter {
		return formatError(e.Line, fmt.Sprintf("unexpected character %q", e.Char))
	}
	return formatError(e.Line, e.Kind.Error())
}

func (e *ScanError) Unwrap() error {
	return e.Kind
}

type ParseErrorKind uint8

const (
	RightParenExpected ParseErrorKind = iota + 1
	UnexpectedToken
	ExpressionExpected
	ExpectSemicolonAfterValue
	ExpectSemicolonAfterExpression
	ExpectSemicolonAfterVariableDeclaration
	ExpectVariableName
)

func (k ParseErrorKind) Error() string {
	switch k {
	case RightParenExpected:
		return "expect ')' after expression"
	case UnexpectedToken:
		return "unexpected token"
	case ExpressionExpected:
		return "expression expected"
	case ExpectSemicolonAfterValue:
		return "expect ';' after value"
	case ExpectSemicolonAfterExpression:
		return "expect ';' after expression"
	case ExpectSemicolonAfterVariableDeclaration:
		return "expect ';' after variable declaration"
	case ExpectVariableName:
		return "expect variable name"
	}
	return fmt.Sprintf("parse error %d", k)
}

type ParseError struct {
	Kind   ParseErrorKind
	Line   int
	Lexeme string // set for UnexpectedToken
}

func (e *ParseError) Error() string {
	if e.Kind == UnexpectedToken {
		return formatError(e.Line, fmt.Sprintf("unexpected token: %q", e.Lexeme))
	}
	return formatError(e.Line, e.Kind.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

type RuntimeErrorKind uint8

const (
	OperandMustBeANumber RuntimeErrorKind = iota + 1
	OperandsMustBeNumbers
	OperandsMustBeTwoNumbersOrTwoStrings
	UndefinedVariable
)

func (k RuntimeErrorKind) Error() string {
	switch k {
	case OperandMustBeANumber:
		return "operand must be a number"
	case OperandsMustBeNumbers:
		return "operands must be numbers"
	case OperandsMustBeTwoNumbersOrTwoStrings:
		return "operands must be two numbers or two strings"
	case UndefinedVariable:
		return "undefined variable"
	}
	return fmt.Sprintf("runtime error %d", k)
}

type RuntimeError struct {
	Kind  RuntimeErrorKind
	Token Token
}

func (e *RuntimeError) Error() string {
	if e.Kind == UndefinedVariable {
		return formatError(e.Token.Line, fmt.Sprintf("undefined variable '%s'", e.Token.Lexeme))
	}
	return formatError(e.Token.Line, e.Kind.Error())
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}
