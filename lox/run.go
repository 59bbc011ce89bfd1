package lox

import "io"

type Outcome uint8

const (
	OutcomeOK Outcome = iota
	// scan or parse failure
	OutcomeStatic
	// failure while executing a program that parsed
	OutcomeRuntime
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeStatic:
		return "static error"
	case OutcomeRuntime:
		return "runtime error"
	}
	return "unknown"
}

// Run scans, parses and interprets source in a fresh global scope.
func Run(source string, output io.Writer) (Outcome, error) {
	return NewInterpreter(output).Run(source)
}

// Run scans, parses and interprets source against the interpreter's globals.
// All syntax errors of the source are reported, joined; nothing is executed if any exists.
func (i *Interpreter) Run(source string) (Outcome, error) {
	tokens, err := Scan(source)
	if err != nil {
		return OutcomeStatic, err
	}
	stmts, err := ParseAll(tokens)
	if err != nil {
		return OutcomeStatic, err
	}
	if err := i.Interpret(stmts); err != nil {
		return OutcomeRuntime, err
	}
	return OutcomeOK, nil
}
