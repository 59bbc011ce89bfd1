package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/loxconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs loxconfigs.Module
	Debugs  debugs.Module
}

// Stdout receives program output.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// Stderr receives diagnostics.
type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}

type NewInterpreter func() *lox.Interpreter

func (Module) NewInterpreter(
	stdout Stdout,
	logger logs.Logger,
	prelude loxconfigs.Prelude,
) NewInterpreter {
	return func() *lox.Interpreter {
		// each interpreter gets its own copy so runs do not leak into each other
		return lox.NewInterpreter(stdout).
			WithLogger(logger).
			WithEnclosing((*lox.Environment)(prelude).Clone())
	}
}
