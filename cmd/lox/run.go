package main

import (
	"context"
	"os"

	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
)

// RunFile executes a script in a fresh interpreter and returns the interpreter for inspection.
type RunFile func(ctx context.Context, path string) (*lox.Interpreter, error)

func (Module) RunFile(
	newInterpreter NewInterpreter,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunFile {
	return func(ctx context.Context, path string) (interpreter *lox.Interpreter, err error) {
		defer he(&err)
		ctx, _ = newSpan(ctx, "run "+path)
		content, err := os.ReadFile(path)
		ce(err)
		interpreter = newInterpreter()
		outcome, err := interpreter.Run(string(content))
		logger.InfoContext(ctx, "run",
			"path", path,
			"outcome", outcome.String(),
		)
		return interpreter, err
	}
}
