package debugs

import (
	"context"
	"maps"

	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over the state of an interpreter.
type Tap func(ctx context.Context, what string, interpreter *lox.Interpreter)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, interpreter *lox.Interpreter) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", interpreter.Globals().Names(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := Globals(interpreter.Globals())
		maps.Copy(mappings, builtins(interpreter))

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
