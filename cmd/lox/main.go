package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
)

var (
	runPath    = cmds.Var[string]("run")
	astPath    = cmds.Var[string]("ast")
	tokensPath = cmds.Var[string]("tokens")
	watchPath  = cmds.Var[string]("watch")
	asYAML     = cmds.Switch("-yaml")
	tapOnExit  = cmds.Switch("-tap")
)

func main() {
	args := os.Args[1:]
	// lox script.lox
	if len(args) == 1 && strings.HasSuffix(args[0], ".lox") {
		args = []string{"run", args[0]}
	}
	if err := cmds.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.GlobalExecutor.SetOutput(os.Stderr)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(exitUsage)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope, err := loxconfigs.PreludeFork(scope)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	var code int
	scope.Call(func(
		runFile RunFile,
		dumpAST DumpAST,
		dumpTokens DumpTokens,
		watch Watch,
		repl REPL,
		tap debugs.Tap,
	) {
		var interpreter *lox.Interpreter
		var what string
		var err error

		switch {
		case *tokensPath != "":
			err = dumpTokens(ctx, *tokensPath)
		case *astPath != "":
			err = dumpAST(ctx, *astPath, *asYAML)
		case *watchPath != "":
			err = watch(ctx, *watchPath)
		case *runPath != "":
			what = *runPath
			interpreter, err = runFile(ctx, *runPath)
		default:
			what = "repl"
			interpreter, err = repl(ctx)
		}

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = exitCode(err)
		}
		if *tapOnExit && interpreter != nil {
			tap(ctx, what, interpreter)
		}
	})

	os.Exit(code)
}
