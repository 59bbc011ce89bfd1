package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/loxconfigs"
)

// REPL reads lines interactively; all lines share one interpreter.
type REPL func(ctx context.Context) (*lox.Interpreter, error)

func (Module) REPL(
	prompt loxconfigs.Prompt,
	historyFile loxconfigs.HistoryFile,
	printResult loxconfigs.PrintResult,
	newInterpreter NewInterpreter,
	newSpan logs.NewSpan,
	stdout Stdout,
	stderr Stderr,
) REPL {
	return func(ctx context.Context) (*lox.Interpreter, error) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return nil, err
		}
		defer rl.Close()

		interpreter := newInterpreter()
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if errors.Is(err, io.EOF) {
				return interpreter, nil
			} else if err != nil {
				return interpreter, err
			}
			if line == "" {
				continue
			}
			lineCtx, _ := newSpan(ctx, "repl line")
			if err := evalLine(interpreter, line, bool(printResult), stdout); err != nil {
				fmt.Fprintln(stderr, logs.WrapSpan(lineCtx, err))
			}
		}
	}
}

// evalLine runs one line of input.
// A line holding a single expression, with or without the trailing semicolon, has its value echoed when echo is set.
func evalLine(interpreter *lox.Interpreter, line string, echo bool, output io.Writer) error {
	tokens, err := lox.Scan(line)
	if err != nil {
		return err
	}

	stmts, err := lox.ParseAll(tokens)
	if err != nil {
		if !echo {
			return err
		}
		expr, exprErr := lox.ParseExpression(tokens)
		if exprErr != nil {
			return err
		}
		return echoValue(interpreter, expr, output)
	}

	if echo && len(stmts) == 1 {
		if stmt, ok := stmts[0].(*lox.ExpressionStmt); ok {
			return echoValue(interpreter, stmt.Expr, output)
		}
	}
	return interpreter.Interpret(stmts)
}

func echoValue(interpreter *lox.Interpreter, expr lox.Expr, output io.Writer) error {
	value, err := interpreter.Evaluate(expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, lox.FormatValue(value))
	return err
}
