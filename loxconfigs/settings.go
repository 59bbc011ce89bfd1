package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/vars"
)

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
	logger logs.Logger,
) Prompt {
	configured, err := configs.First[string](loader, "prompt")
	if err != nil {
		logger.Warn("load config", "key", "prompt", "error", err)
	}
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configured,
		"> ",
	))
}

type HistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
	logger logs.Logger,
) HistoryFile {
	configured, err := configs.First[string](loader, "history_file")
	if err != nil {
		logger.Warn("load config", "key", "history_file", "error", err)
	}
	var fallback string
	if home, err := os.UserHomeDir(); err == nil {
		fallback = filepath.Join(home, ".lox_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		configured,
		fallback,
	))
}

// PrintResult reports whether the REPL echoes the value of a bare expression.
type PrintResult bool

var printResultFlag = cmds.Switch("-print-result")

func (Module) PrintResult(
	loader configs.Loader,
	logger logs.Logger,
) PrintResult {
	configured, err := configs.First[bool](loader, "print_result")
	if err != nil {
		logger.Warn("load config", "key", "print_result", "error", err)
	}
	return PrintResult(*printResultFlag || configured)
}
