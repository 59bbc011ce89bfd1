package loxconfigs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
)

// Prelude is the environment built by prelude scripts.
// Interpreters enclose it so its bindings are visible to user programs.
type Prelude *lox.Environment

func (Module) Prelude() Prelude {
	return nil
}

// PreludeOutput receives the output of print statements in prelude scripts.
type PreludeOutput io.Writer

func (Module) PreludeOutput() PreludeOutput {
	return os.Stdout
}

// PreludePaths lists prelude scripts in execution order.
// Discovered prelude.lox files run from the most general location to the most local,
// followed by the scripts listed under the prelude key of each config file, again most general first.
func PreludePaths(loader configs.Loader) ([]string, error) {
	dirs := searchDirs()
	slices.Reverse(dirs)
	paths := findFiles(dirs, "prelude.lox", ".prelude.lox")

	var lists [][]string
	for list, err := range configs.All[[]string](loader, "prelude") {
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	slices.Reverse(lists)
	for _, list := range lists {
		for _, path := range list {
			if !filepath.IsAbs(path) {
				if abs, err := filepath.Abs(path); err == nil {
					path = abs
				}
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// RunPrelude executes each script in its own global scope.
// The scope of a later script encloses the scope of the earlier one, so local definitions shadow general ones.
func RunPrelude(paths []string, output io.Writer, logger logs.Logger) (*lox.Environment, error) {
	var last *lox.Environment
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		interpreter := lox.NewInterpreter(output).
			WithLogger(logger).
			WithEnclosing(last)
		outcome, err := interpreter.Run(string(content))
		if outcome != lox.OutcomeOK {
			return nil, fmt.Errorf("prelude %s: %w", path, err)
		}
		logger.Debug("prelude",
			"path", path,
			"names", interpreter.Globals().Names(),
		)
		last = interpreter.Globals()
	}
	return last, nil
}

// PreludeFork runs the prelude scripts and provides the resulting environment to scope.
func PreludeFork(scope dscope.Scope) (dscope.Scope, error) {
	var err error
	scope.Call(func(
		loader configs.Loader,
		logger logs.Logger,
		output PreludeOutput,
	) {
		var paths []string
		paths, err = PreludePaths(loader)
		if err != nil {
			return
		}
		var env *lox.Environment
		env, err = RunPrelude(paths, output, logger)
		if err != nil {
			return
		}
		scope = scope.Fork(dscope.Provide(Prelude(env)))
	})
	return scope, err
}
