package loxconfigs

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/modes"
)

func TestSettings(t *testing.T) {
	t.Chdir("testdata")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
		historyFile HistoryFile,
		printResult PrintResult,
	) {
		if prompt != "lox> " {
			t.Fatalf("got %q", prompt)
		}
		if historyFile != "/tmp/lox_history" {
			t.Fatalf("got %q", historyFile)
		}
		if !printResult {
			t.Fatal("expected print_result")
		}
	})
}

func TestSettingsDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
		printResult PrintResult,
	) {
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
		if printResult {
			t.Fatal("print_result should default to false")
		}
	})
}

func TestPromptFlag(t *testing.T) {
	t.Chdir("testdata")
	*promptFlag = ">>> "
	defer func() {
		*promptFlag = ""
	}()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		prompt Prompt,
	) {
		if prompt != ">>> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestPreludePaths(t *testing.T) {
	t.Chdir("testdata")
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
	) {
		paths, err := PreludePaths(loader)
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 2 {
			t.Fatalf("got %v", paths)
		}
		if filepath.Base(paths[0]) != "prelude.lox" {
			t.Fatalf("got %v", paths)
		}
		if filepath.Base(paths[1]) != "greeting.lox" {
			t.Fatalf("got %v", paths)
		}
	})
}

func TestPreludeFork(t *testing.T) {
	t.Chdir("testdata")
	output := new(bytes.Buffer)
	scope, err := PreludeFork(dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(PreludeOutput(output)),
	))
	if err != nil {
		t.Fatal(err)
	}
	if str := output.String(); str != "\"hello\"\n" {
		t.Fatalf("got %q", str)
	}
	scope.Call(func(
		prelude Prelude,
	) {
		env := (*lox.Environment)(prelude)
		if env == nil {
			t.Fatal("expected prelude environment")
		}
		if v, ok := env.Lookup("greeting"); !ok || v != lox.String("hello") {
			t.Fatalf("got %v", v)
		}
		if v, ok := env.Lookup("base"); !ok || v != lox.Number(2) {
			t.Fatalf("got %v", v)
		}
		// the earlier script keeps its own binding
		if env.Parent == nil {
			t.Fatal("expected chained environment")
		}
		if v := env.Parent.Vars["greeting"]; v != lox.String("hi") {
			t.Fatalf("got %v", v)
		}
	})
}

func TestRunPreludeError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		logger logs.Logger,
	) {
		_, err := RunPrelude([]string{"testdata/broken.lox"}, io.Discard, logger)
		if !errors.Is(err, lox.UndefinedVariable) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestConfigFlag(t *testing.T) {
	path, err := filepath.Abs("testdata/lox.cue")
	if err != nil {
		t.Fatal(err)
	}
	t.Chdir(t.TempDir())
	*configFiles = []string{path}
	defer func() {
		*configFiles = nil
	}()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
		prompt Prompt,
	) {
		if paths := loader.Paths(); len(paths) != 1 || paths[0] != path {
			t.Fatalf("got %v", paths)
		}
		if prompt != "lox> " {
			t.Fatalf("got %q", prompt)
		}
	})
}
