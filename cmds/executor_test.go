package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %d", a)
	}

	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %d", a)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "a: convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return bytes.ErrTooLarge
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); err != bytes.ErrTooLarge {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatalf("got %d", bar)
	}
	if baz != 42 {
		t.Fatalf("got %d", baz)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var path string
	var yaml bool
	executor.Define("ast", Func(func(arg *string) {
		path = *arg
	}))
	executor.Define("-yaml", Func(func() {
		yaml = true
	}))

	if err := executor.Execute([]string{"ast", "foo.lox"}); err != nil {
		t.Fatal(err)
	}
	if path != "foo.lox" {
		t.Fatalf("got %q", path)
	}

	// a command name is not taken as the optional argument
	if err := executor.Execute([]string{"ast", "-yaml"}); err != nil {
		t.Fatal(err)
	}
	if path != "" || !yaml {
		t.Fatalf("got %q %v", path, yaml)
	}

	if err := executor.Execute([]string{"ast"}); err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Fatalf("got %q", path)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("run", Func(func(path *string) {}).Desc("run a script"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {}).Desc("BAR"),
	}).Desc("FOO"))
	executor.PrintUsage()

	expected := "-h (help, -help, --help)\tprint this usage\n" +
		"foo\tFOO\n" +
		"  bar\tBAR\n" +
		"run\trun a script\n"
	if str := buf.String(); str != expected {
		t.Fatalf("got %q", str)
	}
}
