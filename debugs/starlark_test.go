package debugs

import (
	"io"
	"testing"

	"github.com/reusee/lox/lox"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    lox.Value
		expected starlark.Value
	}{
		{"nil", lox.Nil{}, starlark.None},
		{"true", lox.Bool(true), starlark.True},
		{"false", lox.Bool(false), starlark.False},
		{"number", lox.Number(1.5), starlark.Float(1.5)},
		{"string", lox.String("hello"), starlark.String("hello")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestGlobals(t *testing.T) {
	outer := lox.NewEnvironment()
	outer.Define("a", lox.Number(1))
	outer.Define("b", lox.String("outer"))
	inner := outer.NewChild()
	inner.Define("b", lox.String("inner"))

	globals := Globals(inner)
	if len(globals) != 2 {
		t.Fatalf("got %v", globals)
	}
	if v := globals["a"]; v != starlark.Float(1) {
		t.Fatalf("got %v", v)
	}
	if v := globals["b"]; v != starlark.String("inner") {
		t.Fatalf("got %v", v)
	}
}

func TestLoxBuiltin(t *testing.T) {
	interpreter := lox.NewInterpreter(io.Discard)
	if _, err := interpreter.Run(`var x = 40;`); err != nil {
		t.Fatal(err)
	}
	thread := &starlark.Thread{Name: "test"}
	globals, err := starlark.ExecFile(thread, "test.star", `
out = lox("print x + 2; x = 1;")
`, builtins(interpreter))
	if err != nil {
		t.Fatal(err)
	}
	if v := globals["out"]; v != starlark.String("42\n") {
		t.Fatalf("got %v", v)
	}
	if v, _ := interpreter.Globals().Lookup("x"); v != lox.Number(1) {
		t.Fatalf("got %v", v)
	}
}

func TestLoxBuiltinError(t *testing.T) {
	interpreter := lox.NewInterpreter(io.Discard)
	thread := &starlark.Thread{Name: "test"}
	_, err := starlark.ExecFile(thread, "test.star", `
lox("print y;")
`, builtins(interpreter))
	if err == nil {
		t.Fatal("expected error")
	}
}
