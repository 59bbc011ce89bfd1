package lox

import (
	"errors"
	"testing"
)

func identToken(name string) Token {
	return Token{
		Kind:    TokenIdentifier,
		Lexeme:  name,
		Literal: Identifier(name),
		Line:    1,
	}
}

func TestEnvironmentDefine(t *testing.T) {
	env := NewEnvironment()
	env.Define("foo", Number(2))
	v, err := env.Get(identToken("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Number(2) {
		t.Fatalf("got %v", v)
	}

	// redefinition overwrites
	env.Define("foo", String("bar"))
	v, err = env.Get(identToken("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if v != String("bar") {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	env := NewEnvironment().NewChild()
	_, err := env.Get(identToken("foo"))
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("got %v", err)
	}
	if runtimeErr.Kind != UndefinedVariable || runtimeErr.Token.Lexeme != "foo" {
		t.Fatalf("got %#v", runtimeErr)
	}
	if err := env.Assign(identToken("foo"), Nil{}); !errors.Is(err, UndefinedVariable) {
		t.Fatalf("got %v", err)
	}
}

func TestEnvironmentNested(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("foo", Number(2))
	inner := outer.NewChild()

	v, err := inner.Get(identToken("foo"))
	if err != nil {
		t.Fatal(err)
	}
	if v != Number(2) {
		t.Fatalf("got %v", v)
	}

	if err := inner.Assign(identToken("foo"), Number(3)); err != nil {
		t.Fatal(err)
	}
	if v, _ := outer.Lookup("foo"); v != Number(3) {
		t.Fatalf("got %v", v)
	}
	if len(inner.Vars) != 0 {
		t.Fatalf("got %v", inner.Vars)
	}

	// shadowing
	inner.Define("foo", Bool(true))
	if v, _ := inner.Lookup("foo"); v != Bool(true) {
		t.Fatalf("got %v", v)
	}
	if v, _ := outer.Lookup("foo"); v != Number(3) {
		t.Fatalf("got %v", v)
	}
	if err := inner.Assign(identToken("foo"), Bool(false)); err != nil {
		t.Fatal(err)
	}
	if v, _ := outer.Lookup("foo"); v != Number(3) {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironmentNames(t *testing.T) {
	env := &Environment{}
	env.Define("b", Nil{})
	env.Define("a", Nil{})
	env.Define("c", Nil{})
	names := env.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("got %v", names)
	}
}

func TestEnvironmentClone(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := outer.NewChild()
	inner.Define("b", Number(2))

	clone := inner.Clone()
	if err := clone.Assign(identToken("a"), Number(10)); err != nil {
		t.Fatal(err)
	}
	clone.Define("b", Number(20))

	if v, _ := inner.Lookup("a"); v != Number(1) {
		t.Fatalf("got %v", v)
	}
	if v, _ := inner.Lookup("b"); v != Number(2) {
		t.Fatalf("got %v", v)
	}
	if v, _ := clone.Lookup("a"); v != Number(10) {
		t.Fatalf("got %v", v)
	}

	var empty *Environment
	if empty.Clone() != nil {
		t.Fatal("expected nil")
	}
}
