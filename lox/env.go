package lox

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

type Environment struct {
	Parent *Environment
	Vars   map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{
		Vars: make(map[string]Value),
	}
}

func (e *Environment) NewChild() *Environment {
	return &Environment{
		Parent: e,
		Vars:   make(map[string]Value),
	}
}

// Clone copies the bindings of e and of every enclosing scope.
// Assignments through the copy leave e unchanged.
func (e *Environment) Clone() *Environment {
	if e == nil {
		return nil
	}
	return &Environment{
		Parent: e.Parent.Clone(),
		Vars:   maps.Clone(e.Vars),
	}
}

// Define binds name in this scope, overwriting any existing binding here.
func (e *Environment) Define(name string, val Value) {
	if e.Vars == nil {
		e.Vars = make(map[string]Value)
	}
	e.Vars[name] = val
}

func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.Vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Environment) Get(name Token) (Value, error) {
	v, ok := e.Lookup(name.Lexeme)
	if !ok {
		return nil, &RuntimeError{
			Kind:  UndefinedVariable,
			Token: name,
		}
	}
	return v, nil
}

// Assign overwrites the binding in the nearest scope that defines name.
func (e *Environment) Assign(name Token, val Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.Vars[name.Lexeme]; ok {
			env.Vars[name.Lexeme] = val
			return nil
		}
	}
	return &RuntimeError{
		Kind:  UndefinedVariable,
		Token: name,
	}
}

// Names returns the names bound in this scope, sorted.
func (e *Environment) Names() []string {
	names := lo.Keys(e.Vars)
	slices.Sort(names)
	return names
}
