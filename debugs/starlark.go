package debugs

import (
	"bytes"
	"fmt"

	"github.com/reusee/lox/lox"
	"github.com/reusee/starlarkutil"
	"github.com/samber/lo"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v lox.Value) starlark.Value {
	switch v := v.(type) {
	case nil, lox.Nil:
		return starlark.None
	case lox.Bool:
		return starlark.Bool(v)
	case lox.Number:
		return starlark.Float(v)
	case lox.String:
		return starlark.String(v)
	}
	panic(fmt.Errorf("unsupported value: %T", v))
}

// Globals converts the bindings visible from env.
// Inner bindings shadow outer ones.
func Globals(env *lox.Environment) starlark.StringDict {
	var chain []*lox.Environment
	for e := env; e != nil; e = e.Parent {
		chain = append(chain, e)
	}
	ret := make(starlark.StringDict)
	for i := len(chain) - 1; i >= 0; i-- {
		for name, value := range lo.MapValues(chain[i].Vars, func(v lox.Value, _ string) starlark.Value {
			return toStarlarkValue(v)
		}) {
			ret[name] = value
		}
	}
	return ret
}

// builtins returns functions operating on the interpreter state.
//
//	lox(source)  runs source in a scope enclosed by the globals and returns its printed output
//	show(name)   formats a variable the way print does
func builtins(interpreter *lox.Interpreter) starlark.StringDict {
	return starlark.StringDict{

		"lox": starlark.NewBuiltin("lox", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var source string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &source); err != nil {
				return nil, err
			}
			buf := new(bytes.Buffer)
			if _, err := lox.NewInterpreter(buf).
				WithEnclosing(interpreter.Globals()).
				Run(source); err != nil {
				return nil, err
			}
			return starlark.String(buf.String()), nil
		}),

		"show": starlarkutil.MakeFunc("show", func(name string) string {
			value, ok := interpreter.Globals().Lookup(name)
			if !ok {
				return ""
			}
			return lox.FormatValue(value)
		}),
	}
}
