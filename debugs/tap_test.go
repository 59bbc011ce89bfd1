package debugs

import (
	"io"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/lox"
	"github.com/reusee/lox/modes"
)

func TestTap(t *testing.T) {
	interpreter := lox.NewInterpreter(io.Discard)
	if _, err := interpreter.Run(`var foo = 42;`); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", interpreter)
	})
}
