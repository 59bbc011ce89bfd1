package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span names one unit of work, such as one script run or one REPL line.
type Span string

type spanKey struct{}

var SpanKey spanKey

type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		var args []any
		if parent, ok := ctx.Value(SpanKey).(Span); ok {
			args = append(args, "parent", string(parent))
		}
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		logger.DebugContext(ctx, "new span: "+what, args...)
		return ctx, span
	}
}

// WrapSpan annotates err with the span carried by ctx.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
